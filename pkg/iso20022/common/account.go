package common

import (
	"github.com/Open-Payments/messages-sub014/pkg/schema"
)

type ClearingSystemIdentification2Choice struct {
	Cd    *ExternalClearingSystemIdentification1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *Max35Text                                 `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c ClearingSystemIdentification2Choice) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "Cd", c.Cd)
	schema.Optional(&vs, "Prtry", c.Prtry)
	return vs.OrNil()
}

type ClearingSystemMemberIdentification2 struct {
	ClrSysId *ClearingSystemIdentification2Choice `xml:"ClrSysId,omitempty" json:"ClrSysId,omitempty"`
	MmbId    Max35Text                            `xml:"MmbId" json:"MmbId"`
}

func (c ClearingSystemMemberIdentification2) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "ClrSysId", c.ClrSysId)
	schema.Required(&vs, "MmbId", c.MmbId)
	return vs.OrNil()
}

type FinancialIdentificationSchemeName1Choice struct {
	Cd    *ExternalFinancialInstitutionIdentification1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *Max35Text                                       `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c FinancialIdentificationSchemeName1Choice) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "Cd", c.Cd)
	schema.Optional(&vs, "Prtry", c.Prtry)
	return vs.OrNil()
}

type GenericFinancialIdentification1 struct {
	Id      Max35Text                                 `xml:"Id" json:"Id"`
	SchmeNm *FinancialIdentificationSchemeName1Choice `xml:"SchmeNm,omitempty" json:"SchmeNm,omitempty"`
	Issr    *Max35Text                                `xml:"Issr,omitempty" json:"Issr,omitempty"`
}

func (g GenericFinancialIdentification1) Validate() error {
	var vs schema.Violations
	schema.Required(&vs, "Id", g.Id)
	schema.Optional(&vs, "SchmeNm", g.SchmeNm)
	schema.Optional(&vs, "Issr", g.Issr)
	return vs.OrNil()
}

// FinancialInstitutionIdentification18 identifies an agent by BIC,
// clearing system membership, LEI or a proprietary scheme.
type FinancialInstitutionIdentification18 struct {
	BICFI       *BICFIDec2014Identifier              `xml:"BICFI,omitempty" json:"BICFI,omitempty"`
	ClrSysMmbId *ClearingSystemMemberIdentification2 `xml:"ClrSysMmbId,omitempty" json:"ClrSysMmbId,omitempty"`
	LEI         *LEIIdentifier                       `xml:"LEI,omitempty" json:"LEI,omitempty"`
	Nm          *Max140Text                          `xml:"Nm,omitempty" json:"Nm,omitempty"`
	PstlAdr     *PostalAddress24                     `xml:"PstlAdr,omitempty" json:"PstlAdr,omitempty"`
	Othr        *GenericFinancialIdentification1     `xml:"Othr,omitempty" json:"Othr,omitempty"`
}

func (f FinancialInstitutionIdentification18) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "BICFI", f.BICFI)
	schema.Optional(&vs, "ClrSysMmbId", f.ClrSysMmbId)
	schema.Optional(&vs, "LEI", f.LEI)
	schema.Optional(&vs, "Nm", f.Nm)
	schema.Optional(&vs, "PstlAdr", f.PstlAdr)
	schema.Optional(&vs, "Othr", f.Othr)
	return vs.OrNil()
}

type BranchData3 struct {
	Id      *Max35Text       `xml:"Id,omitempty" json:"Id,omitempty"`
	LEI     *LEIIdentifier   `xml:"LEI,omitempty" json:"LEI,omitempty"`
	Nm      *Max140Text      `xml:"Nm,omitempty" json:"Nm,omitempty"`
	PstlAdr *PostalAddress24 `xml:"PstlAdr,omitempty" json:"PstlAdr,omitempty"`
}

func (b BranchData3) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "Id", b.Id)
	schema.Optional(&vs, "LEI", b.LEI)
	schema.Optional(&vs, "Nm", b.Nm)
	schema.Optional(&vs, "PstlAdr", b.PstlAdr)
	return vs.OrNil()
}

type BranchAndFinancialInstitutionIdentification6 struct {
	FinInstnId FinancialInstitutionIdentification18 `xml:"FinInstnId" json:"FinInstnId"`
	BrnchId    *BranchData3                         `xml:"BrnchId,omitempty" json:"BrnchId,omitempty"`
}

func (b BranchAndFinancialInstitutionIdentification6) Validate() error {
	var vs schema.Violations
	schema.Required(&vs, "FinInstnId", b.FinInstnId)
	schema.Optional(&vs, "BrnchId", b.BrnchId)
	return vs.OrNil()
}

type AccountSchemeName1Choice struct {
	Cd    *ExternalAccountIdentification1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *Max35Text                          `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c AccountSchemeName1Choice) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "Cd", c.Cd)
	schema.Optional(&vs, "Prtry", c.Prtry)
	return vs.OrNil()
}

type GenericAccountIdentification1 struct {
	Id      Max34Text                 `xml:"Id" json:"Id"`
	SchmeNm *AccountSchemeName1Choice `xml:"SchmeNm,omitempty" json:"SchmeNm,omitempty"`
	Issr    *Max35Text                `xml:"Issr,omitempty" json:"Issr,omitempty"`
}

func (g GenericAccountIdentification1) Validate() error {
	var vs schema.Violations
	schema.Required(&vs, "Id", g.Id)
	schema.Optional(&vs, "SchmeNm", g.SchmeNm)
	schema.Optional(&vs, "Issr", g.Issr)
	return vs.OrNil()
}

// AccountIdentification4Choice selects between an IBAN and a proprietary
// account identifier.
type AccountIdentification4Choice struct {
	IBAN *IBAN2007Identifier            `xml:"IBAN,omitempty" json:"IBAN,omitempty"`
	Othr *GenericAccountIdentification1 `xml:"Othr,omitempty" json:"Othr,omitempty"`
}

func (c AccountIdentification4Choice) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "IBAN", c.IBAN)
	schema.Optional(&vs, "Othr", c.Othr)
	return vs.OrNil()
}

type CashAccountType2Choice struct {
	Cd    *ExternalCashAccountType1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *Max35Text                    `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c CashAccountType2Choice) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "Cd", c.Cd)
	schema.Optional(&vs, "Prtry", c.Prtry)
	return vs.OrNil()
}

type ProxyAccountType1Choice struct {
	Cd    *ExternalProxyAccountType1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *Max35Text                     `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c ProxyAccountType1Choice) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "Cd", c.Cd)
	schema.Optional(&vs, "Prtry", c.Prtry)
	return vs.OrNil()
}

type ProxyAccountIdentification1 struct {
	Tp *ProxyAccountType1Choice `xml:"Tp,omitempty" json:"Tp,omitempty"`
	Id Max2048Text              `xml:"Id" json:"Id"`
}

func (p ProxyAccountIdentification1) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "Tp", p.Tp)
	schema.Required(&vs, "Id", p.Id)
	return vs.OrNil()
}

type CashAccount38 struct {
	Id   AccountIdentification4Choice  `xml:"Id" json:"Id"`
	Tp   *CashAccountType2Choice       `xml:"Tp,omitempty" json:"Tp,omitempty"`
	Ccy  *ActiveOrHistoricCurrencyCode `xml:"Ccy,omitempty" json:"Ccy,omitempty"`
	Nm   *Max70Text                    `xml:"Nm,omitempty" json:"Nm,omitempty"`
	Prxy *ProxyAccountIdentification1  `xml:"Prxy,omitempty" json:"Prxy,omitempty"`
}

func (a CashAccount38) Validate() error {
	var vs schema.Violations
	schema.Required(&vs, "Id", a.Id)
	schema.Optional(&vs, "Tp", a.Tp)
	schema.Optional(&vs, "Ccy", a.Ccy)
	schema.Optional(&vs, "Nm", a.Nm)
	schema.Optional(&vs, "Prxy", a.Prxy)
	return vs.OrNil()
}

type ServiceLevel8Choice struct {
	Cd    *ExternalServiceLevel1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *Max35Text                 `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c ServiceLevel8Choice) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "Cd", c.Cd)
	schema.Optional(&vs, "Prtry", c.Prtry)
	return vs.OrNil()
}

type LocalInstrument2Choice struct {
	Cd    *ExternalLocalInstrument1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *Max35Text                    `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c LocalInstrument2Choice) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "Cd", c.Cd)
	schema.Optional(&vs, "Prtry", c.Prtry)
	return vs.OrNil()
}

type CategoryPurpose1Choice struct {
	Cd    *ExternalCategoryPurpose1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *Max35Text                    `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c CategoryPurpose1Choice) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "Cd", c.Cd)
	schema.Optional(&vs, "Prtry", c.Prtry)
	return vs.OrNil()
}

type Purpose2Choice struct {
	Cd    *ExternalPurpose1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *Max35Text            `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c Purpose2Choice) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "Cd", c.Cd)
	schema.Optional(&vs, "Prtry", c.Prtry)
	return vs.OrNil()
}
