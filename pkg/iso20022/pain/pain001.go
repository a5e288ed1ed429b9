// Package pain implements the payments initiation message definitions.
//
// The pain.001.001.12 generation of the schemas carries its own party,
// address and account shapes, so those are declared here rather than
// shared with the older generations in the common package.
package pain

import (
	"github.com/Open-Payments/messages-sub014/pkg/iso20022/common"
	"github.com/Open-Payments/messages-sub014/pkg/schema"
)

// CustomerCreditTransferInitiationV12 is the pain.001.001.12 message: a
// customer credit transfer initiation sent to the debtor agent.
type CustomerCreditTransferInitiationV12 struct {
	GrpHdr      GroupHeader114              `xml:"GrpHdr" json:"GrpHdr"`
	PmtInf      []PaymentInstruction44      `xml:"PmtInf" json:"PmtInf"`
	SplmtryData []common.SupplementaryData1 `xml:"SplmtryData,omitempty" json:"SplmtryData,omitempty"`
}

func (m CustomerCreditTransferInitiationV12) Validate() error {
	var vs schema.Violations
	schema.Required(&vs, "GrpHdr", m.GrpHdr)
	schema.Each(&vs, "PmtInf", m.PmtInf)
	schema.Each(&vs, "SplmtryData", m.SplmtryData)
	return vs.OrNil()
}

type Authorisation1Code string

const (
	AuthorisationPreAuthorised Authorisation1Code = "AUTH"
	AuthorisationFileDetail    Authorisation1Code = "FDET"
	AuthorisationFileSummary   Authorisation1Code = "FSUM"
	AuthorisationInstrLevel    Authorisation1Code = "ILEV"
)

var authorisationCodes = schema.MustEnum("AUTH", "FDET", "FSUM", "ILEV")

func (c Authorisation1Code) Validate() error { return authorisationCodes.Check(string(c)) }

type Authorisation1Choice struct {
	Cd    *Authorisation1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *common.Max128Text  `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c Authorisation1Choice) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "Cd", c.Cd)
	schema.Optional(&vs, "Prtry", c.Prtry)
	return vs.OrNil()
}

type PaymentInitiationSource1 struct {
	Nm    common.Max140Text `xml:"Nm" json:"Nm"`
	Prvdr *common.Max35Text `xml:"Prvdr,omitempty" json:"Prvdr,omitempty"`
	Vrsn  *common.Max35Text `xml:"Vrsn,omitempty" json:"Vrsn,omitempty"`
}

func (p PaymentInitiationSource1) Validate() error {
	var vs schema.Violations
	schema.Required(&vs, "Nm", p.Nm)
	schema.Optional(&vs, "Prvdr", p.Prvdr)
	schema.Optional(&vs, "Vrsn", p.Vrsn)
	return vs.OrNil()
}

type GroupHeader114 struct {
	MsgId    common.Max35Text                              `xml:"MsgId" json:"MsgId"`
	CreDtTm  common.ISODateTime                            `xml:"CreDtTm" json:"CreDtTm"`
	Authstn  []Authorisation1Choice                        `xml:"Authstn,omitempty" json:"Authstn,omitempty"`
	NbOfTxs  common.Max15NumericText                       `xml:"NbOfTxs" json:"NbOfTxs"`
	CtrlSum  *common.DecimalNumber                         `xml:"CtrlSum,omitempty" json:"CtrlSum,omitempty"`
	InitgPty PartyIdentification272                        `xml:"InitgPty" json:"InitgPty"`
	FwdgAgt  *BranchAndFinancialInstitutionIdentification8 `xml:"FwdgAgt,omitempty" json:"FwdgAgt,omitempty"`
	InitnSrc *PaymentInitiationSource1                     `xml:"InitnSrc,omitempty" json:"InitnSrc,omitempty"`
}

func (h GroupHeader114) Validate() error {
	var vs schema.Violations
	schema.Required(&vs, "MsgId", h.MsgId)
	schema.Required(&vs, "CreDtTm", h.CreDtTm)
	schema.Each(&vs, "Authstn", h.Authstn)
	schema.Required(&vs, "NbOfTxs", h.NbOfTxs)
	schema.Optional(&vs, "CtrlSum", h.CtrlSum)
	schema.Required(&vs, "InitgPty", h.InitgPty)
	schema.Optional(&vs, "FwdgAgt", h.FwdgAgt)
	schema.Optional(&vs, "InitnSrc", h.InitnSrc)
	return vs.OrNil()
}

type PostalAddress27 struct {
	AdrTp       *common.AddressType3Choice `xml:"AdrTp,omitempty" json:"AdrTp,omitempty"`
	CareOf      *common.Max140Text         `xml:"CareOf,omitempty" json:"CareOf,omitempty"`
	Dept        *common.Max70Text          `xml:"Dept,omitempty" json:"Dept,omitempty"`
	SubDept     *common.Max70Text          `xml:"SubDept,omitempty" json:"SubDept,omitempty"`
	StrtNm      *common.Max140Text         `xml:"StrtNm,omitempty" json:"StrtNm,omitempty"`
	BldgNb      *common.Max16Text          `xml:"BldgNb,omitempty" json:"BldgNb,omitempty"`
	BldgNm      *common.Max140Text         `xml:"BldgNm,omitempty" json:"BldgNm,omitempty"`
	Flr         *common.Max70Text          `xml:"Flr,omitempty" json:"Flr,omitempty"`
	UnitNb      *common.Max16Text          `xml:"UnitNb,omitempty" json:"UnitNb,omitempty"`
	PstBx       *common.Max16Text          `xml:"PstBx,omitempty" json:"PstBx,omitempty"`
	Room        *common.Max70Text          `xml:"Room,omitempty" json:"Room,omitempty"`
	PstCd       *common.Max16Text          `xml:"PstCd,omitempty" json:"PstCd,omitempty"`
	TwnNm       *common.Max140Text         `xml:"TwnNm,omitempty" json:"TwnNm,omitempty"`
	TwnLctnNm   *common.Max140Text         `xml:"TwnLctnNm,omitempty" json:"TwnLctnNm,omitempty"`
	DstrctNm    *common.Max140Text         `xml:"DstrctNm,omitempty" json:"DstrctNm,omitempty"`
	CtrySubDvsn *common.Max35Text          `xml:"CtrySubDvsn,omitempty" json:"CtrySubDvsn,omitempty"`
	Ctry        *common.CountryCode        `xml:"Ctry,omitempty" json:"Ctry,omitempty"`
	AdrLine     []common.Max70Text         `xml:"AdrLine,omitempty" json:"AdrLine,omitempty"`
}

func (a PostalAddress27) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "AdrTp", a.AdrTp)
	schema.Optional(&vs, "CareOf", a.CareOf)
	schema.Optional(&vs, "Dept", a.Dept)
	schema.Optional(&vs, "SubDept", a.SubDept)
	schema.Optional(&vs, "StrtNm", a.StrtNm)
	schema.Optional(&vs, "BldgNb", a.BldgNb)
	schema.Optional(&vs, "BldgNm", a.BldgNm)
	schema.Optional(&vs, "Flr", a.Flr)
	schema.Optional(&vs, "UnitNb", a.UnitNb)
	schema.Optional(&vs, "PstBx", a.PstBx)
	schema.Optional(&vs, "Room", a.Room)
	schema.Optional(&vs, "PstCd", a.PstCd)
	schema.Optional(&vs, "TwnNm", a.TwnNm)
	schema.Optional(&vs, "TwnLctnNm", a.TwnLctnNm)
	schema.Optional(&vs, "DstrctNm", a.DstrctNm)
	schema.Optional(&vs, "CtrySubDvsn", a.CtrySubDvsn)
	schema.Optional(&vs, "Ctry", a.Ctry)
	schema.Each(&vs, "AdrLine", a.AdrLine)
	return vs.OrNil()
}

type Contact13 struct {
	NmPrfx    *common.NamePrefix2Code             `xml:"NmPrfx,omitempty" json:"NmPrfx,omitempty"`
	Nm        *common.Max140Text                  `xml:"Nm,omitempty" json:"Nm,omitempty"`
	PhneNb    *common.PhoneNumber                 `xml:"PhneNb,omitempty" json:"PhneNb,omitempty"`
	MobNb     *common.PhoneNumber                 `xml:"MobNb,omitempty" json:"MobNb,omitempty"`
	FaxNb     *common.PhoneNumber                 `xml:"FaxNb,omitempty" json:"FaxNb,omitempty"`
	URLAdr    *common.Max2048Text                 `xml:"URLAdr,omitempty" json:"URLAdr,omitempty"`
	EmailAdr  *common.Max2048Text                 `xml:"EmailAdr,omitempty" json:"EmailAdr,omitempty"`
	EmailPurp *common.Max35Text                   `xml:"EmailPurp,omitempty" json:"EmailPurp,omitempty"`
	JobTitl   *common.Max35Text                   `xml:"JobTitl,omitempty" json:"JobTitl,omitempty"`
	Rspnsblty *common.Max35Text                   `xml:"Rspnsblty,omitempty" json:"Rspnsblty,omitempty"`
	Dept      *common.Max70Text                   `xml:"Dept,omitempty" json:"Dept,omitempty"`
	Othr      []common.OtherContact1              `xml:"Othr,omitempty" json:"Othr,omitempty"`
	PrefrdMtd *common.PreferredContactMethod1Code `xml:"PrefrdMtd,omitempty" json:"PrefrdMtd,omitempty"`
}

func (c Contact13) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "NmPrfx", c.NmPrfx)
	schema.Optional(&vs, "Nm", c.Nm)
	schema.Optional(&vs, "PhneNb", c.PhneNb)
	schema.Optional(&vs, "MobNb", c.MobNb)
	schema.Optional(&vs, "FaxNb", c.FaxNb)
	schema.Optional(&vs, "URLAdr", c.URLAdr)
	schema.Optional(&vs, "EmailAdr", c.EmailAdr)
	schema.Optional(&vs, "EmailPurp", c.EmailPurp)
	schema.Optional(&vs, "JobTitl", c.JobTitl)
	schema.Optional(&vs, "Rspnsblty", c.Rspnsblty)
	schema.Optional(&vs, "Dept", c.Dept)
	schema.Each(&vs, "Othr", c.Othr)
	schema.Optional(&vs, "PrefrdMtd", c.PrefrdMtd)
	return vs.OrNil()
}

type GenericOrganisationIdentification3 struct {
	Id      common.Max256Text                                   `xml:"Id" json:"Id"`
	SchmeNm *common.OrganisationIdentificationSchemeName1Choice `xml:"SchmeNm,omitempty" json:"SchmeNm,omitempty"`
	Issr    *common.Max35Text                                   `xml:"Issr,omitempty" json:"Issr,omitempty"`
}

func (g GenericOrganisationIdentification3) Validate() error {
	var vs schema.Violations
	schema.Required(&vs, "Id", g.Id)
	schema.Optional(&vs, "SchmeNm", g.SchmeNm)
	schema.Optional(&vs, "Issr", g.Issr)
	return vs.OrNil()
}

type OrganisationIdentification39 struct {
	AnyBIC *common.AnyBICDec2014Identifier      `xml:"AnyBIC,omitempty" json:"AnyBIC,omitempty"`
	LEI    *common.LEIIdentifier                `xml:"LEI,omitempty" json:"LEI,omitempty"`
	Othr   []GenericOrganisationIdentification3 `xml:"Othr,omitempty" json:"Othr,omitempty"`
}

func (o OrganisationIdentification39) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "AnyBIC", o.AnyBIC)
	schema.Optional(&vs, "LEI", o.LEI)
	schema.Each(&vs, "Othr", o.Othr)
	return vs.OrNil()
}

type GenericPersonIdentification2 struct {
	Id      common.Max256Text                             `xml:"Id" json:"Id"`
	SchmeNm *common.PersonIdentificationSchemeName1Choice `xml:"SchmeNm,omitempty" json:"SchmeNm,omitempty"`
	Issr    *common.Max35Text                             `xml:"Issr,omitempty" json:"Issr,omitempty"`
}

func (g GenericPersonIdentification2) Validate() error {
	var vs schema.Violations
	schema.Required(&vs, "Id", g.Id)
	schema.Optional(&vs, "SchmeNm", g.SchmeNm)
	schema.Optional(&vs, "Issr", g.Issr)
	return vs.OrNil()
}

type PersonIdentification18 struct {
	DtAndPlcOfBirth *common.DateAndPlaceOfBirth1   `xml:"DtAndPlcOfBirth,omitempty" json:"DtAndPlcOfBirth,omitempty"`
	Othr            []GenericPersonIdentification2 `xml:"Othr,omitempty" json:"Othr,omitempty"`
}

func (p PersonIdentification18) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "DtAndPlcOfBirth", p.DtAndPlcOfBirth)
	schema.Each(&vs, "Othr", p.Othr)
	return vs.OrNil()
}

type Party52Choice struct {
	OrgId  *OrganisationIdentification39 `xml:"OrgId,omitempty" json:"OrgId,omitempty"`
	PrvtId *PersonIdentification18       `xml:"PrvtId,omitempty" json:"PrvtId,omitempty"`
}

func (c Party52Choice) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "OrgId", c.OrgId)
	schema.Optional(&vs, "PrvtId", c.PrvtId)
	return vs.OrNil()
}

type PartyIdentification272 struct {
	Nm        *common.Max140Text  `xml:"Nm,omitempty" json:"Nm,omitempty"`
	PstlAdr   *PostalAddress27    `xml:"PstlAdr,omitempty" json:"PstlAdr,omitempty"`
	Id        *Party52Choice      `xml:"Id,omitempty" json:"Id,omitempty"`
	CtryOfRes *common.CountryCode `xml:"CtryOfRes,omitempty" json:"CtryOfRes,omitempty"`
	CtctDtls  *Contact13          `xml:"CtctDtls,omitempty" json:"CtctDtls,omitempty"`
}

func (p PartyIdentification272) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "Nm", p.Nm)
	schema.Optional(&vs, "PstlAdr", p.PstlAdr)
	schema.Optional(&vs, "Id", p.Id)
	schema.Optional(&vs, "CtryOfRes", p.CtryOfRes)
	schema.Optional(&vs, "CtctDtls", p.CtctDtls)
	return vs.OrNil()
}

type FinancialInstitutionIdentification23 struct {
	BICFI       *common.BICFIDec2014Identifier              `xml:"BICFI,omitempty" json:"BICFI,omitempty"`
	ClrSysMmbId *common.ClearingSystemMemberIdentification2 `xml:"ClrSysMmbId,omitempty" json:"ClrSysMmbId,omitempty"`
	LEI         *common.LEIIdentifier                       `xml:"LEI,omitempty" json:"LEI,omitempty"`
	Nm          *common.Max140Text                          `xml:"Nm,omitempty" json:"Nm,omitempty"`
	PstlAdr     *PostalAddress27                            `xml:"PstlAdr,omitempty" json:"PstlAdr,omitempty"`
	Othr        *common.GenericFinancialIdentification1     `xml:"Othr,omitempty" json:"Othr,omitempty"`
}

func (f FinancialInstitutionIdentification23) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "BICFI", f.BICFI)
	schema.Optional(&vs, "ClrSysMmbId", f.ClrSysMmbId)
	schema.Optional(&vs, "LEI", f.LEI)
	schema.Optional(&vs, "Nm", f.Nm)
	schema.Optional(&vs, "PstlAdr", f.PstlAdr)
	schema.Optional(&vs, "Othr", f.Othr)
	return vs.OrNil()
}

type BranchData5 struct {
	Id      *common.Max35Text     `xml:"Id,omitempty" json:"Id,omitempty"`
	LEI     *common.LEIIdentifier `xml:"LEI,omitempty" json:"LEI,omitempty"`
	Nm      *common.Max140Text    `xml:"Nm,omitempty" json:"Nm,omitempty"`
	PstlAdr *PostalAddress27      `xml:"PstlAdr,omitempty" json:"PstlAdr,omitempty"`
}

func (b BranchData5) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "Id", b.Id)
	schema.Optional(&vs, "LEI", b.LEI)
	schema.Optional(&vs, "Nm", b.Nm)
	schema.Optional(&vs, "PstlAdr", b.PstlAdr)
	return vs.OrNil()
}

type BranchAndFinancialInstitutionIdentification8 struct {
	FinInstnId FinancialInstitutionIdentification23 `xml:"FinInstnId" json:"FinInstnId"`
	BrnchId    *BranchData5                         `xml:"BrnchId,omitempty" json:"BrnchId,omitempty"`
}

func (b BranchAndFinancialInstitutionIdentification8) Validate() error {
	var vs schema.Violations
	schema.Required(&vs, "FinInstnId", b.FinInstnId)
	schema.Optional(&vs, "BrnchId", b.BrnchId)
	return vs.OrNil()
}

type CashAccount40 struct {
	Id   *common.AccountIdentification4Choice `xml:"Id,omitempty" json:"Id,omitempty"`
	Tp   *common.CashAccountType2Choice       `xml:"Tp,omitempty" json:"Tp,omitempty"`
	Ccy  *common.ActiveOrHistoricCurrencyCode `xml:"Ccy,omitempty" json:"Ccy,omitempty"`
	Nm   *common.Max70Text                    `xml:"Nm,omitempty" json:"Nm,omitempty"`
	Prxy *common.ProxyAccountIdentification1  `xml:"Prxy,omitempty" json:"Prxy,omitempty"`
}

func (a CashAccount40) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "Id", a.Id)
	schema.Optional(&vs, "Tp", a.Tp)
	schema.Optional(&vs, "Ccy", a.Ccy)
	schema.Optional(&vs, "Nm", a.Nm)
	schema.Optional(&vs, "Prxy", a.Prxy)
	return vs.OrNil()
}

type PaymentMethod3Code string

const (
	PaymentMethodCheque         PaymentMethod3Code = "CHK"
	PaymentMethodCreditTransfer PaymentMethod3Code = "TRF"
	PaymentMethodTransferAdvice PaymentMethod3Code = "TRA"
)

var paymentMethodCodes = schema.MustEnum("CHK", "TRF", "TRA")

func (c PaymentMethod3Code) Validate() error { return paymentMethodCodes.Check(string(c)) }

type AdviceType1Code string

const (
	AdviceWithDetails AdviceType1Code = "ADWD"
	AdviceNoDetails   AdviceType1Code = "ADND"
)

var adviceTypeCodes = schema.MustEnum("ADWD", "ADND")

func (c AdviceType1Code) Validate() error { return adviceTypeCodes.Check(string(c)) }

type AdviceType1Choice struct {
	Cd    *AdviceType1Code  `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *common.Max35Text `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c AdviceType1Choice) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "Cd", c.Cd)
	schema.Optional(&vs, "Prtry", c.Prtry)
	return vs.OrNil()
}

type AdviceType1 struct {
	CdtAdvc *AdviceType1Choice `xml:"CdtAdvc,omitempty" json:"CdtAdvc,omitempty"`
	DbtAdvc *AdviceType1Choice `xml:"DbtAdvc,omitempty" json:"DbtAdvc,omitempty"`
}

func (a AdviceType1) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "CdtAdvc", a.CdtAdvc)
	schema.Optional(&vs, "DbtAdvc", a.DbtAdvc)
	return vs.OrNil()
}

type PaymentTypeInformation26 struct {
	InstrPrty *common.Priority2Code          `xml:"InstrPrty,omitempty" json:"InstrPrty,omitempty"`
	SvcLvl    []common.ServiceLevel8Choice   `xml:"SvcLvl,omitempty" json:"SvcLvl,omitempty"`
	LclInstrm *common.LocalInstrument2Choice `xml:"LclInstrm,omitempty" json:"LclInstrm,omitempty"`
	CtgyPurp  *common.CategoryPurpose1Choice `xml:"CtgyPurp,omitempty" json:"CtgyPurp,omitempty"`
}

func (p PaymentTypeInformation26) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "InstrPrty", p.InstrPrty)
	schema.Each(&vs, "SvcLvl", p.SvcLvl)
	schema.Optional(&vs, "LclInstrm", p.LclInstrm)
	schema.Optional(&vs, "CtgyPurp", p.CtgyPurp)
	return vs.OrNil()
}

type PaymentIdentification6 struct {
	InstrId    *common.Max35Text        `xml:"InstrId,omitempty" json:"InstrId,omitempty"`
	EndToEndId common.Max35Text         `xml:"EndToEndId" json:"EndToEndId"`
	UETR       *common.UUIDv4Identifier `xml:"UETR,omitempty" json:"UETR,omitempty"`
}

func (p PaymentIdentification6) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "InstrId", p.InstrId)
	schema.Required(&vs, "EndToEndId", p.EndToEndId)
	schema.Optional(&vs, "UETR", p.UETR)
	return vs.OrNil()
}

type ExchangeRateType1Code string

const (
	ExchangeRateSpot   ExchangeRateType1Code = "SPOT"
	ExchangeRateSale   ExchangeRateType1Code = "SALE"
	ExchangeRateAgreed ExchangeRateType1Code = "AGRD"
)

var exchangeRateTypeCodes = schema.MustEnum("SPOT", "SALE", "AGRD")

func (c ExchangeRateType1Code) Validate() error { return exchangeRateTypeCodes.Check(string(c)) }

type ExchangeRate1 struct {
	UnitCcy  *common.ActiveOrHistoricCurrencyCode `xml:"UnitCcy,omitempty" json:"UnitCcy,omitempty"`
	XchgRate *common.BaseOneRate                  `xml:"XchgRate,omitempty" json:"XchgRate,omitempty"`
	RateTp   *ExchangeRateType1Code               `xml:"RateTp,omitempty" json:"RateTp,omitempty"`
	CtrctId  *common.Max35Text                    `xml:"CtrctId,omitempty" json:"CtrctId,omitempty"`
}

func (e ExchangeRate1) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "UnitCcy", e.UnitCcy)
	schema.Optional(&vs, "XchgRate", e.XchgRate)
	schema.Optional(&vs, "RateTp", e.RateTp)
	schema.Optional(&vs, "CtrctId", e.CtrctId)
	return vs.OrNil()
}

type InstructionForCreditorAgent3 struct {
	Cd       *common.ExternalCreditorAgentInstruction1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	InstrInf *common.Max140Text                            `xml:"InstrInf,omitempty" json:"InstrInf,omitempty"`
}

func (i InstructionForCreditorAgent3) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "Cd", i.Cd)
	schema.Optional(&vs, "InstrInf", i.InstrInf)
	return vs.OrNil()
}

type InstructionForDebtorAgent1 struct {
	Cd       *common.ExternalDebtorAgentInstruction1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	InstrInf *common.Max140Text                          `xml:"InstrInf,omitempty" json:"InstrInf,omitempty"`
}

func (i InstructionForDebtorAgent1) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "Cd", i.Cd)
	schema.Optional(&vs, "InstrInf", i.InstrInf)
	return vs.OrNil()
}

type CreditorReferenceType2Choice struct {
	Cd    *common.ExternalCreditorReferenceType1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *common.Max35Text                          `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c CreditorReferenceType2Choice) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "Cd", c.Cd)
	schema.Optional(&vs, "Prtry", c.Prtry)
	return vs.OrNil()
}

type CreditorReferenceType3 struct {
	CdOrPrtry CreditorReferenceType2Choice `xml:"CdOrPrtry" json:"CdOrPrtry"`
	Issr      *common.Max35Text            `xml:"Issr,omitempty" json:"Issr,omitempty"`
}

func (c CreditorReferenceType3) Validate() error {
	var vs schema.Violations
	schema.Required(&vs, "CdOrPrtry", c.CdOrPrtry)
	schema.Optional(&vs, "Issr", c.Issr)
	return vs.OrNil()
}

type CreditorReferenceInformation3 struct {
	Tp  *CreditorReferenceType3 `xml:"Tp,omitempty" json:"Tp,omitempty"`
	Ref *common.Max35Text       `xml:"Ref,omitempty" json:"Ref,omitempty"`
}

func (c CreditorReferenceInformation3) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "Tp", c.Tp)
	schema.Optional(&vs, "Ref", c.Ref)
	return vs.OrNil()
}

type StructuredRemittanceInformation18 struct {
	CdtrRefInf  *CreditorReferenceInformation3 `xml:"CdtrRefInf,omitempty" json:"CdtrRefInf,omitempty"`
	AddtlRmtInf []common.Max140Text            `xml:"AddtlRmtInf,omitempty" json:"AddtlRmtInf,omitempty"`
}

func (s StructuredRemittanceInformation18) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "CdtrRefInf", s.CdtrRefInf)
	schema.Each(&vs, "AddtlRmtInf", s.AddtlRmtInf)
	return vs.OrNil()
}

type RemittanceInformation22 struct {
	Ustrd []common.Max140Text                 `xml:"Ustrd,omitempty" json:"Ustrd,omitempty"`
	Strd  []StructuredRemittanceInformation18 `xml:"Strd,omitempty" json:"Strd,omitempty"`
}

func (r RemittanceInformation22) Validate() error {
	var vs schema.Violations
	schema.Each(&vs, "Ustrd", r.Ustrd)
	schema.Each(&vs, "Strd", r.Strd)
	return vs.OrNil()
}

type PaymentInstruction44 struct {
	PmtInfId        common.Max35Text                              `xml:"PmtInfId" json:"PmtInfId"`
	PmtMtd          PaymentMethod3Code                            `xml:"PmtMtd" json:"PmtMtd"`
	ReqdAdvcTp      *AdviceType1                                  `xml:"ReqdAdvcTp,omitempty" json:"ReqdAdvcTp,omitempty"`
	BtchBookg       *common.BatchBookingIndicator                 `xml:"BtchBookg,omitempty" json:"BtchBookg,omitempty"`
	NbOfTxs         *common.Max15NumericText                      `xml:"NbOfTxs,omitempty" json:"NbOfTxs,omitempty"`
	CtrlSum         *common.DecimalNumber                         `xml:"CtrlSum,omitempty" json:"CtrlSum,omitempty"`
	PmtTpInf        *PaymentTypeInformation26                     `xml:"PmtTpInf,omitempty" json:"PmtTpInf,omitempty"`
	ReqdExctnDt     common.DateAndDateTime2Choice                 `xml:"ReqdExctnDt" json:"ReqdExctnDt"`
	PoolgAdjstmntDt *common.ISODate                               `xml:"PoolgAdjstmntDt,omitempty" json:"PoolgAdjstmntDt,omitempty"`
	Dbtr            PartyIdentification272                        `xml:"Dbtr" json:"Dbtr"`
	DbtrAcct        CashAccount40                                 `xml:"DbtrAcct" json:"DbtrAcct"`
	DbtrAgt         BranchAndFinancialInstitutionIdentification8  `xml:"DbtrAgt" json:"DbtrAgt"`
	DbtrAgtAcct     *CashAccount40                                `xml:"DbtrAgtAcct,omitempty" json:"DbtrAgtAcct,omitempty"`
	InstrForDbtrAgt *common.Max140Text                            `xml:"InstrForDbtrAgt,omitempty" json:"InstrForDbtrAgt,omitempty"`
	UltmtDbtr       *PartyIdentification272                       `xml:"UltmtDbtr,omitempty" json:"UltmtDbtr,omitempty"`
	ChrgBr          *common.ChargeBearerType1Code                 `xml:"ChrgBr,omitempty" json:"ChrgBr,omitempty"`
	ChrgsAcct       *CashAccount40                                `xml:"ChrgsAcct,omitempty" json:"ChrgsAcct,omitempty"`
	ChrgsAcctAgt    *BranchAndFinancialInstitutionIdentification8 `xml:"ChrgsAcctAgt,omitempty" json:"ChrgsAcctAgt,omitempty"`
	CdtTrfTxInf     []CreditTransferTransaction61                 `xml:"CdtTrfTxInf" json:"CdtTrfTxInf"`
}

func (p PaymentInstruction44) Validate() error {
	var vs schema.Violations
	schema.Required(&vs, "PmtInfId", p.PmtInfId)
	schema.Required(&vs, "PmtMtd", p.PmtMtd)
	schema.Optional(&vs, "ReqdAdvcTp", p.ReqdAdvcTp)
	schema.Optional(&vs, "BtchBookg", p.BtchBookg)
	schema.Optional(&vs, "NbOfTxs", p.NbOfTxs)
	schema.Optional(&vs, "CtrlSum", p.CtrlSum)
	schema.Optional(&vs, "PmtTpInf", p.PmtTpInf)
	schema.Required(&vs, "ReqdExctnDt", p.ReqdExctnDt)
	schema.Optional(&vs, "PoolgAdjstmntDt", p.PoolgAdjstmntDt)
	schema.Required(&vs, "Dbtr", p.Dbtr)
	schema.Required(&vs, "DbtrAcct", p.DbtrAcct)
	schema.Required(&vs, "DbtrAgt", p.DbtrAgt)
	schema.Optional(&vs, "DbtrAgtAcct", p.DbtrAgtAcct)
	schema.Optional(&vs, "InstrForDbtrAgt", p.InstrForDbtrAgt)
	schema.Optional(&vs, "UltmtDbtr", p.UltmtDbtr)
	schema.Optional(&vs, "ChrgBr", p.ChrgBr)
	schema.Optional(&vs, "ChrgsAcct", p.ChrgsAcct)
	schema.Optional(&vs, "ChrgsAcctAgt", p.ChrgsAcctAgt)
	schema.Each(&vs, "CdtTrfTxInf", p.CdtTrfTxInf)
	return vs.OrNil()
}

type CreditTransferTransaction61 struct {
	PmtId           PaymentIdentification6                        `xml:"PmtId" json:"PmtId"`
	PmtTpInf        *PaymentTypeInformation26                     `xml:"PmtTpInf,omitempty" json:"PmtTpInf,omitempty"`
	Amt             common.AmountType4Choice                      `xml:"Amt" json:"Amt"`
	XchgRateInf     *ExchangeRate1                                `xml:"XchgRateInf,omitempty" json:"XchgRateInf,omitempty"`
	ChrgBr          *common.ChargeBearerType1Code                 `xml:"ChrgBr,omitempty" json:"ChrgBr,omitempty"`
	UltmtDbtr       *PartyIdentification272                       `xml:"UltmtDbtr,omitempty" json:"UltmtDbtr,omitempty"`
	IntrmyAgt1      *BranchAndFinancialInstitutionIdentification8 `xml:"IntrmyAgt1,omitempty" json:"IntrmyAgt1,omitempty"`
	IntrmyAgt1Acct  *CashAccount40                                `xml:"IntrmyAgt1Acct,omitempty" json:"IntrmyAgt1Acct,omitempty"`
	CdtrAgt         *BranchAndFinancialInstitutionIdentification8 `xml:"CdtrAgt,omitempty" json:"CdtrAgt,omitempty"`
	CdtrAgtAcct     *CashAccount40                                `xml:"CdtrAgtAcct,omitempty" json:"CdtrAgtAcct,omitempty"`
	Cdtr            *PartyIdentification272                       `xml:"Cdtr,omitempty" json:"Cdtr,omitempty"`
	CdtrAcct        *CashAccount40                                `xml:"CdtrAcct,omitempty" json:"CdtrAcct,omitempty"`
	UltmtCdtr       *PartyIdentification272                       `xml:"UltmtCdtr,omitempty" json:"UltmtCdtr,omitempty"`
	InstrForCdtrAgt []InstructionForCreditorAgent3                `xml:"InstrForCdtrAgt,omitempty" json:"InstrForCdtrAgt,omitempty"`
	InstrForDbtrAgt *InstructionForDebtorAgent1                   `xml:"InstrForDbtrAgt,omitempty" json:"InstrForDbtrAgt,omitempty"`
	Purp            *common.Purpose2Choice                        `xml:"Purp,omitempty" json:"Purp,omitempty"`
	RmtInf          *RemittanceInformation22                      `xml:"RmtInf,omitempty" json:"RmtInf,omitempty"`
	SplmtryData     []common.SupplementaryData1                   `xml:"SplmtryData,omitempty" json:"SplmtryData,omitempty"`
}

func (t CreditTransferTransaction61) Validate() error {
	var vs schema.Violations
	schema.Required(&vs, "PmtId", t.PmtId)
	schema.Optional(&vs, "PmtTpInf", t.PmtTpInf)
	schema.Required(&vs, "Amt", t.Amt)
	schema.Optional(&vs, "XchgRateInf", t.XchgRateInf)
	schema.Optional(&vs, "ChrgBr", t.ChrgBr)
	schema.Optional(&vs, "UltmtDbtr", t.UltmtDbtr)
	schema.Optional(&vs, "IntrmyAgt1", t.IntrmyAgt1)
	schema.Optional(&vs, "IntrmyAgt1Acct", t.IntrmyAgt1Acct)
	schema.Optional(&vs, "CdtrAgt", t.CdtrAgt)
	schema.Optional(&vs, "CdtrAgtAcct", t.CdtrAgtAcct)
	schema.Optional(&vs, "Cdtr", t.Cdtr)
	schema.Optional(&vs, "CdtrAcct", t.CdtrAcct)
	schema.Optional(&vs, "UltmtCdtr", t.UltmtCdtr)
	schema.Each(&vs, "InstrForCdtrAgt", t.InstrForCdtrAgt)
	schema.Optional(&vs, "InstrForDbtrAgt", t.InstrForDbtrAgt)
	schema.Optional(&vs, "Purp", t.Purp)
	schema.Optional(&vs, "RmtInf", t.RmtInf)
	schema.Each(&vs, "SplmtryData", t.SplmtryData)
	return vs.OrNil()
}
