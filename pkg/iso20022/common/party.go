package common

import (
	"github.com/Open-Payments/messages-sub014/pkg/schema"
)

type GenericIdentification30 struct {
	Id      Exact4AlphaNumericText `xml:"Id" json:"Id"`
	Issr    Max35Text              `xml:"Issr" json:"Issr"`
	SchmeNm *Max35Text             `xml:"SchmeNm,omitempty" json:"SchmeNm,omitempty"`
}

func (g GenericIdentification30) Validate() error {
	var vs schema.Violations
	schema.Required(&vs, "Id", g.Id)
	schema.Required(&vs, "Issr", g.Issr)
	schema.Optional(&vs, "SchmeNm", g.SchmeNm)
	return vs.OrNil()
}

type GenericIdentification36 struct {
	Id      Max35Text  `xml:"Id" json:"Id"`
	Issr    Max35Text  `xml:"Issr" json:"Issr"`
	SchmeNm *Max35Text `xml:"SchmeNm,omitempty" json:"SchmeNm,omitempty"`
}

func (g GenericIdentification36) Validate() error {
	var vs schema.Violations
	schema.Required(&vs, "Id", g.Id)
	schema.Required(&vs, "Issr", g.Issr)
	schema.Optional(&vs, "SchmeNm", g.SchmeNm)
	return vs.OrNil()
}

type AddressType3Choice struct {
	Cd    *AddressType2Code        `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *GenericIdentification30 `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c AddressType3Choice) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "Cd", c.Cd)
	schema.Optional(&vs, "Prtry", c.Prtry)
	return vs.OrNil()
}

type PostalAddress24 struct {
	AdrTp       *AddressType3Choice `xml:"AdrTp,omitempty" json:"AdrTp,omitempty"`
	Dept        *Max70Text          `xml:"Dept,omitempty" json:"Dept,omitempty"`
	SubDept     *Max70Text          `xml:"SubDept,omitempty" json:"SubDept,omitempty"`
	StrtNm      *Max70Text          `xml:"StrtNm,omitempty" json:"StrtNm,omitempty"`
	BldgNb      *Max16Text          `xml:"BldgNb,omitempty" json:"BldgNb,omitempty"`
	BldgNm      *Max35Text          `xml:"BldgNm,omitempty" json:"BldgNm,omitempty"`
	Flr         *Max70Text          `xml:"Flr,omitempty" json:"Flr,omitempty"`
	PstBx       *Max16Text          `xml:"PstBx,omitempty" json:"PstBx,omitempty"`
	Room        *Max70Text          `xml:"Room,omitempty" json:"Room,omitempty"`
	PstCd       *Max16Text          `xml:"PstCd,omitempty" json:"PstCd,omitempty"`
	TwnNm       *Max35Text          `xml:"TwnNm,omitempty" json:"TwnNm,omitempty"`
	TwnLctnNm   *Max35Text          `xml:"TwnLctnNm,omitempty" json:"TwnLctnNm,omitempty"`
	DstrctNm    *Max35Text          `xml:"DstrctNm,omitempty" json:"DstrctNm,omitempty"`
	CtrySubDvsn *Max35Text          `xml:"CtrySubDvsn,omitempty" json:"CtrySubDvsn,omitempty"`
	Ctry        *CountryCode        `xml:"Ctry,omitempty" json:"Ctry,omitempty"`
	AdrLine     []Max70Text         `xml:"AdrLine,omitempty" json:"AdrLine,omitempty"`
}

func (a PostalAddress24) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "AdrTp", a.AdrTp)
	schema.Optional(&vs, "Dept", a.Dept)
	schema.Optional(&vs, "SubDept", a.SubDept)
	schema.Optional(&vs, "StrtNm", a.StrtNm)
	schema.Optional(&vs, "BldgNb", a.BldgNb)
	schema.Optional(&vs, "BldgNm", a.BldgNm)
	schema.Optional(&vs, "Flr", a.Flr)
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

type OrganisationIdentificationSchemeName1Choice struct {
	Cd    *ExternalOrganisationIdentification1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *Max35Text                               `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c OrganisationIdentificationSchemeName1Choice) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "Cd", c.Cd)
	schema.Optional(&vs, "Prtry", c.Prtry)
	return vs.OrNil()
}

type GenericOrganisationIdentification1 struct {
	Id      Max35Text                                    `xml:"Id" json:"Id"`
	SchmeNm *OrganisationIdentificationSchemeName1Choice `xml:"SchmeNm,omitempty" json:"SchmeNm,omitempty"`
	Issr    *Max35Text                                   `xml:"Issr,omitempty" json:"Issr,omitempty"`
}

func (g GenericOrganisationIdentification1) Validate() error {
	var vs schema.Violations
	schema.Required(&vs, "Id", g.Id)
	schema.Optional(&vs, "SchmeNm", g.SchmeNm)
	schema.Optional(&vs, "Issr", g.Issr)
	return vs.OrNil()
}

type OrganisationIdentification29 struct {
	AnyBIC *AnyBICDec2014Identifier             `xml:"AnyBIC,omitempty" json:"AnyBIC,omitempty"`
	LEI    *LEIIdentifier                       `xml:"LEI,omitempty" json:"LEI,omitempty"`
	Othr   []GenericOrganisationIdentification1 `xml:"Othr,omitempty" json:"Othr,omitempty"`
}

func (o OrganisationIdentification29) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "AnyBIC", o.AnyBIC)
	schema.Optional(&vs, "LEI", o.LEI)
	schema.Each(&vs, "Othr", o.Othr)
	return vs.OrNil()
}

type DateAndPlaceOfBirth1 struct {
	BirthDt     ISODate     `xml:"BirthDt" json:"BirthDt"`
	PrvcOfBirth *Max35Text  `xml:"PrvcOfBirth,omitempty" json:"PrvcOfBirth,omitempty"`
	CityOfBirth Max35Text   `xml:"CityOfBirth" json:"CityOfBirth"`
	CtryOfBirth CountryCode `xml:"CtryOfBirth" json:"CtryOfBirth"`
}

func (d DateAndPlaceOfBirth1) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "PrvcOfBirth", d.PrvcOfBirth)
	schema.Required(&vs, "CityOfBirth", d.CityOfBirth)
	schema.Required(&vs, "CtryOfBirth", d.CtryOfBirth)
	return vs.OrNil()
}

type PersonIdentificationSchemeName1Choice struct {
	Cd    *ExternalPersonIdentification1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *Max35Text                         `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c PersonIdentificationSchemeName1Choice) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "Cd", c.Cd)
	schema.Optional(&vs, "Prtry", c.Prtry)
	return vs.OrNil()
}

type GenericPersonIdentification1 struct {
	Id      Max35Text                              `xml:"Id" json:"Id"`
	SchmeNm *PersonIdentificationSchemeName1Choice `xml:"SchmeNm,omitempty" json:"SchmeNm,omitempty"`
	Issr    *Max35Text                             `xml:"Issr,omitempty" json:"Issr,omitempty"`
}

func (g GenericPersonIdentification1) Validate() error {
	var vs schema.Violations
	schema.Required(&vs, "Id", g.Id)
	schema.Optional(&vs, "SchmeNm", g.SchmeNm)
	schema.Optional(&vs, "Issr", g.Issr)
	return vs.OrNil()
}

type PersonIdentification13 struct {
	DtAndPlcOfBirth *DateAndPlaceOfBirth1          `xml:"DtAndPlcOfBirth,omitempty" json:"DtAndPlcOfBirth,omitempty"`
	Othr            []GenericPersonIdentification1 `xml:"Othr,omitempty" json:"Othr,omitempty"`
}

func (p PersonIdentification13) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "DtAndPlcOfBirth", p.DtAndPlcOfBirth)
	schema.Each(&vs, "Othr", p.Othr)
	return vs.OrNil()
}

type Party38Choice struct {
	OrgId  *OrganisationIdentification29 `xml:"OrgId,omitempty" json:"OrgId,omitempty"`
	PrvtId *PersonIdentification13       `xml:"PrvtId,omitempty" json:"PrvtId,omitempty"`
}

func (c Party38Choice) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "OrgId", c.OrgId)
	schema.Optional(&vs, "PrvtId", c.PrvtId)
	return vs.OrNil()
}

type OtherContact1 struct {
	ChanlTp Max4Text    `xml:"ChanlTp" json:"ChanlTp"`
	Id      *Max128Text `xml:"Id,omitempty" json:"Id,omitempty"`
}

func (o OtherContact1) Validate() error {
	var vs schema.Violations
	schema.Required(&vs, "ChanlTp", o.ChanlTp)
	schema.Optional(&vs, "Id", o.Id)
	return vs.OrNil()
}

type Contact4 struct {
	NmPrfx    *NamePrefix2Code             `xml:"NmPrfx,omitempty" json:"NmPrfx,omitempty"`
	Nm        *Max140Text                  `xml:"Nm,omitempty" json:"Nm,omitempty"`
	PhneNb    *PhoneNumber                 `xml:"PhneNb,omitempty" json:"PhneNb,omitempty"`
	MobNb     *PhoneNumber                 `xml:"MobNb,omitempty" json:"MobNb,omitempty"`
	FaxNb     *PhoneNumber                 `xml:"FaxNb,omitempty" json:"FaxNb,omitempty"`
	EmailAdr  *Max2048Text                 `xml:"EmailAdr,omitempty" json:"EmailAdr,omitempty"`
	EmailPurp *Max35Text                   `xml:"EmailPurp,omitempty" json:"EmailPurp,omitempty"`
	JobTitl   *Max35Text                   `xml:"JobTitl,omitempty" json:"JobTitl,omitempty"`
	Rspnsblty *Max35Text                   `xml:"Rspnsblty,omitempty" json:"Rspnsblty,omitempty"`
	Dept      *Max70Text                   `xml:"Dept,omitempty" json:"Dept,omitempty"`
	Othr      []OtherContact1              `xml:"Othr,omitempty" json:"Othr,omitempty"`
	PrefrdMtd *PreferredContactMethod1Code `xml:"PrefrdMtd,omitempty" json:"PrefrdMtd,omitempty"`
}

func (c Contact4) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "NmPrfx", c.NmPrfx)
	schema.Optional(&vs, "Nm", c.Nm)
	schema.Optional(&vs, "PhneNb", c.PhneNb)
	schema.Optional(&vs, "MobNb", c.MobNb)
	schema.Optional(&vs, "FaxNb", c.FaxNb)
	schema.Optional(&vs, "EmailAdr", c.EmailAdr)
	schema.Optional(&vs, "EmailPurp", c.EmailPurp)
	schema.Optional(&vs, "JobTitl", c.JobTitl)
	schema.Optional(&vs, "Rspnsblty", c.Rspnsblty)
	schema.Optional(&vs, "Dept", c.Dept)
	schema.Each(&vs, "Othr", c.Othr)
	schema.Optional(&vs, "PrefrdMtd", c.PrefrdMtd)
	return vs.OrNil()
}

// PartyIdentification135 identifies a party by name, address, and an
// organisation or private identification.
type PartyIdentification135 struct {
	Nm        *Max140Text      `xml:"Nm,omitempty" json:"Nm,omitempty"`
	PstlAdr   *PostalAddress24 `xml:"PstlAdr,omitempty" json:"PstlAdr,omitempty"`
	Id        *Party38Choice   `xml:"Id,omitempty" json:"Id,omitempty"`
	CtryOfRes *CountryCode     `xml:"CtryOfRes,omitempty" json:"CtryOfRes,omitempty"`
	CtctDtls  *Contact4        `xml:"CtctDtls,omitempty" json:"CtctDtls,omitempty"`
}

func (p PartyIdentification135) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "Nm", p.Nm)
	schema.Optional(&vs, "PstlAdr", p.PstlAdr)
	schema.Optional(&vs, "Id", p.Id)
	schema.Optional(&vs, "CtryOfRes", p.CtryOfRes)
	schema.Optional(&vs, "CtctDtls", p.CtctDtls)
	return vs.OrNil()
}

// Party44Choice selects between an organisation and a financial
// institution, as used in the business application header.
type Party44Choice struct {
	OrgId *PartyIdentification135                       `xml:"OrgId,omitempty" json:"OrgId,omitempty"`
	FIId  *BranchAndFinancialInstitutionIdentification6 `xml:"FIId,omitempty" json:"FIId,omitempty"`
}

func (c Party44Choice) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "OrgId", c.OrgId)
	schema.Optional(&vs, "FIId", c.FIId)
	return vs.OrNil()
}

// PostalAddress1 is the older address shape still used by the
// administration messages.
type PostalAddress1 struct {
	AdrTp       *AddressType2Code `xml:"AdrTp,omitempty" json:"AdrTp,omitempty"`
	AdrLine     []Max70Text       `xml:"AdrLine,omitempty" json:"AdrLine,omitempty"`
	StrtNm      *Max70Text        `xml:"StrtNm,omitempty" json:"StrtNm,omitempty"`
	BldgNb      *Max16Text        `xml:"BldgNb,omitempty" json:"BldgNb,omitempty"`
	PstCd       *Max16Text        `xml:"PstCd,omitempty" json:"PstCd,omitempty"`
	TwnNm       *Max35Text        `xml:"TwnNm,omitempty" json:"TwnNm,omitempty"`
	CtrySubDvsn *Max35Text        `xml:"CtrySubDvsn,omitempty" json:"CtrySubDvsn,omitempty"`
	Ctry        CountryCode       `xml:"Ctry" json:"Ctry"`
}

func (a PostalAddress1) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "AdrTp", a.AdrTp)
	schema.Each(&vs, "AdrLine", a.AdrLine)
	schema.Optional(&vs, "StrtNm", a.StrtNm)
	schema.Optional(&vs, "BldgNb", a.BldgNb)
	schema.Optional(&vs, "PstCd", a.PstCd)
	schema.Optional(&vs, "TwnNm", a.TwnNm)
	schema.Optional(&vs, "CtrySubDvsn", a.CtrySubDvsn)
	schema.Required(&vs, "Ctry", a.Ctry)
	return vs.OrNil()
}

type NameAndAddress5 struct {
	Nm  Max350Text      `xml:"Nm" json:"Nm"`
	Adr *PostalAddress1 `xml:"Adr,omitempty" json:"Adr,omitempty"`
}

func (n NameAndAddress5) Validate() error {
	var vs schema.Violations
	schema.Required(&vs, "Nm", n.Nm)
	schema.Optional(&vs, "Adr", n.Adr)
	return vs.OrNil()
}

type PartyIdentification120Choice struct {
	AnyBIC   *AnyBICDec2014Identifier `xml:"AnyBIC,omitempty" json:"AnyBIC,omitempty"`
	PrtryId  *GenericIdentification36 `xml:"PrtryId,omitempty" json:"PrtryId,omitempty"`
	NmAndAdr *NameAndAddress5         `xml:"NmAndAdr,omitempty" json:"NmAndAdr,omitempty"`
}

func (c PartyIdentification120Choice) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "AnyBIC", c.AnyBIC)
	schema.Optional(&vs, "PrtryId", c.PrtryId)
	schema.Optional(&vs, "NmAndAdr", c.NmAndAdr)
	return vs.OrNil()
}

type PartyIdentification136 struct {
	Id  PartyIdentification120Choice `xml:"Id" json:"Id"`
	LEI *LEIIdentifier               `xml:"LEI,omitempty" json:"LEI,omitempty"`
}

func (p PartyIdentification136) Validate() error {
	var vs schema.Violations
	schema.Required(&vs, "Id", p.Id)
	schema.Optional(&vs, "LEI", p.LEI)
	return vs.OrNil()
}
