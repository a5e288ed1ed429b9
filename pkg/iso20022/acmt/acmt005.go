// Package acmt implements the account management message definitions.
package acmt

import (
	"github.com/Open-Payments/messages-sub014/pkg/iso20022/common"
	"github.com/Open-Payments/messages-sub014/pkg/schema"
)

// RequestForAccountManagementStatusReportV06 is the acmt.005.001.06
// message: a request for the status of an account management
// instruction.
type RequestForAccountManagementStatusReportV06 struct {
	MsgId   common.MessageIdentification1      `xml:"MsgId" json:"MsgId"`
	ReqDtls AccountManagementMessageReference5 `xml:"ReqDtls" json:"ReqDtls"`
}

func (m RequestForAccountManagementStatusReportV06) Validate() error {
	var vs schema.Violations
	schema.Required(&vs, "MsgId", m.MsgId)
	schema.Required(&vs, "ReqDtls", m.ReqDtls)
	return vs.OrNil()
}

type AccountManagementType3Code string

const (
	AccountManagementOpening      AccountManagementType3Code = "ACCM"
	AccountManagementModification AccountManagementType3Code = "ACCO"
	AccountManagementGetAccount   AccountManagementType3Code = "GACC"
	AccountManagementStatus       AccountManagementType3Code = "ACST"
)

var accountManagementTypeCodes = schema.MustEnum("ACCM", "ACCO", "GACC", "ACST")

func (c AccountManagementType3Code) Validate() error {
	return accountManagementTypeCodes.Check(string(c))
}

type AccountManagementMessageReference5 struct {
	LkdRef      *LinkedMessage5Choice      `xml:"LkdRef,omitempty" json:"LkdRef,omitempty"`
	StsReqTp    AccountManagementType3Code `xml:"StsReqTp" json:"StsReqTp"`
	AcctApplId  *common.Max35Text          `xml:"AcctApplId,omitempty" json:"AcctApplId,omitempty"`
	ExstgAcctId *Account23                 `xml:"ExstgAcctId,omitempty" json:"ExstgAcctId,omitempty"`
	InvstmtAcct *InvestmentAccount77       `xml:"InvstmtAcct,omitempty" json:"InvstmtAcct,omitempty"`
}

func (r AccountManagementMessageReference5) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "LkdRef", r.LkdRef)
	schema.Required(&vs, "StsReqTp", r.StsReqTp)
	schema.Optional(&vs, "AcctApplId", r.AcctApplId)
	schema.Optional(&vs, "ExstgAcctId", r.ExstgAcctId)
	schema.Optional(&vs, "InvstmtAcct", r.InvstmtAcct)
	return vs.OrNil()
}

type LinkedMessage5Choice struct {
	PrvsRef *AdditionalReference13 `xml:"PrvsRef,omitempty" json:"PrvsRef,omitempty"`
	OthrRef *AdditionalReference13 `xml:"OthrRef,omitempty" json:"OthrRef,omitempty"`
}

func (c LinkedMessage5Choice) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "PrvsRef", c.PrvsRef)
	schema.Optional(&vs, "OthrRef", c.OthrRef)
	return vs.OrNil()
}

type AdditionalReference13 struct {
	Ref     common.Max35Text              `xml:"Ref" json:"Ref"`
	RefIssr *PartyIdentification125Choice `xml:"RefIssr,omitempty" json:"RefIssr,omitempty"`
	MsgNm   *common.Max35Text             `xml:"MsgNm,omitempty" json:"MsgNm,omitempty"`
}

func (a AdditionalReference13) Validate() error {
	var vs schema.Violations
	schema.Required(&vs, "Ref", a.Ref)
	schema.Optional(&vs, "RefIssr", a.RefIssr)
	schema.Optional(&vs, "MsgNm", a.MsgNm)
	return vs.OrNil()
}

type PartyIdentification125Choice struct {
	AnyBIC   *common.AnyBICDec2014Identifier `xml:"AnyBIC,omitempty" json:"AnyBIC,omitempty"`
	PrtryId  *common.GenericIdentification1  `xml:"PrtryId,omitempty" json:"PrtryId,omitempty"`
	NmAndAdr *common.NameAndAddress5         `xml:"NmAndAdr,omitempty" json:"NmAndAdr,omitempty"`
}

func (c PartyIdentification125Choice) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "AnyBIC", c.AnyBIC)
	schema.Optional(&vs, "PrtryId", c.PrtryId)
	schema.Optional(&vs, "NmAndAdr", c.NmAndAdr)
	return vs.OrNil()
}

type PartyIdentification139 struct {
	Pty PartyIdentification125Choice `xml:"Pty" json:"Pty"`
	LEI *common.LEIIdentifier        `xml:"LEI,omitempty" json:"LEI,omitempty"`
}

func (p PartyIdentification139) Validate() error {
	var vs schema.Violations
	schema.Required(&vs, "Pty", p.Pty)
	schema.Optional(&vs, "LEI", p.LEI)
	return vs.OrNil()
}

type Account23 struct {
	AcctId       common.Max35Text               `xml:"AcctId" json:"AcctId"`
	RltdAcctDtls *common.GenericIdentification1 `xml:"RltdAcctDtls,omitempty" json:"RltdAcctDtls,omitempty"`
}

func (a Account23) Validate() error {
	var vs schema.Violations
	schema.Required(&vs, "AcctId", a.AcctId)
	schema.Optional(&vs, "RltdAcctDtls", a.RltdAcctDtls)
	return vs.OrNil()
}

type GenderCode string

const (
	GenderMale   GenderCode = "MALE"
	GenderFemale GenderCode = "FEMA"
)

var genderCodes = schema.MustEnum("MALE", "FEMA")

func (c GenderCode) Validate() error { return genderCodes.Check(string(c)) }

type IndividualPerson30 struct {
	GvnNm   *common.Max35Text `xml:"GvnNm,omitempty" json:"GvnNm,omitempty"`
	MddlNm  *common.Max35Text `xml:"MddlNm,omitempty" json:"MddlNm,omitempty"`
	Nm      common.Max350Text `xml:"Nm" json:"Nm"`
	Gndr    *GenderCode       `xml:"Gndr,omitempty" json:"Gndr,omitempty"`
	BirthDt *common.ISODate   `xml:"BirthDt,omitempty" json:"BirthDt,omitempty"`
}

func (p IndividualPerson30) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "GvnNm", p.GvnNm)
	schema.Optional(&vs, "MddlNm", p.MddlNm)
	schema.Required(&vs, "Nm", p.Nm)
	schema.Optional(&vs, "Gndr", p.Gndr)
	schema.Optional(&vs, "BirthDt", p.BirthDt)
	return vs.OrNil()
}

type PartyIdentificationType7Code string

var partyIdentificationTypeCodes = schema.MustEnum(
	"ATIN", "IDCD", "NRIN", "OTHR", "PASS", "POCD", "SOCS", "SRSA", "GUNL",
	"GTIN", "ITIN", "CPFA", "AREG", "DRLC", "EMID", "NINV", "INCL", "GIIN",
)

func (c PartyIdentificationType7Code) Validate() error {
	return partyIdentificationTypeCodes.Check(string(c))
}

type GenericIdentification47 struct {
	Id      common.Exact4AlphaNumericText `xml:"Id" json:"Id"`
	Issr    common.Max4AlphaNumericText   `xml:"Issr" json:"Issr"`
	SchmeNm *common.Max4AlphaNumericText  `xml:"SchmeNm,omitempty" json:"SchmeNm,omitempty"`
}

func (g GenericIdentification47) Validate() error {
	var vs schema.Violations
	schema.Required(&vs, "Id", g.Id)
	schema.Required(&vs, "Issr", g.Issr)
	schema.Optional(&vs, "SchmeNm", g.SchmeNm)
	return vs.OrNil()
}

type OtherIdentification3Choice struct {
	Cd    *PartyIdentificationType7Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *GenericIdentification47      `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c OtherIdentification3Choice) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "Cd", c.Cd)
	schema.Optional(&vs, "Prtry", c.Prtry)
	return vs.OrNil()
}

type GenericIdentification81 struct {
	Id   common.Max35Text           `xml:"Id" json:"Id"`
	IdTp OtherIdentification3Choice `xml:"IdTp" json:"IdTp"`
}

func (g GenericIdentification81) Validate() error {
	var vs schema.Violations
	schema.Required(&vs, "Id", g.Id)
	schema.Required(&vs, "IdTp", g.IdTp)
	return vs.OrNil()
}

type IndividualPersonIdentification2Choice struct {
	IdNb   *GenericIdentification81 `xml:"IdNb,omitempty" json:"IdNb,omitempty"`
	PrsnNm *IndividualPerson30      `xml:"PrsnNm,omitempty" json:"PrsnNm,omitempty"`
}

func (c IndividualPersonIdentification2Choice) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "IdNb", c.IdNb)
	schema.Optional(&vs, "PrsnNm", c.PrsnNm)
	return vs.OrNil()
}

type OwnerIdentification3Choice struct {
	IndvOwnrId *IndividualPersonIdentification2Choice `xml:"IndvOwnrId,omitempty" json:"IndvOwnrId,omitempty"`
	OrgOwnrId  *PartyIdentification139                `xml:"OrgOwnrId,omitempty" json:"OrgOwnrId,omitempty"`
}

func (c OwnerIdentification3Choice) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "IndvOwnrId", c.IndvOwnrId)
	schema.Optional(&vs, "OrgOwnrId", c.OrgOwnrId)
	return vs.OrNil()
}

type InvestmentAccount77 struct {
	AcctId    common.Max35Text              `xml:"AcctId" json:"AcctId"`
	AcctNm    *common.Max35Text             `xml:"AcctNm,omitempty" json:"AcctNm,omitempty"`
	AcctDsgnt *common.Max35Text             `xml:"AcctDsgnt,omitempty" json:"AcctDsgnt,omitempty"`
	OwnrId    *OwnerIdentification3Choice   `xml:"OwnrId,omitempty" json:"OwnrId,omitempty"`
	AcctSvcr  *PartyIdentification125Choice `xml:"AcctSvcr,omitempty" json:"AcctSvcr,omitempty"`
}

func (a InvestmentAccount77) Validate() error {
	var vs schema.Violations
	schema.Required(&vs, "AcctId", a.AcctId)
	schema.Optional(&vs, "AcctNm", a.AcctNm)
	schema.Optional(&vs, "AcctDsgnt", a.AcctDsgnt)
	schema.Optional(&vs, "OwnrId", a.OwnrId)
	schema.Optional(&vs, "AcctSvcr", a.AcctSvcr)
	return vs.OrNil()
}
