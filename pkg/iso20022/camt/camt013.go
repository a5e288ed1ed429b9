// Package camt implements the cash management message definitions.
package camt

import (
	"github.com/Open-Payments/messages-sub014/pkg/iso20022/common"
	"github.com/Open-Payments/messages-sub014/pkg/schema"
)

// GetMemberV04 is the camt.013.001.04 message: a query for system
// member reference data.
type GetMemberV04 struct {
	MsgHdr      MessageHeader9              `xml:"MsgHdr" json:"MsgHdr"`
	MmbQryDef   *MemberQueryDefinition4     `xml:"MmbQryDef,omitempty" json:"MmbQryDef,omitempty"`
	SplmtryData []common.SupplementaryData1 `xml:"SplmtryData,omitempty" json:"SplmtryData,omitempty"`
}

func (m GetMemberV04) Validate() error {
	var vs schema.Violations
	schema.Required(&vs, "MsgHdr", m.MsgHdr)
	schema.Optional(&vs, "MmbQryDef", m.MmbQryDef)
	schema.Each(&vs, "SplmtryData", m.SplmtryData)
	return vs.OrNil()
}

type RequestType4Choice struct {
	PmtCtrl *common.ExternalPaymentControlRequestType1Code `xml:"PmtCtrl,omitempty" json:"PmtCtrl,omitempty"`
	Enqry   *common.ExternalEnquiryRequestType1Code        `xml:"Enqry,omitempty" json:"Enqry,omitempty"`
	Prtry   *common.GenericIdentification1                 `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c RequestType4Choice) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "PmtCtrl", c.PmtCtrl)
	schema.Optional(&vs, "Enqry", c.Enqry)
	schema.Optional(&vs, "Prtry", c.Prtry)
	return vs.OrNil()
}

type MessageHeader9 struct {
	MsgId   common.Max35Text    `xml:"MsgId" json:"MsgId"`
	CreDtTm *common.ISODateTime `xml:"CreDtTm,omitempty" json:"CreDtTm,omitempty"`
	ReqTp   *RequestType4Choice `xml:"ReqTp,omitempty" json:"ReqTp,omitempty"`
}

func (h MessageHeader9) Validate() error {
	var vs schema.Violations
	schema.Required(&vs, "MsgId", h.MsgId)
	schema.Optional(&vs, "CreDtTm", h.CreDtTm)
	schema.Optional(&vs, "ReqTp", h.ReqTp)
	return vs.OrNil()
}

type QueryType2Code string

const (
	QueryAll      QueryType2Code = "ALLL"
	QueryChanged  QueryType2Code = "CHNG"
	QueryModified QueryType2Code = "MODF"
	QueryDeleted  QueryType2Code = "DELD"
)

var queryTypeCodes = schema.MustEnum("ALLL", "CHNG", "MODF", "DELD")

func (c QueryType2Code) Validate() error { return queryTypeCodes.Check(string(c)) }

type MemberQueryDefinition4 struct {
	QryTp   *QueryType2Code                  `xml:"QryTp,omitempty" json:"QryTp,omitempty"`
	MmbCrit *MemberCriteriaDefinition2Choice `xml:"MmbCrit,omitempty" json:"MmbCrit,omitempty"`
}

func (q MemberQueryDefinition4) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "QryTp", q.QryTp)
	schema.Optional(&vs, "MmbCrit", q.MmbCrit)
	return vs.OrNil()
}

type MemberCriteriaDefinition2Choice struct {
	QryNm   *common.Max35Text `xml:"QryNm,omitempty" json:"QryNm,omitempty"`
	NewCrit *MemberCriteria4  `xml:"NewCrit,omitempty" json:"NewCrit,omitempty"`
}

func (c MemberCriteriaDefinition2Choice) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "QryNm", c.QryNm)
	schema.Optional(&vs, "NewCrit", c.NewCrit)
	return vs.OrNil()
}

type MemberCriteria4 struct {
	NewQryNm *common.Max35Text       `xml:"NewQryNm,omitempty" json:"NewQryNm,omitempty"`
	SchCrit  []MemberSearchCriteria4 `xml:"SchCrit,omitempty" json:"SchCrit,omitempty"`
	RtrCrit  *MemberReturnCriteria1  `xml:"RtrCrit,omitempty" json:"RtrCrit,omitempty"`
}

func (c MemberCriteria4) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "NewQryNm", c.NewQryNm)
	schema.Each(&vs, "SchCrit", c.SchCrit)
	schema.Optional(&vs, "RtrCrit", c.RtrCrit)
	return vs.OrNil()
}

type MemberIdentification3Choice struct {
	BICFI       *common.BICFIDec2014Identifier              `xml:"BICFI,omitempty" json:"BICFI,omitempty"`
	ClrSysMmbId *common.ClearingSystemMemberIdentification2 `xml:"ClrSysMmbId,omitempty" json:"ClrSysMmbId,omitempty"`
	Othr        *common.GenericFinancialIdentification1     `xml:"Othr,omitempty" json:"Othr,omitempty"`
}

func (c MemberIdentification3Choice) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "BICFI", c.BICFI)
	schema.Optional(&vs, "ClrSysMmbId", c.ClrSysMmbId)
	schema.Optional(&vs, "Othr", c.Othr)
	return vs.OrNil()
}

type SystemMemberType1Choice struct {
	Cd    *common.ExternalSystemMemberType1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *common.Max35Text                     `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c SystemMemberType1Choice) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "Cd", c.Cd)
	schema.Optional(&vs, "Prtry", c.Prtry)
	return vs.OrNil()
}

type MemberStatus1Code string

const (
	MemberStatusEnabled  MemberStatus1Code = "ENBL"
	MemberStatusDisabled MemberStatus1Code = "DSBL"
	MemberStatusDeleted  MemberStatus1Code = "DLTD"
	MemberStatusJoining  MemberStatus1Code = "JOIN"
)

var memberStatusCodes = schema.MustEnum("ENBL", "DSBL", "DLTD", "JOIN")

func (c MemberStatus1Code) Validate() error { return memberStatusCodes.Check(string(c)) }

type SystemMemberStatus1Choice struct {
	Cd    *MemberStatus1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *common.Max35Text  `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c SystemMemberStatus1Choice) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "Cd", c.Cd)
	schema.Optional(&vs, "Prtry", c.Prtry)
	return vs.OrNil()
}

type MemberSearchCriteria4 struct {
	Id  []MemberIdentification3Choice `xml:"Id,omitempty" json:"Id,omitempty"`
	Tp  []SystemMemberType1Choice     `xml:"Tp,omitempty" json:"Tp,omitempty"`
	Sts []SystemMemberStatus1Choice   `xml:"Sts,omitempty" json:"Sts,omitempty"`
}

func (c MemberSearchCriteria4) Validate() error {
	var vs schema.Violations
	schema.Each(&vs, "Id", c.Id)
	schema.Each(&vs, "Tp", c.Tp)
	schema.Each(&vs, "Sts", c.Sts)
	return vs.OrNil()
}

type MemberReturnCriteria1 struct {
	NmInd        *common.RequestedIndicator `xml:"NmInd,omitempty" json:"NmInd,omitempty"`
	MmbRtrAdrInd *common.RequestedIndicator `xml:"MmbRtrAdrInd,omitempty" json:"MmbRtrAdrInd,omitempty"`
	AcctInd      *common.RequestedIndicator `xml:"AcctInd,omitempty" json:"AcctInd,omitempty"`
	TpInd        *common.RequestedIndicator `xml:"TpInd,omitempty" json:"TpInd,omitempty"`
	StsInd       *common.RequestedIndicator `xml:"StsInd,omitempty" json:"StsInd,omitempty"`
	CtctRefInd   *common.RequestedIndicator `xml:"CtctRefInd,omitempty" json:"CtctRefInd,omitempty"`
	ComAdrInd    *common.RequestedIndicator `xml:"ComAdrInd,omitempty" json:"ComAdrInd,omitempty"`
}

func (MemberReturnCriteria1) Validate() error { return nil }
