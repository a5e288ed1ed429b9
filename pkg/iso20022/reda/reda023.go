// Package reda implements the reference data message definitions.
package reda

import (
	"github.com/Open-Payments/messages-sub014/pkg/iso20022/common"
	"github.com/Open-Payments/messages-sub014/pkg/schema"
)

// SecuritiesAccountModificationRequestV01 is the reda.023.001.01
// message: a request to modify securities account reference data.
type SecuritiesAccountModificationRequestV01 struct {
	MsgHdr      *MessageHeader1                  `xml:"MsgHdr,omitempty" json:"MsgHdr,omitempty"`
	AcctId      SecuritiesAccount19              `xml:"AcctId" json:"AcctId"`
	Mod         []SecuritiesAccountModification2 `xml:"Mod" json:"Mod"`
	SplmtryData []common.SupplementaryData1      `xml:"SplmtryData,omitempty" json:"SplmtryData,omitempty"`
}

func (m SecuritiesAccountModificationRequestV01) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "MsgHdr", m.MsgHdr)
	schema.Required(&vs, "AcctId", m.AcctId)
	schema.Each(&vs, "Mod", m.Mod)
	schema.Each(&vs, "SplmtryData", m.SplmtryData)
	return vs.OrNil()
}

type MessageHeader1 struct {
	MsgId   common.Max35Text    `xml:"MsgId" json:"MsgId"`
	CreDtTm *common.ISODateTime `xml:"CreDtTm,omitempty" json:"CreDtTm,omitempty"`
}

func (h MessageHeader1) Validate() error {
	var vs schema.Violations
	schema.Required(&vs, "MsgId", h.MsgId)
	schema.Optional(&vs, "CreDtTm", h.CreDtTm)
	return vs.OrNil()
}

type SecuritiesAccount19 struct {
	Id common.Max35Text                `xml:"Id" json:"Id"`
	Tp *common.GenericIdentification30 `xml:"Tp,omitempty" json:"Tp,omitempty"`
	Nm *common.Max70Text               `xml:"Nm,omitempty" json:"Nm,omitempty"`
}

func (a SecuritiesAccount19) Validate() error {
	var vs schema.Violations
	schema.Required(&vs, "Id", a.Id)
	schema.Optional(&vs, "Tp", a.Tp)
	schema.Optional(&vs, "Nm", a.Nm)
	return vs.OrNil()
}

type DataModification1Code string

const (
	DataModificationInsert DataModification1Code = "INSE"
	DataModificationUpdate DataModification1Code = "UPDT"
	DataModificationDelete DataModification1Code = "DELT"
)

var dataModificationCodes = schema.MustEnum("INSE", "UPDT", "DELT")

func (c DataModification1Code) Validate() error { return dataModificationCodes.Check(string(c)) }

type SecuritiesAccountModification2 struct {
	ScpIndctn DataModification1Code                `xml:"ScpIndctn" json:"ScpIndctn"`
	ReqdMod   SecuritiesAccountModification2Choice `xml:"ReqdMod" json:"ReqdMod"`
}

func (m SecuritiesAccountModification2) Validate() error {
	var vs schema.Violations
	schema.Required(&vs, "ScpIndctn", m.ScpIndctn)
	schema.Required(&vs, "ReqdMod", m.ReqdMod)
	return vs.OrNil()
}

type SecuritiesAccountModification2Choice struct {
	SysSctiesAcct *SystemSecuritiesAccount5 `xml:"SysSctiesAcct,omitempty" json:"SysSctiesAcct,omitempty"`
	SysRstrctn    *SystemRestriction1       `xml:"SysRstrctn,omitempty" json:"SysRstrctn,omitempty"`
	MktSpcfcAttr  *MarketSpecificAttribute1 `xml:"MktSpcfcAttr,omitempty" json:"MktSpcfcAttr,omitempty"`
}

func (c SecuritiesAccountModification2Choice) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "SysSctiesAcct", c.SysSctiesAcct)
	schema.Optional(&vs, "SysRstrctn", c.SysRstrctn)
	schema.Optional(&vs, "MktSpcfcAttr", c.MktSpcfcAttr)
	return vs.OrNil()
}

type SystemSecuritiesAccount5 struct {
	ClsgDt       *common.ISODate                `xml:"ClsgDt,omitempty" json:"ClsgDt,omitempty"`
	HldInd       *common.TrueFalseIndicator     `xml:"HldInd,omitempty" json:"HldInd,omitempty"`
	NegPos       *common.TrueFalseIndicator     `xml:"NegPos,omitempty" json:"NegPos,omitempty"`
	EndInvstrFlg *common.Exact4AlphaNumericText `xml:"EndInvstrFlg,omitempty" json:"EndInvstrFlg,omitempty"`
	PricgSchme   *common.Exact4AlphaNumericText `xml:"PricgSchme,omitempty" json:"PricgSchme,omitempty"`
}

func (a SystemSecuritiesAccount5) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "ClsgDt", a.ClsgDt)
	schema.Optional(&vs, "HldInd", a.HldInd)
	schema.Optional(&vs, "NegPos", a.NegPos)
	schema.Optional(&vs, "EndInvstrFlg", a.EndInvstrFlg)
	schema.Optional(&vs, "PricgSchme", a.PricgSchme)
	return vs.OrNil()
}

type SystemRestriction1 struct {
	VldFr common.ISODateTime  `xml:"VldFr" json:"VldFr"`
	VldTo *common.ISODateTime `xml:"VldTo,omitempty" json:"VldTo,omitempty"`
	Tp    common.Max35Text    `xml:"Tp" json:"Tp"`
}

func (r SystemRestriction1) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "VldTo", r.VldTo)
	schema.Required(&vs, "Tp", r.Tp)
	return vs.OrNil()
}

type MarketSpecificAttribute1 struct {
	Nm  common.Max35Text  `xml:"Nm" json:"Nm"`
	Val common.Max350Text `xml:"Val" json:"Val"`
}

func (a MarketSpecificAttribute1) Validate() error {
	var vs schema.Violations
	schema.Required(&vs, "Nm", a.Nm)
	schema.Required(&vs, "Val", a.Val)
	return vs.OrNil()
}
