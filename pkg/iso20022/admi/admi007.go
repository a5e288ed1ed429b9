package admi

import (
	"github.com/Open-Payments/messages-sub014/pkg/iso20022/common"
	"github.com/Open-Payments/messages-sub014/pkg/schema"
)

// ReceiptAcknowledgementV01 is the admi.007.001.01 message: an
// acknowledgement that one or more requests were received and how they
// were handled.
type ReceiptAcknowledgementV01 struct {
	MsgId       MessageHeader10                 `xml:"MsgId" json:"MsgId"`
	Rpt         []ReceiptAcknowledgementReport2 `xml:"Rpt" json:"Rpt"`
	SplmtryData []common.SupplementaryData1     `xml:"SplmtryData,omitempty" json:"SplmtryData,omitempty"`
}

func (m ReceiptAcknowledgementV01) Validate() error {
	var vs schema.Violations
	schema.Required(&vs, "MsgId", m.MsgId)
	schema.Each(&vs, "Rpt", m.Rpt)
	schema.Each(&vs, "SplmtryData", m.SplmtryData)
	return vs.OrNil()
}

type MessageHeader10 struct {
	MsgId   common.Max35Text    `xml:"MsgId" json:"MsgId"`
	CreDtTm *common.ISODateTime `xml:"CreDtTm,omitempty" json:"CreDtTm,omitempty"`
	QryNm   *common.Max35Text   `xml:"QryNm,omitempty" json:"QryNm,omitempty"`
}

func (h MessageHeader10) Validate() error {
	var vs schema.Violations
	schema.Required(&vs, "MsgId", h.MsgId)
	schema.Optional(&vs, "CreDtTm", h.CreDtTm)
	schema.Optional(&vs, "QryNm", h.QryNm)
	return vs.OrNil()
}

type MessageReference1 struct {
	Ref     common.Max35Text               `xml:"Ref" json:"Ref"`
	MsgNm   *common.Max35Text              `xml:"MsgNm,omitempty" json:"MsgNm,omitempty"`
	RefIssr *common.PartyIdentification136 `xml:"RefIssr,omitempty" json:"RefIssr,omitempty"`
}

func (r MessageReference1) Validate() error {
	var vs schema.Violations
	schema.Required(&vs, "Ref", r.Ref)
	schema.Optional(&vs, "MsgNm", r.MsgNm)
	schema.Optional(&vs, "RefIssr", r.RefIssr)
	return vs.OrNil()
}

type RequestHandling2 struct {
	StsCd   common.Max4AlphaNumericText `xml:"StsCd" json:"StsCd"`
	StsDtTm *common.ISODateTime         `xml:"StsDtTm,omitempty" json:"StsDtTm,omitempty"`
	Desc    *common.Max140Text          `xml:"Desc,omitempty" json:"Desc,omitempty"`
}

func (r RequestHandling2) Validate() error {
	var vs schema.Violations
	schema.Required(&vs, "StsCd", r.StsCd)
	schema.Optional(&vs, "StsDtTm", r.StsDtTm)
	schema.Optional(&vs, "Desc", r.Desc)
	return vs.OrNil()
}

type ReceiptAcknowledgementReport2 struct {
	RltdRef MessageReference1 `xml:"RltdRef" json:"RltdRef"`
	ReqHdlg RequestHandling2  `xml:"ReqHdlg" json:"ReqHdlg"`
}

func (r ReceiptAcknowledgementReport2) Validate() error {
	var vs schema.Violations
	schema.Required(&vs, "RltdRef", r.RltdRef)
	schema.Required(&vs, "ReqHdlg", r.ReqHdlg)
	return vs.OrNil()
}
