package iso20022

import (
	"encoding/xml"
	"fmt"

	"github.com/Open-Payments/messages-sub014/pkg/iso20022/acmt"
	"github.com/Open-Payments/messages-sub014/pkg/iso20022/admi"
	"github.com/Open-Payments/messages-sub014/pkg/iso20022/auth"
	"github.com/Open-Payments/messages-sub014/pkg/iso20022/camt"
	"github.com/Open-Payments/messages-sub014/pkg/iso20022/pacs"
	"github.com/Open-Payments/messages-sub014/pkg/iso20022/pain"
	"github.com/Open-Payments/messages-sub014/pkg/iso20022/reda"
	"github.com/Open-Payments/messages-sub014/pkg/schema"
)

// Document is the choice wrapper around a message root. Exactly one of
// the message fields is set; the element names follow the schemas.
type Document struct {
	XMLName xml.Name `xml:"Document" json:"-"`
	Xmlns   string   `xml:"xmlns,attr,omitempty" json:"@xmlns,omitempty"`

	ReqForAcctMgmtStsRpt *acmt.RequestForAccountManagementStatusReportV06 `xml:"ReqForAcctMgmtStsRpt,omitempty" json:"ReqForAcctMgmtStsRpt,omitempty"`
	MsgRjct              *admi.Admi00200101                               `xml:"admi.002.001.01,omitempty" json:"admi.002.001.01,omitempty"`
	SysEvtNtfctn         *admi.SystemEventNotificationV02                 `xml:"SysEvtNtfctn,omitempty" json:"SysEvtNtfctn,omitempty"`
	RctAck               *admi.ReceiptAcknowledgementV01                  `xml:"RctAck,omitempty" json:"RctAck,omitempty"`
	CCPBckTstgDefRpt     *auth.CCPBackTestingDefinitionReportV01          `xml:"CCPBckTstgDefRpt,omitempty" json:"CCPBckTstgDefRpt,omitempty"`
	GetMmb               *camt.GetMemberV04                               `xml:"GetMmb,omitempty" json:"GetMmb,omitempty"`
	FIToFICstmrCdtTrf    *pacs.FIToFICustomerCreditTransferV08            `xml:"FIToFICstmrCdtTrf,omitempty" json:"FIToFICstmrCdtTrf,omitempty"`
	CstmrCdtTrfInitn     *pain.CustomerCreditTransferInitiationV12        `xml:"CstmrCdtTrfInitn,omitempty" json:"CstmrCdtTrfInitn,omitempty"`
	SctiesAcctModReq     *reda.SecuritiesAccountModificationRequestV01    `xml:"SctiesAcctModReq,omitempty" json:"SctiesAcctModReq,omitempty"`
}

// content returns the set message root, its element name and its type.
func (d Document) content() (schema.Validator, string, MessageType, int) {
	var (
		v    schema.Validator
		name string
		mt   MessageType
		n    int
	)
	set := func(val schema.Validator, elem string, t MessageType) {
		n++
		v, name, mt = val, elem, t
	}
	if d.ReqForAcctMgmtStsRpt != nil {
		set(d.ReqForAcctMgmtStsRpt, "ReqForAcctMgmtStsRpt", Acmt005)
	}
	if d.MsgRjct != nil {
		set(d.MsgRjct, "admi.002.001.01", Admi002)
	}
	if d.SysEvtNtfctn != nil {
		set(d.SysEvtNtfctn, "SysEvtNtfctn", Admi004)
	}
	if d.RctAck != nil {
		set(d.RctAck, "RctAck", Admi007)
	}
	if d.CCPBckTstgDefRpt != nil {
		set(d.CCPBckTstgDefRpt, "CCPBckTstgDefRpt", Auth065)
	}
	if d.GetMmb != nil {
		set(d.GetMmb, "GetMmb", Camt013)
	}
	if d.FIToFICstmrCdtTrf != nil {
		set(d.FIToFICstmrCdtTrf, "FIToFICstmrCdtTrf", Pacs008)
	}
	if d.CstmrCdtTrfInitn != nil {
		set(d.CstmrCdtTrfInitn, "CstmrCdtTrfInitn", Pain001)
	}
	if d.SctiesAcctModReq != nil {
		set(d.SctiesAcctModReq, "SctiesAcctModReq", Reda023)
	}
	return v, name, mt, n
}

// Type reports the message definition of the set content. ok is false
// when the document is empty or carries more than one message.
func (d Document) Type() (MessageType, bool) {
	_, _, mt, n := d.content()
	return mt, n == 1
}

// Validate checks that exactly one message is set, that the document
// namespace names that message, and walks the content.
func (d Document) Validate() error {
	var vs schema.Violations
	v, name, mt, n := d.content()
	switch n {
	case 0:
		vs = append(vs, schema.Violation{
			Path:    "Document",
			Code:    schema.CodeEnumeration,
			Message: "no message content is present",
		})
	case 1:
		if d.Xmlns != "" && d.Xmlns != mt.Namespace() {
			vs = append(vs, schema.Violation{
				Path:    "Document",
				Code:    schema.CodeEnumeration,
				Message: fmt.Sprintf("xmlns %q does not match the %s content", d.Xmlns, name),
			})
		}
		schema.Required(&vs, name, v)
	default:
		vs = append(vs, schema.Violation{
			Path:    "Document",
			Code:    schema.CodeEnumeration,
			Message: fmt.Sprintf("%d message contents are present, want 1", n),
		})
	}
	return vs.OrNil()
}

// NewDocument wraps a message root in a Document with its namespace.
func NewDocument(msg schema.Validator) (Document, error) {
	d := Document{}
	switch m := msg.(type) {
	case *acmt.RequestForAccountManagementStatusReportV06:
		d.ReqForAcctMgmtStsRpt = m
	case *admi.Admi00200101:
		d.MsgRjct = m
	case *admi.SystemEventNotificationV02:
		d.SysEvtNtfctn = m
	case *admi.ReceiptAcknowledgementV01:
		d.RctAck = m
	case *auth.CCPBackTestingDefinitionReportV01:
		d.CCPBckTstgDefRpt = m
	case *camt.GetMemberV04:
		d.GetMmb = m
	case *pacs.FIToFICustomerCreditTransferV08:
		d.FIToFICstmrCdtTrf = m
	case *pain.CustomerCreditTransferInitiationV12:
		d.CstmrCdtTrfInitn = m
	case *reda.SecuritiesAccountModificationRequestV01:
		d.SctiesAcctModReq = m
	default:
		return Document{}, fmt.Errorf("iso20022: unsupported message type %T", msg)
	}
	mt, _ := d.Type()
	d.Xmlns = mt.Namespace()
	return d, nil
}
