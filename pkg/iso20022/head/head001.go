// Package head implements the business application header definitions.
package head

import (
	"github.com/Open-Payments/messages-sub014/pkg/iso20022/common"
	"github.com/Open-Payments/messages-sub014/pkg/schema"
)

// UnicodeChartsCode names the character set of the payload. The schema
// leaves it unconstrained.
type UnicodeChartsCode string

func (UnicodeChartsCode) Validate() error { return nil }

type BusinessMessagePriorityCode string

func (c BusinessMessagePriorityCode) Validate() error { return schema.Text(string(c), 1, 35) }

type CopyDuplicate1Code string

const (
	CopyDuplicateCopyDuplicate CopyDuplicate1Code = "CODU"
	CopyDuplicateCopy          CopyDuplicate1Code = "COPY"
	CopyDuplicateDuplicate     CopyDuplicate1Code = "DUPL"
)

var copyDuplicateCodes = schema.MustEnum("CODU", "COPY", "DUPL")

func (c CopyDuplicate1Code) Validate() error { return copyDuplicateCodes.Check(string(c)) }

type ImplementationSpecification1 struct {
	Regy common.Max350Text  `xml:"Regy" json:"Regy"`
	Id   common.Max2048Text `xml:"Id" json:"Id"`
}

func (i ImplementationSpecification1) Validate() error {
	var vs schema.Violations
	schema.Required(&vs, "Regy", i.Regy)
	schema.Required(&vs, "Id", i.Id)
	return vs.OrNil()
}

// SignatureEnvelope carries a detached signature. The content is opaque
// to the catalog and not validated.
type SignatureEnvelope struct {
	Content string `xml:",innerxml" json:"Content,omitempty"`
}

func (SignatureEnvelope) Validate() error { return nil }

// BusinessApplicationHeaderV02 is the head.001.001.02 header that wraps
// a business message in an envelope exchange.
type BusinessApplicationHeaderV02 struct {
	CharSet    *UnicodeChartsCode            `xml:"CharSet,omitempty" json:"CharSet,omitempty"`
	Fr         common.Party44Choice          `xml:"Fr" json:"Fr"`
	To         common.Party44Choice          `xml:"To" json:"To"`
	BizMsgIdr  common.Max35Text              `xml:"BizMsgIdr" json:"BizMsgIdr"`
	MsgDefIdr  common.Max35Text              `xml:"MsgDefIdr" json:"MsgDefIdr"`
	BizSvc     *common.Max35Text             `xml:"BizSvc,omitempty" json:"BizSvc,omitempty"`
	MktPrctc   *ImplementationSpecification1 `xml:"MktPrctc,omitempty" json:"MktPrctc,omitempty"`
	CreDt      common.ISODateTime            `xml:"CreDt" json:"CreDt"`
	BizPrcgDt  *common.ISODateTime           `xml:"BizPrcgDt,omitempty" json:"BizPrcgDt,omitempty"`
	CpyDplct   *CopyDuplicate1Code           `xml:"CpyDplct,omitempty" json:"CpyDplct,omitempty"`
	PssblDplct *common.TrueFalseIndicator    `xml:"PssblDplct,omitempty" json:"PssblDplct,omitempty"`
	Prty       *BusinessMessagePriorityCode  `xml:"Prty,omitempty" json:"Prty,omitempty"`
	Sgntr      *SignatureEnvelope            `xml:"Sgntr,omitempty" json:"Sgntr,omitempty"`
	Rltd       []BusinessApplicationHeader5  `xml:"Rltd,omitempty" json:"Rltd,omitempty"`
}

func (h BusinessApplicationHeaderV02) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "CharSet", h.CharSet)
	schema.Required(&vs, "Fr", h.Fr)
	schema.Required(&vs, "To", h.To)
	schema.Required(&vs, "BizMsgIdr", h.BizMsgIdr)
	schema.Required(&vs, "MsgDefIdr", h.MsgDefIdr)
	schema.Optional(&vs, "BizSvc", h.BizSvc)
	schema.Optional(&vs, "MktPrctc", h.MktPrctc)
	schema.Required(&vs, "CreDt", h.CreDt)
	schema.Optional(&vs, "BizPrcgDt", h.BizPrcgDt)
	schema.Optional(&vs, "CpyDplct", h.CpyDplct)
	schema.Optional(&vs, "PssblDplct", h.PssblDplct)
	schema.Optional(&vs, "Prty", h.Prty)
	schema.Optional(&vs, "Sgntr", h.Sgntr)
	schema.Each(&vs, "Rltd", h.Rltd)
	return vs.OrNil()
}

// BusinessApplicationHeader5 references a related header. It carries the
// same core fields without further nesting.
type BusinessApplicationHeader5 struct {
	CharSet    *UnicodeChartsCode           `xml:"CharSet,omitempty" json:"CharSet,omitempty"`
	Fr         common.Party44Choice         `xml:"Fr" json:"Fr"`
	To         common.Party44Choice         `xml:"To" json:"To"`
	BizMsgIdr  common.Max35Text             `xml:"BizMsgIdr" json:"BizMsgIdr"`
	MsgDefIdr  common.Max35Text             `xml:"MsgDefIdr" json:"MsgDefIdr"`
	BizSvc     *common.Max35Text            `xml:"BizSvc,omitempty" json:"BizSvc,omitempty"`
	CreDt      common.ISODateTime           `xml:"CreDt" json:"CreDt"`
	CpyDplct   *CopyDuplicate1Code          `xml:"CpyDplct,omitempty" json:"CpyDplct,omitempty"`
	PssblDplct *common.TrueFalseIndicator   `xml:"PssblDplct,omitempty" json:"PssblDplct,omitempty"`
	Prty       *BusinessMessagePriorityCode `xml:"Prty,omitempty" json:"Prty,omitempty"`
	Sgntr      *SignatureEnvelope           `xml:"Sgntr,omitempty" json:"Sgntr,omitempty"`
}

func (h BusinessApplicationHeader5) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "CharSet", h.CharSet)
	schema.Required(&vs, "Fr", h.Fr)
	schema.Required(&vs, "To", h.To)
	schema.Required(&vs, "BizMsgIdr", h.BizMsgIdr)
	schema.Required(&vs, "MsgDefIdr", h.MsgDefIdr)
	schema.Optional(&vs, "BizSvc", h.BizSvc)
	schema.Required(&vs, "CreDt", h.CreDt)
	schema.Optional(&vs, "CpyDplct", h.CpyDplct)
	schema.Optional(&vs, "PssblDplct", h.PssblDplct)
	schema.Optional(&vs, "Prty", h.Prty)
	schema.Optional(&vs, "Sgntr", h.Sgntr)
	return vs.OrNil()
}
