// Package admi implements the administration message definitions.
package admi

import (
	"github.com/Open-Payments/messages-sub014/pkg/iso20022/common"
	"github.com/Open-Payments/messages-sub014/pkg/schema"
)

// Admi00200101 is the admi.002.001.01 message: a rejection of a
// previously received message.
type Admi00200101 struct {
	RltdRef MessageReference `xml:"RltdRef" json:"RltdRef"`
	Rsn     RejectionReason2 `xml:"Rsn" json:"Rsn"`
}

func (m Admi00200101) Validate() error {
	var vs schema.Violations
	schema.Required(&vs, "RltdRef", m.RltdRef)
	schema.Required(&vs, "Rsn", m.Rsn)
	return vs.OrNil()
}

type MessageReference struct {
	Ref common.Max35Text `xml:"Ref" json:"Ref"`
}

func (r MessageReference) Validate() error {
	var vs schema.Violations
	schema.Required(&vs, "Ref", r.Ref)
	return vs.OrNil()
}

type RejectionReason2 struct {
	RjctgPtyRsn common.Max35Text     `xml:"RjctgPtyRsn" json:"RjctgPtyRsn"`
	RjctnDtTm   *common.ISODateTime  `xml:"RjctnDtTm,omitempty" json:"RjctnDtTm,omitempty"`
	ErrLctn     *common.Max350Text   `xml:"ErrLctn,omitempty" json:"ErrLctn,omitempty"`
	RsnDesc     *common.Max350Text   `xml:"RsnDesc,omitempty" json:"RsnDesc,omitempty"`
	AddtlData   *common.Max20000Text `xml:"AddtlData,omitempty" json:"AddtlData,omitempty"`
}

func (r RejectionReason2) Validate() error {
	var vs schema.Violations
	schema.Required(&vs, "RjctgPtyRsn", r.RjctgPtyRsn)
	schema.Optional(&vs, "RjctnDtTm", r.RjctnDtTm)
	schema.Optional(&vs, "ErrLctn", r.ErrLctn)
	schema.Optional(&vs, "RsnDesc", r.RsnDesc)
	schema.Optional(&vs, "AddtlData", r.AddtlData)
	return vs.OrNil()
}
