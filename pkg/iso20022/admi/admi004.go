package admi

import (
	"github.com/Open-Payments/messages-sub014/pkg/iso20022/common"
	"github.com/Open-Payments/messages-sub014/pkg/schema"
)

// SystemEventNotificationV02 is the admi.004.001.02 message: a
// notification of a system event such as the start or end of a cycle.
type SystemEventNotificationV02 struct {
	EvtInf Event2 `xml:"EvtInf" json:"EvtInf"`
}

func (m SystemEventNotificationV02) Validate() error {
	var vs schema.Violations
	schema.Required(&vs, "EvtInf", m.EvtInf)
	return vs.OrNil()
}

type Event2 struct {
	EvtCd    common.Max4AlphaNumericText `xml:"EvtCd" json:"EvtCd"`
	EvtParam []common.Max35Text          `xml:"EvtParam,omitempty" json:"EvtParam,omitempty"`
	EvtDesc  *common.Max1000Text         `xml:"EvtDesc,omitempty" json:"EvtDesc,omitempty"`
	EvtTm    *common.ISODateTime         `xml:"EvtTm,omitempty" json:"EvtTm,omitempty"`
}

func (e Event2) Validate() error {
	var vs schema.Violations
	schema.Required(&vs, "EvtCd", e.EvtCd)
	schema.Each(&vs, "EvtParam", e.EvtParam)
	schema.Optional(&vs, "EvtDesc", e.EvtDesc)
	schema.Optional(&vs, "EvtTm", e.EvtTm)
	return vs.OrNil()
}
