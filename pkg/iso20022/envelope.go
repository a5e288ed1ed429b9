package iso20022

import (
	"github.com/Open-Payments/messages-sub014/pkg/iso20022/head"
	"github.com/Open-Payments/messages-sub014/pkg/schema"
)

// Direction marks which way a message travels relative to the system.
type Direction string

const (
	DirectionIncoming Direction = "Incoming"
	DirectionOutgoing Direction = "Outgoing"
)

var directions = schema.MustEnum(string(DirectionIncoming), string(DirectionOutgoing))

func (d Direction) Validate() error { return directions.Check(string(d)) }

// Envelope pairs a business application header with a document for
// exchange. The direction is bookkeeping for the processing side and is
// not part of the XML payload.
type Envelope struct {
	Direction Direction                          `xml:"-" json:"Direction,omitempty"`
	AppHdr    *head.BusinessApplicationHeaderV02 `xml:"AppHdr,omitempty" json:"AppHdr,omitempty"`
	Document  Document                           `xml:"Document" json:"Document"`
}

func (e Envelope) Validate() error {
	var vs schema.Violations
	if e.Direction != "" {
		schema.Field(&vs, "Direction", e.Direction.Validate())
	}
	schema.Optional(&vs, "AppHdr", e.AppHdr)
	schema.Required(&vs, "Document", e.Document)
	return vs.OrNil()
}
