package common

import (
	"github.com/Open-Payments/messages-sub014/pkg/schema"
)

// ActiveCurrencyAndAmount is an amount with its currency carried as an
// XML attribute. The value stays a string so it re-encodes exactly as
// it was received; digit facets are checked on validation.
type ActiveCurrencyAndAmount struct {
	Ccy   ActiveCurrencyCode `xml:"Ccy,attr" json:"Ccy"`
	Value string             `xml:",chardata" json:"$value"`
}

func (a ActiveCurrencyAndAmount) Validate() error {
	var vs schema.Violations
	schema.Field(&vs, "Ccy", a.Ccy.Validate())
	schema.Field(&vs, "", schema.Amount(a.Value, 18, 5))
	return vs.OrNil()
}

type ActiveOrHistoricCurrencyAndAmount struct {
	Ccy   ActiveOrHistoricCurrencyCode `xml:"Ccy,attr" json:"Ccy"`
	Value string                       `xml:",chardata" json:"$value"`
}

func (a ActiveOrHistoricCurrencyAndAmount) Validate() error {
	var vs schema.Violations
	schema.Field(&vs, "Ccy", a.Ccy.Validate())
	schema.Field(&vs, "", schema.Amount(a.Value, 18, 5))
	return vs.OrNil()
}

// EquivalentAmount2 expresses an amount in one currency to be transferred
// in another.
type EquivalentAmount2 struct {
	Amt      ActiveOrHistoricCurrencyAndAmount `xml:"Amt" json:"Amt"`
	CcyOfTrf ActiveOrHistoricCurrencyCode      `xml:"CcyOfTrf" json:"CcyOfTrf"`
}

func (e EquivalentAmount2) Validate() error {
	var vs schema.Violations
	schema.Required(&vs, "Amt", e.Amt)
	schema.Required(&vs, "CcyOfTrf", e.CcyOfTrf)
	return vs.OrNil()
}

// AmountType4Choice selects between an instructed amount and an
// equivalent amount.
type AmountType4Choice struct {
	InstdAmt *ActiveOrHistoricCurrencyAndAmount `xml:"InstdAmt,omitempty" json:"InstdAmt,omitempty"`
	EqvtAmt  *EquivalentAmount2                 `xml:"EqvtAmt,omitempty" json:"EqvtAmt,omitempty"`
}

func (c AmountType4Choice) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "InstdAmt", c.InstdAmt)
	schema.Optional(&vs, "EqvtAmt", c.EqvtAmt)
	return vs.OrNil()
}

// DateAndDateTime2Choice selects between a date and a date-time.
type DateAndDateTime2Choice struct {
	Dt   *ISODate     `xml:"Dt,omitempty" json:"Dt,omitempty"`
	DtTm *ISODateTime `xml:"DtTm,omitempty" json:"DtTm,omitempty"`
}

func (c DateAndDateTime2Choice) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "Dt", c.Dt)
	schema.Optional(&vs, "DtTm", c.DtTm)
	return vs.OrNil()
}
