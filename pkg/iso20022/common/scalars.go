// Package common holds the scalar types, code sets and composite types
// shared across the ISO 20022 business areas. Message packages build on
// these instead of redeclaring them per message definition.
package common

import (
	"github.com/Open-Payments/messages-sub014/pkg/schema"
)

// Text scalars. Each carries the min/max length facets of the
// corresponding ISO 20022 simple type, counted in runes.

type Max4Text string

func (t Max4Text) Validate() error { return schema.Text(string(t), 1, 4) }

type Max16Text string

func (t Max16Text) Validate() error { return schema.Text(string(t), 1, 16) }

type Max34Text string

func (t Max34Text) Validate() error { return schema.Text(string(t), 1, 34) }

type Max35Text string

func (t Max35Text) Validate() error { return schema.Text(string(t), 1, 35) }

type Max70Text string

func (t Max70Text) Validate() error { return schema.Text(string(t), 1, 70) }

type Max128Text string

func (t Max128Text) Validate() error { return schema.Text(string(t), 1, 128) }

type Max140Text string

func (t Max140Text) Validate() error { return schema.Text(string(t), 1, 140) }

type Max256Text string

func (t Max256Text) Validate() error { return schema.Text(string(t), 1, 256) }

type Max350Text string

func (t Max350Text) Validate() error { return schema.Text(string(t), 1, 350) }

type Max1000Text string

func (t Max1000Text) Validate() error { return schema.Text(string(t), 1, 1000) }

type Max2000Text string

func (t Max2000Text) Validate() error { return schema.Text(string(t), 1, 2000) }

type Max2048Text string

func (t Max2048Text) Validate() error { return schema.Text(string(t), 1, 2048) }

type Max20000Text string

func (t Max20000Text) Validate() error { return schema.Text(string(t), 1, 20000) }

// Pattern-constrained identifiers. The expressions come from the ISO
// 20022 schemas and are compiled once at package initialization.
var (
	ibanPattern        = schema.MustPattern(`[A-Z]{2,2}[0-9]{2,2}[a-zA-Z0-9]{1,30}`)
	bicfiPattern       = schema.MustPattern(`[A-Z0-9]{4,4}[A-Z]{2,2}[A-Z0-9]{2,2}([A-Z0-9]{3,3}){0,1}`)
	anyBICPattern      = schema.MustPattern(`[A-Z0-9]{4,4}[A-Z]{2,2}[A-Z0-9]{2,2}([A-Z0-9]{3,3}){0,1}`)
	leiPattern         = schema.MustPattern(`[A-Z0-9]{18,18}[0-9]{2,2}`)
	countryPattern     = schema.MustPattern(`[A-Z]{2,2}`)
	currencyPattern    = schema.MustPattern(`[A-Z]{3,3}`)
	phonePattern       = schema.MustPattern(`\+[0-9]{1,3}-[0-9()+\-]{1,30}`)
	uuidV4Pattern      = schema.MustPattern(`[a-f0-9]{8}-[a-f0-9]{4}-4[a-f0-9]{3}-[89ab][a-f0-9]{3}-[a-f0-9]{12}`)
	max15NumPattern    = schema.MustPattern(`[0-9]{1,15}`)
	max5NumPattern     = schema.MustPattern(`[0-9]{1,5}`)
	alphaNum4Pattern   = schema.MustPattern(`[a-zA-Z0-9]{1,4}`)
	exactAlpha4Pattern = schema.MustPattern(`[a-zA-Z0-9]{4}`)
)

type IBAN2007Identifier string

func (id IBAN2007Identifier) Validate() error { return ibanPattern.Check(string(id)) }

type BICFIDec2014Identifier string

func (id BICFIDec2014Identifier) Validate() error { return bicfiPattern.Check(string(id)) }

type AnyBICDec2014Identifier string

func (id AnyBICDec2014Identifier) Validate() error { return anyBICPattern.Check(string(id)) }

type LEIIdentifier string

func (id LEIIdentifier) Validate() error { return leiPattern.Check(string(id)) }

type CountryCode string

func (c CountryCode) Validate() error { return countryPattern.Check(string(c)) }

type ActiveCurrencyCode string

func (c ActiveCurrencyCode) Validate() error { return currencyPattern.Check(string(c)) }

type ActiveOrHistoricCurrencyCode string

func (c ActiveOrHistoricCurrencyCode) Validate() error { return currencyPattern.Check(string(c)) }

type PhoneNumber string

func (n PhoneNumber) Validate() error { return phonePattern.Check(string(n)) }

type UUIDv4Identifier string

func (id UUIDv4Identifier) Validate() error { return uuidV4Pattern.Check(string(id)) }

type Max15NumericText string

func (t Max15NumericText) Validate() error { return max15NumPattern.Check(string(t)) }

type Max5NumericText string

func (t Max5NumericText) Validate() error { return max5NumPattern.Check(string(t)) }

// Max4AlphaNumericText carries both length and pattern facets.
type Max4AlphaNumericText string

func (t Max4AlphaNumericText) Validate() error {
	var vs schema.Violations
	schema.Field(&vs, "", schema.Text(string(t), 1, 4))
	schema.Field(&vs, "", alphaNum4Pattern.Check(string(t)))
	return vs.OrNil()
}

type Exact4AlphaNumericText string

func (t Exact4AlphaNumericText) Validate() error { return exactAlpha4Pattern.Check(string(t)) }

// Date and time scalars. The schemas type these as xs:date / xs:dateTime;
// lexical checking is left to the XML layer so these always validate.

type ISODate string

func (ISODate) Validate() error { return nil }

type ISODateTime string

func (ISODateTime) Validate() error { return nil }

type ISOTime string

func (ISOTime) Validate() error { return nil }

type ISOYear string

func (ISOYear) Validate() error { return nil }

// Numeric scalars are kept as strings so values survive a decode and
// re-encode byte for byte. Digit facets are checked with pkg/schema.

type DecimalNumber string

func (n DecimalNumber) Validate() error { return schema.Decimal(string(n), 18, 17) }

type Number string

func (n Number) Validate() error { return schema.Decimal(string(n), 18, 0) }

type BaseOneRate string

func (r BaseOneRate) Validate() error { return schema.Decimal(string(r), 11, 10) }

type PercentageRate string

func (r PercentageRate) Validate() error { return schema.Decimal(string(r), 11, 10) }

// Boolean indicators.

type TrueFalseIndicator bool

func (TrueFalseIndicator) Validate() error { return nil }

type BatchBookingIndicator bool

func (BatchBookingIndicator) Validate() error { return nil }

type RequestedIndicator bool

func (RequestedIndicator) Validate() error { return nil }

// External code sets. The ISO registry constrains these by length only;
// membership is maintained outside the schemas.

type ExternalAccountIdentification1Code string

func (c ExternalAccountIdentification1Code) Validate() error { return schema.Text(string(c), 1, 4) }

type ExternalCashAccountType1Code string

func (c ExternalCashAccountType1Code) Validate() error { return schema.Text(string(c), 1, 4) }

type ExternalCategoryPurpose1Code string

func (c ExternalCategoryPurpose1Code) Validate() error { return schema.Text(string(c), 1, 4) }

type ExternalClearingSystemIdentification1Code string

func (c ExternalClearingSystemIdentification1Code) Validate() error {
	return schema.Text(string(c), 1, 5)
}

type ExternalCreditorAgentInstruction1Code string

func (c ExternalCreditorAgentInstruction1Code) Validate() error { return schema.Text(string(c), 1, 4) }

type ExternalCreditorReferenceType1Code string

func (c ExternalCreditorReferenceType1Code) Validate() error { return schema.Text(string(c), 1, 4) }

type ExternalDebtorAgentInstruction1Code string

func (c ExternalDebtorAgentInstruction1Code) Validate() error { return schema.Text(string(c), 1, 4) }

type ExternalFinancialInstitutionIdentification1Code string

func (c ExternalFinancialInstitutionIdentification1Code) Validate() error {
	return schema.Text(string(c), 1, 4)
}

type ExternalLocalInstrument1Code string

func (c ExternalLocalInstrument1Code) Validate() error { return schema.Text(string(c), 1, 35) }

type ExternalOrganisationIdentification1Code string

func (c ExternalOrganisationIdentification1Code) Validate() error {
	return schema.Text(string(c), 1, 4)
}

type ExternalPersonIdentification1Code string

func (c ExternalPersonIdentification1Code) Validate() error { return schema.Text(string(c), 1, 4) }

type ExternalProxyAccountType1Code string

func (c ExternalProxyAccountType1Code) Validate() error { return schema.Text(string(c), 1, 4) }

type ExternalPurpose1Code string

func (c ExternalPurpose1Code) Validate() error { return schema.Text(string(c), 1, 4) }

type ExternalServiceLevel1Code string

func (c ExternalServiceLevel1Code) Validate() error { return schema.Text(string(c), 1, 4) }

type ExternalEnquiryRequestType1Code string

func (c ExternalEnquiryRequestType1Code) Validate() error { return schema.Text(string(c), 1, 4) }

type ExternalPaymentControlRequestType1Code string

func (c ExternalPaymentControlRequestType1Code) Validate() error { return schema.Text(string(c), 1, 4) }

type ExternalSystemMemberType1Code string

func (c ExternalSystemMemberType1Code) Validate() error { return schema.Text(string(c), 1, 4) }
