package common

import (
	"github.com/Open-Payments/messages-sub014/pkg/schema"
)

// Closed code sets shared across business areas. Each type lists its
// members as constants and checks membership on validation.

type AddressType2Code string

const (
	AddressTypePostal   AddressType2Code = "ADDR"
	AddressTypePOBox    AddressType2Code = "PBOX"
	AddressTypeHome     AddressType2Code = "HOME"
	AddressTypeBusiness AddressType2Code = "BIZZ"
	AddressTypeMailTo   AddressType2Code = "MLTO"
	AddressTypeDelivery AddressType2Code = "DLVY"
)

var addressTypeCodes = schema.MustEnum("ADDR", "PBOX", "HOME", "BIZZ", "MLTO", "DLVY")

func (c AddressType2Code) Validate() error { return addressTypeCodes.Check(string(c)) }

type ChargeBearerType1Code string

const (
	ChargeBearerDebtor       ChargeBearerType1Code = "DEBT"
	ChargeBearerCreditor     ChargeBearerType1Code = "CRED"
	ChargeBearerShared       ChargeBearerType1Code = "SHAR"
	ChargeBearerServiceLevel ChargeBearerType1Code = "SLEV"
)

var chargeBearerCodes = schema.MustEnum("DEBT", "CRED", "SHAR", "SLEV")

func (c ChargeBearerType1Code) Validate() error { return chargeBearerCodes.Check(string(c)) }

type CreditDebitCode string

const (
	CreditDebitCredit CreditDebitCode = "CRDT"
	CreditDebitDebit  CreditDebitCode = "DBIT"
)

var creditDebitCodes = schema.MustEnum("CRDT", "DBIT")

func (c CreditDebitCode) Validate() error { return creditDebitCodes.Check(string(c)) }

type NamePrefix2Code string

const (
	NamePrefixDoctor NamePrefix2Code = "DOCT"
	NamePrefixMadam  NamePrefix2Code = "MADM"
	NamePrefixMiss   NamePrefix2Code = "MISS"
	NamePrefixMister NamePrefix2Code = "MIST"
	NamePrefixMx     NamePrefix2Code = "MIKS"
)

var namePrefixCodes = schema.MustEnum("DOCT", "MADM", "MISS", "MIST", "MIKS")

func (c NamePrefix2Code) Validate() error { return namePrefixCodes.Check(string(c)) }

type PreferredContactMethod1Code string

const (
	PreferredContactLetter PreferredContactMethod1Code = "LETT"
	PreferredContactEmail  PreferredContactMethod1Code = "MAIL"
	PreferredContactPhone  PreferredContactMethod1Code = "PHON"
	PreferredContactFax    PreferredContactMethod1Code = "FAXX"
	PreferredContactMobile PreferredContactMethod1Code = "CELL"
)

var preferredContactCodes = schema.MustEnum("LETT", "MAIL", "PHON", "FAXX", "CELL")

func (c PreferredContactMethod1Code) Validate() error { return preferredContactCodes.Check(string(c)) }

type Priority2Code string

const (
	PriorityHigh   Priority2Code = "HIGH"
	PriorityNormal Priority2Code = "NORM"
)

var priority2Codes = schema.MustEnum("HIGH", "NORM")

func (c Priority2Code) Validate() error { return priority2Codes.Check(string(c)) }

type Priority3Code string

const (
	Priority3Urgent Priority3Code = "URGT"
	Priority3High   Priority3Code = "HIGH"
	Priority3Normal Priority3Code = "NORM"
)

var priority3Codes = schema.MustEnum("URGT", "HIGH", "NORM")

func (c Priority3Code) Validate() error { return priority3Codes.Check(string(c)) }

type ClearingChannel2Code string

const (
	ClearingChannelRTGS      ClearingChannel2Code = "RTGS"
	ClearingChannelRTNS      ClearingChannel2Code = "RTNS"
	ClearingChannelMassPmt   ClearingChannel2Code = "MPNS"
	ClearingChannelBookEntry ClearingChannel2Code = "BOOK"
)

var clearingChannelCodes = schema.MustEnum("RTGS", "RTNS", "MPNS", "BOOK")

func (c ClearingChannel2Code) Validate() error { return clearingChannelCodes.Check(string(c)) }
