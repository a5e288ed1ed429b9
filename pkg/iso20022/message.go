// Package iso20022 ties the business area packages together: it carries
// the document choice that wraps a message root on the wire, the XML
// and JSON codecs, and the exchange envelope.
package iso20022

import "strings"

// MessageType identifies an ISO 20022 message definition.
type MessageType string

const (
	// Account Management
	Acmt005 MessageType = "acmt.005.001.06" // RequestForAccountManagementStatusReport

	// Administration
	Admi002 MessageType = "admi.002.001.01" // MessageReject
	Admi004 MessageType = "admi.004.001.02" // SystemEventNotification
	Admi007 MessageType = "admi.007.001.01" // ReceiptAcknowledgement

	// Authorities Reporting
	Auth065 MessageType = "auth.065.001.01" // CCPBackTestingDefinitionReport

	// Cash Management
	Camt013 MessageType = "camt.013.001.04" // GetMember

	// Business Application Header
	Head001 MessageType = "head.001.001.02" // BusinessApplicationHeader

	// Payment Clearing and Settlement
	Pacs008 MessageType = "pacs.008.001.08" // FIToFICustomerCreditTransfer

	// Payment Initiation
	Pain001 MessageType = "pain.001.001.12" // CustomerCreditTransferInitiation

	// Reference Data
	Reda023 MessageType = "reda.023.001.01" // SecuritiesAccountModificationRequest
)

var messageTypes = []MessageType{
	Acmt005, Admi002, Admi004, Admi007, Auth065,
	Camt013, Head001, Pacs008, Pain001, Reda023,
}

// ParseMessageType resolves s to a catalog message type. s may be the
// full identifier ("pain.001.001.12") or a shorter prefix ("pain.001")
// as long as it names exactly one definition.
func ParseMessageType(s string) (MessageType, bool) {
	var match MessageType
	n := 0
	for _, t := range messageTypes {
		if s == string(t) {
			return t, true
		}
		if strings.HasPrefix(string(t), s+".") {
			match = t
			n++
		}
	}
	if n != 1 {
		return "", false
	}
	return match, true
}

const namespacePrefix = "urn:iso:std:iso:20022:tech:xsd:"

// Namespace returns the XML namespace of the message definition.
func (t MessageType) Namespace() string {
	return namespacePrefix + string(t)
}
