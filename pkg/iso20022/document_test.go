package iso20022

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Open-Payments/messages-sub014/pkg/iso20022/admi"
	"github.com/Open-Payments/messages-sub014/pkg/iso20022/camt"
	"github.com/Open-Payments/messages-sub014/pkg/iso20022/common"
	"github.com/Open-Payments/messages-sub014/pkg/iso20022/head"
	"github.com/Open-Payments/messages-sub014/pkg/iso20022/pacs"
	"github.com/Open-Payments/messages-sub014/pkg/schema"
)

func rejectMessage() *admi.Admi00200101 {
	return &admi.Admi00200101{
		RltdRef: admi.MessageReference{Ref: "MSG-20240115-0001"},
		Rsn:     admi.RejectionReason2{RjctgPtyRsn: "NARR"},
	}
}

func TestNewDocumentSetsNamespace(t *testing.T) {
	d, err := NewDocument(rejectMessage())
	require.NoError(t, err)
	assert.Equal(t, "urn:iso:std:iso:20022:tech:xsd:admi.002.001.01", d.Xmlns)

	mt, ok := d.Type()
	require.True(t, ok)
	assert.Equal(t, Admi002, mt)
}

func TestNewDocumentRejectsUnknownType(t *testing.T) {
	_, err := NewDocument(head.BusinessApplicationHeaderV02{})
	assert.Error(t, err)
}

func TestDocumentValidateEmpty(t *testing.T) {
	err := Document{}.Validate()
	require.Error(t, err)
	var vs schema.Violations
	require.ErrorAs(t, err, &vs)
	require.Len(t, vs, 1)
	assert.Equal(t, "Document", vs[0].Path)
}

func TestDocumentValidateMultipleContents(t *testing.T) {
	d := Document{
		MsgRjct:      rejectMessage(),
		SysEvtNtfctn: &admi.SystemEventNotificationV02{EvtInf: admi.Event2{EvtCd: "CLSD"}},
	}
	err := d.Validate()
	require.Error(t, err)
	var vs schema.Violations
	require.ErrorAs(t, err, &vs)
	require.Len(t, vs, 1)
	assert.Contains(t, vs[0].Message, "2 message contents")
}

func TestDocumentValidateNamespaceMismatch(t *testing.T) {
	doc, err := NewDocument(rejectMessage())
	require.NoError(t, err)
	require.NoError(t, doc.Validate())

	doc.Xmlns = Pain001.Namespace()
	err = doc.Validate()
	var vs schema.Violations
	require.ErrorAs(t, err, &vs)
	require.Len(t, vs, 1)
	assert.Equal(t, "Document", vs[0].Path)
	assert.Equal(t, schema.CodeEnumeration, vs[0].Code)
	assert.Contains(t, vs[0].Message, "xmlns")
}

func TestDocumentValidatePrefixesElementName(t *testing.T) {
	d, err := NewDocument(&admi.Admi00200101{})
	require.NoError(t, err)

	var vs schema.Violations
	require.ErrorAs(t, d.Validate(), &vs)
	for _, v := range vs {
		assert.True(t, strings.HasPrefix(v.Path, "admi.002.001.01."), "path %q", v.Path)
	}
}

func TestDocumentXMLRoundTrip(t *testing.T) {
	d, err := NewDocument(rejectMessage())
	require.NoError(t, err)

	out, err := MarshalDocumentXML(&d)
	require.NoError(t, err)
	assert.Contains(t, string(out), `<Document xmlns="urn:iso:std:iso:20022:tech:xsd:admi.002.001.01">`)
	assert.Contains(t, string(out), "<RjctgPtyRsn>NARR</RjctgPtyRsn>")

	decoded, err := DecodeDocument(bytes.NewReader(out))
	require.NoError(t, err)
	require.NotNil(t, decoded.MsgRjct)
	assert.Equal(t, d.MsgRjct.RltdRef.Ref, decoded.MsgRjct.RltdRef.Ref)
	assert.NoError(t, decoded.Validate())
}

func TestDecodeDocumentReportsOffset(t *testing.T) {
	_, err := DecodeDocument(strings.NewReader("<Document><RctAck><MsgId>"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at byte")
}

func TestDocumentJSONConversion(t *testing.T) {
	qry := camt.QueryAll
	d, err := NewDocument(&camt.GetMemberV04{
		MsgHdr:    camt.MessageHeader9{MsgId: "QRY-1"},
		MmbQryDef: &camt.MemberQueryDefinition4{QryTp: &qry},
	})
	require.NoError(t, err)

	data, err := MarshalDocumentJSON(&d)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"GetMmb"`)
	assert.Contains(t, string(data), `"@xmlns"`)

	decoded, err := UnmarshalDocumentJSON(data)
	require.NoError(t, err)
	require.NotNil(t, decoded.GetMmb)
	assert.Equal(t, "QRY-1", string(decoded.GetMmb.MsgHdr.MsgId))
}

func fiParty(bic common.BICFIDec2014Identifier) common.Party44Choice {
	return common.Party44Choice{
		FIId: &common.BranchAndFinancialInstitutionIdentification6{
			FinInstnId: common.FinancialInstitutionIdentification18{BICFI: &bic},
		},
	}
}

func TestEnvelopeValidation(t *testing.T) {
	doc, err := NewDocument(&pacs.FIToFICustomerCreditTransferV08{
		GrpHdr: pacs.GroupHeader93{
			MsgId:    "MSG-1",
			CreDtTm:  "2024-01-15T09:30:47Z",
			NbOfTxs:  "0",
			SttlmInf: pacs.SettlementInstruction7{SttlmMtd: pacs.SettlementClearing},
		},
	})
	require.NoError(t, err)

	env := Envelope{
		Direction: DirectionIncoming,
		AppHdr: &head.BusinessApplicationHeaderV02{
			Fr:        fiParty("NWBKGB2L"),
			To:        fiParty("DEUTDEFF"),
			BizMsgIdr: "BIZ-1",
			MsgDefIdr: common.Max35Text(Pacs008),
			CreDt:     "2024-01-15T09:30:47Z",
		},
		Document: doc,
	}
	assert.NoError(t, env.Validate())

	env.Direction = "Sideways"
	env.AppHdr.BizMsgIdr = ""
	err = env.Validate()
	var vs schema.Violations
	require.ErrorAs(t, err, &vs)
	require.Len(t, vs, 2)
	assert.Equal(t, "Direction", vs[0].Path)
	assert.Equal(t, "AppHdr.BizMsgIdr", vs[1].Path)
}
