package pacs

import (
	"encoding/xml"
	"errors"
	"strings"
	"testing"

	"github.com/Open-Payments/messages-sub014/pkg/iso20022/common"
	"github.com/Open-Payments/messages-sub014/pkg/schema"
)

func validTransfer() FIToFICustomerCreditTransferV08 {
	uetr := common.UUIDv4Identifier("8f254b52-3bd1-4c57-a3f2-4c1a0d2e5b11")
	dbtrName := common.Max140Text("ACME Corporation")
	cdtrName := common.Max140Text("Global Suppliers Ltd")
	dbtrBIC := common.BICFIDec2014Identifier("NWBKGB2L")
	cdtrBIC := common.BICFIDec2014Identifier("DEUTDEFF")
	iban := common.IBAN2007Identifier("GB29NWBK60161331926819")

	return FIToFICustomerCreditTransferV08{
		GrpHdr: GroupHeader93{
			MsgId:   "MSG-20240115-0001",
			CreDtTm: "2024-01-15T09:30:47Z",
			NbOfTxs: "1",
			SttlmInf: SettlementInstruction7{
				SttlmMtd: SettlementClearing,
			},
		},
		CdtTrfTxInf: []CreditTransferTransaction39{{
			PmtId: PaymentIdentification7{
				EndToEndId: "E2E-REF-001",
				UETR:       &uetr,
			},
			IntrBkSttlmAmt: common.ActiveCurrencyAndAmount{Ccy: "EUR", Value: "12500.00"},
			ChrgBr:         common.ChargeBearerShared,
			Dbtr:           common.PartyIdentification135{Nm: &dbtrName},
			DbtrAcct: &common.CashAccount38{
				Id: common.AccountIdentification4Choice{IBAN: &iban},
			},
			DbtrAgt: common.BranchAndFinancialInstitutionIdentification6{
				FinInstnId: common.FinancialInstitutionIdentification18{BICFI: &dbtrBIC},
			},
			CdtrAgt: common.BranchAndFinancialInstitutionIdentification6{
				FinInstnId: common.FinancialInstitutionIdentification18{BICFI: &cdtrBIC},
			},
			Cdtr: common.PartyIdentification135{Nm: &cdtrName},
		}},
	}
}

func TestFIToFICustomerCreditTransferValid(t *testing.T) {
	if err := validTransfer().Validate(); err != nil {
		t.Fatalf("expected valid message, got %v", err)
	}
}

func TestFIToFICustomerCreditTransferViolationPaths(t *testing.T) {
	m := validTransfer()
	m.GrpHdr.MsgId = ""
	m.CdtTrfTxInf[0].IntrBkSttlmAmt.Value = "-5.00"
	m.CdtTrfTxInf[0].ChrgBr = "BOGUS"

	err := m.Validate()
	var vs schema.Violations
	if !errors.As(err, &vs) {
		t.Fatalf("expected schema.Violations, got %T", err)
	}
	if len(vs) != 3 {
		t.Fatalf("expected 3 violations, got %d: %v", len(vs), vs)
	}
	wantPaths := []string{
		"GrpHdr.MsgId",
		"CdtTrfTxInf[0].IntrBkSttlmAmt",
		"CdtTrfTxInf[0].ChrgBr",
	}
	for i, want := range wantPaths {
		if vs[i].Path != want {
			t.Errorf("violation %d path = %q, want %q", i, vs[i].Path, want)
		}
	}
	if vs[1].Code != schema.CodeMinValue {
		t.Errorf("negative amount code = %d, want %d", vs[1].Code, schema.CodeMinValue)
	}
	if vs[2].Code != schema.CodeEnumeration {
		t.Errorf("bad charge bearer code = %d, want %d", vs[2].Code, schema.CodeEnumeration)
	}
}

func TestFIToFICustomerCreditTransferXMLRoundTrip(t *testing.T) {
	orig := validTransfer()

	data, err := xml.MarshalIndent(orig, "", "  ")
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	out := string(data)
	for _, want := range []string{"<GrpHdr>", "<IntrBkSttlmAmt Ccy=\"EUR\">12500.00</IntrBkSttlmAmt>", "<EndToEndId>E2E-REF-001</EndToEndId>"} {
		if !strings.Contains(out, want) {
			t.Errorf("marshalled XML missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "<CtrlSum>") {
		t.Errorf("absent optional element was serialized:\n%s", out)
	}

	var decoded FIToFICustomerCreditTransferV08
	if err := xml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.GrpHdr.MsgId != orig.GrpHdr.MsgId {
		t.Errorf("MsgId = %q, want %q", decoded.GrpHdr.MsgId, orig.GrpHdr.MsgId)
	}
	if decoded.CdtTrfTxInf[0].IntrBkSttlmAmt.Value != "12500.00" {
		t.Errorf("amount = %q, want %q", decoded.CdtTrfTxInf[0].IntrBkSttlmAmt.Value, "12500.00")
	}
	if err := decoded.Validate(); err != nil {
		t.Errorf("decoded message failed validation: %v", err)
	}
}
