package pain

import (
	"encoding/xml"
	"errors"
	"testing"

	"github.com/Open-Payments/messages-sub014/pkg/iso20022/common"
	"github.com/Open-Payments/messages-sub014/pkg/schema"
)

func validInitiation() CustomerCreditTransferInitiationV12 {
	initgNm := common.Max140Text("Treasury Desk")
	dbtrNm := common.Max140Text("ACME Corporation")
	cdtrNm := common.Max140Text("Office Supplies GmbH")
	bic := common.BICFIDec2014Identifier("NWBKGB2L")
	iban := common.IBAN2007Identifier("GB29NWBK60161331926819")
	execDt := common.ISODate("2024-02-01")
	instdAmt := common.ActiveOrHistoricCurrencyAndAmount{Ccy: "GBP", Value: "249.99"}

	return CustomerCreditTransferInitiationV12{
		GrpHdr: GroupHeader114{
			MsgId:    "INIT-20240131-001",
			CreDtTm:  "2024-01-31T16:04:12Z",
			NbOfTxs:  "1",
			InitgPty: PartyIdentification272{Nm: &initgNm},
		},
		PmtInf: []PaymentInstruction44{{
			PmtInfId:    "PMT-BATCH-7",
			PmtMtd:      PaymentMethodCreditTransfer,
			ReqdExctnDt: common.DateAndDateTime2Choice{Dt: &execDt},
			Dbtr:        PartyIdentification272{Nm: &dbtrNm},
			DbtrAcct: CashAccount40{
				Id: &common.AccountIdentification4Choice{IBAN: &iban},
			},
			DbtrAgt: BranchAndFinancialInstitutionIdentification8{
				FinInstnId: FinancialInstitutionIdentification23{BICFI: &bic},
			},
			CdtTrfTxInf: []CreditTransferTransaction61{{
				PmtId: PaymentIdentification6{EndToEndId: "INV-2024-0042"},
				Amt:   common.AmountType4Choice{InstdAmt: &instdAmt},
				Cdtr:  &PartyIdentification272{Nm: &cdtrNm},
			}},
		}},
	}
}

func TestCustomerCreditTransferInitiationValid(t *testing.T) {
	if err := validInitiation().Validate(); err != nil {
		t.Fatalf("expected valid message, got %v", err)
	}
}

func TestCustomerCreditTransferInitiationViolationPaths(t *testing.T) {
	m := validInitiation()
	m.PmtInf[0].PmtMtd = "WIRE"
	badIBAN := common.IBAN2007Identifier("1234")
	m.PmtInf[0].DbtrAcct.Id.IBAN = &badIBAN

	err := m.Validate()
	var vs schema.Violations
	if !errors.As(err, &vs) {
		t.Fatalf("expected schema.Violations, got %T", err)
	}
	if len(vs) != 2 {
		t.Fatalf("expected 2 violations, got %d: %v", len(vs), vs)
	}
	if vs[0].Path != "PmtInf[0].PmtMtd" || vs[0].Code != schema.CodeEnumeration {
		t.Errorf("unexpected first violation: %+v", vs[0])
	}
	if vs[1].Path != "PmtInf[0].DbtrAcct.Id.IBAN" || vs[1].Code != schema.CodePattern {
		t.Errorf("unexpected second violation: %+v", vs[1])
	}
}

func TestCustomerCreditTransferInitiationXMLRoundTrip(t *testing.T) {
	orig := validInitiation()

	data, err := xml.Marshal(orig)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded CustomerCreditTransferInitiationV12
	if err := xml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.PmtInf[0].CdtTrfTxInf[0].Amt.InstdAmt == nil {
		t.Fatal("instructed amount lost in round trip")
	}
	if got := decoded.PmtInf[0].CdtTrfTxInf[0].Amt.InstdAmt.Value; got != "249.99" {
		t.Errorf("amount = %q, want %q", got, "249.99")
	}
	if err := decoded.Validate(); err != nil {
		t.Errorf("decoded message failed validation: %v", err)
	}
}
