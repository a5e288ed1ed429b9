package admi

import (
	"encoding/xml"
	"errors"
	"strings"
	"testing"

	"github.com/Open-Payments/messages-sub014/pkg/iso20022/common"
	"github.com/Open-Payments/messages-sub014/pkg/schema"
)

func TestMessageRejectValidation(t *testing.T) {
	errLctn := common.Max350Text("Document/FIToFICstmrCdtTrf/GrpHdr/MsgId")
	m := Admi00200101{
		RltdRef: MessageReference{Ref: "MSG-20240115-0001"},
		Rsn: RejectionReason2{
			RjctgPtyRsn: "NARR",
			ErrLctn:     &errLctn,
		},
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("expected valid message, got %v", err)
	}

	m.RltdRef.Ref = ""
	m.Rsn.RjctgPtyRsn = common.Max35Text(strings.Repeat("x", 36))
	err := m.Validate()
	var vs schema.Violations
	if !errors.As(err, &vs) {
		t.Fatalf("expected schema.Violations, got %T", err)
	}
	if len(vs) != 2 {
		t.Fatalf("expected 2 violations, got %d: %v", len(vs), vs)
	}
	if vs[0].Path != "RltdRef.Ref" || vs[0].Code != schema.CodeMinLength {
		t.Errorf("unexpected first violation: %+v", vs[0])
	}
	if vs[1].Path != "Rsn.RjctgPtyRsn" || vs[1].Code != schema.CodeMaxLength {
		t.Errorf("unexpected second violation: %+v", vs[1])
	}
}

func TestSystemEventNotificationValidation(t *testing.T) {
	tm := common.ISODateTime("2024-01-15T17:00:00Z")
	m := SystemEventNotificationV02{
		EvtInf: Event2{
			EvtCd:    "CLSD",
			EvtParam: []common.Max35Text{"CYCLE-42"},
			EvtTm:    &tm,
		},
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("expected valid message, got %v", err)
	}

	m.EvtInf.EvtCd = "TOOLONG"
	err := m.Validate()
	var vs schema.Violations
	if !errors.As(err, &vs) {
		t.Fatalf("expected schema.Violations, got %T", err)
	}
	for _, v := range vs {
		if v.Path != "EvtInf.EvtCd" {
			t.Errorf("violation path = %q, want EvtInf.EvtCd", v.Path)
		}
	}
}

func TestReceiptAcknowledgementRoundTrip(t *testing.T) {
	desc := common.Max140Text("Request processed")
	orig := ReceiptAcknowledgementV01{
		MsgId: MessageHeader10{MsgId: "ACK-0099"},
		Rpt: []ReceiptAcknowledgementReport2{{
			RltdRef: MessageReference1{Ref: "MSG-20240115-0001"},
			ReqHdlg: RequestHandling2{StsCd: "TS01", Desc: &desc},
		}},
	}
	if err := orig.Validate(); err != nil {
		t.Fatalf("expected valid message, got %v", err)
	}

	data, err := xml.Marshal(orig)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded ReceiptAcknowledgementV01
	if err := xml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(decoded.Rpt) != 1 || decoded.Rpt[0].ReqHdlg.StsCd != "TS01" {
		t.Errorf("round trip lost report data: %+v", decoded.Rpt)
	}
}
