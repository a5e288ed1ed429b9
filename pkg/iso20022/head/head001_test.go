package head

import (
	"encoding/xml"
	"errors"
	"testing"

	"github.com/Open-Payments/messages-sub014/pkg/iso20022/common"
	"github.com/Open-Payments/messages-sub014/pkg/schema"
)

func validHeader() BusinessApplicationHeaderV02 {
	frBIC := common.BICFIDec2014Identifier("NWBKGB2L")
	toBIC := common.BICFIDec2014Identifier("DEUTDEFF")
	return BusinessApplicationHeaderV02{
		Fr: common.Party44Choice{
			FIId: &common.BranchAndFinancialInstitutionIdentification6{
				FinInstnId: common.FinancialInstitutionIdentification18{BICFI: &frBIC},
			},
		},
		To: common.Party44Choice{
			FIId: &common.BranchAndFinancialInstitutionIdentification6{
				FinInstnId: common.FinancialInstitutionIdentification18{BICFI: &toBIC},
			},
		},
		BizMsgIdr: "BIZ-20240115-0001",
		MsgDefIdr: "pacs.008.001.08",
		CreDt:     "2024-01-15T09:30:47Z",
	}
}

func TestBusinessApplicationHeaderValid(t *testing.T) {
	if err := validHeader().Validate(); err != nil {
		t.Fatalf("expected valid header, got %v", err)
	}
}

func TestBusinessApplicationHeaderViolations(t *testing.T) {
	h := validHeader()
	h.BizMsgIdr = ""
	cpy := CopyDuplicate1Code("XXXX")
	h.CpyDplct = &cpy
	badBIC := common.BICFIDec2014Identifier("bad")
	h.Fr.FIId.FinInstnId.BICFI = &badBIC

	err := h.Validate()
	var vs schema.Violations
	if !errors.As(err, &vs) {
		t.Fatalf("expected schema.Violations, got %T", err)
	}
	if len(vs) != 3 {
		t.Fatalf("expected 3 violations, got %d: %v", len(vs), vs)
	}
	if vs[0].Path != "Fr.FIId.FinInstnId.BICFI" || vs[0].Code != schema.CodePattern {
		t.Errorf("unexpected first violation: %+v", vs[0])
	}
	if vs[1].Path != "BizMsgIdr" || vs[1].Code != schema.CodeMinLength {
		t.Errorf("unexpected second violation: %+v", vs[1])
	}
	if vs[2].Path != "CpyDplct" || vs[2].Code != schema.CodeEnumeration {
		t.Errorf("unexpected third violation: %+v", vs[2])
	}
}

func TestBusinessApplicationHeaderSignaturePreserved(t *testing.T) {
	h := validHeader()
	h.Sgntr = &SignatureEnvelope{Content: "<ds:Signature>opaque</ds:Signature>"}

	data, err := xml.Marshal(h)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded BusinessApplicationHeaderV02
	if err := xml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Sgntr == nil || decoded.Sgntr.Content != h.Sgntr.Content {
		t.Errorf("signature content not preserved: %+v", decoded.Sgntr)
	}
}
