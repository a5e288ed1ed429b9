package acmt

import (
	"errors"
	"testing"

	"github.com/Open-Payments/messages-sub014/pkg/iso20022/common"
	"github.com/Open-Payments/messages-sub014/pkg/schema"
)

func TestRequestForAccountManagementStatusReport(t *testing.T) {
	m := RequestForAccountManagementStatusReportV06{
		MsgId: common.MessageIdentification1{
			Id:      "REQ-20240115-7",
			CreDtTm: "2024-01-15T10:00:00Z",
		},
		ReqDtls: AccountManagementMessageReference5{
			StsReqTp:    AccountManagementStatus,
			ExstgAcctId: &Account23{AcctId: "ACCT-001"},
		},
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("expected valid message, got %v", err)
	}

	m.ReqDtls.StsReqTp = "NONE"
	m.ReqDtls.ExstgAcctId.AcctId = ""
	err := m.Validate()
	var vs schema.Violations
	if !errors.As(err, &vs) {
		t.Fatalf("expected schema.Violations, got %T", err)
	}
	if len(vs) != 2 {
		t.Fatalf("expected 2 violations, got %d: %v", len(vs), vs)
	}
	if vs[0].Path != "ReqDtls.StsReqTp" || vs[0].Code != schema.CodeEnumeration {
		t.Errorf("unexpected first violation: %+v", vs[0])
	}
	if vs[1].Path != "ReqDtls.ExstgAcctId.AcctId" || vs[1].Code != schema.CodeMinLength {
		t.Errorf("unexpected second violation: %+v", vs[1])
	}
}

func TestInvestmentAccountOwnerValidation(t *testing.T) {
	acct := InvestmentAccount77{
		AcctId: "INV-42",
		OwnrId: &OwnerIdentification3Choice{
			IndvOwnrId: &IndividualPersonIdentification2Choice{
				PrsnNm: &IndividualPerson30{Nm: "Alex Morgan"},
			},
		},
	}
	if err := acct.Validate(); err != nil {
		t.Fatalf("expected valid account, got %v", err)
	}

	acct.OwnrId.IndvOwnrId.PrsnNm.Nm = ""
	err := acct.Validate()
	var vs schema.Violations
	if !errors.As(err, &vs) {
		t.Fatalf("expected schema.Violations, got %T", err)
	}
	if len(vs) != 1 || vs[0].Path != "OwnrId.IndvOwnrId.PrsnNm.Nm" {
		t.Fatalf("expected one violation at OwnrId.IndvOwnrId.PrsnNm.Nm, got %v", vs)
	}
}
