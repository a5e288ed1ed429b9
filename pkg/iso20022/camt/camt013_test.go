package camt

import (
	"errors"
	"testing"

	"github.com/Open-Payments/messages-sub014/pkg/iso20022/common"
	"github.com/Open-Payments/messages-sub014/pkg/schema"
)

func TestGetMemberValidation(t *testing.T) {
	qry := QueryAll
	sts := MemberStatusEnabled
	bic := common.BICFIDec2014Identifier("NWBKGB2L")
	m := GetMemberV04{
		MsgHdr: MessageHeader9{MsgId: "QRY-20240115-3"},
		MmbQryDef: &MemberQueryDefinition4{
			QryTp: &qry,
			MmbCrit: &MemberCriteriaDefinition2Choice{
				NewCrit: &MemberCriteria4{
					SchCrit: []MemberSearchCriteria4{{
						Id:  []MemberIdentification3Choice{{BICFI: &bic}},
						Sts: []SystemMemberStatus1Choice{{Cd: &sts}},
					}},
				},
			},
		},
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("expected valid query, got %v", err)
	}

	badSts := MemberStatus1Code("GONE")
	m.MmbQryDef.MmbCrit.NewCrit.SchCrit[0].Sts[0].Cd = &badSts
	err := m.Validate()
	var vs schema.Violations
	if !errors.As(err, &vs) {
		t.Fatalf("expected schema.Violations, got %T", err)
	}
	want := "MmbQryDef.MmbCrit.NewCrit.SchCrit[0].Sts[0].Cd"
	if len(vs) != 1 || vs[0].Path != want {
		t.Fatalf("expected one violation at %s, got %v", want, vs)
	}
	if vs[0].Code != schema.CodeEnumeration {
		t.Errorf("code = %d, want %d", vs[0].Code, schema.CodeEnumeration)
	}
}

func TestMemberReturnCriteriaAlwaysValid(t *testing.T) {
	ind := common.RequestedIndicator(true)
	c := MemberReturnCriteria1{NmInd: &ind, StsInd: &ind}
	if err := c.Validate(); err != nil {
		t.Fatalf("expected no violations, got %v", err)
	}
}
