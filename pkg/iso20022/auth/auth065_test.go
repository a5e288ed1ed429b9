package auth

import (
	"errors"
	"testing"

	"github.com/Open-Payments/messages-sub014/pkg/schema"
)

func TestCCPBackTestingDefinitionReport(t *testing.T) {
	cd := ModelValueAtRisk
	m := CCPBackTestingDefinitionReportV01{
		Mthdlgy: []BackTestingMethodology1{{
			RskMdlTp:          ModelType1Choice{Cd: &cd},
			MdlCnfdncLvl:      "0.99",
			VartnMrgnCleanInd: true,
		}},
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("expected valid report, got %v", err)
	}

	bad := ModelType1Code("VAR")
	m.Mthdlgy[0].RskMdlTp.Cd = &bad
	m.Mthdlgy[0].MdlCnfdncLvl = "ninety-nine"
	err := m.Validate()
	var vs schema.Violations
	if !errors.As(err, &vs) {
		t.Fatalf("expected schema.Violations, got %T", err)
	}
	if len(vs) != 2 {
		t.Fatalf("expected 2 violations, got %d: %v", len(vs), vs)
	}
	if vs[0].Path != "Mthdlgy[0].RskMdlTp.Cd" || vs[0].Code != schema.CodeEnumeration {
		t.Errorf("unexpected first violation: %+v", vs[0])
	}
	if vs[1].Path != "Mthdlgy[0].MdlCnfdncLvl" || vs[1].Code != schema.CodePattern {
		t.Errorf("unexpected second violation: %+v", vs[1])
	}
}
