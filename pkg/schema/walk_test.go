package schema

import (
	"errors"
	"testing"
)

// Minimal stand-ins for a constrained scalar and a composite.

type fakeText string

func (t fakeText) Validate() error { return Text(string(t), 1, 5) }

type fakeRecord struct {
	ID   fakeText
	Name *fakeText
	Tags []fakeText
}

func (r fakeRecord) Validate() error {
	var vs Violations
	Required(&vs, "Id", r.ID)
	Optional(&vs, "Nm", r.Name)
	Each(&vs, "Tag", r.Tags)
	return vs.OrNil()
}

func TestComposite_AllPresentFieldsValid(t *testing.T) {
	nm := fakeText("ok")
	r := fakeRecord{ID: "abc", Name: &nm, Tags: []fakeText{"x", "y"}}
	if err := r.Validate(); err != nil {
		t.Fatalf("Validate() unexpected error: %v", err)
	}
}

func TestComposite_AbsentOptionalsPass(t *testing.T) {
	r := fakeRecord{ID: "abc"}
	if err := r.Validate(); err != nil {
		t.Fatalf("Validate() with absent optionals: %v", err)
	}
}

func TestComposite_CollectsEveryFailure(t *testing.T) {
	bad := fakeText("")
	r := fakeRecord{ID: "toolongvalue", Name: &bad, Tags: []fakeText{"ok", "toolongvalue"}}
	err := r.Validate()
	var vs Violations
	if !errors.As(err, &vs) {
		t.Fatalf("Validate() = %v, want Violations", err)
	}
	if len(vs) != 3 {
		t.Fatalf("got %d violations, want 3: %v", len(vs), vs)
	}
	wantPaths := []string{"Id", "Nm", "Tag[1]"}
	for i, want := range wantPaths {
		if vs[i].Path != want {
			t.Errorf("violation %d path = %q, want %q", i, vs[i].Path, want)
		}
	}
}

func TestField_NestedPathPrefixing(t *testing.T) {
	inner := Violations{
		{Path: "Nm", Code: CodeMaxLength, Message: "exceeds the maximum length of 5"},
		{Path: "Tag[0]", Code: CodeMinLength, Message: "is shorter than the minimum length of 1"},
	}
	var vs Violations
	Field(&vs, "Outer", inner.OrNil())
	if vs[0].Path != "Outer.Nm" {
		t.Errorf("path = %q, want Outer.Nm", vs[0].Path)
	}
	if vs[1].Path != "Outer.Tag[0]" {
		t.Errorf("path = %q, want Outer.Tag[0]", vs[1].Path)
	}
}

func TestField_PlainErrorKeepsPath(t *testing.T) {
	var vs Violations
	Field(&vs, "Fld", errors.New("boom"))
	if len(vs) != 1 || vs[0].Path != "Fld" || vs[0].Message != "boom" {
		t.Errorf("unexpected violations: %v", vs)
	}
}

func TestViolations_ErrorString(t *testing.T) {
	vs := Violations{{Path: "GrpHdr.MsgId", Code: CodeMinLength, Message: "is shorter than the minimum length of 1"}}
	want := "GrpHdr.MsgId: [1001] is shorter than the minimum length of 1"
	if vs.Error() != want {
		t.Errorf("Error() = %q, want %q", vs.Error(), want)
	}
}
