package schema

import (
	"errors"
	"fmt"
)

// Validator is implemented by every schema-derived type: scalars,
// code sets, composites, choices and message roots.
type Validator interface {
	Validate() error
}

// Required validates a mandatory field and records its failures under path.
func Required(vs *Violations, path string, v Validator) {
	Field(vs, path, v.Validate())
}

// Optional validates an optional field when it is present. Absent fields
// are valid by definition.
func Optional[T Validator](vs *Violations, path string, v *T) {
	if v == nil {
		return
	}
	Field(vs, path, (*v).Validate())
}

// Each validates every element of a repeating field, indexing the path per
// element. A nil slice is an absent field and passes.
func Each[T Validator](vs *Violations, path string, items []T) {
	for i, item := range items {
		Field(vs, fmt.Sprintf("%s[%d]", path, i), item.Validate())
	}
}

// Field merges the outcome of one field's validation into vs, prefixing
// child paths with the field's own schema tag name.
func Field(vs *Violations, path string, err error) {
	if err == nil {
		return
	}
	var children Violations
	if errors.As(err, &children) {
		for _, c := range children {
			*vs = append(*vs, Violation{Path: joinPath(path, c.Path), Code: c.Code, Message: c.Message})
		}
		return
	}
	var single Violation
	if errors.As(err, &single) {
		*vs = append(*vs, Violation{Path: joinPath(path, single.Path), Code: single.Code, Message: single.Message})
		return
	}
	*vs = append(*vs, Violation{Path: path, Message: err.Error()})
}

func joinPath(parent, child string) string {
	switch {
	case child == "":
		return parent
	case parent == "":
		return child
	case child[0] == '[':
		return parent + child
	default:
		return parent + "." + child
	}
}
