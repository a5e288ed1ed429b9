// Package schema implements the validation contract shared by every
// ISO 20022 type in this repository: constrained scalars check a single
// facet (pattern, length, enumeration, digits), composites validate every
// present field, and all failures are collected into one Violations value
// carrying the schema path of each offending element.
package schema

import (
	"errors"
	"fmt"
	"strings"
)

// Code identifies the kind of constraint that failed. The numbering
// follows the ISO 20022 code generator this catalog derives from.
type Code uint32

const (
	CodeMinLength      Code = 1001
	CodeMaxLength      Code = 1002
	CodeMinValue       Code = 1003
	CodeEnumeration    Code = 1004
	CodePattern        Code = 1005
	CodeTotalDigits    Code = 1006
	CodeFractionDigits Code = 1007
)

// Violation is a single constraint failure. Path addresses the failing
// element using schema tag names, e.g. "GrpHdr.InitgPty.Nm" or
// "PmtInf[0].CdtTrfTxInf[2].Amt".
type Violation struct {
	Path    string
	Code    Code
	Message string
}

func (v Violation) Error() string {
	if v.Path == "" {
		return fmt.Sprintf("[%d] %s", v.Code, v.Message)
	}
	return fmt.Sprintf("%s: [%d] %s", v.Path, v.Code, v.Message)
}

// Violations is the result of validating one value: every constraint
// failure found in a full traversal, in field declaration order.
type Violations []Violation

func (vs Violations) Error() string {
	if len(vs) == 0 {
		return "no violations"
	}
	msgs := make([]string, len(vs))
	for i, v := range vs {
		msgs[i] = v.Error()
	}
	return strings.Join(msgs, "; ")
}

// OrNil returns vs as an error, or nil when nothing failed. Validate
// methods must return the result of this call rather than a bare
// Violations value, so callers can compare against nil.
func (vs Violations) OrNil() error {
	if len(vs) == 0 {
		return nil
	}
	return vs
}

// AsViolations unwraps err into a Violations value when the error came
// from validation.
func AsViolations(err error) (Violations, bool) {
	var vs Violations
	if errors.As(err, &vs) {
		return vs, true
	}
	return nil, false
}
