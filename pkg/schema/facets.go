package schema

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Pattern is a full-string regex facet. Patterns are compiled exactly once,
// at package initialization, and anchored so the accept set equals the
// regex language (XSD pattern facets match the whole value).
type Pattern struct {
	re *regexp.Regexp
}

// MustPattern compiles a schema pattern facet. All pattern sources in this
// repository are fixed literals, so a compile failure is a programming
// error and panics at init.
func MustPattern(expr string) Pattern {
	return Pattern{re: regexp.MustCompile(`\A(?:` + expr + `)\z`)}
}

// Check reports whether value matches the pattern.
func (p Pattern) Check(value string) error {
	if p.re.MatchString(value) {
		return nil
	}
	return Violations{{Code: CodePattern, Message: "does not match the required pattern"}}
}

// Text checks a length-bounded text facet. Lengths are counted in Unicode
// code points, not bytes.
func Text(value string, minLen, maxLen int) error {
	var vs Violations
	n := utf8.RuneCountInString(value)
	if n < minLen {
		vs = append(vs, Violation{Code: CodeMinLength, Message: fmt.Sprintf("is shorter than the minimum length of %d", minLen)})
	}
	if n > maxLen {
		vs = append(vs, Violation{Code: CodeMaxLength, Message: fmt.Sprintf("exceeds the maximum length of %d", maxLen)})
	}
	return vs.OrNil()
}

// Enumeration is a closed code-set facet.
type Enumeration struct {
	allowed map[string]struct{}
}

// MustEnum builds an enumeration facet from its allowed code values.
func MustEnum(values ...string) Enumeration {
	allowed := make(map[string]struct{}, len(values))
	for _, v := range values {
		allowed[v] = struct{}{}
	}
	return Enumeration{allowed: allowed}
}

// Check reports whether value is a member of the enumeration.
func (e Enumeration) Check(value string) error {
	if _, ok := e.allowed[value]; ok {
		return nil
	}
	return Violations{{Code: CodeEnumeration, Message: fmt.Sprintf("%q is not one of the allowed values", value)}}
}

// Decimal checks the digit facets of an xs:decimal-derived value carried
// as text. Sign is unrestricted.
func Decimal(value string, totalDigits, fractionDigits int) error {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Violations{{Code: CodePattern, Message: "is not a decimal number"}}
	}
	return checkDigits(d, totalDigits, fractionDigits).OrNil()
}

// Amount checks a currency-and-amount simple type: a non-negative decimal
// with ISO digit limits (18 total, 5 fraction unless the type narrows them).
func Amount(value string, totalDigits, fractionDigits int) error {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Violations{{Code: CodePattern, Message: "is not a decimal number"}}
	}
	vs := checkDigits(d, totalDigits, fractionDigits)
	if d.IsNegative() {
		vs = append(vs, Violation{Code: CodeMinValue, Message: "is less than the minimum value of 0"})
	}
	return vs.OrNil()
}

func checkDigits(d decimal.Decimal, totalDigits, fractionDigits int) Violations {
	var vs Violations
	if d.NumDigits() > totalDigits {
		vs = append(vs, Violation{Code: CodeTotalDigits, Message: fmt.Sprintf("exceeds %d total digits", totalDigits)})
	}
	if exp := d.Exponent(); exp < 0 && int(-exp) > fractionDigits {
		vs = append(vs, Violation{Code: CodeFractionDigits, Message: fmt.Sprintf("exceeds %d fraction digits", fractionDigits)})
	}
	return vs
}
