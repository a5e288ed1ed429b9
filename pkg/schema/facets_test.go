package schema

import (
	"errors"
	"testing"
)

var ibanPattern = MustPattern(`[A-Z]{2,2}[0-9]{2,2}[a-zA-Z0-9]{1,30}`)

func TestPattern_Accepts(t *testing.T) {
	tests := []string{
		"GB29NWBK60161331926819",
		"DE89370400440532013000",
		"FR1420041010050500013M02606",
	}
	for _, value := range tests {
		if err := ibanPattern.Check(value); err != nil {
			t.Errorf("Check(%q) unexpected error: %v", value, err)
		}
	}
}

func TestPattern_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"empty", ""},
		{"no leading letters", "1234"},
		{"lowercase country", "gb29NWBK60161331926819"},
		{"embedded match only", "xxGB29NWBK60161331926819"},
		{"trailing garbage", "GB29NWBK60161331926819!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ibanPattern.Check(tt.value)
			if err == nil {
				t.Fatalf("Check(%q) expected error, got nil", tt.value)
			}
			var vs Violations
			if !errors.As(err, &vs) || vs[0].Code != CodePattern {
				t.Errorf("Check(%q) = %v, want pattern violation %d", tt.value, err, CodePattern)
			}
		})
	}
}

func TestText_Bounds(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		min, max int
		wantCode Code
	}{
		{"empty below min", "", 1, 35, CodeMinLength},
		{"at min", "a", 1, 35, 0},
		{"at max", "12345678901234567890123456789012345", 1, 35, 0},
		{"above max", "123456789012345678901234567890123456", 1, 35, CodeMaxLength},
		{"multibyte counted as code points", "äöüß", 1, 4, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Text(tt.value, tt.min, tt.max)
			if tt.wantCode == 0 {
				if err != nil {
					t.Fatalf("Text(%q, %d, %d) unexpected error: %v", tt.value, tt.min, tt.max, err)
				}
				return
			}
			var vs Violations
			if !errors.As(err, &vs) {
				t.Fatalf("Text(%q, %d, %d) = %v, want Violations", tt.value, tt.min, tt.max, err)
			}
			if vs[0].Code != tt.wantCode {
				t.Errorf("violation code = %d, want %d", vs[0].Code, tt.wantCode)
			}
		})
	}
}

func TestEnumeration(t *testing.T) {
	status := MustEnum("ENAB", "DISA", "DELE", "FORM")
	if err := status.Check("ENAB"); err != nil {
		t.Errorf("Check(ENAB) unexpected error: %v", err)
	}
	err := status.Check("BOGUS")
	var vs Violations
	if !errors.As(err, &vs) || vs[0].Code != CodeEnumeration {
		t.Errorf("Check(BOGUS) = %v, want enumeration violation", err)
	}
}

func TestAmount(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		wantCode Code
	}{
		{"plain", "1000.00", 0},
		{"zero", "0", 0},
		{"max fraction digits", "1.00001", 0},
		{"negative", "-1.00", CodeMinValue},
		{"too many fraction digits", "1.000001", CodeFractionDigits},
		{"too many total digits", "1234567890123456789", CodeTotalDigits},
		{"not a number", "ten", CodePattern},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Amount(tt.value, 18, 5)
			if tt.wantCode == 0 {
				if err != nil {
					t.Fatalf("Amount(%q) unexpected error: %v", tt.value, err)
				}
				return
			}
			var vs Violations
			if !errors.As(err, &vs) {
				t.Fatalf("Amount(%q) = %v, want Violations", tt.value, err)
			}
			if vs[0].Code != tt.wantCode {
				t.Errorf("violation code = %d, want %d", vs[0].Code, tt.wantCode)
			}
		})
	}
}

func TestDecimal_AllowsNegative(t *testing.T) {
	if err := Decimal("-12.5", 18, 17); err != nil {
		t.Errorf("Decimal(-12.5) unexpected error: %v", err)
	}
}
