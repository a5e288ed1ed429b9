package common

import (
	"errors"
	"strings"
	"testing"

	"github.com/Open-Payments/messages-sub014/pkg/schema"
)

func TestIBAN2007Identifier(t *testing.T) {
	tests := []struct {
		name    string
		iban    IBAN2007Identifier
		wantErr bool
	}{
		{"valid UK IBAN", "GB29NWBK60161331926819", false},
		{"valid German IBAN", "DE89370400440532013000", false},
		{"digits only", "1234", true},
		{"lowercase country", "gb29NWBK60161331926819", true},
		{"trailing garbage", "GB29NWBK60161331926819!", true},
		{"empty", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.iban.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%q) error = %v, wantErr %v", tt.iban, err, tt.wantErr)
			}
		})
	}
}

func TestBICFIDec2014Identifier(t *testing.T) {
	tests := []struct {
		name    string
		bic     BICFIDec2014Identifier
		wantErr bool
	}{
		{"eight characters", "NWBKGB2L", false},
		{"eleven characters", "DEUTDEFF500", false},
		{"too short", "NWBKGB", true},
		{"lowercase", "nwbkgb2l", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.bic.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%q) error = %v, wantErr %v", tt.bic, err, tt.wantErr)
			}
		})
	}
}

func TestMax35Text(t *testing.T) {
	tests := []struct {
		name    string
		text    Max35Text
		wantErr bool
	}{
		{"single character", "x", false},
		{"at limit", Max35Text(strings.Repeat("a", 35)), false},
		{"over limit", Max35Text(strings.Repeat("a", 36)), true},
		{"empty", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.text.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
			}
		})
	}
}

func TestMax4AlphaNumericTextCollectsBothFacets(t *testing.T) {
	err := Max4AlphaNumericText("ab-cd").Validate()
	if err == nil {
		t.Fatal("expected violations for text over length with invalid characters")
	}
	var vs schema.Violations
	if !errors.As(err, &vs) {
		t.Fatalf("expected schema.Violations, got %T", err)
	}
	if len(vs) != 2 {
		t.Fatalf("expected 2 violations, got %d: %v", len(vs), vs)
	}
}

func TestActiveCurrencyAndAmount(t *testing.T) {
	tests := []struct {
		name    string
		amt     ActiveCurrencyAndAmount
		wantErr bool
	}{
		{"valid", ActiveCurrencyAndAmount{Ccy: "USD", Value: "1500.00"}, false},
		{"zero", ActiveCurrencyAndAmount{Ccy: "EUR", Value: "0"}, false},
		{"negative", ActiveCurrencyAndAmount{Ccy: "USD", Value: "-1.00"}, true},
		{"bad currency", ActiveCurrencyAndAmount{Ccy: "usd", Value: "1.00"}, true},
		{"too many fraction digits", ActiveCurrencyAndAmount{Ccy: "USD", Value: "1.123456"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.amt.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%+v) error = %v, wantErr %v", tt.amt, err, tt.wantErr)
			}
		})
	}
}

func TestPartyIdentification135Paths(t *testing.T) {
	bad := Max140Text("")
	ctry := CountryCode("DEU")
	p := PartyIdentification135{Nm: &bad, CtryOfRes: &ctry}

	err := p.Validate()
	var vs schema.Violations
	if !errors.As(err, &vs) {
		t.Fatalf("expected schema.Violations, got %T", err)
	}
	if len(vs) != 2 {
		t.Fatalf("expected 2 violations, got %d: %v", len(vs), vs)
	}
	if vs[0].Path != "Nm" || vs[0].Code != schema.CodeMinLength {
		t.Errorf("unexpected first violation: %+v", vs[0])
	}
	if vs[1].Path != "CtryOfRes" || vs[1].Code != schema.CodePattern {
		t.Errorf("unexpected second violation: %+v", vs[1])
	}
}

func TestPostalAddress24IndexedLines(t *testing.T) {
	long := Max70Text(strings.Repeat("a", 71))
	a := PostalAddress24{AdrLine: []Max70Text{"Fine", long}}

	err := a.Validate()
	var vs schema.Violations
	if !errors.As(err, &vs) {
		t.Fatalf("expected schema.Violations, got %T", err)
	}
	if len(vs) != 1 || vs[0].Path != "AdrLine[1]" {
		t.Fatalf("expected one violation at AdrLine[1], got %v", vs)
	}
}
