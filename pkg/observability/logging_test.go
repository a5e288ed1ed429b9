package observability

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/Open-Payments/messages-sub014/pkg/schema"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected slog.Level
	}{
		{name: "debug level", input: "debug", expected: slog.LevelDebug},
		{name: "info level", input: "info", expected: slog.LevelInfo},
		{name: "warn level", input: "warn", expected: slog.LevelWarn},
		{name: "warning level", input: "warning", expected: slog.LevelWarn},
		{name: "error level", input: "error", expected: slog.LevelError},
		{name: "uppercase DEBUG", input: "DEBUG", expected: slog.LevelDebug},
		{name: "mixed case Info", input: "Info", expected: slog.LevelInfo},
		{name: "empty string defaults to info", input: "", expected: slog.LevelInfo},
		{name: "unknown level defaults to info", input: "xyzzy", expected: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := parseLevel(tt.input)
			if result != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LogConfig{Level: "debug", Format: "json"})

	logger.Debug("decoded message", "type", "pacs.008.001.08")

	out := buf.String()
	if !strings.Contains(out, `"type":"pacs.008.001.08"`) {
		t.Errorf("JSON output missing attribute: %s", out)
	}
}

func TestNewLoggerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LogConfig{Level: "warn", Format: "text"})

	logger.Info("suppressed")
	logger.Warn("emitted")

	out := buf.String()
	if strings.Contains(out, "suppressed") {
		t.Errorf("info record passed a warn-level logger: %s", out)
	}
	if !strings.Contains(out, "emitted") {
		t.Errorf("warn record missing: %s", out)
	}
}

func TestInitLoggerSetsDefault(t *testing.T) {
	logger := InitLogger(LogConfig{Level: "info", Format: "json"})

	if logger.Handler() != slog.Default().Handler() {
		t.Error("InitLogger did not set the default logger")
	}
}

func TestLogViolations(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LogConfig{Level: "info", Format: "json"})

	err := schema.Violations{
		{Path: "GrpHdr.MsgId", Code: schema.CodeMinLength, Message: "value is shorter than 1"},
		{Path: "CdtTrfTxInf[0].ChrgBr", Code: schema.CodeEnumeration, Message: "value is not in the enumeration"},
	}
	LogViolations(logger, "payment.xml", err)

	out := buf.String()
	if got := strings.Count(out, "constraint violation"); got != 2 {
		t.Fatalf("got %d violation records, want 2: %s", got, out)
	}
	if !strings.Contains(out, `"path":"GrpHdr.MsgId"`) || !strings.Contains(out, `"code":1001`) {
		t.Errorf("violation record missing path or code: %s", out)
	}
}

func TestLogViolationsNonViolationError(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LogConfig{Level: "info", Format: "json"})

	LogViolations(logger, "broken.xml", errors.New("unexpected EOF"))

	out := buf.String()
	if !strings.Contains(out, "message invalid") || !strings.Contains(out, "unexpected EOF") {
		t.Errorf("decode error not logged: %s", out)
	}
}
