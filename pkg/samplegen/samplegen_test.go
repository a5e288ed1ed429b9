package samplegen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Open-Payments/messages-sub014/pkg/iso20022"
)

func TestPacs008GeneratesValidMessage(t *testing.T) {
	msg := New(Config{Seed: 1}).Pacs008()

	require.NoError(t, msg.Validate())
	require.Len(t, msg.CdtTrfTxInf, 1)
	assert.NotEmpty(t, msg.GrpHdr.MsgId)
	assert.NotNil(t, msg.CdtTrfTxInf[0].PmtId.UETR)
}

func TestPain001GeneratesValidMessage(t *testing.T) {
	msg := New(Config{Seed: 1}).Pain001()

	require.NoError(t, msg.Validate())
	require.Len(t, msg.PmtInf, 1)
	require.Len(t, msg.PmtInf[0].CdtTrfTxInf, 1)
	assert.NotNil(t, msg.PmtInf[0].CdtTrfTxInf[0].Amt.InstdAmt)
}

func TestSeedIsDeterministic(t *testing.T) {
	a := New(Config{Seed: 42}).Pacs008()
	b := New(Config{Seed: 42}).Pacs008()

	assert.Equal(t, a.GrpHdr.MsgId, b.GrpHdr.MsgId)
	assert.Equal(t, a.CdtTrfTxInf[0].IntrBkSttlmAmt.Value, b.CdtTrfTxInf[0].IntrBkSttlmAmt.Value)
	assert.Equal(t, a.CdtTrfTxInf[0].Dbtr.Nm, b.CdtTrfTxInf[0].Dbtr.Nm)
}

func TestPinsOverrideGeneratedValues(t *testing.T) {
	g := New(Config{
		Seed: 7,
		Pins: map[string]string{
			"GrpHdr.MsgId":   "MSG-2024-0001",
			"Ccy":            "EUR",
			"IntrBkSttlmAmt": "12500.00",
			"Dbtr.Nm":        "Acme Industries",
			"DbtrAcct.IBAN":  "DE44500105175407324931",
		},
	})
	msg := g.Pacs008()

	require.NoError(t, msg.Validate())
	tx := msg.CdtTrfTxInf[0]
	assert.EqualValues(t, "MSG-2024-0001", msg.GrpHdr.MsgId)
	assert.EqualValues(t, "EUR", tx.IntrBkSttlmAmt.Ccy)
	assert.Equal(t, "12500.00", tx.IntrBkSttlmAmt.Value)
	assert.EqualValues(t, "Acme Industries", *tx.Dbtr.Nm)
	assert.EqualValues(t, "DE44500105175407324931", *tx.DbtrAcct.Id.IBAN)
}

func TestDocumentWrapsGeneratedMessage(t *testing.T) {
	g := New(Config{Seed: 3})

	doc, err := g.Document(iso20022.Pain001)
	require.NoError(t, err)
	require.NoError(t, doc.Validate())

	tp, ok := doc.Type()
	require.True(t, ok)
	assert.Equal(t, iso20022.Pain001, tp)
	assert.Equal(t, iso20022.Pain001.Namespace(), doc.Xmlns)
}

func TestDocumentUnsupportedType(t *testing.T) {
	_, err := New(Config{Seed: 3}).Document(iso20022.Admi002)
	require.ErrorContains(t, err, "no generator")
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gen.yaml")
	raw := "seed: 99\npins:\n  GrpHdr.MsgId: MSG-FILE-01\n  Ccy: GBP\n"
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(99), cfg.Seed)
	assert.Equal(t, "MSG-FILE-01", cfg.Pins["GrpHdr.MsgId"])

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
