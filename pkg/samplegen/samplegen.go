// Package samplegen produces schema-valid sample payment messages for
// testing and demos. Generated values are random but deterministic for a
// given seed, and any field listed in the config pins overrides the
// generated value.
package samplegen

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/Open-Payments/messages-sub014/pkg/iso20022"
	"github.com/Open-Payments/messages-sub014/pkg/iso20022/common"
	"github.com/Open-Payments/messages-sub014/pkg/iso20022/pacs"
	"github.com/Open-Payments/messages-sub014/pkg/iso20022/pain"
)

// Config controls sample generation. Pins maps a field label, e.g.
// "GrpHdr.MsgId" or "Dbtr.Nm", to a fixed value used instead of a
// generated one.
type Config struct {
	Seed uint64            `yaml:"seed"`
	Pins map[string]string `yaml:"pins"`
}

// LoadConfig reads a YAML generation config from path.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("samplegen: read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("samplegen: parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Generator builds sample messages.
type Generator struct {
	faker *gofakeit.Faker
	pins  map[string]string
	now   time.Time
}

func New(cfg Config) *Generator {
	return &Generator{
		faker: gofakeit.New(int64(cfg.Seed)),
		pins:  cfg.Pins,
		now:   time.Now().UTC().Truncate(time.Second),
	}
}

// pin returns the pinned value for key when the config has one,
// otherwise the generated fallback.
func (g *Generator) pin(key, generated string) string {
	if v, ok := g.pins[key]; ok {
		return v
	}
	return generated
}

func (g *Generator) msgID() string {
	return fmt.Sprintf("MSG%s", g.faker.DigitN(12))
}

func (g *Generator) endToEndID() string {
	return fmt.Sprintf("E2E%s", g.faker.DigitN(12))
}

func (g *Generator) bicfi() string {
	return strings.ToUpper(g.faker.LetterN(4)) + g.faker.CountryAbr() + strings.ToUpper(g.faker.LetterN(2))
}

func (g *Generator) iban() string {
	return g.faker.CountryAbr() + g.faker.DigitN(2) + strings.ToUpper(g.faker.LetterN(4)) + g.faker.DigitN(14)
}

func (g *Generator) currency() string {
	return g.faker.RandomString([]string{"EUR", "USD", "GBP", "CHF", "SEK"})
}

func (g *Generator) amount() string {
	return decimal.NewFromFloat(g.faker.Price(10, 250000)).Round(2).String()
}

func (g *Generator) dateTime() common.ISODateTime {
	return common.ISODateTime(g.now.Format("2006-01-02T15:04:05Z"))
}

func (g *Generator) date() common.ISODate {
	return common.ISODate(g.now.Format("2006-01-02"))
}

func (g *Generator) party(role string) common.PartyIdentification135 {
	nm := common.Max140Text(g.pin(role+".Nm", g.faker.Company()))
	ctry := common.CountryCode(g.pin(role+".Ctry", g.faker.CountryAbr()))
	return common.PartyIdentification135{Nm: &nm, CtryOfRes: &ctry}
}

func (g *Generator) agent(role string) common.BranchAndFinancialInstitutionIdentification6 {
	bic := common.BICFIDec2014Identifier(g.pin(role+".BICFI", g.bicfi()))
	return common.BranchAndFinancialInstitutionIdentification6{
		FinInstnId: common.FinancialInstitutionIdentification18{BICFI: &bic},
	}
}

func (g *Generator) account(role string) common.CashAccount38 {
	iban := common.IBAN2007Identifier(g.pin(role+".IBAN", g.iban()))
	return common.CashAccount38{Id: common.AccountIdentification4Choice{IBAN: &iban}}
}

// Pacs008 generates a single-transaction FI to FI customer credit transfer.
func (g *Generator) Pacs008() *pacs.FIToFICustomerCreditTransferV08 {
	ccy := common.ActiveCurrencyCode(g.pin("Ccy", g.currency()))
	amt := g.pin("IntrBkSttlmAmt", g.amount())
	uetr := common.UUIDv4Identifier(uuid.NewString())
	sttlmDt := g.date()
	dbtrAcct := g.account("DbtrAcct")
	cdtrAcct := g.account("CdtrAcct")

	return &pacs.FIToFICustomerCreditTransferV08{
		GrpHdr: pacs.GroupHeader93{
			MsgId:         common.Max35Text(g.pin("GrpHdr.MsgId", g.msgID())),
			CreDtTm:       g.dateTime(),
			NbOfTxs:       "1",
			IntrBkSttlmDt: &sttlmDt,
			SttlmInf:      pacs.SettlementInstruction7{SttlmMtd: pacs.SettlementInstructedAgent},
		},
		CdtTrfTxInf: []pacs.CreditTransferTransaction39{{
			PmtId: pacs.PaymentIdentification7{
				EndToEndId: common.Max35Text(g.pin("PmtId.EndToEndId", g.endToEndID())),
				UETR:       &uetr,
			},
			IntrBkSttlmAmt: common.ActiveCurrencyAndAmount{Ccy: ccy, Value: amt},
			ChrgBr:         common.ChargeBearerShared,
			Dbtr:           g.party("Dbtr"),
			DbtrAcct:       &dbtrAcct,
			DbtrAgt:        g.agent("DbtrAgt"),
			CdtrAgt:        g.agent("CdtrAgt"),
			Cdtr:           g.party("Cdtr"),
			CdtrAcct:       &cdtrAcct,
		}},
	}
}

func (g *Generator) party272(role string) pain.PartyIdentification272 {
	nm := common.Max140Text(g.pin(role+".Nm", g.faker.Company()))
	ctry := common.CountryCode(g.pin(role+".Ctry", g.faker.CountryAbr()))
	return pain.PartyIdentification272{Nm: &nm, CtryOfRes: &ctry}
}

func (g *Generator) agent8(role string) pain.BranchAndFinancialInstitutionIdentification8 {
	bic := common.BICFIDec2014Identifier(g.pin(role+".BICFI", g.bicfi()))
	return pain.BranchAndFinancialInstitutionIdentification8{
		FinInstnId: pain.FinancialInstitutionIdentification23{BICFI: &bic},
	}
}

func (g *Generator) account40(role string) pain.CashAccount40 {
	iban := common.IBAN2007Identifier(g.pin(role+".IBAN", g.iban()))
	return pain.CashAccount40{Id: &common.AccountIdentification4Choice{IBAN: &iban}}
}

// Pain001 generates a customer credit transfer initiation with one
// payment instruction carrying one transaction.
func (g *Generator) Pain001() *pain.CustomerCreditTransferInitiationV12 {
	instdAmt := common.ActiveOrHistoricCurrencyAndAmount{
		Ccy:   common.ActiveOrHistoricCurrencyCode(g.pin("Ccy", g.currency())),
		Value: g.pin("InstdAmt", g.amount()),
	}
	exctnDt := g.date()
	cdtr := g.party272("Cdtr")
	cdtrAgt := g.agent8("CdtrAgt")
	cdtrAcct := g.account40("CdtrAcct")

	return &pain.CustomerCreditTransferInitiationV12{
		GrpHdr: pain.GroupHeader114{
			MsgId:    common.Max35Text(g.pin("GrpHdr.MsgId", g.msgID())),
			CreDtTm:  g.dateTime(),
			NbOfTxs:  "1",
			InitgPty: g.party272("InitgPty"),
		},
		PmtInf: []pain.PaymentInstruction44{{
			PmtInfId:    common.Max35Text(g.pin("PmtInf.PmtInfId", g.msgID())),
			PmtMtd:      pain.PaymentMethodCreditTransfer,
			ReqdExctnDt: common.DateAndDateTime2Choice{Dt: &exctnDt},
			Dbtr:        g.party272("Dbtr"),
			DbtrAcct:    g.account40("DbtrAcct"),
			DbtrAgt:     g.agent8("DbtrAgt"),
			CdtTrfTxInf: []pain.CreditTransferTransaction61{{
				PmtId: pain.PaymentIdentification6{
					EndToEndId: common.Max35Text(g.pin("PmtId.EndToEndId", g.endToEndID())),
				},
				Amt:      common.AmountType4Choice{InstdAmt: &instdAmt},
				Cdtr:     &cdtr,
				CdtrAgt:  &cdtrAgt,
				CdtrAcct: &cdtrAcct,
			}},
		}},
	}
}

// Document generates a sample message of the given type wrapped in a
// namespaced document. Only the payment message types have generators.
func (g *Generator) Document(t iso20022.MessageType) (iso20022.Document, error) {
	switch t {
	case iso20022.Pacs008:
		return iso20022.NewDocument(g.Pacs008())
	case iso20022.Pain001:
		return iso20022.NewDocument(g.Pain001())
	default:
		return iso20022.Document{}, fmt.Errorf("samplegen: no generator for message type %q", t)
	}
}
