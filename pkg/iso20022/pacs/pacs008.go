// Package pacs implements the payments clearing and settlement message
// definitions.
package pacs

import (
	"github.com/Open-Payments/messages-sub014/pkg/iso20022/common"
	"github.com/Open-Payments/messages-sub014/pkg/schema"
)

// FIToFICustomerCreditTransferV08 is the pacs.008.001.08 message: an
// interbank customer credit transfer.
type FIToFICustomerCreditTransferV08 struct {
	GrpHdr      GroupHeader93                 `xml:"GrpHdr" json:"GrpHdr"`
	CdtTrfTxInf []CreditTransferTransaction39 `xml:"CdtTrfTxInf" json:"CdtTrfTxInf"`
	SplmtryData []common.SupplementaryData1   `xml:"SplmtryData,omitempty" json:"SplmtryData,omitempty"`
}

func (m FIToFICustomerCreditTransferV08) Validate() error {
	var vs schema.Violations
	schema.Required(&vs, "GrpHdr", m.GrpHdr)
	schema.Each(&vs, "CdtTrfTxInf", m.CdtTrfTxInf)
	schema.Each(&vs, "SplmtryData", m.SplmtryData)
	return vs.OrNil()
}

type GroupHeader93 struct {
	MsgId             common.Max35Text                                     `xml:"MsgId" json:"MsgId"`
	CreDtTm           common.ISODateTime                                   `xml:"CreDtTm" json:"CreDtTm"`
	BtchBookg         *common.BatchBookingIndicator                        `xml:"BtchBookg,omitempty" json:"BtchBookg,omitempty"`
	NbOfTxs           common.Max15NumericText                              `xml:"NbOfTxs" json:"NbOfTxs"`
	CtrlSum           *common.DecimalNumber                                `xml:"CtrlSum,omitempty" json:"CtrlSum,omitempty"`
	TtlIntrBkSttlmAmt *common.ActiveCurrencyAndAmount                      `xml:"TtlIntrBkSttlmAmt,omitempty" json:"TtlIntrBkSttlmAmt,omitempty"`
	IntrBkSttlmDt     *common.ISODate                                      `xml:"IntrBkSttlmDt,omitempty" json:"IntrBkSttlmDt,omitempty"`
	SttlmInf          SettlementInstruction7                               `xml:"SttlmInf" json:"SttlmInf"`
	PmtTpInf          *PaymentTypeInformation28                            `xml:"PmtTpInf,omitempty" json:"PmtTpInf,omitempty"`
	InstgAgt          *common.BranchAndFinancialInstitutionIdentification6 `xml:"InstgAgt,omitempty" json:"InstgAgt,omitempty"`
	InstdAgt          *common.BranchAndFinancialInstitutionIdentification6 `xml:"InstdAgt,omitempty" json:"InstdAgt,omitempty"`
}

func (h GroupHeader93) Validate() error {
	var vs schema.Violations
	schema.Required(&vs, "MsgId", h.MsgId)
	schema.Required(&vs, "CreDtTm", h.CreDtTm)
	schema.Optional(&vs, "BtchBookg", h.BtchBookg)
	schema.Required(&vs, "NbOfTxs", h.NbOfTxs)
	schema.Optional(&vs, "CtrlSum", h.CtrlSum)
	schema.Optional(&vs, "TtlIntrBkSttlmAmt", h.TtlIntrBkSttlmAmt)
	schema.Optional(&vs, "IntrBkSttlmDt", h.IntrBkSttlmDt)
	schema.Required(&vs, "SttlmInf", h.SttlmInf)
	schema.Optional(&vs, "PmtTpInf", h.PmtTpInf)
	schema.Optional(&vs, "InstgAgt", h.InstgAgt)
	schema.Optional(&vs, "InstdAgt", h.InstdAgt)
	return vs.OrNil()
}

type SettlementMethod1Code string

const (
	SettlementInstructedAgent  SettlementMethod1Code = "INDA"
	SettlementInstructingAgent SettlementMethod1Code = "INGA"
	SettlementCover            SettlementMethod1Code = "COVE"
	SettlementClearing         SettlementMethod1Code = "CLRG"
)

var settlementMethodCodes = schema.MustEnum("INDA", "INGA", "COVE", "CLRG")

func (c SettlementMethod1Code) Validate() error { return settlementMethodCodes.Check(string(c)) }

type ClearingSystemIdentification3Choice struct {
	Cd    *ExternalCashClearingSystem1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *common.Max35Text                `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c ClearingSystemIdentification3Choice) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "Cd", c.Cd)
	schema.Optional(&vs, "Prtry", c.Prtry)
	return vs.OrNil()
}

type ExternalCashClearingSystem1Code string

func (c ExternalCashClearingSystem1Code) Validate() error { return schema.Text(string(c), 1, 3) }

type SettlementInstruction7 struct {
	SttlmMtd             SettlementMethod1Code                                `xml:"SttlmMtd" json:"SttlmMtd"`
	SttlmAcct            *common.CashAccount38                                `xml:"SttlmAcct,omitempty" json:"SttlmAcct,omitempty"`
	ClrSys               *ClearingSystemIdentification3Choice                 `xml:"ClrSys,omitempty" json:"ClrSys,omitempty"`
	InstgRmbrsmntAgt     *common.BranchAndFinancialInstitutionIdentification6 `xml:"InstgRmbrsmntAgt,omitempty" json:"InstgRmbrsmntAgt,omitempty"`
	InstgRmbrsmntAgtAcct *common.CashAccount38                                `xml:"InstgRmbrsmntAgtAcct,omitempty" json:"InstgRmbrsmntAgtAcct,omitempty"`
	InstdRmbrsmntAgt     *common.BranchAndFinancialInstitutionIdentification6 `xml:"InstdRmbrsmntAgt,omitempty" json:"InstdRmbrsmntAgt,omitempty"`
	InstdRmbrsmntAgtAcct *common.CashAccount38                                `xml:"InstdRmbrsmntAgtAcct,omitempty" json:"InstdRmbrsmntAgtAcct,omitempty"`
	ThrdRmbrsmntAgt      *common.BranchAndFinancialInstitutionIdentification6 `xml:"ThrdRmbrsmntAgt,omitempty" json:"ThrdRmbrsmntAgt,omitempty"`
	ThrdRmbrsmntAgtAcct  *common.CashAccount38                                `xml:"ThrdRmbrsmntAgtAcct,omitempty" json:"ThrdRmbrsmntAgtAcct,omitempty"`
}

func (s SettlementInstruction7) Validate() error {
	var vs schema.Violations
	schema.Required(&vs, "SttlmMtd", s.SttlmMtd)
	schema.Optional(&vs, "SttlmAcct", s.SttlmAcct)
	schema.Optional(&vs, "ClrSys", s.ClrSys)
	schema.Optional(&vs, "InstgRmbrsmntAgt", s.InstgRmbrsmntAgt)
	schema.Optional(&vs, "InstgRmbrsmntAgtAcct", s.InstgRmbrsmntAgtAcct)
	schema.Optional(&vs, "InstdRmbrsmntAgt", s.InstdRmbrsmntAgt)
	schema.Optional(&vs, "InstdRmbrsmntAgtAcct", s.InstdRmbrsmntAgtAcct)
	schema.Optional(&vs, "ThrdRmbrsmntAgt", s.ThrdRmbrsmntAgt)
	schema.Optional(&vs, "ThrdRmbrsmntAgtAcct", s.ThrdRmbrsmntAgtAcct)
	return vs.OrNil()
}

type PaymentTypeInformation28 struct {
	InstrPrty *common.Priority2Code         `xml:"InstrPrty,omitempty" json:"InstrPrty,omitempty"`
	ClrChanl  *common.ClearingChannel2Code  `xml:"ClrChanl,omitempty" json:"ClrChanl,omitempty"`
	SvcLvl    []common.ServiceLevel8Choice  `xml:"SvcLvl,omitempty" json:"SvcLvl,omitempty"`
	LclInstrm *common.LocalInstrument2Choice `xml:"LclInstrm,omitempty" json:"LclInstrm,omitempty"`
	CtgyPurp  *common.CategoryPurpose1Choice `xml:"CtgyPurp,omitempty" json:"CtgyPurp,omitempty"`
}

func (p PaymentTypeInformation28) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "InstrPrty", p.InstrPrty)
	schema.Optional(&vs, "ClrChanl", p.ClrChanl)
	schema.Each(&vs, "SvcLvl", p.SvcLvl)
	schema.Optional(&vs, "LclInstrm", p.LclInstrm)
	schema.Optional(&vs, "CtgyPurp", p.CtgyPurp)
	return vs.OrNil()
}

type PaymentIdentification7 struct {
	InstrId    *common.Max35Text        `xml:"InstrId,omitempty" json:"InstrId,omitempty"`
	EndToEndId common.Max35Text         `xml:"EndToEndId" json:"EndToEndId"`
	TxId       *common.Max35Text        `xml:"TxId,omitempty" json:"TxId,omitempty"`
	UETR       *common.UUIDv4Identifier `xml:"UETR,omitempty" json:"UETR,omitempty"`
	ClrSysRef  *common.Max35Text        `xml:"ClrSysRef,omitempty" json:"ClrSysRef,omitempty"`
}

func (p PaymentIdentification7) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "InstrId", p.InstrId)
	schema.Required(&vs, "EndToEndId", p.EndToEndId)
	schema.Optional(&vs, "TxId", p.TxId)
	schema.Optional(&vs, "UETR", p.UETR)
	schema.Optional(&vs, "ClrSysRef", p.ClrSysRef)
	return vs.OrNil()
}

type SettlementDateTimeIndication1 struct {
	DbtDtTm *common.ISODateTime `xml:"DbtDtTm,omitempty" json:"DbtDtTm,omitempty"`
	CdtDtTm *common.ISODateTime `xml:"CdtDtTm,omitempty" json:"CdtDtTm,omitempty"`
}

func (s SettlementDateTimeIndication1) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "DbtDtTm", s.DbtDtTm)
	schema.Optional(&vs, "CdtDtTm", s.CdtDtTm)
	return vs.OrNil()
}

type SettlementTimeRequest2 struct {
	CLSTm  *common.ISOTime `xml:"CLSTm,omitempty" json:"CLSTm,omitempty"`
	TillTm *common.ISOTime `xml:"TillTm,omitempty" json:"TillTm,omitempty"`
	FrTm   *common.ISOTime `xml:"FrTm,omitempty" json:"FrTm,omitempty"`
	RjctTm *common.ISOTime `xml:"RjctTm,omitempty" json:"RjctTm,omitempty"`
}

func (s SettlementTimeRequest2) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "CLSTm", s.CLSTm)
	schema.Optional(&vs, "TillTm", s.TillTm)
	schema.Optional(&vs, "FrTm", s.FrTm)
	schema.Optional(&vs, "RjctTm", s.RjctTm)
	return vs.OrNil()
}

type Charges7 struct {
	Amt common.ActiveOrHistoricCurrencyAndAmount            `xml:"Amt" json:"Amt"`
	Agt common.BranchAndFinancialInstitutionIdentification6 `xml:"Agt" json:"Agt"`
}

func (c Charges7) Validate() error {
	var vs schema.Violations
	schema.Required(&vs, "Amt", c.Amt)
	schema.Required(&vs, "Agt", c.Agt)
	return vs.OrNil()
}

type Instruction3Code string

const (
	InstructionPayCreditorByCheque Instruction3Code = "CHQB"
	InstructionHoldForCreditor     Instruction3Code = "HOLD"
	InstructionPhoneBeneficiary    Instruction3Code = "PHOB"
	InstructionTelecomBeneficiary  Instruction3Code = "TELB"
)

var instruction3Codes = schema.MustEnum("CHQB", "HOLD", "PHOB", "TELB")

func (c Instruction3Code) Validate() error { return instruction3Codes.Check(string(c)) }

type Instruction4Code string

const (
	InstructionPhoneNextAgent   Instruction4Code = "PHOA"
	InstructionTelecomNextAgent Instruction4Code = "TELA"
)

var instruction4Codes = schema.MustEnum("PHOA", "TELA")

func (c Instruction4Code) Validate() error { return instruction4Codes.Check(string(c)) }

type InstructionForCreditorAgent1 struct {
	Cd       *Instruction3Code  `xml:"Cd,omitempty" json:"Cd,omitempty"`
	InstrInf *common.Max140Text `xml:"InstrInf,omitempty" json:"InstrInf,omitempty"`
}

func (i InstructionForCreditorAgent1) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "Cd", i.Cd)
	schema.Optional(&vs, "InstrInf", i.InstrInf)
	return vs.OrNil()
}

type InstructionForNextAgent1 struct {
	Cd       *Instruction4Code  `xml:"Cd,omitempty" json:"Cd,omitempty"`
	InstrInf *common.Max140Text `xml:"InstrInf,omitempty" json:"InstrInf,omitempty"`
}

func (i InstructionForNextAgent1) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "Cd", i.Cd)
	schema.Optional(&vs, "InstrInf", i.InstrInf)
	return vs.OrNil()
}

type DocumentType3Code string

const (
	DocumentRemittanceAdvice       DocumentType3Code = "RADM"
	DocumentRelatedPayment         DocumentType3Code = "RPIN"
	DocumentForeignExchangeRelated DocumentType3Code = "FXDR"
	DocumentDispute                DocumentType3Code = "DISP"
	DocumentPurchaseOrder          DocumentType3Code = "PUOR"
	DocumentStructuredComm         DocumentType3Code = "SCOR"
)

var documentType3Codes = schema.MustEnum("RADM", "RPIN", "FXDR", "DISP", "PUOR", "SCOR")

func (c DocumentType3Code) Validate() error { return documentType3Codes.Check(string(c)) }

type CreditorReferenceType1Choice struct {
	Cd    *DocumentType3Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *common.Max35Text  `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c CreditorReferenceType1Choice) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "Cd", c.Cd)
	schema.Optional(&vs, "Prtry", c.Prtry)
	return vs.OrNil()
}

type CreditorReferenceType2 struct {
	CdOrPrtry CreditorReferenceType1Choice `xml:"CdOrPrtry" json:"CdOrPrtry"`
	Issr      *common.Max35Text            `xml:"Issr,omitempty" json:"Issr,omitempty"`
}

func (c CreditorReferenceType2) Validate() error {
	var vs schema.Violations
	schema.Required(&vs, "CdOrPrtry", c.CdOrPrtry)
	schema.Optional(&vs, "Issr", c.Issr)
	return vs.OrNil()
}

type CreditorReferenceInformation2 struct {
	Tp  *CreditorReferenceType2 `xml:"Tp,omitempty" json:"Tp,omitempty"`
	Ref *common.Max35Text       `xml:"Ref,omitempty" json:"Ref,omitempty"`
}

func (c CreditorReferenceInformation2) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "Tp", c.Tp)
	schema.Optional(&vs, "Ref", c.Ref)
	return vs.OrNil()
}

type StructuredRemittanceInformation16 struct {
	CdtrRefInf   *CreditorReferenceInformation2 `xml:"CdtrRefInf,omitempty" json:"CdtrRefInf,omitempty"`
	AddtlRmtInf  []common.Max140Text            `xml:"AddtlRmtInf,omitempty" json:"AddtlRmtInf,omitempty"`
}

func (s StructuredRemittanceInformation16) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "CdtrRefInf", s.CdtrRefInf)
	schema.Each(&vs, "AddtlRmtInf", s.AddtlRmtInf)
	return vs.OrNil()
}

type RemittanceInformation16 struct {
	Ustrd []common.Max140Text                 `xml:"Ustrd,omitempty" json:"Ustrd,omitempty"`
	Strd  []StructuredRemittanceInformation16 `xml:"Strd,omitempty" json:"Strd,omitempty"`
}

func (r RemittanceInformation16) Validate() error {
	var vs schema.Violations
	schema.Each(&vs, "Ustrd", r.Ustrd)
	schema.Each(&vs, "Strd", r.Strd)
	return vs.OrNil()
}

type CreditTransferTransaction39 struct {
	PmtId           PaymentIdentification7                               `xml:"PmtId" json:"PmtId"`
	PmtTpInf        *PaymentTypeInformation28                            `xml:"PmtTpInf,omitempty" json:"PmtTpInf,omitempty"`
	IntrBkSttlmAmt  common.ActiveCurrencyAndAmount                       `xml:"IntrBkSttlmAmt" json:"IntrBkSttlmAmt"`
	IntrBkSttlmDt   *common.ISODate                                      `xml:"IntrBkSttlmDt,omitempty" json:"IntrBkSttlmDt,omitempty"`
	SttlmPrty       *common.Priority3Code                                `xml:"SttlmPrty,omitempty" json:"SttlmPrty,omitempty"`
	SttlmTmIndctn   *SettlementDateTimeIndication1                       `xml:"SttlmTmIndctn,omitempty" json:"SttlmTmIndctn,omitempty"`
	SttlmTmReq      *SettlementTimeRequest2                              `xml:"SttlmTmReq,omitempty" json:"SttlmTmReq,omitempty"`
	AccptncDtTm     *common.ISODateTime                                  `xml:"AccptncDtTm,omitempty" json:"AccptncDtTm,omitempty"`
	PoolgAdjstmntDt *common.ISODate                                      `xml:"PoolgAdjstmntDt,omitempty" json:"PoolgAdjstmntDt,omitempty"`
	InstdAmt        *common.ActiveOrHistoricCurrencyAndAmount            `xml:"InstdAmt,omitempty" json:"InstdAmt,omitempty"`
	XchgRate        *common.BaseOneRate                                  `xml:"XchgRate,omitempty" json:"XchgRate,omitempty"`
	ChrgBr          common.ChargeBearerType1Code                         `xml:"ChrgBr" json:"ChrgBr"`
	ChrgsInf        []Charges7                                           `xml:"ChrgsInf,omitempty" json:"ChrgsInf,omitempty"`
	IntrmyAgt1      *common.BranchAndFinancialInstitutionIdentification6 `xml:"IntrmyAgt1,omitempty" json:"IntrmyAgt1,omitempty"`
	IntrmyAgt1Acct  *common.CashAccount38                                `xml:"IntrmyAgt1Acct,omitempty" json:"IntrmyAgt1Acct,omitempty"`
	UltmtDbtr       *common.PartyIdentification135                       `xml:"UltmtDbtr,omitempty" json:"UltmtDbtr,omitempty"`
	InitgPty        *common.PartyIdentification135                       `xml:"InitgPty,omitempty" json:"InitgPty,omitempty"`
	Dbtr            common.PartyIdentification135                        `xml:"Dbtr" json:"Dbtr"`
	DbtrAcct        *common.CashAccount38                                `xml:"DbtrAcct,omitempty" json:"DbtrAcct,omitempty"`
	DbtrAgt         common.BranchAndFinancialInstitutionIdentification6  `xml:"DbtrAgt" json:"DbtrAgt"`
	DbtrAgtAcct     *common.CashAccount38                                `xml:"DbtrAgtAcct,omitempty" json:"DbtrAgtAcct,omitempty"`
	CdtrAgt         common.BranchAndFinancialInstitutionIdentification6  `xml:"CdtrAgt" json:"CdtrAgt"`
	CdtrAgtAcct     *common.CashAccount38                                `xml:"CdtrAgtAcct,omitempty" json:"CdtrAgtAcct,omitempty"`
	Cdtr            common.PartyIdentification135                        `xml:"Cdtr" json:"Cdtr"`
	CdtrAcct        *common.CashAccount38                                `xml:"CdtrAcct,omitempty" json:"CdtrAcct,omitempty"`
	UltmtCdtr       *common.PartyIdentification135                       `xml:"UltmtCdtr,omitempty" json:"UltmtCdtr,omitempty"`
	InstrForCdtrAgt []InstructionForCreditorAgent1                       `xml:"InstrForCdtrAgt,omitempty" json:"InstrForCdtrAgt,omitempty"`
	InstrForNxtAgt  []InstructionForNextAgent1                           `xml:"InstrForNxtAgt,omitempty" json:"InstrForNxtAgt,omitempty"`
	Purp            *common.Purpose2Choice                               `xml:"Purp,omitempty" json:"Purp,omitempty"`
	RmtInf          *RemittanceInformation16                             `xml:"RmtInf,omitempty" json:"RmtInf,omitempty"`
	SplmtryData     []common.SupplementaryData1                          `xml:"SplmtryData,omitempty" json:"SplmtryData,omitempty"`
}

func (t CreditTransferTransaction39) Validate() error {
	var vs schema.Violations
	schema.Required(&vs, "PmtId", t.PmtId)
	schema.Optional(&vs, "PmtTpInf", t.PmtTpInf)
	schema.Required(&vs, "IntrBkSttlmAmt", t.IntrBkSttlmAmt)
	schema.Optional(&vs, "IntrBkSttlmDt", t.IntrBkSttlmDt)
	schema.Optional(&vs, "SttlmPrty", t.SttlmPrty)
	schema.Optional(&vs, "SttlmTmIndctn", t.SttlmTmIndctn)
	schema.Optional(&vs, "SttlmTmReq", t.SttlmTmReq)
	schema.Optional(&vs, "AccptncDtTm", t.AccptncDtTm)
	schema.Optional(&vs, "PoolgAdjstmntDt", t.PoolgAdjstmntDt)
	schema.Optional(&vs, "InstdAmt", t.InstdAmt)
	schema.Optional(&vs, "XchgRate", t.XchgRate)
	schema.Required(&vs, "ChrgBr", t.ChrgBr)
	schema.Each(&vs, "ChrgsInf", t.ChrgsInf)
	schema.Optional(&vs, "IntrmyAgt1", t.IntrmyAgt1)
	schema.Optional(&vs, "IntrmyAgt1Acct", t.IntrmyAgt1Acct)
	schema.Optional(&vs, "UltmtDbtr", t.UltmtDbtr)
	schema.Optional(&vs, "InitgPty", t.InitgPty)
	schema.Required(&vs, "Dbtr", t.Dbtr)
	schema.Optional(&vs, "DbtrAcct", t.DbtrAcct)
	schema.Required(&vs, "DbtrAgt", t.DbtrAgt)
	schema.Optional(&vs, "DbtrAgtAcct", t.DbtrAgtAcct)
	schema.Required(&vs, "CdtrAgt", t.CdtrAgt)
	schema.Optional(&vs, "CdtrAgtAcct", t.CdtrAgtAcct)
	schema.Required(&vs, "Cdtr", t.Cdtr)
	schema.Optional(&vs, "CdtrAcct", t.CdtrAcct)
	schema.Optional(&vs, "UltmtCdtr", t.UltmtCdtr)
	schema.Each(&vs, "InstrForCdtrAgt", t.InstrForCdtrAgt)
	schema.Each(&vs, "InstrForNxtAgt", t.InstrForNxtAgt)
	schema.Optional(&vs, "Purp", t.Purp)
	schema.Optional(&vs, "RmtInf", t.RmtInf)
	schema.Each(&vs, "SplmtryData", t.SplmtryData)
	return vs.OrNil()
}
