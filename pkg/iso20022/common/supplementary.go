package common

import (
	"github.com/Open-Payments/messages-sub014/pkg/schema"
)

// SupplementaryDataEnvelope1 carries schema-external content. The inner
// XML is preserved verbatim and not validated.
type SupplementaryDataEnvelope1 struct {
	Content string `xml:",innerxml" json:"Content,omitempty"`
}

func (SupplementaryDataEnvelope1) Validate() error { return nil }

type SupplementaryData1 struct {
	PlcAndNm *Max350Text                `xml:"PlcAndNm,omitempty" json:"PlcAndNm,omitempty"`
	Envlp    SupplementaryDataEnvelope1 `xml:"Envlp" json:"Envlp"`
}

func (s SupplementaryData1) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "PlcAndNm", s.PlcAndNm)
	schema.Required(&vs, "Envlp", s.Envlp)
	return vs.OrNil()
}

type MessageIdentification1 struct {
	Id      Max35Text   `xml:"Id" json:"Id"`
	CreDtTm ISODateTime `xml:"CreDtTm" json:"CreDtTm"`
}

func (m MessageIdentification1) Validate() error {
	var vs schema.Violations
	schema.Required(&vs, "Id", m.Id)
	schema.Required(&vs, "CreDtTm", m.CreDtTm)
	return vs.OrNil()
}

type GenericIdentification1 struct {
	Id      Max35Text  `xml:"Id" json:"Id"`
	SchmeNm *Max35Text `xml:"SchmeNm,omitempty" json:"SchmeNm,omitempty"`
	Issr    *Max35Text `xml:"Issr,omitempty" json:"Issr,omitempty"`
}

func (g GenericIdentification1) Validate() error {
	var vs schema.Violations
	schema.Required(&vs, "Id", g.Id)
	schema.Optional(&vs, "SchmeNm", g.SchmeNm)
	schema.Optional(&vs, "Issr", g.Issr)
	return vs.OrNil()
}
