// Package auth implements the authorities reporting message definitions.
package auth

import (
	"github.com/Open-Payments/messages-sub014/pkg/iso20022/common"
	"github.com/Open-Payments/messages-sub014/pkg/schema"
)

// CCPBackTestingDefinitionReportV01 is the auth.065.001.01 message: a
// central counterparty's report of its back-testing methodologies.
type CCPBackTestingDefinitionReportV01 struct {
	Mthdlgy     []BackTestingMethodology1   `xml:"Mthdlgy" json:"Mthdlgy"`
	SplmtryData []common.SupplementaryData1 `xml:"SplmtryData,omitempty" json:"SplmtryData,omitempty"`
}

func (m CCPBackTestingDefinitionReportV01) Validate() error {
	var vs schema.Violations
	schema.Each(&vs, "Mthdlgy", m.Mthdlgy)
	schema.Each(&vs, "SplmtryData", m.SplmtryData)
	return vs.OrNil()
}

type ModelType1Code string

const (
	ModelExpectedShortfall ModelType1Code = "EXPS"
	ModelOther             ModelType1Code = "OTHR"
	ModelOtherRiskAggr     ModelType1Code = "ORIA"
	ModelSPAN              ModelType1Code = "SPAN"
	ModelValueAtRisk       ModelType1Code = "VARI"
	ModelSimulation        ModelType1Code = "SAMO"
)

var modelTypeCodes = schema.MustEnum("EXPS", "OTHR", "ORIA", "SPAN", "VARI", "SAMO")

func (c ModelType1Code) Validate() error { return modelTypeCodes.Check(string(c)) }

type ModelType1Choice struct {
	Cd    *ModelType1Code                 `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *common.GenericIdentification36 `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c ModelType1Choice) Validate() error {
	var vs schema.Violations
	schema.Optional(&vs, "Cd", c.Cd)
	schema.Optional(&vs, "Prtry", c.Prtry)
	return vs.OrNil()
}

type BackTestingMethodology1 struct {
	RskMdlTp          ModelType1Choice          `xml:"RskMdlTp" json:"RskMdlTp"`
	MdlCnfdncLvl      common.BaseOneRate        `xml:"MdlCnfdncLvl" json:"MdlCnfdncLvl"`
	VartnMrgnCleanInd common.TrueFalseIndicator `xml:"VartnMrgnCleanInd" json:"VartnMrgnCleanInd"`
	Desc              *common.Max2000Text       `xml:"Desc,omitempty" json:"Desc,omitempty"`
}

func (b BackTestingMethodology1) Validate() error {
	var vs schema.Violations
	schema.Required(&vs, "RskMdlTp", b.RskMdlTp)
	schema.Required(&vs, "MdlCnfdncLvl", b.MdlCnfdncLvl)
	schema.Optional(&vs, "Desc", b.Desc)
	return vs.OrNil()
}
