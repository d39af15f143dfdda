package report

// PlanningData is the complete result of the financial planning analysis.
// It is derived from the salary and ROI results plus the equipment
// maintenance totals, which makes planning the only analysis with an
// ordering dependency.
type PlanningData struct {
	// Report contains the common report header fields.
	Report ReportHeader `yaml:"report" json:"report"`

	// FixedCostsAnnual is the annualized salary fund plus the annual
	// equipment maintenance cost.
	FixedCostsAnnual float64 `yaml:"fixed_costs_annual" json:"fixed_costs_annual"`

	// MarginRatio is the assumed profit margin the break-even figure was
	// computed with. It is configuration, echoed here so the result is
	// self-describing.
	MarginRatio float64 `yaml:"margin_ratio" json:"margin_ratio"`

	// BreakEvenRevenue is FixedCostsAnnual / MarginRatio.
	BreakEvenRevenue float64 `yaml:"break_even_revenue" json:"break_even_revenue"`

	// HighROIDepartments lists departments whose ROI exceeds the
	// company-wide ROI, descending by ROI.
	HighROIDepartments []DepartmentROI `yaml:"high_roi_departments" json:"high_roi_departments"`

	// Recommendations is the deterministic rule output derived from the
	// figures above.
	Recommendations []string `yaml:"recommendations" json:"recommendations"`
}

// NewPlanningData creates a PlanningData with an initialized header and
// empty sequences.
func NewPlanningData() *PlanningData {
	return &PlanningData{
		Report:             newHeader(KindPlanning),
		HighROIDepartments: []DepartmentROI{},
		Recommendations:    []string{},
	}
}

// ResultKind implements Result.
func (p *PlanningData) ResultKind() Kind { return KindPlanning }
