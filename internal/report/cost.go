package report

// CostData is the complete result of the cost optimization analysis.
type CostData struct {
	// Report contains the common report header fields.
	Report ReportHeader `yaml:"report" json:"report"`

	// TotalPurchaseCost is the sum of all equipment purchase costs.
	TotalPurchaseCost float64 `yaml:"total_purchase_cost" json:"total_purchase_cost"`

	// TotalMonthlyUpkeep and TotalAnnualUpkeep are the summed maintenance
	// costs, monthly and annualized (monthly x 12).
	TotalMonthlyUpkeep float64 `yaml:"total_monthly_upkeep" json:"total_monthly_upkeep"`
	TotalAnnualUpkeep  float64 `yaml:"total_annual_upkeep" json:"total_annual_upkeep"`

	// MaintenanceRatio is total annual maintenance as a percentage of
	// total purchase cost, zero when nothing was purchased.
	MaintenanceRatio float64 `yaml:"maintenance_ratio" json:"maintenance_ratio"`

	// Departments ranks departments by monthly maintenance cost,
	// descending. Departments without equipment are absent.
	Departments []DepartmentAmount `yaml:"departments" json:"departments"`

	// TopSpender is the first entry of the ranking, nil when the company
	// has no equipment.
	TopSpender *DepartmentAmount `yaml:"top_spender,omitempty" json:"top_spender,omitempty"`

	// MostExpensive is the single equipment item with the highest monthly
	// maintenance cost, nil when the company has no equipment.
	MostExpensive *EquipmentCost `yaml:"most_expensive,omitempty" json:"most_expensive,omitempty"`

	// Recommendations is the deterministic rule output derived from the
	// figures above. Same metrics in, same text out.
	Recommendations []string `yaml:"recommendations" json:"recommendations"`
}

// EquipmentCost is one equipment item with its maintenance figures.
type EquipmentCost struct {
	EquipmentID    string  `yaml:"equipment_id" json:"equipment_id"`
	Name           string  `yaml:"name" json:"name"`
	Type           string  `yaml:"type" json:"type"`
	DepartmentID   string  `yaml:"department_id" json:"department_id"`
	DepartmentName string  `yaml:"department_name" json:"department_name"`
	MonthlyUpkeep  float64 `yaml:"monthly_upkeep" json:"monthly_upkeep"`
	AnnualUpkeep   float64 `yaml:"annual_upkeep" json:"annual_upkeep"`
}

// NewCostData creates a CostData with an initialized header and empty
// rankings.
func NewCostData() *CostData {
	return &CostData{
		Report:          newHeader(KindCost),
		Departments:     []DepartmentAmount{},
		Recommendations: []string{},
	}
}

// ResultKind implements Result.
func (c *CostData) ResultKind() Kind { return KindCost }
