package report

// BudgetData is the complete result of the budget analysis.
//
// Rankings always carry the full ordered sequence; slicing to a "top N" is a
// presentation decision. Departments without employees are excluded from the
// per-employee ranking and departments without an allocated budget are
// excluded from the utilization ranking, so neither list divides by zero.
type BudgetData struct {
	// Report contains the common report header fields.
	Report ReportHeader `yaml:"report" json:"report"`

	// TotalBudget is the sum of all departments' allocated budgets.
	TotalBudget float64 `yaml:"total_budget" json:"total_budget"`

	// Allocation ranks every department by allocated budget, descending.
	Allocation []DepartmentAmount `yaml:"allocation" json:"allocation"`

	// PerEmployee ranks departments by allocated budget per employee,
	// descending. Departments with zero employees are excluded.
	PerEmployee []BudgetPerEmployee `yaml:"per_employee" json:"per_employee"`

	// HighestPerEmployee and LowestPerEmployee are the extremes of the
	// PerEmployee ranking. Nil when no department is eligible. Ties
	// resolve to the department that appears first in the dataset.
	HighestPerEmployee *BudgetPerEmployee `yaml:"highest_per_employee,omitempty" json:"highest_per_employee,omitempty"`
	LowestPerEmployee  *BudgetPerEmployee `yaml:"lowest_per_employee,omitempty" json:"lowest_per_employee,omitempty"`

	// Utilization ranks departments by spent/allocated rate, descending.
	// Departments with zero allocated budget are excluded. Rates above
	// 100 are valid data.
	Utilization []BudgetUtilization `yaml:"utilization" json:"utilization"`

	// MeanUtilization is the arithmetic mean of the utilization rates,
	// zero when no department is eligible.
	MeanUtilization float64 `yaml:"mean_utilization" json:"mean_utilization"`
}

// BudgetPerEmployee is one department's budget-per-employee figure.
type BudgetPerEmployee struct {
	DepartmentID  string  `yaml:"department_id" json:"department_id"`
	Name          string  `yaml:"name" json:"name"`
	Budget        float64 `yaml:"budget" json:"budget"`
	EmployeeCount int     `yaml:"employee_count" json:"employee_count"`
	PerEmployee   float64 `yaml:"per_employee" json:"per_employee"`
}

// BudgetUtilization is one department's budget utilization rate.
type BudgetUtilization struct {
	DepartmentID string  `yaml:"department_id" json:"department_id"`
	Name         string  `yaml:"name" json:"name"`
	Allocated    float64 `yaml:"allocated" json:"allocated"`
	Spent        float64 `yaml:"spent" json:"spent"`
	Rate         float64 `yaml:"rate" json:"rate"`
}

// NewBudgetData creates a BudgetData with an initialized header and empty
// rankings.
func NewBudgetData() *BudgetData {
	return &BudgetData{
		Report:      newHeader(KindBudget),
		Allocation:  []DepartmentAmount{},
		PerEmployee: []BudgetPerEmployee{},
		Utilization: []BudgetUtilization{},
	}
}

// ResultKind implements Result.
func (b *BudgetData) ResultKind() Kind { return KindBudget }
