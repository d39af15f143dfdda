// Package dataset defines the typed in-memory company snapshot and its loader.
// A snapshot is loaded once from a JSON file and is immutable afterwards;
// analyzers only read from it.
package dataset

// Metadata describes the snapshot itself rather than any single record.
type Metadata struct {
	CompanyName string `json:"company_name" yaml:"company_name"`
	Currency    string `json:"currency" yaml:"currency"`
	FiscalYear  int    `json:"fiscal_year" yaml:"fiscal_year"`
}

// Department is an organizational unit with an allocated and a spent budget.
// Spent may exceed allocated: utilization above 100% is valid data, not an
// error.
type Department struct {
	ID            string  `json:"id" yaml:"id"`
	Name          string  `json:"name" yaml:"name"`
	Budget        float64 `json:"budget" yaml:"budget"`
	SpentBudget   float64 `json:"spent_budget" yaml:"spent_budget"`
	EmployeeCount int     `json:"employee_count" yaml:"employee_count"`
}

// Employee holds one employee's compensation record. DepartmentID is a weak
// reference used only for grouping.
type Employee struct {
	ID           string  `json:"id" yaml:"id"`
	DepartmentID string  `json:"department_id" yaml:"department_id"`
	Salary       float64 `json:"salary" yaml:"salary"`
}

// Project holds one project's investment and return figures. A project with
// Investment <= 0 has no defined ROI and is excluded from ROI aggregates.
type Project struct {
	ID           string  `json:"id" yaml:"id"`
	DepartmentID string  `json:"department_id" yaml:"department_id"`
	Status       string  `json:"status" yaml:"status"`
	Investment   float64 `json:"investment" yaml:"investment"`
	Return       float64 `json:"return" yaml:"return"`
}

// ProjectStatusCompleted is the status value the source system assigns to
// finished projects.
const ProjectStatusCompleted = "completed"

// Equipment holds one equipment item with purchase and recurring maintenance
// costs. Maintenance is recorded monthly; annual figures are monthly x 12.
type Equipment struct {
	ID            string  `json:"id" yaml:"id"`
	Name          string  `json:"name" yaml:"name"`
	Type          string  `json:"type" yaml:"type"`
	DepartmentID  string  `json:"department_id" yaml:"department_id"`
	PurchaseCost  float64 `json:"purchase_cost" yaml:"purchase_cost"`
	MonthlyUpkeep float64 `json:"maintenance_cost_per_month" yaml:"maintenance_cost_per_month"`
}

// AnnualUpkeep returns the annualized maintenance cost for the item.
func (e Equipment) AnnualUpkeep() float64 {
	return e.MonthlyUpkeep * 12
}

// KpiMetric is an auxiliary per-department measurement. Current analyzers
// carry these as context only; no aggregate depends on them.
type KpiMetric struct {
	DepartmentID string  `json:"department_id" yaml:"department_id"`
	Name         string  `json:"metric" yaml:"metric"`
	Value        float64 `json:"value" yaml:"value"`
}

// LoadStats records what the loader kept and what it had to exclude.
// Records are excluded when a numeric field is unusable (negative or missing
// salary, for example) or when their department reference does not resolve.
type LoadStats struct {
	Departments        int `yaml:"departments" json:"departments"`
	Employees          int `yaml:"employees" json:"employees"`
	Projects           int `yaml:"projects" json:"projects"`
	Equipment          int `yaml:"equipment" json:"equipment"`
	KpiMetrics         int `yaml:"kpi_metrics" json:"kpi_metrics"`
	DanglingReferences int `yaml:"dangling_references" json:"dangling_references"`
	SkippedRecords     int `yaml:"skipped_records" json:"skipped_records"`
}

// Snapshot is the complete immutable dataset handed to analyzers.
// Departments preserve input order; all tie-breaks in analyzers rely on that
// order being stable. The byID index is built once at load time so that
// employee/project/equipment department references resolve in O(1).
type Snapshot struct {
	Metadata   Metadata
	Department []Department
	Employees  []Employee
	Projects   []Project
	Equipment  []Equipment
	KpiMetrics []KpiMetric

	Stats LoadStats

	byID map[string]int
}

// NewSnapshot builds a snapshot directly from in-memory records, indexing
// departments by ID. Records are taken as-is; callers that need reference
// resolution and record skipping should go through Load instead.
func NewSnapshot(meta Metadata, departments []Department, employees []Employee, projects []Project, equipment []Equipment, kpis []KpiMetric) *Snapshot {
	s := &Snapshot{
		Metadata:   meta,
		Department: departments,
		Employees:  employees,
		Projects:   projects,
		Equipment:  equipment,
		KpiMetrics: kpis,
		Stats: LoadStats{
			Departments: len(departments),
			Employees:   len(employees),
			Projects:    len(projects),
			Equipment:   len(equipment),
			KpiMetrics:  len(kpis),
		},
	}
	s.reindex()
	return s
}

// DepartmentByID returns the department for id and whether it exists.
func (s *Snapshot) DepartmentByID(id string) (Department, bool) {
	idx, ok := s.byID[id]
	if !ok {
		return Department{}, false
	}
	return s.Department[idx], true
}

// DepartmentName resolves a department reference to its display name.
// Unresolvable references return the raw id so output stays traceable.
func (s *Snapshot) DepartmentName(id string) string {
	if d, ok := s.DepartmentByID(id); ok {
		return d.Name
	}
	return id
}

// reindex rebuilds the department index. The loader calls it once after the
// department slice is final.
func (s *Snapshot) reindex() {
	s.byID = make(map[string]int, len(s.Department))
	for i, d := range s.Department {
		s.byID[d.ID] = i
	}
}
