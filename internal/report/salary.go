package report

// SalaryData is the complete result of the salary analysis.
//
// Department funds are monthly figures; the company-wide totals are reported
// both monthly and annualized because the two differ by a factor of twelve
// and are easy to confuse.
type SalaryData struct {
	// Report contains the common report header fields.
	Report ReportHeader `yaml:"report" json:"report"`

	// Distribution holds descriptive statistics over all salaries.
	// All fields are zero when the company has no employees.
	Distribution SalaryDistribution `yaml:"distribution" json:"distribution"`

	// DepartmentFunds ranks departments by monthly salary fund,
	// descending. Departments without employees are absent.
	DepartmentFunds []DepartmentAmount `yaml:"department_funds_monthly" json:"department_funds_monthly"`

	// MonthlyFundTotal is the company-wide monthly salary fund.
	MonthlyFundTotal float64 `yaml:"monthly_fund_total" json:"monthly_fund_total"`

	// AnnualFundTotal is the company-wide salary fund annualized
	// (monthly x 12).
	AnnualFundTotal float64 `yaml:"annual_fund_total" json:"annual_fund_total"`

	// Fence is the Tukey fence the outlier detection used.
	Fence OutlierFence `yaml:"fence" json:"fence"`

	// Outliers lists employees whose salary falls outside the fence,
	// in dataset order.
	Outliers []SalaryOutlier `yaml:"outliers" json:"outliers"`
}

// SalaryDistribution holds descriptive statistics of the salary set.
// StdDev uses the sample (n-1) denominator and is zero for fewer than two
// salaries. Quartiles use linear interpolation between closest ranks.
type SalaryDistribution struct {
	Count  int     `yaml:"count" json:"count"`
	Mean   float64 `yaml:"mean" json:"mean"`
	StdDev float64 `yaml:"std_dev" json:"std_dev"`
	Min    float64 `yaml:"min" json:"min"`
	Q1     float64 `yaml:"q1" json:"q1"`
	Median float64 `yaml:"median" json:"median"`
	Q3     float64 `yaml:"q3" json:"q3"`
	Max    float64 `yaml:"max" json:"max"`
}

// OutlierFence records the interval used for outlier detection:
// [Q1 - m*IQR, Q3 + m*IQR] where m is the configured multiplier.
type OutlierFence struct {
	Multiplier float64 `yaml:"multiplier" json:"multiplier"`
	Lower      float64 `yaml:"lower" json:"lower"`
	Upper      float64 `yaml:"upper" json:"upper"`
}

// SalaryOutlier is one employee flagged by the fence check.
type SalaryOutlier struct {
	EmployeeID     string  `yaml:"employee_id" json:"employee_id"`
	DepartmentID   string  `yaml:"department_id" json:"department_id"`
	DepartmentName string  `yaml:"department_name" json:"department_name"`
	Salary         float64 `yaml:"salary" json:"salary"`
}

// NewSalaryData creates a SalaryData with an initialized header and empty
// rankings.
func NewSalaryData() *SalaryData {
	return &SalaryData{
		Report:          newHeader(KindSalary),
		DepartmentFunds: []DepartmentAmount{},
		Outliers:        []SalaryOutlier{},
	}
}

// ResultKind implements Result.
func (s *SalaryData) ResultKind() Kind { return KindSalary }
