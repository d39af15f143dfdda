package analyzer

import (
	"sort"

	"github.com/hargabyte/finlens/internal/config"
	"github.com/hargabyte/finlens/internal/dataset"
	"github.com/hargabyte/finlens/internal/logging"
	"github.com/hargabyte/finlens/internal/report"
)

// Salary analyzes employee compensation: distribution statistics over all
// salaries, per-department salary funds, and Tukey-fence outlier detection.
type Salary struct {
	cfg  config.AnalysisConfig
	lggr logging.Logger
}

// NewSalary creates a salary analyzer. The fence multiplier comes from cfg.
func NewSalary(cfg config.AnalysisConfig, lggr logging.Logger) *Salary {
	return &Salary{cfg: cfg, lggr: lggr.Named("salary")}
}

// Kind implements Analyzer.
func (s *Salary) Kind() report.Kind { return report.KindSalary }

// Analyze implements Analyzer.
func (s *Salary) Analyze(snap *dataset.Snapshot) report.Result {
	s.lggr.Debugw("starting salary analysis", "employees", len(snap.Employees))

	res := report.NewSalaryData()
	res.Fence.Multiplier = s.cfg.OutlierFence

	if len(snap.Employees) == 0 {
		s.lggr.Debugw("no employees, reporting zero distribution")
		return res
	}

	salaries := make([]float64, len(snap.Employees))
	for i, e := range snap.Employees {
		salaries[i] = e.Salary
		res.MonthlyFundTotal += e.Salary
	}
	res.AnnualFundTotal = res.MonthlyFundTotal * 12

	sorted := make([]float64, len(salaries))
	copy(sorted, salaries)
	sort.Float64s(sorted)

	res.Distribution = report.SalaryDistribution{
		Count:  len(sorted),
		Mean:   mean(sorted),
		StdDev: sampleStdDev(sorted),
		Min:    sorted[0],
		Q1:     quantile(sorted, 0.25),
		Median: quantile(sorted, 0.50),
		Q3:     quantile(sorted, 0.75),
		Max:    sorted[len(sorted)-1],
	}

	res.DepartmentFunds = s.departmentFunds(snap)

	iqr := res.Distribution.Q3 - res.Distribution.Q1
	res.Fence.Lower = res.Distribution.Q1 - s.cfg.OutlierFence*iqr
	res.Fence.Upper = res.Distribution.Q3 + s.cfg.OutlierFence*iqr

	for _, e := range snap.Employees {
		if e.Salary < res.Fence.Lower || e.Salary > res.Fence.Upper {
			res.Outliers = append(res.Outliers, report.SalaryOutlier{
				EmployeeID:     e.ID,
				DepartmentID:   e.DepartmentID,
				DepartmentName: snap.DepartmentName(e.DepartmentID),
				Salary:         e.Salary,
			})
		}
	}

	s.lggr.Debugw("salary analysis complete",
		"monthly_fund", res.MonthlyFundTotal,
		"outliers", len(res.Outliers))
	return res
}

// departmentFunds sums monthly salaries per department, descending, with
// dataset order as the tie-break. Departments without employees are absent.
func (s *Salary) departmentFunds(snap *dataset.Snapshot) []report.DepartmentAmount {
	byDept := make(map[string]float64, len(snap.Department))
	for _, e := range snap.Employees {
		byDept[e.DepartmentID] += e.Salary
	}

	funds := make([]report.DepartmentAmount, 0, len(byDept))
	for _, d := range snap.Department {
		total, ok := byDept[d.ID]
		if !ok {
			continue
		}
		funds = append(funds, report.DepartmentAmount{
			DepartmentID: d.ID,
			Name:         d.Name,
			Amount:       total,
		})
	}

	sort.SliceStable(funds, func(i, j int) bool {
		return funds[i].Amount > funds[j].Amount
	})
	return funds
}
