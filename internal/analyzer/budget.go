package analyzer

import (
	"sort"

	"github.com/hargabyte/finlens/internal/dataset"
	"github.com/hargabyte/finlens/internal/logging"
	"github.com/hargabyte/finlens/internal/report"
)

// Budget analyzes budget allocation across departments: totals, the full
// descending allocation ranking, budget-per-employee extremes, and
// utilization rates.
type Budget struct {
	lggr logging.Logger
}

// NewBudget creates a budget analyzer.
func NewBudget(lggr logging.Logger) *Budget {
	return &Budget{lggr: lggr.Named("budget")}
}

// Kind implements Analyzer.
func (b *Budget) Kind() report.Kind { return report.KindBudget }

// Analyze implements Analyzer.
func (b *Budget) Analyze(snap *dataset.Snapshot) report.Result {
	b.lggr.Debugw("starting budget analysis", "departments", len(snap.Department))

	res := report.NewBudgetData()

	for _, d := range snap.Department {
		res.TotalBudget += d.Budget
		res.Allocation = append(res.Allocation, report.DepartmentAmount{
			DepartmentID: d.ID,
			Name:         d.Name,
			Amount:       d.Budget,
		})

		// Zero-employee departments have no per-employee figure.
		if d.EmployeeCount > 0 {
			res.PerEmployee = append(res.PerEmployee, report.BudgetPerEmployee{
				DepartmentID:  d.ID,
				Name:          d.Name,
				Budget:        d.Budget,
				EmployeeCount: d.EmployeeCount,
				PerEmployee:   d.Budget / float64(d.EmployeeCount),
			})
		}

		// Zero-allocation departments have no utilization rate.
		if d.Budget > 0 {
			res.Utilization = append(res.Utilization, report.BudgetUtilization{
				DepartmentID: d.ID,
				Name:         d.Name,
				Allocated:    d.Budget,
				Spent:        d.SpentBudget,
				Rate:         d.SpentBudget / d.Budget * 100,
			})
		}
	}

	// Stable sorts keep dataset order as the tie-break.
	sort.SliceStable(res.Allocation, func(i, j int) bool {
		return res.Allocation[i].Amount > res.Allocation[j].Amount
	})
	sort.SliceStable(res.PerEmployee, func(i, j int) bool {
		return res.PerEmployee[i].PerEmployee > res.PerEmployee[j].PerEmployee
	})
	sort.SliceStable(res.Utilization, func(i, j int) bool {
		return res.Utilization[i].Rate > res.Utilization[j].Rate
	})

	if len(res.PerEmployee) > 0 {
		highest := res.PerEmployee[0]
		lowest := res.PerEmployee[len(res.PerEmployee)-1]
		res.HighestPerEmployee = &highest
		res.LowestPerEmployee = &lowest
	}

	if len(res.Utilization) > 0 {
		rates := make([]float64, len(res.Utilization))
		for i, u := range res.Utilization {
			rates[i] = u.Rate
		}
		res.MeanUtilization = mean(rates)
	}

	b.lggr.Debugw("budget analysis complete",
		"total_budget", res.TotalBudget,
		"eligible_per_employee", len(res.PerEmployee),
		"eligible_utilization", len(res.Utilization))
	return res
}
