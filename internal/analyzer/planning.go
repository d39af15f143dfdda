package analyzer

import (
	"fmt"

	"github.com/hargabyte/finlens/internal/config"
	"github.com/hargabyte/finlens/internal/dataset"
	"github.com/hargabyte/finlens/internal/logging"
	"github.com/hargabyte/finlens/internal/report"
)

// Planning derives a simple financial plan: annual fixed costs, break-even
// revenue under the configured margin ratio, and the set of departments
// outperforming the company-wide ROI.
//
// Planning consumes the salary and ROI results, which is the only
// inter-analyzer dependency in the pipeline; the orchestrator constructs it
// after those two analyses complete.
type Planning struct {
	cfg    config.AnalysisConfig
	salary *report.SalaryData
	roi    *report.RoiData
	lggr   logging.Logger
}

// NewPlanning creates a planning analyzer over already-computed salary and
// ROI results. Nil inputs are treated as empty results.
func NewPlanning(cfg config.AnalysisConfig, salary *report.SalaryData, roi *report.RoiData, lggr logging.Logger) *Planning {
	if salary == nil {
		salary = report.NewSalaryData()
	}
	if roi == nil {
		roi = report.NewRoiData()
	}
	return &Planning{cfg: cfg, salary: salary, roi: roi, lggr: lggr.Named("planning")}
}

// Kind implements Analyzer.
func (p *Planning) Kind() report.Kind { return report.KindPlanning }

// Analyze implements Analyzer.
func (p *Planning) Analyze(snap *dataset.Snapshot) report.Result {
	p.lggr.Debugw("starting planning analysis")

	res := report.NewPlanningData()
	res.MarginRatio = p.cfg.MarginRatio

	var monthlyUpkeep float64
	for _, eq := range snap.Equipment {
		monthlyUpkeep += eq.MonthlyUpkeep
	}

	res.FixedCostsAnnual = p.salary.AnnualFundTotal + monthlyUpkeep*12

	if p.cfg.MarginRatio > 0 {
		res.BreakEvenRevenue = res.FixedCostsAnnual / p.cfg.MarginRatio
	}

	// The ROI ranking is already descending; filtering preserves order.
	for _, d := range p.roi.Departments {
		if d.ROI > p.roi.CompanyROI {
			res.HighROIDepartments = append(res.HighROIDepartments, d)
		}
	}

	res.Recommendations = p.recommend(res)

	p.lggr.Debugw("planning analysis complete",
		"fixed_costs_annual", res.FixedCostsAnnual,
		"break_even", res.BreakEvenRevenue,
		"high_roi_departments", len(res.HighROIDepartments))
	return res
}

// recommend derives recommendations from the computed figures. The rules
// are pure: the same metrics always produce the same text.
func (p *Planning) recommend(res *report.PlanningData) []string {
	recs := []string{}

	if len(res.HighROIDepartments) > 0 {
		recs = append(recs, fmt.Sprintf(
			"increase investment in %s: department ROI %.1f%% exceeds the company-wide %.1f%%",
			res.HighROIDepartments[0].Name,
			res.HighROIDepartments[0].ROI*100,
			p.roi.CompanyROI*100))
	}

	if res.FixedCostsAnnual > 0 {
		recs = append(recs, fmt.Sprintf(
			"plan for break-even revenue of %.0f at an assumed margin ratio of %.2f",
			res.BreakEvenRevenue, res.MarginRatio))
	}

	return recs
}
