package analyzer

import (
	"math"
	"sort"

	"github.com/hargabyte/finlens/internal/config"
	"github.com/hargabyte/finlens/internal/dataset"
	"github.com/hargabyte/finlens/internal/logging"
	"github.com/hargabyte/finlens/internal/report"
)

// ROI analyzes project return on investment: value-weighted company and
// department ROI, the department ranking with its extremes, and the
// correlation between allocated budget and department ROI.
type ROI struct {
	cfg  config.AnalysisConfig
	lggr logging.Logger
}

// NewROI creates an ROI analyzer. Correlation strength thresholds come
// from cfg.
func NewROI(cfg config.AnalysisConfig, lggr logging.Logger) *ROI {
	return &ROI{cfg: cfg, lggr: lggr.Named("roi")}
}

// Kind implements Analyzer.
func (r *ROI) Kind() report.Kind { return report.KindROI }

// Analyze implements Analyzer.
func (r *ROI) Analyze(snap *dataset.Snapshot) report.Result {
	r.lggr.Debugw("starting roi analysis", "projects", len(snap.Projects))

	res := report.NewRoiData()
	res.TotalProjects = len(snap.Projects)

	// Aggregate eligible projects per department. Investment and return
	// are summed so both department and company ROI come out
	// value-weighted rather than as means of per-project ratios.
	type acc struct {
		investment float64
		ret        float64
		projects   int
	}
	byDept := make(map[string]*acc, len(snap.Department))

	var totalInvestment, totalReturn float64
	for _, p := range snap.Projects {
		if p.Status == dataset.ProjectStatusCompleted {
			res.CompletedProjects++
		}
		if p.Investment <= 0 {
			// ROI is undefined for this project.
			continue
		}
		res.EligibleProjects++
		totalInvestment += p.Investment
		totalReturn += p.Return

		a := byDept[p.DepartmentID]
		if a == nil {
			a = &acc{}
			byDept[p.DepartmentID] = a
		}
		a.investment += p.Investment
		a.ret += p.Return
		a.projects++
	}

	if totalInvestment > 0 {
		res.CompanyROI = (totalReturn - totalInvestment) / totalInvestment
	}

	for _, d := range snap.Department {
		a, ok := byDept[d.ID]
		if !ok {
			continue
		}
		res.Departments = append(res.Departments, report.DepartmentROI{
			DepartmentID: d.ID,
			Name:         d.Name,
			Investment:   a.investment,
			Return:       a.ret,
			ROI:          (a.ret - a.investment) / a.investment,
			Projects:     a.projects,
		})
	}

	sort.SliceStable(res.Departments, func(i, j int) bool {
		return res.Departments[i].ROI > res.Departments[j].ROI
	})

	if len(res.Departments) > 0 {
		best := res.Departments[0]
		worst := res.Departments[len(res.Departments)-1]
		res.Best = &best
		res.Worst = &worst
	}

	res.Correlation = r.budgetCorrelation(snap, res.Departments)

	r.lggr.Debugw("roi analysis complete",
		"company_roi", res.CompanyROI,
		"eligible", res.EligibleProjects,
		"departments", len(res.Departments))
	return res
}

// budgetCorrelation computes the Pearson correlation between allocated
// budget and department ROI over departments with a defined ROI. Returns
// nil when the coefficient is undefined.
func (r *ROI) budgetCorrelation(snap *dataset.Snapshot, depts []report.DepartmentROI) *report.CorrelationData {
	budgets := make([]float64, 0, len(depts))
	rois := make([]float64, 0, len(depts))
	for _, dr := range depts {
		d, ok := snap.DepartmentByID(dr.DepartmentID)
		if !ok {
			continue
		}
		budgets = append(budgets, d.Budget)
		rois = append(rois, dr.ROI)
	}

	coeff, ok := pearson(budgets, rois)
	if !ok {
		return nil
	}

	return &report.CorrelationData{
		Coefficient: coeff,
		Strength:    r.classifyStrength(coeff),
		Direction:   classifyDirection(coeff),
	}
}

// classifyStrength labels the magnitude of a correlation coefficient using
// the configured thresholds.
func (r *ROI) classifyStrength(coeff float64) report.CorrelationStrength {
	abs := math.Abs(coeff)
	switch {
	case abs >= r.cfg.CorrelationStrong:
		return report.CorrelationStrong
	case abs >= r.cfg.CorrelationWeak:
		return report.CorrelationModerate
	default:
		return report.CorrelationWeak
	}
}

func classifyDirection(coeff float64) report.CorrelationDirection {
	if coeff < 0 {
		return report.CorrelationNegative
	}
	return report.CorrelationPositive
}
