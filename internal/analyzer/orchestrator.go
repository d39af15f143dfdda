package analyzer

import (
	"github.com/hargabyte/finlens/internal/config"
	"github.com/hargabyte/finlens/internal/dataset"
	"github.com/hargabyte/finlens/internal/logging"
	"github.com/hargabyte/finlens/internal/report"
)

// Orchestrator runs the analyses in their fixed order and collects the
// results into one aggregate report. Budget, salary, ROI, and cost are
// independent of each other; planning runs last because it consumes the
// salary and ROI results.
type Orchestrator struct {
	cfg  *config.Config
	lggr logging.Logger
}

// NewOrchestrator creates an orchestrator. Configuration is threaded from
// here into every analyzer; nothing reads process-wide state.
func NewOrchestrator(cfg *config.Config, lggr logging.Logger) *Orchestrator {
	return &Orchestrator{cfg: cfg, lggr: lggr.Named("orchestrator")}
}

// Run executes all five analyses over the snapshot and returns the
// aggregate report. It always returns a complete report: analyzers convert
// degenerate inputs into zero-valued results rather than failing.
func (o *Orchestrator) Run(snap *dataset.Snapshot) *report.Aggregate {
	o.lggr.Infow("starting analysis pipeline", "company", snap.Metadata.CompanyName)

	agg := report.NewAggregate(snap.Metadata, snap.Stats)

	for _, a := range []Analyzer{
		NewBudget(o.lggr),
		NewSalary(o.cfg.Analysis, o.lggr),
		NewROI(o.cfg.Analysis, o.lggr),
		NewCost(o.cfg.Analysis, o.lggr),
	} {
		o.lggr.Infow("running analysis", "kind", a.Kind())
		agg.Set(a.Analyze(snap))
	}

	planning := NewPlanning(o.cfg.Analysis, agg.Salary, agg.ROI, o.lggr)
	o.lggr.Infow("running analysis", "kind", planning.Kind())
	agg.Set(planning.Analyze(snap))

	o.lggr.Infow("analysis pipeline complete", "complete", agg.Complete())
	return agg
}
