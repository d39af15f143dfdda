// Package analyzer implements the five analyses finlens runs over a company
// snapshot: budget, salary, ROI, cost optimization, and financial planning.
//
// Every analyzer satisfies the same contract: given an immutable snapshot it
// returns a fully populated result. Analyzers never mutate the snapshot and
// never fail; empty or degenerate inputs produce zero-valued results so the
// orchestrator can always assemble a complete report.
package analyzer

import (
	"github.com/hargabyte/finlens/internal/dataset"
	"github.com/hargabyte/finlens/internal/report"
)

// Analyzer is the contract every analysis module satisfies.
type Analyzer interface {
	// Kind identifies the analysis.
	Kind() report.Kind

	// Analyze computes the analysis result over the snapshot. It must
	// not mutate the snapshot and must return a well-formed result for
	// any input, including an empty snapshot.
	Analyze(snap *dataset.Snapshot) report.Result
}
