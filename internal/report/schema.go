// Package report defines the schema types for finlens analysis results.
// Each analyzer produces one typed result; the orchestrator collects all five
// into an Aggregate. These types are the machine-readable output (YAML/JSON)
// and the source the text renderer draws from. Nothing in this package
// formats currency or writes to a stream.
package report

import (
	"time"

	"github.com/hargabyte/finlens/internal/dataset"
)

// Kind identifies one of the five analyses.
type Kind string

const (
	KindBudget   Kind = "budget"
	KindSalary   Kind = "salary"
	KindROI      Kind = "roi"
	KindCost     Kind = "cost"
	KindPlanning Kind = "planning"
)

// Kinds lists all analysis kinds in execution order. Planning is last
// because it consumes the salary and ROI results.
var Kinds = []Kind{KindBudget, KindSalary, KindROI, KindCost, KindPlanning}

// ReportHeader contains common fields shared by all result types.
type ReportHeader struct {
	// Kind identifies which analysis produced this result.
	Kind Kind `yaml:"kind" json:"kind"`

	// GeneratedAt is the timestamp when the result was produced.
	GeneratedAt time.Time `yaml:"generated_at" json:"generated_at"`
}

// Result is implemented by the five concrete result types. The set is
// closed; consumers dispatch with a type switch.
type Result interface {
	ResultKind() Kind
}

// DepartmentAmount is one department paired with a monetary amount, used by
// rankings (budget allocation, salary funds, maintenance costs).
type DepartmentAmount struct {
	DepartmentID string  `yaml:"department_id" json:"department_id"`
	Name         string  `yaml:"name" json:"name"`
	Amount       float64 `yaml:"amount" json:"amount"`
}

// Aggregate is the complete report: the five analyzer results plus snapshot
// metadata and load statistics.
type Aggregate struct {
	GeneratedAt time.Time         `yaml:"generated_at" json:"generated_at"`
	Metadata    dataset.Metadata  `yaml:"metadata" json:"metadata"`
	LoadStats   dataset.LoadStats `yaml:"load_stats" json:"load_stats"`

	Budget   *BudgetData   `yaml:"budget" json:"budget"`
	Salary   *SalaryData   `yaml:"salary" json:"salary"`
	ROI      *RoiData      `yaml:"roi" json:"roi"`
	Cost     *CostData     `yaml:"cost" json:"cost"`
	Planning *PlanningData `yaml:"planning" json:"planning"`
}

// NewAggregate creates an Aggregate carrying the snapshot's metadata and
// load statistics, timestamped now. Results are attached with Set.
func NewAggregate(meta dataset.Metadata, stats dataset.LoadStats) *Aggregate {
	return &Aggregate{
		GeneratedAt: time.Now(),
		Metadata:    meta,
		LoadStats:   stats,
	}
}

// Set attaches a result to its slot in the aggregate.
func (a *Aggregate) Set(r Result) {
	switch v := r.(type) {
	case *BudgetData:
		a.Budget = v
	case *SalaryData:
		a.Salary = v
	case *RoiData:
		a.ROI = v
	case *CostData:
		a.Cost = v
	case *PlanningData:
		a.Planning = v
	}
}

// ByKind returns the result for the given kind, or nil if absent.
func (a *Aggregate) ByKind(k Kind) Result {
	switch k {
	case KindBudget:
		if a.Budget != nil {
			return a.Budget
		}
	case KindSalary:
		if a.Salary != nil {
			return a.Salary
		}
	case KindROI:
		if a.ROI != nil {
			return a.ROI
		}
	case KindCost:
		if a.Cost != nil {
			return a.Cost
		}
	case KindPlanning:
		if a.Planning != nil {
			return a.Planning
		}
	}
	return nil
}

// Complete reports whether all five results are present.
func (a *Aggregate) Complete() bool {
	return a.Budget != nil && a.Salary != nil && a.ROI != nil &&
		a.Cost != nil && a.Planning != nil
}

func newHeader(k Kind) ReportHeader {
	return ReportHeader{Kind: k, GeneratedAt: time.Now()}
}
