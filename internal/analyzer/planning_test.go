package analyzer

import (
	"testing"

	"github.com/hargabyte/finlens/internal/dataset"
	"github.com/hargabyte/finlens/internal/logging"
	"github.com/hargabyte/finlens/internal/report"
)

func planningInputs() (*report.SalaryData, *report.RoiData) {
	salary := report.NewSalaryData()
	salary.MonthlyFundTotal = 1000
	salary.AnnualFundTotal = 12000

	roi := report.NewRoiData()
	roi.CompanyROI = 0.10
	roi.Departments = []report.DepartmentROI{
		{DepartmentID: "a", Name: "A", ROI: 0.50},
		{DepartmentID: "b", Name: "B", ROI: 0.10},
		{DepartmentID: "c", Name: "C", ROI: -0.20},
	}
	return salary, roi
}

func TestPlanningFixedCostsAndBreakEven(t *testing.T) {
	salary, roi := planningInputs()
	depts := []dataset.Department{{ID: "d1", Name: "Ops"}}
	equipment := []dataset.Equipment{
		{ID: "e1", DepartmentID: "d1", MonthlyUpkeep: 500},
	}
	snap := dataset.NewSnapshot(dataset.Metadata{}, depts, nil, nil, equipment, nil)

	cfg := testAnalysisConfig() // margin ratio 0.30
	res := NewPlanning(cfg, salary, roi, logging.Test(t)).Analyze(snap).(*report.PlanningData)

	// 12000 salary + 500*12 maintenance = 18000 annual fixed costs.
	if res.FixedCostsAnnual != 18000 {
		t.Errorf("FixedCostsAnnual = %f, expected 18000", res.FixedCostsAnnual)
	}
	if res.BreakEvenRevenue != 60000 {
		t.Errorf("BreakEvenRevenue = %f, expected 60000", res.BreakEvenRevenue)
	}
	if res.MarginRatio != 0.30 {
		t.Errorf("MarginRatio = %f, expected 0.30", res.MarginRatio)
	}
}

func TestPlanningBreakEvenMonotonicity(t *testing.T) {
	salary, roi := planningInputs()
	snap := dataset.NewSnapshot(dataset.Metadata{}, nil, nil, nil, nil, nil)

	// Higher fixed costs raise break-even.
	low := NewPlanning(testAnalysisConfig(), salary, roi, logging.Test(t)).Analyze(snap).(*report.PlanningData)

	bigger := report.NewSalaryData()
	bigger.AnnualFundTotal = salary.AnnualFundTotal * 2
	high := NewPlanning(testAnalysisConfig(), bigger, roi, logging.Test(t)).Analyze(snap).(*report.PlanningData)

	if high.BreakEvenRevenue <= low.BreakEvenRevenue {
		t.Errorf("break-even %f with doubled fixed costs not above %f",
			high.BreakEvenRevenue, low.BreakEvenRevenue)
	}

	// Higher margin ratio lowers break-even.
	cfg := testAnalysisConfig()
	cfg.MarginRatio = 0.60
	wide := NewPlanning(cfg, salary, roi, logging.Test(t)).Analyze(snap).(*report.PlanningData)

	if wide.BreakEvenRevenue >= low.BreakEvenRevenue {
		t.Errorf("break-even %f with doubled margin not below %f",
			wide.BreakEvenRevenue, low.BreakEvenRevenue)
	}
}

func TestPlanningHighROISelection(t *testing.T) {
	salary, roi := planningInputs()
	snap := dataset.NewSnapshot(dataset.Metadata{}, nil, nil, nil, nil, nil)

	res := NewPlanning(testAnalysisConfig(), salary, roi, logging.Test(t)).Analyze(snap).(*report.PlanningData)

	// Only A (0.50) exceeds the company-wide 0.10; B equals it and C is
	// below, so both are excluded.
	if len(res.HighROIDepartments) != 1 {
		t.Fatalf("HighROIDepartments has %d entries, expected 1", len(res.HighROIDepartments))
	}
	if res.HighROIDepartments[0].Name != "A" {
		t.Errorf("HighROIDepartments[0] = %s, expected A", res.HighROIDepartments[0].Name)
	}
}

func TestPlanningHighROIOrderPreserved(t *testing.T) {
	salary, _ := planningInputs()
	roi := report.NewRoiData()
	roi.CompanyROI = 0.0
	roi.Departments = []report.DepartmentROI{
		{DepartmentID: "a", Name: "A", ROI: 0.9},
		{DepartmentID: "b", Name: "B", ROI: 0.5},
		{DepartmentID: "c", Name: "C", ROI: 0.1},
	}
	snap := dataset.NewSnapshot(dataset.Metadata{}, nil, nil, nil, nil, nil)

	res := NewPlanning(testAnalysisConfig(), salary, roi, logging.Test(t)).Analyze(snap).(*report.PlanningData)

	want := []string{"A", "B", "C"}
	if len(res.HighROIDepartments) != len(want) {
		t.Fatalf("HighROIDepartments has %d entries, expected %d", len(res.HighROIDepartments), len(want))
	}
	for i, name := range want {
		if res.HighROIDepartments[i].Name != name {
			t.Errorf("HighROIDepartments[%d] = %s, expected %s", i, res.HighROIDepartments[i].Name, name)
		}
	}
}

func TestPlanningNilInputs(t *testing.T) {
	snap := dataset.NewSnapshot(dataset.Metadata{}, nil, nil, nil, nil, nil)

	res := NewPlanning(testAnalysisConfig(), nil, nil, logging.Test(t)).Analyze(snap).(*report.PlanningData)

	if res.FixedCostsAnnual != 0 || res.BreakEvenRevenue != 0 {
		t.Error("expected zero figures with nil inputs")
	}
	if len(res.HighROIDepartments) != 0 {
		t.Errorf("HighROIDepartments has %d entries, expected 0", len(res.HighROIDepartments))
	}
}

func TestPlanningRecommendationsDeterministic(t *testing.T) {
	salary, roi := planningInputs()
	snap := dataset.NewSnapshot(dataset.Metadata{}, nil, nil, nil, nil, nil)

	p := NewPlanning(testAnalysisConfig(), salary, roi, logging.Test(t))
	first := p.Analyze(snap).(*report.PlanningData)
	second := p.Analyze(snap).(*report.PlanningData)

	if len(first.Recommendations) == 0 {
		t.Fatal("expected recommendations for non-degenerate inputs")
	}
	for i := range first.Recommendations {
		if first.Recommendations[i] != second.Recommendations[i] {
			t.Errorf("recommendation %d differs between runs", i)
		}
	}
}
