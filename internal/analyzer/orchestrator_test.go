package analyzer

import (
	"testing"

	"github.com/hargabyte/finlens/internal/config"
	"github.com/hargabyte/finlens/internal/dataset"
	"github.com/hargabyte/finlens/internal/logging"
)

func fullSnapshot() *dataset.Snapshot {
	depts := []dataset.Department{
		{ID: "d1", Name: "Engineering", Budget: 1000, SpentBudget: 800, EmployeeCount: 2},
		{ID: "d2", Name: "Sales", Budget: 500, SpentBudget: 600, EmployeeCount: 1},
	}
	employees := []dataset.Employee{
		{ID: "e1", DepartmentID: "d1", Salary: 100},
		{ID: "e2", DepartmentID: "d1", Salary: 120},
		{ID: "e3", DepartmentID: "d2", Salary: 90},
	}
	projects := []dataset.Project{
		{ID: "p1", DepartmentID: "d1", Status: "completed", Investment: 200, Return: 300},
		{ID: "p2", DepartmentID: "d2", Status: "completed", Investment: 100, Return: 110},
	}
	equipment := []dataset.Equipment{
		{ID: "q1", Name: "Rack", Type: "compute", DepartmentID: "d1", PurchaseCost: 2000, MonthlyUpkeep: 40},
	}
	return dataset.NewSnapshot(
		dataset.Metadata{CompanyName: "Acme", Currency: "RUB", FiscalYear: 2025},
		depts, employees, projects, equipment, nil)
}

func TestOrchestratorProducesCompleteReport(t *testing.T) {
	cfg := config.DefaultConfig()
	agg := NewOrchestrator(cfg, logging.Test(t)).Run(fullSnapshot())

	if !agg.Complete() {
		t.Fatal("aggregate report is incomplete")
	}
	if agg.Metadata.CompanyName != "Acme" {
		t.Errorf("Metadata.CompanyName = %s, expected Acme", agg.Metadata.CompanyName)
	}
}

func TestOrchestratorEmptyDataset(t *testing.T) {
	cfg := config.DefaultConfig()
	snap := dataset.NewSnapshot(dataset.Metadata{}, nil, nil, nil, nil, nil)

	agg := NewOrchestrator(cfg, logging.Test(t)).Run(snap)

	if !agg.Complete() {
		t.Fatal("aggregate report is incomplete for the empty dataset")
	}
	if agg.Budget.TotalBudget != 0 {
		t.Errorf("TotalBudget = %f, expected 0", agg.Budget.TotalBudget)
	}
	if agg.Salary.Distribution.Count != 0 {
		t.Errorf("salary count = %d, expected 0", agg.Salary.Distribution.Count)
	}
	if agg.ROI.CompanyROI != 0 {
		t.Errorf("CompanyROI = %f, expected 0", agg.ROI.CompanyROI)
	}
	if agg.Cost.TotalPurchaseCost != 0 {
		t.Errorf("TotalPurchaseCost = %f, expected 0", agg.Cost.TotalPurchaseCost)
	}
	if agg.Planning.BreakEvenRevenue != 0 {
		t.Errorf("BreakEvenRevenue = %f, expected 0", agg.Planning.BreakEvenRevenue)
	}
	if len(agg.Budget.Allocation) != 0 || len(agg.ROI.Departments) != 0 {
		t.Error("expected empty rankings for the empty dataset")
	}
}

func TestOrchestratorPlanningConsistency(t *testing.T) {
	// Planning must be derived from the same pipeline's salary and ROI
	// results: fixed costs equal the annual salary fund plus annual
	// maintenance, and every high-ROI department must beat the
	// company-wide ROI from the same run.
	cfg := config.DefaultConfig()
	agg := NewOrchestrator(cfg, logging.Test(t)).Run(fullSnapshot())

	wantFixed := agg.Salary.AnnualFundTotal + agg.Cost.TotalAnnualUpkeep
	if agg.Planning.FixedCostsAnnual != wantFixed {
		t.Errorf("FixedCostsAnnual = %f, expected %f", agg.Planning.FixedCostsAnnual, wantFixed)
	}

	for _, d := range agg.Planning.HighROIDepartments {
		if d.ROI <= agg.ROI.CompanyROI {
			t.Errorf("department %s in high-ROI set with ROI %f <= company %f",
				d.Name, d.ROI, agg.ROI.CompanyROI)
		}
	}
}

func TestOrchestratorResultsByKind(t *testing.T) {
	cfg := config.DefaultConfig()
	agg := NewOrchestrator(cfg, logging.Test(t)).Run(fullSnapshot())

	for _, a := range []Analyzer{
		NewBudget(logging.Test(t)),
		NewSalary(cfg.Analysis, logging.Test(t)),
		NewROI(cfg.Analysis, logging.Test(t)),
		NewCost(cfg.Analysis, logging.Test(t)),
	} {
		res := agg.ByKind(a.Kind())
		if res == nil {
			t.Errorf("aggregate has no result for kind %q", a.Kind())
			continue
		}
		if res.ResultKind() != a.Kind() {
			t.Errorf("result kind %q stored under %q", res.ResultKind(), a.Kind())
		}
	}
}
