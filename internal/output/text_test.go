package output

import (
	"strings"
	"testing"

	"github.com/hargabyte/finlens/internal/config"
	"github.com/hargabyte/finlens/internal/dataset"
	"github.com/hargabyte/finlens/internal/report"
)

func testRenderer() *TextRenderer {
	return NewTextRenderer(config.ReportConfig{Currency: "RUB", TopN: 10})
}

func sampleAggregate() *report.Aggregate {
	agg := report.NewAggregate(dataset.Metadata{CompanyName: "Acme", Currency: "RUB"}, dataset.LoadStats{})

	budget := report.NewBudgetData()
	budget.TotalBudget = 1500
	budget.Allocation = []report.DepartmentAmount{
		{DepartmentID: "d1", Name: "Engineering", Amount: 1000},
		{DepartmentID: "d2", Name: "Sales", Amount: 500},
	}
	budget.HighestPerEmployee = &report.BudgetPerEmployee{Name: "Engineering", PerEmployee: 500}
	budget.LowestPerEmployee = &report.BudgetPerEmployee{Name: "Sales", PerEmployee: 250}
	budget.Utilization = []report.BudgetUtilization{
		{Name: "Sales", Rate: 120}, {Name: "Engineering", Rate: 80},
	}
	budget.MeanUtilization = 100
	agg.Set(budget)

	salary := report.NewSalaryData()
	salary.Distribution = report.SalaryDistribution{Count: 3, Mean: 100, Median: 90}
	salary.MonthlyFundTotal = 300
	salary.AnnualFundTotal = 3600
	salary.Fence = report.OutlierFence{Multiplier: 1.5, Lower: 10, Upper: 200}
	salary.Outliers = []report.SalaryOutlier{
		{EmployeeID: "e9", DepartmentName: "Sales", Salary: 900},
	}
	agg.Set(salary)

	roi := report.NewRoiData()
	roi.CompanyROI = 0.5
	roi.TotalProjects = 4
	roi.EligibleProjects = 3
	roi.Departments = []report.DepartmentROI{
		{Name: "Engineering", ROI: 0.8}, {Name: "Sales", ROI: 0.2},
	}
	roi.Best = &roi.Departments[0]
	roi.Worst = &roi.Departments[1]
	roi.Correlation = &report.CorrelationData{
		Coefficient: 0.9, Strength: report.CorrelationStrong, Direction: report.CorrelationPositive,
	}
	agg.Set(roi)

	cost := report.NewCostData()
	cost.TotalPurchaseCost = 10000
	cost.TotalMonthlyUpkeep = 200
	cost.TotalAnnualUpkeep = 2400
	cost.MaintenanceRatio = 24
	cost.Departments = []report.DepartmentAmount{{Name: "Engineering", Amount: 200}}
	cost.TopSpender = &cost.Departments[0]
	cost.MostExpensive = &report.EquipmentCost{
		Name: "Rack", Type: "compute", DepartmentName: "Engineering",
		MonthlyUpkeep: 200, AnnualUpkeep: 2400,
	}
	cost.Recommendations = []string{"review maintenance contracts"}
	agg.Set(cost)

	planning := report.NewPlanningData()
	planning.FixedCostsAnnual = 6000
	planning.MarginRatio = 0.30
	planning.BreakEvenRevenue = 20000
	planning.HighROIDepartments = []report.DepartmentROI{{Name: "Engineering", ROI: 0.8}}
	agg.Set(planning)

	return agg
}

func TestRenderAggregateSections(t *testing.T) {
	var b strings.Builder
	if err := testRenderer().RenderAggregate(&b, sampleAggregate()); err != nil {
		t.Fatalf("RenderAggregate() error: %v", err)
	}
	out := b.String()

	headers := []string{
		"BUDGET ANALYSIS",
		"SALARY ANALYSIS",
		"ROI ANALYSIS",
		"COST OPTIMIZATION ANALYSIS",
		"FINANCIAL PLANNING ANALYSIS",
		"COMPREHENSIVE FINANCIAL ANALYSIS SUMMARY",
	}
	for _, h := range headers {
		if !strings.Contains(out, h) {
			t.Errorf("report missing %q section", h)
		}
	}

	if !strings.Contains(out, strings.Repeat("=", separatorWidth)) {
		t.Error("report missing section separators")
	}
	if !strings.Contains(out, "Total Budget: 1500 RUB") {
		t.Error("report missing total budget figure")
	}
	if !strings.Contains(out, "Company-Wide ROI: 50.00%") {
		t.Error("report missing company ROI figure")
	}
	if !strings.Contains(out, "Break-Even Revenue:  20000 RUB") {
		t.Error("report missing break-even figure")
	}
	if !strings.Contains(out, "STRATEGIC RECOMMENDATIONS:") {
		t.Error("report missing strategic recommendations")
	}
	if !strings.Contains(out, "1. review maintenance contracts") {
		t.Error("recommendations are not numbered")
	}
	if !strings.Contains(out, "review salary structure for 1 identified outliers") {
		t.Error("summary missing outlier recommendation")
	}
}

func TestRenderAggregateSkipsMissingSections(t *testing.T) {
	agg := report.NewAggregate(dataset.Metadata{}, dataset.LoadStats{})
	budget := report.NewBudgetData()
	agg.Set(budget)

	var b strings.Builder
	if err := testRenderer().RenderAggregate(&b, agg); err != nil {
		t.Fatalf("RenderAggregate() error: %v", err)
	}
	out := b.String()

	if !strings.Contains(out, "BUDGET ANALYSIS") {
		t.Error("report missing budget section")
	}
	if strings.Contains(out, "SALARY ANALYSIS") {
		t.Error("report includes salary section for absent result")
	}
}

func TestRenderResult(t *testing.T) {
	agg := sampleAggregate()

	for _, k := range report.Kinds {
		res := agg.ByKind(k)
		if res == nil {
			t.Fatalf("sample aggregate missing %s result", k)
		}
		var b strings.Builder
		if err := testRenderer().RenderResult(&b, res); err != nil {
			t.Errorf("RenderResult(%s) error: %v", k, err)
		}
		if b.Len() == 0 {
			t.Errorf("RenderResult(%s) produced no output", k)
		}
	}
}

func TestRenderSalaryNoOutliers(t *testing.T) {
	salary := report.NewSalaryData()

	var b strings.Builder
	if err := testRenderer().RenderResult(&b, salary); err != nil {
		t.Fatalf("RenderResult() error: %v", err)
	}
	if !strings.Contains(b.String(), "Salary Outliers: None identified") {
		t.Error("report missing the no-outliers line")
	}
}

func TestTopNSlicing(t *testing.T) {
	rows := make([]report.DepartmentAmount, 15)
	for i := range rows {
		rows[i] = report.DepartmentAmount{Name: "D", Amount: float64(15 - i)}
	}

	if got := top(rows, 10); len(got) != 10 {
		t.Errorf("top(15 rows, 10) = %d rows, expected 10", len(got))
	}
	if got := top(rows, 20); len(got) != 15 {
		t.Errorf("top(15 rows, 20) = %d rows, expected all 15", len(got))
	}
	if got := bottom(rows, 3); len(got) != 3 || got[2].Amount != 1 {
		t.Errorf("bottom(rows, 3) = %v, expected last three in order", got)
	}
}

func TestMoneyFormatting(t *testing.T) {
	r := NewTextRenderer(config.ReportConfig{Currency: "EUR", TopN: 5})

	if got := r.money(1234.56); got != "1235 EUR" {
		t.Errorf("money(1234.56) = %q, expected rounded amount with currency", got)
	}
}
