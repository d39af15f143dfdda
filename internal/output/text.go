package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/hargabyte/finlens/internal/config"
	"github.com/hargabyte/finlens/internal/report"
)

const separatorWidth = 70

// TextRenderer renders results as the human-readable console report.
// It owns all currency formatting and all "top N" slicing; the underlying
// results always carry full rankings and raw numbers.
type TextRenderer struct {
	cfg config.ReportConfig
}

// NewTextRenderer creates a text renderer with the given presentation
// settings.
func NewTextRenderer(cfg config.ReportConfig) *TextRenderer {
	return &TextRenderer{cfg: cfg}
}

// RenderAggregate writes the full report: one section per analysis followed
// by the comprehensive summary.
func (r *TextRenderer) RenderAggregate(w io.Writer, agg *report.Aggregate) error {
	var b strings.Builder

	if agg.Budget != nil {
		r.budgetSection(&b, agg.Budget)
	}
	if agg.Salary != nil {
		r.salarySection(&b, agg.Salary)
	}
	if agg.ROI != nil {
		r.roiSection(&b, agg.ROI)
	}
	if agg.Cost != nil {
		r.costSection(&b, agg.Cost)
	}
	if agg.Planning != nil {
		r.planningSection(&b, agg.Planning)
	}
	r.summarySection(&b, agg)

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderResult writes the section for a single analysis result.
func (r *TextRenderer) RenderResult(w io.Writer, res report.Result) error {
	var b strings.Builder

	switch v := res.(type) {
	case *report.BudgetData:
		r.budgetSection(&b, v)
	case *report.SalaryData:
		r.salarySection(&b, v)
	case *report.RoiData:
		r.roiSection(&b, v)
	case *report.CostData:
		r.costSection(&b, v)
	case *report.PlanningData:
		r.planningSection(&b, v)
	default:
		return fmt.Errorf("no text section for result kind %q", res.ResultKind())
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func (r *TextRenderer) budgetSection(b *strings.Builder, d *report.BudgetData) {
	r.header(b, "BUDGET ANALYSIS")

	fmt.Fprintf(b, "\nTotal Budget: %s\n", r.money(d.TotalBudget))

	fmt.Fprintf(b, "\nBudget Distribution by Department (Top %d):\n", r.cfg.TopN)
	r.amountRows(b, top(d.Allocation, r.cfg.TopN))

	fmt.Fprintf(b, "\nDepartment Budget Efficiency:\n")
	if d.HighestPerEmployee != nil {
		fmt.Fprintf(b, "  Highest Budget/Employee: %s\n", d.HighestPerEmployee.Name)
		fmt.Fprintf(b, "    Budget per Employee: %s\n", r.money(d.HighestPerEmployee.PerEmployee))
	}
	if d.LowestPerEmployee != nil {
		fmt.Fprintf(b, "  Lowest Budget/Employee: %s\n", d.LowestPerEmployee.Name)
		fmt.Fprintf(b, "    Budget per Employee: %s\n", r.money(d.LowestPerEmployee.PerEmployee))
	}

	fmt.Fprintf(b, "\nAverage budget utilization rate across departments: %.2f%%\n", d.MeanUtilization)
	fmt.Fprintf(b, "\nBudget Utilization by Department (Top %d):\n", r.cfg.TopN)
	for _, row := range top(d.Utilization, r.cfg.TopN) {
		fmt.Fprintf(b, "  %-40s %6.1f%%\n", row.Name, row.Rate)
	}
	if tail := bottom(d.Utilization, 3); len(tail) > 0 {
		fmt.Fprintf(b, "\nLowest Budget Utilization Departments:\n")
		for _, row := range tail {
			fmt.Fprintf(b, "  %-40s %6.1f%%\n", row.Name, row.Rate)
		}
	}
}

func (r *TextRenderer) salarySection(b *strings.Builder, d *report.SalaryData) {
	r.header(b, "SALARY ANALYSIS")

	fmt.Fprintf(b, "\nSalary Distribution Statistics:\n")
	fmt.Fprintf(b, "  %-15s %15d\n", "count", d.Distribution.Count)
	fmt.Fprintf(b, "  %-15s %s\n", "mean", r.moneyCol(d.Distribution.Mean))
	fmt.Fprintf(b, "  %-15s %s\n", "std", r.moneyCol(d.Distribution.StdDev))
	fmt.Fprintf(b, "  %-15s %s\n", "min", r.moneyCol(d.Distribution.Min))
	fmt.Fprintf(b, "  %-15s %s\n", "25%", r.moneyCol(d.Distribution.Q1))
	fmt.Fprintf(b, "  %-15s %s\n", "50%", r.moneyCol(d.Distribution.Median))
	fmt.Fprintf(b, "  %-15s %s\n", "75%", r.moneyCol(d.Distribution.Q3))
	fmt.Fprintf(b, "  %-15s %s\n", "max", r.moneyCol(d.Distribution.Max))

	fmt.Fprintf(b, "\nTotal Salary Fund (monthly): %s\n", r.money(d.MonthlyFundTotal))
	fmt.Fprintf(b, "Total Salary Fund (annual):  %s\n", r.money(d.AnnualFundTotal))

	fmt.Fprintf(b, "\nMonthly Salary Fund by Department (Top %d):\n", r.cfg.TopN)
	r.amountRows(b, top(d.DepartmentFunds, r.cfg.TopN))

	if len(d.Outliers) == 0 {
		fmt.Fprintf(b, "\nSalary Outliers: None identified\n")
	} else {
		fmt.Fprintf(b, "\nSalary Outliers Identified: %d employees\n", len(d.Outliers))
		fmt.Fprintf(b, "  (salaries outside [%.0f, %.0f], fence multiplier %.1f)\n",
			d.Fence.Lower, d.Fence.Upper, d.Fence.Multiplier)
		for _, o := range d.Outliers {
			fmt.Fprintf(b, "  %-12s %-30s %s\n", o.EmployeeID, o.DepartmentName, r.money(o.Salary))
		}
	}
}

func (r *TextRenderer) roiSection(b *strings.Builder, d *report.RoiData) {
	r.header(b, "ROI ANALYSIS")

	fmt.Fprintf(b, "\nCompany-Wide ROI: %.2f%%\n", d.CompanyROI*100)
	fmt.Fprintf(b, "Projects: %d total, %d with defined ROI, %d completed\n",
		d.TotalProjects, d.EligibleProjects, d.CompletedProjects)

	if d.Best != nil && d.Worst != nil {
		fmt.Fprintf(b, "\nMost Effective Department:  %s (%.2f%%)\n", d.Best.Name, d.Best.ROI*100)
		fmt.Fprintf(b, "Least Effective Department: %s (%.2f%%)\n", d.Worst.Name, d.Worst.ROI*100)
	}

	if len(d.Departments) > 0 {
		fmt.Fprintf(b, "\nDepartment ROI Ranking (Top %d):\n", r.cfg.TopN)
		for _, row := range top(d.Departments, r.cfg.TopN) {
			fmt.Fprintf(b, "  %-40s %7.2f%%\n", row.Name, row.ROI*100)
		}
	}

	if d.Correlation != nil {
		fmt.Fprintf(b, "\nBudget/ROI Correlation: %.3f (%s, %s)\n",
			d.Correlation.Coefficient, d.Correlation.Strength, d.Correlation.Direction)
	} else {
		fmt.Fprintf(b, "\nBudget/ROI Correlation: not defined\n")
	}
}

func (r *TextRenderer) costSection(b *strings.Builder, d *report.CostData) {
	r.header(b, "COST OPTIMIZATION ANALYSIS")

	fmt.Fprintf(b, "\nTotal Equipment Purchase Cost:   %s\n", r.money(d.TotalPurchaseCost))
	fmt.Fprintf(b, "Total Monthly Maintenance Cost:  %s\n", r.money(d.TotalMonthlyUpkeep))
	fmt.Fprintf(b, "Total Annual Maintenance Cost:   %s\n", r.money(d.TotalAnnualUpkeep))
	fmt.Fprintf(b, "Annual Maintenance / Purchase:   %.1f%%\n", d.MaintenanceRatio)

	if len(d.Departments) > 0 {
		fmt.Fprintf(b, "\nMonthly Maintenance by Department (Top %d):\n", r.cfg.TopN)
		r.amountRows(b, top(d.Departments, r.cfg.TopN))
	}

	if d.MostExpensive != nil {
		fmt.Fprintf(b, "\nMost Expensive Equipment:\n")
		fmt.Fprintf(b, "  %s (%s) in %s\n", d.MostExpensive.Name, d.MostExpensive.Type, d.MostExpensive.DepartmentName)
		fmt.Fprintf(b, "  Monthly: %s  Annual: %s\n",
			r.money(d.MostExpensive.MonthlyUpkeep), r.money(d.MostExpensive.AnnualUpkeep))
	}

	r.recommendations(b, d.Recommendations)
}

func (r *TextRenderer) planningSection(b *strings.Builder, d *report.PlanningData) {
	r.header(b, "FINANCIAL PLANNING ANALYSIS")

	fmt.Fprintf(b, "\nAnnual Fixed Costs:  %s\n", r.money(d.FixedCostsAnnual))
	fmt.Fprintf(b, "Assumed Margin Ratio: %.2f\n", d.MarginRatio)
	fmt.Fprintf(b, "Break-Even Revenue:  %s\n", r.money(d.BreakEvenRevenue))

	if len(d.HighROIDepartments) > 0 {
		fmt.Fprintf(b, "\nDepartments Above Company-Wide ROI:\n")
		for _, row := range d.HighROIDepartments {
			fmt.Fprintf(b, "  %-40s %7.2f%%\n", row.Name, row.ROI*100)
		}
	} else {
		fmt.Fprintf(b, "\nDepartments Above Company-Wide ROI: none\n")
	}

	r.recommendations(b, d.Recommendations)
}

// summarySection compiles the key findings across all analyses, mirroring
// the closing section of the console report.
func (r *TextRenderer) summarySection(b *strings.Builder, agg *report.Aggregate) {
	r.header(b, "COMPREHENSIVE FINANCIAL ANALYSIS SUMMARY")

	fmt.Fprintf(b, "\nKEY PERFORMANCE INDICATORS:\n")
	if agg.Budget != nil {
		fmt.Fprintf(b, "- Total Budget: %s\n", r.money(agg.Budget.TotalBudget))
		if agg.Budget.HighestPerEmployee != nil {
			fmt.Fprintf(b, "- Highest Budget/Employee Dept: %s (%s)\n",
				agg.Budget.HighestPerEmployee.Name, r.money(agg.Budget.HighestPerEmployee.PerEmployee))
		}
		if agg.Budget.LowestPerEmployee != nil {
			fmt.Fprintf(b, "- Lowest Budget/Employee Dept: %s (%s)\n",
				agg.Budget.LowestPerEmployee.Name, r.money(agg.Budget.LowestPerEmployee.PerEmployee))
		}
	}
	if agg.Salary != nil {
		fmt.Fprintf(b, "- Salary Outliers Identified: %d employees\n", len(agg.Salary.Outliers))
	}
	if agg.ROI != nil {
		fmt.Fprintf(b, "- Company-Wide ROI: %.2f%%\n", agg.ROI.CompanyROI*100)
		if agg.ROI.Best != nil {
			fmt.Fprintf(b, "- Most Effective ROI Department: %s\n", agg.ROI.Best.Name)
		}
		if agg.ROI.Worst != nil {
			fmt.Fprintf(b, "- Least Effective ROI Department: %s\n", agg.ROI.Worst.Name)
		}
		if agg.ROI.Correlation != nil {
			fmt.Fprintf(b, "- ROI-Budget Correlation: %.3f\n", agg.ROI.Correlation.Coefficient)
		}
	}
	if agg.Cost != nil {
		fmt.Fprintf(b, "- Total Equipment Purchase Cost: %s\n", r.money(agg.Cost.TotalPurchaseCost))
		fmt.Fprintf(b, "- Total Annual Maintenance Cost: %s\n", r.money(agg.Cost.TotalAnnualUpkeep))
		if agg.Cost.TopSpender != nil {
			fmt.Fprintf(b, "- Highest Operational Cost Dept: %s (%s monthly)\n",
				agg.Cost.TopSpender.Name, r.money(agg.Cost.TopSpender.Amount))
		}
	}
	if agg.Planning != nil {
		fmt.Fprintf(b, "- Break-Even Revenue: %s\n", r.money(agg.Planning.BreakEvenRevenue))
	}

	var recs []string
	if agg.Cost != nil {
		recs = append(recs, agg.Cost.Recommendations...)
	}
	if agg.Planning != nil {
		recs = append(recs, agg.Planning.Recommendations...)
	}
	if agg.Salary != nil && len(agg.Salary.Outliers) > 0 {
		recs = append(recs, fmt.Sprintf("review salary structure for %d identified outliers", len(agg.Salary.Outliers)))
	}
	if len(recs) > 0 {
		fmt.Fprintf(b, "\nSTRATEGIC RECOMMENDATIONS:\n")
		for i, rec := range recs {
			fmt.Fprintf(b, "%d. %s\n", i+1, rec)
		}
	}

	b.WriteString("\n" + strings.Repeat("=", separatorWidth) + "\n")
}

func (r *TextRenderer) header(b *strings.Builder, title string) {
	sep := strings.Repeat("=", separatorWidth)
	fmt.Fprintf(b, "%s\n%s\n%s\n", sep, title, sep)
}

func (r *TextRenderer) recommendations(b *strings.Builder, recs []string) {
	if len(recs) == 0 {
		return
	}
	fmt.Fprintf(b, "\nRecommendations:\n")
	for i, rec := range recs {
		fmt.Fprintf(b, "%d. %s\n", i+1, rec)
	}
}

func (r *TextRenderer) amountRows(b *strings.Builder, rows []report.DepartmentAmount) {
	for _, row := range rows {
		fmt.Fprintf(b, "  %-40s %s\n", row.Name, r.moneyCol(row.Amount))
	}
}

// money renders an amount with the configured currency label.
func (r *TextRenderer) money(v float64) string {
	return fmt.Sprintf("%.0f %s", v, r.cfg.Currency)
}

// moneyCol right-aligns an amount for tabular rows.
func (r *TextRenderer) moneyCol(v float64) string {
	return fmt.Sprintf("%12.0f %s", v, r.cfg.Currency)
}

// top returns the first n elements of s, or all of them if fewer.
func top[T any](s []T, n int) []T {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// bottom returns the last n elements of s in ranking order, or all of them
// if fewer.
func bottom[T any](s []T, n int) []T {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
