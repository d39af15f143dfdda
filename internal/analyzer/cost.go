package analyzer

import (
	"fmt"
	"sort"

	"github.com/hargabyte/finlens/internal/config"
	"github.com/hargabyte/finlens/internal/dataset"
	"github.com/hargabyte/finlens/internal/logging"
	"github.com/hargabyte/finlens/internal/report"
)

// Cost analyzes equipment spending: purchase and maintenance totals, the
// departmental operational cost ranking, the single most expensive item,
// and rule-based recommendations.
type Cost struct {
	cfg  config.AnalysisConfig
	lggr logging.Logger
}

// NewCost creates a cost optimization analyzer. Recommendation thresholds
// come from cfg.
func NewCost(cfg config.AnalysisConfig, lggr logging.Logger) *Cost {
	return &Cost{cfg: cfg, lggr: lggr.Named("cost")}
}

// Kind implements Analyzer.
func (c *Cost) Kind() report.Kind { return report.KindCost }

// Analyze implements Analyzer.
func (c *Cost) Analyze(snap *dataset.Snapshot) report.Result {
	c.lggr.Debugw("starting cost analysis", "equipment", len(snap.Equipment))

	res := report.NewCostData()

	byDept := make(map[string]float64, len(snap.Department))
	var top *dataset.Equipment
	for i, eq := range snap.Equipment {
		res.TotalPurchaseCost += eq.PurchaseCost
		res.TotalMonthlyUpkeep += eq.MonthlyUpkeep
		byDept[eq.DepartmentID] += eq.MonthlyUpkeep

		// Strict comparison keeps the first item on ties.
		if top == nil || eq.MonthlyUpkeep > top.MonthlyUpkeep {
			top = &snap.Equipment[i]
		}
	}
	res.TotalAnnualUpkeep = res.TotalMonthlyUpkeep * 12

	if res.TotalPurchaseCost > 0 {
		res.MaintenanceRatio = res.TotalAnnualUpkeep / res.TotalPurchaseCost * 100
	}

	for _, d := range snap.Department {
		total, ok := byDept[d.ID]
		if !ok {
			continue
		}
		res.Departments = append(res.Departments, report.DepartmentAmount{
			DepartmentID: d.ID,
			Name:         d.Name,
			Amount:       total,
		})
	}
	sort.SliceStable(res.Departments, func(i, j int) bool {
		return res.Departments[i].Amount > res.Departments[j].Amount
	})

	if len(res.Departments) > 0 {
		spender := res.Departments[0]
		res.TopSpender = &spender
	}

	if top != nil {
		res.MostExpensive = &report.EquipmentCost{
			EquipmentID:    top.ID,
			Name:           top.Name,
			Type:           top.Type,
			DepartmentID:   top.DepartmentID,
			DepartmentName: snap.DepartmentName(top.DepartmentID),
			MonthlyUpkeep:  top.MonthlyUpkeep,
			AnnualUpkeep:   top.AnnualUpkeep(),
		}
	}

	res.Recommendations = c.recommend(res)

	c.lggr.Debugw("cost analysis complete",
		"total_purchase", res.TotalPurchaseCost,
		"monthly_upkeep", res.TotalMonthlyUpkeep,
		"recommendations", len(res.Recommendations))
	return res
}

// recommend derives recommendations from the computed figures. The rules
// are pure: the same metrics always produce the same text.
func (c *Cost) recommend(res *report.CostData) []string {
	recs := []string{}

	if res.TotalPurchaseCost > 0 && res.MaintenanceRatio > c.cfg.MaintenanceRatioAlert {
		recs = append(recs, fmt.Sprintf(
			"review maintenance contracts: annual maintenance is %.1f%% of equipment value (threshold %.1f%%)",
			res.MaintenanceRatio, c.cfg.MaintenanceRatioAlert))
	}

	if res.TopSpender != nil && res.TotalMonthlyUpkeep > 0 {
		share := res.TopSpender.Amount / res.TotalMonthlyUpkeep * 100
		if share > c.cfg.CostConcentrationAlert {
			recs = append(recs, fmt.Sprintf(
				"audit equipment spending in %s: %.1f%% of monthly maintenance is concentrated there",
				res.TopSpender.Name, share))
		}
	}

	return recs
}
