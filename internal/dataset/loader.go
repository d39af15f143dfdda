package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/hargabyte/finlens/internal/logging"
)

// ErrSnapshotNotFound is returned when the snapshot file does not exist.
var ErrSnapshotNotFound = errors.New("snapshot file not found")

// ErrInvalidSnapshot is returned when the snapshot file cannot be decoded.
var ErrInvalidSnapshot = errors.New("invalid snapshot")

// snapshotFile mirrors the on-disk JSON layout of a company snapshot.
type snapshotFile struct {
	Metadata    Metadata     `json:"metadata"`
	Departments []Department `json:"departments"`
	Employees   []Employee   `json:"employees"`
	Projects    []Project    `json:"projects"`
	Equipment   []Equipment  `json:"equipment"`
	KpiMetrics  []KpiMetric  `json:"kpi_metrics"`
}

// Load reads a company snapshot from path, resolves all department
// references, and returns the immutable Snapshot. A missing or malformed
// file is fatal; malformed individual records are skipped and counted in
// Stats instead of aborting the load.
func Load(path string, lggr logging.Logger) (*Snapshot, error) {
	lggr.Debugw("loading snapshot", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSnapshotNotFound, path)
		}
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var file snapshotFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}

	snap := build(file, lggr)
	lggr.Infow("snapshot loaded",
		"departments", snap.Stats.Departments,
		"employees", snap.Stats.Employees,
		"projects", snap.Stats.Projects,
		"equipment", snap.Stats.Equipment,
		"dangling_refs", snap.Stats.DanglingReferences,
		"skipped", snap.Stats.SkippedRecords,
	)
	return snap, nil
}

// build assembles a Snapshot from decoded records. Departments are indexed
// first so that every dependent record's reference can be resolved in one
// pass; records with dangling references or unusable numeric fields are
// excluded here, which keeps every analyzer free of reference checks.
func build(file snapshotFile, lggr logging.Logger) *Snapshot {
	snap := &Snapshot{
		Metadata:   file.Metadata,
		Department: make([]Department, 0, len(file.Departments)),
		Employees:  make([]Employee, 0, len(file.Employees)),
		Projects:   make([]Project, 0, len(file.Projects)),
		Equipment:  make([]Equipment, 0, len(file.Equipment)),
		KpiMetrics: make([]KpiMetric, 0, len(file.KpiMetrics)),
	}

	for _, d := range file.Departments {
		if d.ID == "" {
			lggr.Warnw("skipping department without id", "name", d.Name)
			snap.Stats.SkippedRecords++
			continue
		}
		snap.Department = append(snap.Department, d)
	}
	snap.reindex()
	snap.Stats.Departments = len(snap.Department)

	for _, e := range file.Employees {
		if _, ok := snap.byID[e.DepartmentID]; !ok {
			lggr.Warnw("excluding employee with dangling department reference",
				"employee", e.ID, "department_id", e.DepartmentID)
			snap.Stats.DanglingReferences++
			continue
		}
		if e.Salary <= 0 {
			lggr.Warnw("excluding employee with non-positive salary",
				"employee", e.ID, "salary", e.Salary)
			snap.Stats.SkippedRecords++
			continue
		}
		snap.Employees = append(snap.Employees, e)
	}
	snap.Stats.Employees = len(snap.Employees)

	for _, p := range file.Projects {
		if _, ok := snap.byID[p.DepartmentID]; !ok {
			lggr.Warnw("excluding project with dangling department reference",
				"project", p.ID, "department_id", p.DepartmentID)
			snap.Stats.DanglingReferences++
			continue
		}
		snap.Projects = append(snap.Projects, p)
	}
	snap.Stats.Projects = len(snap.Projects)

	for _, eq := range file.Equipment {
		if _, ok := snap.byID[eq.DepartmentID]; !ok {
			lggr.Warnw("excluding equipment with dangling department reference",
				"equipment", eq.ID, "department_id", eq.DepartmentID)
			snap.Stats.DanglingReferences++
			continue
		}
		if eq.PurchaseCost < 0 || eq.MonthlyUpkeep < 0 {
			lggr.Warnw("excluding equipment with negative cost",
				"equipment", eq.ID)
			snap.Stats.SkippedRecords++
			continue
		}
		snap.Equipment = append(snap.Equipment, eq)
	}
	snap.Stats.Equipment = len(snap.Equipment)

	for _, k := range file.KpiMetrics {
		if _, ok := snap.byID[k.DepartmentID]; !ok {
			snap.Stats.DanglingReferences++
			continue
		}
		snap.KpiMetrics = append(snap.KpiMetrics, k)
	}
	snap.Stats.KpiMetrics = len(snap.KpiMetrics)

	return snap
}
