package report

// RoiData is the complete result of the ROI analysis.
//
// Both department and company ROI are value-weighted: summed returns minus
// summed investments over summed investments, never means of per-project
// ratios. Projects with investment <= 0 have no defined ROI and are excluded
// from every aggregate.
type RoiData struct {
	// Report contains the common report header fields.
	Report ReportHeader `yaml:"report" json:"report"`

	// CompanyROI is the value-weighted ROI over all eligible projects,
	// zero when no project is eligible.
	CompanyROI float64 `yaml:"company_roi" json:"company_roi"`

	// TotalProjects, EligibleProjects, and CompletedProjects count the
	// snapshot's projects, those with a defined ROI, and those with
	// completed status. Status never affects eligibility.
	TotalProjects     int `yaml:"total_projects" json:"total_projects"`
	EligibleProjects  int `yaml:"eligible_projects" json:"eligible_projects"`
	CompletedProjects int `yaml:"completed_projects" json:"completed_projects"`

	// Departments ranks departments by department-level ROI, descending.
	// Departments with no eligible projects are absent.
	Departments []DepartmentROI `yaml:"departments" json:"departments"`

	// Best and Worst are the extremes of the ranking, nil when no
	// department has a defined ROI.
	Best  *DepartmentROI `yaml:"best,omitempty" json:"best,omitempty"`
	Worst *DepartmentROI `yaml:"worst,omitempty" json:"worst,omitempty"`

	// Correlation describes the relation between allocated budget and
	// department ROI. Nil when fewer than two departments have a defined
	// ROI or when either series has no variance.
	Correlation *CorrelationData `yaml:"correlation,omitempty" json:"correlation,omitempty"`
}

// DepartmentROI is one department's value-weighted ROI over its own
// eligible projects.
type DepartmentROI struct {
	DepartmentID string  `yaml:"department_id" json:"department_id"`
	Name         string  `yaml:"name" json:"name"`
	Investment   float64 `yaml:"investment" json:"investment"`
	Return       float64 `yaml:"return" json:"return"`
	ROI          float64 `yaml:"roi" json:"roi"`
	Projects     int     `yaml:"projects" json:"projects"`
}

// CorrelationStrength is the qualitative label for a correlation magnitude.
type CorrelationStrength string

const (
	CorrelationWeak     CorrelationStrength = "weak"
	CorrelationModerate CorrelationStrength = "moderate"
	CorrelationStrong   CorrelationStrength = "strong"
)

// CorrelationDirection reports the sign of the coefficient.
type CorrelationDirection string

const (
	CorrelationPositive CorrelationDirection = "positive"
	CorrelationNegative CorrelationDirection = "negative"
)

// CorrelationData is a Pearson correlation coefficient with its qualitative
// classification. Strength is computed on |r|; the sign is carried
// separately in Direction.
type CorrelationData struct {
	Coefficient float64              `yaml:"coefficient" json:"coefficient"`
	Strength    CorrelationStrength  `yaml:"strength" json:"strength"`
	Direction   CorrelationDirection `yaml:"direction" json:"direction"`
}

// NewRoiData creates a RoiData with an initialized header and empty ranking.
func NewRoiData() *RoiData {
	return &RoiData{
		Report:      newHeader(KindROI),
		Departments: []DepartmentROI{},
	}
}

// ResultKind implements Result.
func (r *RoiData) ResultKind() Kind { return KindROI }
