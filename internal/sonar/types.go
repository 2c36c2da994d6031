package sonar

// ComponentMeasures is the response of api/measures/component.
type ComponentMeasures struct {
	Component struct {
		Key      string    `json:"key"`
		Name     string    `json:"name"`
		Measures []Measure `json:"measures"`
	} `json:"component"`
}

// Measure is a single metric/value pair. Values are returned as strings by
// the server, including numeric metrics and rating codes ("1.0".."5.0").
type Measure struct {
	Metric string `json:"metric"`
	Value  string `json:"value"`
}

// IssuesSearch is the response of api/issues/search.
type IssuesSearch struct {
	Total  int     `json:"total"`
	Paging Paging  `json:"paging"`
	Issues []Issue `json:"issues"`
}

type Paging struct {
	PageIndex int `json:"pageIndex"`
	PageSize  int `json:"pageSize"`
	Total     int `json:"total"`
}

// Issue is a single unresolved issue record, carried verbatim from the
// server response.
type Issue struct {
	Key       string `json:"key"`
	Rule      string `json:"rule"`
	Severity  string `json:"severity"`
	Type      string `json:"type"`
	Component string `json:"component"`
	Line      *int   `json:"line,omitempty"`
	Message   string `json:"message"`
	IsNew     bool   `json:"isNew,omitempty"`
}

// QualityGate is the response of api/qualitygates/project_status.
type QualityGate struct {
	ProjectStatus struct {
		Status     string          `json:"status"`
		Conditions []GateCondition `json:"conditions,omitempty"`
	} `json:"projectStatus"`
}

type GateCondition struct {
	Status         string `json:"status"`
	MetricKey      string `json:"metricKey"`
	Comparator     string `json:"comparator"`
	ErrorThreshold string `json:"errorThreshold,omitempty"`
	ActualValue    string `json:"actualValue,omitempty"`
}

// Status returns the gate verdict, or "UNKNOWN" when the response is missing
// or carries no status. Safe to call on a nil receiver.
func (q *QualityGate) Status() string {
	if q == nil || q.ProjectStatus.Status == "" {
		return "UNKNOWN"
	}
	return q.ProjectStatus.Status
}
