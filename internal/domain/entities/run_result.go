package entities

// RunResultSchemaVersion is the only interchange version this tool
// understands. Payloads carrying any other value are rejected.
const RunResultSchemaVersion = "run_result_v1"

// Location is a source code location inside the analyzed project.
type Location struct {
	Path      string `json:"path"`
	LineStart int    `json:"line_start"`
	LineEnd   int    `json:"line_end"`
}

// Finding is a single raw finding emitted by the upstream analyzer.
type Finding struct {
	FindingID   string         `json:"finding_id"`
	Type        string         `json:"type"`
	Severity    string         `json:"severity"`
	Message     string         `json:"message,omitempty"`
	Location    Location       `json:"location"`
	Confidence  float64        `json:"confidence"`
	Fingerprint string         `json:"fingerprint,omitempty"`
	Snippet     string         `json:"snippet,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// RuleID extracts the rule identifier from the finding metadata, if any.
func (f *Finding) RuleID() string {
	if v, ok := f.Metadata["rule_id"].(string); ok {
		return v
	}
	return ""
}

// Signal is an aggregated group of findings with an assessed risk.
type Signal struct {
	SignalID  string         `json:"signal_id"`
	Type      string         `json:"type"`
	RiskLevel string         `json:"risk_level"`
	Urgency   string         `json:"urgency"`
	Evidence  map[string]any `json:"evidence,omitempty"`
}

// RunMetadata identifies the analysis run that produced a result.
type RunMetadata struct {
	RunID              string `json:"run_id"`
	CreatedAt          string `json:"created_at,omitempty"`
	ToolVersion        string `json:"tool_version"`
	EngineVersion      string `json:"engine_version"`
	SignalLogicVersion string `json:"signal_logic_version"`
	CopyVersion        string `json:"copy_version,omitempty"`
}

// RunResult is a parsed run_result_v1 payload.
type RunResult struct {
	SchemaVersion string         `json:"schema_version"`
	Run           RunMetadata    `json:"run"`
	Findings      []Finding      `json:"findings_raw"`
	Signals       []Signal       `json:"signals_snapshot"`
	Summary       map[string]any `json:"summary"`
}

// FindingsByRule returns all findings carrying the given rule_id.
func (r *RunResult) FindingsByRule(ruleID string) []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.RuleID() == ruleID {
			out = append(out, f)
		}
	}
	return out
}

// FindingsByType returns all findings of the given type.
func (r *RunResult) FindingsByType(findingType string) []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Type == findingType {
			out = append(out, f)
		}
	}
	return out
}
