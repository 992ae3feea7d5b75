// Package entities defines core domain models and data structures.
package entities

// ContractPair maps one upstream file to its vendored local copy.
type ContractPair struct {
	Name         string // short identifier, e.g. "schema" or "registry"
	UpstreamPath string // path inside the upstream repository
	LocalPath    string // vendored path relative to the repository root
	Registry     bool   // true for the optional rule-registry artifact
}

// Manifest names the upstream source of truth and the contract pairs
// mirrored from it.
type Manifest struct {
	Owner   string
	Repo    string
	Ref     string // default ref; overridable per invocation
	Keyring string // optional armored keyring for signature verification
	Pairs   []ContractPair
}

// SyncConfig is the resolved configuration for one run. It is built once
// at process start and passed by value; nothing below the cmd layer reads
// the environment.
type SyncConfig struct {
	Owner         string
	Repo          string
	Ref           string
	CheckRegistry bool
}

// CheckStatus classifies one contract pair in a check run.
type CheckStatus string

// Check statuses for a vendored contract compared against upstream.
const (
	CheckOK       CheckStatus = "ok"
	CheckMissing  CheckStatus = "missing"
	CheckMismatch CheckStatus = "mismatch"
)

// CheckResult is the outcome for a single contract pair.
type CheckResult struct {
	Pair           ContractPair
	Status         CheckStatus
	UpstreamURL    string
	UpstreamSHA256 string
	LocalSHA256    string
}

// CheckReport aggregates the results of a check run against one ref.
type CheckReport struct {
	Ref     string
	Results []CheckResult
}

// Failed reports whether any pair is missing or out of sync.
func (r *CheckReport) Failed() bool {
	for _, res := range r.Results {
		if res.Status != CheckOK {
			return true
		}
	}
	return false
}

// RuleRegistry is the secondary contract artifact: the registry of
// detection-rule identifiers both tools agree on.
type RuleRegistry struct {
	SchemaVersion    string   `json:"schema_version,omitempty"`
	SupportedRuleIDs []string `json:"supported_rule_ids"`
}
