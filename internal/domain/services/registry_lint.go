// Package services contains pure domain logic with no infrastructure
// dependencies.
package services

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/HanzoRazer/contractsync/internal/domain/entities"
)

// ruleIDPattern: 2-4 uppercase letter prefix, an uppercase word, and a
// 3-digit sequence, underscore separated (e.g. GST_MUTABLE_DEFAULT_001).
var ruleIDPattern = regexp.MustCompile(`^[A-Z]{2,4}_[A-Z][A-Z0-9_]*_[0-9]{3}$`)

// knownPrefixes are the rule categories the upstream analyzer emits.
var knownPrefixes = map[string]bool{
	"DC":  true,
	"GST": true,
	"SEC": true,
}

// LintRegistry checks a rule registry against the contract conventions:
// non-empty, well-formed IDs, no duplicates, sorted alphabetically, and
// at least one ID from a known category. It returns one message per
// violation; an empty slice means the registry is clean.
func LintRegistry(reg *entities.RuleRegistry) []string {
	if len(reg.SupportedRuleIDs) == 0 {
		return []string{"supported_rule_ids must be a non-empty array"}
	}

	var problems []string

	seen := make(map[string]int, len(reg.SupportedRuleIDs))
	for _, id := range reg.SupportedRuleIDs {
		if !ruleIDPattern.MatchString(id) {
			problems = append(problems, fmt.Sprintf("rule ID %q does not match %s", id, ruleIDPattern.String()))
		}
		seen[id]++
	}

	reported := make(map[string]bool)
	for _, id := range reg.SupportedRuleIDs {
		if seen[id] > 1 && !reported[id] {
			problems = append(problems, fmt.Sprintf("duplicate rule ID: %s", id))
			reported[id] = true
		}
	}

	if !sort.StringsAreSorted(reg.SupportedRuleIDs) {
		problems = append(problems, "rule IDs are not sorted alphabetically")
	}

	foundKnown := false
	for _, id := range reg.SupportedRuleIDs {
		if i := strings.IndexByte(id, '_'); i > 0 && knownPrefixes[id[:i]] {
			foundKnown = true
			break
		}
	}
	if !foundKnown {
		problems = append(problems, "no rule IDs from the known categories (DC, GST, SEC)")
	}

	return problems
}
