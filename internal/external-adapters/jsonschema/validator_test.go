package jsonschema

import (
	"encoding/json"
	"strings"
	"testing"
)

const vendoredSchemaPath = "../../../contracts/run_result.schema.json"

const validRunResult = `{
  "schema_version": "run_result_v1",
  "run": {
    "run_id": "test-run-001",
    "created_at": "2026-08-20T12:00:00Z",
    "tool_version": "1.0.0",
    "engine_version": "1.0.0",
    "signal_logic_version": "1.0.0",
    "copy_version": "1.0.0"
  },
  "summary": {
    "vibe_tier": "green",
    "confidence_score": 85,
    "counts": {
      "findings_total": 1,
      "by_severity": {"medium": 1},
      "by_type": {"dead_code": 1}
    }
  },
  "signals_snapshot": [
    {
      "signal_id": "sig-001",
      "type": "dead_code_cluster",
      "risk_level": "yellow",
      "urgency": "recommended"
    }
  ],
  "findings_raw": [
    {
      "finding_id": "f-001",
      "type": "dead_code",
      "severity": "medium",
      "confidence": 0.9,
      "fingerprint": "abc123",
      "message": "unreachable branch",
      "location": {
        "path": "src/app.py",
        "line_start": 10,
        "line_end": 12
      },
      "metadata": {"rule_id": "DC_UNREACHABLE_001"}
    }
  ]
}`

// mutate decodes the valid payload, applies fn, and re-encodes it.
func mutate(t *testing.T, fn func(doc map[string]interface{})) []byte {
	t.Helper()
	var doc map[string]interface{}
	if err := json.Unmarshal([]byte(validRunResult), &doc); err != nil {
		t.Fatalf("fixture does not parse: %v", err)
	}
	fn(doc)
	out, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("re-encode failed: %v", err)
	}
	return out
}

func TestValidator_ValidPayload(t *testing.T) {
	v, err := NewValidatorFromFile(vendoredSchemaPath)
	if err != nil {
		t.Fatalf("NewValidatorFromFile() error = %v", err)
	}
	if err := v.Validate([]byte(validRunResult)); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

func TestValidator_InvalidPayloads(t *testing.T) {
	v, err := NewValidatorFromFile(vendoredSchemaPath)
	if err != nil {
		t.Fatalf("NewValidatorFromFile() error = %v", err)
	}

	tests := []struct {
		name   string
		mutate func(doc map[string]interface{})
	}{
		{
			name:   "missing run section",
			mutate: func(doc map[string]interface{}) { delete(doc, "run") },
		},
		{
			name:   "missing summary section",
			mutate: func(doc map[string]interface{}) { delete(doc, "summary") },
		},
		{
			name: "wrong schema_version",
			mutate: func(doc map[string]interface{}) {
				doc["schema_version"] = "run_result_v2"
			},
		},
		{
			name: "invalid vibe_tier",
			mutate: func(doc map[string]interface{}) {
				doc["summary"].(map[string]interface{})["vibe_tier"] = "purple"
			},
		},
		{
			name: "confidence_score over 100",
			mutate: func(doc map[string]interface{}) {
				doc["summary"].(map[string]interface{})["confidence_score"] = 150
			},
		},
		{
			name: "empty run_id",
			mutate: func(doc map[string]interface{}) {
				doc["run"].(map[string]interface{})["run_id"] = ""
			},
		},
		{
			name: "invalid finding severity",
			mutate: func(doc map[string]interface{}) {
				finding := doc["findings_raw"].([]interface{})[0].(map[string]interface{})
				finding["severity"] = "extreme"
			},
		},
		{
			name: "line_start below one",
			mutate: func(doc map[string]interface{}) {
				finding := doc["findings_raw"].([]interface{})[0].(map[string]interface{})
				finding["location"].(map[string]interface{})["line_start"] = 0
			},
		},
		{
			name: "invalid signal urgency",
			mutate: func(doc map[string]interface{}) {
				signal := doc["signals_snapshot"].([]interface{})[0].(map[string]interface{})
				signal["urgency"] = "immediately"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := v.Validate(mutate(t, tt.mutate)); err == nil {
				t.Error("Validate() should reject the mutated payload")
			}
		})
	}
}

func TestValidator_RejectsMalformedJSON(t *testing.T) {
	v, err := NewValidatorFromFile(vendoredSchemaPath)
	if err != nil {
		t.Fatalf("NewValidatorFromFile() error = %v", err)
	}

	err = v.Validate([]byte("{not json"))
	if err == nil {
		t.Fatal("Validate() should fail on malformed JSON")
	}
	if !strings.Contains(err.Error(), "invalid JSON") {
		t.Errorf("Validate() error = %v, want invalid JSON mentioned", err)
	}
}

func TestNewValidator_InMemorySchema(t *testing.T) {
	schema := []byte(`{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"type": "object",
		"required": ["name"],
		"properties": {"name": {"type": "string", "minLength": 1}}
	}`)

	v, err := NewValidator("inline.json", schema)
	if err != nil {
		t.Fatalf("NewValidator() error = %v", err)
	}
	if err := v.Validate([]byte(`{"name": "ok"}`)); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
	if err := v.Validate([]byte(`{}`)); err == nil {
		t.Error("Validate() should reject a payload missing required fields")
	}
}

func TestNewValidatorFromFile_MissingFile(t *testing.T) {
	if _, err := NewValidatorFromFile("does-not-exist.schema.json"); err == nil {
		t.Error("NewValidatorFromFile() should fail for a missing schema")
	}
}
