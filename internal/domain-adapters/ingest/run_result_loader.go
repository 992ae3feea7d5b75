// Package ingest loads run_result_v1 payloads produced by the upstream
// analyzer into typed entities.
package ingest

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/HanzoRazer/contractsync/internal/domain/entities"
)

// LoadRunResult parses a run_result_v1 JSON payload. Payloads with any
// other schema_version are rejected before full decoding.
func LoadRunResult(data []byte) (*entities.RunResult, error) {
	var probe struct {
		SchemaVersion string `json:"schema_version"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("failed to parse run result: %w", err)
	}
	if probe.SchemaVersion != entities.RunResultSchemaVersion {
		return nil, fmt.Errorf("unsupported schema_version %q (want %s)",
			probe.SchemaVersion, entities.RunResultSchemaVersion)
	}

	var result entities.RunResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to decode run result: %w", err)
	}

	return &result, nil
}

// LoadRunResultFile reads and parses a run_result_v1 file.
func LoadRunResultFile(path string) (*entities.RunResult, error) {
	//nolint:gosec // G304: path is the caller-provided payload to load
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return LoadRunResult(data)
}
