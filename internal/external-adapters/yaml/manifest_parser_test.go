package yaml

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validManifest = `
upstream:
  owner: HanzoRazer
  repo: code-analysis-tool
  ref: v2.1.0

keyring: keys/maintainers.asc

contracts:
  - name: schema
    upstream: schemas/run_result.schema.json
    local: contracts/run_result.schema.json
  - name: registry
    upstream: schemas/rule_registry.json
    local: contracts/rule_registry.json
    registry: true
`

func TestManifestParser_Parse(t *testing.T) {
	parser := NewManifestParser()

	manifest, err := parser.Parse([]byte(validManifest))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if manifest.Owner != "HanzoRazer" {
		t.Errorf("Owner = %q, want HanzoRazer", manifest.Owner)
	}
	if manifest.Repo != "code-analysis-tool" {
		t.Errorf("Repo = %q, want code-analysis-tool", manifest.Repo)
	}
	if manifest.Ref != "v2.1.0" {
		t.Errorf("Ref = %q, want v2.1.0", manifest.Ref)
	}
	if manifest.Keyring != "keys/maintainers.asc" {
		t.Errorf("Keyring = %q, want keys/maintainers.asc", manifest.Keyring)
	}
	if len(manifest.Pairs) != 2 {
		t.Fatalf("Pairs = %d, want 2", len(manifest.Pairs))
	}
	if manifest.Pairs[0].Registry {
		t.Error("schema pair should not be flagged as registry")
	}
	if !manifest.Pairs[1].Registry {
		t.Error("registry pair should be flagged as registry")
	}
	if manifest.Pairs[1].LocalPath != "contracts/rule_registry.json" {
		t.Errorf("registry LocalPath = %q", manifest.Pairs[1].LocalPath)
	}
}

func TestManifestParser_Parse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "malformed YAML",
			yaml:    "upstream: [unclosed",
			wantErr: "failed to parse YAML",
		},
		{
			name: "missing owner",
			yaml: `
upstream:
  repo: code-analysis-tool
contracts:
  - name: schema
    upstream: a
    local: b
`,
			wantErr: "upstream.owner",
		},
		{
			name: "no contracts",
			yaml: `
upstream:
  owner: HanzoRazer
  repo: code-analysis-tool
`,
			wantErr: "at least one contract",
		},
		{
			name: "contract missing local path",
			yaml: `
upstream:
  owner: HanzoRazer
  repo: code-analysis-tool
contracts:
  - name: schema
    upstream: schemas/run_result.schema.json
`,
			wantErr: "upstream and local paths",
		},
	}

	parser := NewManifestParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("Parse() should fail")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Parse() error = %v, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestManifestParser_ParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contracts.yml")
	if err := os.WriteFile(path, []byte(validManifest), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	manifest, err := NewManifestParser().ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	if len(manifest.Pairs) != 2 {
		t.Errorf("Pairs = %d, want 2", len(manifest.Pairs))
	}

	if _, err := NewManifestParser().ParseFile(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Error("ParseFile() should fail for a missing file")
	}
}
