// Package yaml provides YAML-based manifest parsing and repository
// implementations.
package yaml

import (
	"fmt"
	"os"

	"github.com/HanzoRazer/contractsync/internal/domain/entities"
	"gopkg.in/yaml.v3"
)

// yamlManifest represents the raw YAML structure
type yamlManifest struct {
	Upstream  yamlUpstream   `yaml:"upstream"`
	Keyring   string         `yaml:"keyring"`
	Contracts []yamlContract `yaml:"contracts"`
}

type yamlUpstream struct {
	Owner string `yaml:"owner"`
	Repo  string `yaml:"repo"`
	Ref   string `yaml:"ref"`
}

type yamlContract struct {
	Name     string `yaml:"name"`
	Upstream string `yaml:"upstream"`
	Local    string `yaml:"local"`
	Registry bool   `yaml:"registry"`
}

// ManifestParser parses YAML contract manifests
type ManifestParser struct{}

// NewManifestParser creates a new YAML parser
func NewManifestParser() *ManifestParser {
	return &ManifestParser{}
}

// ParseFile parses a YAML manifest file into a Manifest entity
func (p *ManifestParser) ParseFile(filePath string) (*entities.Manifest, error) {
	//nolint:gosec // G304: filePath is the manifest path from the repository
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}

	return p.Parse(data)
}

// Parse parses YAML bytes into a Manifest entity
func (p *ManifestParser) Parse(data []byte) (*entities.Manifest, error) {
	var raw yamlManifest
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Validate required fields
	if raw.Upstream.Owner == "" || raw.Upstream.Repo == "" {
		return nil, fmt.Errorf("manifest must name upstream.owner and upstream.repo")
	}
	if len(raw.Contracts) == 0 {
		return nil, fmt.Errorf("manifest must list at least one contract")
	}

	manifest := &entities.Manifest{
		Owner:   raw.Upstream.Owner,
		Repo:    raw.Upstream.Repo,
		Ref:     raw.Upstream.Ref,
		Keyring: raw.Keyring,
	}

	for _, c := range raw.Contracts {
		if c.Upstream == "" || c.Local == "" {
			return nil, fmt.Errorf("contract %q must name upstream and local paths", c.Name)
		}
		manifest.Pairs = append(manifest.Pairs, entities.ContractPair{
			Name:         c.Name,
			UpstreamPath: c.Upstream,
			LocalPath:    c.Local,
			Registry:     c.Registry,
		})
	}

	return manifest, nil
}
