package yaml

import (
	"fmt"
	"os"

	"github.com/HanzoRazer/contractsync/internal/domain/entities"
)

// DefaultManifestPath is the conventional manifest location. When the
// file is absent the built-in default manifest applies instead.
const DefaultManifestPath = "contracts.yml"

// ManifestRepository loads the contract manifest from a YAML file with a
// built-in fallback mirroring the upstream pair list.
type ManifestRepository struct {
	path   string
	parser *ManifestParser
}

// NewManifestRepository creates a new YAML-based manifest repository
func NewManifestRepository(path string) *ManifestRepository {
	if path == "" {
		path = DefaultManifestPath
	}
	return &ManifestRepository{
		path:   path,
		parser: NewManifestParser(),
	}
}

// Load returns the parsed manifest. A missing file at the default path
// yields the built-in default; a missing file at an explicit path is an
// error.
func (r *ManifestRepository) Load() (*entities.Manifest, error) {
	if _, err := os.Stat(r.path); os.IsNotExist(err) {
		if r.path == DefaultManifestPath {
			return DefaultManifest(), nil
		}
		return nil, fmt.Errorf("manifest not found: %s", r.path)
	}

	return r.parser.ParseFile(r.path)
}

// DefaultManifest is the hard-wired pair list used when no manifest file
// is present: the upstream producer repo and its two contract artifacts.
func DefaultManifest() *entities.Manifest {
	return &entities.Manifest{
		Owner: "HanzoRazer",
		Repo:  "code-analysis-tool",
		Ref:   "main",
		Pairs: []entities.ContractPair{
			{
				Name:         "schema",
				UpstreamPath: "schemas/run_result.schema.json",
				LocalPath:    "contracts/run_result.schema.json",
			},
			{
				Name:         "registry",
				UpstreamPath: "schemas/rule_registry.json",
				LocalPath:    "contracts/rule_registry.json",
				Registry:     true,
			},
		},
	}
}
