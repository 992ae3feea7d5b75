package main

import (
	"os"

	"github.com/HanzoRazer/contractsync/internal/domain/entities"
	yamlrepo "github.com/HanzoRazer/contractsync/internal/external-adapters/yaml"
)

// Environment variables, read once here. Nothing below the cmd layer
// touches the environment.
const (
	envUpstreamRef   = "UPSTREAM_REF"
	envCheckRegistry = "CHECK_RULE_REGISTRY"
)

// falsySentinels are the only values that disable the registry fetch.
// Anything else, including unset, leaves it enabled.
var falsySentinels = map[string]bool{
	"0":     true,
	"false": true,
	"False": true,
}

// parseBoolSentinel maps the string-typed toggle to a real boolean.
func parseBoolSentinel(value string) bool {
	return !falsySentinels[value]
}

// resolveSyncConfig builds the immutable run configuration. Ref
// precedence: positional argument, then UPSTREAM_REF, then the manifest
// default, then "main".
func resolveSyncConfig(manifest *entities.Manifest, refArg string) entities.SyncConfig {
	ref := refArg
	if ref == "" {
		ref = os.Getenv(envUpstreamRef)
	}
	if ref == "" {
		ref = manifest.Ref
	}
	if ref == "" {
		ref = "main"
	}

	return entities.SyncConfig{
		Owner:         manifest.Owner,
		Repo:          manifest.Repo,
		Ref:           ref,
		CheckRegistry: parseBoolSentinel(os.Getenv(envCheckRegistry)),
	}
}

// loadManifest reads the contract manifest, falling back to the built-in
// default when no manifest file exists at the default path.
func loadManifest(path string) (*entities.Manifest, error) {
	return yamlrepo.NewManifestRepository(path).Load()
}
