// Package orchestrators coordinates complex workflows across multiple domain services.
package orchestrators

import (
	"context"
	"fmt"
	"os"

	"github.com/HanzoRazer/contractsync/internal/domain/entities"
	"github.com/HanzoRazer/contractsync/internal/domain/interfaces"
)

// ContractFetcher interface for retrieving upstream artifacts
type ContractFetcher interface {
	ContractURL(owner, repo, ref, upstreamPath string) string
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// SignatureVerifier interface for detached-signature verification
type SignatureVerifier interface {
	VerifyDetached(signed, armoredSig []byte) error
	KeyringSize() int
}

// SyncOrchestrator mirrors contract artifacts from the upstream
// repository to their vendored local paths.
type SyncOrchestrator struct {
	fetcher  ContractFetcher
	verifier SignatureVerifier // nil disables signature checks
	logger   interfaces.Logger
}

// SyncResult records one successfully mirrored contract.
type SyncResult struct {
	Pair     entities.ContractPair
	URL      string
	Bytes    int
	Verified bool
}

// NewSyncOrchestrator creates a new sync orchestrator. A nil verifier
// disables signature verification; a nil logger silences progress output.
func NewSyncOrchestrator(fetcher ContractFetcher, verifier SignatureVerifier, logger interfaces.Logger) *SyncOrchestrator {
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}
	return &SyncOrchestrator{
		fetcher:  fetcher,
		verifier: verifier,
		logger:   logger,
	}
}

// Sync fetches every applicable pair in the manifest and overwrites the
// local copies. Execution is sequential and fail-fast: the first failure
// aborts the run before any further fetch, and there is no rollback of
// writes already completed.
func (o *SyncOrchestrator) Sync(ctx context.Context, manifest *entities.Manifest, cfg entities.SyncConfig) ([]SyncResult, error) {
	var results []SyncResult
	for _, pair := range manifest.Pairs {
		if pair.Registry && !cfg.CheckRegistry {
			continue
		}
		res, err := o.syncPair(ctx, pair, cfg)
		if err != nil {
			return results, err
		}
		results = append(results, *res)
	}
	return results, nil
}

func (o *SyncOrchestrator) syncPair(ctx context.Context, pair entities.ContractPair, cfg entities.SyncConfig) (*SyncResult, error) {
	url := o.fetcher.ContractURL(cfg.Owner, cfg.Repo, cfg.Ref, pair.UpstreamPath)

	// Step 1: Fetch the artifact. The body is an opaque blob; nothing
	// parses or rewrites it.
	body, err := o.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", pair.UpstreamPath, err)
	}

	// Step 2: Verify the detached signature when a keyring is pinned.
	verified := false
	if o.verifier != nil && o.verifier.KeyringSize() > 0 {
		sig, err := o.fetcher.Fetch(ctx, url+".asc")
		if err != nil {
			return nil, fmt.Errorf("failed to fetch signature for %s: %w", pair.UpstreamPath, err)
		}
		if err := o.verifier.VerifyDetached(body, sig); err != nil {
			return nil, fmt.Errorf("signature verification failed for %s: %w", pair.UpstreamPath, err)
		}
		verified = true
	}

	// Step 3: Overwrite the local copy unconditionally. The destination
	// directory must already exist; a missing directory is a hard error.
	if err := os.WriteFile(pair.LocalPath, body, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", pair.LocalPath, err)
	}

	o.logger.Info("contract updated",
		interfaces.F("path", pair.LocalPath),
		interfaces.F("bytes", len(body)))

	return &SyncResult{
		Pair:     pair,
		URL:      url,
		Bytes:    len(body),
		Verified: verified,
	}, nil
}
