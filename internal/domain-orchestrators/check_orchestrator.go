package orchestrators

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/HanzoRazer/contractsync/internal/domain-adapters/gateways"
	"github.com/HanzoRazer/contractsync/internal/domain/entities"
	"github.com/HanzoRazer/contractsync/internal/domain/interfaces"
)

// CheckOrchestrator compares vendored contract files against the
// upstream source of truth at a given ref.
type CheckOrchestrator struct {
	fetcher ContractFetcher
	logger  interfaces.Logger
}

// NewCheckOrchestrator creates a new check orchestrator.
func NewCheckOrchestrator(fetcher ContractFetcher, logger interfaces.Logger) *CheckOrchestrator {
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}
	return &CheckOrchestrator{
		fetcher: fetcher,
		logger:  logger,
	}
}

// Check classifies each applicable pair as ok, missing, or mismatch.
// A transport failure aborts the whole check; a mismatch does not - the
// caller decides from the report.
func (o *CheckOrchestrator) Check(ctx context.Context, manifest *entities.Manifest, cfg entities.SyncConfig) (*entities.CheckReport, error) {
	report := &entities.CheckReport{Ref: cfg.Ref}

	for _, pair := range manifest.Pairs {
		if pair.Registry && !cfg.CheckRegistry {
			continue
		}

		url := o.fetcher.ContractURL(cfg.Owner, cfg.Repo, cfg.Ref, pair.UpstreamPath)
		upstream, err := o.fetcher.Fetch(ctx, url)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch %s: %w", pair.UpstreamPath, err)
		}

		result := entities.CheckResult{
			Pair:           pair,
			UpstreamURL:    url,
			UpstreamSHA256: gateways.SHA256Hex(upstream),
		}

		local, err := os.ReadFile(pair.LocalPath)
		switch {
		case os.IsNotExist(err):
			result.Status = entities.CheckMissing
		case err != nil:
			return nil, fmt.Errorf("failed to read %s: %w", pair.LocalPath, err)
		default:
			result.LocalSHA256 = gateways.SHA256Hex(local)
			if bytes.Equal(local, upstream) {
				result.Status = entities.CheckOK
			} else {
				result.Status = entities.CheckMismatch
			}
		}

		o.logger.Debug("contract checked",
			interfaces.F("path", pair.LocalPath),
			interfaces.F("status", string(result.Status)))

		report.Results = append(report.Results, result)
	}

	return report, nil
}
