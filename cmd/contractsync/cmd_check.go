package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/HanzoRazer/contractsync/internal/domain-adapters/gateways"
	orchestrators "github.com/HanzoRazer/contractsync/internal/domain-orchestrators"
	"github.com/HanzoRazer/contractsync/internal/domain/entities"
	"github.com/HanzoRazer/contractsync/internal/domain/interfaces"
	yamlrepo "github.com/HanzoRazer/contractsync/internal/external-adapters/yaml"
)

func runCheck(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	manifestPath := fs.String("manifest", yamlrepo.DefaultManifestPath, "Path to the contract manifest")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: contractsync check [options] [ref]

Compare the vendored contract files against the upstream repository at
the given ref (default resolution as for sync). Intended for CI: exits
non-zero when any contract is missing or out of sync.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  contractsync check            # check against main
  UPSTREAM_REF=v1.0.0 contractsync check
`)
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(2)
	}

	refArg := ""
	if fs.NArg() > 0 {
		refArg = fs.Arg(0)
	}

	manifest, err := loadManifest(*manifestPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	cfg := resolveSyncConfig(manifest, refArg)

	fmt.Printf("Checking contracts against upstream ref: %s\n", cfg.Ref)

	orch := orchestrators.NewCheckOrchestrator(gateways.NewFetcher(), &interfaces.NoOpLogger{})
	report, err := orch.Check(ctx, manifest, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for _, res := range report.Results {
		switch res.Status {
		case entities.CheckOK:
			fmt.Printf("  [OK] %s\n", res.Pair.LocalPath)
		case entities.CheckMissing:
			fmt.Fprintf(os.Stderr, "Missing local contract file: %s\n", res.Pair.LocalPath)
		case entities.CheckMismatch:
			fmt.Fprintf(os.Stderr, `Contract mismatch: %s
  upstream: %s
  sha256 upstream: %s
  sha256 local:    %s
Fix: run "contractsync sync" and commit the result.
`, res.Pair.LocalPath, res.UpstreamURL, res.UpstreamSHA256, res.LocalSHA256)
		}
	}

	if report.Failed() {
		os.Exit(1)
	}

	fmt.Println("\nOK: contracts match upstream.")
}
