package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/HanzoRazer/contractsync/internal/domain-adapters/gateways"
	orchestrators "github.com/HanzoRazer/contractsync/internal/domain-orchestrators"
	"github.com/HanzoRazer/contractsync/internal/domain/interfaces"
	"github.com/HanzoRazer/contractsync/internal/external-adapters/gpg"
	yamlrepo "github.com/HanzoRazer/contractsync/internal/external-adapters/yaml"
)

func runSync(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("sync", flag.ExitOnError)
	var (
		manifestPath = fs.String("manifest", yamlrepo.DefaultManifestPath, "Path to the contract manifest")
		keyringPath  = fs.String("keyring", "", "Armored GPG keyring for signature verification")
	)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: contractsync sync [options] [ref]

Mirror the contract files from the upstream repository into contracts/,
overwriting the local copies. The ref defaults to $UPSTREAM_REF, then
the manifest default, then "main". Set CHECK_RULE_REGISTRY=0 (or
"false"/"False") to skip the rule registry artifact.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  contractsync sync                       # sync from main
  contractsync sync v1.0.0                # pin to a tag
  CHECK_RULE_REGISTRY=0 contractsync sync # schema only
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

	// Wire the optional signature verifier when a keyring is pinned,
	// either on the command line or in the manifest.
	var verifier orchestrators.SignatureVerifier
	keyring := *keyringPath
	if keyring == "" {
		keyring = manifest.Keyring
	}
	if keyring != "" {
		gpgVerifier := gpg.NewVerifier()
		if err := gpgVerifier.ImportKeyringFile(keyring); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
		verifier = gpgVerifier
	}

	fmt.Printf("Syncing contracts from %s/%s@%s\n", cfg.Owner, cfg.Repo, cfg.Ref)

	orch := orchestrators.NewSyncOrchestrator(gateways.NewFetcher(), verifier, &interfaces.StdoutLogger{})
	results, err := orch.Sync(ctx, manifest, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nSynced %d contract file(s).\n", len(results))
	fmt.Println(`
Next steps:
  1. Review the changes:  git diff contracts/
  2. Commit:              git add contracts/ && git commit -m "chore: sync upstream contracts"
  3. Push:                git push`)
}
