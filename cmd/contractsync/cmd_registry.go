package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/HanzoRazer/contractsync/internal/domain/entities"
	"github.com/HanzoRazer/contractsync/internal/domain/services"
)

const defaultRegistryPath = "contracts/rule_registry.json"

func runRegistry(args []string) {
	fs := flag.NewFlagSet("registry", flag.ExitOnError)
	registryPath := fs.String("registry", defaultRegistryPath, "Path to the vendored rule registry")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: contractsync registry [options]

Lint the vendored rule registry: well-formed rule IDs, no duplicates,
sorted order, and at least one known category (DC, GST, SEC).

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(2)
	}

	//nolint:gosec // G304: registryPath is the vendored registry location
	data, err := os.ReadFile(*registryPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: registry not found: %v\n", err)
		os.Exit(2)
	}

	var registry entities.RuleRegistry
	if err := json.Unmarshal(data, &registry); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid: registry is not valid JSON: %v\n", err)
		os.Exit(1)
	}

	problems := services.LintRegistry(&registry)
	if len(problems) > 0 {
		for _, p := range problems {
			fmt.Fprintf(os.Stderr, "  - %s\n", p)
		}
		fmt.Fprintf(os.Stderr, "%d registry contract violation(s)\n", len(problems))
		os.Exit(1)
	}

	fmt.Printf("OK: %d rule ID(s)\n", len(registry.SupportedRuleIDs))
}
