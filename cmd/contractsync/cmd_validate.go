package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/HanzoRazer/contractsync/internal/domain-adapters/ingest"
	schemaval "github.com/HanzoRazer/contractsync/internal/external-adapters/jsonschema"
)

const defaultSchemaPath = "contracts/run_result.schema.json"

func runValidate(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	schemaPath := fs.String("schema", defaultSchemaPath, "Path to the vendored schema contract")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: contractsync validate [options] <run_result.json>

Validate a run result payload against the vendored schema contract and
decode it into the typed bindings.

Exit codes:
  0  payload is valid
  1  payload violates the contract
  2  input error (missing file or schema)

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing flags: %v\n", err)
		os.Exit(2)
	}

	if fs.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: payload path is required\n\n")
		fs.Usage()
		os.Exit(2)
	}

	payloadPath := fs.Arg(0)
	//nolint:gosec // G304: payloadPath is the user-provided file to validate
	data, err := os.ReadFile(payloadPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: payload not found: %v\n", err)
		os.Exit(2)
	}

	validator, err := schemaval.NewValidatorFromFile(*schemaPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if err := validator.Validate(data); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid: %v\n", err)
		os.Exit(1)
	}

	result, err := ingest.LoadRunResult(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Valid run result %s: %d finding(s), %d signal(s)\n",
		result.Run.RunID, len(result.Findings), len(result.Signals))
}
