package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx := context.Background()
	command := os.Args[1]

	// Dispatch to subcommand
	switch command {
	case "sync":
		runSync(ctx, os.Args[2:])
	case "check":
		runCheck(ctx, os.Args[2:])
	case "validate":
		runValidate(os.Args[2:])
	case "registry":
		runRegistry(os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`contractsync - mirror and verify shared contract artifacts

Usage:
  contractsync <command> [options]

Commands:
  sync      Mirror contract files from the upstream repository
  check     Compare vendored contracts against upstream
  validate  Validate a run result payload against the schema contract
  registry  Lint the rule registry contract

Use "contractsync <command> --help" for more information about a command.`)
}
