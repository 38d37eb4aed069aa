// Package main is the entry point for the speechprint CLI.
//
// Usage:
//
//	speechprint [flags] <command> [args]
//
// Commands:
//
//	fbe       - Band-energy fingerprints of WAV files
//	landmark  - Landmark fingerprints of WAV files
//	profile   - Named parameter profiles (add, use, list, show, delete)
//	version   - Show version information
package main

import (
	"fmt"
	"os"

	"github.com/haivivi/speechprint/cmd/speechprint/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
