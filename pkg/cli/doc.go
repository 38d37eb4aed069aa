// Package cli provides common CLI utilities for the speechprint command.
//
// This package includes:
//   - Named parameter profiles stored in ~/.speechprint/config.yaml
//   - Parameter file loading (YAML/JSON)
//   - Report output (YAML, JSON, msgpack, raw)
//   - Terminal rendering of fingerprint matrices
//
// Example usage:
//
//	cfg, err := cli.LoadConfig()
//	p, err := cfg.ResolveProfile("")
//
//	cli.Output(report, cli.OutputOptions{
//	    Format: cli.FormatJSON,
//	    File:   outputPath,
//	})
package cli
