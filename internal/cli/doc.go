// Package cli defines the Cobra command tree for the fhevm-scaffold CLI. Each
// file in this package registers one top-level command (example, category,
// docs, list, doctor, version) with the root command. Command implementations
// delegate to internal packages for generation logic and only handle flag
// parsing, I/O formatting, and user interaction.
package cli
