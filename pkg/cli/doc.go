// Package cli provides shared plumbing for the callisto command line:
// user-facing error types, output formatting, and signal-aware contexts.
package cli
