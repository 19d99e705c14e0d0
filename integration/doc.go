// Package integration contains the end-to-end smoke tests for the authkit
// binary. Tests build the binary once and run it against throwaway project
// directories.
//
// Run with: go test ./integration/... -v -timeout 60s
package integration
