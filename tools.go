//go:build tools
// +build tools

package tools

// Pins development tools in go.mod so everyone runs the same versions.
// Never imported by application code.

import (
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
	_ "github.com/pressly/goose/v3/cmd/goose"
	_ "golang.org/x/perf/cmd/benchstat"
)
