// Package main provides the entry point for the confyg CLI tool.
package main

import (
	"github.com/agentstation/confyg/cmd/confyg/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
