// Package version holds build-time version info, injected with -ldflags
// into package main and handed over through Set.
package version

import "fmt"

var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

// Set stores build-time version info. Empty values keep the defaults.
func Set(v, c, d string) {
	if v != "" {
		version = v
	}
	if c != "" {
		commit = c
	}
	if d != "" {
		buildDate = d
	}
}

func Version() string { return version }

func Commit() string { return commit }

func BuildDate() string { return buildDate }

// String is the one-line form printed by `zwr version`.
func String() string {
	return fmt.Sprintf("zwr %s (commit %s, built %s)", version, commit, buildDate)
}
