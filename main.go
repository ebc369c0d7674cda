package main

import (
	"os"

	"github.com/bnema/zwr/cmd"
	"github.com/bnema/zwr/pkg/version"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

func main() {
	version.Set(buildVersion, buildCommit, buildDate)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
