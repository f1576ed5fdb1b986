package main

import (
	"os"

	"github.com/edalab/ratsnest/internal/cli"
	"github.com/edalab/ratsnest/pkg/buildinfo"
)

func main() {
	cli.SetVersion(buildinfo.Version, buildinfo.Commit, buildinfo.Date)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
