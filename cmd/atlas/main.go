package main

import (
	"os"
	"runtime"

	"github.com/bnema/atlas/internal/cli/cmd"
	"github.com/bnema/atlas/internal/domain/build"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	os.Exit(cmd.Execute(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	}))
}
