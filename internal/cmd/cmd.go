// Package cmd implements the cargo3d command-line driver: a thin batch
// caller of the library surface, for manually exercising packing runs
// from a YAML/JSON job file outside of unit tests.
package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/tvanriper/cargo3d/internal/logging"
)

// CLI is the kong command tree.
type CLI struct {
	Pack     PackCmd     `cmd:"" help:"Pack a job file's items into bins and print the outcome"`
	Validate ValidateCmd `cmd:"" help:"Validate a job file without running the packer"`
}

// Parse parses os.Args and runs the selected subcommand.
func Parse() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("cargo3d"),
		kong.Description("3D container-loading optimizer"),
		kong.UsageOnError(),
	)
	if err := ctx.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func buildLogger(debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return logging.NewConsole(level)
}
