package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/vk/polygraingo/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("polygrain", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
polygrain - assemble multi-phase polycrystalline structures for MD simulation.

Usage:
  polygrain [options] [RECIPE_PATH]

Arguments:
  RECIPE_PATH
    Path to a single .hcl recipe file or a directory containing .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	recipeFlag := flagSet.String("recipe", "", "Path to the recipe file or directory.")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	workersFlag := flagSet.Int("workers", 4, "Number of phase branches to run concurrently.")
	seedFlag := flagSet.Int64("seed", 0, "Random seed for grain placement and orientation. 0 derives one from the clock.")
	outputDirFlag := flagSet.String("output-dir", ".", "Directory for the exported structure and run manifest.")
	scratchDirFlag := flagSet.String("scratch-dir", "", "Parent directory for per-run scratch space. Defaults to the system temp dir.")
	keepScratchFlag := flagSet.Bool("keep-scratch", false, "Keep intermediate tool artifacts instead of removing them after the run.")
	atomskFlag := flagSet.String("atomsk-bin", "atomsk", "Path to the atomsk executable.")
	genamorphFlag := flagSet.String("genamorph-bin", "genamorph", "Path to the amorphous seed-cell generator executable.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	path := *recipeFlag
	if path == "" && flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	if path == "" {
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	config, err := app.NewConfig(app.Config{
		RecipePath:   path,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
		Workers:      *workersFlag,
		Seed:         *seedFlag,
		OutputDir:    *outputDirFlag,
		ScratchRoot:  *scratchDirFlag,
		KeepScratch:  *keepScratchFlag,
		AtomskBin:    *atomskFlag,
		GenamorphBin: *genamorphFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return config, false, nil
}
