// Command fillit reads a puzzle from stdin, solves it, and writes the
// rendered grid to stdout. A malformed puzzle or an unsatisfiable
// search is reported on stderr with a non-zero exit code.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	gologging "github.com/op/go-logging"
	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/katalvlaran/fillit"
	"github.com/katalvlaran/fillit/internal/config"
	"github.com/katalvlaran/fillit/internal/logging"
	"github.com/katalvlaran/fillit/parse"
	"github.com/katalvlaran/fillit/solver"
)

var out = message.NewPrinter(language.English)

func main() {
	os.Exit(run())
}

func run() int {
	configFile := flag.String("config", "", "path to a TOML configuration file (optional)")
	logLvl := flag.String("loglvl", "", "log level override\n(critical|error|warning|notice|info|debug)")
	printStats := flag.Bool("stats", false, "print search statistics to stderr after solving")
	cpuProfile := flag.Bool("cpuprofile", false, "capture a CPU profile for the duration of the run")
	flag.Parse()

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile).Stop()
	}

	settings, err := config.Load(*configFile)
	if err != nil && *configFile != "" {
		fmt.Fprintf(os.Stderr, "fillit: config: %v\n", err)
	}
	if *logLvl != "" {
		settings.Log.Level = *logLvl
	}
	log := logging.New("fillit", settings.Log.Level)

	solution, err := fillit.Solve(os.Stdin, settings.SolverOptions(log)...)
	if err != nil {
		return reportError(log, err)
	}

	fmt.Print(solution.Grid)

	if *printStats {
		out.Fprintf(os.Stderr, "board size:          %d\n", solution.Size)
		out.Fprintf(os.Stderr, "placements attempted: %d\n", solution.Stats.PlacementsAttempted)
		out.Fprintf(os.Stderr, "placements committed: %d\n", solution.Stats.PlacementsCommitted)
		out.Fprintf(os.Stderr, "backtracks:           %d\n", solution.Stats.Backtracks)
		out.Fprintf(os.Stderr, "board growths:        %d\n", solution.Stats.BoardGrowths)
	}

	return 0
}

// reportError logs the failure and chooses the process exit code: 2
// for malformed input, 3 for a sound input the solver still could not
// pack, 1 for anything else (I/O errors reading stdin).
func reportError(log *gologging.Logger, err error) int {
	var perr *parse.Error
	switch {
	case errors.As(err, &perr):
		log.Errorf("input error: %v", err)
		return 2
	case errors.Is(err, solver.ErrUnsatisfiable):
		log.Errorf("search error: %v", err)
		return 3
	default:
		log.Errorf("%v", err)
		return 1
	}
}
