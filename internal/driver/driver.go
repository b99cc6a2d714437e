package driver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/sdlcforge/rakego/internal/executor"
	"github.com/sdlcforge/rakego/internal/fsprobe"
	"github.com/sdlcforge/rakego/internal/parser"
	"github.com/sdlcforge/rakego/internal/proc"
	"github.com/sdlcforge/rakego/internal/rakeerrors"
	"github.com/sdlcforge/rakego/internal/rakelog"
)

// RakefileName is the default Build File name searched for in the working
// directory.
const RakefileName = "Rakefile"

// RunOptions carries the resolved command-line options the driver needs.
type RunOptions struct {
	KeepGoing        bool
	Silent           bool
	Directory        string
	PotentialTargets []string
}

// Run locates the Rakefile, parses it, and executes the requested
// targets. It is called from the rakego root command's RunE.
func Run(ctx context.Context, opts RunOptions, logger *rakelog.Logger) error {
	if opts.Directory != "" {
		original, err := os.Getwd()
		if err != nil {
			return errors.Wrap(err, "getting working directory")
		}

		logger.Infof("Entering directory %q", opts.Directory)
		if err := os.Chdir(opts.Directory); err != nil {
			return errors.Wrapf(err, "changing directory to %q", opts.Directory)
		}
		defer func() {
			logger.Infof("Leaving directory %q", opts.Directory)
			_ = os.Chdir(original)
		}()
	}

	if !fsprobe.DirContains(".", RakefileName) {
		pretty, err := filepath.Abs(".")
		if err != nil {
			pretty = "."
		}
		return rakeerrors.NewNoRakefileInDirError(pretty)
	}

	result, err := parser.ParseFile(RakefileName, logger)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", RakefileName, err)
	}

	ex := executor.New(result.Jobs, proc.New(), logger, executor.Options{
		KeepGoing: opts.KeepGoing,
		Echo:      !opts.Silent,
		Dir:       ".",
	})

	return ex.Run(ctx, opts.PotentialTargets)
}
