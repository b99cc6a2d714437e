package cli

import (
	"strings"

	"github.com/sdlcforge/rakego/internal/rakeerrors"
)

// Options is the parsed invocation: the three recognized flags (each with
// a short and long form) plus the list of positional potential targets,
// in the order they were given.
type Options struct {
	// KeepGoing is set by -k/--keep-going: non-zero recipe exits are
	// logged but not fatal.
	KeepGoing bool

	// Silent is set by -s/--silent: recipe lines are not printed before
	// execution.
	Silent bool

	// Directory is set by -C/--directory: change working directory
	// before locating the Build File. Empty means "don't change
	// directory".
	Directory string

	// PotentialTargets accumulates every argument that is neither a
	// recognized flag nor the value consumed by -C/--directory.
	// Unrecognized "-x"-style tokens land here too, resolved later
	// against the job store.
	PotentialTargets []string
}

// ParseArgs parses a raw argument list (as in os.Args[1:]) into Options.
// This performs the same job cobra's flag parser would, but by hand:
// rakego's "unknown flags are potential targets" rule does not fit
// cobra/pflag's strict-unknown-flag behavior. Both the short (-k/-s/-C)
// and GNU-style long (--keep-going/--silent/--directory) forms are
// recognized, including "--directory=<dir>" and "-C=<dir>".
func ParseArgs(args []string) (*Options, error) {
	opts := &Options{}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-k" || arg == "--keep-going":
			opts.KeepGoing = true
		case arg == "-s" || arg == "--silent":
			opts.Silent = true
		case arg == "-C" || arg == "--directory":
			if i+1 >= len(args) {
				return nil, rakeerrors.NewInvalidUseOfFlagError(arg, args[i:])
			}
			dir := args[i+1]
			if !validDirValue(dir) {
				return nil, rakeerrors.NewInvalidUseOfFlagError(arg, args[i:])
			}
			opts.Directory = dir
			i++
		case strings.HasPrefix(arg, "--directory="):
			dir := strings.TrimPrefix(arg, "--directory=")
			if !validDirValue(dir) {
				return nil, rakeerrors.NewInvalidUseOfFlagError("--directory", args[i:])
			}
			opts.Directory = dir
		case strings.HasPrefix(arg, "-C="):
			dir := strings.TrimPrefix(arg, "-C=")
			if !validDirValue(dir) {
				return nil, rakeerrors.NewInvalidUseOfFlagError("-C", args[i:])
			}
			opts.Directory = dir
		default:
			opts.PotentialTargets = append(opts.PotentialTargets, arg)
		}
	}

	return opts, nil
}

// validDirValue reports whether dir is an acceptable -C/--directory
// value: non-empty and not itself another flag.
func validDirValue(dir string) bool {
	return dir != "" && !strings.HasPrefix(dir, "-")
}
