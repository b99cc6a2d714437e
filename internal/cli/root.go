package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sdlcforge/rakego/internal/driver"
	"github.com/sdlcforge/rakego/internal/rakelog"
	"github.com/sdlcforge/rakego/internal/version"
)

// NewRootCmd creates the rakego root command. Flag parsing is delegated
// to ParseArgs rather than cobra's own pflag-based parser, since rakego's
// "unknown flags are potential targets" rule has no pflag equivalent;
// cobra still provides the command shell, --help, and --version.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rakego [-k] [-s] [-C <dir>] [<target>...]",
		Short:   "A Make-compatible build tool",
		Version: version.Version,
		Long: `rakego reads a Rakefile from the current directory (or a directory
named with -C), builds an in-memory job graph from its targets and
recipes, and runs the requested target's dependency closure.

Flags:
  -k            keep going after a recipe failure
  -s            don't print recipe lines before running them
  -C <dir>      change to <dir> before looking for the Rakefile

Recipe lines may use either substitution dialect: $@/$d/$ds/$d[N]
(Make-style) or $t/$</$^ (alternate), interchangeably.`,
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if handled, err := handleBuiltinFlags(cmd, args); handled {
				return err
			}

			opts, err := ParseArgs(args)
			if err != nil {
				return err
			}

			logger := rakelog.New(nil)
			return driver.Run(cmd.Context(), driver.RunOptions{
				KeepGoing:        opts.KeepGoing,
				Silent:           opts.Silent,
				Directory:        opts.Directory,
				PotentialTargets: opts.PotentialTargets,
			}, logger)
		},
	}

	return cmd
}

// handleBuiltinFlags intercepts --help/-h and --version, since
// DisableFlagParsing means cobra no longer does this for us.
func handleBuiltinFlags(cmd *cobra.Command, args []string) (bool, error) {
	for _, a := range args {
		switch a {
		case "-h", "--help":
			return true, cmd.Help()
		case "--version":
			fmt.Fprintln(cmd.OutOrStdout(), cmd.Version)
			return true, nil
		}
	}
	return false, nil
}
