// Package job defines the Job type and an ordered, override-aware store of
// jobs keyed by target name.
package job

import "github.com/sdlcforge/rakego/internal/rakeerrors"

// Job is a single (target, deps, recipe) build rule, fully parsed: every
// substitution symbol and variable reference in Recipe has already been
// expanded to plain text.
type Job struct {
	// Target is the job's name, unique in its Store after override
	// processing.
	Target string

	// Deps is the ordered, whitespace-split dependency list from the
	// signature line.
	Deps []string

	// Recipe is the ordered list of fully-expanded command lines.
	Recipe []string

	// Phony is true if a .PHONY/.ALWAYS directive anywhere in the file
	// names this target: an existing same-named file never satisfies it.
	Phony bool

	// Echo controls whether each recipe line is printed before execution.
	Echo bool

	// Loc is the source location of the job's signature line.
	Loc rakeerrors.SourceLocation

	// discoveryOrder records insertion order, used for default-target
	// selection. Every Insert, including an overriding one, assigns the
	// next value.
	discoveryOrder int
}
