// Package executor resolves a requested target's transitive dependency
// closure and drives recipe execution against the injected process
// capability, enforcing the keepgoing failure policy.
package executor

import (
	"context"

	"github.com/pkg/errors"

	"github.com/sdlcforge/rakego/internal/fsprobe"
	"github.com/sdlcforge/rakego/internal/job"
	"github.com/sdlcforge/rakego/internal/proc"
	"github.com/sdlcforge/rakego/internal/rakeerrors"
	"github.com/sdlcforge/rakego/internal/rakelog"
	"github.com/sdlcforge/rakego/internal/symbols"
)

// Options controls executor behavior derived from the CLI options model.
type Options struct {
	// KeepGoing, when true, degrades a non-zero recipe exit to a logged
	// warning instead of a fatal FailedToExecuteError.
	KeepGoing bool

	// Echo, when false, suppresses printing recipe lines before running
	// them regardless of any individual Job's Echo flag (the -s flag).
	Echo bool

	// Dir is the working directory recipe lines run in.
	Dir string
}

// Executor resolves and runs jobs against a Capability.
type Executor struct {
	jobs   *job.Store
	cap    proc.Capability
	logger *rakelog.Logger
	opts   Options

	executed  map[string]bool
	inProgess map[string]bool
}

// New creates an Executor bound to a job store, a process capability, a
// logger, and a set of run options.
func New(jobs *job.Store, cap proc.Capability, logger *rakelog.Logger, opts Options) *Executor {
	return &Executor{
		jobs:      jobs,
		cap:       cap,
		logger:    logger,
		opts:      opts,
		executed:  make(map[string]bool),
		inProgess: make(map[string]bool),
	}
}

// Run resolves potentialTargets against the job store and runs them. An
// empty potentialTargets list runs just the first declared job; an empty
// job store in that case is a NoTarget-class failure. Unknown target
// names produce InvalidArgumentError.
func (e *Executor) Run(ctx context.Context, potentialTargets []string) error {
	roots, err := e.resolveTargets(potentialTargets)
	if err != nil {
		return err
	}

	for _, root := range roots {
		if err := e.runOne(ctx, root); err != nil {
			return err
		}
	}
	return nil
}

// resolveTargets validates potentialTargets against the job store,
// collapsing duplicates while preserving request order. With no
// potential targets it falls back to the first declared job.
func (e *Executor) resolveTargets(potentialTargets []string) ([]*job.Job, error) {
	if len(potentialTargets) == 0 {
		first, ok := e.jobs.First()
		if !ok {
			return nil, rakeerrors.NewNoTargetError(rakeerrors.SourceLocation{})
		}
		return []*job.Job{first}, nil
	}

	known := knownTargets(e.jobs.TargetNames())
	seen := make(map[string]bool, len(potentialTargets))
	var roots []*job.Job
	for _, name := range potentialTargets {
		j, ok := e.jobs.Lookup(name)
		if !ok {
			return nil, rakeerrors.NewInvalidArgumentError(name, known)
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		roots = append(roots, j)
	}
	return roots, nil
}

// knownTargets filters marker directives (.PHONY/.ALWAYS/.SILENT) out of a
// job store's target list, so InvalidArgumentError's "known targets"
// listing never names a synthetic marker. The job store itself never
// inserts a marker as a Job, so this is currently a no-op filter in
// practice; it exists so that invariant is enforced here rather than
// assumed.
func knownTargets(names []string) []string {
	filtered := names[:0:0]
	for _, n := range names {
		if symbols.IsMarkerTarget(n) {
			continue
		}
		filtered = append(filtered, n)
	}
	return filtered
}

// frame is one entry of the explicit traversal stack: a job plus whether
// its dependency jobs have already been pushed for processing.
type frame struct {
	j          *job.Job
	depsPushed bool
}

// runOne performs the depth-first, explicit-stack dependency resolution
// and recipe dispatch for a single root job.
func (e *Executor) runOne(ctx context.Context, root *job.Job) error {
	stack := []*frame{{j: root}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]

		if e.executed[top.j.Target] {
			stack = stack[:len(stack)-1]
			continue
		}

		if hasExistingFileDep(top.j.Deps) {
			if err := e.execute(ctx, top.j); err != nil {
				return err
			}
			stack = stack[:len(stack)-1]
			continue
		}

		if !top.depsPushed {
			top.depsPushed = true
			children, err := e.childJobs(top.j)
			if err != nil {
				return err
			}
			if len(children) > 0 {
				e.inProgess[top.j.Target] = true
				for i := len(children) - 1; i >= 0; i-- {
					stack = append(stack, &frame{j: children[i]})
				}
				continue
			}
		}

		delete(e.inProgess, top.j.Target)
		if err := e.execute(ctx, top.j); err != nil {
			return err
		}
		stack = stack[:len(stack)-1]
	}

	return nil
}

// hasExistingFileDep reports whether any dependency is an existing file,
// in which case the job runs directly, treating its whole dep list as
// satisfied source inputs rather than walking further job dependencies.
func hasExistingFileDep(deps []string) bool {
	for _, d := range deps {
		if fsprobe.IsFile(d) {
			return true
		}
	}
	return false
}

// childJobs returns the not-yet-executed job dependencies of j, in
// signature order, validating that every other dependency is either a
// known job, an existing file, or an existing directory.
func (e *Executor) childJobs(j *job.Job) ([]*job.Job, error) {
	var children []*job.Job
	for _, dep := range j.Deps {
		if dj, ok := e.jobs.Lookup(dep); ok {
			if e.inProgess[dj.Target] {
				return nil, rakeerrors.NewFailedToExecuteError(j.Loc, "circular dependency on "+dep)
			}
			if !e.executed[dj.Target] {
				children = append(children, dj)
			}
			continue
		}
		if !fsprobe.Exists(dep) {
			return nil, rakeerrors.NewInvalidDependencyError(j.Loc, dep)
		}
	}
	return children, nil
}

// execute runs every recipe line of j in order, applying the keepgoing
// failure policy, then marks j as executed.
func (e *Executor) execute(ctx context.Context, j *job.Job) error {
	echo := j.Echo && e.opts.Echo
	for _, line := range j.Recipe {
		if echo {
			e.logger.Info(line)
		}

		outcome, err := e.cap.Execute(ctx, line, e.opts.Dir)
		if err != nil {
			if notFound, ok := err.(*proc.NotFoundError); ok {
				return rakeerrors.NewInvalidDependencyError(j.Loc, notFound.Path)
			}
			wrapped := errors.Wrapf(err, "executing recipe line %q", line)
			return rakeerrors.NewFailedToExecuteErrorFromCause(j.Loc, wrapped)
		}

		if outcome.ExitCode != 0 {
			if !e.opts.KeepGoing {
				return rakeerrors.NewFailedToExecuteError(j.Loc, outcome.Stderr)
			}
			e.logger.Warnf("%s: recipe line failed (exit %d), continuing: %s", j.Loc, outcome.ExitCode, line)
		}
	}

	e.executed[j.Target] = true
	return nil
}
