package rakeerrors

import (
	"fmt"
	"strings"
)

// NoRakefileInDirError is returned by the driver when no Build File can be
// found in the directory searched. It carries no SourceLocation: it
// precedes parsing entirely.
type NoRakefileInDirError struct {
	// Path is the directory that was searched, formatted for display.
	Path string
}

func (e *NoRakefileInDirError) Error() string {
	return fmt.Sprintf("no Rakefile in %s", e.Path)
}

// NewNoRakefileInDirError creates a new NoRakefileInDirError.
func NewNoRakefileInDirError(path string) *NoRakefileInDirError {
	return &NoRakefileInDirError{Path: path}
}

// InvalidIndentationError is returned when a recipe body line has 1-3
// leading spaces, which is neither a TAB-indented nor a 4-space-indented
// recipe line.
type InvalidIndentationError struct {
	Loc SourceLocation
	// Width is the number of leading space characters found.
	Width int
}

func (e *InvalidIndentationError) Error() string {
	return fmt.Sprintf("%s: invalid indentation (%d spaces); use a tab or exactly 4 spaces", e.Loc, e.Width)
}

// NewInvalidIndentationError creates a new InvalidIndentationError.
func NewInvalidIndentationError(loc SourceLocation, width int) *InvalidIndentationError {
	return &InvalidIndentationError{Loc: loc, Width: width}
}

// NoTargetError is returned when a job signature line has an empty target
// field (everything left of the first ":" is blank after trimming).
type NoTargetError struct {
	Loc SourceLocation
}

func (e *NoTargetError) Error() string {
	return fmt.Sprintf("%s: job signature has no target", e.Loc)
}

// NewNoTargetError creates a new NoTargetError.
func NewNoTargetError(loc SourceLocation) *NoTargetError {
	return &NoTargetError{Loc: loc}
}

// MultipleNamesError is returned when a variable name contains whitespace,
// i.e. splits into more than one token.
type MultipleNamesError struct {
	Loc SourceLocation
	// Text is the offending name field.
	Text string
}

func (e *MultipleNamesError) Error() string {
	return fmt.Sprintf("%s: variable name %q must not contain whitespace", e.Loc, e.Text)
}

// NewMultipleNamesError creates a new MultipleNamesError.
func NewMultipleNamesError(loc SourceLocation, text string) *MultipleNamesError {
	return &MultipleNamesError{Loc: loc, Text: text}
}

// InvalidValueError is returned when a "$(X)" reference names an undefined
// variable, either in a variable declaration's value or during recipe-line
// expansion.
type InvalidValueError struct {
	Loc SourceLocation
	// Text is the undefined variable name (or the full value string that
	// contained it, depending on call site).
	Text string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("%s: undefined variable reference %q", e.Loc, e.Text)
}

// NewInvalidValueError creates a new InvalidValueError.
func NewInvalidValueError(loc SourceLocation, text string) *InvalidValueError {
	return &InvalidValueError{Loc: loc, Text: text}
}

// DepsIndexOutOfBoundsError is returned when a "$d[N]" reference has
// N >= len(deps).
type DepsIndexOutOfBoundsError struct {
	Loc SourceLocation
	// Index is the requested N.
	Index int
	// Len is len(deps) for the job being expanded.
	Len int
}

func (e *DepsIndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("%s: $d[%d] out of bounds (only %d dependencies)", e.Loc, e.Index, e.Len)
}

// NewDepsIndexOutOfBoundsError creates a new DepsIndexOutOfBoundsError.
func NewDepsIndexOutOfBoundsError(loc SourceLocation, index, length int) *DepsIndexOutOfBoundsError {
	return &DepsIndexOutOfBoundsError{Loc: loc, Index: index, Len: length}
}

// DepsSSwithoutDepsError is returned when a recipe line references $d/$<
// but the job has no dependencies at all.
type DepsSSwithoutDepsError struct {
	Loc SourceLocation
}

func (e *DepsSSwithoutDepsError) Error() string {
	return fmt.Sprintf("%s: $d/$< used but job has no dependencies", e.Loc)
}

// NewDepsSSwithoutDepsError creates a new DepsSSwithoutDepsError.
func NewDepsSSwithoutDepsError(loc SourceLocation) *DepsSSwithoutDepsError {
	return &DepsSSwithoutDepsError{Loc: loc}
}

// InvalidDependencyError is returned when a dependency name is neither a
// known job, an existing file, nor an existing directory.
type InvalidDependencyError struct {
	Loc SourceLocation
	// Name is the offending dependency name.
	Name string
}

func (e *InvalidDependencyError) Error() string {
	return fmt.Sprintf("%s: invalid dependency %q: not a job, file, or directory", e.Loc, e.Name)
}

// NewInvalidDependencyError creates a new InvalidDependencyError.
func NewInvalidDependencyError(loc SourceLocation, name string) *InvalidDependencyError {
	return &InvalidDependencyError{Loc: loc, Name: name}
}

// FailedToExecuteError is returned when a recipe line exits non-zero
// (without keepgoing) or the process capability reports a non-NotFound
// failure.
type FailedToExecuteError struct {
	Loc SourceLocation
	// Detail is the captured stderr, or a capability-reported message.
	Detail string
	// cause is the underlying boundary error, if this FailedToExecuteError
	// was raised by wrapping one (as opposed to a plain non-zero exit,
	// which has no Go error of its own). May be nil.
	cause error
}

func (e *FailedToExecuteError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: failed to execute recipe", e.Loc)
	}
	return fmt.Sprintf("%s: failed to execute recipe: %s", e.Loc, strings.TrimRight(e.Detail, "\n"))
}

// Cause returns the underlying boundary error, if any, so
// github.com/pkg/errors.Cause (and Unwrap, via the same method) can reach
// past this type back to the original OS/process error.
func (e *FailedToExecuteError) Cause() error { return e.cause }

// Unwrap supports the standard library's errors.Is/errors.As.
func (e *FailedToExecuteError) Unwrap() error { return e.cause }

// NewFailedToExecuteError creates a new FailedToExecuteError with no
// underlying Go error (a plain non-zero exit or a synthetic failure such
// as a detected dependency cycle).
func NewFailedToExecuteError(loc SourceLocation, detail string) *FailedToExecuteError {
	return &FailedToExecuteError{Loc: loc, Detail: detail}
}

// NewFailedToExecuteErrorFromCause creates a FailedToExecuteError wrapping
// a boundary error (e.g. the process capability's "Other" failure),
// keeping cause reachable via Cause/Unwrap.
func NewFailedToExecuteErrorFromCause(loc SourceLocation, cause error) *FailedToExecuteError {
	return &FailedToExecuteError{Loc: loc, Detail: cause.Error(), cause: cause}
}

// InvalidUseOfFlagError is returned by the options model when a flag is
// malformed, e.g. -C with a missing or empty-string value.
type InvalidUseOfFlagError struct {
	// Flag is the offending flag, e.g. "-C".
	Flag string
	// Args is the remaining argument list at the point of failure, kept for
	// diagnostic messages.
	Args []string
}

func (e *InvalidUseOfFlagError) Error() string {
	return fmt.Sprintf("invalid use of flag %s", e.Flag)
}

// NewInvalidUseOfFlagError creates a new InvalidUseOfFlagError.
func NewInvalidUseOfFlagError(flag string, args []string) *InvalidUseOfFlagError {
	return &InvalidUseOfFlagError{Flag: flag, Args: args}
}

// InvalidArgumentError is returned when a positional potential target does
// not resolve to any job in the store.
type InvalidArgumentError struct {
	// Arg is the unresolved target name.
	Arg string
	// KnownTargets lists the store's real (non-marker) target names, for
	// the error message.
	KnownTargets []string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("no target named %q; known targets: %s", e.Arg, strings.Join(e.KnownTargets, ", "))
}

// NewInvalidArgumentError creates a new InvalidArgumentError.
func NewInvalidArgumentError(arg string, knownTargets []string) *InvalidArgumentError {
	return &InvalidArgumentError{Arg: arg, KnownTargets: knownTargets}
}

// InternalClassificationError is a fatal parser error: a non-blank,
// non-comment line contains neither ":" nor "=", so it cannot be
// classified as either a job signature or a variable declaration.
type InternalClassificationError struct {
	Loc SourceLocation
	// Text is the unclassifiable line, trimmed.
	Text string
}

func (e *InternalClassificationError) Error() string {
	return fmt.Sprintf("%s: cannot classify line %q as a job or a variable", e.Loc, e.Text)
}

// NewInternalClassificationError creates a new InternalClassificationError.
func NewInternalClassificationError(loc SourceLocation, text string) *InternalClassificationError {
	return &InternalClassificationError{Loc: loc, Text: text}
}
