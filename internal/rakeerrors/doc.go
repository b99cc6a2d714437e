// Package rakeerrors defines the structured error kinds produced by the
// rakego core: the parser, the job store, and the executor.
//
// Every kind that originates from a specific line of the Build File carries
// a SourceLocation; driver-level kinds (a missing Build File, a bad CLI
// invocation) do not, since they precede parsing.
//
// All error types implement the standard error interface and have a
// NewXxxError constructor.
package rakeerrors
