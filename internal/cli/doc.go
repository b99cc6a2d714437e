// Package cli wires rakego's command-line entry point: a single cobra
// command carrying the options model (-k, -s, -C, positional targets)
// described by the core spec, dispatched to the driver.
package cli
