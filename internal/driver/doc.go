// Package driver wires the pieces together: it locates the Rakefile,
// optionally changes the working directory, parses the build description,
// and hands the resulting job graph to the executor.
package driver
