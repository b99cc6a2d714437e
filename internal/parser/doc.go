// Package parser tokenizes a Build File into variable declarations and
// jobs.
//
// It classifies each line in priority order: blank or comment, job
// signature (contains ":"), variable declaration (contains "="), or a
// fatal classification error. Job signatures are followed by an indented
// recipe body, collected line-by-line with a peek/advance cursor so a
// line that doesn't belong to the body is left for the next iteration of
// the main classification loop.
//
// Marker directives (.PHONY, .ALWAYS, .SILENT) are recorded as they are
// seen but applied to the job store only after the whole file has been
// read, so a marker can precede the job it names.
package parser
