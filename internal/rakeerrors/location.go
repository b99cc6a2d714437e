package rakeerrors

import "fmt"

// SourceLocation identifies a line of a Build File. File is the path as
// given to the driver (not necessarily absolute); Line is 1-based.
type SourceLocation struct {
	File string
	Line int
}

// String renders the location the way error messages quote it: "path:line".
func (l SourceLocation) String() string {
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}
