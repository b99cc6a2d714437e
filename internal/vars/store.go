package vars

import (
	"regexp"
	"strings"

	"github.com/sdlcforge/rakego/internal/rakeerrors"
)

// fullReference matches a value that is, in its entirety, a single
// "$(X)" reference to another variable.
var fullReference = regexp.MustCompile(`^\$\(([^)]+)\)$`)

// anyReference matches every "$(X)" occurrence inside arbitrary text.
var anyReference = regexp.MustCompile(`\$\(([^)]+)\)`)

// Store is a name -> value mapping, populated in file order during
// parsing. Later Define calls for the same name replace the value, and
// later callers always see the latest value.
type Store struct {
	values map[string]string
}

// NewStore creates an empty variable store.
func NewStore() *Store {
	return &Store{values: make(map[string]string)}
}

// Define records name = value at loc. name must be a single
// whitespace-free token, else MultipleNamesError. If value is, in its
// entirety, a "$(other)" reference, it is resolved against the store's
// current contents immediately; an undefined other yields
// InvalidValueError.
func (s *Store) Define(name, value string, loc rakeerrors.SourceLocation) error {
	if len(strings.Fields(name)) != 1 {
		return rakeerrors.NewMultipleNamesError(loc, name)
	}

	value = strings.TrimSpace(value)
	if m := fullReference.FindStringSubmatch(value); m != nil {
		resolved, ok := s.values[m[1]]
		if !ok {
			return rakeerrors.NewInvalidValueError(loc, value)
		}
		value = resolved
	}

	s.values[name] = value
	return nil
}

// Lookup returns the current value of name and whether it is defined.
func (s *Store) Lookup(name string) (string, bool) {
	v, ok := s.values[name]
	return v, ok
}

// Expand replaces every "$(X)" occurrence in text with X's current value.
// If any referenced name is undefined, the whole expansion fails with
// InvalidValueError naming that reference.
func (s *Store) Expand(text string, loc rakeerrors.SourceLocation) (string, error) {
	var firstErr error
	result := anyReference.ReplaceAllStringFunc(text, func(match string) string {
		if firstErr != nil {
			return match
		}
		name := fullReference.FindStringSubmatch(match)[1]
		value, ok := s.values[name]
		if !ok {
			firstErr = rakeerrors.NewInvalidValueError(loc, name)
			return match
		}
		return value
	})
	if firstErr != nil {
		return "", firstErr
	}
	return result, nil
}
