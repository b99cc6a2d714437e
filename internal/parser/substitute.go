package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/sdlcforge/rakego/internal/rakeerrors"
)

var indexedDepRef = regexp.MustCompile(`\$d\[(\d+)\]`)

// expandSubstitutions applies the four substitution-symbol rules, in the
// order the spec requires: indexed deps, current target, all deps, then
// first dep. The order matters because "$ds"/"$^" must be resolved before
// a literal "$d"/"$<" replacement runs, or the "d" in "$ds" would be
// mistaken for the first-dependency symbol.
func expandSubstitutions(line, target string, deps []string, loc rakeerrors.SourceLocation) (string, error) {
	var stepErr error
	line = indexedDepRef.ReplaceAllStringFunc(line, func(m string) string {
		if stepErr != nil {
			return m
		}
		idx, _ := strconv.Atoi(indexedDepRef.FindStringSubmatch(m)[1])
		if idx >= len(deps) {
			stepErr = rakeerrors.NewDepsIndexOutOfBoundsError(loc, idx, len(deps))
			return m
		}
		return deps[idx]
	})
	if stepErr != nil {
		return "", stepErr
	}

	line = strings.ReplaceAll(line, "$@", target)
	line = strings.ReplaceAll(line, "$t", target)

	joined := strings.Join(deps, " ")
	line = strings.ReplaceAll(line, "$ds", joined)
	line = strings.ReplaceAll(line, "$^", joined)

	if strings.Contains(line, "$d") || strings.Contains(line, "$<") {
		if len(deps) == 0 {
			return "", rakeerrors.NewDepsSSwithoutDepsError(loc)
		}
		line = strings.ReplaceAll(line, "$d", deps[0])
		line = strings.ReplaceAll(line, "$<", deps[0])
	}

	return line, nil
}
