package parser

import (
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/sdlcforge/rakego/internal/job"
	"github.com/sdlcforge/rakego/internal/rakeerrors"
	"github.com/sdlcforge/rakego/internal/rakelog"
	"github.com/sdlcforge/rakego/internal/symbols"
	"github.com/sdlcforge/rakego/internal/vars"
)

// Result is everything a successful parse produces: the variable store
// populated along the way, and the job store, with marker directives
// already applied.
type Result struct {
	Vars *vars.Store
	Jobs *job.Store
}

// pendingMarker records a .PHONY/.ALWAYS/.SILENT directive until the
// whole file has been read, so it can be applied even if it precedes the
// job(s) it names.
type pendingMarker struct {
	symbol symbols.Symbol
	deps   []string
}

// ParseFile reads path and parses it as a Build File.
func ParseFile(path string, logger *rakelog.Logger) (*Result, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return Parse(string(content), path, logger)
}

// Parse parses content, attributing errors and log lines to filename.
func Parse(content, filename string, logger *rakelog.Logger) (*Result, error) {
	p := &parseState{
		cur:      newCursor(content),
		file:     filename,
		vars:     vars.NewStore(),
		jobs:     job.NewStore(),
		logger:   logger,
		defEcho:  true,
		defPhony: false,
	}
	if err := p.run(); err != nil {
		return nil, err
	}
	return &Result{Vars: p.vars, Jobs: p.jobs}, nil
}

type parseState struct {
	cur      *cursor
	file     string
	vars     *vars.Store
	jobs     *job.Store
	logger   *rakelog.Logger
	markers  []pendingMarker
	defEcho  bool
	defPhony bool
}

func (p *parseState) loc(lineNo int) rakeerrors.SourceLocation {
	return rakeerrors.SourceLocation{File: p.file, Line: lineNo}
}

func (p *parseState) run() error {
	for {
		line, lineNo, ok := p.cur.peek()
		if !ok {
			break
		}

		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "" || strings.HasPrefix(trimmed, "#"):
			p.cur.advance()

		case strings.Contains(line, ":"):
			if err := p.parseJob(); err != nil {
				return err
			}

		case strings.Contains(line, "="):
			p.cur.advance()
			if err := p.parseVarDecl(line, lineNo); err != nil {
				return err
			}

		default:
			p.cur.advance()
			return rakeerrors.NewInternalClassificationError(p.loc(lineNo), trimmed)
		}
	}

	p.applyMarkers()
	return nil
}

// parseVarDecl handles a line already known to contain "=" and not ":".
func (p *parseState) parseVarDecl(line string, lineNo int) error {
	eq := strings.Index(line, "=")
	name := strings.TrimSpace(line[:eq])

	value := line[eq+1:]
	if len(value) > 0 {
		// Skip one additional character after the "=" (the space in
		// "NAME = value"); a value written directly after the "=" loses
		// its first character.
		value = value[1:]
	}
	value = strings.TrimSpace(value)

	return p.vars.Define(name, value, p.loc(lineNo))
}

// parseJob handles a line already known to contain ":": the signature
// line plus its indented recipe body.
func (p *parseState) parseJob() error {
	sigLine, sigLineNo, _ := p.cur.advance()
	loc := p.loc(sigLineNo)

	colon := strings.Index(sigLine, ":")
	target := strings.TrimSpace(sigLine[:colon])
	if target == "" {
		return rakeerrors.NewNoTargetError(loc)
	}
	deps := strings.Fields(sigLine[colon+1:])

	recipe, err := p.collectBody(target, deps, loc)
	if err != nil {
		return err
	}

	if sym, ok := symbols.TryParse(target); ok {
		p.markers = append(p.markers, pendingMarker{symbol: sym, deps: deps})
		return nil
	}

	j := &job.Job{
		Target: target,
		Deps:   deps,
		Recipe: recipe,
		Phony:  p.defPhony,
		Echo:   p.defEcho,
		Loc:    loc,
	}
	if prev := p.jobs.Insert(j); prev != nil {
		p.logger.Warnf("Overriding recipe for target %q at %s", target, loc)
		p.logger.Warnf("Defined here: %s", prev.Loc)
	}
	return nil
}

// collectBody gathers the recipe lines following a job signature.
func (p *parseState) collectBody(target string, deps []string, sigLoc rakeerrors.SourceLocation) ([]string, error) {
	var recipe []string

	for {
		line, lineNo, ok := p.cur.peek()
		if !ok {
			break
		}

		if strings.HasPrefix(line, "#") {
			p.cur.advance()
			continue
		}

		loc := p.loc(lineNo)
		candidate, err := expandSubstitutions(line, target, deps, loc)
		if err != nil {
			return nil, err
		}
		candidate, err = p.vars.Expand(candidate, loc)
		if err != nil {
			return nil, err
		}

		if strings.HasPrefix(line, "\t") {
			p.cur.advance()
			recipe = append(recipe, strings.TrimSpace(candidate))
			continue
		}

		spaces := len(line) - len(strings.TrimLeft(line, " "))
		switch {
		case spaces == 4:
			p.cur.advance()
			recipe = append(recipe, strings.TrimSpace(candidate))
		case spaces >= 1 && spaces <= 3:
			p.cur.advance()
			return nil, rakeerrors.NewInvalidIndentationError(loc, spaces)
		default: // spaces == 0
			if strings.TrimSpace(candidate) == "" {
				p.cur.advance()
				continue
			}
			return recipe, nil
		}
	}

	return recipe, nil
}

// applyMarkers runs the post-parse pass that promotes phony/silent flags,
// so directives may precede the jobs they name.
func (p *parseState) applyMarkers() {
	for _, m := range p.markers {
		for _, dep := range m.deps {
			switch m.symbol {
			case symbols.PhonyMarker:
				p.jobs.PromotePhony(dep)
			case symbols.SilentMarker:
				p.jobs.PromoteSilent(dep)
			}
		}
	}
}
