package parser_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdlcforge/rakego/internal/parser"
	"github.com/sdlcforge/rakego/internal/rakeerrors"
	"github.com/sdlcforge/rakego/internal/rakelog"
)

func testLogger() (*rakelog.Logger, *bytes.Buffer) {
	no := false
	l := rakelog.New(&no)
	buf := &bytes.Buffer{}
	l.SetOutput(buf)
	return l, buf
}

func TestParseBasicBuild(t *testing.T) {
	logger, _ := testLogger()
	res, err := parser.Parse("hello: hello.c\n\tcc -o $@ $<\n", "Rakefile", logger)
	require.NoError(t, err)

	j, ok := res.Jobs.Lookup("hello")
	require.True(t, ok)
	assert.Equal(t, []string{"hello.c"}, j.Deps)
	assert.Equal(t, []string{"cc -o hello hello.c"}, j.Recipe)
}

func TestParseOverrideWarns(t *testing.T) {
	logger, buf := testLogger()
	content := "foo:\n\techo one\nfoo:\n\techo two\n"
	res, err := parser.Parse(content, "Rakefile", logger)
	require.NoError(t, err)

	j, ok := res.Jobs.Lookup("foo")
	require.True(t, ok)
	assert.Equal(t, []string{"echo two"}, j.Recipe)
	assert.Equal(t, 1, res.Jobs.Len())
	assert.Contains(t, buf.String(), "Overriding recipe for target")
	assert.Contains(t, buf.String(), "Defined here")
}

func TestParsePhonyPromotionForwardReference(t *testing.T) {
	logger, _ := testLogger()
	content := ".PHONY: clean\nclean:\n\trm -rf build\n"
	res, err := parser.Parse(content, "Rakefile", logger)
	require.NoError(t, err)

	j, ok := res.Jobs.Lookup("clean")
	require.True(t, ok)
	assert.True(t, j.Phony)
	_, isJob := res.Jobs.Lookup(".PHONY")
	assert.False(t, isJob, ".PHONY must not itself become a job")
}

func TestParseAltDialectPhony(t *testing.T) {
	logger, _ := testLogger()
	content := "clean:\n\trm -rf build\n.ALWAYS: clean\n"
	res, err := parser.Parse(content, "Rakefile", logger)
	require.NoError(t, err)

	j, _ := res.Jobs.Lookup("clean")
	assert.True(t, j.Phony)
}

func TestParseSilentPromotion(t *testing.T) {
	logger, _ := testLogger()
	content := "build:\n\techo hi\n.SILENT: build\n"
	res, err := parser.Parse(content, "Rakefile", logger)
	require.NoError(t, err)

	j, _ := res.Jobs.Lookup("build")
	assert.False(t, j.Echo)
}

func TestParseVariableExpansion(t *testing.T) {
	logger, _ := testLogger()
	content := "CC = cc\nFLAGS = -O2\na: a.c\n\t$(CC) $(FLAGS) -o $@ $<\n"
	res, err := parser.Parse(content, "Rakefile", logger)
	require.NoError(t, err)

	j, ok := res.Jobs.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, []string{"cc -O2 -o a a.c"}, j.Recipe)
}

func TestParseFourSpaceIndentAccepted(t *testing.T) {
	logger, _ := testLogger()
	content := "build:\n    echo hi\n"
	res, err := parser.Parse(content, "Rakefile", logger)
	require.NoError(t, err)
	j, _ := res.Jobs.Lookup("build")
	assert.Equal(t, []string{"echo hi"}, j.Recipe)
}

func TestParseOneToThreeSpacesIsError(t *testing.T) {
	logger, _ := testLogger()
	content := "build:\n   echo hi\n"
	_, err := parser.Parse(content, "Rakefile", logger)
	require.Error(t, err)
	assert.IsType(t, &rakeerrors.InvalidIndentationError{}, err)
}

func TestParseIndexedDepAtBoundaryOK(t *testing.T) {
	logger, _ := testLogger()
	content := "build: a b c\n\techo $d[2]\n"
	res, err := parser.Parse(content, "Rakefile", logger)
	require.NoError(t, err)
	j, _ := res.Jobs.Lookup("build")
	assert.Equal(t, []string{"echo c"}, j.Recipe)
}

func TestParseIndexedDepOutOfBounds(t *testing.T) {
	logger, _ := testLogger()
	content := "build: a b c\n\techo $d[3]\n"
	_, err := parser.Parse(content, "Rakefile", logger)
	require.Error(t, err)
	assert.IsType(t, &rakeerrors.DepsIndexOutOfBoundsError{}, err)
}

func TestParseDepSymbolWithoutDeps(t *testing.T) {
	logger, _ := testLogger()
	content := "build:\n\techo $d\n"
	_, err := parser.Parse(content, "Rakefile", logger)
	require.Error(t, err)
	assert.IsType(t, &rakeerrors.DepsSSwithoutDepsError{}, err)
}

func TestParseAllDepsJoined(t *testing.T) {
	logger, _ := testLogger()
	content := "build: a b c\n\techo $ds\n\techo $^\n"
	res, err := parser.Parse(content, "Rakefile", logger)
	require.NoError(t, err)
	j, _ := res.Jobs.Lookup("build")
	assert.Equal(t, []string{"echo a b c", "echo a b c"}, j.Recipe)
}

func TestParseNoTarget(t *testing.T) {
	logger, _ := testLogger()
	_, err := parser.Parse(": dep\n", "Rakefile", logger)
	require.Error(t, err)
	assert.IsType(t, &rakeerrors.NoTargetError{}, err)
}

func TestParseCommentsAndBlankLinesSkipped(t *testing.T) {
	logger, _ := testLogger()
	content := "# top comment\n\nbuild:\n\t# a recipe comment\n\techo hi\n\nother: build\n\techo other\n"
	res, err := parser.Parse(content, "Rakefile", logger)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Jobs.Len())
}

func TestParseUnclassifiableLineIsFatal(t *testing.T) {
	logger, _ := testLogger()
	_, err := parser.Parse("just some text\n", "Rakefile", logger)
	require.Error(t, err)
	assert.IsType(t, &rakeerrors.InternalClassificationError{}, err)
}
