package vars_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdlcforge/rakego/internal/rakeerrors"
	"github.com/sdlcforge/rakego/internal/vars"
)

func loc(line int) rakeerrors.SourceLocation {
	return rakeerrors.SourceLocation{File: "Rakefile", Line: line}
}

func TestDefineLiteral(t *testing.T) {
	s := vars.NewStore()
	require.NoError(t, s.Define("CC", "cc", loc(1)))
	v, ok := s.Lookup("CC")
	require.True(t, ok)
	assert.Equal(t, "cc", v)
}

func TestDefineReferenceResolved(t *testing.T) {
	s := vars.NewStore()
	require.NoError(t, s.Define("CC", "cc", loc(1)))
	require.NoError(t, s.Define("COMPILER", "$(CC)", loc(2)))
	v, ok := s.Lookup("COMPILER")
	require.True(t, ok)
	assert.Equal(t, "cc", v)
}

func TestDefineUndefinedReference(t *testing.T) {
	s := vars.NewStore()
	err := s.Define("COMPILER", "$(CC)", loc(1))
	require.Error(t, err)
	assert.IsType(t, &rakeerrors.InvalidValueError{}, err)
}

func TestDefineMultipleNames(t *testing.T) {
	s := vars.NewStore()
	err := s.Define("CC FLAGS", "cc", loc(1))
	require.Error(t, err)
	assert.IsType(t, &rakeerrors.MultipleNamesError{}, err)
}

func TestDefineIdempotent(t *testing.T) {
	s1 := vars.NewStore()
	require.NoError(t, s1.Define("CC", "cc", loc(1)))
	require.NoError(t, s1.Define("CC", "cc", loc(2)))

	s2 := vars.NewStore()
	require.NoError(t, s2.Define("CC", "cc", loc(1)))

	v1, _ := s1.Lookup("CC")
	v2, _ := s2.Lookup("CC")
	assert.Equal(t, v2, v1)
}

func TestDefineRedeclarationReplaces(t *testing.T) {
	s := vars.NewStore()
	require.NoError(t, s.Define("CC", "cc", loc(1)))
	require.NoError(t, s.Define("CC", "clang", loc(2)))
	v, _ := s.Lookup("CC")
	assert.Equal(t, "clang", v)
}

func TestExpand(t *testing.T) {
	s := vars.NewStore()
	require.NoError(t, s.Define("CC", "cc", loc(1)))
	require.NoError(t, s.Define("FLAGS", "-O2", loc(2)))

	out, err := s.Expand("$(CC) $(FLAGS) -o a a.c", loc(3))
	require.NoError(t, err)
	assert.Equal(t, "cc -O2 -o a a.c", out)
}

func TestExpandUndefined(t *testing.T) {
	s := vars.NewStore()
	_, err := s.Expand("$(CC) -o a a.c", loc(1))
	require.Error(t, err)
	assert.IsType(t, &rakeerrors.InvalidValueError{}, err)
}
