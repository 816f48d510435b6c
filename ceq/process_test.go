package ceq

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnolang/ceq/internal/env"
	"github.com/gnolang/ceq/internal/term"
)

func TestExtractSource(t *testing.T) {
	src := `; two axioms
(not P)
(= Nat a b)
`
	results, err := ExtractSource(env.New(nil, nil), "rules.ceq", []byte(src))
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "rules.ceq", results[0].Path)
	assert.Equal(t, "A1", results[0].Axiom)
	assert.True(t, term.Equal(
		term.Eq(term.Bool, term.Const("P"), term.FalseLit),
		results[0].Ceq.Eq,
	))

	assert.Equal(t, "A2", results[1].Axiom)
	assert.True(t, term.Equal(
		term.Eq(term.Const("Nat"), term.Const("a"), term.Const("b")),
		results[1].Ceq.Eq,
	))
}

func TestExtractSourceParseError(t *testing.T) {
	_, err := ExtractSource(env.New(nil, nil), "bad.ceq", []byte("(and P"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.ceq")
}

func TestExtractFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.ceq")
	require.NoError(t, os.WriteFile(path, []byte("(not P)\n"), 0o644))

	results, err := ExtractFile(env.New(nil, nil), path)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, path, results[0].Path)
}

func TestProcessPathSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.ceq")
	require.NoError(t, os.WriteFile(path, []byte("(= Nat a b)\n"), 0o644))

	results, err := ProcessPath(context.Background(), nil, env.New(nil, nil), path, ExtractFile)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestProcessPathSkipsOtherExtensions(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("not a rule file"), 0o644))

	results, err := ProcessPath(context.Background(), nil, env.New(nil, nil), path, ExtractFile)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestProcessPathDirectoryOrder(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.ceq"), []byte("(= Nat x y)\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.ceq"), []byte("(not P)\n(not Q)\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "skip.txt"), []byte("ignored"), 0o644))

	results, err := ProcessPath(context.Background(), nil, env.New(nil, nil), dir, ExtractFile)
	require.NoError(t, err)
	require.Len(t, results, 3)

	// a.ceq's rules come first, in form order, then b.ceq's.
	assert.Equal(t, filepath.Join(dir, "a.ceq"), results[0].Path)
	assert.Equal(t, "A1", results[0].Axiom)
	assert.Equal(t, filepath.Join(dir, "a.ceq"), results[1].Path)
	assert.Equal(t, "A2", results[1].Axiom)
	assert.Equal(t, filepath.Join(dir, "b.ceq"), results[2].Path)
}

func TestProcessFilesStopsOnMissingPath(t *testing.T) {
	_, err := ProcessFiles(context.Background(), nil, env.New(nil, nil),
		[]string{filepath.Join(t.TempDir(), "missing.ceq")}, ExtractFile)
	assert.Error(t, err)
}

func TestProcessPathHonorsCancellation(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.ceq"), []byte("(not P)\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ProcessPath(ctx, nil, env.New(nil, nil), dir, ExtractFile)
	assert.ErrorIs(t, err, context.Canceled)
}
