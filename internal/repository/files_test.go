package repository

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/lightvector/ogstosgf/internal/errors"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func collect(t *testing.T, store *FileStore, root string) []string {
	t.Helper()
	var found []string
	err := store.Walk(context.Background(), root, func(path string) error {
		rel, err := filepath.Rel(root, path)
		require.NoError(t, err)
		found = append(found, filepath.ToSlash(rel))
		return nil
	})
	require.NoError(t, err)
	sort.Strings(found)
	return found
}

func TestWalkFindsJSONRecursively(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.json"), "{}")
	writeFile(t, filepath.Join(root, "notes.txt"), "x")
	writeFile(t, filepath.Join(root, "2019", "05", "b.json"), "{}")
	writeFile(t, filepath.Join(root, "2019", "b.sgf"), "(;)")

	found := collect(t, NewFileStore(nil, true), root)
	require.Equal(t, []string{"2019/05/b.json", "a.json"}, found)
}

func TestWalkFollowsLinksOnce(t *testing.T) {
	root := t.TempDir()
	other := t.TempDir()
	writeFile(t, filepath.Join(root, "a.json"), "{}")
	writeFile(t, filepath.Join(other, "c.json"), "{}")
	require.NoError(t, os.Symlink(other, filepath.Join(root, "linked")))
	// loop back to the root
	require.NoError(t, os.Symlink(root, filepath.Join(root, "loop")))

	found := collect(t, NewFileStore(nil, true), root)
	require.Equal(t, []string{"a.json", "linked/c.json"}, found)

	found = collect(t, NewFileStore(nil, false), root)
	require.Equal(t, []string{"a.json"}, found)
}

func TestWalkLinkedFile(t *testing.T) {
	root := t.TempDir()
	other := t.TempDir()
	writeFile(t, filepath.Join(other, "real.json"), "{}")
	require.NoError(t, os.Symlink(filepath.Join(other, "real.json"), filepath.Join(root, "alias.json")))
	require.NoError(t, os.Symlink(filepath.Join(other, "gone.json"), filepath.Join(root, "broken.json")))

	found := collect(t, NewFileStore(nil, false), root)
	require.Equal(t, []string{"alias.json"}, found)
}

func TestWalkMissingRoot(t *testing.T) {
	store := NewFileStore(nil, true)
	err := store.Walk(context.Background(), filepath.Join(t.TempDir(), "nope"), func(string) error { return nil })
	require.Error(t, err)
}

func TestWalkStopsOnCancel(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.json"), "{}")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := NewFileStore(nil, true).Walk(ctx, root, func(string) error { return nil })
	require.ErrorIs(t, err, context.Canceled)
}

func TestReadRecord(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.json")
	bad := filepath.Join(dir, "bad.json")
	writeFile(t, good, `{"game_id": 7}`)
	writeFile(t, bad, `not json`)

	store := NewFileStore(nil, true)

	rec, err := store.ReadRecord(good)
	require.NoError(t, err)
	require.Equal(t, int64(7), rec.Get("game_id").Int())

	_, err = store.ReadRecord(bad)
	require.ErrorIs(t, err, apperrors.ErrNotJSON)

	_, err = store.ReadRecord(filepath.Join(dir, "missing.json"))
	require.ErrorIs(t, err, apperrors.ErrReadRecord)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteSGFOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "g.sgf")
	store := NewFileStore(nil, true)

	require.NoError(t, store.WriteSGF(path, "(;FF[4])\n"))
	require.NoError(t, store.WriteSGF(path, "(;FF[4]GM[1])\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "(;FF[4]GM[1])\n", string(data))

	err = store.WriteSGF(filepath.Join(dir, "no", "such", "dir.sgf"), "x")
	require.ErrorIs(t, err, apperrors.ErrWriteSGF)
}

func TestOutputPath(t *testing.T) {
	store := NewFileStore(nil, true)
	require.Equal(t, "/data/123.sgf", store.OutputPath("/data/123.json"))
	require.Equal(t, "games/a.b.sgf", store.OutputPath("games/a.b.json"))
}
