package tokenstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGormStore(t *testing.T) *Gorm {
	t.Helper()
	db, err := OpenSQLite("file:" + t.Name() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return NewGorm(db)
}

func exerciseStore(t *testing.T, s Store) {
	ctx := context.Background()

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.False(t, got.LoggedIn())

	require.NoError(t, s.Save(ctx, Tokens{AccessToken: "a1", RefreshToken: "r1"}))
	got, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, Tokens{AccessToken: "a1", RefreshToken: "r1"}, got)

	require.NoError(t, s.Save(ctx, Tokens{AccessToken: "a2", RefreshToken: "r2"}))
	got, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a2", got.AccessToken)
	assert.Equal(t, "r2", got.RefreshToken)

	require.NoError(t, s.Clear(ctx))
	got, err = s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, Tokens{}, got)

	// clearing twice is fine
	require.NoError(t, s.Clear(ctx))
}

func TestFileStore(t *testing.T) {
	exerciseStore(t, NewFile(filepath.Join(t.TempDir(), "nested", "tokens.json")))
}

func TestGormStore(t *testing.T) {
	exerciseStore(t, newGormStore(t))
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.json")
	require.NoError(t, NewFile(path).Save(context.Background(), Tokens{AccessToken: "keep", RefreshToken: "me"}))

	got, err := NewFile(path).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "keep", got.AccessToken)
}
