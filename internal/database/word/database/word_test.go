package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/bloops-games/sketchy/internal/database"
	"github.com/bloops-games/sketchy/internal/database/word/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()

	ctx := context.Background()
	db, err := database.New(ctx, &database.Config{FilePath: filepath.Join(t.TempDir(), "words.db")})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close(ctx) })

	return New(db)
}

func TestAddFetchAll(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)

	list, err := db.FetchAll()
	require.NoError(t, err)
	assert.Empty(t, list)

	first, err := db.Add(model.NewWord("  Hot  Air Balloon "))
	require.NoError(t, err)
	assert.Equal(t, "hot air balloon", first.Text)

	second, err := db.Add(model.NewWord("kite"))
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)

	list, err = db.FetchAll()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "hot air balloon", list[0].Text)
	assert.Equal(t, "kite", list[1].Text)
}

func TestAddRejects(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)

	_, err := db.Add(model.NewWord("   "))
	assert.ErrorIs(t, err, ErrEmptyWord)

	_, err = db.Add(model.NewWord("kite"))
	require.NoError(t, err)

	_, err = db.Add(model.NewWord("KITE"))
	assert.ErrorIs(t, err, ErrWordExists)
}

func TestDelete(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	assert.ErrorIs(t, db.Delete("kite"), ErrNotFound)

	_, err := db.Add(model.NewWord("kite"))
	require.NoError(t, err)
	require.NoError(t, db.Delete("Kite"))

	list, err := db.FetchAll()
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.ErrorIs(t, db.Delete("kite"), ErrNotFound)
}
