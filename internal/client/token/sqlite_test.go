package token

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:tokenstore?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func TestSQLiteStore_GetAbsent(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))

	got, err := s.Get(context.Background())
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestSQLiteStore_SetThenGet(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "header.payload.sig"))

	got, err := s.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "header.payload.sig", got)
}

func TestSQLiteStore_SetOverwrites(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "old"))
	require.NoError(t, s.Set(ctx, "new"))

	got, err := s.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "new", got)
}

func TestSQLiteStore_Delete(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "tok"))
	require.NoError(t, s.Delete(ctx))

	got, err := s.Get(ctx)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestSQLiteStore_DeleteAbsentIsNoop(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	require.NoError(t, s.Delete(context.Background()))
}
