package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"space-dude/internal/record"
)

func TestOpenRecordsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "record.txt")
	require.NoError(t, os.WriteFile(path, []byte("120\n"), 0o644))

	recs, err := openRecords("file", path)
	require.NoError(t, err)
	defer recs.close()

	assert.Equal(t, 120, recs.keeper.Load())
	assert.Empty(t, recs.history)
}

func TestOpenRecordsSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "record.db")
	store, err := openSQLite(path)
	require.NoError(t, err)
	require.NoError(t, store.Write(42))
	require.NoError(t, store.Write(77))
	require.NoError(t, store.Close())

	recs, err := openRecords("sqlite", path)
	require.NoError(t, err)

	assert.Equal(t, 77, recs.keeper.Load())
	assert.Equal(t, []int{77, 42}, recs.history)
	assert.NoError(t, recs.close())
}

func TestOpenRecordsGarbageDatabaseFallsBackToMemory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Space_Dude_record.db")
	garbage := bytes.Repeat([]byte("not a sqlite database "), 200)
	require.NoError(t, os.WriteFile(path, garbage, 0o644))

	_, err := record.OpenSQLite(path)
	require.Error(t, err)

	recs, err := openRecords("sqlite", path)
	require.NoError(t, err, "a broken record store must not stop the game")
	require.NotNil(t, recs.keeper)
	assert.Empty(t, recs.history)

	assert.Equal(t, 0, recs.keeper.Load())
	assert.True(t, recs.keeper.Submit(30))
	assert.Equal(t, 30, recs.keeper.Best())
	assert.NoError(t, recs.close())
}

func TestOpenRecordsUnknownBackend(t *testing.T) {
	_, err := openRecords("redis", "")
	assert.ErrorIs(t, err, errUnknownBackend)
}
