package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *RunStore {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRunStore_AppendAndList(t *testing.T) {
	store := openTestStore(t)

	record := RunRecord{
		Timestamp:       "20260829120000",
		AccountID:       "123456789012",
		Regions:         []string{"us-east-1", "eu-west-1"},
		Resources:       42,
		ResourceTypes:   7,
		NotListed:       3,
		OutputFile:      "results/resources_123456789012_20260829120000.json",
		DurationSeconds: 12.5,
	}
	require.NoError(t, store.Append(record))

	records, err := store.List(0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, record, records[0])
}

func TestRunStore_ListNewestFirst(t *testing.T) {
	store := openTestStore(t)

	for _, ts := range []string{"20260829100000", "20260829110000", "20260829120000"} {
		require.NoError(t, store.Append(RunRecord{Timestamp: ts, AccountID: "123456789012"}))
	}

	records, err := store.List(0)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "20260829120000", records[0].Timestamp)
	assert.Equal(t, "20260829100000", records[2].Timestamp)
}

func TestRunStore_ListLimit(t *testing.T) {
	store := openTestStore(t)

	for _, ts := range []string{"20260829100000", "20260829110000", "20260829120000"} {
		require.NoError(t, store.Append(RunRecord{Timestamp: ts}))
	}

	records, err := store.List(2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "20260829120000", records[0].Timestamp)
}

func TestRunStore_SameTimestampKeepsInsertionOrder(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Append(RunRecord{Timestamp: "20260829120000", AccountID: "first"}))
	require.NoError(t, store.Append(RunRecord{Timestamp: "20260829120000", AccountID: "second"}))

	records, err := store.List(0)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "second", records[0].AccountID)
}

func TestOpen_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "history.db")
	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Close())
}
