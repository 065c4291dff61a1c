package store

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A helper function to create a store over a throwaway directory.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	st := New(t.TempDir(), DefaultTables(), zerolog.Nop())
	require.NoError(t, st.Initialize())
	return st
}

func TestStore_InitializeCreatesMissingTables(t *testing.T) {
	dir := t.TempDir()
	st := New(dir, DefaultTables(), zerolog.Nop())
	require.NoError(t, st.Initialize())

	for _, table := range DefaultTables() {
		_, err := os.Stat(filepath.Join(dir, table.File))
		assert.NoError(t, err, "table file %s should exist", table.File)

		rows, err := st.Load(table.Name)
		require.NoError(t, err)
		assert.Empty(t, rows)
	}
}

func TestStore_InitializeNeverRewritesExistingTables(t *testing.T) {
	st := newTestStore(t)

	require.NoError(t, st.Append(TableQueue, Row{
		ColID:       "1",
		ColUser:     "alice",
		ColLocation: "Library",
		ColToken:    "LIB-101",
		ColStatus:   "In Queue",
	}))

	// A second Initialize must leave the populated file alone.
	require.NoError(t, st.Initialize())

	rows, err := st.Load(TableQueue)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "LIB-101", rows[0][ColToken])
}

func TestStore_AppendAndLoadRoundTrip(t *testing.T) {
	st := newTestStore(t)

	for i := 1; i <= 3; i++ {
		require.NoError(t, st.Append(TableLeave, Row{
			ColID:       strconv.Itoa(i),
			ColUser:     "bob",
			ColReason:   "family function",
			ColFromDate: "2026-09-01",
			ColToDate:   "2026-09-03",
			ColStatus:   "Pending",
		}))
	}

	rows, err := st.Load(TableLeave)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "1", rows[0][ColID])
	assert.Equal(t, "3", rows[2][ColID])
	assert.Equal(t, "family function", rows[1][ColReason])
}

func TestStore_LoadToleratesShortAndLongRows(t *testing.T) {
	dir := t.TempDir()
	st := New(dir, DefaultTables(), zerolog.Nop())
	require.NoError(t, st.Initialize())

	// A hand-edited file: one short row, one row with a trailing extra cell.
	content := "ID,User,Location,Token,Status,Timestamp\n" +
		"1,alice\n" +
		"2,bob,Library,LIB-102,In Queue,2026-08-29 10:00:00,surprise\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "queue_data.csv"), []byte(content), 0o644))

	rows, err := st.Load(TableQueue)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Missing cells leave their keys unset, extra cells are dropped.
	assert.Equal(t, "alice", rows[0][ColUser])
	assert.Equal(t, "", rows[0][ColToken])
	assert.Equal(t, "LIB-102", rows[1][ColToken])
}

func TestStore_NextIDIsRowCountPlusOne(t *testing.T) {
	st := newTestStore(t)

	id, err := st.NextID(TableParking)
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	require.NoError(t, st.Append(TableParking, Row{ColID: "1", ColUser: "alice"}))
	require.NoError(t, st.Append(TableParking, Row{ColID: "2", ColUser: "bob"}))

	id, err = st.NextID(TableParking)
	require.NoError(t, err)
	assert.Equal(t, 3, id)
}

func TestStore_NextIDReissuesAfterDeletion(t *testing.T) {
	st := newTestStore(t)

	require.NoError(t, st.Save(TableParking, []Row{
		{ColID: "1", ColUser: "alice"},
		{ColID: "2", ColUser: "bob"},
		{ColID: "3", ColUser: "carol"},
	}))

	// Drop the first row; IDs 2 and 3 remain.
	require.NoError(t, st.Save(TableParking, []Row{
		{ColID: "2", ColUser: "bob"},
		{ColID: "3", ColUser: "carol"},
	}))

	// Row count + 1 reissues ID 3 even though it is still in the table.
	id, err := st.NextID(TableParking)
	require.NoError(t, err)
	assert.Equal(t, 3, id)
}

func TestStore_UnknownTable(t *testing.T) {
	st := newTestStore(t)

	_, err := st.Load("no_such_table")
	assert.ErrorIs(t, err, ErrUnknownTable)

	err = st.Save("no_such_table", nil)
	assert.ErrorIs(t, err, ErrUnknownTable)
}

func TestMatchID(t *testing.T) {
	assert.True(t, MatchID(Row{ColID: "7"}, 7))
	assert.False(t, MatchID(Row{ColID: "7"}, 8))
	assert.False(t, MatchID(Row{ColID: "junk"}, 0))
	assert.False(t, MatchID(Row{}, 1))
}
