package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameTableAddAllocatesIncreasingIDs(t *testing.T) {
	tbl := NewNameTable()

	ids, err := tbl.Add([]string{"Terminator", "The Matrix", "The Flintstones"})
	require.NoError(t, err)
	require.Len(t, ids, 3)

	seen := map[uint64]struct{}{}
	for _, id := range ids {
		assert.NotZero(t, id)
		_, dup := seen[id]
		assert.False(t, dup, "duplicate id returned")
		seen[id] = struct{}{}
	}

	rendered := tbl.Rendered()
	assert.Contains(t, rendered, ",Terminator\r\n")
	assert.Contains(t, rendered, ",The Matrix\r\n")
	assert.Contains(t, rendered, ",The Flintstones\r\n")
}

func TestNameTableAddRejectsDuplicateAtomically(t *testing.T) {
	tbl := NewNameTable()
	_, err := tbl.Add([]string{"Terminator"})
	require.NoError(t, err)
	before := tbl.Rendered()

	_, err = tbl.Add([]string{"Terminator"})
	assert.ErrorIs(t, err, ErrDuplicateName)
	assert.Equal(t, before, tbl.Rendered())
}

func TestNameTableAddRejectsBatchWithAnyDuplicate(t *testing.T) {
	tbl := NewNameTable()
	_, err := tbl.Add([]string{"A"})
	require.NoError(t, err)
	before := tbl.Rendered()
	nextBefore := tbl.nextID

	_, err = tbl.Add([]string{"B", "A", "C"})
	assert.ErrorIs(t, err, ErrDuplicateName)
	assert.Equal(t, before, tbl.Rendered())
	assert.False(t, tbl.HasID(nextBefore))
	assert.Equal(t, nextBefore, tbl.nextID, "id counter must not advance on a rejected batch")
}

func TestNameTableGetNameAndHasID(t *testing.T) {
	tbl := NewNameTable()
	ids, err := tbl.Add([]string{"Only"})
	require.NoError(t, err)
	id := ids[0]

	assert.True(t, tbl.HasID(id))
	name, err := tbl.GetName(id)
	require.NoError(t, err)
	assert.Equal(t, "Only", name)

	_, err = tbl.GetName(id + 1000)
	assert.ErrorIs(t, err, ErrUnknownID)
}

func TestNameTableSortedIDsAscending(t *testing.T) {
	tbl := NewNameTable()
	_, err := tbl.Add([]string{"One", "Two", "Three"})
	require.NoError(t, err)

	ids := tbl.SortedIDs()
	for i := 1; i < len(ids); i++ {
		assert.Less(t, ids[i-1], ids[i])
	}
}

func TestNameTableClearKeepsCounterMonotonic(t *testing.T) {
	tbl := NewNameTable()
	ids, err := tbl.Add([]string{"A", "B"})
	require.NoError(t, err)
	maxID := ids[0]
	if ids[1] > maxID {
		maxID = ids[1]
	}

	tbl.Clear()
	assert.Equal(t, "", tbl.Rendered())
	assert.Empty(t, tbl.SortedIDs())

	newIDs, err := tbl.Add([]string{"C"})
	require.NoError(t, err)
	assert.Greater(t, newIDs[0], maxID, "ids must keep increasing across Clear")
}

func TestNameTableDoubleClearIsIdempotent(t *testing.T) {
	tbl := NewNameTable()
	_, _ = tbl.Add([]string{"A"})
	tbl.Clear()
	tbl.Clear()
	assert.Equal(t, "", tbl.Rendered())
}
