package hashtable

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func fixedBucket(idx int) Strategy {
	return func(string, int) int { return idx }
}

func TestDisplay(t *testing.T) {
	table, err := New(3)
	require.NoError(t, err)
	table.Insert(fixedBucket(0), "a", 1)
	table.Insert(fixedBucket(0), "b", 2)
	table.Insert(fixedBucket(2), "c", 3)

	var buf bytes.Buffer
	table.Display(&buf)

	want := "Hash table, size=3, total=3\n" +
		"bucket[0]->(key=b,value=2)->(key=a,value=1)-|\n" +
		"bucket[1]-|\n" +
		"bucket[2]->(key=c,value=3)-|\n"
	require.Equal(t, want, buf.String())

	// Display is read-only.
	require.Equal(t, 3, table.Len())
	require.Equal(t, 1, table.Collisions())
}

func TestDisplayEmptyTable(t *testing.T) {
	table, err := New(2)
	require.NoError(t, err)

	var buf bytes.Buffer
	table.Display(&buf)
	require.Equal(t, "Hash table, size=2, total=0\nbucket[0]-|\nbucket[1]-|\n", buf.String())
}

func TestStats(t *testing.T) {
	table, err := New(4)
	require.NoError(t, err)
	table.Insert(fixedBucket(1), "a", 1)
	table.Insert(fixedBucket(1), "b", 2)
	table.Insert(fixedBucket(1), "c", 3)
	table.Insert(fixedBucket(3), "d", 4)

	st := table.Stats()
	require.Equal(t, 4, st.Capacity)
	require.Equal(t, 4, st.Total)
	require.Equal(t, 2, st.Occupied)
	require.Equal(t, 3, st.LongestChain)
	require.Equal(t, 2, st.Collisions)
	require.Equal(t, []int{0, 3, 0, 1}, st.ChainLengths)
}
