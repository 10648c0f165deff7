package hashtable

import (
	"fmt"
	"io"
)

// Display writes a human-readable dump of the table to w: a summary line
// with capacity and entry count, then one line per bucket listing its
// entries in chain order. Empty buckets show a bare rail. Display never
// mutates the table.
func (t *Table) Display(w io.Writer) {
	t.checkAlive()
	fmt.Fprintf(w, "Hash table, size=%d, total=%d\n", len(t.buckets), t.total)
	for i, head := range t.buckets {
		fmt.Fprintf(w, "bucket[%d]", i)
		for curr := head; curr != nil; curr = curr.next {
			fmt.Fprintf(w, "->(key=%s,value=%d)", curr.key, curr.value)
		}
		fmt.Fprint(w, "-|\n")
	}
}

// TableStats summarizes chain occupancy for one table.
type TableStats struct {
	Capacity     int   `json:"capacity"`
	Total        int   `json:"total"`
	Occupied     int   `json:"occupied"`
	LongestChain int   `json:"longest_chain"`
	Collisions   int   `json:"collisions"`
	ChainLengths []int `json:"chain_lengths"`
}

// Stats walks every chain once and reports per-bucket lengths along with
// the same collision total Collisions returns.
func (t *Table) Stats() TableStats {
	t.checkAlive()
	st := TableStats{
		Capacity:     len(t.buckets),
		Total:        t.total,
		ChainLengths: make([]int, len(t.buckets)),
	}
	for i, head := range t.buckets {
		n := 0
		for curr := head; curr != nil; curr = curr.next {
			n++
		}
		st.ChainLengths[i] = n
		if n > 0 {
			st.Occupied++
		}
		if n > st.LongestChain {
			st.LongestChain = n
		}
		if n > 1 {
			st.Collisions += n - 1
		}
	}
	return st
}
