package hashtable

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// node is a single chain entry. Each bucket holds the head of a
// singly-linked chain of nodes.
type node struct {
	key   string
	value int
	next  *node
}

// Table is a fixed-capacity hash table using separate chaining. The bucket
// count is set at construction and never changes; colliding keys share a
// bucket chain. Tables are not safe for concurrent use.
type Table struct {
	buckets []*node
	total   int
	logger  log.FieldLogger
}

// New creates a table with the given number of buckets.
func New(capacity int) (*Table, error) {
	if capacity <= 0 {
		return nil, errors.Errorf("hashtable: capacity must be positive, got %d", capacity)
	}
	return &Table{buckets: make([]*node, capacity)}, nil
}

// SetLogger attaches a logger that receives remove traces at debug level.
// Pass nil to silence them; no logger is attached by default.
func (t *Table) SetLogger(l log.FieldLogger) {
	t.checkAlive()
	t.logger = l
}

func (t *Table) checkAlive() {
	if t.buckets == nil {
		panic("hashtable: use of destroyed table")
	}
}

// index runs the strategy and bounds-checks its result, so a broken
// strategy fails loudly instead of corrupting a neighboring chain.
func (t *Table) index(s Strategy, key string) int {
	if s == nil {
		panic("hashtable: nil strategy")
	}
	idx := s(key, len(t.buckets))
	if idx < 0 || idx >= len(t.buckets) {
		panic("hashtable: strategy returned bucket index out of range")
	}
	return idx
}

// Insert adds key with value to the bucket chosen by s. Duplicates are not
// coalesced: inserting an existing key adds a second entry, pushed to the
// head of the same chain.
func (t *Table) Insert(s Strategy, key string, value int) {
	t.checkAlive()
	idx := t.index(s, key)
	t.buckets[idx] = &node{key: key, value: value, next: t.buckets[idx]}
	t.total++
}

// Remove deletes the first entry matching key in head-to-tail order and
// reports whether one was found. A miss leaves the table unchanged. Keys
// are compared case-sensitively.
func (t *Table) Remove(s Strategy, key string) bool {
	t.checkAlive()
	idx := t.index(s, key)

	curr := t.buckets[idx]
	if curr != nil && curr.key == key {
		t.buckets[idx] = curr.next
		t.total--
		if t.logger != nil {
			t.logger.Debugf("removed %q from bucket %d", key, idx)
		}
		return true
	}

	var prev *node
	for curr != nil && curr.key != key {
		prev = curr
		curr = curr.next
	}
	if curr == nil {
		if t.logger != nil {
			t.logger.Debugf("key %q not found in bucket %d", key, idx)
		}
		return false
	}

	prev.next = curr.next
	t.total--
	if t.logger != nil {
		t.logger.Debugf("removed %q from bucket %d", key, idx)
	}
	return true
}

// Find returns the value of the first entry matching key in head-to-tail
// order. With duplicate keys this is the most recently inserted one.
func (t *Table) Find(s Strategy, key string) (int, bool) {
	t.checkAlive()
	for curr := t.buckets[t.index(s, key)]; curr != nil; curr = curr.next {
		if curr.key == key {
			return curr.value, true
		}
	}
	return 0, false
}

// Collisions counts, over all buckets, the entries beyond the first in
// each chain.
func (t *Table) Collisions() int {
	t.checkAlive()
	num := 0
	for _, head := range t.buckets {
		count := 0
		for curr := head; curr != nil; curr = curr.next {
			count++
		}
		if count > 1 {
			num += count - 1
		}
	}
	return num
}

// Reset empties every bucket and zeroes the entry count. Capacity is
// unchanged and the table remains usable.
func (t *Table) Reset() {
	t.checkAlive()
	for i := range t.buckets {
		t.buckets[i] = nil
	}
	t.total = 0
}

// Destroy releases the table. Any later use, including a second Destroy,
// panics.
func (t *Table) Destroy() {
	t.checkAlive()
	t.buckets = nil
	t.total = 0
	t.logger = nil
}

// Len returns the number of entries currently stored.
func (t *Table) Len() int {
	t.checkAlive()
	return t.total
}

// Cap returns the bucket count.
func (t *Table) Cap() int {
	t.checkAlive()
	return len(t.buckets)
}
