package hashtable

import "github.com/cespare/xxhash/v2"

// Strategy maps a key to a bucket index in [0, capacity). Strategies must
// be deterministic and free of side effects. The caller passes one to each
// keyed operation; the table itself holds no strategy, so different calls
// may use different strategies against the same table.
type Strategy func(key string, capacity int) int

// FirstByte hashes on the first byte of the key only, so keys sharing a
// first character always collide. Kept as a deliberately poor baseline for
// collision comparisons. An empty key goes to bucket 0.
func FirstByte(key string, capacity int) int {
	if key == "" {
		return 0
	}
	return int(key[0]) % capacity
}

// DJB2 is the djb2 string hash: seed 5381, then hash = hash*33 + byte for
// each byte of the key.
func DJB2(key string, capacity int) int {
	var hash uint64 = 5381
	for i := 0; i < len(key); i++ {
		hash = hash*33 + uint64(key[i])
	}
	return int(hash % uint64(capacity))
}

// XXHash hashes the whole key with xxhash.
func XXHash(key string, capacity int) int {
	return int(xxhash.Sum64String(key) % uint64(capacity))
}
