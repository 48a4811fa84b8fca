// Package striped provides a fixed-size pool of mutexes keyed by a hash of
// an ID. It bounds memory (unlike one lock per user) while still keeping
// unrelated users off the same lock (unlike a single global mutex).
package striped

import (
	"encoding/binary"
	"hash/fnv"
	"sync"
)

// Locks is a fixed array of mutexes indexed by hash(id) mod len.
type Locks struct {
	stripes []sync.Mutex
}

// New creates a pool with the given number of stripes. Count must be > 0.
func New(count int) *Locks {
	if count <= 0 {
		count = 1
	}
	return &Locks{stripes: make([]sync.Mutex, count)}
}

// For returns the mutex guarding the given ID. The same ID always maps to
// the same stripe.
func (l *Locks) For(id uint64) *sync.Mutex {
	h := fnv.New32a()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], id)
	_, _ = h.Write(buf[:])
	return &l.stripes[h.Sum32()%uint32(len(l.stripes))]
}
