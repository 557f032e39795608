package transform

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"

	"erpload/internal/schema"
)

// UniqueItems enforces keep-first semantics over order items whose order
// reference degraded to the 0 sentinel and returns the survivors plus the
// number of rows dropped.
//
// Unresolved items all share order id 0, so two of them with the same
// sequence number would collide on the sink's unique index, a constraint
// violation the resolver itself manufactured. Items with a resolved order
// pass through untouched: a genuine duplicate among those is bad source
// data, and rejecting it is the sink's job, not the transformer's.
func UniqueItems(items []schema.OrderItem) ([]schema.OrderItem, int) {
	seen := make(map[int64]struct{})
	out := items[:0]
	dropped := 0
	for _, it := range items {
		if it.OrderID == 0 {
			if _, dup := seen[it.ItemSeq]; dup {
				dropped++
				continue
			}
			seen[it.ItemSeq] = struct{}{}
		}
		out = append(out, it)
	}
	return out, dropped
}

// Fingerprint digests the composite keys of an item batch, in order. Two
// runs over the same extract log the same value, so a rerun can be compared
// from the console narration alone without diffing the store.
func Fingerprint(items []schema.OrderItem) uint64 {
	h := xxh3.New()
	var buf [16]byte
	for _, it := range items {
		binary.LittleEndian.PutUint64(buf[:8], uint64(it.OrderID))
		binary.LittleEndian.PutUint64(buf[8:], uint64(it.ItemSeq))
		h.Write(buf[:])
	}
	return h.Sum64()
}
