package journal

import (
	"github.com/cleared-dev/stmt/internal/model"
	"github.com/cleared-dev/stmt/internal/trxid"
)

// Groups maps monthly buckets to their transactions. Keys keep the order in
// which they were first seen and each bucket keeps input order.
type Groups struct {
	keys    []model.GroupKey
	buckets map[model.GroupKey][]model.Transaction
}

// Classify buckets txns by the (year, month) encoded in their ID, falling
// back to the date for IDs without a date prefix.
func Classify(txns []model.Transaction) *Groups {
	g := &Groups{buckets: make(map[model.GroupKey][]model.Transaction)}
	for _, txn := range txns {
		key, err := trxid.GroupKeyOf(txn.ID)
		if err != nil {
			key = txn.Key()
		}
		if _, seen := g.buckets[key]; !seen {
			g.keys = append(g.keys, key)
		}
		g.buckets[key] = append(g.buckets[key], txn)
	}
	return g
}

// Keys returns the buckets in first-seen order.
func (g *Groups) Keys() []model.GroupKey {
	return g.keys
}

// Batch returns the transactions of one bucket.
func (g *Groups) Batch(key model.GroupKey) []model.Transaction {
	return g.buckets[key]
}

// Len returns the number of buckets.
func (g *Groups) Len() int {
	return len(g.keys)
}
