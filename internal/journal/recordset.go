package journal

import (
	"sort"

	"github.com/cleared-dev/stmt/internal/model"
)

// RecordSet holds transactions keyed by ID. Adding a transaction whose ID is
// already present replaces the earlier one.
type RecordSet struct {
	items map[string]model.Transaction
}

// NewRecordSet returns a RecordSet holding txns.
func NewRecordSet(txns ...model.Transaction) *RecordSet {
	rs := &RecordSet{items: make(map[string]model.Transaction, len(txns))}
	rs.Extend(txns)
	return rs
}

// Extend adds txns in order; later entries win. The zero RecordSet is
// ready to use.
func (rs *RecordSet) Extend(txns []model.Transaction) {
	if rs.items == nil {
		rs.items = make(map[string]model.Transaction, len(txns))
	}
	for _, txn := range txns {
		rs.items[txn.ID] = txn
	}
}

// Len returns the number of distinct IDs.
func (rs *RecordSet) Len() int {
	return len(rs.items)
}

// Get returns the transaction stored under id.
func (rs *RecordSet) Get(id string) (model.Transaction, bool) {
	txn, ok := rs.items[id]
	return txn, ok
}

// Sorted returns all transactions ordered by ID, which is also date order.
func (rs *RecordSet) Sorted() []model.Transaction {
	ids := make([]string, 0, len(rs.items))
	for id := range rs.items {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	txns := make([]model.Transaction, len(ids))
	for i, id := range ids {
		txns[i] = rs.items[id]
	}
	return txns
}
