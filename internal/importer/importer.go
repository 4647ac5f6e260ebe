// Package importer combines an externally supplied expense document with
// the current collection under a merge or replace policy.
package importer

import (
	"fmt"

	"github.com/kharchpani-dev/kharchpani/internal/model"
	"github.com/kharchpani-dev/kharchpani/internal/store"
)

// ReadFile reads a candidate expense list from an import document. The
// source is read once and never written.
func ReadFile(path string) ([]model.Expense, error) {
	expenses, err := store.ReadDocument(path)
	if err != nil {
		return nil, fmt.Errorf("reading import file: %w", err)
	}
	return expenses, nil
}

// Merge combines the imported list with the current snapshot. With
// merge=true the imported list is appended to the current one and the
// union deduplicated by id, first occurrence winning, so existing records
// beat imported duplicates. With merge=false the imported list alone
// becomes the collection, deduplicated the same way within its own order.
func Merge(current, imported []model.Expense, merge bool) []model.Expense {
	var combined []model.Expense
	if merge {
		combined = make([]model.Expense, 0, len(current)+len(imported))
		combined = append(combined, current...)
	} else {
		combined = make([]model.Expense, 0, len(imported))
	}
	combined = append(combined, imported...)
	return dedupeByID(combined)
}

// dedupeByID keeps the first occurrence of each id, preserving order.
func dedupeByID(expenses []model.Expense) []model.Expense {
	seen := make(map[string]bool, len(expenses))
	out := make([]model.Expense, 0, len(expenses))
	for _, e := range expenses {
		if seen[e.ID] {
			continue
		}
		seen[e.ID] = true
		out = append(out, e)
	}
	return out
}
