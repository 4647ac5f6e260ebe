// Package store owns the canonical in-memory snapshot of the expense
// collection for one storage directory. Every write replaces the whole
// document; every mutation is a read-modify-write-reload cycle.
package store

import (
	"log/slog"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/kharchpani-dev/kharchpani/internal/dateutil"
	"github.com/kharchpani-dev/kharchpani/internal/model"
)

// Store reads and writes the expenses.json document in a data directory.
// Mutations are serialized by an internal mutex: the whole-document
// overwrite must never interleave with another writer.
type Store struct {
	dir string
	mu  sync.Mutex
}

// New creates a Store for the given data directory.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// DocumentPath returns the absolute location of the expenses document.
func (s *Store) DocumentPath() string {
	return filepath.Join(s.dir, FileName)
}

// Load fetches the full collection, sorted by date descending as the
// display-ready default ordering. Records whose date fails to parse sort
// after all valid dates, keeping their insertion order among themselves.
func (s *Store) Load() ([]model.Expense, error) {
	expenses, err := ReadDocument(s.DocumentPath())
	if err != nil {
		return nil, err
	}

	for _, e := range expenses {
		if _, ok := dateutil.ParseDate(e.Date); !ok {
			slog.Warn("expense has unparseable date; excluded from date-based views",
				"id", e.ID, "date", e.Date)
		}
	}

	SortByDateDesc(expenses)
	return expenses, nil
}

// Persist overwrites the entire document with the given collection.
func (s *Store) Persist(expenses []model.Expense) error {
	return WriteDocument(s.DocumentPath(), expenses)
}

// Add appends a new expense and returns the refreshed snapshot.
func (s *Store) Add(e model.Expense) ([]model.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.Load()
	if err != nil {
		return nil, err
	}
	current = append(current, e)
	if err := s.Persist(current); err != nil {
		return nil, err
	}
	return s.Load()
}

// Update replaces the expense with e's id, stamping UpdatedAt, and returns
// the refreshed snapshot. An unknown id leaves the document untouched.
func (s *Store) Update(e model.Expense) ([]model.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.Load()
	if err != nil {
		return nil, err
	}

	found := false
	for i := range current {
		if current[i].ID == e.ID {
			e.Touch(time.Now().UnixMilli())
			current[i] = e
			found = true
			break
		}
	}
	if found {
		if err := s.Persist(current); err != nil {
			return nil, err
		}
	}
	return s.Load()
}

// Remove deletes every expense matching id (expected: exactly one). An
// absent id is a no-op that still runs the persist-and-reload cycle.
func (s *Store) Remove(id string) ([]model.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.Load()
	if err != nil {
		return nil, err
	}

	kept := current[:0]
	for _, e := range current {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if err := s.Persist(kept); err != nil {
		return nil, err
	}
	return s.Load()
}

// Mutate runs transform over the current snapshot and persists its result,
// all inside the store's critical section so the read-transform-write
// sequence can never interleave with another mutation. Returns the
// refreshed snapshot.
func (s *Store) Mutate(transform func([]model.Expense) []model.Expense) ([]model.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.Load()
	if err != nil {
		return nil, err
	}
	if err := s.Persist(transform(current)); err != nil {
		return nil, err
	}
	return s.Load()
}

// Replace persists the given collection wholesale and returns the
// refreshed snapshot. Used by the import flow.
func (s *Store) Replace(expenses []model.Expense) ([]model.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.Persist(expenses); err != nil {
		return nil, err
	}
	return s.Load()
}

// SortByDateDesc sorts expenses newest-first in place. Unparseable dates
// are treated as lowest precedence; the sort is stable so they keep their
// relative insertion order.
func SortByDateDesc(expenses []model.Expense) {
	sort.SliceStable(expenses, func(i, j int) bool {
		di, iok := dateutil.ParseDate(expenses[i].Date)
		dj, jok := dateutil.ParseDate(expenses[j].Date)
		if iok != jok {
			return iok // valid dates before invalid ones
		}
		if !iok {
			return false
		}
		return di.After(dj)
	})
}
