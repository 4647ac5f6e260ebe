// Package tracker orchestrates the expense store, aggregation and
// filtering into the application's workflows. Every mutation follows the
// same cycle: validate, mutate, persist the whole document, reload, and
// recompute every derived figure from the fresh snapshot. A failed write
// therefore never leaks into the in-memory state.
package tracker

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kharchpani-dev/kharchpani/internal/aggregate"
	"github.com/kharchpani-dev/kharchpani/internal/auditlog"
	"github.com/kharchpani-dev/kharchpani/internal/config"
	"github.com/kharchpani-dev/kharchpani/internal/filter"
	"github.com/kharchpani-dev/kharchpani/internal/gitops"
	"github.com/kharchpani-dev/kharchpani/internal/id"
	"github.com/kharchpani-dev/kharchpani/internal/importer"
	"github.com/kharchpani-dev/kharchpani/internal/model"
	"github.com/kharchpani-dev/kharchpani/internal/store"
)

// ErrNotFound reports a lookup for an id absent from the collection.
var ErrNotFound = errors.New("expense not found")

// State is one consistent load-and-compute pass: the full snapshot plus
// every summary figure derived from it at the same instant.
type State struct {
	Expenses []model.Expense
	Summary  aggregate.Summary
}

// Service wires the store, aggregation engine and filter engine together
// for one data directory.
type Service struct {
	store   *store.Store
	dataDir string
	git     config.GitConfig
	now     func() time.Time
}

// NewService creates a Service for a data directory.
func NewService(dataDir string, cfg *config.Config) *Service {
	return &Service{
		store:   store.New(dataDir),
		dataDir: dataDir,
		git:     cfg.Git,
		now:     time.Now,
	}
}

// DocumentPath returns the location of the expenses document.
func (s *Service) DocumentPath() string {
	return s.store.DocumentPath()
}

// Refresh loads the snapshot and computes the full summary from it.
func (s *Service) Refresh() (State, error) {
	expenses, err := s.store.Load()
	if err != nil {
		return State{}, err
	}
	return s.state(expenses), nil
}

// View derives the visible list for a filter from an already-loaded state.
// It never reloads from storage.
func (s *Service) View(st State, f filter.Filter) []model.Expense {
	return filter.Apply(st.Expenses, f, s.now())
}

// Get returns the expense with the given id.
func (s *Service) Get(expenseID string) (model.Expense, error) {
	expenses, err := s.store.Load()
	if err != nil {
		return model.Expense{}, err
	}
	for _, e := range expenses {
		if e.ID == expenseID {
			return e, nil
		}
	}
	return model.Expense{}, fmt.Errorf("%w: %s", ErrNotFound, expenseID)
}

// Add validates the input, creates a record and persists it. Returns the
// created expense and the recomputed state.
func (s *Service) Add(in Input) (model.Expense, State, error) {
	if err := joinValidation(ValidateInput(in)); err != nil {
		return model.Expense{}, State{}, err
	}

	amount, _ := decimal.NewFromString(strings.TrimSpace(in.Amount))
	e := model.Expense{
		ID:          id.New(),
		Date:        in.Date,
		Description: strings.TrimSpace(in.Description),
		Amount:      amount,
		CreatedAt:   s.now().UnixMilli(),
	}

	expenses, err := s.store.Add(e)
	if err != nil {
		return model.Expense{}, State{}, err
	}
	s.recordMutation("add", e.ID, e.Description)
	return e, s.state(expenses), nil
}

// Update validates the input and rewrites the identified expense, keeping
// its creation time and paid flag.
func (s *Service) Update(expenseID string, in Input) (State, error) {
	if err := joinValidation(ValidateInput(in)); err != nil {
		return State{}, err
	}

	existing, err := s.Get(expenseID)
	if err != nil {
		return State{}, err
	}

	amount, _ := decimal.NewFromString(strings.TrimSpace(in.Amount))
	existing.Date = in.Date
	existing.Description = strings.TrimSpace(in.Description)
	existing.Amount = amount

	expenses, err := s.store.Update(existing)
	if err != nil {
		return State{}, err
	}
	s.recordMutation("update", expenseID, existing.Description)
	return s.state(expenses), nil
}

// Delete removes the identified expense. Deleting an absent id is a no-op
// that still runs the persist-and-reload cycle.
func (s *Service) Delete(expenseID string) (State, error) {
	expenses, err := s.store.Remove(expenseID)
	if err != nil {
		return State{}, err
	}
	s.recordMutation("delete", expenseID, "")
	return s.state(expenses), nil
}

// TogglePaid flips the paid flag on every listed id in one document write.
func (s *Service) TogglePaid(ids []string) (State, error) {
	selected := make(map[string]bool, len(ids))
	for _, expenseID := range ids {
		selected[expenseID] = true
	}

	expenses, err := s.store.Mutate(func(current []model.Expense) []model.Expense {
		for i := range current {
			if selected[current[i].ID] {
				current[i].IsPaid = !current[i].IsPaid
			}
		}
		return current
	})
	if err != nil {
		return State{}, err
	}
	s.recordMutation("toggle-paid", "", fmt.Sprintf("%d selected", len(ids)))
	return s.state(expenses), nil
}

// Import reads a candidate document and combines it with the collection
// under the merge or replace policy. Returns the recomputed state and the
// number of records read from the import file.
func (s *Service) Import(path string, merge bool) (State, int, error) {
	imported, err := importer.ReadFile(path)
	if err != nil {
		return State{}, 0, err
	}

	expenses, err := s.store.Mutate(func(current []model.Expense) []model.Expense {
		return importer.Merge(current, imported, merge)
	})
	if err != nil {
		return State{}, 0, err
	}

	policy := "replace"
	if merge {
		policy = "merge"
	}
	s.recordMutation("import", "", fmt.Sprintf("%s of %d records from %s", policy, len(imported), path))
	return s.state(expenses), len(imported), nil
}

// Export copies the expense document verbatim to dest. The source is
// never modified.
func (s *Service) Export(dest string) error {
	data, err := os.ReadFile(s.DocumentPath())
	if err != nil {
		return fmt.Errorf("reading expenses document: %w", err)
	}
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	return nil
}

func (s *Service) state(expenses []model.Expense) State {
	return State{
		Expenses: expenses,
		Summary:  aggregate.Compute(expenses, s.now()),
	}
}

// recordMutation appends to the activity log and, when configured, takes a
// git snapshot of the data directory. Both are advisory: the document
// write already succeeded, so failures here only get logged.
func (s *Service) recordMutation(action, expenseID, details string) {
	err := auditlog.Append(s.dataDir, []auditlog.Entry{{
		Timestamp: s.now(),
		Action:    action,
		ExpenseID: expenseID,
		Details:   details,
	}})
	if err != nil {
		slog.Warn("activity log append failed", "action", action, "error", err)
	}

	if s.git.AutoCommit && gitops.IsRepo(s.dataDir) {
		msg := "expenses: " + action
		if _, err := gitops.CommitAll(s.dataDir, msg, s.git.AuthorName, s.git.AuthorEmail); err != nil {
			slog.Warn("git snapshot failed", "action", action, "error", err)
		}
	}
}
