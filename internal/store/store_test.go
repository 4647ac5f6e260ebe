package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kharchpani-dev/kharchpani/internal/model"
)

func expense(id, date, desc string, amount string) model.Expense {
	return model.Expense{
		ID:          id,
		Date:        date,
		Description: desc,
		Amount:      decimal.RequireFromString(amount),
		CreatedAt:   1700000000000,
	}
}

func TestLoad_MissingDocument(t *testing.T) {
	s := New(t.TempDir())
	expenses, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, expenses)
}

func TestLoad_BlankDocument(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("  \n"), 0o644))

	expenses, err := New(dir).Load()
	require.NoError(t, err)
	assert.Empty(t, expenses)
}

func TestLoad_MalformedDocument(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("{not json"), 0o644))

	_, err := New(dir).Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrParseFailure))
}

func TestLoad_UnknownFieldsTolerated(t *testing.T) {
	dir := t.TempDir()
	doc := `[{"id":"a","date":"2024-01-15","description":"chai","amount":12.5,` +
		`"createdAt":1700000000000,"futureField":{"nested":true}}]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(doc), 0o644))

	expenses, err := New(dir).Load()
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, "chai", expenses[0].Description)
	assert.True(t, expenses[0].Amount.Equal(decimal.RequireFromString("12.5")))
	assert.False(t, expenses[0].IsPaid, "isPaid defaults false when absent")
	assert.Nil(t, expenses[0].UpdatedAt)
}

func TestLoad_SortedByDateDescending(t *testing.T) {
	s := New(t.TempDir())
	_, err := s.Replace([]model.Expense{
		expense("a", "2023-12-20", "old", "200"),
		expense("b", "not-a-date", "broken one", "5"),
		expense("c", "2024-01-16", "new", "50"),
		expense("d", "also-bad", "broken two", "7"),
		expense("e", "2024-01-15", "mid", "100"),
	})
	require.NoError(t, err)

	expenses, err := s.Load()
	require.NoError(t, err)

	ids := make([]string, len(expenses))
	for i, e := range expenses {
		ids[i] = e.ID
	}
	// Valid dates newest-first, then unparseable dates in insertion order.
	assert.Equal(t, []string{"c", "e", "a", "b", "d"}, ids)
}

func TestPersist_RoundTrip(t *testing.T) {
	s := New(t.TempDir())
	original := []model.Expense{
		expense("a", "2024-01-15", "groceries", "100.50"),
		expense("b", "2024-01-16", "auto fare", "50"),
	}
	_, err := s.Replace(original)
	require.NoError(t, err)

	loaded, err := s.Load()
	require.NoError(t, err)

	// persist(load()) with no changes reproduces an equal collection.
	require.NoError(t, s.Persist(loaded))
	reloaded, err := s.Load()
	require.NoError(t, err)

	require.Len(t, reloaded, len(original))
	byID := make(map[string]model.Expense)
	for _, e := range reloaded {
		byID[e.ID] = e
	}
	for _, want := range original {
		got, ok := byID[want.ID]
		require.True(t, ok)
		assert.Equal(t, want.Date, got.Date)
		assert.Equal(t, want.Description, got.Description)
		assert.True(t, want.Amount.Equal(got.Amount))
		assert.Equal(t, want.CreatedAt, got.CreatedAt)
	}
}

func TestPersist_AmountIsJSONNumber(t *testing.T) {
	s := New(t.TempDir())
	require.NoError(t, s.Persist([]model.Expense{expense("a", "2024-01-15", "chai", "12.5")}))

	data, err := os.ReadFile(s.DocumentPath())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"amount": 12.5`)
	assert.NotContains(t, string(data), `"amount": "12.5"`)
}

func TestPersist_EmptyCollection(t *testing.T) {
	s := New(t.TempDir())
	require.NoError(t, s.Persist(nil))

	data, err := os.ReadFile(s.DocumentPath())
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestAdd(t *testing.T) {
	s := New(t.TempDir())
	snapshot, err := s.Add(expense("a", "2024-01-15", "groceries", "100"))
	require.NoError(t, err)
	require.Len(t, snapshot, 1)

	snapshot, err = s.Add(expense("b", "2024-01-16", "auto fare", "50"))
	require.NoError(t, err)
	require.Len(t, snapshot, 2)
	assert.Equal(t, "b", snapshot[0].ID, "newest date first")
}

func TestUpdate_StampsUpdatedAt(t *testing.T) {
	s := New(t.TempDir())
	_, err := s.Add(expense("a", "2024-01-15", "groceries", "100"))
	require.NoError(t, err)

	edited := expense("a", "2024-01-15", "groceries and chai", "120")
	snapshot, err := s.Update(edited)
	require.NoError(t, err)
	require.Len(t, snapshot, 1)
	assert.Equal(t, "groceries and chai", snapshot[0].Description)
	require.NotNil(t, snapshot[0].UpdatedAt)
	assert.Positive(t, *snapshot[0].UpdatedAt)
}

func TestUpdate_UnknownIDLeavesDocumentAlone(t *testing.T) {
	s := New(t.TempDir())
	_, err := s.Add(expense("a", "2024-01-15", "groceries", "100"))
	require.NoError(t, err)

	snapshot, err := s.Update(expense("ghost", "2024-01-16", "nothing", "1"))
	require.NoError(t, err)
	require.Len(t, snapshot, 1)
	assert.Equal(t, "groceries", snapshot[0].Description)
	assert.Nil(t, snapshot[0].UpdatedAt)
}

func TestRemove(t *testing.T) {
	s := New(t.TempDir())
	_, err := s.Replace([]model.Expense{
		expense("a", "2024-01-15", "groceries", "100"),
		expense("b", "2024-01-16", "auto fare", "50"),
	})
	require.NoError(t, err)

	snapshot, err := s.Remove("a")
	require.NoError(t, err)
	require.Len(t, snapshot, 1)
	assert.Equal(t, "b", snapshot[0].ID)
}

func TestRemove_AbsentIDStillPersists(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	_, err := s.Add(expense("a", "2024-01-15", "groceries", "100"))
	require.NoError(t, err)

	// Scribble over the document so the rewrite is observable.
	compact := `[{"id":"a","date":"2024-01-15","description":"groceries","amount":100,"createdAt":1700000000000,"isPaid":false}]`
	require.NoError(t, os.WriteFile(s.DocumentPath(), []byte(compact), 0o644))

	snapshot, err := s.Remove("ghost")
	require.NoError(t, err)
	require.Len(t, snapshot, 1)

	data, err := os.ReadFile(s.DocumentPath())
	require.NoError(t, err)
	assert.NotEqual(t, compact, string(data), "persist cycle rewrote the document")
}

func TestNoTempFileLeftBehind(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)
	require.NoError(t, s.Persist([]model.Expense{expense("a", "2024-01-15", "groceries", "100")}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, FileName, entries[0].Name())
}
