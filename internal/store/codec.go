package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/kharchpani-dev/kharchpani/internal/model"
)

// FileName is the single document holding the whole expense collection.
const FileName = "expenses.json"

// ErrParseFailure marks a load attempt whose document exists but cannot be
// decoded as an expense array. No partial data accompanies it; read I/O
// failures are reported the same way since the caller's recovery is identical.
var ErrParseFailure = errors.New("expenses document cannot be read")

// ReadDocument reads a full expense array from path. A missing or blank
// document is an empty collection, not an error. Unknown JSON fields are
// ignored for forward compatibility.
func ReadDocument(path string) ([]model.Expense, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrParseFailure, path, err)
	}

	if strings.TrimSpace(string(data)) == "" {
		return nil, nil
	}

	var expenses []model.Expense
	if err := json.Unmarshal(data, &expenses); err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %v", ErrParseFailure, path, err)
	}
	return expenses, nil
}

// WriteDocument overwrites the document at path with exactly the given
// collection. The write goes through a temp file in the same directory and
// a rename, so readers never observe a partially written document.
func WriteDocument(path string, expenses []model.Expense) error {
	if expenses == nil {
		expenses = []model.Expense{}
	}

	data, err := json.MarshalIndent(expenses, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding expenses: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing temp document: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replacing document: %w", err)
	}
	return nil
}
