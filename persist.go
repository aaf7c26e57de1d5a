package splitex

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts and rates are plain JSON numbers in the snapshot and
	// import/export formats.
	decimal.MarshalJSONWithoutQuotes = true
}

// Snapshot is the full serialized state of the ledger at a point in time:
// the four stored collections, nothing derived.
type Snapshot struct {
	Participants []Participant `json:"participants"`
	Expenses     []Expense     `json:"expenses"`
	Currencies   []Currency    `json:"currencies"`
	Payments     []Payment     `json:"payments"`
}

// Persister is the snapshot persistence collaborator. The ledger calls Save
// after every mutation and Load once at construction. Load returns (nil, nil)
// when no stored state exists yet.
type Persister interface {
	Load() (*Snapshot, error)
	Save(*Snapshot) error
}

// FileStore persists snapshots as a single human-readable JSON file.
type FileStore struct {
	path string
}

// NewFileStore creates a file-backed persister at the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the stored snapshot. A missing file means no stored state.
func (s *FileStore) Load() (*Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read state file %q: %w", s.path, err)
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("could not parse state file %q: %w", s.path, err)
	}
	return &snap, nil
}

// Save writes the snapshot, creating the directory if needed.
func (s *FileStore) Save(snap *Snapshot) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("could not create directory for state file %q: %w", s.path, err)
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode state: %w", err)
	}
	if err := os.WriteFile(s.path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("could not write state file %q: %w", s.path, err)
	}
	return nil
}
