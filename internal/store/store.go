// Package store persists the application state document.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/budgetwave-dev/budgetwave/internal/model"
)

// Key names the stored document. The file backend uses it as the file stem,
// the bolt backend as the record key.
const Key = "budgetwave_v1"

// ErrNotFound is returned by a Backend when no document has been stored yet.
var ErrNotFound = errors.New("state not found")

func init() {
	// Money and weights are stored as plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Backend reads and writes the raw document bytes as one unit.
type Backend interface {
	Read() ([]byte, error)
	Write(data []byte) error
	Close() error
}

// Store loads and saves the AppState through a Backend.
type Store struct {
	backend Backend
	logger  *slog.Logger
}

// New creates a Store over backend.
func New(backend Backend, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{backend: backend, logger: logger}
}

// Load returns the stored document, or Default when it is missing or
// unreadable. It never fails.
func (s *Store) Load() model.AppState {
	data, err := s.backend.Read()
	if errors.Is(err, ErrNotFound) {
		s.logger.Debug("No stored state, using defaults", "key", Key)
		return Default()
	}
	if err != nil {
		s.logger.Warn("Failed to read stored state, using defaults", "key", Key, "error", err)
		return Default()
	}

	st, err := Decode(data)
	if err != nil {
		s.logger.Warn("Stored state is corrupt, using defaults", "key", Key, "error", err)
		return Default()
	}
	return st
}

// Save writes the full document.
func (s *Store) Save(st model.AppState) error {
	data, err := Encode(st)
	if err != nil {
		return err
	}
	if err := s.backend.Write(data); err != nil {
		return fmt.Errorf("writing state: %w", err)
	}
	s.logger.Debug("Saved state",
		"categories", len(st.Categories),
		"transactions", len(st.Transactions),
		"bytes", len(data))
	return nil
}

// Close releases the backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

// Encode serializes st to JSON.
func Encode(st model.AppState) ([]byte, error) {
	data, err := json.Marshal(st)
	if err != nil {
		return nil, fmt.Errorf("marshaling state: %w", err)
	}
	return data, nil
}

// Decode parses a stored document. Fields absent from the document get their
// zero value, with collections set to empty and the theme set to light.
func Decode(data []byte) (model.AppState, error) {
	var st *model.AppState
	if err := json.Unmarshal(data, &st); err != nil {
		return model.AppState{}, fmt.Errorf("parsing state: %w", err)
	}
	if st == nil {
		return model.AppState{}, errors.New("parsing state: document is null")
	}

	if st.Theme != model.ThemeLight && st.Theme != model.ThemeDark {
		st.Theme = model.ThemeLight
	}
	if st.Categories == nil {
		st.Categories = []model.Category{}
	}
	if st.Profile == nil {
		st.Profile = map[string]decimal.Decimal{}
	}
	if st.Transactions == nil {
		st.Transactions = []model.Transaction{}
	}
	return *st, nil
}
