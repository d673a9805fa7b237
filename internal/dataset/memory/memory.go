// Package memory serves a dataset held in process memory. Used by tests and
// as the empty fallback backend.
package memory

import (
	"context"

	"denizkartim/internal/core"
)

type Store struct {
	data *core.Dataset
}

// New wraps an already-built dataset. A nil dataset behaves as empty.
func New(data *core.Dataset) *Store {
	if data == nil {
		data = &core.Dataset{}
	}
	return &Store{data: data}
}

// Load returns the wrapped dataset. Callers share it read-only.
func (s *Store) Load(_ context.Context) (*core.Dataset, error) {
	return s.data, nil
}
