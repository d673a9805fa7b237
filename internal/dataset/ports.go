// Package dataset defines the read-only port for loading the mock banking
// dataset, and a factory selecting among the available backends.
package dataset

import (
	"context"

	"denizkartim/internal/core"
)

// Reader loads the full dataset. Implementations must return a dataset that
// is safe to share: callers treat it as immutable for the process lifetime.
type Reader interface {
	Load(ctx context.Context) (*core.Dataset, error)
}
