package retrieval

import (
	"context"
	"fmt"
)

// Passage is one retrieved chunk of the source document.
type Passage struct {
	// Content is the passage text.
	Content string

	// Score is the relevance score assigned by the backend. Higher is
	// more relevant. Backends that do not score return 0.
	Score float32
}

// Retriever returns the passages most relevant to a query, best first.
type Retriever interface {
	// Retrieve returns up to k passages for the query. An empty result
	// is not an error; the caller decides how to degrade.
	Retrieve(ctx context.Context, query string, k int) ([]Passage, error)
}

// ErrRetrieval wraps a backend failure so callers can distinguish
// retrieval faults from generation faults.
type ErrRetrieval struct {
	Query string
	Err   error
}

func (e *ErrRetrieval) Error() string {
	return fmt.Sprintf("retrieval failed for %q: %v", e.Query, e.Err)
}

func (e *ErrRetrieval) Unwrap() error { return e.Err }
