// Package market provides a marketplace API client abstracted behind an
// interface for testability.
package market

import (
	"context"
	"errors"

	domain "github.com/marketping/marketping/pkg/types"
)

// Sentinel errors classifying marketplace failures. Callers branch on these
// with errors.Is; everything else is treated as ErrUnavailable.
var (
	// ErrItemNotFound means the marketplace has no item with the given id.
	ErrItemNotFound = errors.New("market: item not found")

	// ErrUnavailable means the marketplace could not be reached or returned
	// a server error. The condition is transient; retry later.
	ErrUnavailable = errors.New("market: provider unavailable")

	// ErrRateLimited means the marketplace rejected the call due to rate
	// limiting, or the local daily quota is exhausted.
	ErrRateLimited = errors.New("market: rate limited")
)

// SearchRequest defines the parameters for a marketplace search. All fields
// are optional; zero values are omitted from the query.
type SearchRequest struct {
	Name     string
	Weapon   string
	Event    string
	Category string
	MinPrice *int64
	MaxPrice *int64
	Limit    int
}

// Client defines the interface for interacting with the marketplace API.
type Client interface {
	// Item fetches the current state of a single item by id.
	Item(ctx context.Context, id string) (*domain.MarketItem, error)

	// Search returns items matching the request, in provider order.
	Search(ctx context.Context, req SearchRequest) ([]domain.MarketItem, error)
}
