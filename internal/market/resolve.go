package market

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	domain "github.com/marketping/marketping/pkg/types"
)

var numericID = regexp.MustCompile(`^\d+$`)

// ResolveItem turns a user-supplied query into a marketplace item. Numeric
// queries are treated as item ids and fetched directly. Anything else is
// searched by name and the first exact case-insensitive match wins; when
// several items share a name the provider's ordering decides which one.
// Returns ErrItemNotFound when nothing matches.
func ResolveItem(ctx context.Context, c Client, query string) (*domain.MarketItem, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: empty query", ErrItemNotFound)
	}

	if numericID.MatchString(query) {
		item, err := c.Item(ctx, query)
		if err != nil {
			return nil, fmt.Errorf("fetching item %q: %w", query, err)
		}
		return item, nil
	}

	items, err := c.Search(ctx, SearchRequest{Name: query})
	if err != nil {
		return nil, fmt.Errorf("searching for %q: %w", query, err)
	}

	for i := range items {
		if strings.EqualFold(items[i].Name, query) {
			return &items[i], nil
		}
	}

	return nil, fmt.Errorf("%w: no item named %q", ErrItemNotFound, query)
}
