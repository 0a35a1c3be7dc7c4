package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/marketping/marketping/pkg/types"
)

// SearchParams are the optional filters for a marketplace search.
type SearchParams struct {
	Name     string
	Weapon   string
	Event    string
	Type     string
	MinPrice *int64
	MaxPrice *int64
	Limit    int
}

// ResolveItem resolves a numeric item ID or item name to a marketplace item.
func (c *Client) ResolveItem(ctx context.Context, query string) (*domain.MarketItem, error) {
	var item domain.MarketItem
	path := "/api/v1/market/resolve?q=" + url.QueryEscape(query)
	if err := c.get(ctx, path, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// SearchItems searches the marketplace with the given filters.
func (c *Client) SearchItems(ctx context.Context, params *SearchParams) ([]domain.MarketItem, error) {
	q := url.Values{}
	if params != nil {
		if params.Name != "" {
			q.Set("name", params.Name)
		}
		if params.Weapon != "" {
			q.Set("weapon", params.Weapon)
		}
		if params.Event != "" {
			q.Set("event", params.Event)
		}
		if params.Type != "" {
			q.Set("type", params.Type)
		}
		if params.MinPrice != nil {
			q.Set("min_price", strconv.FormatInt(*params.MinPrice, 10))
		}
		if params.MaxPrice != nil {
			q.Set("max_price", strconv.FormatInt(*params.MaxPrice, 10))
		}
		if params.Limit > 0 {
			q.Set("limit", strconv.Itoa(params.Limit))
		}
	}

	path := "/api/v1/market/search"
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var items []domain.MarketItem
	if err := c.get(ctx, path, &items); err != nil {
		return nil, err
	}
	return items, nil
}
