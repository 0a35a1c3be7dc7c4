package market_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketping/marketping/internal/market"
)

func TestHTTPClient_Item(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		id        string
		handler   http.HandlerFunc
		wantErr   error
		wantName  string
		wantPrice *int64
	}{
		{
			name: "item with price",
			id:   "12345",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/items/12345", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"id":"12345","name":"Black Ice","weapon":"R4-C","price":980}`))
			},
			wantName:  "Black Ice",
			wantPrice: int64Ptr(980),
		},
		{
			name: "unlisted item has nil price",
			id:   "67890",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"id":"67890","name":"Glacier","price":null}`))
			},
			wantName:  "Glacier",
			wantPrice: nil,
		},
		{
			name: "404 maps to ErrItemNotFound",
			id:   "99999",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			wantErr: market.ErrItemNotFound,
		},
		{
			name: "429 maps to ErrRateLimited",
			id:   "12345",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			},
			wantErr: market.ErrRateLimited,
		},
		{
			name: "500 maps to ErrUnavailable",
			id:   "12345",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantErr: market.ErrUnavailable,
		},
		{
			name: "503 maps to ErrUnavailable",
			id:   "12345",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
			wantErr: market.ErrUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			client := market.NewHTTPClient(market.WithBaseURL(srv.URL))

			item, err := client.Item(context.Background(), tt.id)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, item)
			assert.Equal(t, tt.wantName, item.Name)
			if tt.wantPrice == nil {
				assert.Nil(t, item.Price)
			} else {
				require.NotNil(t, item.Price)
				assert.Equal(t, *tt.wantPrice, *item.Price)
			}
		})
	}
}

func TestHTTPClient_Item_TransportError(t *testing.T) {
	t.Parallel()

	// Server that is already closed: connection refused.
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	srv.Close()

	client := market.NewHTTPClient(market.WithBaseURL(srv.URL))

	_, err := client.Item(context.Background(), "12345")
	require.ErrorIs(t, err, market.ErrUnavailable)
}

func TestHTTPClient_Item_InvalidJSON(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("not valid json"))
	}))
	defer srv.Close()

	client := market.NewHTTPClient(market.WithBaseURL(srv.URL))

	_, err := client.Item(context.Background(), "12345")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing item response")
}

func TestHTTPClient_Search(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/items", r.URL.Path)
		assert.Equal(t, "Black Ice", r.URL.Query().Get("name"))
		assert.Equal(t, "50", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"items": [
				{"id": "111", "name": "Black Ice", "weapon": "R4-C", "price": 980},
				{"id": "222", "name": "Black Ice", "weapon": "MP5", "price": 1200}
			],
			"total": 2
		}`))
	}))
	defer srv.Close()

	client := market.NewHTTPClient(market.WithBaseURL(srv.URL))

	items, err := client.Search(context.Background(), market.SearchRequest{Name: "Black Ice"})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "111", items[0].ID)
	assert.Equal(t, "R4-C", items[0].Weapon)
	assert.Equal(t, "222", items[1].ID)
}

func TestHTTPClient_Search_QueryParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		req       market.SearchRequest
		wantQuery map[string]string
	}{
		{
			name: "name only with default limit",
			req:  market.SearchRequest{Name: "Glacier"},
			wantQuery: map[string]string{
				"name":  "Glacier",
				"limit": "50",
			},
		},
		{
			name: "all filters",
			req: market.SearchRequest{
				Name:     "Black Ice",
				Weapon:   "R4-C",
				Event:    "winter",
				Category: "weapon_skin",
				MinPrice: int64Ptr(100),
				MaxPrice: int64Ptr(2000),
				Limit:    25,
			},
			wantQuery: map[string]string{
				"name":      "Black Ice",
				"weapon":    "R4-C",
				"event":     "winter",
				"type":      "weapon_skin",
				"min_price": "100",
				"max_price": "2000",
				"limit":     "25",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(
				http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					for k, v := range tt.wantQuery {
						assert.Equalf(
							t,
							v,
							r.URL.Query().Get(k),
							"query param %q", k,
						)
					}
					w.Header().Set("Content-Type", "application/json")
					_, _ = w.Write([]byte(`{"items":[],"total":0}`))
				}),
			)
			defer srv.Close()

			client := market.NewHTTPClient(market.WithBaseURL(srv.URL))

			_, err := client.Search(context.Background(), tt.req)
			require.NoError(t, err)
		})
	}
}

func TestHTTPClient_RateLimited(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[],"total":0}`))
	}))
	defer srv.Close()

	// Rate limiter with daily limit of 1.
	rl := market.NewRateLimiter(100, 10, 1)
	client := market.NewHTTPClient(
		market.WithBaseURL(srv.URL),
		market.WithRateLimiter(rl),
	)

	// First call succeeds.
	_, err := client.Search(context.Background(), market.SearchRequest{Name: "test"})
	require.NoError(t, err)

	// Second call hits the daily limit; the error carries both sentinels.
	_, err = client.Search(context.Background(), market.SearchRequest{Name: "test"})
	require.ErrorIs(t, err, market.ErrDailyLimitReached)
	require.ErrorIs(t, err, market.ErrRateLimited)
}

func int64Ptr(v int64) *int64 {
	return &v
}
