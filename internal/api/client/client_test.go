package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/marketping/marketping/pkg/types"
)

func TestClient_ConnectionRefused(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1") // nothing listening
	_, err := c.ListAlerts(context.Background(), 100, 200)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API server not running")
}

func TestClient_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"item not found"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.CreateAlert(context.Background(), 100, 200, "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API error (HTTP 404)")
	assert.Contains(t, err.Error(), "item not found")
}

func TestClient_ListAlerts(t *testing.T) {
	t.Parallel()

	alerts := []domain.Alert{
		{GuildID: 100, UserID: 200, ItemID: "42", LastPrice: domain.Int64(1500)},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/guilds/100/users/200/alerts", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(alerts)
	}))
	defer srv.Close()

	c := New(srv.URL)
	result, err := c.ListAlerts(context.Background(), 100, 200)
	require.NoError(t, err)
	assert.Len(t, result, 1)
	assert.Equal(t, "42", result[0].ItemID)
}

func TestClient_CreateAlert(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/guilds/100/users/200/alerts", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		err := json.NewDecoder(r.Body).Decode(&body)
		assert.NoError(t, err)
		assert.Equal(t, "Black Ice", body["item"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(domain.Alert{
			GuildID: 100, UserID: 200, ItemID: "42", LastPrice: domain.Int64(1500),
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	result, err := c.CreateAlert(context.Background(), 100, 200, "Black Ice")
	require.NoError(t, err)
	assert.Equal(t, "42", result.ItemID)
	require.NotNil(t, result.LastPrice)
	assert.Equal(t, int64(1500), *result.LastPrice)
}

func TestClient_DeleteAlert(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/guilds/100/users/200/alerts/42", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL)
	require.NoError(t, c.DeleteAlert(context.Background(), 100, 200, "42"))
}

func TestClient_ResolveItem(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/market/resolve", r.URL.Path)
		assert.Equal(t, "Black Ice", r.URL.Query().Get("q"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(domain.MarketItem{ID: "42", Name: "Black Ice"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	item, err := c.ResolveItem(context.Background(), "Black Ice")
	require.NoError(t, err)
	assert.Equal(t, "42", item.ID)
}

func TestClient_SearchItems(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/market/search", r.URL.Path)
		assert.Equal(t, "ice", r.URL.Query().Get("name"))
		assert.Equal(t, "R4-C", r.URL.Query().Get("weapon"))
		assert.Equal(t, "100", r.URL.Query().Get("min_price"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]domain.MarketItem{{ID: "42", Name: "Black Ice"}})
	}))
	defer srv.Close()

	c := New(srv.URL)
	items, err := c.SearchItems(context.Background(), &SearchParams{
		Name:     "ice",
		Weapon:   "R4-C",
		MinPrice: domain.Int64(100),
		Limit:    10,
	})
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestWithHTTPClient(t *testing.T) {
	t.Parallel()

	custom := &http.Client{}
	c := New("http://example.com", WithHTTPClient(custom))
	assert.Same(t, custom, c.httpClient)
}
