package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func loadTestFixture(t *testing.T) *fixture {
	t.Helper()
	path := filepath.Join("testdata", "items.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading fixture: %v", err)
	}
	var fx fixture
	if err := json.Unmarshal(data, &fx); err != nil {
		t.Fatalf("parsing fixture: %v", err)
	}
	return &fx
}

func TestLoadFixture(t *testing.T) {
	fx := loadTestFixture(t)
	if len(fx.Items) == 0 {
		t.Fatal("expected items in fixture")
	}
}

func TestItemHandler_Found(t *testing.T) {
	fx := loadTestFixture(t)
	handler := itemHandler(testLogger(), fx)

	req := httptest.NewRequest(http.MethodGet, "/items/101", http.NoBody)
	req.SetPathValue("id", "101")
	w := httptest.NewRecorder()

	handler(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusOK)
	}

	var it item
	if err := json.NewDecoder(w.Body).Decode(&it); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if it.Name != "Black Ice" {
		t.Errorf("name=%q, want Black Ice", it.Name)
	}
	if it.Price == nil || *it.Price != 1500 {
		t.Errorf("price=%v, want 1500", it.Price)
	}
}

func TestItemHandler_NotFound(t *testing.T) {
	fx := loadTestFixture(t)
	handler := itemHandler(testLogger(), fx)

	req := httptest.NewRequest(http.MethodGet, "/items/999", http.NoBody)
	req.SetPathValue("id", "999")
	w := httptest.NewRecorder()

	handler(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestSearchHandler_NameFilter(t *testing.T) {
	fx := loadTestFixture(t)
	handler := searchHandler(testLogger(), fx)

	req := httptest.NewRequest(http.MethodGet, "/items?name=black+ice", http.NoBody)
	w := httptest.NewRecorder()

	handler(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusOK)
	}

	var resp searchResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Total != 2 {
		t.Errorf("total=%d, want 2", resp.Total)
	}
	for _, it := range resp.Items {
		if it.Name != "Black Ice" {
			t.Errorf("unexpected item %q in results", it.Name)
		}
	}
}

func TestSearchHandler_PriceAndWeaponFilters(t *testing.T) {
	fx := loadTestFixture(t)
	handler := searchHandler(testLogger(), fx)

	req := httptest.NewRequest(http.MethodGet, "/items?weapon=mp5&min_price=2000", http.NoBody)
	w := httptest.NewRecorder()

	handler(w, req)

	var resp searchResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Total != 1 {
		t.Fatalf("total=%d, want 1", resp.Total)
	}
	if resp.Items[0].ID != "102" {
		t.Errorf("id=%q, want 102", resp.Items[0].ID)
	}
}

func TestSearchHandler_UnlistedExcludedByPriceFilter(t *testing.T) {
	fx := loadTestFixture(t)
	handler := searchHandler(testLogger(), fx)

	// Item 104 has a null price and must not match a price-bounded search.
	req := httptest.NewRequest(http.MethodGet, "/items?name=crimson&min_price=1", http.NoBody)
	w := httptest.NewRecorder()

	handler(w, req)

	var resp searchResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Total != 0 {
		t.Errorf("total=%d, want 0", resp.Total)
	}
}

func TestSearchHandler_EmptyResultIsArray(t *testing.T) {
	fx := loadTestFixture(t)
	handler := searchHandler(testLogger(), fx)

	req := httptest.NewRequest(http.MethodGet, "/items?name=nothing", http.NoBody)
	w := httptest.NewRecorder()

	handler(w, req)

	body := w.Body.String()
	if body == "" {
		t.Fatal("expected a response body")
	}
	var resp searchResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Items == nil {
		t.Error("items should be an empty array, not null")
	}
}

func TestSearchHandler_Limit(t *testing.T) {
	fx := loadTestFixture(t)
	handler := searchHandler(testLogger(), fx)

	req := httptest.NewRequest(http.MethodGet, "/items?limit=2", http.NoBody)
	w := httptest.NewRecorder()

	handler(w, req)

	var resp searchResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Items) != 2 {
		t.Errorf("returned=%d, want 2", len(resp.Items))
	}
	if resp.Total != len(fx.Items) {
		t.Errorf("total=%d, want %d", resp.Total, len(fx.Items))
	}
}
