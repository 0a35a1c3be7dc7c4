// Package main implements a mock marketplace API server for local development.
// It serves canned item data from a JSON fixture so the reconciler and CLI can
// be exercised without hitting the real marketplace.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

type item struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Weapon   string `json:"weapon,omitempty"`
	Event    string `json:"event,omitempty"`
	Category string `json:"category,omitempty"`
	Price    *int64 `json:"price"`
}

type fixture struct {
	Items []item `json:"items"`
}

type searchResponse struct {
	Items []item `json:"items"`
	Total int    `json:"total"`
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-market/testdata/items.json", "path to items fixture")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fx, err := loadFixture(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "items", len(fx.Items))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /items/{id}", itemHandler(logger, fx))
	mux.HandleFunc("GET /items", searchHandler(logger, fx))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock marketplace server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func loadFixture(path string) (*fixture, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var fx fixture
	if err := json.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &fx, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

func itemHandler(logger *slog.Logger, fx *fixture) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		for i := range fx.Items {
			if fx.Items[i].ID == id {
				w.Header().Set("Content-Type", "application/json")
				//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
				json.NewEncoder(w).Encode(fx.Items[i])
				logger.Info("item", "id", id)
				return
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		json.NewEncoder(w).Encode(map[string]string{"error": "item not found"})
		logger.Warn("item not found", "id", id)
	}
}

func searchHandler(logger *slog.Logger, fx *fixture) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		name := strings.ToLower(q.Get("name"))
		weapon := strings.ToLower(q.Get("weapon"))
		event := strings.ToLower(q.Get("event"))
		category := strings.ToLower(q.Get("type"))

		limit := 50
		if raw := q.Get("limit"); raw != "" {
			if v, err := strconv.Atoi(raw); err == nil && v > 0 {
				limit = v
			}
		}

		var minPrice, maxPrice *int64
		if raw := q.Get("min_price"); raw != "" {
			if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
				minPrice = &v
			}
		}
		if raw := q.Get("max_price"); raw != "" {
			if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
				maxPrice = &v
			}
		}

		matched := make([]item, 0)
		for _, it := range fx.Items {
			if !matches(it, name, weapon, event, category, minPrice, maxPrice) {
				continue
			}
			matched = append(matched, it)
		}

		total := len(matched)
		if len(matched) > limit {
			matched = matched[:limit]
		}

		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		json.NewEncoder(w).Encode(searchResponse{Items: matched, Total: total})
		logger.Info("search", "name", name, "matched", total, "returned", len(matched))
	}
}

func matches(it item, name, weapon, event, category string, minPrice, maxPrice *int64) bool {
	if name != "" && !strings.Contains(strings.ToLower(it.Name), name) {
		return false
	}
	if weapon != "" && strings.ToLower(it.Weapon) != weapon {
		return false
	}
	if event != "" && strings.ToLower(it.Event) != event {
		return false
	}
	if category != "" && strings.ToLower(it.Category) != category {
		return false
	}
	if minPrice != nil && (it.Price == nil || *it.Price < *minPrice) {
		return false
	}
	if maxPrice != nil && (it.Price == nil || *it.Price > *maxPrice) {
		return false
	}
	return true
}
