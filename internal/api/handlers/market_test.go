package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/marketping/marketping/internal/api/handlers"
	"github.com/marketping/marketping/internal/market"
	marketMocks "github.com/marketping/marketping/internal/market/mocks"
	domain "github.com/marketping/marketping/pkg/types"
)

func newQueryContext(target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, http.NoBody)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestMarketHandler_Resolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		target     string
		setupMock  func(*marketMocks.MockClient)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "resolves numeric ID",
			target: "/api/v1/market/resolve?q=42",
			setupMock: func(m *marketMocks.MockClient) {
				m.EXPECT().
					Item(mock.Anything, "42").
					Return(&domain.MarketItem{ID: "42", Name: "Black Ice", Price: domain.Int64(1500)}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"name":"Black Ice"`,
		},
		{
			name:   "resolves name",
			target: "/api/v1/market/resolve?q=Black+Ice",
			setupMock: func(m *marketMocks.MockClient) {
				m.EXPECT().
					Search(mock.Anything, market.SearchRequest{Name: "Black Ice"}).
					Return([]domain.MarketItem{
						{ID: "42", Name: "Black Ice"},
					}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"id":"42"`,
		},
		{
			name:   "unknown name",
			target: "/api/v1/market/resolve?q=Nope",
			setupMock: func(m *marketMocks.MockClient) {
				m.EXPECT().
					Search(mock.Anything, market.SearchRequest{Name: "Nope"}).
					Return(nil, nil).
					Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `item not found`,
		},
		{
			name:   "provider unavailable",
			target: "/api/v1/market/resolve?q=42",
			setupMock: func(m *marketMocks.MockClient) {
				m.EXPECT().
					Item(mock.Anything, "42").
					Return(nil, market.ErrUnavailable).
					Once()
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   `marketplace unavailable, try again`,
		},
		{
			name:       "missing query",
			target:     "/api/v1/market/resolve",
			setupMock:  func(*marketMocks.MockClient) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `q is required`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mc := marketMocks.NewMockClient(t)
			tt.setupMock(mc)
			h := handlers.NewMarketHandler(mc)

			c, rec := newQueryContext(tt.target)

			require.NoError(t, h.Resolve(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestMarketHandler_Search(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		target     string
		setupMock  func(*marketMocks.MockClient)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "passes filters through",
			target: "/api/v1/market/search?name=ice&weapon=R4-C&event=Glacier&type=skin&min_price=100&max_price=5000&limit=10",
			setupMock: func(m *marketMocks.MockClient) {
				m.EXPECT().
					Search(mock.Anything, market.SearchRequest{
						Name:     "ice",
						Weapon:   "R4-C",
						Event:    "Glacier",
						Category: "skin",
						MinPrice: domain.Int64(100),
						MaxPrice: domain.Int64(5000),
						Limit:    10,
					}).
					Return([]domain.MarketItem{
						{ID: "42", Name: "Black Ice", Price: domain.Int64(1500)},
					}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"id":"42"`,
		},
		{
			name:   "empty results are an array, not null",
			target: "/api/v1/market/search?name=nothing",
			setupMock: func(m *marketMocks.MockClient) {
				m.EXPECT().
					Search(mock.Anything, market.SearchRequest{Name: "nothing"}).
					Return(nil, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name:       "invalid min_price",
			target:     "/api/v1/market/search?min_price=cheap",
			setupMock:  func(*marketMocks.MockClient) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `min_price must be an integer`,
		},
		{
			name:       "invalid limit",
			target:     "/api/v1/market/search?limit=0",
			setupMock:  func(*marketMocks.MockClient) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `limit must be a positive integer`,
		},
		{
			name:   "rate limited",
			target: "/api/v1/market/search?name=ice",
			setupMock: func(m *marketMocks.MockClient) {
				m.EXPECT().
					Search(mock.Anything, market.SearchRequest{Name: "ice"}).
					Return(nil, market.ErrRateLimited).
					Once()
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   `marketplace unavailable, try again`,
		},
		{
			name:   "unexpected error",
			target: "/api/v1/market/search?name=ice",
			setupMock: func(m *marketMocks.MockClient) {
				m.EXPECT().
					Search(mock.Anything, market.SearchRequest{Name: "ice"}).
					Return(nil, errors.New("parse failure")).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `marketplace request failed`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mc := marketMocks.NewMockClient(t)
			tt.setupMock(mc)
			h := handlers.NewMarketHandler(mc)

			c, rec := newQueryContext(tt.target)

			require.NoError(t, h.Search(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
