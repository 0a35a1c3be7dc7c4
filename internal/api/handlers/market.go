package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/marketping/marketping/internal/market"
	domain "github.com/marketping/marketping/pkg/types"
)

// MarketHandler proxies item lookups to the marketplace API.
type MarketHandler struct {
	market market.Client
}

// NewMarketHandler creates a new MarketHandler.
func NewMarketHandler(m market.Client) *MarketHandler {
	return &MarketHandler{market: m}
}

// Resolve handles GET /api/v1/market/resolve.
//
// @Summary Resolve an item
// @Description Resolves a numeric item ID or item name to a marketplace item.
// @Tags market
// @Produce json
// @Param q query string true "Item ID or name"
// @Success 200 {object} domain.MarketItem
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/market/resolve [get]
func (h *MarketHandler) Resolve(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("q"))
	if query == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "q is required",
		})
	}

	item, err := market.ResolveItem(c.Request().Context(), h.market, query)
	if err != nil {
		return marketError(c, err)
	}

	return c.JSON(http.StatusOK, item)
}

// Search handles GET /api/v1/market/search.
//
// @Summary Search marketplace items
// @Description Searches the marketplace with optional name, weapon, event, type, and price filters.
// @Tags market
// @Produce json
// @Param name query string false "Item name filter"
// @Param weapon query string false "Weapon filter"
// @Param event query string false "Event filter"
// @Param type query string false "Item type filter"
// @Param min_price query int false "Minimum price in coins"
// @Param max_price query int false "Maximum price in coins"
// @Param limit query int false "Maximum number of results"
// @Success 200 {array} domain.MarketItem
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/market/search [get]
func (h *MarketHandler) Search(c echo.Context) error {
	req := market.SearchRequest{
		Name:     c.QueryParam("name"),
		Weapon:   c.QueryParam("weapon"),
		Event:    c.QueryParam("event"),
		Category: c.QueryParam("type"),
	}

	var err error
	if req.MinPrice, err = optionalInt64(c, "min_price"); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "min_price must be an integer",
		})
	}
	if req.MaxPrice, err = optionalInt64(c, "max_price"); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "max_price must be an integer",
		})
	}

	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "limit must be a positive integer",
			})
		}
		req.Limit = limit
	}

	items, err := h.market.Search(c.Request().Context(), req)
	if err != nil {
		return marketError(c, err)
	}

	if items == nil {
		items = []domain.MarketItem{}
	}

	return c.JSON(http.StatusOK, items)
}

// marketError maps marketplace client errors onto API responses. Transient
// provider failures surface as a generic retry hint rather than the raw
// error.
func marketError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, market.ErrItemNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "item not found",
		})
	case errors.Is(err, market.ErrUnavailable), errors.Is(err, market.ErrRateLimited):
		return c.JSON(http.StatusBadGateway, map[string]string{
			"error": "marketplace unavailable, try again",
		})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "marketplace request failed: " + err.Error(),
		})
	}
}

func optionalInt64(c echo.Context, name string) (*int64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}

	return &v, nil
}
