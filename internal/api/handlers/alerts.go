package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/marketping/marketping/internal/market"
	"github.com/marketping/marketping/internal/store"
	domain "github.com/marketping/marketping/pkg/types"
)

// AlertHandler handles alert CRUD operations scoped to a guild and user.
type AlertHandler struct {
	store  store.Store
	market market.Client
}

// NewAlertHandler creates a new AlertHandler.
func NewAlertHandler(s store.Store, m market.Client) *AlertHandler {
	return &AlertHandler{store: s, market: m}
}

type createAlertRequest struct {
	// Item is either a numeric marketplace item ID or an item name to
	// resolve against the marketplace.
	Item string `json:"item"`
}

// List handles GET /api/v1/guilds/:guild/users/:user/alerts.
//
// @Summary List alerts
// @Description Returns all alerts for a user in a guild, ordered by item ID.
// @Tags alerts
// @Produce json
// @Param guild path int true "Guild ID"
// @Param user path int true "User ID"
// @Success 200 {array} domain.Alert
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/guilds/{guild}/users/{user}/alerts [get]
func (h *AlertHandler) List(c echo.Context) error {
	guildID, userID, err := pathIDs(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": err.Error(),
		})
	}

	alerts, err := h.store.ListAlerts(c.Request().Context(), guildID, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "listing alerts: " + err.Error(),
		})
	}

	if alerts == nil {
		alerts = []domain.Alert{}
	}

	return c.JSON(http.StatusOK, alerts)
}

// Create handles POST /api/v1/guilds/:guild/users/:user/alerts.
//
// The item field accepts either a numeric item ID or an item name. The
// alert's baseline is seeded from the item's current price, which may be
// absent if the item is unlisted. Creating an alert that already exists
// replaces its baseline rather than failing.
//
// @Summary Create an alert
// @Description Creates or replaces a price alert for an item, resolved by ID or name.
// @Tags alerts
// @Accept json
// @Produce json
// @Param guild path int true "Guild ID"
// @Param user path int true "User ID"
// @Param alert body createAlertRequest true "Item ID or name"
// @Success 201 {object} domain.Alert
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/guilds/{guild}/users/{user}/alerts [post]
func (h *AlertHandler) Create(c echo.Context) error {
	guildID, userID, err := pathIDs(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": err.Error(),
		})
	}

	var req createAlertRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body: " + err.Error(),
		})
	}

	if strings.TrimSpace(req.Item) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "item is required",
		})
	}

	ctx := c.Request().Context()

	item, err := market.ResolveItem(ctx, h.market, req.Item)
	switch {
	case errors.Is(err, market.ErrItemNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "item not found",
		})
	case errors.Is(err, market.ErrUnavailable), errors.Is(err, market.ErrRateLimited):
		return c.JSON(http.StatusBadGateway, map[string]string{
			"error": "marketplace unavailable, try again",
		})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "resolving item: " + err.Error(),
		})
	}

	alert := domain.Alert{
		GuildID:   guildID,
		UserID:    userID,
		ItemID:    item.ID,
		LastPrice: item.Price,
	}

	if err := h.store.UpsertAlert(ctx, &alert); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "creating alert: " + err.Error(),
		})
	}

	return c.JSON(http.StatusCreated, alert)
}

// Delete handles DELETE /api/v1/guilds/:guild/users/:user/alerts/:item.
//
// Deleting an alert that does not exist still returns 204.
//
// @Summary Delete an alert
// @Description Removes a price alert. Idempotent.
// @Tags alerts
// @Param guild path int true "Guild ID"
// @Param user path int true "User ID"
// @Param item path string true "Item ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/guilds/{guild}/users/{user}/alerts/{item} [delete]
func (h *AlertHandler) Delete(c echo.Context) error {
	guildID, userID, err := pathIDs(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": err.Error(),
		})
	}

	itemID := c.Param("item")
	if itemID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "item is required",
		})
	}

	if err := h.store.RemoveAlert(c.Request().Context(), guildID, userID, itemID); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "removing alert: " + err.Error(),
		})
	}

	return c.NoContent(http.StatusNoContent)
}

func pathIDs(c echo.Context) (guildID, userID int64, err error) {
	guildID, err = strconv.ParseInt(c.Param("guild"), 10, 64)
	if err != nil {
		return 0, 0, errors.New("guild must be a numeric ID")
	}

	userID, err = strconv.ParseInt(c.Param("user"), 10, 64)
	if err != nil {
		return 0, 0, errors.New("user must be a numeric ID")
	}

	return guildID, userID, nil
}
