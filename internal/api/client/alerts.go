package client

import (
	"context"
	"fmt"
	"net/url"

	domain "github.com/marketping/marketping/pkg/types"
)

// ListAlerts returns all alerts for a user in a guild.
func (c *Client) ListAlerts(ctx context.Context, guildID, userID int64) ([]domain.Alert, error) {
	var alerts []domain.Alert
	path := fmt.Sprintf("/api/v1/guilds/%d/users/%d/alerts", guildID, userID)
	if err := c.get(ctx, path, &alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}

// CreateAlert creates or replaces an alert for an item, given either a
// numeric item ID or an item name.
func (c *Client) CreateAlert(ctx context.Context, guildID, userID int64, item string) (*domain.Alert, error) {
	var created domain.Alert
	path := fmt.Sprintf("/api/v1/guilds/%d/users/%d/alerts", guildID, userID)
	body := map[string]string{"item": item}
	if err := c.post(ctx, path, body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteAlert removes an alert. Deleting an absent alert is not an error.
func (c *Client) DeleteAlert(ctx context.Context, guildID, userID int64, itemID string) error {
	path := fmt.Sprintf("/api/v1/guilds/%d/users/%d/alerts/%s", guildID, userID, url.PathEscape(itemID))
	return c.del(ctx, path)
}
