package notify

import (
	"context"
	"log/slog"

	domain "github.com/marketping/marketping/pkg/types"
)

// NoOpNotifier implements Notifier by logging discarded notifications. It is
// used when Discord is not configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that discards notifications with a log
// message.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// PriceChange logs and discards a price change notification.
func (n *NoOpNotifier) PriceChange(_ context.Context, ev domain.PriceChange) error {
	n.log.Debug("notification discarded (no backend configured)",
		"guild_id", ev.GuildID,
		"user_id", ev.UserID,
		"item_id", ev.ItemID,
		"new_price", ev.NewPrice,
	)
	return nil
}
