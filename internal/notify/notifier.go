// Package notify defines the notification interface and implementations
// for price change delivery.
package notify

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/marketping/marketping/pkg/types"
)

// ErrUnreachable means the recipient cannot receive notifications: they left
// the guild, closed their DMs, or the account no longer exists. The condition
// is per-recipient and non-fatal; callers log it and move on.
var ErrUnreachable = errors.New("notify: recipient unreachable")

// Notifier defines the interface for delivering price change notifications.
type Notifier interface {
	PriceChange(ctx context.Context, ev domain.PriceChange) error
}

// FormatPriceChange renders the user-facing message body for a change.
func FormatPriceChange(ev domain.PriceChange) string {
	if ev.OldPrice == nil {
		return fmt.Sprintf(
			"%s is now listed at %d coins (first observation).",
			ev.ItemName, ev.NewPrice,
		)
	}
	return fmt.Sprintf(
		"%s changed from %d to %d coins.",
		ev.ItemName, *ev.OldPrice, ev.NewPrice,
	)
}
