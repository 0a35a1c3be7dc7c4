// Package engine implements the alert reconciliation cycle and its scheduler.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/marketping/marketping/internal/market"
	"github.com/marketping/marketping/internal/metrics"
	"github.com/marketping/marketping/internal/notify"
	"github.com/marketping/marketping/internal/store"
	domain "github.com/marketping/marketping/pkg/types"
)

const defaultRowTimeout = 30 * time.Second

// Reconciler drives one polling cycle: snapshot all alerts, fetch each item's
// current price, notify subscribers about changes, and advance baselines.
//
// Delivery is at-least-once: the notification goes out before the baseline is
// written, so a crash between the two repeats the notification next cycle
// rather than losing it.
type Reconciler struct {
	store    store.Store
	market   market.Client
	notifier notify.Notifier
	log      *slog.Logger

	rowTimeout    time.Duration
	staggerOffset time.Duration
}

// NewReconciler creates a Reconciler with injected dependencies.
func NewReconciler(
	s store.Store,
	m market.Client,
	n notify.Notifier,
	opts ...Option,
) *Reconciler {
	r := &Reconciler{
		store:      s,
		market:     m,
		notifier:   n,
		log:        slog.Default(),
		rowTimeout: defaultRowTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Option configures the Reconciler.
type Option func(*Reconciler)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Reconciler) {
		r.log = l
	}
}

// WithRowTimeout bounds a single alert's fetch and notify within a cycle.
func WithRowTimeout(d time.Duration) Option {
	return func(r *Reconciler) {
		if d > 0 {
			r.rowTimeout = d
		}
	}
}

// WithStaggerOffset sets the delay between processing each alert, to avoid
// bursting the marketplace API.
func WithStaggerOffset(d time.Duration) Option {
	return func(r *Reconciler) {
		r.staggerOffset = d
	}
}

// CycleResult summarizes one reconciliation cycle.
type CycleResult struct {
	Checked  int
	Changes  int
	Skipped  int
	Failures int
}

// RunCycle executes one reconciliation cycle. It returns an error only when
// the alert snapshot itself cannot be taken; per-alert failures are logged,
// counted, and never abort the cycle.
func (r *Reconciler) RunCycle(ctx context.Context) (*CycleResult, error) {
	start := time.Now()
	defer func() {
		metrics.CycleDuration.Observe(time.Since(start).Seconds())
	}()

	alerts, err := r.store.ListAllAlerts(ctx)
	if err != nil {
		metrics.CyclesTotal.WithLabelValues("failed").Inc()
		return nil, fmt.Errorf("listing alerts: %w", err)
	}

	res := &CycleResult{}

	for i := range alerts {
		if ctx.Err() != nil {
			metrics.CyclesTotal.WithLabelValues("failed").Inc()
			return res, ctx.Err()
		}

		stop := r.reconcileAlert(ctx, &alerts[i], res)
		if stop {
			// Rate limited: leave the remaining rows for the next cycle.
			break
		}

		if i < len(alerts)-1 && r.staggerOffset > 0 {
			select {
			case <-ctx.Done():
				metrics.CyclesTotal.WithLabelValues("failed").Inc()
				return res, ctx.Err()
			case <-time.After(r.staggerOffset):
			}
		}
	}

	metrics.CyclesTotal.WithLabelValues("succeeded").Inc()
	r.log.Info("reconcile cycle complete",
		"checked", res.Checked,
		"changes", res.Changes,
		"skipped", res.Skipped,
		"failures", res.Failures,
		"duration", time.Since(start),
	)
	return res, nil
}

// reconcileAlert processes one alert. The returned bool tells the cycle to
// stop fetching entirely (rate limit exhausted).
func (r *Reconciler) reconcileAlert(
	ctx context.Context,
	a *domain.Alert,
	res *CycleResult,
) (stop bool) {
	rowCtx, cancel := context.WithTimeout(ctx, r.rowTimeout)
	defer cancel()

	res.Checked++
	metrics.AlertsCheckedTotal.Inc()

	item, err := r.market.Item(rowCtx, a.ItemID)
	if err != nil {
		if errors.Is(err, market.ErrRateLimited) {
			r.log.Warn("marketplace rate limited, stopping cycle early",
				"item_id", a.ItemID,
				"error", err,
			)
			res.Failures++
			metrics.FetchFailuresTotal.Inc()
			return true
		}
		r.log.Error("item fetch failed",
			"guild_id", a.GuildID,
			"user_id", a.UserID,
			"item_id", a.ItemID,
			"error", err,
		)
		res.Failures++
		metrics.FetchFailuresTotal.Inc()
		return false
	}

	// Unlisted items carry no price; the baseline keeps its last value.
	if item.Price == nil {
		res.Skipped++
		return false
	}
	newPrice := *item.Price

	if a.LastPrice != nil && *a.LastPrice == newPrice {
		return false
	}

	// A nil baseline means this is the first observation; it is reported
	// like any other change, with OldPrice left nil.
	ev := domain.PriceChange{
		GuildID:  a.GuildID,
		UserID:   a.UserID,
		ItemID:   a.ItemID,
		ItemName: item.Name,
		OldPrice: a.LastPrice,
		NewPrice: newPrice,
	}

	res.Changes++
	metrics.PriceChangesTotal.Inc()

	if err := r.notifier.PriceChange(rowCtx, ev); err != nil {
		metrics.NotificationFailuresTotal.Inc()
		if !errors.Is(err, notify.ErrUnreachable) {
			// Transient delivery failure: keep the old baseline so the
			// change is re-detected and re-sent next cycle.
			r.log.Error("notification failed, baseline kept",
				"guild_id", a.GuildID,
				"user_id", a.UserID,
				"item_id", a.ItemID,
				"error", err,
			)
			res.Failures++
			return false
		}
		// The recipient is gone (left the guild, closed DMs). There is
		// no point repeating the notification, so the baseline still
		// advances below.
		r.log.Warn("recipient unreachable",
			"guild_id", a.GuildID,
			"user_id", a.UserID,
			"item_id", a.ItemID,
			"error", err,
		)
	}

	if err := r.store.UpdateLastPrice(rowCtx, a.GuildID, a.UserID, a.ItemID, newPrice); err != nil {
		r.log.Error("baseline update failed",
			"guild_id", a.GuildID,
			"user_id", a.UserID,
			"item_id", a.ItemID,
			"error", err,
		)
		res.Failures++
	}

	return false
}
