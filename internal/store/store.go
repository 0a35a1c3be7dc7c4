// Package store defines the datastore abstraction for marketping.
// All business logic depends on the Store interface, never on concrete
// implementations. This enables mock-based testing without a running database.
package store

import (
	"context"
	"time"

	domain "github.com/marketping/marketping/pkg/types"
)

// Store defines all data access operations for marketping.
type Store interface {
	// Alerts
	//
	// UpsertAlert inserts or replaces the alert identified by its
	// (guild, user, item) triple, including the baseline price.
	UpsertAlert(ctx context.Context, a *domain.Alert) error
	// RemoveAlert deletes an alert. Removing an absent alert is a no-op.
	RemoveAlert(ctx context.Context, guildID, userID int64, itemID string) error
	// ListAlerts returns one user's alerts in a guild, ordered by item id.
	ListAlerts(ctx context.Context, guildID, userID int64) ([]domain.Alert, error)
	// ListAllAlerts returns every alert across all guilds and users.
	ListAllAlerts(ctx context.Context) ([]domain.Alert, error)
	// UpdateLastPrice sets the baseline for an existing alert. Updating an
	// alert that was removed concurrently affects zero rows and succeeds;
	// it never creates one.
	UpdateLastPrice(ctx context.Context, guildID, userID int64, itemID string, price int64) error

	// Scheduler
	InsertJobRun(ctx context.Context, jobName string) (id string, err error)
	CompleteJobRun(ctx context.Context, id string, status string, errText string, rowsAffected int) error
	ListJobRuns(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error)
	RecoverStaleJobRuns(ctx context.Context, olderThan time.Duration) (int, error)

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
