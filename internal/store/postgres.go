package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/marketping/marketping/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
//
// TODO(test): PostgresStore methods require live Postgres, tested via integration tests.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// PostgresOption configures the PostgresStore.
type PostgresOption func(*pgxpool.Config)

// WithPoolSize overrides the default connection pool size.
func WithPoolSize(n int) PostgresOption {
	return func(cfg *pgxpool.Config) {
		if n > 0 {
			cfg.MaxConns = int32(n)
		}
	}
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(
	ctx context.Context,
	connString string,
	opts ...PostgresOption,
) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize
	for _, opt := range opts {
		opt(cfg)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// UpsertAlert inserts or replaces an alert by its (guild, user, item) triple.
func (s *PostgresStore) UpsertAlert(ctx context.Context, a *domain.Alert) error {
	args := pgx.NamedArgs{
		"guild_id":   a.GuildID,
		"user_id":    a.UserID,
		"item_id":    a.ItemID,
		"last_price": a.LastPrice,
	}

	err := s.pool.QueryRow(ctx, queryUpsertAlert, args).Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upserting alert: %w", err)
	}
	return nil
}

// RemoveAlert deletes an alert. Absent rows are a no-op.
func (s *PostgresStore) RemoveAlert(
	ctx context.Context,
	guildID, userID int64,
	itemID string,
) error {
	_, err := s.pool.Exec(ctx, queryRemoveAlert, guildID, userID, itemID)
	if err != nil {
		return fmt.Errorf("removing alert: %w", err)
	}
	return nil
}

// ListAlerts returns one user's alerts in a guild, ordered by item id.
func (s *PostgresStore) ListAlerts(
	ctx context.Context,
	guildID, userID int64,
) ([]domain.Alert, error) {
	rows, err := s.pool.Query(ctx, queryListAlerts, guildID, userID)
	if err != nil {
		return nil, fmt.Errorf("querying alerts: %w", err)
	}
	defer rows.Close()

	return scanAlerts(rows)
}

// ListAllAlerts returns every alert across all guilds and users.
func (s *PostgresStore) ListAllAlerts(ctx context.Context) ([]domain.Alert, error) {
	rows, err := s.pool.Query(ctx, queryListAllAlerts)
	if err != nil {
		return nil, fmt.Errorf("querying all alerts: %w", err)
	}
	defer rows.Close()

	return scanAlerts(rows)
}

// UpdateLastPrice sets the baseline for an existing alert. Zero rows affected
// means the alert was removed concurrently; that is not an error.
func (s *PostgresStore) UpdateLastPrice(
	ctx context.Context,
	guildID, userID int64,
	itemID string,
	price int64,
) error {
	_, err := s.pool.Exec(ctx, queryUpdateLastPrice, guildID, userID, itemID, price)
	if err != nil {
		return fmt.Errorf("updating last price: %w", err)
	}
	return nil
}

func scanAlerts(rows pgx.Rows) ([]domain.Alert, error) {
	var alerts []domain.Alert
	for rows.Next() {
		var a domain.Alert
		err := rows.Scan(
			&a.GuildID, &a.UserID, &a.ItemID, &a.LastPrice,
			&a.CreatedAt, &a.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning alert: %w", err)
		}
		alerts = append(alerts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating alerts: %w", err)
	}
	return alerts, nil
}

// InsertJobRun records the start of a scheduled job execution.
func (s *PostgresStore) InsertJobRun(ctx context.Context, jobName string) (string, error) {
	var id string
	if err := s.pool.QueryRow(ctx, queryInsertJobRun, jobName).Scan(&id); err != nil {
		return "", fmt.Errorf("inserting job run: %w", err)
	}
	return id, nil
}

// CompleteJobRun marks a job run as finished with the given status.
func (s *PostgresStore) CompleteJobRun(
	ctx context.Context,
	id string,
	status string,
	errText string,
	rowsAffected int,
) error {
	_, err := s.pool.Exec(ctx, queryCompleteJobRun, id, status, errText, rowsAffected)
	if err != nil {
		return fmt.Errorf("completing job run: %w", err)
	}
	return nil
}

// ListJobRuns returns the most recent runs for a job, newest first.
func (s *PostgresStore) ListJobRuns(
	ctx context.Context,
	jobName string,
	limit int,
) ([]domain.JobRun, error) {
	rows, err := s.pool.Query(ctx, queryListJobRuns, jobName, limit)
	if err != nil {
		return nil, fmt.Errorf("querying job runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.JobRun
	for rows.Next() {
		var r domain.JobRun
		err := rows.Scan(
			&r.ID, &r.JobName, &r.StartedAt, &r.CompletedAt,
			&r.Status, &r.ErrorText, &r.RowsAffected,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning job run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating job runs: %w", err)
	}
	return runs, nil
}

// RecoverStaleJobRuns marks running job runs older than the cutoff as crashed.
// Called at startup so a crash mid-cycle doesn't leave runs dangling forever.
func (s *PostgresStore) RecoverStaleJobRuns(
	ctx context.Context,
	olderThan time.Duration,
) (int, error) {
	cutoff := time.Now().Add(-olderThan)
	tag, err := s.pool.Exec(ctx, queryMarkStaleJobRunsCrashed, cutoff)
	if err != nil {
		return 0, fmt.Errorf("recovering stale job runs: %w", err)
	}
	return int(tag.RowsAffected()), nil
}
