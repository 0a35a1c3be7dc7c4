package store

// SQL query constants organized by entity.
// All SQL lives here; PostgresStore methods reference these constants.

// Alert queries.
const (
	queryUpsertAlert = `
		INSERT INTO alerts (guild_id, user_id, item_id, last_price, created_at, updated_at)
		VALUES (@guild_id, @user_id, @item_id, @last_price, now(), now())
		ON CONFLICT (guild_id, user_id, item_id) DO UPDATE SET
			last_price = EXCLUDED.last_price,
			updated_at = now()
		RETURNING created_at, updated_at`

	queryRemoveAlert = `
		DELETE FROM alerts
		WHERE guild_id = $1 AND user_id = $2 AND item_id = $3`

	queryListAlerts = `
		SELECT guild_id, user_id, item_id, last_price, created_at, updated_at
		FROM alerts
		WHERE guild_id = $1 AND user_id = $2
		ORDER BY item_id ASC`

	queryListAllAlerts = `
		SELECT guild_id, user_id, item_id, last_price, created_at, updated_at
		FROM alerts
		ORDER BY guild_id, user_id, item_id`

	queryUpdateLastPrice = `
		UPDATE alerts SET
			last_price = $4,
			updated_at = now()
		WHERE guild_id = $1 AND user_id = $2 AND item_id = $3`
)

// Scheduler queries.
const (
	queryInsertJobRun = `
		INSERT INTO job_runs (job_name)
		VALUES ($1)
		RETURNING id`

	queryCompleteJobRun = `
		UPDATE job_runs SET
			completed_at  = now(),
			status        = $2,
			error_text    = $3,
			rows_affected = $4
		WHERE id = $1`

	queryListJobRuns = `
		SELECT id, job_name, started_at, completed_at, status,
			COALESCE(error_text, ''), rows_affected
		FROM job_runs
		WHERE job_name = $1
		ORDER BY started_at DESC
		LIMIT $2`

	queryMarkStaleJobRunsCrashed = `
		UPDATE job_runs SET
			status       = 'crashed',
			completed_at = now()
		WHERE status = 'running' AND started_at < $1`
)
