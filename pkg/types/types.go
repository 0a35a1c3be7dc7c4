// Package domain defines the core business types for marketping.
package domain

import (
	"time"
)

// Alert represents a price-change subscription for a single user on a
// single marketplace item. The (GuildID, UserID, ItemID) triple is the
// identity; at most one alert exists per triple.
type Alert struct {
	GuildID int64  `json:"guild_id" db:"guild_id"`
	UserID  int64  `json:"user_id"  db:"user_id"`
	ItemID  string `json:"item_id"  db:"item_id"`

	// LastPrice is the last observed price in coins. Nil means the item
	// has never been successfully observed for this alert; the first
	// observation is itself a reportable change.
	LastPrice *int64 `json:"last_price,omitempty" db:"last_price"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// MarketItem is the marketplace's current view of an item. It is fetched
// fresh on every use and never persisted; only an Alert's LastPrice
// baseline survives between polls.
type MarketItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Weapon   string `json:"weapon,omitempty"`
	Event    string `json:"event,omitempty"`
	Category string `json:"category,omitempty"`

	// Price is nil when the item is currently unlisted or the provider
	// did not report one.
	Price *int64 `json:"price,omitempty"`
}

// PriceChange is a detected baseline-vs-market difference for one alert.
// OldPrice is nil on the first observation.
type PriceChange struct {
	GuildID  int64
	UserID   int64
	ItemID   string
	ItemName string
	OldPrice *int64
	NewPrice int64
}

// JobRun records a single execution of a scheduled job.
type JobRun struct {
	ID           string     `json:"id"                      db:"id"`
	JobName      string     `json:"job_name"                db:"job_name"`
	StartedAt    time.Time  `json:"started_at"              db:"started_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"  db:"completed_at"`
	Status       string     `json:"status"                  db:"status"`
	ErrorText    string     `json:"error_text,omitempty"    db:"error_text"`
	RowsAffected *int       `json:"rows_affected,omitempty" db:"rows_affected"`
}

// Int64 returns a pointer to v. Convenience for building optional prices.
func Int64(v int64) *int64 {
	return &v
}
