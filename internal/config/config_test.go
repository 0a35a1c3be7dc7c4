package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		yaml      string
		envVars   map[string]string
		wantErr   string
		checkFunc func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid minimal config",
			yaml: `
database:
  host: localhost
  name: marketping
  user: marketping
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "localhost", cfg.Database.Host)
				assert.Equal(t, "marketping", cfg.Database.Name)
				assert.Equal(t, "marketping", cfg.Database.User)
			},
		},
		{
			name: "defaults applied",
			yaml: `
database:
  host: localhost
  name: marketping
  user: marketping
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "0.0.0.0", cfg.Server.Host)
				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
				assert.Equal(t, 5432, cfg.Database.Port)
				assert.Equal(t, "disable", cfg.Database.SSLMode)
				assert.Equal(t, 10, cfg.Database.PoolSize)
				assert.Equal(t, "https://stats.cc/api/siege/marketplace/v1", cfg.Market.BaseURL)
				assert.Equal(t, 5.0, cfg.Market.RateLimit.PerSecond)
				assert.Equal(t, 10, cfg.Market.RateLimit.Burst)
				assert.Equal(t, int64(5000), cfg.Market.RateLimit.DailyLimit)
				assert.Equal(t, DefaultPollInterval, cfg.Schedule.PollInterval)
				assert.Equal(t, 30*time.Second, cfg.Schedule.RowTimeout)
				assert.Equal(t, time.Duration(0), cfg.Schedule.StaggerOffset)
				assert.Equal(t, "info", cfg.Logging.Level)
				assert.Equal(t, "text", cfg.Logging.Format)
			},
		},
		{
			name: "negative poll interval clamped to default",
			yaml: `
database:
  host: localhost
  name: marketping
  user: marketping
schedule:
  poll_interval: -5m
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, DefaultPollInterval, cfg.Schedule.PollInterval)
			},
		},
		{
			name: "env var substitution",
			yaml: `
database:
  host: localhost
  name: marketping
  user: marketping
  password: ${TEST_DB_PASSWORD}
`,
			envVars: map[string]string{
				"TEST_DB_PASSWORD": "s3cret",
			},
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "s3cret", cfg.Database.Password)
			},
		},
		{
			name: "missing required database.host",
			yaml: `
database:
  name: marketping
  user: marketping
`,
			wantErr: "database.host is required",
		},
		{
			name: "missing required database.name",
			yaml: `
database:
  host: localhost
  user: marketping
`,
			wantErr: "database.name is required",
		},
		{
			name: "missing required database.user",
			yaml: `
database:
  host: localhost
  name: marketping
`,
			wantErr: "database.user is required",
		},
		{
			name: "discord enabled without bot token",
			yaml: `
database:
  host: localhost
  name: marketping
  user: marketping
notifications:
  discord:
    enabled: true
`,
			wantErr: "notifications.discord.bot_token is required when discord is enabled",
		},
		{
			name:    "invalid YAML",
			yaml:    `{{{not valid yaml`,
			wantErr: "parsing config YAML",
		},
		{
			name: "full config with overrides",
			yaml: `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: 60s
  write_timeout: 60s
database:
  host: db.example.com
  port: 5433
  name: marketping_prod
  user: admin
  password: pass
  sslmode: require
  pool_size: 20
market:
  base_url: https://market.example.com/v1
  rate_limit:
    per_second: 2.5
    burst: 5
    daily_limit: 1000
schedule:
  poll_interval: 5m
  row_timeout: 10s
  stagger_offset: 250ms
notifications:
  discord:
    enabled: true
    bot_token: token-123
logging:
  level: debug
  format: json
`,
			checkFunc: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "127.0.0.1", cfg.Server.Host)
				assert.Equal(t, 9090, cfg.Server.Port)
				assert.Equal(t, 60*time.Second, cfg.Server.ReadTimeout)
				assert.Equal(t, "db.example.com", cfg.Database.Host)
				assert.Equal(t, 5433, cfg.Database.Port)
				assert.Equal(t, "require", cfg.Database.SSLMode)
				assert.Equal(t, 20, cfg.Database.PoolSize)
				assert.Equal(t, "https://market.example.com/v1", cfg.Market.BaseURL)
				assert.Equal(t, 2.5, cfg.Market.RateLimit.PerSecond)
				assert.Equal(t, 5, cfg.Market.RateLimit.Burst)
				assert.Equal(t, int64(1000), cfg.Market.RateLimit.DailyLimit)
				assert.Equal(t, 5*time.Minute, cfg.Schedule.PollInterval)
				assert.Equal(t, 10*time.Second, cfg.Schedule.RowTimeout)
				assert.Equal(t, 250*time.Millisecond, cfg.Schedule.StaggerOffset)
				assert.True(t, cfg.Notifications.Discord.Enabled)
				assert.Equal(t, "token-123", cfg.Notifications.Discord.BotToken)
				assert.Equal(t, "debug", cfg.Logging.Level)
				assert.Equal(t, "json", cfg.Logging.Format)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Only parallelize tests that don't modify env vars.
			if len(tt.envVars) == 0 {
				t.Parallel()
			}

			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))

			cfg, err := Load(path)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, cfg)

			if tt.checkFunc != nil {
				tt.checkFunc(t, cfg)
			}
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	_, err := Load("/nonexistent/path/config.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  DatabaseConfig
		want string
	}{
		{
			name: "basic DSN",
			cfg: DatabaseConfig{
				Host:     "localhost",
				Port:     5432,
				Name:     "marketping",
				User:     "marketping",
				Password: "pass",
				SSLMode:  "disable",
			},
			want: "host=localhost port=5432 dbname=marketping user=marketping password=pass sslmode=disable",
		},
		{
			name: "production DSN",
			cfg: DatabaseConfig{
				Host:     "db.example.com",
				Port:     5433,
				Name:     "marketping_prod",
				User:     "admin",
				Password: "s3cret",
				SSLMode:  "require",
			},
			want: "host=db.example.com port=5433 dbname=marketping_prod user=admin password=s3cret sslmode=require",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.cfg.DSN())
		})
	}
}
