package database

import (
	"context"
	"encoding/json"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftlabs/weft/ent/agentrun"
	"github.com/weftlabs/weft/test/util"
)

// newTestClient wraps the shared per-test schema setup in a *Client and
// creates the raw-SQL indexes that ent auto-migration cannot express.
func newTestClient(t *testing.T) *Client {
	ctx := context.Background()

	entClient, db := util.SetupTestDatabase(t)

	drv := entsql.OpenDB(dialect.Postgres, db)

	err := CreateGINIndexes(ctx, drv)
	require.NoError(t, err)

	err = CreatePartialUniqueIndexes(ctx, drv)
	require.NoError(t, err)

	return NewClientFromEnt(entClient, db)
}

func TestDatabaseClient_ConnectionPool(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	// Test basic connectivity
	err := client.DB().PingContext(ctx)
	require.NoError(t, err)

	// Test health check
	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)
}

func TestOneRunningRunPerThread(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	thread, err := client.Thread.Create().
		SetID("thread-idx").
		SetAccountID("acct-1").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.AgentRun.Create().
		SetID("run-1").
		SetThreadID(thread.ID).
		Save(ctx)
	require.NoError(t, err)

	// Second running row for the same thread must hit the partial
	// unique index.
	_, err = client.AgentRun.Create().
		SetID("run-2").
		SetThreadID(thread.ID).
		Save(ctx)
	require.Error(t, err)

	// A terminal row does not occupy the slot.
	_, err = client.AgentRun.Create().
		SetID("run-3").
		SetThreadID(thread.ID).
		SetStatus(agentrun.StatusCompleted).
		Save(ctx)
	require.NoError(t, err)
}

func TestTriggerConfigContainmentQuery(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_, err := client.Trigger.Create().
		SetID("trig-1").
		SetAgentID("agent-1").
		SetProviderID("composio").
		SetTriggerType("webhook").
		SetName("github issues").
		SetConfig(map[string]any{"composio_trigger_id": "ct_123"}).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Trigger.Create().
		SetID("trig-2").
		SetAgentID("agent-1").
		SetProviderID("composio").
		SetTriggerType("webhook").
		SetName("linear issues").
		SetConfig(map[string]any{"composio_trigger_id": "ct_456"}).
		Save(ctx)
	require.NoError(t, err)

	// The containment form is what the GIN jsonb_path_ops index serves.
	rows, err := client.DB().QueryContext(ctx,
		`SELECT trigger_id FROM triggers WHERE config @> $1`,
		`{"composio_trigger_id": "ct_123"}`,
	)
	require.NoError(t, err)
	defer rows.Close()

	var results []string
	for rows.Next() {
		var id string
		require.NoError(t, rows.Scan(&id))
		results = append(results, id)
	}
	require.NoError(t, rows.Err())

	assert.Equal(t, []string{"trig-1"}, results)
}

func TestLoadConfigFromEnv(t *testing.T) {
	envKeys := []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
	}

	t.Run("defaults", func(t *testing.T) {
		for _, key := range envKeys {
			t.Setenv(key, "")
		}

		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, 5432, cfg.Port)
		assert.Equal(t, "weft", cfg.User)
		assert.Equal(t, "weft", cfg.Database)
		assert.Equal(t, "disable", cfg.SSLMode)
		assert.Equal(t, 10, cfg.MaxOpenConns)
		assert.Equal(t, 5, cfg.MaxIdleConns)
	})

	t.Run("custom values", func(t *testing.T) {
		t.Setenv("DB_HOST", "db.example.com")
		t.Setenv("DB_PORT", "5433")
		t.Setenv("DB_USER", "admin")
		t.Setenv("DB_PASSWORD", "secret")
		t.Setenv("DB_NAME", "production")
		t.Setenv("DB_SSLMODE", "require")

		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "db.example.com", cfg.Host)
		assert.Equal(t, 5433, cfg.Port)
		assert.Equal(t, "admin", cfg.User)
		assert.Equal(t, "production", cfg.Database)
		assert.Equal(t, "require", cfg.SSLMode)
	})

	t.Run("invalid port", func(t *testing.T) {
		t.Setenv("DB_PORT", "invalid")

		_, err := LoadConfigFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid DB_PORT")
	})
}

func TestConfigDSN(t *testing.T) {
	cfg := Config{
		Host:     "db.internal",
		Port:     5433,
		User:     "weft",
		Password: "pw",
		Database: "weft",
		SSLMode:  "require",
	}

	dsn := cfg.DSN()
	assert.Equal(t, "host=db.internal port=5433 user=weft password=pw dbname=weft sslmode=require", dsn)
}

func TestHealthStatus_JSONMilliseconds(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	// Get health status
	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	require.NotNil(t, health)

	// Verify response time is in milliseconds (can be 0 for very fast local pings)
	assert.GreaterOrEqual(t, health.ResponseTime, int64(0), "response time should be non-negative")
	assert.Less(t, health.ResponseTime, int64(1000), "response time should be less than 1 second for a local ping")

	// Marshal to JSON to verify the output format
	jsonBytes, err := json.Marshal(health)
	require.NoError(t, err)

	var jsonData map[string]interface{}
	err = json.Unmarshal(jsonBytes, &jsonData)
	require.NoError(t, err)

	// Verify response_time_ms is a number (not a huge nanosecond value)
	responseTime, ok := jsonData["response_time_ms"].(float64)
	require.True(t, ok, "response_time_ms should be a number")
	assert.GreaterOrEqual(t, responseTime, float64(0), "response_time_ms should be non-negative")
	// If this were nanoseconds, it would be > 1,000,000 (1ms in nanoseconds)
	assert.Less(t, responseTime, float64(1000000), "response_time_ms should be in milliseconds, not nanoseconds")

	// Verify wait_duration_ms is present and is a number
	waitDuration, ok := jsonData["wait_duration_ms"].(float64)
	require.True(t, ok, "wait_duration_ms should be a number")
	assert.GreaterOrEqual(t, waitDuration, float64(0), "wait_duration_ms should be non-negative")
	assert.Less(t, waitDuration, float64(1000000), "wait_duration_ms should be in milliseconds, not nanoseconds")
}
