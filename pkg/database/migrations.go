package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates JSONB GIN indexes for PostgreSQL.
// The trigger config index backs the composio webhook fan-out, which
// matches triggers by config->>'composio_trigger_id'.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_triggers_config_gin
		ON triggers USING gin(config jsonb_path_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create trigger config GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_threads_metadata_gin
		ON threads USING gin(metadata jsonb_path_ops)`)
	if err != nil {
		return fmt.Errorf("failed to create thread metadata GIN index: %w", err)
	}

	return nil
}

// CreatePartialUniqueIndexes creates PostgreSQL partial indexes that
// Ent/Atlas cannot express. These must match the index annotations in
// ent/schema and the weft_core migration.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// At most one running run per thread
	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS agent_run_one_running_idx
		ON agent_runs (thread_id)
		WHERE status = 'running'`)
	if err != nil {
		return fmt.Errorf("failed to create one-running-run index: %w", err)
	}

	// Idempotent credit deduction per LLM response
	_, err = db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS credit_ledger_llm_response_idx
		ON credit_ledgers (llm_response_id)
		WHERE llm_response_id IS NOT NULL`)
	if err != nil {
		return fmt.Errorf("failed to create ledger dedup index: %w", err)
	}

	// Fast budget check scans only usage rows
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS message_usage_rows_idx
		ON messages (thread_id, created_at)
		WHERE type = 'llm_response_end'`)
	if err != nil {
		return fmt.Errorf("failed to create usage rows index: %w", err)
	}

	return nil
}
