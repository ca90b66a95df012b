package config

// SystemConfig holds resolved system-wide infrastructure settings.
type SystemConfig struct {
	// ListenAddr is the HTTP bind address (default: ":8080").
	ListenAddr string

	// BaseURL is the externally reachable URL of this service. Scheduled
	// triggers post back to <BaseURL>/api/triggers/:id/webhook, so it must
	// be resolvable from the database running pg_cron.
	BaseURL string

	// PodID identifies this replica for run ownership and orphan recovery.
	// Defaults to the hostname.
	PodID string
}
