package config

import "time"

// QueueConfig contains run queue and worker pool configuration.
// These values control how agent runs are dequeued and processed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica/pod.
	// Each worker independently blocks on the Redis run queue.
	WorkerCount int `yaml:"worker_count"`

	// QueueKey is the Redis list the execution service pushes runs onto.
	QueueKey string `yaml:"queue_key"`

	// DequeueTimeout bounds a single BRPOP so workers can observe shutdown.
	DequeueTimeout time.Duration `yaml:"dequeue_timeout"`

	// RunTimeout is the maximum time a single agent run may execute.
	RunTimeout time.Duration `yaml:"run_timeout"`

	// GracefulShutdownTimeout is the max time to wait for active runs
	// to complete during shutdown. Should match RunTimeout.
	GracefulShutdownTimeout time.Duration `yaml:"graceful_shutdown_timeout"`

	// HeartbeatInterval is how often workers refresh the active-run key
	// and the run row's last_heartbeat_at.
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// ActiveRunTTL is the lifetime of the Redis active-run key. Must be
	// comfortably larger than HeartbeatInterval.
	ActiveRunTTL time.Duration `yaml:"active_run_ttl"`

	// OrphanDetectionInterval is how often to scan for runs whose worker
	// died without writing a terminal status.
	OrphanDetectionInterval time.Duration `yaml:"orphan_detection_interval"`

	// OrphanThreshold is how long a run can go without a heartbeat
	// before it is considered orphaned.
	OrphanThreshold time.Duration `yaml:"orphan_threshold"`
}

// DefaultQueueConfig returns the built-in queue defaults.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             5,
		QueueKey:                "weft:agent_run_queue",
		DequeueTimeout:          2 * time.Second,
		RunTimeout:              15 * time.Minute,
		GracefulShutdownTimeout: 15 * time.Minute,
		HeartbeatInterval:       20 * time.Second,
		ActiveRunTTL:            90 * time.Second,
		OrphanDetectionInterval: 1 * time.Minute,
		OrphanThreshold:         2 * time.Minute,
	}
}
