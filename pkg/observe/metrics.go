// Package observe provides application-wide observability primitives for
// Weft: OpenTelemetry metrics, distributed tracing, and trace-aware
// structured logging.
//
// Metrics are recorded through the OpenTelemetry Metrics API. A Prometheus
// exporter bridge is available via [InitProvider] so that metrics can be
// scraped via the standard /metrics endpoint. A package-level default
// [Metrics] instance ([DefaultMetrics]) is provided for convenience; tests
// should use [NewMetrics] with a custom [metric.MeterProvider] to avoid
// cross-test pollution.
package observe

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// meterName is the instrumentation scope name used for all Weft metrics.
const meterName = "github.com/weftlabs/weft"

// Metrics holds all OpenTelemetry metric instruments for the application.
// All fields are safe for concurrent use — the underlying OTel types handle
// their own synchronisation.
type Metrics struct {
	// --- Latency histograms ---

	// LLMDuration tracks LLM generation latency per streamed response.
	LLMDuration metric.Float64Histogram

	// ToolExecutionDuration tracks tool execution latency.
	ToolExecutionDuration metric.Float64Histogram

	// CompressionDuration tracks context compression pass latency.
	CompressionDuration metric.Float64Histogram

	// --- Counters ---

	// ProviderRequests counts LLM provider API calls. Use with attributes:
	//   attribute.String("provider", ...), attribute.String("model", ...), attribute.String("status", ...)
	ProviderRequests metric.Int64Counter

	// ToolCalls counts tool invocations. Use with attributes:
	//   attribute.String("tool", ...), attribute.String("status", ...)
	ToolCalls metric.Int64Counter

	// AutoContinues counts automatic loop continuations by reason.
	AutoContinues metric.Int64Counter

	// CreditDeductions counts billing deductions applied to accounts.
	CreditDeductions metric.Int64Counter

	// CreditsDeductedUSD accumulates the total deducted amount in USD.
	CreditsDeductedUSD metric.Float64Counter

	// TriggerEvents counts processed trigger events. Use with attributes:
	//   attribute.String("provider", ...), attribute.String("status", ...)
	TriggerEvents metric.Int64Counter

	// --- Error counters ---

	// ProviderErrors counts LLM provider errors. Use with attributes:
	//   attribute.String("provider", ...), attribute.String("kind", ...)
	ProviderErrors metric.Int64Counter

	// --- Gauges ---

	// ActiveRuns tracks the number of agent runs currently executing on
	// this pod.
	ActiveRuns metric.Int64UpDownCounter

	// EventSubscribers tracks the number of live event stream subscribers.
	EventSubscribers metric.Int64UpDownCounter

	// --- HTTP middleware ---

	// HTTPRequestDuration tracks HTTP request processing time. Use with attributes:
	//   attribute.String("method", ...), attribute.String("path", ...)
	HTTPRequestDuration metric.Float64Histogram
}

// latencyBuckets defines histogram bucket boundaries (in seconds) covering
// sub-second tool calls up to long streaming generations.
var latencyBuckets = []float64{
	0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60,
}

// NewMetrics creates a fully initialised [Metrics] struct using the given
// [metric.MeterProvider]. Returns an error if any instrument creation fails.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	// Histograms.
	if met.LLMDuration, err = m.Float64Histogram("weft.llm.duration",
		metric.WithDescription("Latency of LLM generation per streamed response."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}
	if met.ToolExecutionDuration, err = m.Float64Histogram("weft.tool_execution.duration",
		metric.WithDescription("Latency of tool execution."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}
	if met.CompressionDuration, err = m.Float64Histogram("weft.compression.duration",
		metric.WithDescription("Latency of context compression passes."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}

	// Counters.
	if met.ProviderRequests, err = m.Int64Counter("weft.provider.requests",
		metric.WithDescription("Total LLM provider API requests by provider, model, and status."),
	); err != nil {
		return nil, err
	}
	if met.ToolCalls, err = m.Int64Counter("weft.tool.calls",
		metric.WithDescription("Total tool invocations by tool name and status."),
	); err != nil {
		return nil, err
	}
	if met.AutoContinues, err = m.Int64Counter("weft.auto_continues",
		metric.WithDescription("Total automatic loop continuations by reason."),
	); err != nil {
		return nil, err
	}
	if met.CreditDeductions, err = m.Int64Counter("weft.credits.deductions",
		metric.WithDescription("Total billing deductions applied to accounts."),
	); err != nil {
		return nil, err
	}
	if met.CreditsDeductedUSD, err = m.Float64Counter("weft.credits.deducted_usd",
		metric.WithDescription("Total amount deducted from accounts in USD."),
		metric.WithUnit("{USD}"),
	); err != nil {
		return nil, err
	}
	if met.TriggerEvents, err = m.Int64Counter("weft.trigger.events",
		metric.WithDescription("Total processed trigger events by provider and status."),
	); err != nil {
		return nil, err
	}

	// Error counters.
	if met.ProviderErrors, err = m.Int64Counter("weft.provider.errors",
		metric.WithDescription("Total LLM provider errors by provider and kind."),
	); err != nil {
		return nil, err
	}

	// Gauges (UpDownCounters).
	if met.ActiveRuns, err = m.Int64UpDownCounter("weft.active_runs",
		metric.WithDescription("Number of agent runs currently executing on this pod."),
	); err != nil {
		return nil, err
	}
	if met.EventSubscribers, err = m.Int64UpDownCounter("weft.event_subscribers",
		metric.WithDescription("Number of live event stream subscribers."),
	); err != nil {
		return nil, err
	}

	// HTTP middleware histogram.
	if met.HTTPRequestDuration, err = m.Float64Histogram("weft.http.request.duration",
		metric.WithDescription("HTTP request latency by method and path."),
		metric.WithUnit("s"),
	); err != nil {
		return nil, err
	}

	return met, nil
}

// defaultMetrics is the lazily-initialised package-level Metrics instance.
var (
	defaultMetrics     *Metrics
	defaultMetricsOnce sync.Once
)

// DefaultMetrics returns the package-level [Metrics] instance, creating it on
// first call using [otel.GetMeterProvider]. Subsequent calls return the same
// pointer. Panics if instrument creation fails (should not happen with the
// global provider).
func DefaultMetrics() *Metrics {
	defaultMetricsOnce.Do(func() {
		var err error
		defaultMetrics, err = NewMetrics(otel.GetMeterProvider())
		if err != nil {
			panic("observe: failed to create default metrics: " + err.Error())
		}
	})
	return defaultMetrics
}

// Attr is a convenience alias for [attribute.String] to reduce verbosity at
// call sites.
func Attr(key, value string) attribute.KeyValue {
	return attribute.String(key, value)
}

// RecordProviderRequest records an LLM provider request counter increment
// with the standard attribute set.
func (m *Metrics) RecordProviderRequest(ctx context.Context, provider, model, status string) {
	m.ProviderRequests.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("provider", provider),
			attribute.String("model", model),
			attribute.String("status", status),
		),
	)
}

// RecordToolCall records a tool call counter increment with the standard
// attribute set.
func (m *Metrics) RecordToolCall(ctx context.Context, tool, status string) {
	m.ToolCalls.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("tool", tool),
			attribute.String("status", status),
		),
	)
}

// RecordProviderError records an LLM provider error counter increment.
func (m *Metrics) RecordProviderError(ctx context.Context, provider, kind string) {
	m.ProviderErrors.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("provider", provider),
			attribute.String("kind", kind),
		),
	)
}

// RecordCreditDeduction records a billing deduction: one count increment and
// the deducted USD amount.
func (m *Metrics) RecordCreditDeduction(ctx context.Context, model string, amountUSD float64) {
	attrs := metric.WithAttributes(attribute.String("model", model))
	m.CreditDeductions.Add(ctx, 1, attrs)
	m.CreditsDeductedUSD.Add(ctx, amountUSD, attrs)
}

// RecordTriggerEvent records a processed trigger event counter increment.
func (m *Metrics) RecordTriggerEvent(ctx context.Context, provider, status string) {
	m.TriggerEvents.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("provider", provider),
			attribute.String("status", status),
		),
	)
}
