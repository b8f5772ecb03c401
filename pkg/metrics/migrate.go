package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/MathieuSchaff/tdah-habit-tracket/pkg/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// MigrationMetrics records the outcome of schema migration commands.
type MigrationMetrics struct {
	duration *prometheus.HistogramVec
	success  *prometheus.CounterVec
	failure  *prometheus.CounterVec
}

// NewMigrationMetrics registers the migration metrics on the provided registerer.
func NewMigrationMetrics(reg prometheus.Registerer) *MigrationMetrics {
	if reg == nil {
		return &MigrationMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tdah_migration_duration_seconds",
		Help:    "Duration of schema migration commands in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"command"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tdah_migration_success_total",
		Help: "Successful schema migration commands.",
	}, []string{"command"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tdah_migration_failure_total",
		Help: "Failed schema migration commands.",
	}, []string{"command"})
	reg.MustRegister(duration, success, failure)
	return &MigrationMetrics{
		duration: duration,
		success:  success,
		failure:  failure,
	}
}

// ObserveDuration records the duration for the named command.
func (m *MigrationMetrics) ObserveDuration(command string, duration time.Duration) {
	if m == nil || m.duration == nil {
		return
	}
	m.duration.WithLabelValues(normalizeLabel(command)).Observe(duration.Seconds())
}

// IncSuccess increments the success counter for the named command.
func (m *MigrationMetrics) IncSuccess(command string) {
	if m == nil || m.success == nil {
		return
	}
	m.success.WithLabelValues(normalizeLabel(command)).Inc()
}

// IncFailure increments the failure counter for the named command.
func (m *MigrationMetrics) IncFailure(command string) {
	if m == nil || m.failure == nil {
		return
	}
	m.failure.WithLabelValues(normalizeLabel(command)).Inc()
}

// Push sends everything gathered to the configured Pushgateway. The CLI is
// short-lived, so there is nothing to scrape. No-op without a gateway URL.
func Push(ctx context.Context, cfg config.MetricsConfig, gatherer prometheus.Gatherer) error {
	if !cfg.PushEnabled() || gatherer == nil {
		return nil
	}
	if err := push.New(cfg.PushgatewayURL, cfg.Job).Gatherer(gatherer).PushContext(ctx); err != nil {
		return fmt.Errorf("pushing metrics to %s: %w", cfg.PushgatewayURL, err)
	}
	return nil
}

func normalizeLabel(command string) string {
	if command == "" {
		return "unknown"
	}
	return command
}
