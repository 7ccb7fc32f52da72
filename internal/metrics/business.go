package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Rotation outcomes reported through RecordRotation.
const (
	RotationSucceeded = "succeeded"
	RotationFailed    = "failed"
	RotationSkipped   = "skipped"
)

// BusinessMetrics records wallet key operations for observability.
type BusinessMetrics interface {
	// RecordOperation counts one operation. Status is "success" or "error".
	RecordOperation(ctx context.Context, domain, operation, status string)

	// RecordDuration records how long an operation took, in seconds.
	RecordDuration(ctx context.Context, domain, operation string, duration time.Duration, status string)

	// RecordPinFailure counts a PIN that did not unlock a wallet. A rising rate is the
	// signal for online PIN guessing.
	RecordPinFailure(ctx context.Context, operation string)

	// RecordRotation adds count wallets to the rotation total for outcome.
	RecordRotation(ctx context.Context, masterKeyID, outcome string, count int)
}

type businessMetrics struct {
	operationCounter  metric.Int64Counter
	durationHisto     metric.Float64Histogram
	pinFailureCounter metric.Int64Counter
	rotationCounter   metric.Int64Counter
}

// NewBusinessMetrics creates the wallet instruments on meterProvider. Every metric name is
// prefixed with namespace.
func NewBusinessMetrics(meterProvider metric.MeterProvider, namespace string) (BusinessMetrics, error) {
	meter := meterProvider.Meter(namespace)

	operationCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_operations_total", namespace),
		metric.WithDescription("Total number of wallet key operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create operation counter: %w", err)
	}

	// KDF-bound operations sit well above the default buckets' low end.
	durationHisto, err := meter.Float64Histogram(
		fmt.Sprintf("%s_operation_duration_seconds", namespace),
		metric.WithDescription("Duration of wallet key operations in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}

	pinFailureCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_pin_failures_total", namespace),
		metric.WithDescription("Total number of PINs that failed to unlock a wallet"),
		metric.WithUnit("{attempt}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create pin failure counter: %w", err)
	}

	rotationCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_wallet_key_rotations_total", namespace),
		metric.WithDescription("Total number of wallet keys processed by master key rotation"),
		metric.WithUnit("{wallet}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create rotation counter: %w", err)
	}

	return &businessMetrics{
		operationCounter:  operationCounter,
		durationHisto:     durationHisto,
		pinFailureCounter: pinFailureCounter,
		rotationCounter:   rotationCounter,
	}, nil
}

func (b *businessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	b.operationCounter.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("domain", domain),
			attribute.String("operation", operation),
			attribute.String("status", status),
		),
	)
}

func (b *businessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	b.durationHisto.Record(ctx, duration.Seconds(),
		metric.WithAttributes(
			attribute.String("domain", domain),
			attribute.String("operation", operation),
			attribute.String("status", status),
		),
	)
}

func (b *businessMetrics) RecordPinFailure(ctx context.Context, operation string) {
	b.pinFailureCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", operation)))
}

func (b *businessMetrics) RecordRotation(ctx context.Context, masterKeyID, outcome string, count int) {
	if count <= 0 {
		return
	}
	b.rotationCounter.Add(ctx, int64(count),
		metric.WithAttributes(
			attribute.String("old_master_key_id", masterKeyID),
			attribute.String("outcome", outcome),
		),
	)
}

// NoOpBusinessMetrics is used when metrics are disabled.
type NoOpBusinessMetrics struct{}

// NewNoOpBusinessMetrics creates a no-op BusinessMetrics implementation.
func NewNoOpBusinessMetrics() BusinessMetrics {
	return &NoOpBusinessMetrics{}
}

func (n *NoOpBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {}

func (n *NoOpBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
}

func (n *NoOpBusinessMetrics) RecordPinFailure(ctx context.Context, operation string) {}

func (n *NoOpBusinessMetrics) RecordRotation(ctx context.Context, masterKeyID, outcome string, count int) {}
