// Package observe implements the creation observability sink on top of
// OpenTelemetry metrics.
package observe

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/light-bringer/prodintake-service/internal/app/product/contracts"
)

// OtelObserver records creation metrics on an OpenTelemetry meter and
// mirrors each emission to the structured log.
type OtelObserver struct {
	logger             *slog.Logger
	created            metric.Int64Counter
	failed             metric.Int64Counter
	totalDuration      metric.Float64Histogram
	validationDuration metric.Float64Histogram
	persistDuration    metric.Float64Histogram
}

// NewOtelObserver creates the observer with its instruments registered on
// the given meter.
func NewOtelObserver(meter metric.Meter, logger *slog.Logger) (*OtelObserver, error) {
	created, err := meter.Int64Counter("products_created_total",
		metric.WithDescription("Number of products created successfully"))
	if err != nil {
		return nil, fmt.Errorf("failed to create counter: %w", err)
	}
	failed, err := meter.Int64Counter("product_creation_failures_total",
		metric.WithDescription("Number of failed product creation attempts"))
	if err != nil {
		return nil, fmt.Errorf("failed to create counter: %w", err)
	}
	totalDuration, err := meter.Float64Histogram("product_creation_duration_seconds",
		metric.WithDescription("End-to-end duration of product creation"))
	if err != nil {
		return nil, fmt.Errorf("failed to create histogram: %w", err)
	}
	validationDuration, err := meter.Float64Histogram("product_validation_duration_seconds",
		metric.WithDescription("Duration of the validation stage"))
	if err != nil {
		return nil, fmt.Errorf("failed to create histogram: %w", err)
	}
	persistDuration, err := meter.Float64Histogram("product_persist_duration_seconds",
		metric.WithDescription("Duration of the persistence stage"))
	if err != nil {
		return nil, fmt.Errorf("failed to create histogram: %w", err)
	}

	return &OtelObserver{
		logger:             logger,
		created:            created,
		failed:             failed,
		totalDuration:      totalDuration,
		validationDuration: validationDuration,
		persistDuration:    persistDuration,
	}, nil
}

// ObserveCreation records one orchestration run.
func (o *OtelObserver) ObserveCreation(ctx context.Context, m contracts.CreationMetrics) {
	attrs := metric.WithAttributes(attribute.String("category", m.Category))

	if m.Success {
		o.created.Add(ctx, 1, attrs)
	} else {
		o.failed.Add(ctx, 1, attrs)
	}
	o.totalDuration.Record(ctx, m.TotalDuration.Seconds(), attrs)
	o.validationDuration.Record(ctx, m.ValidationDuration.Seconds(), attrs)
	o.persistDuration.Record(ctx, m.PersistDuration.Seconds(), attrs)

	o.logger.Info("product_creation",
		"operation_id", m.OperationID,
		"sku", m.SKU,
		"category", m.Category,
		"validation_ms", m.ValidationDuration.Milliseconds(),
		"persist_ms", m.PersistDuration.Milliseconds(),
		"total_ms", m.TotalDuration.Milliseconds(),
		"success", m.Success,
		"error_reason", m.ErrorReason,
	)
}

var _ contracts.CreationObserver = (*OtelObserver)(nil)
