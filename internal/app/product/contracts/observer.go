package contracts

import (
	"context"
	"time"
)

// CreationMetrics is the ephemeral record of one orchestration run. It is
// handed to the observability sink and never stored.
type CreationMetrics struct {
	OperationID        string
	SKU                string
	Category           string
	ValidationDuration time.Duration
	PersistDuration    time.Duration
	TotalDuration      time.Duration
	Success            bool
	ErrorReason        string
}

// CreationObserver consumes creation metrics. Every orchestration run emits
// exactly one record, success or failure. Implementations must not block.
type CreationObserver interface {
	ObserveCreation(ctx context.Context, m CreationMetrics)
}

// NopObserver discards all metrics.
type NopObserver struct{}

func (NopObserver) ObserveCreation(context.Context, CreationMetrics) {}
