package rules

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/prodintake-service/internal/app/product/domain"
	"github.com/light-bringer/prodintake-service/internal/app/product/repo"
	"github.com/light-bringer/prodintake-service/internal/pkg/clock"
)

// cappedRepo reports a fixed daily creation count.
type cappedRepo struct {
	*repo.MemoryRepo
	count int64
}

func (c *cappedRepo) CountCreatedOn(_ context.Context, _ time.Time) (int64, error) {
	return c.count, nil
}

func newPolicyEvaluator() *PolicyEvaluator {
	return NewPolicyEvaluator(repo.NewMemoryRepo(), clock.NewMockClock(testNow))
}

func TestPolicyEvaluator_ValidRequest(t *testing.T) {
	ok, reason, err := newPolicyEvaluator().Evaluate(context.Background(), validRequest())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, reason)
}

func TestPolicyEvaluator_DailyCap(t *testing.T) {
	tests := []struct {
		name  string
		count int64
		want  bool
	}{
		{"below cap", DailyCreationCap - 1, true},
		{"at cap", DailyCreationCap, false},
		{"above cap", DailyCreationCap + 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &cappedRepo{MemoryRepo: repo.NewMemoryRepo(), count: tt.count}
			policies := NewPolicyEvaluator(store, clock.NewMockClock(testNow))

			ok, reason, err := policies.Evaluate(context.Background(), validRequest())
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
			if !tt.want {
				assert.Contains(t, reason, "daily creation cap")
			}
		})
	}
}

func TestPolicyEvaluator_ElectronicsFloorGuard(t *testing.T) {
	req := validRequest()
	req.Price, _ = domain.NewMoney(49, 1)

	ok, reason, err := newPolicyEvaluator().Evaluate(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Contains(t, reason, "electronics")
}

func TestPolicyEvaluator_HomeRestrictedWordGuard(t *testing.T) {
	req := validRequest()
	req.Category = domain.CategoryHome
	req.Name = "Hazard Warning Sign"
	req.Price, _ = domain.NewMoney(150, 1)

	ok, reason, err := newPolicyEvaluator().Evaluate(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Contains(t, reason, "restricted word")
}

func TestPolicyEvaluator_ExpensiveStockGate(t *testing.T) {
	tests := []struct {
		name  string
		price int64
		stock int64
		want  bool
	}{
		{"cheap product with high stock", 300, 15, true},
		{"expensive product with low stock", 600, 10, true},
		{"expensive product with high stock", 600, 11, false},
		{"exactly at price threshold", 500, 15, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.Price, _ = domain.NewMoney(tt.price, 1)
			req.StockQuantity = tt.stock

			ok, reason, err := newPolicyEvaluator().Evaluate(context.Background(), req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok, reason)
		})
	}
}
