package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuilder_Build(t *testing.T) {
	t.Run("select all columns", func(t *testing.T) {
		stmt := From("products").Build()
		assert.Equal(t, "SELECT * FROM products", stmt.SQL)
		assert.Empty(t, stmt.Params)
	})

	t.Run("select with where and limit", func(t *testing.T) {
		stmt := From("products").
			Select("product_id", "sku").
			Where(Eq("sku", "LAP-12345")).
			Limit(1).
			Build()

		assert.Equal(t, "SELECT product_id, sku FROM products WHERE sku = @p0 LIMIT @limit", stmt.SQL)
		assert.Equal(t, "LAP-12345", stmt.Params["p0"])
		assert.Equal(t, int64(1), stmt.Params["limit"])
	})

	t.Run("range conditions get sequential parameters", func(t *testing.T) {
		from := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
		to := from.AddDate(0, 0, 1)

		stmt := From("products").
			Where(Gte("created_at", from)).
			Where(Lt("created_at", to)).
			Build()

		assert.Equal(t, "SELECT * FROM products WHERE created_at >= @p0 AND created_at < @p1", stmt.SQL)
		assert.Equal(t, from, stmt.Params["p0"])
		assert.Equal(t, to, stmt.Params["p1"])
	})

	t.Run("count drops selected columns and limit", func(t *testing.T) {
		stmt := From("products").
			Select("product_id").
			Where(Eq("brand", "Mega Tech")).
			Limit(10).
			Count().
			Build()

		assert.Equal(t, "SELECT COUNT(*) FROM products WHERE brand = @p0", stmt.SQL)
	})
}

func TestBuilder_Immutability(t *testing.T) {
	base := From("products").Select("product_id")
	withWhere := base.Where(Eq("sku", "LAP-12345"))

	assert.Equal(t, "SELECT product_id FROM products", base.Build().SQL)
	assert.NotEqual(t, base.Build().SQL, withWhere.Build().SQL)
}
