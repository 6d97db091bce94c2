package query

import "fmt"

// Condition represents a WHERE clause condition.
// Implementations must generate SQL fragments and parameter maps
// using Spanner's named parameter format (@paramName).
type Condition interface {
	// SQL returns the SQL fragment and parameter map for this condition.
	// paramIndex is used to generate unique parameter names (@p0, @p1, etc.)
	SQL(paramIndex int) (string, map[string]interface{})
}

type binaryCondition struct {
	field string
	op    string
	value interface{}
}

func (c *binaryCondition) SQL(paramIndex int) (string, map[string]interface{}) {
	paramName := fmt.Sprintf("p%d", paramIndex)
	sql := fmt.Sprintf("%s %s @%s", c.field, c.op, paramName)
	return sql, map[string]interface{}{paramName: c.value}
}

// Eq creates a WHERE condition for equality comparison.
// Example: Eq("sku", "LAP-12345") generates "sku = @p0"
func Eq(field string, value interface{}) Condition {
	return &binaryCondition{field: field, op: "=", value: value}
}

// Gte creates a WHERE condition for >= comparison.
func Gte(field string, value interface{}) Condition {
	return &binaryCondition{field: field, op: ">=", value: value}
}

// Lt creates a WHERE condition for < comparison.
func Lt(field string, value interface{}) Condition {
	return &binaryCondition{field: field, op: "<", value: value}
}
