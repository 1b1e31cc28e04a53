package dialect

import (
	"strings"
)

// DefaultNormalizeType is a default implementation for type normalization (lowercase).
func DefaultNormalizeType(sqlType string) string {
	return strings.ToLower(sqlType)
}

// DefaultGetSchemaName is a default implementation for Getting Schema Name (identity).
func DefaultGetSchemaName(input string) string {
	return input
}

// BasicTypeFor buckets a normalized SQL type into the stats tally types
// (STRING, INT, FLOAT, BYTES).
func BasicTypeFor(normalized string) string {
	t := strings.ToLower(normalized)
	switch {
	case strings.Contains(t, "char"), strings.Contains(t, "text"),
		strings.Contains(t, "enum"), strings.Contains(t, "uuid"),
		strings.Contains(t, "date"), strings.Contains(t, "time"),
		strings.Contains(t, "clob"):
		return "STRING"
	case strings.Contains(t, "int"), strings.Contains(t, "serial"),
		strings.Contains(t, "bool"), strings.Contains(t, "bit"),
		strings.Contains(t, "year"):
		return "INT"
	case strings.Contains(t, "float"), strings.Contains(t, "double"),
		strings.Contains(t, "decimal"), strings.Contains(t, "numeric"),
		strings.Contains(t, "real"), strings.Contains(t, "money"):
		return "FLOAT"
	default:
		return "BYTES"
	}
}
