package dialect

// Dialect abstracts the database-specific SQL needed to profile a table.
type Dialect interface {
	// Metadata Queries (Schema Introspection)
	GetTablesQuery(schema string) string
	// GetColumnsQuery returns table name, column name, data type and
	// nullability for every column in the schema, in ordinal order.
	GetColumnsQuery(schema string) string

	// Profiling Queries
	CountQuery(table string) string
	ColumnQuery(table, column string) string
	GetLimitRowQuery(query string, limit int) string

	// Helpers
	NormalizeType(sqlType string) string
	GetSchemaName(input string) string
	QuoteIdentifier(name string) string
}
