package dialect

import (
	"fmt"
)

type MSSQLDialect struct{}

// The go-mssqldb driver prefers @p1, @p2 named parameters; the introspection
// queries below bind the schema name as @p1.

func (d *MSSQLDialect) GetTablesQuery(schema string) string {
	return `SELECT TABLE_NAME FROM INFORMATION_SCHEMA.TABLES WHERE TABLE_SCHEMA = @p1 AND TABLE_TYPE = 'BASE TABLE'`
}

func (d *MSSQLDialect) GetColumnsQuery(schema string) string {
	return `SELECT c.TABLE_NAME, c.COLUMN_NAME, c.DATA_TYPE, c.IS_NULLABLE
FROM INFORMATION_SCHEMA.COLUMNS c
WHERE c.TABLE_SCHEMA = @p1
ORDER BY c.TABLE_NAME, c.ORDINAL_POSITION`
}

func (d *MSSQLDialect) CountQuery(table string) string {
	return fmt.Sprintf("SELECT COUNT(*) FROM %s", d.QuoteIdentifier(table))
}

func (d *MSSQLDialect) ColumnQuery(table, column string) string {
	return fmt.Sprintf("SELECT %s FROM %s", d.QuoteIdentifier(column), d.QuoteIdentifier(table))
}

func (d *MSSQLDialect) GetLimitRowQuery(query string, limit int) string {
	// SQL Server has no LIMIT; OFFSET/FETCH needs ORDER BY, so inject TOP.
	return fmt.Sprintf("SELECT TOP %d * FROM (%s) AS sampled", limit, query)
}

func (d *MSSQLDialect) NormalizeType(sqlType string) string {
	return DefaultNormalizeType(sqlType)
}

func (d *MSSQLDialect) GetSchemaName(input string) string {
	if input == "" {
		return "dbo"
	}
	return input
}

func (d *MSSQLDialect) QuoteIdentifier(name string) string {
	return "[" + name + "]"
}
