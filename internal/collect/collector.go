package collect

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"drift-scan/internal/dialect"
	"drift-scan/internal/stats"
)

// Options controls how a table is profiled.
type Options struct {
	Table       string
	SampleLimit int // max rows scanned per column; 0 means no limit
	TopK        int // top values kept per column
	UniqueLimit int // max distinct values recorded as an explicit list
}

func (o Options) topK() int {
	if o.TopK <= 0 {
		return 20
	}
	return o.TopK
}

func (o Options) uniqueLimit() int {
	if o.UniqueLimit <= 0 {
		return 64
	}
	return o.UniqueLimit
}

type columnMeta struct {
	name     string
	dataType string
	nullable bool
}

// Profile builds a statistics snapshot for one table: per column, a type
// tally, presence counts, a distinct-value estimate and the top values.
// onColumn, if non-nil, is called after each column finishes with the number
// of columns done so far and the total (progress reporting).
func Profile(db *sql.DB, d dialect.Dialect, schemaName string, opts Options, onColumn func(done, total int)) (*stats.DatasetStats, error) {
	if opts.Table == "" {
		return nil, fmt.Errorf("table name is required")
	}
	target := d.GetSchemaName(schemaName)

	tables, err := Tables(db, d, schemaName)
	if err != nil {
		return nil, err
	}
	table, ok := matchTable(tables, opts.Table)
	if !ok {
		return nil, fmt.Errorf("table %q not found in schema %q (available: %s)",
			opts.Table, target, strings.Join(tables, ", "))
	}

	cols, err := tableColumns(db, d, target, table)
	if err != nil {
		return nil, err
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("table %q has no columns in schema %q", table, target)
	}

	var total int64
	if err := db.QueryRow(d.CountQuery(table)).Scan(&total); err != nil {
		return nil, fmt.Errorf("failed to count rows of %s: %w", table, err)
	}
	scanned := total
	if opts.SampleLimit > 0 && int64(opts.SampleLimit) < scanned {
		scanned = int64(opts.SampleLimit)
	}

	ds := &stats.DatasetStats{Name: table, NumExamples: scanned}
	for i, col := range cols {
		fs, err := profileColumn(db, d, opts, table, col)
		if err != nil {
			return nil, err
		}
		ds.Features = append(ds.Features, *fs)
		if onColumn != nil {
			onColumn(i+1, len(cols))
		}
	}
	return ds, nil
}

// Tables lists the base tables of the target schema.
func Tables(db *sql.DB, d dialect.Dialect, schemaName string) ([]string, error) {
	target := d.GetSchemaName(schemaName)
	rows, err := db.Query(d.GetTablesQuery(target), target)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name sql.NullString
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		if name.Valid {
			tables = append(tables, name.String)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tables: %w", err)
	}
	return tables, nil
}

// matchTable resolves the requested table against the schema's table list,
// case-insensitively, returning the canonical name.
func matchTable(tables []string, want string) (string, bool) {
	for _, t := range tables {
		if strings.EqualFold(t, want) {
			return t, true
		}
	}
	return "", false
}

// tableColumns introspects the target schema and filters to the requested
// table (case-insensitive, for Oracle's sake).
func tableColumns(db *sql.DB, d dialect.Dialect, target, table string) ([]columnMeta, error) {
	rows, err := db.Query(d.GetColumnsQuery(target), target)
	if err != nil {
		return nil, fmt.Errorf("failed to query columns: %w", err)
	}
	defer rows.Close()

	var cols []columnMeta
	for rows.Next() {
		var tName, cName, dType, isNull sql.NullString
		if err := rows.Scan(&tName, &cName, &dType, &isNull); err != nil {
			return nil, fmt.Errorf("failed to scan column metadata: %w", err)
		}
		if !tName.Valid || !cName.Valid {
			continue
		}
		if !strings.EqualFold(tName.String, table) {
			continue
		}
		nullable := strings.EqualFold(isNull.String, "YES") || strings.EqualFold(isNull.String, "Y")
		cols = append(cols, columnMeta{
			name:     cName.String,
			dataType: d.NormalizeType(dType.String),
			nullable: nullable,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating columns: %w", err)
	}
	return cols, nil
}

func profileColumn(db *sql.DB, d dialect.Dialect, opts Options, table string, col columnMeta) (*stats.FeatureStats, error) {
	query := d.ColumnQuery(table, col.name)
	if opts.SampleLimit > 0 {
		query = d.GetLimitRowQuery(query, opts.SampleLimit)
	}
	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to sample column %s: %w", col.name, err)
	}
	defer rows.Close()

	basicType := dialect.BasicTypeFor(col.dataType)
	cnt := newCounter(4096)
	var present, missing int64

	for rows.Next() {
		var raw interface{}
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("failed to scan value of %s: %w", col.name, err)
		}
		if raw == nil {
			missing++
			continue
		}
		present++
		cnt.add(stringify(raw))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating values of %s: %w", col.name, err)
	}

	fs := &stats.FeatureStats{
		Name:         col.name,
		TypeCounts:   map[string]int64{basicType: present},
		Count:        present,
		MissingCount: missing,
		Distinct:     cnt.distinct(),
		TopValues:    cnt.top(opts.topK()),
		NotNull:      !col.nullable,
	}
	// A small, fully observed value set doubles as the explicit distinct
	// list the schema engine uses for domain inference.
	if basicType == stats.TypeString && cnt.exact() && cnt.distinct() <= int64(opts.uniqueLimit()) {
		fs.UniqueValues = cnt.values()
	}
	return fs, nil
}

// stringify renders a scanned database value for the top-K counter. Drivers
// hand back []byte, string, int64, float64, bool or time.Time depending on
// the column type.
func stringify(v interface{}) string {
	switch x := v.(type) {
	case []byte:
		return string(x)
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case bool:
		if x {
			return "1"
		}
		return "0"
	default:
		return fmt.Sprintf("%v", x)
	}
}

// FormatShare renders a presence ratio for report output.
func FormatShare(part, whole int64) string {
	if whole <= 0 {
		return "n/a"
	}
	return strconv.FormatFloat(float64(part)/float64(whole), 'f', 4, 64)
}
