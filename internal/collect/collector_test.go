package collect

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"drift-scan/internal/dialect"
)

// stubDriver serves canned introspection and sample results so Profile can be
// exercised without a live database. Queries are dispatched on their text,
// matching the shapes MysqlDialect emits.
type stubDriver struct{}

func (stubDriver) Open(string) (driver.Conn, error) { return &stubConn{}, nil }

type stubConn struct{}

func (c *stubConn) Prepare(query string) (driver.Stmt, error) { return &stubStmt{query: query}, nil }
func (c *stubConn) Close() error                              { return nil }
func (c *stubConn) Begin() (driver.Tx, error)                 { return nil, errors.New("not supported") }

type stubStmt struct{ query string }

func (s *stubStmt) Close() error  { return nil }
func (s *stubStmt) NumInput() int { return -1 }

func (s *stubStmt) Exec([]driver.Value) (driver.Result, error) {
	return nil, errors.New("not supported")
}

func (s *stubStmt) Query([]driver.Value) (driver.Rows, error) {
	switch {
	case strings.Contains(s.query, "information_schema.TABLES"):
		return &stubRows{
			cols: []string{"TABLE_NAME"},
			data: [][]driver.Value{{"users"}, {"orders"}},
		}, nil
	case strings.Contains(s.query, "information_schema.COLUMNS"):
		return &stubRows{
			cols: []string{"TABLE_NAME", "COLUMN_NAME", "DATA_TYPE", "IS_NULLABLE"},
			data: [][]driver.Value{
				{"orders", "order_id", "int", "NO"},
				{"users", "id", "int", "NO"},
				{"users", "status", "varchar", "YES"},
			},
		}, nil
	case strings.HasPrefix(s.query, "SELECT COUNT(*)"):
		return &stubRows{cols: []string{"n"}, data: [][]driver.Value{{int64(3)}}}, nil
	case strings.Contains(s.query, "`id`"):
		return &stubRows{
			cols: []string{"id"},
			data: [][]driver.Value{{int64(1)}, {int64(2)}, {int64(3)}},
		}, nil
	case strings.Contains(s.query, "`status`"):
		return &stubRows{
			cols: []string{"status"},
			data: [][]driver.Value{{"active"}, {nil}, {"banned"}},
		}, nil
	}
	return nil, fmt.Errorf("unexpected query: %s", s.query)
}

type stubRows struct {
	cols []string
	data [][]driver.Value
	pos  int
}

func (r *stubRows) Columns() []string { return r.cols }
func (r *stubRows) Close() error      { return nil }

func (r *stubRows) Next(dest []driver.Value) error {
	if r.pos >= len(r.data) {
		return io.EOF
	}
	copy(dest, r.data[r.pos])
	r.pos++
	return nil
}

func init() {
	sql.Register("collectstub", stubDriver{})
}

func TestProfileTable(t *testing.T) {
	db, err := sql.Open("collectstub", "")
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	var ticks []int
	var total int
	ds, err := Profile(db, &dialect.MysqlDialect{}, "appdb", Options{Table: "users"}, func(done, n int) {
		ticks = append(ticks, done)
		total = n
	})
	if err != nil {
		t.Fatalf("Profile failed: %v", err)
	}

	if ds.NumExamples != 3 {
		t.Errorf("Expected 3 examples, got %d", ds.NumExamples)
	}
	if len(ds.Features) != 2 {
		t.Fatalf("Expected the 2 users columns, got %d", len(ds.Features))
	}
	if total != 2 || len(ticks) != 2 || ticks[len(ticks)-1] != total {
		t.Errorf("Progress must tick once per column up to the column count, got %v of %d", ticks, total)
	}

	id := ds.Feature("id")
	if id == nil {
		t.Fatal("Expected an id column")
	}
	if id.Count != 3 || !id.NotNull {
		t.Errorf("id: expected 3 present rows with the NOT NULL hint, got %d (not_null=%v)", id.Count, id.NotNull)
	}

	status := ds.Feature("status")
	if status == nil {
		t.Fatal("Expected a status column")
	}
	if status.Count != 2 || status.MissingCount != 1 {
		t.Errorf("status: expected 2 present / 1 missing, got %d / %d", status.Count, status.MissingCount)
	}
	if status.NotNull {
		t.Error("status is declared nullable")
	}
}

func TestProfileUnknownTableListsAvailable(t *testing.T) {
	db, err := sql.Open("collectstub", "")
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	_, err = Profile(db, &dialect.MysqlDialect{}, "appdb", Options{Table: "missing"}, nil)
	if err == nil {
		t.Fatal("Expected an error for an unknown table")
	}
	if !strings.Contains(err.Error(), "users") || !strings.Contains(err.Error(), "orders") {
		t.Errorf("Error should name the available tables, got: %v", err)
	}
}

func TestProfileResolvesTableCase(t *testing.T) {
	db, err := sql.Open("collectstub", "")
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	ds, err := Profile(db, &dialect.MysqlDialect{}, "appdb", Options{Table: "USERS"}, nil)
	if err != nil {
		t.Fatalf("Profile failed: %v", err)
	}
	if ds.Name != "users" {
		t.Errorf("Expected the canonical table name, got %q", ds.Name)
	}
}
