// Package census defines the fixed schema of Census population-estimate
// files and the SQL used to stage them.
package census

import (
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

// Column describes one destination table column.
type Column struct {
	Name string
	Type string
}

// Columns lists the file's 17 columns in order. The destination table is
// created with exactly these columns, in this order, plus a synthetic id
// primary key. Mapping is positional; the CSV header row is discarded
// without name validation.
var Columns = [...]Column{
	{"sumlev", "CHAR(3)"},
	{"state", "CHAR(2)"},
	{"county", "CHAR(3)"},
	{"place", "CHAR(5)"},
	{"cousub", "CHAR(5)"},
	{"concit", "CHAR(5)"},
	{"prim_geoflag", "BOOLEAN"},
	{"funcstat", "CHAR(1)"},
	{"name", "VARCHAR(256)"},
	{"stname", "VARCHAR(40)"},
	{"census2010pop", "BIGINT"},
	{"estimatesbase2010", "BIGINT"},
	{"popestimate2010", "BIGINT"},
	{"popestimate2011", "BIGINT"},
	{"popestimate2012", "BIGINT"},
	{"popestimate2013", "BIGINT"},
	{"popestimate2014", "BIGINT"},
}

// NumColumns is the expected field count of every data row.
const NumColumns = len(Columns)

// DropTableSQL returns the statement that removes a previous run's table.
// Identifiers come from fixed constants, never from row data, so string
// assembly is safe here; pgx.Identifier still quotes them defensively.
func DropTableSQL(table string) string {
	return fmt.Sprintf("DROP TABLE IF EXISTS %s", pgx.Identifier{table}.Sanitize())
}

// CreateTableSQL returns the DDL for the destination table.
func CreateTableSQL(table string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE %s (\n", pgx.Identifier{table}.Sanitize())
	b.WriteString("\tid BIGSERIAL PRIMARY KEY")
	for _, col := range Columns {
		fmt.Fprintf(&b, ",\n\t%s %s", pgx.Identifier{col.Name}.Sanitize(), col.Type)
	}
	b.WriteString("\n)")
	return b.String()
}

// InsertSQL returns the parameterized insert for one data row. All 17
// values are bound positionally as text; the server coerces them to the
// column types, which is where a bad integer literal surfaces as a
// recognizable SQLSTATE.
func InsertSQL(table string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "INSERT INTO %s (", pgx.Identifier{table}.Sanitize())
	for i, col := range Columns {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(pgx.Identifier{col.Name}.Sanitize())
	}
	b.WriteString(") VALUES (")
	for i := range Columns {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "$%d", i+1)
	}
	b.WriteString(")")
	return b.String()
}
