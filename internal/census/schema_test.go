package census

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumns_MatchFileLayout(t *testing.T) {
	require.Equal(t, 17, NumColumns)

	// positional mapping: the order is the file's order
	wantOrder := []string{
		"sumlev", "state", "county", "place", "cousub", "concit",
		"prim_geoflag", "funcstat", "name", "stname",
		"census2010pop", "estimatesbase2010", "popestimate2010",
		"popestimate2011", "popestimate2012", "popestimate2013",
		"popestimate2014",
	}
	for i, col := range Columns {
		assert.Equal(t, wantOrder[i], col.Name)
	}
}

func TestCreateTableSQL(t *testing.T) {
	sql := CreateTableSQL("popest")

	assert.True(t, strings.HasPrefix(sql, `CREATE TABLE "popest"`))
	assert.Contains(t, sql, "id BIGSERIAL PRIMARY KEY")
	for _, col := range Columns {
		assert.Contains(t, sql, fmt.Sprintf("%q %s", col.Name, col.Type))
	}
}

func TestDropTableSQL(t *testing.T) {
	assert.Equal(t, `DROP TABLE IF EXISTS "popest"`, DropTableSQL("popest"))
}

func TestInsertSQL_BindsEveryColumnPositionally(t *testing.T) {
	sql := InsertSQL("popest")

	assert.True(t, strings.HasPrefix(sql, `INSERT INTO "popest"`))
	assert.Equal(t, NumColumns, strings.Count(sql, "$"), "one placeholder per column")
	assert.Contains(t, sql, fmt.Sprintf("$%d)", NumColumns))
	// row values are bound, never interpolated
	assert.NotContains(t, sql, "%s")
}
