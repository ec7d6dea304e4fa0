package checks

import (
	"testing"

	"venue-manager/core/database"
	"venue-manager/feature/rooms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckSchema_NilDB(t *testing.T) {
	report, err := CheckSchema(nil, &models.Room{})
	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestCheckSchema_Migrated(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, &models.Room{}))

	report, err := CheckSchema(db, &models.Room{}, &models.Upload{})
	require.NoError(t, err)

	assert.False(t, report.Matched)
	assert.Equal(t, "ok", report.Tables["rooms"].Status, report.Tables["rooms"].TypeMismatches)
	assert.True(t, report.Tables["rooms"].Exists)

	uploads := report.Tables["uploads"]
	assert.False(t, uploads.Exists)
	assert.Equal(t, "error", uploads.Status)
	assert.Contains(t, uploads.MissingColumns, "filename")
}

func TestCheckSchema_RequiresTableName(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	type plain struct{ ID uint }
	_, err = CheckSchema(db, &plain{})
	assert.ErrorContains(t, err, "does not implement TableName")
}

func TestCompareTable(t *testing.T) {
	expected := []expectedColumn{
		{name: "id"},
		{name: "filename", typ: "varchar(512)"},
		{name: "etag", typ: "varchar(128)"},
		{name: "delivered"},
	}
	actual := []database.ColumnInfo{
		{Field: "id", Type: "bigint unsigned"},
		{Field: "filename", Type: "varchar(255)"},
		{Field: "etag", Type: "int"},
	}

	tbl := compareTable(expected, actual)

	assert.Equal(t, "error", tbl.Status)
	assert.Equal(t, []string{"delivered"}, tbl.MissingColumns)
	assert.Equal(t, []string{"etag: expected varchar(128), got int"}, tbl.TypeMismatches)
}

func TestParseGormTags(t *testing.T) {
	assert.Equal(t, "id", parseGormColumn("primaryKey;column:id"))
	assert.Equal(t, "", parseGormColumn("primaryKey"))
	assert.Equal(t, "varchar(512)", parseGormType("column:filename;type:varchar(512)"))
	assert.Equal(t, "", parseGormType("column:id"))
}
