package checks

import (
	"fmt"
	"reflect"
	"strings"

	"venue-manager/core/database"

	"gorm.io/gorm"
)

// SchemaReport is the result of comparing the live database with the models.
type SchemaReport struct {
	Matched bool                   `json:"matched"`
	Tables  map[string]TableReport `json:"tables"`
	Errors  []string               `json:"errors"`
}

type TableReport struct {
	Exists         bool     `json:"exists"`
	MissingColumns []string `json:"missing_columns"`
	TypeMismatches []string `json:"type_mismatches"`
	Status         string   `json:"status"` // "ok", "error"
}

type expectedColumn struct {
	name string
	typ  string
}

// CheckSchema verifies that every model's table and tagged columns exist in the
// database. Models must implement TableName.
func CheckSchema(db *gorm.DB, models ...any) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &SchemaReport{
		Matched: true,
		Tables:  make(map[string]TableReport),
		Errors:  []string{},
	}

	for _, model := range models {
		tabler, ok := model.(interface{ TableName() string })
		if !ok {
			return nil, fmt.Errorf("model %T does not implement TableName", model)
		}
		tableName := tabler.TableName()

		actual, err := database.GetTableColumns(db, tableName)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", tableName, err))
			report.Matched = false
			continue
		}

		tbl := compareTable(modelColumns(model), actual)
		if tbl.Status != "ok" {
			report.Matched = false
		}
		report.Tables[tableName] = tbl
	}

	return report, nil
}

// modelColumns reads column names and declared types from gorm struct tags.
func modelColumns(model any) []expectedColumn {
	t := reflect.TypeOf(model)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	var cols []expectedColumn
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("gorm")
		name := parseGormColumn(tag)
		if name == "" {
			continue
		}
		cols = append(cols, expectedColumn{name: name, typ: strings.ToLower(parseGormType(tag))})
	}
	return cols
}

func compareTable(expected []expectedColumn, actual []database.ColumnInfo) TableReport {
	tbl := TableReport{
		Exists:         len(actual) > 0,
		MissingColumns: []string{},
		TypeMismatches: []string{},
		Status:         "ok",
	}
	if !tbl.Exists {
		tbl.Status = "error"
		for _, col := range expected {
			tbl.MissingColumns = append(tbl.MissingColumns, col.name)
		}
		return tbl
	}

	actualMap := make(map[string]database.ColumnInfo, len(actual))
	for _, col := range actual {
		actualMap[col.Field] = col
	}

	for _, col := range expected {
		act, exists := actualMap[col.name]
		if !exists {
			tbl.MissingColumns = append(tbl.MissingColumns, col.name)
			tbl.Status = "error"
			continue
		}
		// Soft check on the base type only; drivers differ in how they report lengths.
		if col.typ != "" && !strings.Contains(act.Type, baseType(col.typ)) {
			tbl.TypeMismatches = append(tbl.TypeMismatches, fmt.Sprintf("%s: expected %s, got %s", col.name, col.typ, act.Type))
			tbl.Status = "error"
		}
	}
	return tbl
}

func baseType(typ string) string {
	if i := strings.IndexByte(typ, '('); i >= 0 {
		return typ[:i]
	}
	return typ
}

// Helpers to parse simple GORM tags
func parseGormColumn(tag string) string {
	for _, p := range strings.Split(tag, ";") {
		if strings.HasPrefix(p, "column:") {
			return strings.TrimPrefix(p, "column:")
		}
	}
	return ""
}

func parseGormType(tag string) string {
	for _, p := range strings.Split(tag, ";") {
		if strings.HasPrefix(p, "type:") {
			return strings.TrimPrefix(p, "type:")
		}
	}
	return ""
}
