package models

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/gen"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

/*
Schema tooling.

Migrate creates or updates the three directory tables. It is run at startup
unless AUTO_MIGRATE=false.

GenerateModels writes a typed query API for the tables into ./generated
(GENERATE_MODELS=true, then exit).

GenerateColumnMismatchReport lists columns that exist in the database but are
not mapped by the Go models (GENERATE_COLUMN_REPORT=true, then exit). Example:

	=== COLUMN MISMATCH REPORT ===
	--- Table: Venue ---
	Found 1 columns not accounted for in model:
	  - legacy_rating
	=== SUMMARY ===
	Total mismatched columns across all tables: 1
*/

// All returns one zero value of each model, parents first.
func All() []any {
	return []any{&Artist{}, &Venue{}, &Show{}}
}

// Migrate creates the Venue, Artist and Show tables with their foreign keys.
func Migrate(db *gorm.DB) error {
	migrateDB := db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		PrepareStmt:            false,
	})

	if err := migrateDB.AutoMigrate(All()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	if err := backfillNameKeys(migrateDB, &Venue{}); err != nil {
		return err
	}
	return backfillNameKeys(migrateDB, &Artist{})
}

// backfillNameKeys fills name_key for rows written before the column existed.
func backfillNameKeys(db *gorm.DB, model any) error {
	var rows []struct {
		ID   uint
		Name string
	}
	if err := db.Model(model).Where("name_key = ? AND name <> ?", "", "").Find(&rows).Error; err != nil {
		return fmt.Errorf("backfill name keys: %w", err)
	}
	for _, row := range rows {
		err := db.Model(model).Where("id = ?", row.ID).UpdateColumn("name_key", FoldName(row.Name)).Error
		if err != nil {
			return fmt.Errorf("backfill name keys: %w", err)
		}
	}
	return nil
}

// GenerateModels migrates the schema and then generates query helpers with gorm/gen.
func GenerateModels(db *gorm.DB, outPath string) error {
	if err := Migrate(db); err != nil {
		return err
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:           outPath,
		Mode:              gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable:     true,
		FieldCoverable:    true,
		FieldWithIndexTag: true,
		FieldWithTypeTag:  true,
	})
	g.UseDB(db)
	g.ApplyBasic(Artist{}, Venue{}, Show{})
	g.Execute()

	log.Info().Str("outPath", outPath).Msg("model generation complete")
	return nil
}

// ColumnMismatch is the set of unmapped columns found for one table.
type ColumnMismatch struct {
	Table   string
	Columns []string
	Missing bool // table does not exist yet
}

// FindColumnMismatches compares every model table with the live database.
func FindColumnMismatches(db *gorm.DB) ([]ColumnMismatch, error) {
	var report []ColumnMismatch
	for _, model := range All() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return nil, fmt.Errorf("parse model %T: %w", model, err)
		}
		table := stmt.Schema.Table

		if !db.Migrator().HasTable(table) {
			report = append(report, ColumnMismatch{Table: table, Missing: true})
			continue
		}

		columnTypes, err := db.Migrator().ColumnTypes(table)
		if err != nil {
			return nil, fmt.Errorf("error querying columns for table %s: %w", table, err)
		}
		dbColumns := make([]string, 0, len(columnTypes))
		for _, ct := range columnTypes {
			dbColumns = append(dbColumns, ct.Name())
		}

		report = append(report, ColumnMismatch{
			Table:   table,
			Columns: findColumnMismatches(dbColumns, getModelFields(stmt.Schema)),
		})
	}
	return report, nil
}

// GenerateColumnMismatchReport prints FindColumnMismatches in a human readable form.
func GenerateColumnMismatchReport(db *gorm.DB) error {
	report, err := FindColumnMismatches(db)
	if err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString("=== COLUMN MISMATCH REPORT ===\n")
	total := 0
	for _, table := range report {
		fmt.Fprintf(&b, "--- Table: %s ---\n", table.Table)
		switch {
		case table.Missing:
			b.WriteString("Table does not exist yet (will be created during migration)\n")
		case len(table.Columns) == 0:
			b.WriteString("All columns are accounted for in the model.\n")
		default:
			fmt.Fprintf(&b, "Found %d columns not accounted for in model:\n", len(table.Columns))
			for _, col := range table.Columns {
				fmt.Fprintf(&b, "  - %s\n", col)
			}
			total += len(table.Columns)
		}
	}
	b.WriteString("=== SUMMARY ===\n")
	fmt.Fprintf(&b, "Total mismatched columns across all tables: %d\n", total)

	fmt.Print(b.String())
	return nil
}

// getModelFields returns the database column names mapped by a parsed model
func getModelFields(s *schema.Schema) []string {
	fields := make([]string, 0, len(s.DBNames))
	for _, name := range s.DBNames {
		fields = append(fields, name)
	}
	return fields
}

// findColumnMismatches finds columns that exist in the database but not in the model
func findColumnMismatches(dbColumns, modelFields []string) []string {
	modelFieldSet := make(map[string]bool, len(modelFields))
	for _, field := range modelFields {
		modelFieldSet[strings.ToLower(field)] = true
	}

	var mismatches []string
	for _, col := range dbColumns {
		if !modelFieldSet[strings.ToLower(col)] {
			mismatches = append(mismatches, col)
		}
	}
	sort.Strings(mismatches)
	return mismatches
}
