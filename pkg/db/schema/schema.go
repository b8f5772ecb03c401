// Package schema is the registry of the habit-tracking tables: it lists the
// row models in dependency order, builds them through GORM for SQLite, and
// describes the declared columns and constraints.
package schema

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/MathieuSchaff/tdah-habit-tracket/pkg/db/models"
	"gorm.io/gorm"
	gormschema "gorm.io/gorm/schema"
)

// Models returns one zero value per table, parents before children.
func Models() []any {
	return []any{
		&models.User{},
		&models.TdahProfile{},
		&models.Habit{},
		&models.DailyCheck{},
		&models.UserPoints{},
		&models.Achievement{},
	}
}

// TableNames returns the table names in Models() order.
func TableNames() []string {
	return []string{
		models.TableUsers,
		models.TableTdahProfiles,
		models.TableHabits,
		models.TableDailyChecks,
		models.TableUserPoints,
		models.TableAchievements,
	}
}

// AutoMigrate creates or updates the tables from the GORM declarations. It is
// used for SQLite; Postgres is migrated with the goose files in pkg/migrate.
func AutoMigrate(ctx context.Context, db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("db is required")
	}
	if err := db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto-migrating schema: %w", err)
	}
	return nil
}

// Column describes one declared column.
type Column struct {
	Name       string `json:"name"`
	DataType   string `json:"data_type"`
	Nullable   bool   `json:"nullable"`
	PrimaryKey bool   `json:"primary_key,omitempty"`
	Default    string `json:"default,omitempty"`
	AutoTime   bool   `json:"auto_time,omitempty"`
}

// ForeignKey describes an enforced reference to another table.
type ForeignKey struct {
	Name            string `json:"name"`
	Column          string `json:"column"`
	ReferenceTable  string `json:"reference_table"`
	ReferenceColumn string `json:"reference_column"`
	OnDelete        string `json:"on_delete,omitempty"`
}

// Index describes a declared index.
type Index struct {
	Name    string   `json:"name"`
	Columns []string `json:"columns"`
	Unique  bool     `json:"unique,omitempty"`
}

// Check describes a declared CHECK constraint.
type Check struct {
	Name       string `json:"name"`
	Expression string `json:"expression"`
}

// Table is the declared shape of one table.
type Table struct {
	Name        string       `json:"name"`
	Columns     []Column     `json:"columns"`
	ForeignKeys []ForeignKey `json:"foreign_keys,omitempty"`
	Indexes     []Index      `json:"indexes,omitempty"`
	Checks      []Check      `json:"checks,omitempty"`
}

// Column returns the named column.
func (t Table) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

type dataTyper interface {
	DataTypeOf(*gormschema.Field) string
}

// Inspect parses the model declarations against db's dialect and returns
// the tables in Models() order. It performs no I/O.
func Inspect(db *gorm.DB) ([]Table, error) {
	if db == nil {
		return nil, fmt.Errorf("db is required")
	}

	cache := &sync.Map{}
	parsed := make([]*gormschema.Schema, 0, len(Models()))
	for _, model := range Models() {
		s, err := gormschema.Parse(model, cache, db.NamingStrategy)
		if err != nil {
			return nil, fmt.Errorf("parsing %T: %w", model, err)
		}
		parsed = append(parsed, s)
	}

	fks := foreignKeysByTable(parsed)

	var typer dataTyper
	if t, ok := db.Migrator().(dataTyper); ok {
		typer = t
	}

	tables := make([]Table, 0, len(parsed))
	for _, s := range parsed {
		table := Table{Name: s.Table, ForeignKeys: fks[s.Table]}

		for _, dbName := range s.DBNames {
			field := s.FieldsByDBName[dbName]
			col := Column{
				Name:       dbName,
				DataType:   string(field.DataType),
				Nullable:   !field.NotNull && !field.PrimaryKey,
				PrimaryKey: field.PrimaryKey,
				AutoTime:   field.AutoCreateTime > 0 || field.AutoUpdateTime > 0,
			}
			// An explicit type tag is what the migrations declare; some
			// datatypes (JSONMap) would otherwise report jsonb on Postgres.
			if declared, ok := field.TagSettings["TYPE"]; ok {
				col.DataType = declared
			} else if typer != nil {
				col.DataType = typer.DataTypeOf(field)
			}
			if field.HasDefaultValue && field.DefaultValue != "" {
				col.Default = field.DefaultValue
			}
			table.Columns = append(table.Columns, col)
		}

		for _, idx := range s.ParseIndexes() {
			index := Index{Name: idx.Name, Unique: idx.Class == "UNIQUE"}
			for _, opt := range idx.Fields {
				index.Columns = append(index.Columns, opt.DBName)
			}
			table.Indexes = append(table.Indexes, index)
		}
		sort.Slice(table.Indexes, func(i, j int) bool { return table.Indexes[i].Name < table.Indexes[j].Name })

		for _, chk := range s.ParseCheckConstraints() {
			table.Checks = append(table.Checks, Check{Name: chk.Name, Expression: chk.Constraint})
		}
		sort.Slice(table.Checks, func(i, j int) bool { return table.Checks[i].Name < table.Checks[j].Name })

		tables = append(tables, table)
	}
	return tables, nil
}

// foreignKeysByTable collects constraints from every relationship, keyed by
// the table that owns the foreign key column. Has-many declarations on the
// parent produce constraints on the child, the same way the migrator does.
func foreignKeysByTable(parsed []*gormschema.Schema) map[string][]ForeignKey {
	out := map[string][]ForeignKey{}
	seen := map[string]bool{}
	for _, s := range parsed {
		for _, rel := range s.Relationships.Relations {
			constraint := rel.ParseConstraint()
			if constraint == nil || constraint.Schema == nil || constraint.ReferenceSchema == nil {
				continue
			}
			table := constraint.Schema.Table
			key := table + "." + constraint.Name
			if seen[key] {
				continue
			}
			seen[key] = true
			for i, fk := range constraint.ForeignKeys {
				out[table] = append(out[table], ForeignKey{
					Name:            constraint.Name,
					Column:          fk.DBName,
					ReferenceTable:  constraint.ReferenceSchema.Table,
					ReferenceColumn: constraint.References[i].DBName,
					OnDelete:        constraint.OnDelete,
				})
			}
		}
	}
	for table := range out {
		fks := out[table]
		sort.Slice(fks, func(i, j int) bool { return fks[i].Name < fks[j].Name })
	}
	return out
}
