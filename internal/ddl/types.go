// Package ddl defines a structured, database-agnostic table model and renders
// it into SQL. Column names, types, defaults, and constraints live in typed
// descriptors validated once at startup; no DDL is assembled from externally
// supplied strings.
package ddl

import "fmt"

// ColumnDef describes one column of a destination table.
//
// Default and Check are raw SQL fragments (e.g. "'A'", "TIPOCF IN (1, 2)");
// they come exclusively from the static definitions in tables.go.
type ColumnDef struct {
	Name       string
	SQLType    string
	NotNull    bool
	PrimaryKey bool
	Default    string
	Check      string
	RefTable   string // REFERENCES target table, empty when not a FK
	RefColumn  string // REFERENCES target column
}

// TableDef holds a table name, its ordered columns, and an optional unique
// index emulating a composite primary key.
type TableDef struct {
	Name        string
	Columns     []ColumnDef
	UniqueIndex []string // column names; empty means no index
	IndexName   string
}

// Validate checks the definition for internal consistency. It is invoked on
// every static table definition before any SQL is rendered.
func (t TableDef) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("ddl: table with empty name")
	}
	if len(t.Columns) == 0 {
		return fmt.Errorf("ddl: table %s has no columns", t.Name)
	}
	names := make(map[string]struct{}, len(t.Columns))
	for _, c := range t.Columns {
		if c.Name == "" {
			return fmt.Errorf("ddl: table %s has a column with empty name", t.Name)
		}
		if c.SQLType == "" {
			return fmt.Errorf("ddl: column %s.%s missing SQL type", t.Name, c.Name)
		}
		if _, dup := names[c.Name]; dup {
			return fmt.Errorf("ddl: duplicate column %s.%s", t.Name, c.Name)
		}
		if (c.RefTable == "") != (c.RefColumn == "") {
			return fmt.Errorf("ddl: column %s.%s has a partial REFERENCES clause", t.Name, c.Name)
		}
		names[c.Name] = struct{}{}
	}
	if len(t.UniqueIndex) > 0 && t.IndexName == "" {
		return fmt.Errorf("ddl: table %s has a unique index without a name", t.Name)
	}
	for _, ic := range t.UniqueIndex {
		if _, ok := names[ic]; !ok {
			return fmt.Errorf("ddl: table %s index references unknown column %s", t.Name, ic)
		}
	}
	return nil
}
