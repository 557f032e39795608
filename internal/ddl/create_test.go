package ddl

import (
	"strings"
	"testing"
)

func TestCreateSQL(t *testing.T) {
	def := TableDef{
		Name: "t",
		Columns: []ColumnDef{
			{Name: "id", SQLType: "INTEGER", NotNull: true, PrimaryKey: true},
			{Name: "kind", SQLType: "INTEGER", NotNull: true, Default: "0", Check: "kind IN (1, 2)"},
			{Name: "parent", SQLType: "INTEGER", NotNull: true, RefTable: "p", RefColumn: "id"},
		},
	}
	sql, err := def.CreateSQL()
	if err != nil {
		t.Fatalf("CreateSQL: %v", err)
	}
	for _, want := range []string{
		`CREATE TABLE "t"`,
		`"id" INTEGER NOT NULL`,
		`"kind" INTEGER NOT NULL DEFAULT 0 CHECK (kind IN (1, 2))`,
		`"parent" INTEGER NOT NULL REFERENCES "p" ("id")`,
		`PRIMARY KEY ("id")`,
	} {
		if !strings.Contains(sql, want) {
			t.Errorf("missing %q in:\n%s", want, sql)
		}
	}
}

func TestCreateSQLInvalid(t *testing.T) {
	cases := []TableDef{
		{},
		{Name: "t"},
		{Name: "t", Columns: []ColumnDef{{Name: "a", SQLType: "TEXT"}, {Name: "a", SQLType: "TEXT"}}},
		{Name: "t", Columns: []ColumnDef{{Name: "a"}}},
		{Name: "t", Columns: []ColumnDef{{Name: "a", SQLType: "INTEGER", RefTable: "p"}}},
		{Name: "t", Columns: []ColumnDef{{Name: "a", SQLType: "TEXT"}}, UniqueIndex: []string{"b"}, IndexName: "i"},
	}
	for i, def := range cases {
		if _, err := def.CreateSQL(); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
}

func TestIndexSQL(t *testing.T) {
	if got := Repres.IndexSQL(); got != "" {
		t.Errorf("Repres should have no index, got %q", got)
	}
	idx := PedidosItem.IndexSQL()
	for _, want := range []string{`"pk_pedidositem"`, `"PedidosItem"`, `"NUMPED", "NUMITEM"`} {
		if !strings.Contains(idx, want) {
			t.Errorf("missing %q in %q", want, idx)
		}
	}
}

func TestStaticTablesValid(t *testing.T) {
	for _, def := range Tables {
		if err := def.Validate(); err != nil {
			t.Errorf("%s: %v", def.Name, err)
		}
	}
	// Dependency order: every REFERENCES target must precede its referrer.
	seen := map[string]bool{}
	for _, def := range Tables {
		for _, c := range def.Columns {
			if c.RefTable != "" && !seen[c.RefTable] {
				t.Errorf("%s references %s before it is defined", def.Name, c.RefTable)
			}
		}
		seen[def.Name] = true
	}
}
