package ddl

import (
	"fmt"
	"strings"
)

// DropSQL returns the statement that removes the table if present. The load
// is replace-everything: every run drops and recreates the full schema.
func (t TableDef) DropSQL() string {
	return fmt.Sprintf("DROP TABLE IF EXISTS %s;", quoteIdent(t.Name))
}

// CreateSQL renders the CREATE TABLE statement:
//
//	CREATE TABLE "Repres" (
//	  "CODREPRES" INTEGER NOT NULL,
//	  "COMISSAOBASE" REAL NOT NULL DEFAULT 3,
//	  PRIMARY KEY ("CODREPRES")
//	);
//
// All identifiers are double-quoted, which both SQLite and Postgres accept.
func (t TableDef) CreateSQL() (string, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}

	cols := make([]string, 0, len(t.Columns)+1)
	pks := make([]string, 0, 1)

	for _, c := range t.Columns {
		var sb strings.Builder
		sb.WriteString(quoteIdent(c.Name))
		sb.WriteByte(' ')
		sb.WriteString(c.SQLType)
		if c.NotNull {
			sb.WriteString(" NOT NULL")
		}
		if c.Default != "" {
			sb.WriteString(" DEFAULT ")
			sb.WriteString(c.Default)
		}
		if c.Check != "" {
			sb.WriteString(" CHECK (")
			sb.WriteString(c.Check)
			sb.WriteByte(')')
		}
		if c.RefTable != "" {
			fmt.Fprintf(&sb, " REFERENCES %s (%s)", quoteIdent(c.RefTable), quoteIdent(c.RefColumn))
		}
		cols = append(cols, sb.String())

		if c.PrimaryKey {
			pks = append(pks, quoteIdent(c.Name))
		}
	}

	if len(pks) > 0 {
		cols = append(cols, fmt.Sprintf("PRIMARY KEY (%s)", strings.Join(pks, ", ")))
	}

	return fmt.Sprintf(
		"CREATE TABLE %s (\n  %s\n);",
		quoteIdent(t.Name),
		strings.Join(cols, ",\n  "),
	), nil
}

// IndexSQL renders the unique index emulating a composite primary key, or ""
// when the table has none. IF NOT EXISTS keeps the bootstrap idempotent on
// engines where the index survives a table drop race.
func (t TableDef) IndexSQL() string {
	if len(t.UniqueIndex) == 0 {
		return ""
	}
	quoted := make([]string, len(t.UniqueIndex))
	for i, c := range t.UniqueIndex {
		quoted[i] = quoteIdent(c)
	}
	return fmt.Sprintf(
		"CREATE UNIQUE INDEX IF NOT EXISTS %s ON %s (%s);",
		quoteIdent(t.IndexName),
		quoteIdent(t.Name),
		strings.Join(quoted, ", "),
	)
}

func quoteIdent(id string) string {
	return `"` + strings.ReplaceAll(id, `"`, `""`) + `"`
}
