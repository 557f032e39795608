package etl

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"erpload/internal/config"
	_ "erpload/internal/storage/all"
	sqliterepo "erpload/internal/storage/sqlite"
)

func writeCSV(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// testConfig lays out a small but complete batch: a valid chain of
// representative -> client -> product -> order -> item, one client with a
// dangling representative, and two unresolved order items colliding on the
// composite key.
func testConfig(t *testing.T) config.Config {
	t.Helper()
	dir := t.TempDir()

	repres := writeCSV(t, dir, "repres.csv",
		"CODREPRES,TIPOPESS,NOMEFAN,COMISSAOBASE\n"+
			"10,PF,Acme,5.5\n")

	clients := writeCSV(t, dir, "fornclien.csv",
		"CODCLIFOR,TIPOCF,CODREPRES,NOMEFAN,CIDADE,UF,CODMUNICIPIO,TIPOPESSOA,COBRBANC,PRAZOPGTO\n"+
			"1,1,10,Loja Um,Recife,PE,2611606,2,1,30\n"+
			"2,2,99,,,,,,,\n") // representative 99 does not exist

	products := writeCSV(t, dir, "produtos.csv",
		"CODPROD,NOMEPROD,CODFORNE,UNIDADE,ALIQICMS,VALCUSTO,VALVENDA,QTDEMIN,QTDEESTQ,GRUPO,CLASSEESTQ,COMISSAO,PESOBRUTO\n"+
			"7,Parafuso,2,1,18,1.5,2.5,1,100,1,A,0,0.01\n")

	orders := writeCSV(t, dir, "pedidos.csv",
		"NUMPED,DATAPPED,HORAPPED,CODCLIEN,ES,FINALIDNFE,SITUACAO,PESO,PRAZOPGTO,VALORPRODS,VALORDESC,VALOR,VALBASEICMS,VALICMS,COMISSAO\n"+
			"100,2024-01-10,09:15:00,1,S,1,2,1.5,30,100,0,100,80,13.6,2\n")

	items := writeCSV(t, dir, "pedidositem.csv",
		"NUMPED,NUMITEM,CODPROD,QTDE,VALUNIT,UNID,ALIQICMS,COMISSAO,STICMS,CFOP,REDUCBASEICMS\n"+
			"100,1,7,2,10.5,UN,18,0,0,,0\n"+
			"999,1,7,1,3,UN,0,0,0,6102,0\n"+ // order 999 does not exist
			"999,1,8,1,3,UN,0,0,0,6102,0\n") // collides with the row above on (0, 1)

	return config.Config{
		Sources: config.Sources{
			Representatives: config.SourceFile{Path: repres, Format: config.FormatCSV},
			Clients:         config.SourceFile{Path: clients, Format: config.FormatCSV},
			Products:        config.SourceFile{Path: products, Format: config.FormatCSV},
			Orders:          config.SourceFile{Path: orders, Format: config.FormatCSV},
			OrderItems:      config.SourceFile{Path: items, Format: config.FormatCSV},
		},
		Storage: config.Storage{Kind: "sqlite", DSN: filepath.Join(dir, "erp.db")},
	}
}

func TestRunEndToEnd(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)

	if err := Run(ctx, cfg); err != nil {
		t.Fatalf("Run: %v", err)
	}

	db, err := sql.Open("sqlite", cfg.Storage.DSN)
	if err != nil {
		t.Fatalf("open result db: %v", err)
	}
	defer db.Close()

	var commission float64
	err = db.QueryRow(`SELECT COMISSAOBASE FROM Repres WHERE CODREPRES = 10`).Scan(&commission)
	if err != nil {
		t.Fatalf("representative row: %v", err)
	}
	if commission != 5.5 {
		t.Errorf("COMISSAOBASE = %g, want 5.5", commission)
	}

	// Dangling representative reference downgraded to the sentinel, load
	// succeeded anyway thanks to the key-0 placeholder row.
	var repID int64
	if err := db.QueryRow(`SELECT CODREPRES FROM FornClien WHERE CODCLIFOR = 2`).Scan(&repID); err != nil {
		t.Fatalf("client row: %v", err)
	}
	if repID != 0 {
		t.Errorf("CODREPRES = %d, want 0", repID)
	}

	// Unresolved order items: only one (0, 1) row may survive.
	var unresolved int
	if err := db.QueryRow(`SELECT COUNT(*) FROM PedidosItem WHERE NUMPED = 0`).Scan(&unresolved); err != nil {
		t.Fatalf("unresolved items: %v", err)
	}
	if unresolved != 1 {
		t.Errorf("unresolved item rows = %d, want 1", unresolved)
	}

	// Empty CFOP column defaulted.
	var cfop int64
	if err := db.QueryRow(`SELECT CFOP FROM PedidosItem WHERE NUMPED = 100 AND NUMITEM = 1`).Scan(&cfop); err != nil {
		t.Fatalf("item row: %v", err)
	}
	if cfop != 5102 {
		t.Errorf("CFOP = %d, want 5102", cfop)
	}

	// Placeholder rows exist in every referenced table.
	for _, table := range []string{"Repres", "FornClien", "Produtos", "Pedidos"} {
		var n int
		pk := map[string]string{
			"Repres": "CODREPRES", "FornClien": "CODCLIFOR",
			"Produtos": "CODPROD", "Pedidos": "NUMPED",
		}[table]
		if err := db.QueryRow(`SELECT COUNT(*) FROM `+table+` WHERE `+pk+` = 0`).Scan(&n); err != nil {
			t.Fatalf("placeholder in %s: %v", table, err)
		}
		if n != 1 {
			t.Errorf("%s placeholder rows = %d, want 1", table, n)
		}
	}
}

func TestRunAbortsOnMissingSource(t *testing.T) {
	cfg := testConfig(t)
	cfg.Sources.Products.Path = filepath.Join(t.TempDir(), "missing.csv")

	if err := Run(context.Background(), cfg); err == nil {
		t.Fatal("expected error for missing source")
	}
	// Nothing may have been written: extraction failed before the sink was
	// opened.
	if _, err := os.Stat(cfg.Storage.DSN); !os.IsNotExist(err) {
		t.Errorf("store file exists after aborted run (stat err=%v)", err)
	}
}

func TestBootstrapIdempotent(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "erp.db")
	repo, err := sqliterepo.NewRepository(ctx, dsn)
	if err != nil {
		t.Fatalf("open repo: %v", err)
	}
	defer repo.Close()

	dump := func() (tables int, placeholders int) {
		t.Helper()
		db, err := sql.Open("sqlite", dsn)
		if err != nil {
			t.Fatalf("open result db: %v", err)
		}
		defer db.Close()
		if err := db.QueryRow(
			`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table'`).Scan(&tables); err != nil {
			t.Fatalf("count tables: %v", err)
		}
		if err := db.QueryRow(`SELECT COUNT(*) FROM Repres`).Scan(&placeholders); err != nil {
			t.Fatalf("count Repres: %v", err)
		}
		return tables, placeholders
	}

	if err := Bootstrap(ctx, repo); err != nil {
		t.Fatalf("first bootstrap: %v", err)
	}
	tables1, rows1 := dump()

	if err := Bootstrap(ctx, repo); err != nil {
		t.Fatalf("second bootstrap: %v", err)
	}
	tables2, rows2 := dump()

	if tables1 != 5 || tables2 != 5 {
		t.Errorf("table counts = %d, %d; want 5, 5", tables1, tables2)
	}
	// Drop-then-create is deterministic: no placeholder accumulation.
	if rows1 != 1 || rows2 != 1 {
		t.Errorf("Repres row counts = %d, %d; want 1, 1", rows1, rows2)
	}
}
