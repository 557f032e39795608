// Package etl sequences the full batch load: extract the five ERP sources,
// build the valid-key sets, run the per-entity transformers in dependency
// order, and hand the cleaned record sets to the storage sink.
//
// The run is single-threaded and synchronous. A missing or unreadable source
// aborts the whole run before anything is written; transforms never abort;
// a failed table load aborts the remaining pipeline without rolling back
// tables already loaded.
package etl

import (
	"context"
	"fmt"
	"log"

	"erpload/internal/config"
	"erpload/internal/datasource/file"
	"erpload/internal/ddl"
	"erpload/internal/parser"
	csvparser "erpload/internal/parser/csv"
	"erpload/internal/parser/excel"
	"erpload/internal/schema"
	"erpload/internal/storage"
	"erpload/internal/transform"
)

// Run executes the complete ETL batch against the configured storage.
func Run(ctx context.Context, cfg config.Config) error {
	log.Printf("etl: starting batch load (storage=%s)", cfg.Storage.Kind)

	// Extract. All five sources must be readable before anything else
	// happens; there is no partial load.
	log.Printf("[1/5] reading representatives from %s", cfg.Sources.Representatives.Path)
	repres, err := extract(ctx, cfg.Sources.Representatives, schema.RepresWidth)
	if err != nil {
		return fmt.Errorf("extract representatives: %w", err)
	}
	log.Printf("[2/5] reading clients/suppliers from %s", cfg.Sources.Clients.Path)
	clients, err := extract(ctx, cfg.Sources.Clients, schema.FornClienWidth)
	if err != nil {
		return fmt.Errorf("extract clients: %w", err)
	}
	log.Printf("[3/5] reading products from %s", cfg.Sources.Products.Path)
	products, err := extract(ctx, cfg.Sources.Products, schema.ProdutosWidth)
	if err != nil {
		return fmt.Errorf("extract products: %w", err)
	}
	log.Printf("[4/5] reading orders from %s", cfg.Sources.Orders.Path)
	orders, err := extract(ctx, cfg.Sources.Orders, schema.PedidosWidth)
	if err != nil {
		return fmt.Errorf("extract orders: %w", err)
	}
	log.Printf("[5/5] reading order items from %s", cfg.Sources.OrderItems.Path)
	items, err := extract(ctx, cfg.Sources.OrderItems, schema.PedidosItemWidth)
	if err != nil {
		return fmt.Errorf("extract order items: %w", err)
	}

	// Valid-key sets, each built before any dependent transform runs.
	// Column 0 holds the primary key in every source file.
	refs := transform.RefSets{
		Representatives: transform.ValidKeys(repres.Rows, 0),
		Clients:         transform.ValidKeys(clients.Rows, 0),
		Products:        transform.ValidKeys(products.Rows, 0),
		Orders:          transform.ValidKeys(orders.Rows, 0),
	}
	log.Printf("keys: representatives=%d clients=%d products=%d orders=%d",
		len(refs.Representatives), len(refs.Clients), len(refs.Products), len(refs.Orders))

	// Transform, strictly in dependency order.
	repRecs, repSkipped := transform.Representatives(repres.Rows)
	logTransform("Repres", len(repRecs), repSkipped)

	cliRecs, cliSkipped := transform.ClientsSuppliers(clients.Rows, refs)
	logTransform("FornClien", len(cliRecs), cliSkipped)

	prodRecs, prodSkipped := transform.Products(products.Rows, refs)
	logTransform("Produtos", len(prodRecs), prodSkipped)

	ordRecs, ordSkipped := transform.Orders(orders.Rows, refs)
	logTransform("Pedidos", len(ordRecs), ordSkipped)

	itemRecs := transform.OrderItems(items.Rows, refs)
	itemRecs, dupes := transform.UniqueItems(itemRecs)
	logTransform("PedidosItem", len(itemRecs), 0)
	if dupes > 0 {
		log.Printf("transform: PedidosItem: dropped %d unresolved rows colliding on (NUMPED, NUMITEM)", dupes)
	}
	log.Printf("transform: PedidosItem: batch fingerprint %016x", transform.Fingerprint(itemRecs))

	// Load.
	repo, err := storage.Open(ctx, storage.Config{Kind: cfg.Storage.Kind, DSN: cfg.Storage.DSN})
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer repo.Close()

	if err := Bootstrap(ctx, repo); err != nil {
		return err
	}

	if err := loadTable(ctx, repo, ddl.Repres.Name, schema.RepresColumns, rowsOf(repRecs)); err != nil {
		return err
	}
	if err := loadTable(ctx, repo, ddl.FornClien.Name, schema.FornClienColumns, rowsOf(cliRecs)); err != nil {
		return err
	}
	if err := loadTable(ctx, repo, ddl.Produtos.Name, schema.ProdutosColumns, rowsOf(prodRecs)); err != nil {
		return err
	}
	if err := loadTable(ctx, repo, ddl.Pedidos.Name, schema.PedidosColumns, rowsOf(ordRecs)); err != nil {
		return err
	}
	if err := loadTable(ctx, repo, ddl.PedidosItem.Name, schema.PedidosItemColumns, rowsOf(itemRecs)); err != nil {
		return err
	}

	log.Printf("etl: batch load complete")
	return nil
}

// Bootstrap drops and recreates the full destination schema: tables in
// dependency order, the composite unique index, and one key-0 placeholder row
// per referenced table so the unset-reference sentinel is a real foreign-key
// target. Running it twice yields an identical empty schema.
func Bootstrap(ctx context.Context, repo storage.Repository) error {
	// Drop referrers before referenced tables.
	for i := len(ddl.Tables) - 1; i >= 0; i-- {
		if err := repo.Exec(ctx, ddl.Tables[i].DropSQL()); err != nil {
			return fmt.Errorf("drop %s: %w", ddl.Tables[i].Name, err)
		}
	}
	for _, t := range ddl.Tables {
		stmt, err := t.CreateSQL()
		if err != nil {
			return err
		}
		if err := repo.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("create %s: %w", t.Name, err)
		}
		if idx := t.IndexSQL(); idx != "" {
			if err := repo.Exec(ctx, idx); err != nil {
				return fmt.Errorf("index %s: %w", t.Name, err)
			}
		}
		log.Printf("schema: table %s ready", t.Name)
	}
	return insertPlaceholders(ctx, repo)
}

// insertPlaceholders writes the key-0 sentinel rows. PedidosItem needs none:
// nothing references it.
func insertPlaceholders(ctx context.Context, repo storage.Repository) error {
	placeholders := []struct {
		table   string
		columns []string
		row     []any
	}{
		{ddl.Repres.Name, schema.RepresColumns, schema.Representative{
			Category: "NI", Name: "Não Informado", BaseCommission: 3,
		}.Row()},
		{ddl.FornClien.Name, schema.FornClienColumns, schema.ClientSupplier{
			Kind: 1, Name: "Não Informado", City: "Não Informado", State: "ND", PersonType: 1,
		}.Row()},
		{ddl.Produtos.Name, schema.ProdutosColumns, schema.Product{
			Name: "Não Informado", MinQty: 1, GroupID: 1, StockClass: "A",
		}.Row()},
		{ddl.Pedidos.Name, schema.PedidosColumns, schema.Order{
			Direction: "S", InvoicePurpose: 1, Status: 2,
		}.Row()},
	}
	for _, p := range placeholders {
		if _, err := repo.Insert(ctx, p.table, p.columns, [][]any{p.row}); err != nil {
			return fmt.Errorf("placeholder row for %s: %w", p.table, err)
		}
	}
	return nil
}

// extract opens one source file and reads it into a table, choosing the
// reader by configured format.
func extract(ctx context.Context, src config.SourceFile, width int) (*parser.Table, error) {
	var reader parser.TableReader
	switch src.Format {
	case config.FormatExcel:
		reader = excel.NewReader(excel.Options{ExpectedFields: width})
	default:
		reader = csvparser.NewReader(csvparser.Options{
			Encoding:       src.Encoding,
			ExpectedFields: width,
			TrimSpace:      true,
		})
	}

	rc, err := file.NewLocal(src.Path).Open(ctx)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	tbl, err := reader.Read(rc)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", src.Path, err)
	}
	log.Printf("  %d rows read", len(tbl.Rows))
	return tbl, nil
}

// loadTable hands one cleaned record set to the sink.
func loadTable(ctx context.Context, repo storage.Repository, table string, columns []string, rows [][]any) error {
	n, err := repo.Insert(ctx, table, columns, rows)
	if err != nil {
		return fmt.Errorf("load %s: %w", table, err)
	}
	log.Printf("load: %s: %d rows inserted", table, n)
	return nil
}

func logTransform(table string, kept, skipped int) {
	if skipped > 0 {
		log.Printf("transform: %s: %d records (%d rows skipped for invalid key)", table, kept, skipped)
		return
	}
	log.Printf("transform: %s: %d records", table, kept)
}

// rowsOf flattens typed records into insert rows.
func rowsOf[T interface{ Row() []any }](recs []T) [][]any {
	rows := make([][]any, len(recs))
	for i, r := range recs {
		rows[i] = r.Row()
	}
	return rows
}
