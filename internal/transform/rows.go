package transform

import "erpload/internal/schema"

// The five entity transformers below are fixed positional mappings from raw
// extract columns to typed records. Each column is either passed through,
// coerced, resolved against a valid-key set, or defaulted; none of them can
// fail on malformed input.
//
// Rows whose own primary key does not coerce to a positive integer are
// dropped and counted: such rows are invisible to dependents (the key set
// never contained them) and would otherwise collide on the reserved key 0.
// Order items keep rows with an unresolved order reference; the composite-key
// guard deals with any resulting (0, seq) collisions before load.

// col returns row[i], or "" when the row is too short. Extraction pads rows
// to the header width, so this only triggers on hand-built inputs.
func col(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// Representatives maps raw Repres rows to typed records. It returns the
// transformed records and the number of rows dropped for an invalid key.
func Representatives(rows [][]string) ([]schema.Representative, int) {
	out := make([]schema.Representative, 0, len(rows))
	skipped := 0
	for _, row := range rows {
		pk, ok := Int(col(row, 0))
		if !ok || pk <= 0 {
			skipped++
			continue
		}
		out = append(out, schema.Representative{
			ID:             pk,
			Category:       truncText(col(row, 1), "NI", 2),
			Name:           truncText(col(row, 2), "Não Informado", 20),
			BaseCommission: floatOr(col(row, 3), 3),
		})
	}
	return out, skipped
}

// ClientsSuppliers maps raw FornClien rows to typed records, resolving the
// representative reference against refs.Representatives.
func ClientsSuppliers(rows [][]string, refs RefSets) ([]schema.ClientSupplier, int) {
	out := make([]schema.ClientSupplier, 0, len(rows))
	skipped := 0
	for _, row := range rows {
		pk, ok := Int(col(row, 0))
		if !ok || pk <= 0 {
			skipped++
			continue
		}
		out = append(out, schema.ClientSupplier{
			ID:               pk,
			Kind:             clamp(intOr(col(row, 1), 1), 1, 2),
			RepresentativeID: ResolveKey(col(row, 2), refs.Representatives),
			Name:             truncText(col(row, 3), "Não Informado", 50),
			City:             textOr(col(row, 4), "Não Informado"),
			State:            truncText(col(row, 5), "ND", 2),
			MunicipalityCode: intOr(col(row, 6), 0),
			PersonType:       clamp(intOr(col(row, 7), 1), 1, 2),
			BillingMode:      clamp(intOr(col(row, 8), 0), -1, 1),
			PaymentTermDays:  intOr(col(row, 9), 0),
		})
	}
	return out, skipped
}

// Products maps raw Produtos rows to typed records, resolving the supplier
// reference against refs.Clients.
func Products(rows [][]string, refs RefSets) ([]schema.Product, int) {
	out := make([]schema.Product, 0, len(rows))
	skipped := 0
	for _, row := range rows {
		pk, ok := Int(col(row, 0))
		if !ok || pk <= 0 {
			skipped++
			continue
		}
		out = append(out, schema.Product{
			ID:             pk,
			Name:           truncText(col(row, 1), "Não Informado", 50),
			SupplierID:     ResolveKey(col(row, 2), refs.Clients),
			Unit:           intOr(col(row, 3), 0),
			TaxRate:        floatOr(col(row, 4), 0),
			Cost:           floatOr(col(row, 5), 0),
			Price:          floatOr(col(row, 6), 0),
			MinQty:         floatOr(col(row, 7), 1),
			StockQty:       floatOr(col(row, 8), 0),
			GroupID:        intOr(col(row, 9), 1),
			StockClass:     stockClass(col(row, 10)),
			CommissionRate: floatOr(col(row, 11), 0),
			GrossWeight:    floatOr(col(row, 12), 0),
		})
	}
	return out, skipped
}

// Orders maps raw Pedidos rows to typed records, resolving the client
// reference against refs.Clients. Numeric fields default to 0 rather than a
// sentinel text: the Pedidos table requires non-null totals downstream.
func Orders(rows [][]string, refs RefSets) ([]schema.Order, int) {
	out := make([]schema.Order, 0, len(rows))
	skipped := 0
	for _, row := range rows {
		pk, ok := Int(col(row, 0))
		if !ok || pk <= 0 {
			skipped++
			continue
		}
		purpose := intOr(col(row, 5), 1)
		if purpose != 1 && purpose != 2 {
			purpose = 1
		}
		out = append(out, schema.Order{
			ID:             pk,
			Date:           truncText(col(row, 1), "", 10),
			Time:           truncText(col(row, 2), "", 8),
			ClientID:       ResolveKey(col(row, 3), refs.Clients),
			Direction:      direction(col(row, 4)),
			InvoicePurpose: purpose,
			Status:         intOr(col(row, 6), 2),
			Weight:         floatOr(col(row, 7), 0),
			PaymentTerm:    intOr(col(row, 8), 0),
			TotalProducts:  floatOr(col(row, 9), 0),
			TotalDiscount:  floatOr(col(row, 10), 0),
			Total:          floatOr(col(row, 11), 0),
			ICMSBase:       floatOr(col(row, 12), 0),
			ICMSValue:      floatOr(col(row, 13), 0),
			Commission:     floatOr(col(row, 14), 0),
		})
	}
	return out, skipped
}

// OrderItems maps raw PedidosItem rows to typed records, resolving the order
// and product references. Items with an unresolved order keep the 0 sentinel
// and are retained; the caller runs UniqueItems before loading.
func OrderItems(rows [][]string, refs RefSets) []schema.OrderItem {
	out := make([]schema.OrderItem, 0, len(rows))
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		out = append(out, schema.OrderItem{
			OrderID:           ResolveKey(col(row, 0), refs.Orders),
			ItemSeq:           intOr(col(row, 1), 0),
			ProductID:         ResolveKey(col(row, 2), refs.Products),
			Quantity:          floatOr(col(row, 3), 0),
			UnitValue:         floatOr(col(row, 4), 0),
			Unit:              unitCode(col(row, 5)),
			TaxRate:           floatOr(col(row, 6), 0),
			CommissionRate:    floatOr(col(row, 7), 0),
			TaxSituation:      intOr(col(row, 8), 0),
			CFOP:              intOr(col(row, 9), 5102),
			ICMSBaseReduction: floatOr(col(row, 10), 0),
		})
	}
	return out
}

// clamp pins v into [lo, hi]; out-of-domain check-constrained codes collapse
// to the nearest bound rather than failing at insert time.
func clamp(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// truncText defaults an empty value and cuts the result to at most n
// characters, mirroring the destination LENGTH checks the same way clamp
// mirrors the numeric ones.
func truncText(raw, def string, n int) string {
	s := []rune(textOr(raw, def))
	if len(s) > n {
		s = s[:n]
	}
	return string(s)
}

// direction normalizes the ES flag to 'S' (sale) or 'E' (entry), defaulting
// to 'S'.
func direction(raw string) string {
	switch textOr(raw, "S") {
	case "E", "e":
		return "E"
	default:
		return "S"
	}
}

// stockClass keeps the first character of the class code; the column is
// CHECK-constrained to a single character.
func stockClass(raw string) string {
	s := []rune(textOr(raw, "A"))
	return string(s[:1])
}

// unitCode keeps at most two characters of the unit of measure, defaulting
// to "UN".
func unitCode(raw string) string {
	s := []rune(textOr(raw, "UN"))
	if len(s) > 2 {
		s = s[:2]
	}
	return string(s)
}
