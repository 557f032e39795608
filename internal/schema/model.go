// Package schema defines the typed records produced by the transform stage
// and the fixed column layout of the five ERP extracts.
//
// The source files are positional: column 0 always holds the primary key and
// the remaining columns follow the ERP's export order. Header names vary
// between ERP installations, so extraction validates column count rather than
// header text; field-level errors are deferred to the coercion layer.
package schema

// Source column counts, header included. A file whose header width differs
// is rejected at extract time as a schema mismatch.
const (
	RepresWidth      = 4
	FornClienWidth   = 10
	ProdutosWidth    = 13
	PedidosWidth     = 15
	PedidosItemWidth = 11
)

// Representative is a sales representative (table Repres).
type Representative struct {
	ID             int64   `db:"CODREPRES"`
	Category       string  `db:"TIPOPESS"`
	Name           string  `db:"NOMEFAN"`
	BaseCommission float64 `db:"COMISSAOBASE"`
}

// ClientSupplier is a client or supplier party (table FornClien). Kind
// distinguishes the two: 1 = client, 2 = supplier.
type ClientSupplier struct {
	ID               int64  `db:"CODCLIFOR"`
	Kind             int64  `db:"TIPOCF"`
	RepresentativeID int64  `db:"CODREPRES"` // FK Repres, 0 = unset
	Name             string `db:"NOMEFAN"`
	City             string `db:"CIDADE"`
	State            string `db:"UF"`
	MunicipalityCode int64  `db:"CODMUNICIPIO"`
	PersonType       int64  `db:"TIPOPESSOA"`
	BillingMode      int64  `db:"COBRBANC"`
	PaymentTermDays  int64  `db:"PRAZOPGTO"`
}

// Product is a catalog item (table Produtos).
type Product struct {
	ID             int64   `db:"CODPROD"`
	Name           string  `db:"NOMEPROD"`
	SupplierID     int64   `db:"CODFORNE"` // FK FornClien, 0 = unset
	Unit           int64   `db:"UNIDADE"`
	TaxRate        float64 `db:"ALIQICMS"`
	Cost           float64 `db:"VALCUSTO"`
	Price          float64 `db:"VALVENDA"`
	MinQty         float64 `db:"QTDEMIN"`
	StockQty       float64 `db:"QTDEESTQ"`
	GroupID        int64   `db:"GRUPO"`
	StockClass     string  `db:"CLASSEESTQ"`
	CommissionRate float64 `db:"COMISSAO"`
	GrossWeight    float64 `db:"PESOBRUTO"`
}

// Order is a sales or entry order (table Pedidos). Direction is 'S' for a
// sale, 'E' for an entry.
type Order struct {
	ID             int64   `db:"NUMPED"`
	Date           string  `db:"DATAPPED"`
	Time           string  `db:"HORAPPED"`
	ClientID       int64   `db:"CODCLIEN"` // FK FornClien, 0 = unset
	Direction      string  `db:"ES"`
	InvoicePurpose int64   `db:"FINALIDNFE"`
	Status         int64   `db:"SITUACAO"`
	Weight         float64 `db:"PESO"`
	PaymentTerm    int64   `db:"PRAZOPGTO"`
	TotalProducts  float64 `db:"VALORPRODS"`
	TotalDiscount  float64 `db:"VALORDESC"`
	Total          float64 `db:"VALOR"`
	ICMSBase       float64 `db:"VALBASEICMS"`
	ICMSValue      float64 `db:"VALICMS"`
	Commission     float64 `db:"COMISSAO"`
}

// OrderItem is one line of an order (table PedidosItem). The pair
// (OrderID, ItemSeq) forms the composite key.
type OrderItem struct {
	OrderID           int64   `db:"NUMPED"`  // FK Pedidos, 0 = unset
	ItemSeq           int64   `db:"NUMITEM"` // key part 2
	ProductID         int64   `db:"CODPROD"` // FK Produtos, 0 = unset
	Quantity          float64 `db:"QTDE"`
	UnitValue         float64 `db:"VALUNIT"`
	Unit              string  `db:"UNID"`
	TaxRate           float64 `db:"ALIQICMS"`
	CommissionRate    float64 `db:"COMISSAO"`
	TaxSituation      int64   `db:"STICMS"`
	CFOP              int64   `db:"CFOP"`
	ICMSBaseReduction float64 `db:"REDUCBASEICMS"`
}

// Row flattens the record into the column order used for inserts (see
// RepresColumns).
func (r Representative) Row() []any {
	return []any{r.ID, r.Category, r.Name, r.BaseCommission}
}

func (c ClientSupplier) Row() []any {
	return []any{c.ID, c.Kind, c.RepresentativeID, c.Name, c.City, c.State,
		c.MunicipalityCode, c.PersonType, c.BillingMode, c.PaymentTermDays}
}

func (p Product) Row() []any {
	return []any{p.ID, p.Name, p.SupplierID, p.Unit, p.TaxRate, p.Cost,
		p.Price, p.MinQty, p.StockQty, p.GroupID, p.StockClass,
		p.CommissionRate, p.GrossWeight}
}

func (o Order) Row() []any {
	return []any{o.ID, o.Date, o.Time, o.ClientID, o.Direction,
		o.InvoicePurpose, o.Status, o.Weight, o.PaymentTerm, o.TotalProducts,
		o.TotalDiscount, o.Total, o.ICMSBase, o.ICMSValue, o.Commission}
}

func (i OrderItem) Row() []any {
	return []any{i.OrderID, i.ItemSeq, i.ProductID, i.Quantity, i.UnitValue,
		i.Unit, i.TaxRate, i.CommissionRate, i.TaxSituation, i.CFOP,
		i.ICMSBaseReduction}
}

// Destination column orders. These must stay aligned with the Row methods
// above and with the table definitions in internal/ddl.
var (
	RepresColumns = []string{"CODREPRES", "TIPOPESS", "NOMEFAN", "COMISSAOBASE"}

	FornClienColumns = []string{"CODCLIFOR", "TIPOCF", "CODREPRES", "NOMEFAN",
		"CIDADE", "UF", "CODMUNICIPIO", "TIPOPESSOA", "COBRBANC", "PRAZOPGTO"}

	ProdutosColumns = []string{"CODPROD", "NOMEPROD", "CODFORNE", "UNIDADE",
		"ALIQICMS", "VALCUSTO", "VALVENDA", "QTDEMIN", "QTDEESTQ", "GRUPO",
		"CLASSEESTQ", "COMISSAO", "PESOBRUTO"}

	PedidosColumns = []string{"NUMPED", "DATAPPED", "HORAPPED", "CODCLIEN",
		"ES", "FINALIDNFE", "SITUACAO", "PESO", "PRAZOPGTO", "VALORPRODS",
		"VALORDESC", "VALOR", "VALBASEICMS", "VALICMS", "COMISSAO"}

	PedidosItemColumns = []string{"NUMPED", "NUMITEM", "CODPROD", "QTDE",
		"VALUNIT", "UNID", "ALIQICMS", "COMISSAO", "STICMS", "CFOP",
		"REDUCBASEICMS"}
)
