package ddl

// Static definitions of the five destination tables.
//
// Tables lists them in dependency order: each table appears after every
// table it references, so creating forward and dropping in reverse is always
// constraint-safe. FK columns default to 0, the unset-reference sentinel; the
// schema bootstrap inserts a key-0 placeholder row into each referenced table
// so the sentinel is a real referential target.

// Repres holds sales representatives.
var Repres = TableDef{
	Name: "Repres",
	Columns: []ColumnDef{
		{Name: "CODREPRES", SQLType: "INTEGER", NotNull: true, PrimaryKey: true},
		{Name: "TIPOPESS", SQLType: "TEXT", NotNull: true, Check: "LENGTH(TIPOPESS) <= 2"},
		{Name: "NOMEFAN", SQLType: "TEXT", NotNull: true, Check: "LENGTH(NOMEFAN) <= 20"},
		{Name: "COMISSAOBASE", SQLType: "REAL", NotNull: true, Default: "3"},
	},
}

// FornClien holds clients and suppliers.
var FornClien = TableDef{
	Name: "FornClien",
	Columns: []ColumnDef{
		{Name: "CODCLIFOR", SQLType: "INTEGER", NotNull: true, PrimaryKey: true},
		{Name: "TIPOCF", SQLType: "INTEGER", NotNull: true, Check: "TIPOCF IN (1, 2)"},
		{Name: "CODREPRES", SQLType: "INTEGER", NotNull: true, Default: "0", RefTable: "Repres", RefColumn: "CODREPRES"},
		{Name: "NOMEFAN", SQLType: "TEXT", NotNull: true, Check: "LENGTH(NOMEFAN) <= 50"},
		{Name: "CIDADE", SQLType: "TEXT", NotNull: true},
		{Name: "UF", SQLType: "TEXT", NotNull: true, Check: "LENGTH(UF) <= 2"},
		{Name: "CODMUNICIPIO", SQLType: "INTEGER", NotNull: true},
		{Name: "TIPOPESSOA", SQLType: "INTEGER", NotNull: true, Check: "TIPOPESSOA IN (1, 2)"},
		{Name: "COBRBANC", SQLType: "INTEGER", NotNull: true, Default: "0", Check: "COBRBANC IN (-1, 0, 1)"},
		{Name: "PRAZOPGTO", SQLType: "INTEGER", NotNull: true, Default: "0"},
	},
}

// Produtos holds catalog items.
var Produtos = TableDef{
	Name: "Produtos",
	Columns: []ColumnDef{
		{Name: "CODPROD", SQLType: "INTEGER", NotNull: true, PrimaryKey: true},
		{Name: "NOMEPROD", SQLType: "TEXT", NotNull: true, Check: "LENGTH(NOMEPROD) <= 50"},
		{Name: "CODFORNE", SQLType: "INTEGER", NotNull: true, RefTable: "FornClien", RefColumn: "CODCLIFOR"},
		{Name: "UNIDADE", SQLType: "INTEGER", NotNull: true},
		{Name: "ALIQICMS", SQLType: "REAL", NotNull: true, Default: "0"},
		{Name: "VALCUSTO", SQLType: "REAL", NotNull: true, Default: "0"},
		{Name: "VALVENDA", SQLType: "REAL", NotNull: true, Default: "0"},
		{Name: "QTDEMIN", SQLType: "REAL", NotNull: true, Default: "1"},
		{Name: "QTDEESTQ", SQLType: "REAL", NotNull: true},
		{Name: "GRUPO", SQLType: "INTEGER", NotNull: true, Default: "1"},
		{Name: "CLASSEESTQ", SQLType: "TEXT", NotNull: true, Default: "'A'", Check: "LENGTH(CLASSEESTQ) <= 1"},
		{Name: "COMISSAO", SQLType: "REAL", NotNull: true, Default: "0"},
		{Name: "PESOBRUTO", SQLType: "REAL", NotNull: true},
	},
}

// Pedidos holds order headers.
var Pedidos = TableDef{
	Name: "Pedidos",
	Columns: []ColumnDef{
		{Name: "NUMPED", SQLType: "INTEGER", NotNull: true, PrimaryKey: true},
		{Name: "DATAPPED", SQLType: "TEXT", NotNull: true, Check: "LENGTH(DATAPPED) <= 10"},
		{Name: "HORAPPED", SQLType: "TEXT", NotNull: true, Check: "LENGTH(HORAPPED) <= 8"},
		{Name: "CODCLIEN", SQLType: "INTEGER", NotNull: true, RefTable: "FornClien", RefColumn: "CODCLIFOR"},
		{Name: "ES", SQLType: "TEXT", NotNull: true, Default: "'S'", Check: "ES IN ('S', 'E')"},
		{Name: "FINALIDNFE", SQLType: "INTEGER", NotNull: true, Default: "1", Check: "FINALIDNFE IN (1, 2)"},
		{Name: "SITUACAO", SQLType: "INTEGER", NotNull: true, Default: "2"},
		{Name: "PESO", SQLType: "REAL", NotNull: true},
		{Name: "PRAZOPGTO", SQLType: "INTEGER", NotNull: true, Default: "0"},
		{Name: "VALORPRODS", SQLType: "REAL", NotNull: true},
		{Name: "VALORDESC", SQLType: "REAL", NotNull: true, Default: "0"},
		{Name: "VALOR", SQLType: "REAL", NotNull: true},
		{Name: "VALBASEICMS", SQLType: "REAL", NotNull: true, Default: "0"},
		{Name: "VALICMS", SQLType: "REAL", NotNull: true, Default: "0"},
		{Name: "COMISSAO", SQLType: "REAL", NotNull: true, Default: "0"},
	},
}

// PedidosItem holds order lines. The composite key (NUMPED, NUMITEM) is
// emulated with a unique index rather than a native composite primary key.
var PedidosItem = TableDef{
	Name: "PedidosItem",
	Columns: []ColumnDef{
		{Name: "NUMPED", SQLType: "INTEGER", NotNull: true, RefTable: "Pedidos", RefColumn: "NUMPED"},
		{Name: "NUMITEM", SQLType: "INTEGER", NotNull: true},
		{Name: "CODPROD", SQLType: "INTEGER", NotNull: true, RefTable: "Produtos", RefColumn: "CODPROD"},
		{Name: "QTDE", SQLType: "REAL", NotNull: true},
		{Name: "VALUNIT", SQLType: "REAL", NotNull: true},
		{Name: "UNID", SQLType: "TEXT", NotNull: true, Check: "LENGTH(UNID) <= 2"},
		{Name: "ALIQICMS", SQLType: "REAL", NotNull: true, Default: "0"},
		{Name: "COMISSAO", SQLType: "REAL", NotNull: true, Default: "0"},
		{Name: "STICMS", SQLType: "INTEGER", NotNull: true},
		{Name: "CFOP", SQLType: "INTEGER", NotNull: true, Default: "5102"},
		{Name: "REDUCBASEICMS", SQLType: "REAL", NotNull: true, Default: "0"},
	},
	UniqueIndex: []string{"NUMPED", "NUMITEM"},
	IndexName:   "pk_pedidositem",
}

// Tables lists all destination tables in dependency order.
var Tables = []TableDef{Repres, FornClien, Produtos, Pedidos, PedidosItem}
