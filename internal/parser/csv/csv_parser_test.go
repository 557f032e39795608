package csv

import (
	"strings"
	"testing"
)

func TestReadBasic(t *testing.T) {
	in := "\ufeffCODREPRES,TIPOPESS,NOMEFAN,COMISSAOBASE\n10,PF,Acme,5.5\n11,PJ,Beta\n"
	tbl, err := NewReader(Options{ExpectedFields: 4, TrimSpace: true}).Read(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if tbl.Header[0] != "CODREPRES" {
		t.Errorf("BOM not stripped: %q", tbl.Header[0])
	}
	if len(tbl.Rows) != 2 {
		t.Fatalf("got %d rows", len(tbl.Rows))
	}
	if len(tbl.Rows[1]) != 4 || tbl.Rows[1][3] != "" {
		t.Errorf("short row not padded: %v", tbl.Rows[1])
	}
}

func TestReadHeaderWidthMismatch(t *testing.T) {
	in := "a,b,c\n1,2,3\n"
	if _, err := NewReader(Options{ExpectedFields: 4}).Read(strings.NewReader(in)); err == nil {
		t.Fatal("expected schema mismatch error")
	}
}

func TestReadLatin1(t *testing.T) {
	// "Não" in ISO-8859-1: ã is byte 0xE3.
	raw := []byte("id,nome\n1,N\xe3o Informado\n")
	tbl, err := NewReader(Options{Encoding: "latin1"}).Read(strings.NewReader(string(raw)))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if tbl.Rows[0][1] != "Não Informado" {
		t.Errorf("latin1 not decoded: %q", tbl.Rows[0][1])
	}
}

func TestReadUnknownEncoding(t *testing.T) {
	if _, err := NewReader(Options{Encoding: "klingon"}).Read(strings.NewReader("a\n")); err == nil {
		t.Fatal("expected encoding error")
	}
}

func TestReadTrimsOnlyWhenAsked(t *testing.T) {
	in := "a,b\nx , y\n"
	tbl, err := NewReader(Options{}).Read(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if tbl.Rows[0][0] != "x " {
		t.Errorf("value trimmed without TrimSpace: %q", tbl.Rows[0][0])
	}

	tbl, err = NewReader(Options{TrimSpace: true}).Read(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if tbl.Rows[0][0] != "x" || tbl.Rows[0][1] != "y" {
		t.Errorf("TrimSpace not applied: %v", tbl.Rows[0])
	}
}
