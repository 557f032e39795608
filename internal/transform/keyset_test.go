package transform

import "testing"

func TestValidKeys(t *testing.T) {
	rows := [][]string{
		{"10", "x"},
		{"0", "zero is the unset sentinel"},
		{"-3", "negative"},
		{"abc", "unparseable"},
		{"", "empty"},
		{"12.0", "decimal rendering of an integer"},
		{},
	}
	keys := ValidKeys(rows, 0)

	if len(keys) != 2 {
		t.Fatalf("got %d keys, want 2: %v", len(keys), keys)
	}
	for _, k := range []int64{10, 12} {
		if !keys.Has(k) {
			t.Errorf("key %d missing", k)
		}
	}
	for k := range keys {
		if k <= 0 {
			t.Errorf("non-positive key %d in set", k)
		}
	}
}

func TestResolveKey(t *testing.T) {
	valid := KeySet{1: {}, 2: {}, 3: {}}
	cases := []struct {
		in   string
		want int64
	}{
		{"0", 0},
		{"5", 0}, // not a member
		{"2", 2},
		{"", 0},
		{"junk", 0},
	}
	for _, c := range cases {
		if got := ResolveKey(c.in, valid); got != c.want {
			t.Errorf("ResolveKey(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestResolveKeyDefault(t *testing.T) {
	valid := KeySet{7: {}}
	if got := ResolveKeyDefault("missing", valid, -1); got != -1 {
		t.Errorf("fallback not applied: got %d", got)
	}
	if got := ResolveKeyDefault("7", valid, -1); got != 7 {
		t.Errorf("valid key overridden: got %d", got)
	}
}
