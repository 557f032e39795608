package transform

import "testing"

func TestInt(t *testing.T) {
	cases := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"553,465", 553465, true},
		{"4.0", 4, true},
		{"4.9", 4, true},
		{"-12", -12, true},
		{"  77 ", 77, true},
		{"abc", 0, false},
		{"", 0, false},
		{"1e400", 0, false},
		{"12345678901234567890123", 0, false},
	}
	for _, c := range cases {
		got, ok := Int(c.in)
		if ok != c.ok || got != c.want {
			t.Errorf("Int(%q) = (%d, %v), want (%d, %v)", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestFloat(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"1,234.50", 1234.50, true},
		{"3", 3, true},
		{"-0.5", -0.5, true},
		{"", 0, false},
		{"   ", 0, false},
		{"x1", 0, false},
		{"1e9999", 0, false},
	}
	for _, c := range cases {
		got, ok := Float(c.in)
		if ok != c.ok || got != c.want {
			t.Errorf("Float(%q) = (%g, %v), want (%g, %v)", c.in, got, ok, c.want, c.ok)
		}
	}
}
