package money

import "testing"

func TestFormat(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{1234.5, "A$1,234.50"},
		{120, "A$120.00"},
		{0, "A$0.00"},
		{1000000, "A$1,000,000.00"},
	}
	for _, tt := range tests {
		if got := Format("A$", tt.amount); got != tt.want {
			t.Errorf("Format(A$, %v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestInWords(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{200, "Two hundred dollars"},
		{1.01, "One dollar and one cent"},
		{0, "Zero dollars"},
		{2.5, "Two dollars and fifty cents"},
		{1, "One dollar"},
	}
	for _, tt := range tests {
		if got := InWords(tt.amount); got != tt.want {
			t.Errorf("InWords(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	if got, e := Parse("120.50"); e != nil || got != 120.5 {
		t.Fatalf("Parse(120.50) = %v, %v", got, e)
	}
	if got, e := Parse(float64(42)); e != nil || got != 42 {
		t.Fatalf("Parse(float64 42) = %v, %v", got, e)
	}
	for _, bad := range []any{nil, "", "   ", "not-a-number"} {
		if _, e := Parse(bad); e == nil {
			t.Errorf("Parse(%v): expected error, got none", bad)
		}
	}
}

func TestCoerceDefaultsToZero(t *testing.T) {
	if got := Coerce("garbage"); got != 0 {
		t.Fatalf("Coerce(garbage) = %v, want 0", got)
	}
	if got := Coerce(nil); got != 0 {
		t.Fatalf("Coerce(nil) = %v, want 0", got)
	}
	if got := Coerce(" 7.25 "); got != 7.25 {
		t.Fatalf("Coerce(' 7.25 ') = %v, want 7.25", got)
	}
}
