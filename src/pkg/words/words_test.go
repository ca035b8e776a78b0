package words

import "testing"

func TestSpellInteger(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "zero"},
		{1, "one"},
		{-5, "minus five"},
		{13, "thirteen"},
		{20, "twenty"},
		{21, "twenty-one"},
		{99, "ninety-nine"},
		{100, "one hundred"},
		{105, "one hundred and five"},
		{120, "one hundred and twenty"},
		{300, "three hundred"},
		{1000, "one thousand"},
		{1001, "one thousand one"},
		{1115, "one thousand one hundred and fifteen"},
		{1000000, "one million"},
		{2500000, "two million five hundred thousand"},
		{1000000000, "one billion"},
		{1000000000000, "one trillion"},
	}
	for _, tt := range tests {
		if got := SpellInteger(tt.n); got != tt.want {
			t.Errorf("SpellInteger(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
