// Package words spells integers in English (AU/UK style).
package words

import "strings"

var units = []string{
	"", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
	"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen",
	"seventeen", "eighteen", "nineteen",
}

var tens = []string{"", "", "twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety"}

// Scales in descending order. The decomposition below consumes them top-down.
var scales = []struct {
	value int64
	name  string
}{
	{1_000_000_000_000, "trillion"},
	{1_000_000_000, "billion"},
	{1_000_000, "million"},
	{1_000, "thousand"},
	{100, "hundred"},
}

/*
SpellInteger spells n in English words.

Examples:

	SpellInteger(0)       == "zero"
	SpellInteger(-5)      == "minus five"
	SpellInteger(105)     == "one hundred and five"
	SpellInteger(1000000) == "one million"

The word "and" is inserted after "hundred" when a non-zero remainder below
one hundred follows, e.g. "one hundred and twenty". Recursion happens only
on n divided by a scale value, so the depth is bounded by the scale chain.
*/
func SpellInteger(n int64) string {
	if n == 0 {
		return "zero"
	}
	if n < 0 {
		return "minus " + SpellInteger(-n)
	}

	var out []string
	for _, s := range scales {
		if n < s.value {
			continue
		}
		count := n / s.value
		n -= count * s.value
		out = append(out, SpellInteger(count)+" "+s.name)
		if s.value == 100 && n > 0 && n < 100 {
			out = append(out, "and")
		}
	}

	if n >= 20 {
		word := tens[n/10]
		if n%10 != 0 {
			word += "-" + units[n%10]
		}
		out = append(out, word)
	} else if n > 0 {
		out = append(out, units[n])
	}

	return strings.Join(out, " ")
}
