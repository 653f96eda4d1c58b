package lexorank

// base62Digits lists the alphabet in ascending order; a symbol's value is its
// index. ASCII order agrees with it, so plain string comparison orders ranks.
const base62Digits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

const (
	MinChar    byte = '0'
	MaxChar    byte = 'z'
	MedianChar byte = 'U'
)

const (
	minValue = 0
	maxValue = len(base62Digits) - 1
)

// MaxRankLen bounds every parsed and generated rank.
const MaxRankLen = 128

var symbolValues = func() (t [256]int8) {
	for i := range t {
		t[i] = -1
	}
	for i := 0; i < len(base62Digits); i++ {
		t[base62Digits[i]] = int8(i)
	}
	return t
}()

// ValueOf returns the alphabet value of c and whether c is in the alphabet.
func ValueOf(c byte) (int, bool) {
	v := symbolValues[c]
	return int(v), v >= 0
}

// SymbolOf returns the symbol with value v. It panics if v is outside 0..61.
func SymbolOf(v int) byte {
	return base62Digits[v]
}

// valueAt returns the value of s[i], or the value of MinChar past the end.
func valueAt(s string, i int) int {
	if i >= len(s) {
		return 0
	}
	v, _ := ValueOf(s[i])
	return v
}

// validateChars reports every distinct out-of-alphabet rune of s at once.
func validateChars(s string) error {
	var bad []string
	seen := map[rune]bool{}
	for _, r := range s {
		if r < 0x80 && symbolValues[byte(r)] >= 0 {
			continue
		}
		if !seen[r] {
			seen[r] = true
			bad = append(bad, string(r))
		}
	}
	if len(bad) > 0 {
		return &InvalidCharsError{Rank: s, Chars: bad}
	}
	return nil
}
