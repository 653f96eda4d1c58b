package lexorank

import "strings"

// Rank is an immutable, non-empty string over the base62 alphabet that never
// ends with MinChar and is at most MaxRankLen symbols long. Ranks sort by
// plain string comparison.
//
// The zero Rank is not valid; obtain ranks from ParseRank,
// RankForEmptySequence or the generators below.
type Rank struct {
	value string
}

// RankForEmptySequence returns the rank to give the first item of an empty
// collection: the median symbol, leaving equal room on both sides.
func RankForEmptySequence() Rank {
	return Rank{value: string(MedianChar)}
}

// ParseRank validates s and returns it as a Rank.
func ParseRank(s string) (Rank, error) {
	if s == "" {
		return Rank{}, &InvalidFormatError{Input: s}
	}
	if err := validateChars(s); err != nil {
		return Rank{}, err
	}
	if err := checkLength(s); err != nil {
		return Rank{}, err
	}
	if s[len(s)-1] == MinChar {
		return Rank{}, &LastCharIsMinCharError{Rank: s}
	}
	return Rank{value: s}, nil
}

// String returns the rank's symbols.
func (r Rank) String() string {
	return r.value
}

func (r Rank) Len() int {
	return len(r.value)
}

// IsZero reports whether r is the zero Rank.
func (r Rank) IsZero() bool {
	return r.value == ""
}

// Compare returns -1, 0 or +1 as r sorts before, equal to or after other.
func (r Rank) Compare(other Rank) int {
	return strings.Compare(r.value, other.value)
}

func (r Rank) Less(other Rank) bool {
	return r.value < other.value
}

// After returns a rank that sorts immediately after r.
//
// The last symbol is incremented unless that would reach MaxChar, in which
// case the symbol just above MinChar is appended instead, keeping room above
// for further appends.
func (r Rank) After() (Rank, error) {
	if r.IsZero() {
		return Rank{}, &InvalidFormatError{}
	}
	last := len(r.value) - 1
	v := valueAt(r.value, last)
	var next string
	if v+1 < maxValue {
		next = r.value[:last] + string(SymbolOf(v+1))
	} else {
		next = r.value + string(SymbolOf(minValue+1))
	}
	if err := checkLength(next); err != nil {
		return Rank{}, err
	}
	return Rank{value: next}, nil
}

// Before returns a rank that sorts immediately before r.
//
// The last symbol is decremented unless that would reach MinChar, in which
// case it becomes MinChar followed by the symbol just below MaxChar.
func (r Rank) Before() (Rank, error) {
	if r.IsZero() {
		return Rank{}, &InvalidFormatError{}
	}
	last := len(r.value) - 1
	v := valueAt(r.value, last)
	var prev string
	if v-1 > minValue {
		prev = r.value[:last] + string(SymbolOf(v-1))
	} else {
		prev = r.value[:last] + string(MinChar) + string(SymbolOf(maxValue-1))
	}
	if err := checkLength(prev); err != nil {
		return Rank{}, err
	}
	return Rank{value: prev}, nil
}

// Between returns a rank strictly between r and next. r must sort before next.
func (r Rank) Between(next Rank) (Rank, error) {
	return r.between(next, NoJitter{}, 0)
}

func (r Rank) between(next Rank, j Jitter, jitterRange int) (Rank, error) {
	if r.IsZero() || next.IsZero() {
		return Rank{}, &InvalidFormatError{}
	}
	if r.value >= next.value {
		return Rank{}, &PrevGreaterThanOrEqualsError{Prev: r.value, Next: next.value}
	}

	// Positions past the end of either rank read as MinChar. Since r < next
	// the scan stops inside next, at a position where next is larger.
	i := 0
	for valueAt(r.value, i) == valueAt(next.value, i) {
		i++
	}
	pv, nv := valueAt(r.value, i), valueAt(next.value, i)

	var mid string
	switch {
	case nv-pv > 1:
		mid = next.value[:i] + string(SymbolOf(pickInterior(pv, nv, j, jitterRange)))
	case i < len(r.value):
		mid = r.value + string(MedianChar)
	default:
		// r is a proper prefix of next padded with MinChar up to i; extending
		// r itself would overshoot next.
		mid = next.value[:i] + string(MinChar) + string(MedianChar)
	}
	if err := checkLength(mid); err != nil {
		return Rank{}, err
	}
	return Rank{value: mid}, nil
}
