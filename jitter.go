package lexorank

import "math/rand"

// Jitter interface for testability (use math/rand.Rand).
type Jitter interface {
	// Uniform integer in [min, max], inclusive.
	IntnRange(min, max int) int
}

// NoJitter implements Jitter but returns 0 offset.
type NoJitter struct{}

func (NoJitter) IntnRange(min, max int) int { return 0 }

// RandJitter is a helper backed by *rand.Rand:
type RandJitter struct{ R *rand.Rand }

func (j RandJitter) IntnRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + j.R.Intn(max-min+1)
}

// BetweenJitter is Between with a randomized pick of the interior symbol.
// Two writers inserting between the same pair are then less likely to
// produce the same rank. It does not replace serializing the writes.
//
// jitterRange is the largest distance, in symbols, from the midpoint. When
// the ranks leave no interior symbol the result is the same as Between.
func (r Rank) BetweenJitter(next Rank, j Jitter, jitterRange int) (Rank, error) {
	return r.between(next, j, jitterRange)
}

// pickInterior picks a value strictly between pv and nv, which must differ
// by at least two.
func pickInterior(pv, nv int, j Jitter, jitterRange int) int {
	center := pv + (nv-pv)/2
	if jitterRange <= 0 {
		return center
	}
	// Clamp the jittered window to the open interval (pv, nv).
	lo := max(pv+1, center-j.IntnRange(0, jitterRange))
	hi := min(nv-1, center+j.IntnRange(0, jitterRange))
	if hi > lo {
		return j.IntnRange(lo, hi)
	}
	return lo
}
