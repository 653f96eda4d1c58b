package lexorank

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRank(t *testing.T, s string) Rank {
	t.Helper()
	r, err := ParseRank(s)
	require.NoError(t, err)
	return r
}

func TestRankForEmptySequence(t *testing.T) {
	assert.Equal(t, "U", RankForEmptySequence().String())
}

func TestRankAfter(t *testing.T) {
	assert := assert.New(t)

	test := func(prev, exp string) {
		act, err := mustRank(t, prev).After()
		assert.NoError(err)
		assert.Equal(exp, act.String())
	}

	test("aaaa", "aaab")
	test("aaaz", "aaaz1")
	test("1", "2")
	test("y", "y1")
	test("x", "y")
	test("z", "z1")
	test("U", "V")
}

func TestRankBefore(t *testing.T) {
	assert := assert.New(t)

	test := func(next, exp string) {
		act, err := mustRank(t, next).Before()
		assert.NoError(err)
		assert.Equal(exp, act.String())
	}

	test("2", "1")
	test("acab", "acaa")
	test("aaa1", "aaa0y")
	test("y1", "y0y")
	test("1", "0y")
	test("U", "T")
}

func TestRankBetween(t *testing.T) {
	assert := assert.New(t)

	test := func(prev, next, exp string) {
		act, err := mustRank(t, prev).Between(mustRank(t, next))
		assert.NoError(err)
		assert.Equal(exp, act.String())
	}

	test("aaaa", "aaab", "aaaaU")
	test("aaaa", "aaac", "aaab")
	test("az", "b", "azU")
	test("amz", "ana", "amzU")
	test("baba", "fgfg", "d")
	test("1", "2", "1U")
	test("ya", "ya5", "ya2")
	test("ya", "yc5", "yb")
	test("a", "a2", "a1")
	test("a", "a1", "a0U")
	test("a", "a01", "a00U")
	test("1", "z", "V")
}

func TestRankBetweenPrevGreaterThanOrEquals(t *testing.T) {
	_, err := mustRank(t, "Z").Between(mustRank(t, "A"))
	assert.ErrorIs(t, err, ErrPrevGreaterThanOrEquals)

	_, err = mustRank(t, "D").Between(mustRank(t, "D"))
	assert.ErrorIs(t, err, ErrPrevGreaterThanOrEquals)
	assert.Equal(t, "Previous Rank (D) is greater than or equals to Next (D)", err.Error())
}

func TestRankMaxLength(t *testing.T) {
	base := strings.Repeat("y", MaxRankLen-1)
	prev := base + "x"

	_, err := mustRank(t, prev).Between(mustRank(t, base+"y"))
	var lenErr *MaxRankLengthError
	require.True(t, errors.As(err, &lenErr))
	assert.Equal(t, prev+"U", lenErr.Rank)
	assert.Equal(t, MaxRankLen+1, lenErr.Length)
	assert.Equal(t, MaxRankLen, lenErr.Max)

	_, err = mustRank(t, strings.Repeat("y", MaxRankLen)).After()
	assert.ErrorIs(t, err, ErrMaxRankLength)

	_, err = mustRank(t, strings.Repeat("1", MaxRankLen)).Before()
	assert.ErrorIs(t, err, ErrMaxRankLength)

	// Replacing the last symbol never grows the rank.
	r, err := mustRank(t, strings.Repeat("x", MaxRankLen)).After()
	assert.NoError(t, err)
	assert.Equal(t, MaxRankLen, r.Len())
}

func TestParseRank(t *testing.T) {
	r, err := ParseRank("AA01")
	assert.NoError(t, err)
	assert.Equal(t, "AA01", r.String())

	_, err = ParseRank("")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = ParseRank("0/0z*z0+0z{z")
	assert.ErrorIs(t, err, ErrInvalidChars)
	assert.Equal(t, "Rank provided contains an invalid Char. Rank Provided: 0/0z*z0+0z{z - Invalid char: /, *, +, {", err.Error())

	_, err = ParseRank(strings.Repeat("y", MaxRankLen+1))
	assert.ErrorIs(t, err, ErrMaxRankLength)

	_, err = ParseRank(strings.Repeat("y", MaxRankLen))
	assert.NoError(t, err)

	_, err = ParseRank("UUU0")
	assert.ErrorIs(t, err, ErrLastCharIsMinChar)
	assert.Equal(t, "The last char of the rank (UUU0) can't be equal to the min char (0).", err.Error())
}

func TestRankZeroValue(t *testing.T) {
	var zero Rank
	assert.True(t, zero.IsZero())

	_, err := zero.After()
	assert.ErrorIs(t, err, ErrInvalidFormat)
	_, err = zero.Before()
	assert.ErrorIs(t, err, ErrInvalidFormat)
	_, err = zero.Between(RankForEmptySequence())
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestRankCompare(t *testing.T) {
	assert.Equal(t, -1, mustRank(t, "y").Compare(mustRank(t, "y1")))
	assert.Equal(t, 0, mustRank(t, "y").Compare(mustRank(t, "y")))
	assert.Equal(t, 1, mustRank(t, "a").Compare(mustRank(t, "Z")))
	assert.True(t, mustRank(t, "9").Less(mustRank(t, "A")))
}

// TestRankRandomInsertions inserts at random positions of an ordered list and
// checks the list stays strictly ascending and every rank round-trips.
func TestRankRandomInsertions(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		r := rand.New(rand.NewSource(seed))
		list := []Rank{RankForEmptySequence()}

		for i := 0; i < 300; i++ {
			pos := r.Intn(len(list) + 1)
			var (
				c   Rank
				err error
			)
			switch pos {
			case 0:
				c, err = list[0].Before()
			case len(list):
				c, err = list[len(list)-1].After()
			default:
				c, err = list[pos-1].Between(list[pos])
			}
			require.NoError(t, err)

			list = append(list[:pos], append([]Rank{c}, list[pos:]...)...)
		}

		for i, rank := range list {
			parsed, err := ParseRank(rank.String())
			require.NoError(t, err)
			assert.Equal(t, rank, parsed)
			if i > 0 {
				assert.True(t, list[i-1].Less(rank), "%s >= %s", list[i-1], rank)
			}
		}
	}
}

func TestRankBeforeAfterOrdering(t *testing.T) {
	for v := 1; v < len(base62Digits); v++ {
		for _, prefix := range []string{"", "a", "z0", "U"} {
			x := mustRank(t, prefix+string(SymbolOf(v)))
			before, err := x.Before()
			require.NoError(t, err)
			after, err := x.After()
			require.NoError(t, err)
			assert.True(t, before.Less(x), "before(%s) = %s", x, before)
			assert.True(t, x.Less(after), "after(%s) = %s", x, after)
		}
	}
}
