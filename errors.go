package lexorank

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors, one per failure kind. Every concrete error type below
// matches exactly one of them with errors.Is.
var (
	ErrInvalidFormat           = errors.New("invalid bucket rank format")
	ErrMismatchedBuckets       = errors.New("mismatched buckets")
	ErrInvalidChars            = errors.New("invalid rank chars")
	ErrMaxRankLength           = errors.New("rank too long")
	ErrLastCharIsMinChar       = errors.New("last char is min char")
	ErrPrevGreaterThanOrEquals = errors.New("prev rank greater than or equal to next")
)

// InvalidFormatError is returned when a bucket rank string is not
// "<digits><separator><rank>".
type InvalidFormatError struct {
	Input     string
	Separator string
}

func (e *InvalidFormatError) Error() string {
	if e.Input == "" && e.Separator == "" {
		return "rank is empty"
	}
	return fmt.Sprintf("BucketRank doesn't match the required format \"<bucket>%s<rank>\" for input %q", e.Separator, e.Input)
}

func (e *InvalidFormatError) Is(target error) bool { return target == ErrInvalidFormat }

// MismatchedBucketsError is returned when two bucket ranks from different
// buckets are combined.
type MismatchedBucketsError struct {
	First  Bucket
	Second Bucket
}

func (e *MismatchedBucketsError) Error() string {
	return fmt.Sprintf("BucketRanks are of two different buckets: %d and %d", e.First, e.Second)
}

func (e *MismatchedBucketsError) Is(target error) bool { return target == ErrMismatchedBuckets }

// InvalidCharsError lists every distinct symbol of Rank outside the alphabet,
// in order of first appearance.
type InvalidCharsError struct {
	Rank  string
	Chars []string
}

func (e *InvalidCharsError) Error() string {
	return fmt.Sprintf("Rank provided contains an invalid Char. Rank Provided: %s - Invalid char: %s",
		e.Rank, strings.Join(e.Chars, ", "))
}

func (e *InvalidCharsError) Is(target error) bool { return target == ErrInvalidChars }

// MaxRankLengthError reports a parsed or generated rank longer than Max.
type MaxRankLengthError struct {
	Rank   string
	Length int
	Max    int
}

func (e *MaxRankLengthError) Error() string {
	return fmt.Sprintf("The length of Rank provided is too long. Rank Provided: %s - Rank Length: %d - Max length: %d",
		e.Rank, e.Length, e.Max)
}

func (e *MaxRankLengthError) Is(target error) bool { return target == ErrMaxRankLength }

// LastCharIsMinCharError is returned when a parsed rank ends with MinChar.
type LastCharIsMinCharError struct {
	Rank string
}

func (e *LastCharIsMinCharError) Error() string {
	return fmt.Sprintf("The last char of the rank (%s) can't be equal to the min char (%c).", e.Rank, MinChar)
}

func (e *LastCharIsMinCharError) Is(target error) bool { return target == ErrLastCharIsMinChar }

// PrevGreaterThanOrEqualsError is returned by Between when prev >= next.
type PrevGreaterThanOrEqualsError struct {
	Prev string
	Next string
}

func (e *PrevGreaterThanOrEqualsError) Error() string {
	return fmt.Sprintf("Previous Rank (%s) is greater than or equals to Next (%s)", e.Prev, e.Next)
}

func (e *PrevGreaterThanOrEqualsError) Is(target error) bool {
	return target == ErrPrevGreaterThanOrEquals
}

func checkLength(rank string) error {
	if len(rank) > MaxRankLen {
		return &MaxRankLengthError{Rank: rank, Length: len(rank), Max: MaxRankLen}
	}
	return nil
}
