package lexorank

import (
	"strconv"
	"strings"
)

// Bucket represents a logical grouping or namespace for ranks.
// It's implemented as a uint8, allowing for up to 256 different buckets.
// Rebalancing moves a whole collection into the next bucket, see
// BucketRank.WithNextBucket.
type Bucket uint8

const (
	DefaultFirstBucket Bucket = 0
	DefaultLastBucket  Bucket = 2
	DefaultSeparator          = "|"
)

// BucketRank pairs a bucket with a rank and serializes as
// "<bucket><separator><rank>", e.g. "0|U".
//
// Bucket ranks order by bucket first and rank second. Like Rank, the zero
// value is not valid.
type BucketRank struct {
	bucket    Bucket // The bucket/namespace this rank belongs to
	separator string // Used only when serializing
	rank      Rank   // Ordering within the bucket
}

// NewBucketRank pairs bucket with rank using DefaultSeparator.
func NewBucketRank(bucket Bucket, rank Rank) BucketRank {
	return BucketRank{bucket: bucket, separator: DefaultSeparator, rank: rank}
}

// ParseBucketRank parses s using DefaultSeparator.
func ParseBucketRank(s string) (BucketRank, error) {
	return ParseBucketRankWithSeparator(s, DefaultSeparator)
}

// ParseBucketRankWithSeparator parses "<digits><separator><rank>". The rank
// part is validated by ParseRank and its errors are returned unchanged.
func ParseBucketRankWithSeparator(s, separator string) (BucketRank, error) {
	formatErr := &InvalidFormatError{Input: s, Separator: separator}
	if separator == "" {
		return BucketRank{}, formatErr
	}

	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	if n == 0 || !strings.HasPrefix(s[n:], separator) || len(s) == n+len(separator) {
		return BucketRank{}, formatErr
	}
	bucket, err := strconv.ParseUint(s[:n], 10, 8)
	if err != nil {
		return BucketRank{}, formatErr
	}

	rank, err := ParseRank(s[n+len(separator):])
	if err != nil {
		return BucketRank{}, err
	}
	return BucketRank{bucket: Bucket(bucket), separator: separator, rank: rank}, nil
}

// BucketRankForEmptySequence returns the first rank of an empty collection in
// bucket.
func BucketRankForEmptySequence(bucket Bucket, separator string) (BucketRank, error) {
	if separator == "" {
		return BucketRank{}, &InvalidFormatError{Separator: separator, Input: strconv.Itoa(int(bucket))}
	}
	return BucketRank{bucket: bucket, separator: separator, rank: RankForEmptySequence()}, nil
}

// String returns the representation of the BucketRank in the format
// "bucket|rank" (with its own separator).
func (br BucketRank) String() string {
	return strconv.Itoa(int(br.bucket)) + br.separator + br.rank.String()
}

// Bucket returns the bucket identifier for this bucket rank.
func (br BucketRank) Bucket() Bucket {
	return br.bucket
}

// Rank returns the rank within the bucket.
func (br BucketRank) Rank() Rank {
	return br.rank
}

func (br BucketRank) Separator() string {
	return br.separator
}

func (br BucketRank) IsZero() bool {
	return br.rank.IsZero()
}

// Compare orders by bucket, then by rank.
func (br BucketRank) Compare(other BucketRank) int {
	switch {
	case br.bucket < other.bucket:
		return -1
	case br.bucket > other.bucket:
		return 1
	}
	return br.rank.Compare(other.rank)
}

func (br BucketRank) Less(other BucketRank) bool {
	return br.Compare(other) < 0
}

// After returns the bucket rank immediately after br in the same bucket.
func (br BucketRank) After() (BucketRank, error) {
	r, err := br.rank.After()
	if err != nil {
		return BucketRank{}, err
	}
	return br.withRank(r), nil
}

// Before returns the bucket rank immediately before br in the same bucket.
func (br BucketRank) Before() (BucketRank, error) {
	r, err := br.rank.Before()
	if err != nil {
		return BucketRank{}, err
	}
	return br.withRank(r), nil
}

// Between returns a bucket rank strictly between br and next, which must
// share br's bucket.
func (br BucketRank) Between(next BucketRank) (BucketRank, error) {
	return br.BetweenJitter(next, NoJitter{}, 0)
}

// BetweenJitter is Between with a randomized midpoint, see Rank.BetweenJitter.
func (br BucketRank) BetweenJitter(next BucketRank, j Jitter, jitterRange int) (BucketRank, error) {
	if br.bucket != next.bucket {
		return BucketRank{}, &MismatchedBucketsError{First: br.bucket, Second: next.bucket}
	}
	r, err := br.rank.BetweenJitter(next.rank, j, jitterRange)
	if err != nil {
		return BucketRank{}, err
	}
	return br.withRank(r), nil
}

// WithNextBucket returns br moved to the following bucket, wrapping to
// DefaultFirstBucket after lastBucket. The rank is unchanged.
func (br BucketRank) WithNextBucket(lastBucket Bucket) BucketRank {
	next := DefaultFirstBucket
	if br.bucket < lastBucket {
		next = br.bucket + 1
	}
	return BucketRank{bucket: next, separator: br.separator, rank: br.rank}
}

func (br BucketRank) withRank(r Rank) BucketRank {
	return BucketRank{bucket: br.bucket, separator: br.separator, rank: r}
}
