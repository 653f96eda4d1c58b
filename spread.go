package lexorank

// NRanksBetween returns n ascending ranks strictly between prev and next.
// prev must sort before next.
func NRanksBetween(prev, next Rank, n uint) ([]Rank, error) {
	if n == 0 {
		return []Rank{}, nil
	}
	mid := n / 2
	c, err := prev.Between(next)
	if err != nil {
		return nil, err
	}
	result := make([]Rank, 0, n)
	{
		r, err := NRanksBetween(prev, c, mid)
		if err != nil {
			return nil, err
		}
		result = append(result, r...)
	}
	result = append(result, c)
	{
		r, err := NRanksBetween(c, next, n-mid-1)
		if err != nil {
			return nil, err
		}
		result = append(result, r...)
	}
	return result, nil
}

// NRanksAfter returns n ascending ranks following prev.
func NRanksAfter(prev Rank, n uint) ([]Rank, error) {
	result := make([]Rank, 0, n)
	c := prev
	for i := uint(0); i < n; i++ {
		var err error
		c, err = c.After()
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, nil
}

// NRanksBefore returns n ascending ranks preceding next.
func NRanksBefore(next Rank, n uint) ([]Rank, error) {
	result := make([]Rank, 0, n)
	c := next
	for i := uint(0); i < n; i++ {
		var err error
		c, err = c.Before()
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	reverse(result)
	return result, nil
}

// RankSequence returns n ascending ranks for a collection that starts out
// empty, centred on RankForEmptySequence.
func RankSequence(n uint) ([]Rank, error) {
	if n == 0 {
		return []Rank{}, nil
	}
	seed := RankForEmptySequence()
	below, err := NRanksBefore(seed, (n-1)/2)
	if err != nil {
		return nil, err
	}
	above, err := NRanksAfter(seed, n-1-(n-1)/2)
	if err != nil {
		return nil, err
	}
	result := make([]Rank, 0, n)
	result = append(result, below...)
	result = append(result, seed)
	return append(result, above...), nil
}

// NBetween returns n ascending bucket ranks strictly between br and next,
// which must share br's bucket.
func (br BucketRank) NBetween(next BucketRank, n uint) ([]BucketRank, error) {
	if br.bucket != next.bucket {
		return nil, &MismatchedBucketsError{First: br.bucket, Second: next.bucket}
	}
	ranks, err := NRanksBetween(br.rank, next.rank, n)
	if err != nil {
		return nil, err
	}
	return br.withRanks(ranks), nil
}

// BucketRankSequence returns n ascending bucket ranks for an empty bucket.
// Rebalancing a collection re-keys it with this sequence in the bucket given
// by WithNextBucket.
func BucketRankSequence(bucket Bucket, separator string, n uint) ([]BucketRank, error) {
	seed, err := BucketRankForEmptySequence(bucket, separator)
	if err != nil {
		return nil, err
	}
	ranks, err := RankSequence(n)
	if err != nil {
		return nil, err
	}
	return seed.withRanks(ranks), nil
}

func (br BucketRank) withRanks(ranks []Rank) []BucketRank {
	out := make([]BucketRank, len(ranks))
	for i, r := range ranks {
		out[i] = br.withRank(r)
	}
	return out
}

func reverse[T any](values []T) {
	for i := 0; i < len(values)/2; i++ {
		j := len(values) - i - 1
		values[i], values[j] = values[j], values[i]
	}
}
