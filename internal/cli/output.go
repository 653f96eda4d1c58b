package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ntauth/lexorank"
)

// RankOutput is the JSON form of one bucket rank.
type RankOutput struct {
	Value  string `json:"value"`
	Bucket uint8  `json:"bucket"`
	Rank   string `json:"rank"`
}

// RanksOutput is the JSON document every command prints with --format json.
type RanksOutput struct {
	Ranks []RankOutput `json:"ranks"`
}

// writeRanks prints one bucket rank per line, or a single JSON document.
func writeRanks(w io.Writer, format string, brs ...lexorank.BucketRank) error {
	if format == "json" {
		out := RanksOutput{Ranks: make([]RankOutput, 0, len(brs))}
		for _, br := range brs {
			out.Ranks = append(out.Ranks, RankOutput{
				Value:  br.String(),
				Bucket: uint8(br.Bucket()),
				Rank:   br.Rank().String(),
			})
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	for _, br := range brs {
		if _, err := fmt.Fprintln(w, br.String()); err != nil {
			return err
		}
	}
	return nil
}
