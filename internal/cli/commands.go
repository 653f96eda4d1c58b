package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ntauth/lexorank"
)

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	var bucket uint8

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Print the first rank of an empty bucket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			br, err := lexorank.BucketRankForEmptySequence(lexorank.Bucket(bucket), rootOpts.Separator)
			if err != nil {
				return err
			}
			rootOpts.logger.Debug("seeded empty bucket", zap.Uint8("bucket", bucket))
			return writeRanks(cmd.OutOrStdout(), rootOpts.Format, br)
		},
	}
	cmd.Flags().Uint8Var(&bucket, "bucket", uint8(lexorank.DefaultFirstBucket), "bucket to seed")

	return cmd
}

// NewParseCommand creates the parse command.
func NewParseCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <bucket-rank>",
		Short: "Validate a bucket rank",
		Long: `Validate a stored bucket rank and print it back.

Fails on a malformed shape, symbols outside the alphabet, ranks longer than
the maximum length, or ranks ending in the minimum symbol.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			br, err := rootOpts.parse(args[0])
			if err != nil {
				return err
			}
			return writeRanks(cmd.OutOrStdout(), rootOpts.Format, br)
		},
	}
}

// NewAfterCommand creates the after command.
func NewAfterCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "after <bucket-rank>",
		Short: "Print a rank that sorts right after the given one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUnary(cmd, rootOpts, args[0], "after", lexorank.BucketRank.After)
		},
	}
}

// NewBeforeCommand creates the before command.
func NewBeforeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "before <bucket-rank>",
		Short: "Print a rank that sorts right before the given one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUnary(cmd, rootOpts, args[0], "before", lexorank.BucketRank.Before)
		},
	}
}

func runUnary(cmd *cobra.Command, opts *RootOptions, arg, op string, fn func(lexorank.BucketRank) (lexorank.BucketRank, error)) error {
	br, err := opts.parse(arg)
	if err != nil {
		return err
	}
	out, err := fn(br)
	if err != nil {
		return err
	}
	opts.logger.Debug("generated rank", zap.String("op", op), zap.Stringer("from", br), zap.Stringer("rank", out))
	return writeRanks(cmd.OutOrStdout(), opts.Format, out)
}

// NewBetweenCommand creates the between command.
func NewBetweenCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "between <prev> <next>",
		Short: "Print a rank strictly between two ranks of the same bucket",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			prev, err := rootOpts.parse(args[0])
			if err != nil {
				return err
			}
			next, err := rootOpts.parse(args[1])
			if err != nil {
				return err
			}
			mid, err := prev.Between(next)
			if err != nil {
				return err
			}
			rootOpts.logger.Debug("generated rank", zap.String("op", "between"),
				zap.Stringer("prev", prev), zap.Stringer("next", next), zap.Stringer("rank", mid))
			return writeRanks(cmd.OutOrStdout(), rootOpts.Format, mid)
		},
	}
}

// NewNextBucketCommand creates the next-bucket command.
func NewNextBucketCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "next-bucket <bucket-rank>",
		Short: "Move a rank to the next bucket, wrapping after --last-bucket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			br, err := rootOpts.parse(args[0])
			if err != nil {
				return err
			}
			next := br.WithNextBucket(lexorank.Bucket(rootOpts.LastBucket))
			rootOpts.logger.Debug("rotated bucket",
				zap.Uint8("from", uint8(br.Bucket())), zap.Uint8("to", uint8(next.Bucket())))
			return writeRanks(cmd.OutOrStdout(), rootOpts.Format, next)
		},
	}
}

// NewSpreadCommand creates the spread command.
func NewSpreadCommand(rootOpts *RootOptions) *cobra.Command {
	var count uint

	cmd := &cobra.Command{
		Use:   "spread <prev> <next>",
		Short: "Print --count ranks strictly between two ranks",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			prev, err := rootOpts.parse(args[0])
			if err != nil {
				return err
			}
			next, err := rootOpts.parse(args[1])
			if err != nil {
				return err
			}
			brs, err := prev.NBetween(next, count)
			if err != nil {
				return err
			}
			return writeRanks(cmd.OutOrStdout(), rootOpts.Format, brs...)
		},
	}
	cmd.Flags().UintVarP(&count, "count", "n", 1, "number of ranks")

	return cmd
}

// NewSequenceCommand creates the sequence command.
func NewSequenceCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		count  uint
		bucket uint8
	)

	cmd := &cobra.Command{
		Use:   "sequence",
		Short: "Print --count ascending ranks for an empty bucket",
		Long: `Print --count ascending ranks for an empty bucket.

Rebalancing a collection re-keys every item, in order, with this sequence in
the bucket that next-bucket reports.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count == 0 {
				return fmt.Errorf("--count must be at least 1")
			}
			brs, err := lexorank.BucketRankSequence(lexorank.Bucket(bucket), rootOpts.Separator, count)
			if err != nil {
				return err
			}
			rootOpts.logger.Debug("generated sequence", zap.Uint8("bucket", bucket), zap.Uint("count", count))
			return writeRanks(cmd.OutOrStdout(), rootOpts.Format, brs...)
		},
	}
	cmd.Flags().UintVarP(&count, "count", "n", 1, "number of ranks")
	cmd.Flags().Uint8Var(&bucket, "bucket", uint8(lexorank.DefaultFirstBucket), "bucket to fill")

	return cmd
}
