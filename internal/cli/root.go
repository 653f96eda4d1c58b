package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ntauth/lexorank"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	Separator  string
	LastBucket uint8

	logger *zap.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the lexorank CLI. A nil logger
// is replaced by a production zap logger on stderr when a command runs.
func NewRootCommand(logger *zap.Logger) *cobra.Command {
	opts := &RootOptions{logger: logger}

	cmd := &cobra.Command{
		Use:   "lexorank",
		Short: "Generate and inspect LexoRank bucket ranks",
		Long: `lexorank generates ordering keys of the form "<bucket>|<rank>".

Keys sort as plain strings, and a new key can always be placed before, after
or between existing ones without renumbering the rest of the list.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			if opts.Separator == "" {
				return fmt.Errorf("separator must not be empty")
			}
			if opts.logger != nil {
				return nil
			}

			config := zap.NewProductionConfig()
			if opts.Verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			opts.logger, err = config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Separator, "separator", lexorank.DefaultSeparator, "separator between bucket and rank")
	cmd.PersistentFlags().Uint8Var(&opts.LastBucket, "last-bucket", uint8(lexorank.DefaultLastBucket), "highest bucket before wrapping to 0")

	// Add subcommands
	cmd.AddCommand(NewSeedCommand(opts))
	cmd.AddCommand(NewParseCommand(opts))
	cmd.AddCommand(NewAfterCommand(opts))
	cmd.AddCommand(NewBeforeCommand(opts))
	cmd.AddCommand(NewBetweenCommand(opts))
	cmd.AddCommand(NewNextBucketCommand(opts))
	cmd.AddCommand(NewSpreadCommand(opts))
	cmd.AddCommand(NewSequenceCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

func (o *RootOptions) parse(s string) (lexorank.BucketRank, error) {
	br, err := lexorank.ParseBucketRankWithSeparator(s, o.Separator)
	if err != nil {
		o.logger.Debug("parse failed", zap.String("input", s), zap.Error(err))
		return lexorank.BucketRank{}, err
	}
	return br, nil
}
