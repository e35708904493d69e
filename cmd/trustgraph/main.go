package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/persistorai/trustgraph/internal/config"
	"github.com/persistorai/trustgraph/internal/models"
)

// Build-time variables set via ldflags.
var (
	commit    = ""
	buildDate = ""
)

// Positional arguments of the root command, in order.
const (
	argBatch = iota
	argStream
	argFeature1
	argFeature2
	argFeature3
	argCount
)

var (
	flagConfig    string
	flagLogLevel  string
	flagLogFormat string
	flagHTTPAddr  string
	flagFPRate    float64
	flagMaxHops   int
	flagURL       string
	flagFmt       string
)

func versionString() string {
	if commit != "" && buildDate != "" {
		return fmt.Sprintf("trustgraph version %s (commit: %s, built: %s)", config.Version, commit, buildDate)
	}
	return fmt.Sprintf("trustgraph version %s", config.Version)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "trustgraph <batch_input> <stream_input> <feature1_output> <feature2_output> <feature3_output>",
		Short: "trustgraph: label payments trusted or unverified by social distance",
		Long: "Loads historical payments from batch_input, then labels each payment in stream_input\n" +
			"with three features (direct, two-hop, four-hop) written one per line to the three outputs.",
		Version:      versionString(),
		Args:         exactArgs(argCount),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(cmd, args)
		},
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	f := rootCmd.Flags()
	f.StringVar(&flagConfig, "config", "", "YAML config file (env: TRUSTGRAPH_* overrides file)")
	f.StringVar(&flagLogLevel, "log-level", "", "Log level: debug|info|warn|error")
	f.StringVar(&flagLogFormat, "log-format", "", "Log format: text|json")
	f.StringVar(&flagHTTPAddr, "http-addr", "", "Loopback address for the status server, e.g. 127.0.0.1:9100")
	f.Float64Var(&flagFPRate, "false-positive-rate", 0, "Target false-positive rate of the two-hop filters")
	f.IntVar(&flagMaxHops, "max-hops", 0, "Search depth of the third feature")

	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newCheckCmd())

	return rootCmd
}

// exactArgs rejects any positional count other than n before any file is touched.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return fmt.Errorf("%w: need exactly %d (batch input, stream input, three feature outputs), got %d",
				models.ErrInvalidArgs, n, len(args))
		}
		return nil
	}
}
