package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/persistorai/trustgraph/client"
	"github.com/persistorai/trustgraph/internal/models"
)

const defaultStatusURL = "http://127.0.0.1:9100"

func addQueryFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagURL, "url", defaultStatusURL, "Status server of a running trustgraph process")
	cmd.Flags().StringVar(&flagFmt, "format", "table", "Output format: table|json")
}

func newQueryClient() *client.Client {
	return client.New(flagURL, client.WithTimeout(10*time.Second))
}

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show health and graph size of a running process",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := newQueryClient()

			health, err := c.Health(cmd.Context())
			if err != nil {
				return fmt.Errorf("health: %w", err)
			}

			stats, err := c.Stats(cmd.Context())
			if err != nil {
				return fmt.Errorf("stats: %w", err)
			}

			out := cmd.OutOrStdout()
			if flagFmt == "json" {
				return formatJSON(out, map[string]any{"health": health, "stats": stats})
			}

			formatTable(out, []string{"FIELD", "VALUE"}, [][]string{
				{"status", health.Status},
				{"version", health.Version},
				{"phase", health.Phase},
				{"uptime", (time.Duration(health.UptimeSeconds) * time.Second).String()},
				{"nodes", strconv.Itoa(stats.Nodes)},
				{"edges", strconv.Itoa(stats.Edges)},
				{"average_degree", strconv.Itoa(stats.AverageDegree)},
				{"neighbor_filters", strconv.Itoa(stats.Filters)},
				{"saturated_ratio", strconv.FormatFloat(stats.SaturatedRatio, 'f', 3, 64)},
				{"cache_built", strconv.FormatBool(stats.CacheBuilt)},
			})

			return nil
		},
	}
	addQueryFlags(cmd)

	return cmd
}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <from> <to>",
		Short: "Evaluate a payment against a running process without applying it",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 2 {
				return fmt.Errorf("%w: check needs <from> <to>, got %d", models.ErrInvalidArgs, len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := newQueryClient().Trust(cmd.Context(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("trust: %w", err)
			}

			out := cmd.OutOrStdout()
			if flagFmt == "json" {
				return formatJSON(out, res)
			}

			formatTable(out, []string{"FROM", "TO", "FEATURE1", "FEATURE2", "FEATURE3"}, [][]string{
				{res.From, res.To, res.Feature1, res.Feature2, res.Feature3},
			})

			return nil
		},
	}
	addQueryFlags(cmd)

	return cmd
}
