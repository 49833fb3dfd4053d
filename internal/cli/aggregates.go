package cli

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"go-records-dashboard/internal/model"
)

func newAggregatesCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "aggregates",
		Short: "Print the records API's own aggregations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := opts.client()
			var s model.Summary

			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				var err error
				s.IntensityByYear, err = client.FetchIntensityByYear(ctx)
				return err
			})
			g.Go(func() error {
				var err error
				s.LikelihoodByCountry, err = client.FetchLikelihoodByCountry(ctx)
				return err
			})
			g.Go(func() error {
				var err error
				s.TopicFrequency, err = client.FetchTopicFrequency(ctx)
				return err
			})
			if err := g.Wait(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			color.New(color.FgCyan).Fprintln(out, "📊 Server-side aggregations")
			printSummary(out, s)
			return nil
		},
	}
}
