// Package cli implements the records-export command line tool
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go-records-dashboard/internal/config"
	"go-records-dashboard/internal/model"
	"go-records-dashboard/internal/pipeline"
)

// options are the flags shared by every command
type options struct {
	cfgFile string
	baseURL string
	timeout time.Duration
}

// Execute runs the root command against the process arguments
func Execute() error {
	return NewRootCommand(os.Stdout).Execute()
}

// NewRootCommand builds the command tree writing to out
func NewRootCommand(out io.Writer) *cobra.Command {
	cfg, _ := config.Load()
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "records-export",
		Short: "Fetch, filter, aggregate and export records",
		Long: `records-export pulls records from the records API with the same filters the
dashboard offers, narrows them by the search term and writes them to disk.

Example usage:
  records-export export --topic oil --format csv     # write records.csv
  records-export export --search gas --summary       # also print the aggregations
  records-export aggregates                          # server-side aggregations`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (default is .records-export.yaml)")
	flags.StringVar(&opts.baseURL, "base-url", cfg.Upstream.BaseURL, "records API base URL")
	flags.DurationVar(&opts.timeout, "timeout", cfg.Upstream.Timeout, "upstream request timeout (0 = none)")

	rootCmd.AddCommand(newExportCommand(opts, cfg.Export.Dir))
	rootCmd.AddCommand(newAggregatesCommand(opts))
	return rootCmd
}

// load layers the config file and RECORDS_EXPORT_* env under explicit flags
func (o *options) load(cmd *cobra.Command) error {
	v := viper.New()
	if o.cfgFile != "" {
		v.SetConfigFile(o.cfgFile)
	} else {
		v.SetConfigName(".records-export")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix("RECORDS_EXPORT")
	v.AutomaticEnv()

	flags := cmd.Flags()
	_ = v.BindPFlag("base_url", flags.Lookup("base-url"))
	_ = v.BindPFlag("timeout", flags.Lookup("timeout"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if o.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	o.baseURL = v.GetString("base_url")
	o.timeout = v.GetDuration("timeout")
	return nil
}

func (o *options) client() *pipeline.Client {
	return pipeline.NewClient(o.baseURL, o.timeout)
}

func addFilterFlags(cmd *cobra.Command, fs *model.FilterState) {
	flags := cmd.Flags()
	flags.StringVar(&fs.Search, "search", "", "case-insensitive title/topic search")
	flags.StringVar(&fs.EndYear, "end-year", "", "end year")
	flags.StringVar(&fs.Topic, "topic", "", "topic")
	flags.StringVar(&fs.Sector, "sector", "", "sector")
	flags.StringVar(&fs.Region, "region", "", "region")
	flags.StringVar(&fs.Country, "country", "", "country")
	flags.StringVar(&fs.Pestle, "pestle", "", "PESTLE category")
	flags.StringVar(&fs.Source, "source", "", "source")
}
