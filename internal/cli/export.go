package cli

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"go-records-dashboard/internal/model"
	"go-records-dashboard/internal/pipeline"
	"go-records-dashboard/pkg/utils"
)

const (
	formatCSV  = "csv"
	formatJSON = "json"
)

func newExportCommand(opts *options, defaultDir string) *cobra.Command {
	var (
		filters model.FilterState
		outDir  string
		runID   string
		format  string
		summary bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the filtered records to a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(format)
			if format != formatCSV && format != formatJSON {
				return fmt.Errorf("invalid format %q: must be csv or json", format)
			}

			out := cmd.OutOrStdout()
			res, err := pipeline.Run(cmd.Context(), opts.client(), filters)
			if err != nil {
				return err
			}
			color.New(color.FgCyan).Fprintf(out, "📥 %d records loaded%s\n", len(res.Records), res.Query)

			if summary {
				printSummary(out, res.Summary)
			}

			data, ok := encode(format, res.Records)
			if !ok {
				color.New(color.FgYellow).Fprintln(out, "⚠️ No records to export")
				return nil
			}

			om := utils.NewOutputManager(outDir)
			path, err := om.WriteFile(runID, exportFileName(format), data)
			if err != nil {
				return err
			}
			size, err := om.GetFileSize(path)
			if err != nil {
				return err
			}

			result := pipeline.ExportResult{
				Type:        format,
				Path:        path,
				RecordCount: len(res.Records),
				Bytes:       size,
				ExportedAt:  time.Now().UTC(),
			}
			color.New(color.FgGreen).Fprintf(out, "✅ Exported %s\n", result)
			return nil
		},
	}

	addFilterFlags(cmd, &filters)
	cmd.Flags().StringVarP(&outDir, "out", "o", defaultDir, "output directory")
	cmd.Flags().StringVar(&runID, "run-id", "", "subdirectory for this run")
	cmd.Flags().StringVarP(&format, "format", "f", formatCSV, "output format: csv or json")
	cmd.Flags().BoolVar(&summary, "summary", false, "print the aggregations")
	return cmd
}

func exportFileName(format string) string {
	if format == formatJSON {
		return strings.TrimSuffix(pipeline.ExportFileName, ".csv") + ".json"
	}
	return pipeline.ExportFileName
}

func encode(format string, records []model.Record) ([]byte, bool) {
	if format == formatCSV {
		return pipeline.ExportCSV(records)
	}
	if len(records) == 0 {
		return nil, false
	}
	var buf bytes.Buffer
	if _, err := pipeline.ExportJSON(&buf, records); err != nil {
		return nil, false
	}
	return buf.Bytes(), true
}
