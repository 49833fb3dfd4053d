package cli

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"go-records-dashboard/internal/model"
	"go-records-dashboard/pkg/utils"
)

func renderTable(w io.Writer, header []string, rows [][]string) {
	table := tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoWrap: tw.WrapNone},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoFormat: tw.On},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
		}),
	)
	table.Header(header)
	table.Bulk(rows)
	table.Render()
}

func average(v *float64) string {
	if v == nil {
		return "-"
	}
	return utils.FormatNumber(*v)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func printSummary(w io.Writer, s model.Summary) {
	intensity := make([][]string, 0, len(s.IntensityByYear))
	for _, p := range s.IntensityByYear {
		intensity = append(intensity, []string{orDash(p.Label()), average(p.AvgIntensity)})
	}
	renderTable(w, []string{"Year", "Avg intensity"}, intensity)

	likelihood := make([][]string, 0, len(s.LikelihoodByCountry))
	for _, p := range s.LikelihoodByCountry {
		likelihood = append(likelihood, []string{p.ID, average(p.AvgLikelihood)})
	}
	renderTable(w, []string{"Country", "Avg likelihood"}, likelihood)

	topics := make([][]string, 0, len(s.TopicFrequency))
	for _, p := range s.TopicFrequency {
		topics = append(topics, []string{p.ID, strconv.Itoa(p.Count)})
	}
	renderTable(w, []string{"Topic", "Count"}, topics)
}
