package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"relink/internal/classify"
	"relink/internal/preflight"
	"relink/internal/runner"
)

func renderSummary(out io.Writer, summary *runner.Summary, hardlink bool) {
	if !preflight.AllPassed(summary.Preflight) {
		fmt.Fprintln(out, renderPreflightTable(summary.Preflight))
		return
	}
	if len(summary.Groups) > 0 {
		fmt.Fprintln(out, renderGroupTable(summary, hardlink))
	}

	fmt.Fprintf(out, "Total files scanned: %d\n", summary.TotalFiles)
	fmt.Fprintf(out, "Estimated space savings: %s\n", humanize.IBytes(uint64(summary.SavedBytes)))
}

func renderGroupTable(summary *runner.Summary, hardlink bool) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Classification", "Size", "Copies", "Action", "First member"})

	for _, result := range summary.Groups {
		tw.AppendRow(table.Row{
			result.Outcome.Class.String(),
			humanize.IBytes(uint64(result.Group.Size)),
			strconv.Itoa(len(result.Group.Members)),
			actionLabel(result, hardlink),
			result.Group.Members[0].Path,
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

func renderPreflightTable(results []preflight.Result) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Check", "Status", "Detail"})

	for _, result := range results {
		status := "FAIL"
		if result.Passed {
			status = "ok"
		}
		tw.AppendRow(table.Row{result.Name, status, result.Detail})
	}
	return tw.Render()
}

func actionLabel(result runner.GroupResult, hardlink bool) string {
	switch {
	case result.Merged:
		return "merged"
	case result.Outcome.Accepted && !hardlink:
		return "would merge"
	case result.Outcome.Class == classify.No:
		return "kept"
	default:
		return "skipped"
	}
}
