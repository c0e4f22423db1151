package main

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"

	"relay-lab/domain"
	"relay-lab/observability"
	"relay-lab/projection"
	"relay-lab/runtime"
)

// PrintSummary writes the per-participant table, the monitor counters and,
// if enabled, the recent failures.
func PrintSummary(w io.Writer, router *runtime.Router, timelines []*projection.Timeline, cfg DisplayConfig) {
	stats := router.Stats()

	printHeader(w, "Participants", cfg)
	participants := newTable(w, []string{"Participant", "Inbox", "Sent", "Decoded", "Types"})
	for _, timeline := range timelines {
		participants.Append([]string{
			timeline.Owner.String(),
			strconv.Itoa(len(router.Inbox(timeline.Owner))),
			strconv.Itoa(len(router.Sent(timeline.Owner))),
			strconv.Itoa(timeline.Len()),
			formatTypes(timeline.CountByType()),
		})
	}
	inbox, sent := router.Inbox(domain.Broadcast), router.Sent(domain.Broadcast)
	if len(inbox) > 0 || len(sent) > 0 {
		participants.Append([]string{domain.Broadcast.String(), strconv.Itoa(len(inbox)), strconv.Itoa(len(sent)), "-", "-"})
	}
	participants.Render()

	printHeader(w, "Counters", cfg)
	counters := newTable(w, []string{"Counter", "Value"})
	counters.AppendBulk([][]string{
		{"received", formatCount(stats.Received)},
		{"sent", formatCount(stats.Sent)},
		{"delivered", formatCount(stats.Delivered)},
		{"parse errors", formatCount(stats.ParseErrors)},
		{"schema errors", formatCount(stats.SchemaErrors)},
		{"format errors", formatCount(stats.FormatErrors)},
		{"handler failures", formatCount(stats.HandlerFailures)},
	})
	counters.Render()

	if !cfg.ShowFailures || len(stats.RecentFailures) == 0 {
		return
	}
	printHeader(w, "Recent failures", cfg)
	failures := newTable(w, []string{"Stage", "Participant", "Error", "Payload"})
	failures.AppendBulk(lo.Map(stats.RecentFailures, func(info observability.FailureInfo, _ int) []string {
		return []string{info.Stage, info.Participant, info.Error, info.Payload}
	}))
	failures.Render()
}

func printHeader(w io.Writer, title string, cfg DisplayConfig) {
	header := fmt.Sprintf("  ====== %s ======", title)
	if cfg.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	_, _ = fmt.Fprintln(w, header)
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

// formatTypes renders counts as "BalanceProof:2 FeeInfo:1", sorted by type.
func formatTypes(counts map[domain.MessageType]int) string {
	if len(counts) == 0 {
		return "-"
	}
	types := lo.Keys(counts)
	slices.Sort(types)
	return strings.Join(lo.Map(types, func(t domain.MessageType, _ int) string {
		return fmt.Sprintf("%s:%d", t, counts[t])
	}), " ")
}

func formatCount(n uint64) string {
	return strconv.FormatUint(n, 10)
}
