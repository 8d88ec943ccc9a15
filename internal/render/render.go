// Package render turns schedule snapshots into terminal tables for the
// operator and watch binaries.
package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	domain "github.com/stagecrew/showboard/internal/domain/schedule"
	pb "github.com/stagecrew/showboard/internal/pb/v1"
)

// Snapshot renders the full board state: a status line followed by the act
// table.
func Snapshot(snapshot *pb.ScheduleSnapshot) string {
	if snapshot == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(statusLine(snapshot))
	b.WriteString("\n")
	b.WriteString(actTable(snapshot))
	b.WriteString("\n")

	return b.String()
}

// Brightness renders a one-line brightness report.
func Brightness(nits int64) string {
	return fmt.Sprintf("Brightness: %d nits", nits)
}

// statusLine summarizes stage, slip and break in one row.
func statusLine(snapshot *pb.ScheduleSnapshot) string {
	slip := "on schedule"
	if snapshot.GetSlipSeconds() > 0 {
		slip = "running +" + domain.FormatDuration(int(snapshot.GetSlipSeconds())) + " behind"
	}

	line := fmt.Sprintf("Stage: %s | %s", snapshot.GetStageName(), slip)

	if snapshot.GetHasBreak() {
		remaining := int(snapshot.GetBreakRemainingSeconds())
		if remaining >= 0 {
			line += fmt.Sprintf(" | Break: %s left", domain.FormatDuration(remaining))
		} else {
			line += fmt.Sprintf(" | Break: %s over", domain.FormatDuration(-remaining))
		}
	}

	return line
}

// actTable renders one row per act with projected times and variance.
func actTable(snapshot *pb.ScheduleSnapshot) string {
	projections := make(map[string]*pb.ActProjection, len(snapshot.GetProjections()))
	for _, projection := range snapshot.GetProjections() {
		projections[projection.GetActName()] = projection
	}

	tw := table.NewWriter()
	tw.SetStyle(tableStyle())
	tw.AppendHeader(table.Row{"Act", "Scheduled", "Actual", "Projected", "Status", "Variance", "Notes"})

	for _, act := range snapshot.GetActs() {
		projected := ""
		if projection := projections[act.GetName()]; projection != nil {
			projected = timeRange(projection.GetProjectedStart(), projection.GetProjectedEnd())
		}

		tw.AppendRow(table.Row{
			act.GetName(),
			timeRange(act.GetScheduledStart(), act.GetScheduledEnd()),
			timeRange(act.GetActualStart(), act.GetActualEnd()),
			projected,
			act.GetStatus(),
			variance(act),
			act.GetNotes(),
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 6, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}

// tableStyle picks box drawing for terminals and plain ASCII for pipes.
func tableStyle() table.Style {
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return table.StyleRounded
	}

	return table.StyleDefault
}

// timeRange joins two clock strings, tolerating absent values.
func timeRange(start, end string) string {
	switch {
	case start == "" && end == "":
		return ""
	case end == "":
		return start + " - ?"
	case start == "":
		return "? - " + end
	default:
		return start + " - " + end
	}
}

// variance reports the end variance for completed acts and the start variance
// for in-progress acts. Wire times are produced by the server, so parse
// failures only happen against incompatible peers and render as blank.
func variance(act *pb.Act) string {
	switch act.GetStatus() {
	case string(domain.StatusComplete):
		scheduled, err1 := domain.ParseTimeOfDay(act.GetScheduledEnd())
		actual, err2 := domain.ParseTimeOfDay(act.GetActualEnd())

		if err1 != nil || err2 != nil {
			return ""
		}

		return domain.FormatVariance(domain.DiffSeconds(actual, scheduled), true)
	case string(domain.StatusInProgress):
		scheduled, err1 := domain.ParseTimeOfDay(act.GetScheduledStart())
		actual, err2 := domain.ParseTimeOfDay(act.GetActualStart())

		if err1 != nil || err2 != nil {
			return ""
		}

		return domain.FormatVariance(domain.DiffSeconds(actual, scheduled), true)
	default:
		return ""
	}
}
