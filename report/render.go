package report

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Render writes two tables to w: one row per recoverable failure, and one
// row per routed stack, followed by a totals line. Grounded on
// sarchlab-zeonica's core.PrintState table-construction pattern
// (table.NewWriter / AppendHeader / AppendRow / Render).
func (s *Summary) Render(w io.Writer) {
	failTable := table.NewWriter()
	failTable.SetOutputMirror(w)
	failTable.SetTitle("GCell Failures")
	failTable.AppendHeader(table.Row{"GCell X", "GCell Y", "Net", "Cause"})
	for _, f := range s.Failures {
		failTable.AppendRow(table.Row{f.GCellX, f.GCellY, f.Net, f.Cause})
	}
	failTable.AppendFooter(table.Row{"", "", "Total", len(s.Failures)})
	failTable.Render()

	stackTable := table.NewWriter()
	stackTable.SetOutputMirror(w)
	stackTable.SetTitle("Stack Routing Results")
	stackTable.AppendHeader(table.Row{"GCell X", "GCell Y", "Bottom", "Top", "Routed", "Unrouted", "Verifier Score", "Perfect"})
	var totalRouted, totalUnrouted int
	for _, r := range s.Stacks {
		stackTable.AppendRow(table.Row{r.GCellX, r.GCellY, r.Bottom, r.Top, r.NetsRouted, r.NetsUnrouted, r.VerifierScore, r.Perfect})
		totalRouted += r.NetsRouted
		totalUnrouted += r.NetsUnrouted
	}
	stackTable.AppendFooter(table.Row{"", "", "", "Total", totalRouted, totalUnrouted, "", ""})
	stackTable.Render()
}
