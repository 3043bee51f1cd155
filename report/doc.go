// Package report renders the end-of-run pipeline summary spec §7 calls
// for: one row per recoverable GCell failure (x, y, net, cause), plus a
// totals row and per-stack routing/verification counters.
//
// Rendering is deferred to github.com/jedib0t/go-pretty/v6/table, the
// same ASCII-table renderer wired elsewhere in the retrieval pack
// (sarchlab-zeonica's core.PrintState); this package only shapes the
// data, it does not hand-roll column alignment.
package report
