package replay

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// WriteTable prints one aligned row per step: index, op, size, capacity
// and the reallocations the op caused. With showValues the live elements
// are appended as a last column.
func (t *Trace) WriteTable(w io.Writer, showValues bool) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	header := "STEP\tOP\tSIZE\tCAP\tREALLOC"
	if showValues {
		header += "\tVALUES"
	}
	fmt.Fprintln(tw, header)

	for _, s := range t.Steps {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%s", s.Index, s.Op, s.Size, s.Capacity, reallocCell(s))
		if showValues {
			fmt.Fprintf(tw, "\t%v", s.Values)
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}

func reallocCell(s Step) string {
	if len(s.Reallocs) == 0 {
		return "-"
	}
	parts := make([]string, len(s.Reallocs))
	for i, e := range s.Reallocs {
		parts[i] = fmt.Sprintf("%d->%d", e.OldCapacity, e.NewCapacity)
	}

	return strings.Join(parts, ",")
}
