package view

import (
	"fmt"
	"io"
	"text/tabwriter"

	"terrain_alert/platform/sanitize"
)

const rule = "─────────────────────────────────"

// WriteText renders the modal for a terminal.
func WriteText(w io.Writer, m Modal) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "\n🌤️  Weather Info\n%s\n", rule)
	fmt.Fprintf(tw, "Location:\t%s\n", sanitize.Text(m.Location))
	fmt.Fprintf(tw, "Date & Time:\t%s\n", m.Timestamp)
	for _, metric := range m.Metrics {
		fmt.Fprintf(tw, "%s:\t%s\n", metric.Label, metric.Display())
	}

	fmt.Fprintf(tw, "\n📊  Risk Prediction\n%s\n", rule)
	fmt.Fprintf(tw, "%s\n", sanitize.Text(m.Risk))
	if m.HasNote() {
		fmt.Fprintf(tw, "_%s_\n", sanitize.Text(m.Note))
	}

	return tw.Flush()
}
