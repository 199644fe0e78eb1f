package report

import (
	"bufio"
	"fmt"
	"io"
)

// WriteSummary writes the human-readable counts followed by each version,
// newest first, with its member artifacts.
func WriteSummary(r *Report, w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s Artifacts Summary\n", r.Title)
	fmt.Fprintf(bw, "Generated: %s\n", r.Generated.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(bw, "Total artifacts: %d\n", len(r.Versions))
	fmt.Fprintf(bw, "Unique versions: %d\n\n", len(r.Groups))

	for _, v := range r.Groups.SortedVersions() {
		ids := r.Groups[v]
		fmt.Fprintf(bw, "\nVersion %s (%d artifacts):\n", v, len(ids))
		for _, id := range ids {
			fmt.Fprintf(bw, "  - %s\n", id)
		}
	}
	return bw.Flush()
}
