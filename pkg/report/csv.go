package report

import (
	"encoding/csv"
	"io"
)

// WriteCSV writes the header "artifact,version" and one row per resolved
// artifact, sorted by artifact id.
func WriteCSV(r *Report, w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"artifact", "version"}); err != nil {
		return err
	}
	for _, id := range r.Versions.SortedArtifacts() {
		if err := cw.Write([]string{id, r.Versions[id]}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
