package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/matzehuels/mvnversions/pkg/scan"
)

type jsonReport struct {
	Generated      time.Time          `json:"generated"`
	ArtifactsCount int                `json:"artifacts_count"`
	Versions       scan.VersionMap    `json:"versions"`
	VersionGroups  scan.VersionGroups `json:"version_groups"`
}

// WriteJSON encodes the full run metadata with two-space indentation.
func WriteJSON(r *Report, w io.Writer) error {
	out := jsonReport{
		Generated:      r.Generated,
		ArtifactsCount: len(r.Versions),
		Versions:       r.Versions,
		VersionGroups:  r.Groups,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
