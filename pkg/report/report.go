package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/matzehuels/mvnversions/pkg/errors"
	"github.com/matzehuels/mvnversions/pkg/scan"
)

// TimestampFormat names all files of one run.
const TimestampFormat = "20060102-150405"

// Run identifies one invocation by its start time.
type Run struct {
	Started time.Time
}

// NewRun starts a run at now, truncated to the second.
func NewRun(now time.Time) Run {
	return Run{Started: now.Truncate(time.Second)}
}

// Timestamp returns the compact form embedded in file names.
func (r Run) Timestamp() string {
	return r.Started.Format(TimestampFormat)
}

// Report is the data rendered by every format.
type Report struct {
	Generated time.Time
	Title     string // display name, e.g. "JavaParser"
	GroupID   string // Maven groupId of every dependency record
	Versions  scan.VersionMap
	Groups    scan.VersionGroups
}

// New builds a Report from a finished scan. Groups are re-derived from
// versions so the two always agree.
func New(title, groupID string, versions scan.VersionMap, generated time.Time) *Report {
	return &Report{
		Generated: generated,
		Title:     title,
		GroupID:   groupID,
		Versions:  versions,
		Groups:    scan.GroupByVersion(versions),
	}
}

// Files holds the paths of one run's outputs.
type Files struct {
	JSON     string
	Manifest string
	CSV      string
	Summary  string
}

// All returns the paths in write order.
func (f Files) All() []string {
	return []string{f.JSON, f.Manifest, f.CSV, f.Summary}
}

// Filenames returns the output paths for prefix and run inside dir.
func Filenames(dir, prefix string, run Run) Files {
	ts := run.Timestamp()
	return Files{
		JSON:     filepath.Join(dir, fmt.Sprintf("%s-all-versions-%s.json", prefix, ts)),
		Manifest: filepath.Join(dir, fmt.Sprintf("%s-all-dependencies-%s.xml", prefix, ts)),
		CSV:      filepath.Join(dir, fmt.Sprintf("%s-versions-%s.csv", prefix, ts)),
		Summary:  filepath.Join(dir, fmt.Sprintf("%s-summary-%s.txt", prefix, ts)),
	}
}

// Emit writes all four files into dir, creating it if needed. Files written
// before a failure are left in place.
func Emit(dir, prefix string, run Run, r *Report) (Files, error) {
	files := Filenames(dir, prefix, run)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return files, errors.Wrap(errors.ErrCodeIO, err, "create %s", dir)
	}

	writers := []struct {
		path  string
		write func(*Report, io.Writer) error
	}{
		{files.JSON, WriteJSON},
		{files.Manifest, WriteManifest},
		{files.CSV, WriteCSV},
		{files.Summary, WriteSummary},
	}
	for _, w := range writers {
		if err := writeFile(w.path, r, w.write); err != nil {
			return files, err
		}
	}
	return files, nil
}

func writeFile(path string, r *Report, write func(*Report, io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create %s", path)
	}
	if err := write(r, f); err != nil {
		f.Close()
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "close %s", path)
	}
	return nil
}
