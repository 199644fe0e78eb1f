// Package report renders the results of a scan.
//
// # Formats
//
// Four files are written per run, all named with the same [Run] timestamp
// so one run's outputs sort and correlate together:
//
//	<prefix>-all-versions-<ts>.json      generation time, count, versions, groups
//	<prefix>-all-dependencies-<ts>.xml   Maven <dependencies> block
//	<prefix>-versions-<ts>.csv           artifact,version rows
//	<prefix>-summary-<ts>.txt            counts and per-version breakdown
//
// Each format also has a Write* function taking an io.Writer, used by the
// CLI to print the manifest to the console.
//
// # Ordering
//
// Rows and dependency records are sorted by artifact id. Version groups are
// listed newest first (see scan.SortVersionsDesc).
package report
