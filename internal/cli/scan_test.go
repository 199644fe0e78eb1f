package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/mvnversions/pkg/errors"
	"github.com/matzehuels/mvnversions/pkg/observability"
)

var fixedNow = time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)

const twoArtifactIndex = `<html><body>
<a href="/artifact/com.github.javaparser/generator"><div class="im"></div></a>
<a href="/artifact/com.github.javaparser/core"><div class="im"></div></a>
</body></html>`

const releasePage = `<html><body><a class="vbtn release">3.25.4</a></body></html>`

func newSite(t *testing.T, pages map[string]string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page, ok := pages[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(page))
	}))
	t.Cleanup(server.Close)
	return server
}

func writeConfig(t *testing.T, baseURL, outDir string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mvnversions.toml")
	content := fmt.Sprintf("base_url = %q\noutput_dir = %q\ndelay = \"0s\"\n", baseURL, outDir)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// execute runs the root command with args and returns the console output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	oldOut, oldNow := stdout, now
	stdout, now = &out, func() time.Time { return fixedNow }
	t.Cleanup(func() { stdout, now = oldOut, oldNow })
	t.Cleanup(observability.Reset)

	root := New(io.Discard, LogInfo).RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestScan_Success(t *testing.T) {
	site := newSite(t, map[string]string{
		"/artifact/com.github.javaparser":           twoArtifactIndex,
		"/artifact/com.github.javaparser/core":      releasePage,
		"/artifact/com.github.javaparser/generator": releasePage,
	})
	outDir := filepath.Join(t.TempDir(), "out")

	out, err := execute(t, "--config", writeConfig(t, site.URL, outDir))
	if err != nil {
		t.Fatalf("execute() error = %v\n%s", err, out)
	}

	for _, want := range []string{
		"Found 2 JavaParser artifacts",
		"[1/2] Checking core...",
		"[2/2] Checking generator...",
		"Version 3.25.4",
		"2 artifacts",
		"<artifactId>core</artifactId>",
		"JSON report: " + filepath.Join(outDir, "javaparser-all-versions-20261019-093000.json"),
		"XML dependencies: " + filepath.Join(outDir, "javaparser-all-dependencies-20261019-093000.xml"),
		"CSV report: " + filepath.Join(outDir, "javaparser-versions-20261019-093000.csv"),
		"Summary report: " + filepath.Join(outDir, "javaparser-summary-20261019-093000.txt"),
		"Complete! Checked 2 artifacts, found 2 with versions",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "<artifactId>core</artifactId>") > strings.Index(out, "<artifactId>generator</artifactId>") {
		t.Error("manifest records not sorted by artifact id")
	}

	entries, err := os.ReadDir(outDir)
	if err != nil {
		t.Fatalf("read output dir: %v", err)
	}
	want := map[string]bool{
		"javaparser-all-versions-20261019-093000.json":    true,
		"javaparser-all-dependencies-20261019-093000.xml": true,
		"javaparser-versions-20261019-093000.csv":         true,
		"javaparser-summary-20261019-093000.txt":          true,
	}
	if len(entries) != len(want) {
		t.Fatalf("output dir has %d files, want %d", len(entries), len(want))
	}
	for _, e := range entries {
		if !want[e.Name()] {
			t.Errorf("unexpected file %s", e.Name())
		}
	}

	csvData, err := os.ReadFile(filepath.Join(outDir, "javaparser-versions-20261019-093000.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if got := string(csvData); got != "artifact,version\ncore,3.25.4\ngenerator,3.25.4\n" {
		t.Errorf("csv = %q", got)
	}
}

func TestScan_OutputDirFlag(t *testing.T) {
	site := newSite(t, map[string]string{
		"/artifact/com.github.javaparser":           twoArtifactIndex,
		"/artifact/com.github.javaparser/core":      releasePage,
		"/artifact/com.github.javaparser/generator": `<html></html>`,
	})
	configDir := filepath.Join(t.TempDir(), "from-config")
	flagDir := filepath.Join(t.TempDir(), "from-flag")

	out, err := execute(t, "-c", writeConfig(t, site.URL, configDir), "-o", flagDir)
	if err != nil {
		t.Fatalf("execute() error = %v\n%s", err, out)
	}
	if !strings.Contains(out, "No stable version found") {
		t.Errorf("output missing not-found marker:\n%s", out)
	}
	if _, err := os.Stat(configDir); !os.IsNotExist(err) {
		t.Errorf("config output_dir used despite --output-dir (stat err %v)", err)
	}
	if entries, _ := os.ReadDir(flagDir); len(entries) != 4 {
		t.Errorf("--output-dir has %d files, want 4", len(entries))
	}
}

func TestScan_NoArtifacts(t *testing.T) {
	site := newSite(t, map[string]string{
		"/artifact/com.github.javaparser": `<html><body>empty</body></html>`,
	})
	outDir := filepath.Join(t.TempDir(), "out")

	out, err := execute(t, "--config", writeConfig(t, site.URL, outDir))
	if !errors.Is(err, errors.ErrCodeNoArtifacts) {
		t.Fatalf("execute() error = %v, want %s", err, errors.ErrCodeNoArtifacts)
	}
	if !strings.Contains(out, "Could not find any JavaParser artifacts!") {
		t.Errorf("output missing discovery failure:\n%s", out)
	}
	if _, err := os.Stat(outDir); !os.IsNotExist(err) {
		t.Error("files written after discovery failure")
	}
}

func TestScan_IndexUnreachable(t *testing.T) {
	site := newSite(t, nil)
	outDir := filepath.Join(t.TempDir(), "out")

	_, err := execute(t, "--config", writeConfig(t, site.URL, outDir))
	if !errors.Is(err, errors.ErrCodeNoArtifacts) {
		t.Fatalf("execute() error = %v, want %s", err, errors.ErrCodeNoArtifacts)
	}
}

func TestScan_NoVersions(t *testing.T) {
	site := newSite(t, map[string]string{
		"/artifact/com.github.javaparser": `<a href="/artifact/com.github.javaparser/x"><div class="im"></div></a>`,
	})
	outDir := filepath.Join(t.TempDir(), "out")

	out, err := execute(t, "--config", writeConfig(t, site.URL, outDir))
	if !errors.Is(err, errors.ErrCodeNoVersions) {
		t.Fatalf("execute() error = %v, want %s", err, errors.ErrCodeNoVersions)
	}
	if !strings.Contains(out, "No versions found!") {
		t.Errorf("output missing total failure:\n%s", out)
	}
	if _, err := os.Stat(outDir); !os.IsNotExist(err) {
		t.Error("files written after total resolution failure")
	}
}

func TestScan_InvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte(`namespace = "not a group"`), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := execute(t, "--config", path)
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("execute() error = %v, want %s", err, errors.ErrCodeInvalidConfig)
	}
}
