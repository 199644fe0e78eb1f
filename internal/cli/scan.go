package cli

import (
	"context"
	"time"

	"github.com/matzehuels/mvnversions/pkg/buildinfo"
	"github.com/matzehuels/mvnversions/pkg/config"
	"github.com/matzehuels/mvnversions/pkg/errors"
	"github.com/matzehuels/mvnversions/pkg/integrations/mvnrepository"
	"github.com/matzehuels/mvnversions/pkg/report"
	"github.com/matzehuels/mvnversions/pkg/scan"
)

// now is replaced in tests to pin the run timestamp.
var now = time.Now

// fileLabels matches the order of report.Files.All.
var fileLabels = []string{"JSON report", "XML dependencies", "CSV report", "Summary report"}

// runScan performs one complete run: list, resolve, print, write files.
// Early aborts print a failure line and return a coded error so main exits
// non-zero.
func runScan(ctx context.Context, opts scanOpts) error {
	logger := loggerFromContext(ctx)
	registerHooks(logger)

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.outputDir != "" {
		cfg.OutputDir = opts.outputDir
	}
	logger.Debug("Loaded config", "config", cfg.String(), "build", buildinfo.Get().String())

	client, err := mvnrepository.NewClient(cfg.BaseURL, cfg.Namespace, cfg.UserAgent, cfg.Timeout, logger)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "create client")
	}

	run := report.NewRun(now())
	prog := newProgress(logger)

	printTitle(cfg.Title + " Complete Version Checker")
	printNewline()
	printInfo("Fetching all %s artifacts from %s", cfg.Title, client.IndexURL())

	runner := scan.NewRunner(cfg.Namespace, client, client, logger)
	runner.Delay = cfg.Delay
	runner.OnListed = func(artifacts []string) {
		printSuccess("Found %d %s artifacts", len(artifacts), cfg.Title)
		printNewline()
	}
	runner.OnCheck = func(e scan.Event) {
		printCheck(e.Index, e.Total, e.Artifact)
	}
	runner.OnResult = func(e scan.Event) {
		if e.Found {
			printFound(e.Version)
		} else {
			printNotFound()
		}
	}

	res, err := runner.Run(ctx)
	if err != nil {
		switch errors.GetCode(err) {
		case errors.ErrCodeNoArtifacts:
			printError("Could not find any %s artifacts!", cfg.Title)
		case errors.ErrCodeNoVersions:
			printNewline()
			printTitle("Version Summary")
			printError("No versions found!")
		}
		return err
	}

	rep := report.New(cfg.Title, cfg.Namespace, res.Versions, now())
	printSummary(rep)

	manifest, err := report.Manifest(rep)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "render manifest")
	}
	printNewline()
	printTitle("Complete Maven Dependencies XML")
	printBlock(manifest)

	files, err := report.Emit(cfg.OutputDir, cfg.FilePrefix, run, rep)
	if err != nil {
		return err
	}
	printNewline()
	for i, path := range files.All() {
		printFile(fileLabels[i], path)
	}

	printNewline()
	printSuccess("Complete! Checked %d artifacts, found %d with versions", len(res.Listed), len(res.Versions))
	prog.done("Scan finished")
	return nil
}

func printSummary(rep *report.Report) {
	printNewline()
	printTitle("Version Summary")
	printNewline()
	printInfo("Found %d different versions:", len(rep.Groups))
	printNewline()
	for _, v := range rep.Groups.SortedVersions() {
		printVersionGroup(v, rep.Groups[v])
	}
}
