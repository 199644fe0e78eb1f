// Package pkg provides the libraries behind mvnversions, a checker that lists
// every artifact a Maven group publishes on mvnrepository.com and resolves the
// latest stable release of each.
//
// # Overview
//
// The pkg directory is organized by concern:
//
//  1. [integrations] - shared HTTP client and the [integrations/mvnrepository] scraper
//  2. [scan] - the scan runner (listing, resolving, grouping)
//  3. [report] - JSON, Maven manifest, CSV and summary output
//  4. [config], [errors], [observability], [buildinfo] - supporting infrastructure
//
// # Architecture
//
// A scan flows strictly forward:
//
//	mvnrepository.com group index
//	         ↓
//	    [integrations/mvnrepository] ListArtifacts
//	         ↓
//	    [scan] Runner (one paced ResolveVersion per artifact)
//	         ↓
//	    [report] Emit (four timestamped files)
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/mvnversions/pkg/integrations/mvnrepository"
//	    "github.com/matzehuels/mvnversions/pkg/report"
//	    "github.com/matzehuels/mvnversions/pkg/scan"
//	)
//
//	client, _ := mvnrepository.NewClient("https://mvnrepository.com",
//	    "com.github.javaparser", ua, 10*time.Second, logger)
//	res, err := scan.NewRunner(client.Namespace(), client, client, logger).Run(ctx)
//	if err != nil {
//	    return err
//	}
//	r := report.New("JavaParser", client.Namespace(), res.Versions, time.Now())
//	files, err := report.Emit(".", "javaparser", report.NewRun(time.Now()), r)
//
// [integrations]: https://pkg.go.dev/github.com/matzehuels/mvnversions/pkg/integrations
// [integrations/mvnrepository]: https://pkg.go.dev/github.com/matzehuels/mvnversions/pkg/integrations/mvnrepository
// [scan]: https://pkg.go.dev/github.com/matzehuels/mvnversions/pkg/scan
// [report]: https://pkg.go.dev/github.com/matzehuels/mvnversions/pkg/report
// [config]: https://pkg.go.dev/github.com/matzehuels/mvnversions/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/mvnversions/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/mvnversions/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/mvnversions/pkg/buildinfo
package pkg
