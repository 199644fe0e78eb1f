// Package mvnrepository scrapes artifact listings and release versions from
// mvnrepository.com.
//
// # Overview
//
// mvnrepository.com has no API, so both lookups parse HTML:
//
//  1. The namespace index page (/artifact/<groupId>) lists the artifacts
//     published under a group.
//  2. Each artifact page (/artifact/<groupId>/<artifactId>) shows the
//     version history, with the current stable release highlighted.
//
// # Usage
//
//	client, err := mvnrepository.NewClient(
//	    "https://mvnrepository.com", "com.github.javaparser",
//	    userAgent, 10*time.Second, logger)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, id := range client.ListArtifacts(ctx) {
//	    if v, ok := client.ResolveVersion(ctx, id); ok {
//	        fmt.Println(id, v)
//	    }
//	}
//
// # Soft Failure
//
// [Client.ListArtifacts] and [Client.ResolveVersion] never return errors:
// failures are logged and reported as an empty list or ok=false. Use
// [Client.FetchArtifacts] and [Client.FetchLatestVersion] when the cause
// matters.
//
// # Version Extraction
//
// Page markup differs between artifacts with a release history and those
// with a single published version. [ExtractVersion] tries, in order:
//
//  1. The first release-tagged version button (a.vbtn.release)
//  2. The first version button of any kind (a.vbtn)
//  3. The version number link (a.vnum)
//
// A candidate is accepted only if its text starts with digits.digits.digits.
package mvnrepository
