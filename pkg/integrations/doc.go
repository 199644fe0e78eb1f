// Package integrations provides the shared HTTP layer for package index scrapers.
//
// # Overview
//
// Each index has its own subpackage:
//
//   - [mvnrepository]: artifact listing and version pages on mvnrepository.com
//
// # Client Pattern
//
// Index clients embed [Client], which applies default headers (notably a
// browser-like User-Agent, since some indexes reject unidentified clients),
// maps HTTP status codes to [ErrNotFound] and [ErrNetwork], and returns parsed
// HTML documents:
//
//	c := integrations.NewClient(10*time.Second, integrations.UserAgentHeader(ua))
//	doc, err := c.GetDocument(ctx, "https://mvnrepository.com/artifact/junit")
//
// Requests are never retried and responses are never cached. Every request
// is reported to [observability.HTTP] hooks.
//
// [mvnrepository]: github.com/matzehuels/mvnversions/pkg/integrations/mvnrepository
// [observability.HTTP]: github.com/matzehuels/mvnversions/pkg/observability.HTTP
package integrations
