package mvnrepository

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"

	mverrors "github.com/matzehuels/mvnversions/pkg/errors"
)

// FetchArtifacts loads the namespace index page and returns the artifact ids
// it links to, deduplicated and sorted.
func (c *Client) FetchArtifacts(ctx context.Context) ([]string, error) {
	doc, err := c.GetDocument(ctx, c.IndexURL())
	if err != nil {
		return nil, fmt.Errorf("list artifacts of %s: %w", c.namespace, err)
	}
	return ExtractArtifacts(doc, c.namespace), nil
}

// ListArtifacts is the soft-failing form of [Client.FetchArtifacts]: any
// error is logged and reported as an empty result.
func (c *Client) ListArtifacts(ctx context.Context) []string {
	ids, err := c.FetchArtifacts(ctx)
	if err != nil {
		c.logger.Error("Fetching artifact list failed", "namespace", c.namespace, "code", mverrors.GetCode(err), "err", err)
		return nil
	}
	return ids
}

// ExtractArtifacts pulls artifact ids for namespace out of an index page.
//
// Marker elements (div.im) are tried first: the enclosing link's final path
// segment is the id. Only when that finds nothing are plain links matching
// /artifact/<namespace>/<id> scanned. Ids are returned once each, sorted.
func ExtractArtifacts(doc *goquery.Document, namespace string) []string {
	seen := make(map[string]bool)
	add := func(id string) {
		if id != "" && !strings.HasPrefix(id, "?") {
			seen[id] = true
		}
	}

	prefix := "/artifact/" + namespace + "/"
	doc.Find("div.im").Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Closest("a").Attr("href")
		if ok && strings.Contains(href, prefix) {
			add(lastSegment(href))
		}
	})

	if len(seen) == 0 {
		pattern := artifactLinkPattern(namespace)
		doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
			href, _ := s.Attr("href")
			if pattern.MatchString(href) {
				add(lastSegment(href))
			}
		})
	}

	ids := make([]string, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func artifactLinkPattern(namespace string) *regexp.Regexp {
	return regexp.MustCompile(`/artifact/` + regexp.QuoteMeta(namespace) + `/[^/]+$`)
}

func lastSegment(href string) string {
	return href[strings.LastIndex(href, "/")+1:]
}
