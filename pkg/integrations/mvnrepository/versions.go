package mvnrepository

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	mverrors "github.com/matzehuels/mvnversions/pkg/errors"
)

// versionPattern accepts text starting with digits.digits.digits; trailing
// qualifiers such as "-jre" are allowed.
var versionPattern = regexp.MustCompile(`^\d+\.\d+\.\d+`)

// extractor is one attempt at finding a version on an artifact page.
type extractor func(doc *goquery.Document) (string, bool)

// extractors run in order; the first match wins. Artifacts with a release
// history carry version buttons (a.vbtn), single-release artifacts only a
// version number link (a.vnum).
var extractors = []extractor{
	releaseButton,
	firstButton,
	versionNumber,
}

// FetchLatestVersion loads the artifact page and returns its latest stable
// release version. Returns [ErrNoVersion] if the page carries none.
func (c *Client) FetchLatestVersion(ctx context.Context, artifactID string) (string, error) {
	if err := mverrors.ValidateArtifactID(artifactID); err != nil {
		return "", err
	}
	doc, err := c.GetDocument(ctx, c.ArtifactURL(artifactID))
	if err != nil {
		return "", fmt.Errorf("fetch %s:%s: %w", c.namespace, artifactID, err)
	}
	v, ok := ExtractVersion(doc)
	if !ok {
		return "", fmt.Errorf("%w: %s:%s", ErrNoVersion, c.namespace, artifactID)
	}
	return v, nil
}

// ResolveVersion is the soft-failing form of [Client.FetchLatestVersion]:
// every failure is logged at debug level and reported as ok=false.
func (c *Client) ResolveVersion(ctx context.Context, artifactID string) (string, bool) {
	v, err := c.FetchLatestVersion(ctx, artifactID)
	if err != nil {
		c.logger.Debug("Version lookup failed", "artifact", artifactID, "code", mverrors.GetCode(err), "err", err)
		return "", false
	}
	return v, true
}

// ExtractVersion applies the extraction strategies to an artifact page in
// order and returns the first version found.
func ExtractVersion(doc *goquery.Document) (string, bool) {
	for _, extract := range extractors {
		if v, ok := extract(doc); ok {
			return v, true
		}
	}
	return "", false
}

// IsVersion reports whether text starts with a digits.digits.digits version.
func IsVersion(text string) bool {
	return versionPattern.MatchString(text)
}

func releaseButton(doc *goquery.Document) (string, bool) {
	var version string
	doc.Find("a.vbtn.release").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if text := strings.TrimSpace(s.Text()); IsVersion(text) {
			version = text
			return false
		}
		return true
	})
	return version, version != ""
}

func firstButton(doc *goquery.Document) (string, bool) {
	return matchText(doc.Find("a.vbtn").First())
}

func versionNumber(doc *goquery.Document) (string, bool) {
	return matchText(doc.Find("a.vnum").First())
}

func matchText(s *goquery.Selection) (string, bool) {
	if s.Length() == 0 {
		return "", false
	}
	text := strings.TrimSpace(s.Text())
	return text, IsVersion(text)
}
