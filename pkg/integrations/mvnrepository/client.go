package mvnrepository

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	mverrors "github.com/matzehuels/mvnversions/pkg/errors"
	"github.com/matzehuels/mvnversions/pkg/integrations"
)

// ErrNoVersion is returned when an artifact page was fetched but none of the
// extraction strategies found a version string.
var ErrNoVersion = errors.New("no stable version found")

// Client scrapes one Maven group (namespace) on mvnrepository.com.
//
// Each method issues exactly one GET request. Nothing is retried or cached.
type Client struct {
	*integrations.Client
	baseURL   string
	namespace string
	logger    *log.Logger
}

// NewClient creates a client for namespace on the index rooted at baseURL.
//
// userAgent is sent with every request; the index rejects requests without a
// browser-like agent. A nil logger selects [log.Default].
//
// Returns an error if namespace is not a valid groupId or baseURL is not
// an http(s) URL.
func NewClient(baseURL, namespace, userAgent string, timeout time.Duration, logger *log.Logger) (*Client, error) {
	if err := mverrors.ValidateGroupID(namespace); err != nil {
		return nil, err
	}
	if err := mverrors.ValidateURL(baseURL); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Client{
		Client:    integrations.NewClient(timeout, integrations.UserAgentHeader(userAgent)),
		baseURL:   strings.TrimRight(baseURL, "/"),
		namespace: namespace,
		logger:    logger,
	}, nil
}

// Namespace returns the groupId this client scans.
func (c *Client) Namespace() string { return c.namespace }

// IndexURL returns the namespace index page listing every artifact.
// Example: "https://mvnrepository.com/artifact/com.github.javaparser"
func (c *Client) IndexURL() string {
	return c.baseURL + "/artifact/" + c.namespace
}

// ArtifactURL returns the detail page for one artifact.
// Example: "https://mvnrepository.com/artifact/com.github.javaparser/javaparser-core"
func (c *Client) ArtifactURL(artifactID string) string {
	return c.IndexURL() + "/" + artifactID
}
