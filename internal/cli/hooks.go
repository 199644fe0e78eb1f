package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mvnversions/pkg/observability"
)

// logHooks forwards HTTP and scan events to the logger at debug level,
// so --verbose shows every request and state change.
type logHooks struct {
	logger *log.Logger
}

var (
	_ observability.HTTPHooks = logHooks{}
	_ observability.ScanHooks = logHooks{}
)

func (h logHooks) OnRequest(_ context.Context, method, host, path string) {
	h.logger.Debug("HTTP request", "method", method, "host", host, "path", path)
}

func (h logHooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.logger.Debug("HTTP response", "method", method, "path", path, "status", status, "duration", d.Round(time.Millisecond))
}

func (h logHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.logger.Debug("HTTP error", "method", method, "host", host, "path", path, "err", err)
}

func (h logHooks) OnStateChange(_ context.Context, from, to string) {
	h.logger.Debug("Scan state", "from", from, "to", to)
}

func (h logHooks) OnListComplete(_ context.Context, namespace string, count int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("Listing failed", "namespace", namespace, "duration", d.Round(time.Millisecond), "err", err)
		return
	}
	h.logger.Debug("Listing complete", "namespace", namespace, "count", count, "duration", d.Round(time.Millisecond))
}

func (h logHooks) OnResolve(_ context.Context, artifact, version string, found bool, d time.Duration) {
	h.logger.Debug("Resolved", "artifact", artifact, "version", version, "found", found, "duration", d.Round(time.Millisecond))
}

// registerHooks installs logHooks for the process.
func registerHooks(l *log.Logger) {
	h := logHooks{logger: l}
	observability.SetHTTPHooks(h)
	observability.SetScanHooks(h)
}
