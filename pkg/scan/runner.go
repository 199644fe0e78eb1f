package scan

import (
	"context"
	"sort"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/mvnversions/pkg/errors"
	"github.com/matzehuels/mvnversions/pkg/observability"
)

// DefaultDelay is the pause between two version lookups.
const DefaultDelay = 300 * time.Millisecond

// State is the stage a run is in.
type State int

const (
	StateListing State = iota
	StateResolving
	StateReporting
)

func (s State) String() string {
	switch s {
	case StateListing:
		return "listing"
	case StateResolving:
		return "resolving"
	case StateReporting:
		return "reporting"
	default:
		return "unknown"
	}
}

// Lister returns the artifact ids of a namespace. It reports failure as an
// empty result.
type Lister interface {
	ListArtifacts(ctx context.Context) []string
}

// Resolver returns the latest release version of one artifact, or ok=false.
type Resolver interface {
	ResolveVersion(ctx context.Context, artifactID string) (version string, ok bool)
}

// Event describes one artifact lookup for progress output.
type Event struct {
	Index    int    // 1-based position in the run
	Total    int    // number of listed artifacts
	Artifact string // artifact id
	Version  string // resolved version; empty unless Found
	Found    bool   // whether a version was resolved
}

// Result is everything a run produced, up to the state it stopped in.
type Result struct {
	State    State         // last state entered
	Listed   []string      // sorted artifact ids from the Lister
	Versions VersionMap    // successful resolutions only
	Groups   VersionGroups // derived from Versions; nil until reporting
}

// Runner executes a run. Lister and Resolver are required.
type Runner struct {
	Namespace string
	Lister    Lister
	Resolver  Resolver
	Delay     time.Duration
	Logger    *log.Logger

	// OnListed is called once with the sorted, non-empty listing. OnCheck is
	// called before each lookup, OnResult after it. All three may be nil.
	OnListed func(artifacts []string)
	OnCheck  func(Event)
	OnResult func(Event)

	sleep func(ctx context.Context, d time.Duration) error
}

// NewRunner creates a runner with the default delay.
// If logger is nil, log.Default() is used.
func NewRunner(namespace string, l Lister, r Resolver, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Namespace: namespace,
		Lister:    l,
		Resolver:  r,
		Delay:     DefaultDelay,
		Logger:    logger,
	}
}

// Run lists, resolves and groups. The returned Result is never nil, so
// callers can report how far a failed run got.
//
// Errors:
//   - errors.ErrCodeNoArtifacts if the listing is empty
//   - errors.ErrCodeNoVersions if no artifact resolved
//   - ctx.Err() if the context is cancelled between lookups
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	res := &Result{State: StateListing, Versions: make(VersionMap)}

	start := time.Now()
	listed := r.Lister.ListArtifacts(ctx)
	res.Listed = dedupeSorted(listed)

	var listErr error
	if len(res.Listed) == 0 {
		listErr = errors.New(errors.ErrCodeNoArtifacts, "no artifacts found under %s", r.Namespace)
	}
	observability.Scan().OnListComplete(ctx, r.Namespace, len(res.Listed), time.Since(start), listErr)
	if listErr != nil {
		return res, listErr
	}
	r.Logger.Debug("Listed artifacts", "namespace", r.Namespace, "count", len(res.Listed), "duration", time.Since(start))
	if r.OnListed != nil {
		r.OnListed(res.Listed)
	}

	r.enter(ctx, res, StateResolving)
	total := len(res.Listed)
	for i, id := range res.Listed {
		if i > 0 {
			if err := r.pause(ctx); err != nil {
				return res, err
			}
		} else if err := ctx.Err(); err != nil {
			return res, err
		}

		ev := Event{Index: i + 1, Total: total, Artifact: id}
		if r.OnCheck != nil {
			r.OnCheck(ev)
		}

		t := time.Now()
		v, ok := r.Resolver.ResolveVersion(ctx, id)
		observability.Scan().OnResolve(ctx, id, v, ok, time.Since(t))
		if ok {
			res.Versions[id] = v
			ev.Version, ev.Found = v, true
		}
		if r.OnResult != nil {
			r.OnResult(ev)
		}
	}

	r.enter(ctx, res, StateReporting)
	if len(res.Versions) == 0 {
		return res, errors.New(errors.ErrCodeNoVersions, "no versions resolved for %d artifacts under %s", total, r.Namespace)
	}
	res.Groups = GroupByVersion(res.Versions)
	r.Logger.Debug("Grouped versions", "artifacts", len(res.Versions), "versions", len(res.Groups))
	return res, nil
}

func (r *Runner) enter(ctx context.Context, res *Result, to State) {
	observability.Scan().OnStateChange(ctx, res.State.String(), to.String())
	res.State = to
}

func (r *Runner) pause(ctx context.Context) error {
	if r.sleep != nil {
		return r.sleep(ctx, r.Delay)
	}
	return sleep(ctx, r.Delay)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func dedupeSorted(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != "" && !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}
