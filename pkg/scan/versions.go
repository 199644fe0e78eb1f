package scan

import (
	"sort"

	"github.com/Masterminds/semver/v3"
)

// VersionMap maps artifact ids to their resolved release version.
// Artifacts without a version are absent, never stored as "".
type VersionMap map[string]string

// VersionGroups maps a version to the sorted artifact ids released at it.
type VersionGroups map[string][]string

// SortedArtifacts returns the artifact ids in ascending order.
func (m VersionMap) SortedArtifacts() []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// GroupByVersion derives the version grouping of m. Members are sorted.
func GroupByVersion(m VersionMap) VersionGroups {
	groups := make(VersionGroups)
	for _, id := range m.SortedArtifacts() {
		v := m[id]
		groups[v] = append(groups[v], id)
	}
	return groups
}

// SortedVersions returns the versions newest first.
//
// Versions that parse as semantic versions are ordered by precedence and
// come before those that don't; the rest fall back to reverse lexical order.
func (g VersionGroups) SortedVersions() []string {
	versions := make([]string, 0, len(g))
	for v := range g {
		versions = append(versions, v)
	}
	SortVersionsDesc(versions)
	return versions
}

// SortVersionsDesc sorts versions in place, newest first.
func SortVersionsDesc(versions []string) {
	parsed := make(map[string]*semver.Version, len(versions))
	for _, v := range versions {
		if sv, err := semver.NewVersion(v); err == nil {
			parsed[v] = sv
		}
	}

	sort.SliceStable(versions, func(i, j int) bool {
		a, b := versions[i], versions[j]
		sa, sb := parsed[a], parsed[b]
		switch {
		case sa != nil && sb != nil:
			if c := sa.Compare(sb); c != 0 {
				return c > 0
			}
			return a > b
		case sa != nil:
			return true
		case sb != nil:
			return false
		default:
			return a > b
		}
	})
}
