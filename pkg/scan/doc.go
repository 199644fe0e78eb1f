// Package scan drives one mvnversions run: list the artifacts of a
// namespace, resolve each artifact's latest release, and group the results.
//
// # Run States
//
// A [Runner] moves strictly forward through three states:
//
//  1. [StateListing]: one call to the [Lister]. An empty listing ends the
//     run with an errors.ErrCodeNoArtifacts error.
//  2. [StateResolving]: one [Resolver] call per artifact, in sorted order,
//     separated by a fixed pause ([Runner.Delay]). The pause exists only to
//     spare the remote server; it never grows or shrinks.
//  3. [StateReporting]: [GroupByVersion] derives the [VersionGroups]. If no
//     artifact resolved, the run ends with an errors.ErrCodeNoVersions error.
//
// # Data
//
// [VersionMap] holds only successful resolutions. [VersionGroups] is always
// derived from a VersionMap and never edited on its own, so every artifact
// in one appears in the other with the same version.
package scan
