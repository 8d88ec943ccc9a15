// Package version exposes build metadata (semantic version, commit, build
// time) injected via ldflags, and a helper that attaches a `version`
// subcommand to every showboard binary. The updater parses this output to
// detect the locally installed release.
package version
