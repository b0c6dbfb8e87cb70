// Package specfile rewrites the version metadata of RPM spec documents.
//
// A spec document carries a "%global gitrev <hash>" directive whose value is
// referenced throughout the file (source URLs, setup macros). Stamping
// replaces that value with a concrete revision and, for numbered CI builds,
// rewrites the Release field to a sortable snapshot string. The document is
// otherwise treated as opaque text; this is deliberately not a spec parser.
package specfile

import (
	"os"
	"regexp"
	"strings"

	"go.rpmci.dev/rpmci/internal/core/domain"
	"go.trai.ch/zerr"
)

var (
	// gitrevRe matches the placeholder directive line. The value must be a
	// 7+ character alphanumeric token, i.e. an abbreviated git hash.
	gitrevRe = regexp.MustCompile(`(?m)^%global\s+gitrev\s+([0-9a-zA-Z]{7,})\s*$`)

	// releaseRe matches a plain numeric Release field with an optional
	// trailing dist macro, e.g. "Release: 5%{?dist}".
	releaseRe = regexp.MustCompile(`(?m)^(Release:[ \t]*)(\d+)(%\{[^}]*\})?[ \t]*$`)
)

// Stamp rewrites the spec document at path in place.
//
// Every occurrence of the gitrev placeholder's current value is replaced with
// stamp.RevisionID, so references outside the directive line stay consistent.
// For stamp.BuildNumber > 0 the Release field is rewritten to the snapshot
// form "99.<n>.<date>git<rev>", preserving any dist macro verbatim. A zero
// build number leaves Release untouched.
//
// A document without a gitrev directive fails with domain.ErrPatternMismatch
// and is not modified: building from a spec with a stale revision must never
// happen silently.
func Stamp(path string, stamp domain.RevisionStamp) error {
	info, err := os.Stat(path)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.Fail(domain.ErrSpecNotFound, err), "failed to stat spec document"), "path", path)
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by the caller
	if err != nil {
		return zerr.With(zerr.Wrap(domain.Fail(domain.ErrSpecNotFound, err), "failed to read spec document"), "path", path)
	}

	text := string(data)

	match := gitrevRe.FindStringSubmatch(text)
	if match == nil {
		return zerr.With(zerr.Wrap(domain.ErrPatternMismatch, "document has no gitrev line"), "path", path)
	}
	placeholder := match[1]

	text = strings.ReplaceAll(text, placeholder, stamp.RevisionID)

	if stamp.BuildNumber != 0 {
		text = releaseRe.ReplaceAllString(text, "${1}"+stamp.SnapshotRelease()+"${3}")
	}

	if text == string(data) {
		// Already stamped with the same revision and date.
		return nil
	}

	if err := os.WriteFile(path, []byte(text), info.Mode().Perm()); err != nil {
		return zerr.With(zerr.Wrap(domain.Fail(domain.ErrSpecNotFound, err), "failed to write spec document"), "path", path)
	}

	return nil
}
