package domain

import (
	"fmt"
	"time"

	"go.trai.ch/zerr"
)

// dateLayout is the compact date form embedded in snapshot release strings.
const dateLayout = "20060102"

// RevisionStamp holds the version metadata stamped into a spec document
// before a snapshot build. It is constructed immediately before a build and
// consumed once; it is never persisted.
type RevisionStamp struct {
	// RevisionID is the revision identifier, e.g. an abbreviated git hash.
	RevisionID string
	// BuildNumber is the CI build counter. Zero means "no snapshot release":
	// the Release field of the spec document is left untouched.
	BuildNumber int
	// DateStamp is the YYYYMMDD day the stamp was created.
	DateStamp string
}

// NewRevisionStamp validates the caller-supplied identifiers and captures
// the current date.
func NewRevisionStamp(revisionID string, buildNumber int) (RevisionStamp, error) {
	if !isAlnum(revisionID) {
		return RevisionStamp{}, zerr.With(zerr.Wrap(ErrInvalidStamp, "revision is not alphanumeric"), "revision", revisionID)
	}
	if buildNumber < 0 {
		return RevisionStamp{}, zerr.With(zerr.Wrap(ErrInvalidStamp, "build number is negative"), "build_number", buildNumber)
	}
	return RevisionStamp{
		RevisionID:  revisionID,
		BuildNumber: buildNumber,
		DateStamp:   time.Now().UTC().Format(dateLayout),
	}, nil
}

// SnapshotRelease returns the snapshot-style release value for this stamp,
// e.g. "99.42.20260831gitabc1234". The leading 99 sorts the snapshot above
// any regular release of the same version.
func (s RevisionStamp) SnapshotRelease() string {
	return fmt.Sprintf("99.%d.%sgit%s", s.BuildNumber, s.DateStamp, s.RevisionID)
}

func isAlnum(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		default:
			return false
		}
	}
	return true
}
