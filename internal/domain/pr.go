package domain

import (
	"fmt"
	"time"
)

// Status is the pull request lifecycle classification.
type Status string

const (
	StatusDraft  Status = "DRAFT"
	StatusOpen   Status = "OPEN"
	StatusMerged Status = "MERGED"
	StatusClosed Status = "CLOSED"
)

// MergeStatus is the merge readiness classification. Only meaningful for
// open pull requests.
type MergeStatus string

const (
	MergeClean   MergeStatus = "CLEAN"      // can be merged
	MergeAuto    MergeStatus = "AUTO_MERGE" // will be merged automatically
	MergeUnknown MergeStatus = "UNKNOWN"
)

// PR is a normalized pull request snapshot. Immutable once constructed;
// everything is derived from a single API fetch.
type PR struct {
	Title  string
	Author string

	State          string
	Draft          bool
	Merged         bool
	MergeableState string
	AutoMerge      bool

	Owner             string
	Repo              string
	BaseRef           string
	BaseDefaultBranch string
	Number            int
	HTMLURL           string

	UpdatedAt time.Time // UTC

	// Individual reviewer logins first, then requested teams as "org/slug",
	// both in source order.
	RequestedReviewers []string

	Commits      int
	ChangedFiles int
	Additions    int
	Deletions    int
}

// Status derives the lifecycle classification from state/draft/merged.
// An unrecognised state is an upstream contract break and is never defaulted.
func (p PR) Status() (Status, error) {
	switch p.State {
	case "open":
		if p.Draft {
			return StatusDraft, nil
		}
		return StatusOpen, nil
	case "closed":
		if p.Merged {
			return StatusMerged, nil
		}
		return StatusClosed, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnrecognizedState, p.State)
}

// MergeStatus derives merge readiness. The mergeable_state value set is
// externally versioned and can grow, so anything outside the known set fails
// rather than collapsing into UNKNOWN.
func (p PR) MergeStatus() (MergeStatus, error) {
	if p.MergeableState == "clean" {
		return MergeClean, nil
	}
	if p.AutoMerge {
		return MergeAuto, nil
	}
	switch p.MergeableState {
	case "behind", "blocked", "dirty", "unknown", "unstable":
		return MergeUnknown, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnrecognizedMergeState, p.MergeableState)
}

// Ref returns the short reference, e.g. "acme/widgets#42".
func (p PR) Ref() string {
	return fmt.Sprintf("%s/%s#%d", p.Owner, p.Repo, p.Number)
}

// LocalUpdatedAt returns the update time in the local zone, for display.
// The canonical stored value stays UTC.
func (p PR) LocalUpdatedAt() time.Time {
	return p.UpdatedAt.Local()
}
