package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ghnotifs/internal/domain"
)

// PullRequest fetches and normalizes one pull request payload. The URL comes
// from the notification's subject reference.
func (c *Client) PullRequest(ctx context.Context, url string) (domain.PR, error) {
	data, err := c.api(ctx, url)
	if err != nil {
		return domain.PR{}, err
	}
	return parsePR(data)
}

// prPayload mirrors the upstream pull request JSON. Leaves are pointers so a
// missing field is distinguishable from a zero value; the payload is trusted
// to be well formed, and any absence is a contract violation.
type prPayload struct {
	Title *string `json:"title"`
	User  struct {
		Login *string `json:"login"`
	} `json:"user"`

	State          *string         `json:"state"`
	Draft          *bool           `json:"draft"`
	Merged         *bool           `json:"merged"`
	MergeableState *string         `json:"mergeable_state"`
	AutoMerge      json.RawMessage `json:"auto_merge"` // object or null

	Base struct {
		Ref  *string `json:"ref"`
		Repo struct {
			Name          *string `json:"name"`
			DefaultBranch *string `json:"default_branch"`
			Owner         struct {
				Login *string `json:"login"`
			} `json:"owner"`
		} `json:"repo"`
	} `json:"base"`

	Number    *int    `json:"number"`
	HTMLURL   *string `json:"html_url"`
	UpdatedAt *string `json:"updated_at"`

	RequestedReviewers *[]struct {
		Login *string `json:"login"`
	} `json:"requested_reviewers"`
	RequestedTeams *[]struct {
		Slug *string `json:"slug"`
	} `json:"requested_teams"`

	Commits      *int `json:"commits"`
	ChangedFiles *int `json:"changed_files"`
	Additions    *int `json:"additions"`
	Deletions    *int `json:"deletions"`
}

func parsePR(data []byte) (domain.PR, error) {
	var payload prPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return domain.PR{}, fmt.Errorf("parse pull request payload: %w", err)
	}

	f := &fieldReader{}
	owner := f.str(payload.Base.Repo.Owner.Login, "base.repo.owner.login")

	pr := domain.PR{
		Title:  f.str(payload.Title, "title"),
		Author: f.str(payload.User.Login, "user.login"),

		State:          f.str(payload.State, "state"),
		Draft:          f.boolean(payload.Draft, "draft"),
		Merged:         f.boolean(payload.Merged, "merged"),
		MergeableState: f.str(payload.MergeableState, "mergeable_state"),
		AutoMerge:      f.autoMerge(payload.AutoMerge),

		Owner:             owner,
		Repo:              f.str(payload.Base.Repo.Name, "base.repo.name"),
		BaseRef:           f.str(payload.Base.Ref, "base.ref"),
		BaseDefaultBranch: f.str(payload.Base.Repo.DefaultBranch, "base.repo.default_branch"),
		Number:            f.integer(payload.Number, "number"),
		HTMLURL:           f.str(payload.HTMLURL, "html_url"),

		Commits:      f.integer(payload.Commits, "commits"),
		ChangedFiles: f.integer(payload.ChangedFiles, "changed_files"),
		Additions:    f.integer(payload.Additions, "additions"),
		Deletions:    f.integer(payload.Deletions, "deletions"),
	}

	// Individual reviewers first, then teams as "org/slug", source order.
	if payload.RequestedReviewers == nil {
		f.missing("requested_reviewers")
	} else {
		for i, reviewer := range *payload.RequestedReviewers {
			pr.RequestedReviewers = append(pr.RequestedReviewers,
				f.str(reviewer.Login, fmt.Sprintf("requested_reviewers[%d].login", i)))
		}
	}
	if payload.RequestedTeams == nil {
		f.missing("requested_teams")
	} else {
		for i, team := range *payload.RequestedTeams {
			slug := f.str(team.Slug, fmt.Sprintf("requested_teams[%d].slug", i))
			pr.RequestedReviewers = append(pr.RequestedReviewers, owner+"/"+slug)
		}
	}

	updatedAt := f.str(payload.UpdatedAt, "updated_at")
	if f.err != nil {
		return domain.PR{}, f.err
	}

	parsed, err := time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return domain.PR{}, fmt.Errorf("parse updated_at %q: %w", updatedAt, err)
	}
	pr.UpdatedAt = parsed.UTC()

	return pr, nil
}

// fieldReader unwraps payload pointers and records the first missing field.
type fieldReader struct {
	err error
}

func (f *fieldReader) missing(name string) {
	if f.err == nil {
		f.err = fmt.Errorf("%w: %s", domain.ErrMissingField, name)
	}
}

func (f *fieldReader) str(p *string, name string) string {
	if p == nil {
		f.missing(name)
		return ""
	}
	return *p
}

func (f *fieldReader) boolean(p *bool, name string) bool {
	if p == nil {
		f.missing(name)
		return false
	}
	return *p
}

func (f *fieldReader) integer(p *int, name string) int {
	if p == nil {
		f.missing(name)
		return 0
	}
	return *p
}

// autoMerge interprets the auto_merge field, which is an object when
// auto-merge is enabled and null otherwise. Absence is a contract violation.
func (f *fieldReader) autoMerge(raw json.RawMessage) bool {
	if raw == nil {
		f.missing("auto_merge")
		return false
	}
	return !bytes.Equal(raw, []byte("null")) && !bytes.Equal(raw, []byte("false"))
}
