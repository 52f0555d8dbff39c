package render

import (
	"strings"

	"ghnotifs/internal/domain"
)

// Formatter renders a batch of notifications for the viewing user embedded
// in them. Rendering is deterministic apart from relative-time strings,
// which depend on the formatter's clock.
type Formatter interface {
	Format(notifications []domain.Notification) (string, error)
}

type reviewerClass int

const (
	reviewerSelf reviewerClass = iota
	reviewerTeam
	reviewerOther
)

// reviewer is one classified entry of the requested reviewer list.
type reviewer struct {
	Class reviewerClass
	ID    string // as supplied: a login or "org/slug"
	Slug  string // trailing component, org prefix stripped
}

// classifyReviewers partitions the requested reviewer list three ways:
// the viewer themself, teams the viewer belongs to, and everyone else.
// Encounter order is preserved.
func classifyReviewers(n domain.Notification) []reviewer {
	out := make([]reviewer, 0, len(n.PR.RequestedReviewers))
	for _, requested := range n.PR.RequestedReviewers {
		switch {
		case requested == n.User.Login:
			out = append(out, reviewer{Class: reviewerSelf, ID: requested, Slug: requested})
		case n.User.InTeam(requested):
			_, slug, _ := strings.Cut(requested, "/")
			out = append(out, reviewer{Class: reviewerTeam, ID: requested, Slug: slug})
		default:
			slug := requested
			if i := strings.LastIndex(requested, "/"); i >= 0 {
				slug = requested[i+1:]
			}
			out = append(out, reviewer{Class: reviewerOther, ID: requested, Slug: slug})
		}
	}
	return out
}
