package ports

import (
	"context"

	"ghnotifs/internal/domain"
)

// NotificationItem is one entry from the unread notification list, already
// filtered down to pull request subjects.
type NotificationItem struct {
	ID         string
	SubjectURL string
}

// ViewerFetcher resolves the viewer identity and team memberships.
type ViewerFetcher interface {
	Viewer(ctx context.Context) (domain.User, error)
}

// NotificationLister returns the unread pull request notifications.
type NotificationLister interface {
	PullRequestNotifications(ctx context.Context) ([]NotificationItem, error)
}

// PullRequestFetcher fetches and normalizes a single pull request payload.
type PullRequestFetcher interface {
	PullRequest(ctx context.Context, url string) (domain.PR, error)
}

// GitHubClient is the full external collaborator contract.
type GitHubClient interface {
	ViewerFetcher
	NotificationLister
	PullRequestFetcher
}
