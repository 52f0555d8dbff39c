package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"ghnotifs/internal/domain"
	"ghnotifs/internal/logging"
	"ghnotifs/internal/ports"
)

// NotificationService fetches the viewer's pending pull request review
// notifications and builds the normalized notification list.
type NotificationService struct {
	github     ports.GitHubClient
	extraTeams []string
}

// NewNotificationService creates a NotificationService. extraTeams holds
// configured org-qualified team slugs merged into the fetched identity.
func NewNotificationService(github ports.GitHubClient, extraTeams []string) *NotificationService {
	return &NotificationService{
		github:     github,
		extraTeams: extraTeams,
	}
}

// FetchAll resolves the viewer, lists unread pull request notifications, and
// fetches each referenced pull request concurrently. Results keep the order
// of the notification list regardless of fetch completion order. Any single
// failure aborts the whole batch.
func (s *NotificationService) FetchAll(ctx context.Context) (domain.User, []domain.Notification, error) {
	user, err := s.github.Viewer(ctx)
	if err != nil {
		return domain.User{}, nil, err
	}
	user = user.WithTeams(s.extraTeams)

	items, err := s.github.PullRequestNotifications(ctx)
	if err != nil {
		return domain.User{}, nil, err
	}

	logging.Logger.Debug("Fetching pull requests", "count", len(items))

	notifications := make([]domain.Notification, len(items))
	g, ctx := errgroup.WithContext(ctx)
	for i, item := range items {
		g.Go(func() error {
			pr, err := s.github.PullRequest(ctx, item.SubjectURL)
			if err != nil {
				return err
			}
			notifications[i] = domain.NewNotification(item.ID, user, pr)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.User{}, nil, err
	}

	return user, notifications, nil
}
