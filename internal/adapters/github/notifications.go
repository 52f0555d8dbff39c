package github

import (
	"context"
	"encoding/json"
	"fmt"

	"ghnotifs/internal/domain"
	"ghnotifs/internal/logging"
	"ghnotifs/internal/ports"
)

// PullRequestNotifications lists the viewer's unread notifications and keeps
// only those whose subject is a pull request, in upstream order.
func (c *Client) PullRequestNotifications(ctx context.Context) ([]ports.NotificationItem, error) {
	data, err := c.apiPaginate(ctx, "notifications")
	if err != nil {
		return nil, err
	}

	items, err := parseNotifications(data)
	if err != nil {
		return nil, err
	}

	logging.Logger.Debug("Listed notifications", "pull_requests", len(items))
	return items, nil
}

func parseNotifications(data []byte) ([]ports.NotificationItem, error) {
	var payload []struct {
		ID      *string `json:"id"`
		Subject *struct {
			Type *string `json:"type"`
			URL  *string `json:"url"`
		} `json:"subject"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("parse notifications payload: %w", err)
	}

	var items []ports.NotificationItem
	for _, entry := range payload {
		if entry.ID == nil {
			return nil, fmt.Errorf("%w: id", domain.ErrMissingField)
		}
		if entry.Subject == nil || entry.Subject.Type == nil {
			return nil, fmt.Errorf("%w: subject.type", domain.ErrMissingField)
		}
		if *entry.Subject.Type != "PullRequest" {
			continue
		}
		if entry.Subject.URL == nil {
			return nil, fmt.Errorf("%w: subject.url", domain.ErrMissingField)
		}
		items = append(items, ports.NotificationItem{
			ID:         *entry.ID,
			SubjectURL: *entry.Subject.URL,
		})
	}
	return items, nil
}
