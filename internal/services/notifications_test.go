package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ghnotifs/internal/domain"
	"ghnotifs/internal/ports"
)

// fakeGitHub implements ports.GitHubClient in memory. Per-URL delays let
// tests force completion in reverse order.
type fakeGitHub struct {
	user   domain.User
	items  []ports.NotificationItem
	prs    map[string]domain.PR
	delays map[string]time.Duration
	prErr  map[string]error
}

func (f *fakeGitHub) Viewer(ctx context.Context) (domain.User, error) {
	return f.user, nil
}

func (f *fakeGitHub) PullRequestNotifications(ctx context.Context) ([]ports.NotificationItem, error) {
	return f.items, nil
}

func (f *fakeGitHub) PullRequest(ctx context.Context, url string) (domain.PR, error) {
	if d, ok := f.delays[url]; ok {
		time.Sleep(d)
	}
	if err, ok := f.prErr[url]; ok {
		return domain.PR{}, err
	}
	pr, ok := f.prs[url]
	if !ok {
		return domain.PR{}, fmt.Errorf("no such pull request: %s", url)
	}
	return pr, nil
}

func newFakeGitHub(count int) *fakeGitHub {
	f := &fakeGitHub{
		user:   domain.NewUser("456", "alice", []string{"acme/platform"}),
		prs:    make(map[string]domain.PR),
		delays: make(map[string]time.Duration),
		prErr:  make(map[string]error),
	}
	for i := 0; i < count; i++ {
		url := fmt.Sprintf("https://api.github.com/repos/acme/widgets/pulls/%d", i)
		f.items = append(f.items, ports.NotificationItem{
			ID:         fmt.Sprintf("notif-%d", i),
			SubjectURL: url,
		})
		f.prs[url] = domain.PR{Title: fmt.Sprintf("PR %d", i), Number: i}
	}
	return f
}

func TestFetchAll_PreservesNotificationOrder(t *testing.T) {
	fake := newFakeGitHub(5)
	// Make earlier fetches finish last.
	for i, item := range fake.items {
		fake.delays[item.SubjectURL] = time.Duration(len(fake.items)-i) * 20 * time.Millisecond
	}

	service := NewNotificationService(fake, nil)
	_, notifications, err := service.FetchAll(context.Background())

	require.NoError(t, err)
	require.Len(t, notifications, 5)
	for i, notif := range notifications {
		assert.Equal(t, fmt.Sprintf("notif-%d", i), notif.ID)
		assert.Equal(t, i, notif.PR.Number)
	}
}

func TestFetchAll_SingleFailureAbortsBatch(t *testing.T) {
	fake := newFakeGitHub(3)
	wantErr := errors.New("boom")
	fake.prErr[fake.items[1].SubjectURL] = wantErr

	service := NewNotificationService(fake, nil)
	_, notifications, err := service.FetchAll(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, wantErr)
	assert.Nil(t, notifications)
}

func TestFetchAll_MergesExtraTeams(t *testing.T) {
	fake := newFakeGitHub(1)

	service := NewNotificationService(fake, []string{"acme/frontend"})
	user, notifications, err := service.FetchAll(context.Background())

	require.NoError(t, err)
	assert.True(t, user.InTeam("acme/platform"))
	assert.True(t, user.InTeam("acme/frontend"))
	require.Len(t, notifications, 1)
	assert.True(t, notifications[0].User.InTeam("acme/frontend"))
}

func TestFetchAll_EmptyList(t *testing.T) {
	fake := newFakeGitHub(0)

	service := NewNotificationService(fake, nil)
	_, notifications, err := service.FetchAll(context.Background())

	require.NoError(t, err)
	assert.Empty(t, notifications)
}
