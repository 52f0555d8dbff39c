package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ghnotifs/internal/domain"
)

func fixedClock() time.Time {
	return time.Date(2025, 3, 14, 12, 26, 53, 0, time.UTC)
}

func testPR() domain.PR {
	return domain.PR{
		Title:              "Add frobnicator",
		Author:             "bob",
		State:              "open",
		MergeableState:     "clean",
		Owner:              "acme",
		Repo:               "widgets",
		BaseRef:            "main",
		BaseDefaultBranch:  "main",
		Number:             42,
		HTMLURL:            "https://github.com/acme/widgets/pull/42",
		UpdatedAt:          time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC),
		RequestedReviewers: []string{"alice", "carol"},
		Commits:            3,
		ChangedFiles:       5,
		Additions:          120,
		Deletions:          14,
	}
}

func testNotification(pr domain.PR) domain.Notification {
	user := domain.NewUser("456", "alice", []string{"acme/platform"})
	return domain.NewNotification("123", user, pr)
}

func TestConsoleFormat_OpenCleanPR(t *testing.T) {
	// Open non-draft PR, clean, base == default branch, authored by someone
	// else, two requested reviewers with the viewer among them.
	pr := testPR()
	pr.RequestedReviewers = []string{"alice", "acme/platform"}
	notif := testNotification(pr)
	formatter := NewConsoleFormatter(fixedClock)

	out, err := formatter.Format([]domain.Notification{notif})

	require.NoError(t, err)
	assert.Contains(t, out, "✓")
	assert.Contains(t, out, "Add frobnicator")
	assert.Contains(t, out, "(acme/widgets#42)")
	assert.Contains(t, out, "by bob")
	assert.Contains(t, out, "3 hours ago")
	assert.Contains(t, out, "(3 commits, 5 files)")
	assert.Contains(t, out, "+120")
	assert.Contains(t, out, "-14")
	assert.Contains(t, out, "alice")
	assert.NotContains(t, out, "others", "both reviewers are named, nothing aggregated")
	assert.Contains(t, out, "?notification_referrer_id=NT_")
	// Base ref matches the default branch, so no annotation.
	assert.NotContains(t, out, "] main")
}

func TestConsoleFormat_BaseRefAnnotation(t *testing.T) {
	pr := testPR()
	pr.BaseRef = "release-1.9"
	formatter := NewConsoleFormatter(fixedClock)

	out, err := formatter.Format([]domain.Notification{testNotification(pr)})

	require.NoError(t, err)
	assert.Contains(t, out, " release-1.9")
}

func TestConsoleFormat_MergedPR(t *testing.T) {
	pr := testPR()
	pr.State = "closed"
	pr.Merged = true
	formatter := NewConsoleFormatter(fixedClock)

	out, err := formatter.Format([]domain.Notification{testNotification(pr)})

	require.NoError(t, err)
	assert.Contains(t, out, "[M]")
	assert.NotContains(t, out, "✓")
}

func TestConsoleFormat_ClosedPR(t *testing.T) {
	pr := testPR()
	pr.State = "closed"
	formatter := NewConsoleFormatter(fixedClock)

	out, err := formatter.Format([]domain.Notification{testNotification(pr)})

	require.NoError(t, err)
	assert.Contains(t, out, "[C]")
}

func TestConsoleFormat_AutoMerge(t *testing.T) {
	pr := testPR()
	pr.MergeableState = "blocked"
	pr.AutoMerge = true
	formatter := NewConsoleFormatter(fixedClock)

	out, err := formatter.Format([]domain.Notification{testNotification(pr)})

	require.NoError(t, err)
	assert.Contains(t, out, "⏩")
}

func TestConsoleFormat_UnrecognizedMergeStateFails(t *testing.T) {
	pr := testPR()
	pr.MergeableState = "foo"
	formatter := NewConsoleFormatter(fixedClock)

	_, err := formatter.Format([]domain.Notification{testNotification(pr)})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnrecognizedMergeState)
}

func TestConsoleFormat_DraftSkipsMergeStatus(t *testing.T) {
	// Merge status is only derived for open non-draft PRs, so an
	// unrecognised value on a draft does not fail.
	pr := testPR()
	pr.Draft = true
	pr.MergeableState = "foo"
	formatter := NewConsoleFormatter(fixedClock)

	_, err := formatter.Format([]domain.Notification{testNotification(pr)})

	require.NoError(t, err)
}

func TestConsoleFormat_ReviewerPartition(t *testing.T) {
	pr := testPR()
	pr.RequestedReviewers = []string{"dave", "alice", "acme/platform", "acme/frontend", "erin"}
	formatter := NewConsoleFormatter(fixedClock)

	out, err := formatter.Format([]domain.Notification{testNotification(pr)})

	require.NoError(t, err)
	// Viewer and own team named, org prefix stripped for the team.
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "platform")
	assert.NotContains(t, out, "acme/platform")
	// dave, acme/frontend and erin are aggregated.
	assert.Contains(t, out, "3 others")
	assert.NotContains(t, out, "dave")
	assert.NotContains(t, out, "erin")
}

func TestConsoleFormat_Idempotent(t *testing.T) {
	notifications := []domain.Notification{testNotification(testPR())}
	formatter := NewConsoleFormatter(fixedClock)

	first, err := formatter.Format(notifications)
	require.NoError(t, err)
	second, err := formatter.Format(notifications)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestConsoleFormat_Empty(t *testing.T) {
	formatter := NewConsoleFormatter(fixedClock)

	out, err := formatter.Format(nil)

	require.NoError(t, err)
	assert.Empty(t, out)
}
