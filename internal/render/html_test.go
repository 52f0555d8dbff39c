package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ghnotifs/internal/domain"
)

func TestHTMLFormat_Page(t *testing.T) {
	pr := testPR()
	pr.RequestedReviewers = []string{"alice", "acme/platform", "dave"}
	formatter := NewHTMLFormatter(fixedClock)

	out, err := formatter.Format([]domain.Notification{testNotification(pr)})

	require.NoError(t, err)
	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, "1 unread notifications")
	assert.Contains(t, out, "bi-check-circle-fill")
	assert.Contains(t, out, "acme/widgets#42")
	assert.Contains(t, out, "3 hours ago")
	assert.Contains(t, out, "?notification_referrer_id=NT_")
	// Viewer highlighted, own team labelled by slug with the full id in the
	// tooltip, remaining reviewer aggregated.
	assert.Contains(t, out, `list-group-item-warning">alice`)
	assert.Contains(t, out, `title="acme/platform">platform`)
	assert.Contains(t, out, "1 others")
	// Auto-refresh timer.
	assert.Contains(t, out, "setInterval(reload, 12000)")
}

func TestHTMLFormat_MergedStyling(t *testing.T) {
	pr := testPR()
	pr.State = "closed"
	pr.Merged = true
	formatter := NewHTMLFormatter(fixedClock)

	out, err := formatter.Format([]domain.Notification{testNotification(pr)})

	require.NoError(t, err)
	assert.Contains(t, out, "bi-sign-merge-right")
	assert.Contains(t, out, "background-color: #c5b3e6;")
}

func TestHTMLFormat_DraftAndClosedClasses(t *testing.T) {
	draft := testPR()
	draft.Draft = true
	closed := testPR()
	closed.State = "closed"
	formatter := NewHTMLFormatter(fixedClock)

	out, err := formatter.Format([]domain.Notification{
		testNotification(draft),
		testNotification(closed),
	})

	require.NoError(t, err)
	assert.Contains(t, out, "2 unread notifications")
	assert.Contains(t, out, "list-group-item-light")
	assert.Contains(t, out, "list-group-item-danger")
	assert.Contains(t, out, "bi-pencil")
	assert.Contains(t, out, "bi-x-circle")
}

func TestHTMLFormat_SelfAuthorIcon(t *testing.T) {
	pr := testPR()
	pr.Author = "alice"
	formatter := NewHTMLFormatter(fixedClock)

	out, err := formatter.Format([]domain.Notification{testNotification(pr)})

	require.NoError(t, err)
	assert.Contains(t, out, "bi-person-circle")
}

func TestHTMLFormat_EscapesTitle(t *testing.T) {
	pr := testPR()
	pr.Title = `<script>alert("x")</script>`
	formatter := NewHTMLFormatter(fixedClock)

	out, err := formatter.Format([]domain.Notification{testNotification(pr)})

	require.NoError(t, err)
	assert.NotContains(t, out, `<script>alert`)
	assert.Contains(t, out, "&lt;script&gt;")
}

func TestHTMLFormat_TargetBranch(t *testing.T) {
	pr := testPR()
	pr.BaseRef = "release-1.9"
	formatter := NewHTMLFormatter(fixedClock)

	out, err := formatter.Format([]domain.Notification{testNotification(pr)})

	require.NoError(t, err)
	assert.Contains(t, out, "into <i class=\"bi bi-git\"></i> release-1.9")
}

func TestHTMLFormat_UnrecognizedMergeStateFails(t *testing.T) {
	pr := testPR()
	pr.MergeableState = "foo"
	formatter := NewHTMLFormatter(fixedClock)

	_, err := formatter.Format([]domain.Notification{testNotification(pr)})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnrecognizedMergeState)
}
