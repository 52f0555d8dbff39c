package render

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"ghnotifs/internal/domain"
	"ghnotifs/internal/theme"
)

// ConsoleFormatter renders notifications as ANSI-styled terminal text.
type ConsoleFormatter struct {
	now func() time.Time
}

// NewConsoleFormatter creates a console formatter. A nil clock defaults to
// time.Now; tests inject a fixed one.
func NewConsoleFormatter(now func() time.Time) *ConsoleFormatter {
	if now == nil {
		now = time.Now
	}
	return &ConsoleFormatter{now: now}
}

// Format renders all notifications, one multi-line block each, separated by
// blank lines.
func (f *ConsoleFormatter) Format(notifications []domain.Notification) (string, error) {
	blocks := make([]string, 0, len(notifications))
	for _, notification := range notifications {
		block, err := f.formatNotification(notification)
		if err != nil {
			return "", err
		}
		blocks = append(blocks, block)
	}
	return strings.Join(blocks, "\n"), nil
}

func (f *ConsoleFormatter) formatNotification(n domain.Notification) (string, error) {
	status, err := n.PR.Status()
	if err != nil {
		return "", err
	}

	marker := ""
	titleStyle := theme.TitleStyle
	switch status {
	case domain.StatusOpen:
		mergeStatus, err := n.PR.MergeStatus()
		if err != nil {
			return "", err
		}
		switch mergeStatus {
		case domain.MergeClean:
			marker = theme.CheckStyle.Render("✓") + " "
		case domain.MergeAuto:
			marker = "⏩"
		}
	case domain.StatusDraft:
		titleStyle = theme.DraftTitleStyle
	case domain.StatusMerged:
		marker = theme.MergedMarkerStyle.Render("[M]")
	case domain.StatusClosed:
		marker = theme.ClosedMarkerStyle.Render("[C]")
	}

	baseRef := ""
	if n.PR.BaseRef != n.PR.BaseDefaultBranch {
		baseRef = " " + n.PR.BaseRef
	}

	author := n.PR.Author
	if n.PR.Author == n.User.Login {
		author = theme.SelfStyle.Render(n.PR.Author)
	}

	var reviewers []string
	others := 0
	for _, r := range classifyReviewers(n) {
		switch r.Class {
		case reviewerSelf:
			reviewers = append(reviewers, theme.SelfStyle.Render(r.ID))
		case reviewerTeam:
			reviewers = append(reviewers, r.Slug)
		case reviewerOther:
			others++
		}
	}
	if others > 0 {
		reviewers = append(reviewers, fmt.Sprintf("%d others", others))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s (%s)\n", marker, titleStyle.Render(n.PR.Title), n.PR.Ref())
	fmt.Fprintf(&b, "    by %s -- updated %s -- (%d commits, %d files) [%s %s]%s\n",
		author,
		humanize.RelTime(n.PR.UpdatedAt, f.now(), "ago", "from now"),
		n.PR.Commits,
		n.PR.ChangedFiles,
		theme.AdditionsStyle.Render("+"+strconv.Itoa(n.PR.Additions)),
		theme.DeletionsStyle.Render("-"+strconv.Itoa(n.PR.Deletions)),
		baseRef,
	)
	fmt.Fprintf(&b, "    %s\n", theme.MutedStyle.Render(strings.Join(reviewers, ", ")))
	fmt.Fprintf(&b, "    %s\n", theme.MutedStyle.Render(n.URL()))
	return b.String(), nil
}
