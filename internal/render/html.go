package render

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"ghnotifs/internal/domain"
)

// HTMLFormatter renders notifications as a self-contained Bootstrap page
// with a client-side auto-refresh timer, suitable as a live dashboard.
type HTMLFormatter struct {
	now func() time.Time
}

// NewHTMLFormatter creates an HTML formatter. A nil clock defaults to
// time.Now.
func NewHTMLFormatter(now func() time.Time) *HTMLFormatter {
	if now == nil {
		now = time.Now
	}
	return &HTMLFormatter{now: now}
}

// Status icon fragments. Fixed literals, injected as trusted HTML.
const (
	iconClean = `<i class="bi bi-check-circle-fill text-success fs-3 p-2" style="float: right;" title="has been approved"></i>`
	iconAuto  = `<i class="bi bi-fast-forward-circle fs-3 p-2" style="float: right; color: #6f42c1;" title="auto-merge enabled"></i>`

	iconDraft  = `<i class="bi bi-pencil text-secondary fs-3 p-2" style="float: right;" title="draft"></i>`
	iconClosed = `<i class="bi bi-x-circle text-danger fs-3 p-2" style="float: right;" title="closed"></i>`
	iconMerged = `<i class="bi bi-sign-merge-right fs-3 p-2" style="float: right; color: #6f42c1;" title="merged"></i>`

	iconAuthor = `<i class="bi bi-person-circle text-warning fs-3 p-2" style="float: right;" title="i am the author"></i>`
)

type reviewerView struct {
	Class string
	Title string
	Label string
}

type notificationView struct {
	LiClass      string
	LiStyle      template.CSS
	UpdatedAt    string
	RelativeTime string
	URL          string
	Ref          string
	Author       string
	TargetBranch string
	Title        string
	Icons        []template.HTML
	Additions    int
	Deletions    int
	Commits      int
	Files        int
	Reviewers    []reviewerView
}

type pageView struct {
	Count int
	Items []notificationView
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
  <head>
    <meta charset="utf-8"/>
    <title>GitHub PR notifications</title>

    <link href="https://cdn.jsdelivr.net/npm/bootstrap@5.2.3/dist/css/bootstrap.min.css" rel="stylesheet" integrity="sha384-rbsA2VBKQhggwzxH7pPCaAqO46MgnOM80zW1RWuH61DGLwZJEdK2Kadq2F9CUG65" crossorigin="anonymous">
    <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/bootstrap-icons@1.10.3/font/bootstrap-icons.css">
  </head>
  <body class="bg-dark">
    <div class="container my-2 lh-1">
      <span class="badge bg-secondary">{{.Count}} unread notifications</span>
      <ul class="list-group">
{{- range .Items}}
        <li class="list-group-item {{.LiClass}}" style="{{.LiStyle}}">
          <p class="mb-1">
            <small class="lh-2">
              <span style="float: right;" title="{{.UpdatedAt}}">{{.RelativeTime}}</span>
              <a href="{{.URL}}" target="_blank">{{.Ref}}</a>
              by {{.Author}}
              <br/>
              {{if .TargetBranch}}<span class="text-secondary">into <i class="bi bi-git"></i> {{.TargetBranch}}</span>{{end}}
            </small>
          </p>
          <h5 class="mb-1">{{.Title}}</h5>
          <div>
            <p class="mb-1">
              {{range .Icons}}{{.}}{{end}}
              <span class="text-success">+{{.Additions}}</span>
              <span class="text-danger">&minus;{{.Deletions}}</span>
              in {{.Commits}} commits, {{.Files}} files.
            </p>
            <small>
              <ul class="list-group list-group-horizontal">
                {{range .Reviewers}}<li class="{{.Class}}"{{if .Title}} title="{{.Title}}"{{end}}>{{.Label}}</li>{{end}}
              </ul>
            </small>
          </div>
        </li>
{{- end}}
      </ul>
    </div>

    <script>
      function reload() {
        location.reload();
      }
      setInterval(reload, 12000); // refresh every 12s
    </script>
  </body>
</html>
`))

// Format renders the full dashboard page.
func (f *HTMLFormatter) Format(notifications []domain.Notification) (string, error) {
	page := pageView{Count: len(notifications)}
	for _, notification := range notifications {
		item, err := f.buildView(notification)
		if err != nil {
			return "", err
		}
		page.Items = append(page.Items, item)
	}

	var b strings.Builder
	if err := pageTemplate.Execute(&b, page); err != nil {
		return "", fmt.Errorf("render dashboard: %w", err)
	}
	return b.String(), nil
}

func (f *HTMLFormatter) buildView(n domain.Notification) (notificationView, error) {
	status, err := n.PR.Status()
	if err != nil {
		return notificationView{}, err
	}

	view := notificationView{
		UpdatedAt:    n.PR.LocalUpdatedAt().Format("2006-01-02 15:04:05"),
		RelativeTime: humanize.RelTime(n.PR.UpdatedAt, f.now(), "ago", "from now"),
		URL:          n.URL(),
		Ref:          n.PR.Ref(),
		Author:       n.PR.Author,
		Title:        n.PR.Title,
		Additions:    n.PR.Additions,
		Deletions:    n.PR.Deletions,
		Commits:      n.PR.Commits,
		Files:        n.PR.ChangedFiles,
	}

	if n.PR.BaseRef != n.PR.BaseDefaultBranch {
		view.TargetBranch = n.PR.BaseRef
	}

	switch status {
	case domain.StatusOpen:
		mergeStatus, err := n.PR.MergeStatus()
		if err != nil {
			return notificationView{}, err
		}
		switch mergeStatus {
		case domain.MergeClean:
			view.Icons = append(view.Icons, iconClean)
		case domain.MergeAuto:
			view.Icons = append(view.Icons, iconAuto)
		}
	case domain.StatusDraft:
		view.LiClass = "list-group-item-light"
		view.Icons = append(view.Icons, iconDraft)
	case domain.StatusMerged:
		view.LiStyle = "color: #2c1a4d; background-color: #c5b3e6;"
		view.Icons = append(view.Icons, iconMerged)
	case domain.StatusClosed:
		view.LiClass = "list-group-item-danger"
		view.Icons = append(view.Icons, iconClosed)
	}

	if n.PR.Author == n.User.Login {
		view.Icons = append(view.Icons, iconAuthor)
	}

	var otherSlugs []string
	for _, r := range classifyReviewers(n) {
		switch r.Class {
		case reviewerSelf:
			view.Reviewers = append(view.Reviewers, reviewerView{
				Class: "list-group-item list-group-item-warning",
				Label: r.ID,
			})
		case reviewerTeam:
			// Org prefix stays visible in the tooltip.
			view.Reviewers = append(view.Reviewers, reviewerView{
				Class: "list-group-item",
				Title: r.ID,
				Label: r.Slug,
			})
		case reviewerOther:
			otherSlugs = append(otherSlugs, r.Slug)
		}
	}
	if len(otherSlugs) > 0 {
		view.Reviewers = append(view.Reviewers, reviewerView{
			Class: "list-group-item list-group-item-light",
			Title: strings.Join(otherSlugs, ", "),
			Label: fmt.Sprintf("%d others", len(otherSlugs)),
		})
	}

	return view, nil
}
