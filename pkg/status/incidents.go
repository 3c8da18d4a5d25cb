package status

import (
	"bytes"
	"fmt"
	"html/template"
	"sort"
	"time"

	"github.com/yuin/goldmark"

	"statuspage/pkg/github"
)

// Incident is a user-facing record of a past or ongoing disruption, derived
// from an issue authored by a collaborator.
type Incident struct {
	CreatedAt time.Time
	Title     string
	Systems   []string // affected system names, ascending
	Severity  string   // empty for closed issues without a severity label
	Closed    bool
	Body      template.HTML
	Updates   []IncidentUpdate
}

// IncidentUpdate is a collaborator comment on an incident, in comment order.
type IncidentUpdate struct {
	CreatedAt time.Time
	Body      template.HTML
}

// CommentLister fetches the comments of one issue. The collector takes a
// function rather than a client so it can run against in-memory fixtures.
type CommentLister func(issueNumber int) ([]github.Comment, error)

// RenderMarkdown converts Markdown to HTML for incident bodies and updates.
func RenderMarkdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// CollectIncidents builds the incident feed from the issue set, newest first
// (ties keep fetch order).
//
// An issue produces no incident when it affects no system, when it is open
// without a severity label, or when its author is not a collaborator. Closed
// issues are kept regardless of severity. Comments by non-collaborators are
// dropped from the updates.
func CollectIncidents(issues []github.Issue, collaborators []string, systemColor string, statusLabels map[string]string, listComments CommentLister) ([]Incident, error) {
	trusted := make(map[string]bool, len(collaborators))
	for _, login := range collaborators {
		trusted[login] = true
	}

	var incidents []Incident
	for _, issue := range issues {
		affected := SystemNames(issue.Labels, systemColor)
		sort.Strings(affected)
		severity := Severity(issue.Labels, statusLabels)

		if len(affected) == 0 || (severity == "" && issue.IsOpen()) {
			continue
		}
		if !trusted[issue.Author] {
			continue
		}

		body, err := RenderMarkdown(issue.Body)
		if err != nil {
			return nil, fmt.Errorf("issue #%d: %w", issue.Number, err)
		}

		incident := Incident{
			CreatedAt: issue.CreatedAt,
			Title:     issue.Title,
			Systems:   affected,
			Severity:  severity,
			Closed:    !issue.IsOpen(),
			Body:      body,
		}

		comments, err := listComments(issue.Number)
		if err != nil {
			return nil, err
		}
		for _, comment := range comments {
			if !trusted[comment.Author] {
				continue
			}
			update, err := RenderMarkdown(comment.Body)
			if err != nil {
				return nil, fmt.Errorf("issue #%d comment: %w", issue.Number, err)
			}
			incident.Updates = append(incident.Updates, IncidentUpdate{
				CreatedAt: comment.CreatedAt,
				Body:      update,
			})
		}

		incidents = append(incidents, incident)
	}

	sort.SliceStable(incidents, func(i, j int) bool {
		return incidents[i].CreatedAt.After(incidents[j].CreatedAt)
	})

	return incidents, nil
}
