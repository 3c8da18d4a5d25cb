package status

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"statuspage/pkg/github"
)

func noComments(_ int) ([]github.Comment, error) {
	return nil, nil
}

func TestRenderMarkdown(t *testing.T) {
	html, err := RenderMarkdown("We are **investigating**.")
	require.NoError(t, err)
	assert.Contains(t, string(html), "<strong>investigating</strong>")
}

func TestCollectIncidentsFiltering(t *testing.T) {
	collaborators := []string{"admin"}

	tests := []struct {
		name     string
		issue    github.Issue
		included bool
	}{
		{
			name: "open with system and severity",
			issue: github.Issue{
				Number: 1,
				State:  "open",
				Author: "admin",
				Labels: []github.Label{systemLabel("API"), severityLabel("major outage")},
			},
			included: true,
		},
		{
			name: "open with system but no severity",
			issue: github.Issue{
				Number: 2,
				State:  "open",
				Author: "admin",
				Labels: []github.Label{systemLabel("API")},
			},
			included: false,
		},
		{
			name: "no system label",
			issue: github.Issue{
				Number: 3,
				State:  "open",
				Author: "admin",
				Labels: []github.Label{severityLabel("major outage")},
			},
			included: false,
		},
		{
			name: "closed with system but no severity",
			issue: github.Issue{
				Number: 4,
				State:  "closed",
				Author: "admin",
				Labels: []github.Label{systemLabel("API")},
			},
			included: true,
		},
		{
			name: "author is not a collaborator",
			issue: github.Issue{
				Number: 5,
				State:  "open",
				Author: "drive-by",
				Labels: []github.Label{systemLabel("API"), severityLabel("major outage")},
			},
			included: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			incidents, err := CollectIncidents([]github.Issue{tt.issue}, collaborators, testSystemColor, testStatusLabels, noComments)
			require.NoError(t, err)
			if tt.included {
				assert.Len(t, incidents, 1)
			} else {
				assert.Empty(t, incidents)
			}
		})
	}
}

func TestCollectIncidentsEndToEnd(t *testing.T) {
	issues := []github.Issue{
		{
			Number:    1,
			Title:     "API is down",
			Body:      "Looking into it.",
			State:     "open",
			Author:    "admin",
			CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
			Labels:    []github.Label{severityLabel("major outage"), systemLabel("API")},
		},
	}

	incidents, err := CollectIncidents(issues, []string{"admin"}, testSystemColor, testStatusLabels, noComments)
	require.NoError(t, err)
	require.Len(t, incidents, 1)

	incident := incidents[0]
	assert.Equal(t, "API is down", incident.Title)
	assert.Equal(t, "major outage", incident.Severity)
	assert.Equal(t, []string{"API"}, incident.Systems)
	assert.False(t, incident.Closed)
	assert.Contains(t, string(incident.Body), "Looking into it.")
	assert.Empty(t, incident.Updates)
}

func TestCollectIncidentsSortedNewestFirst(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	mkIssue := func(number int, created time.Time) github.Issue {
		return github.Issue{
			Number:    number,
			State:     "closed",
			Author:    "admin",
			CreatedAt: created,
			Labels:    []github.Label{systemLabel("API")},
		}
	}

	issues := []github.Issue{
		mkIssue(1, base),
		mkIssue(2, base.Add(48*time.Hour)),
		mkIssue(3, base.Add(24*time.Hour)),
	}

	incidents, err := CollectIncidents(issues, []string{"admin"}, testSystemColor, testStatusLabels, noComments)
	require.NoError(t, err)
	require.Len(t, incidents, 3)
	assert.True(t, incidents[0].CreatedAt.After(incidents[1].CreatedAt))
	assert.True(t, incidents[1].CreatedAt.After(incidents[2].CreatedAt))
}

func TestCollectIncidentsFiltersCommentsToCollaborators(t *testing.T) {
	issues := []github.Issue{
		{
			Number: 1,
			State:  "open",
			Author: "admin",
			Labels: []github.Label{systemLabel("API"), severityLabel("investigating")},
		},
	}

	comments := func(issueNumber int) ([]github.Comment, error) {
		require.Equal(t, 1, issueNumber)
		return []github.Comment{
			{Author: "admin", Body: "First update", CreatedAt: time.Now()},
			{Author: "drive-by", Body: "me too", CreatedAt: time.Now()},
			{Author: "admin", Body: "Second update", CreatedAt: time.Now()},
		}, nil
	}

	incidents, err := CollectIncidents(issues, []string{"admin"}, testSystemColor, testStatusLabels, comments)
	require.NoError(t, err)
	require.Len(t, incidents, 1)

	updates := incidents[0].Updates
	require.Len(t, updates, 2)
	assert.Contains(t, string(updates[0].Body), "First update")
	assert.Contains(t, string(updates[1].Body), "Second update")
}

func TestCollectIncidentsSortsAffectedSystems(t *testing.T) {
	issues := []github.Issue{
		{
			Number: 1,
			State:  "open",
			Author: "admin",
			Labels: []github.Label{systemLabel("Website"), severityLabel("investigating"), systemLabel("API")},
		},
	}

	incidents, err := CollectIncidents(issues, []string{"admin"}, testSystemColor, testStatusLabels, noComments)
	require.NoError(t, err)
	require.Len(t, incidents, 1)
	assert.Equal(t, []string{"API", "Website"}, incidents[0].Systems)
}
