// Package status turns a repository's labels and issues into the derived
// state the page renders: per-system statuses, grouped panels, and the
// incident feed.
package status

import (
	"fmt"
	"sort"

	"statuspage/pkg/github"
)

// StatusOperational is the status of a system with no open incident.
const StatusOperational = "operational"

// SystemStatus is the current state of a single monitored system.
type SystemStatus struct {
	Name   string
	Status string // StatusOperational or a severity name
}

// Panel groups the currently affected systems under one severity.
type Panel struct {
	Severity string
	Systems  []string
}

// ErrUnknownSystem is returned when an issue carries a system-colored label
// that is not among the repository's system labels. The system labels must be
// a superset of any system labels attached to issues.
var ErrUnknownSystem = fmt.Errorf("issue references an unknown system label")

// SystemNames returns the names of labels whose color matches the configured
// system color, in the order given.
func SystemNames(labels []github.Label, systemColor string) []string {
	var names []string
	for _, label := range labels {
		if label.Color == systemColor {
			names = append(names, label.Name)
		}
	}
	return names
}

// Severity returns the name of the first label that is a configured severity,
// or the empty string when the label set carries none.
func Severity(labels []github.Label, statusLabels map[string]string) string {
	for _, label := range labels {
		if _, ok := statusLabels[label.Name]; ok {
			return label.Name
		}
	}
	return ""
}

// DeriveSystems computes the status of every system known to the repository.
//
// Every system label yields exactly one entry, seeded operational in
// ascending name order. Open issues are then folded in ascending issue-number
// order, so when several open issues affect the same system the most recently
// created one wins. An open issue without a severity label leaves statuses
// untouched.
func DeriveSystems(allLabels []github.Label, issues []github.Issue, systemColor string, statusLabels map[string]string) ([]SystemStatus, error) {
	names := SystemNames(allLabels, systemColor)
	sort.Strings(names)

	statuses := make([]SystemStatus, len(names))
	index := make(map[string]int, len(names))
	for i, name := range names {
		statuses[i] = SystemStatus{Name: name, Status: StatusOperational}
		index[name] = i
	}

	var open []github.Issue
	for _, issue := range issues {
		if issue.IsOpen() {
			open = append(open, issue)
		}
	}
	sort.SliceStable(open, func(i, j int) bool {
		return open[i].Number < open[j].Number
	})

	for _, issue := range open {
		severity := Severity(issue.Labels, statusLabels)
		if severity == "" {
			continue
		}
		for _, affected := range SystemNames(issue.Labels, systemColor) {
			i, ok := index[affected]
			if !ok {
				return nil, fmt.Errorf("issue #%d labeled with system %q: %w", issue.Number, affected, ErrUnknownSystem)
			}
			statuses[i].Status = severity
		}
	}

	return statuses, nil
}

// BuildPanels groups non-operational systems by severity. Panel order follows
// the first system seen with each severity; system order within a panel
// follows the order of statuses.
func BuildPanels(statuses []SystemStatus) []Panel {
	var panels []Panel
	index := make(map[string]int)

	for _, s := range statuses {
		if s.Status == StatusOperational {
			continue
		}
		i, ok := index[s.Status]
		if !ok {
			i = len(panels)
			panels = append(panels, Panel{Severity: s.Status})
			index[s.Status] = i
		}
		panels[i].Systems = append(panels[i].Systems, s.Name)
	}

	return panels
}
