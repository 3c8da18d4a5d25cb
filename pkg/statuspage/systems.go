package statuspage

import (
	"fmt"
	"strings"

	"statuspage/pkg/config"
	"statuspage/pkg/github"
)

// AddSystem creates a new system label colored with the configured system
// color. Returns false when the system already exists; that is reported, not
// an error.
func (s *Service) AddSystem(system, branchPages string) (bool, error) {
	if err := s.verifyRepository(); err != nil {
		return false, err
	}

	cfg, err := config.Resolve(s.Client, s.Owner, s.Repo, branchPages)
	if err != nil {
		return false, err
	}

	name := strings.TrimSpace(system)
	err = s.Client.CreateLabel(s.Owner, s.Repo, github.Label{Name: name, Color: cfg.SystemColor})
	if err != nil {
		if github.IsConflict(err) {
			fmt.Printf("⚠️  Unable to add new system %s, it already exists.\n", name)
			return false, nil
		}
		return false, err
	}

	fmt.Printf("✓ Successfully added new system %s\n", name)
	return true, nil
}

// RemoveSystem deletes a system label. Returns false when no such label
// exists; that is reported, not an error.
func (s *Service) RemoveSystem(system string) (bool, error) {
	if err := s.verifyRepository(); err != nil {
		return false, err
	}

	name := strings.TrimSpace(system)
	if err := s.Client.DeleteLabel(s.Owner, s.Repo, name); err != nil {
		if github.IsNotFound(err) {
			fmt.Printf("⚠️  Unable to remove system %s, it does not exist.\n", name)
			return false, nil
		}
		return false, err
	}

	fmt.Printf("✓ Successfully deleted %s\n", name)
	return true, nil
}
