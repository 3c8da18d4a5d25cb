package statuspage

import (
	"fmt"

	"github.com/schollz/progressbar/v3"

	"statuspage/internal/logging"
	"statuspage/pkg/page"
	"statuspage/pkg/templates"
)

// Upgrade synchronizes the bundled template files to the pages branch:
// missing files are created, outdated ones updated, identical ones left
// alone. Files on the branch that are not part of the default set are never
// touched.
func (s *Service) Upgrade(branchPages string) error {
	if err := s.verifyRepository(); err != nil {
		return err
	}

	fmt.Println("Upgrading...")

	files := templates.Files()
	bar := progressbar.Default(int64(len(files)), "Updating template files")

	for _, name := range files {
		content, err := templates.Content(name)
		if err != nil {
			return err
		}
		if name == "translations.ini" {
			if err := templates.ValidateTranslations(content); err != nil {
				return err
			}
		}

		result, err := page.Publish(s.Client, s.Owner, s.Repo, branchPages, name, content, "upgrade", "upgrade")
		if err != nil {
			return err
		}
		logging.Debug("template sync", "file", name, "result", string(result))
		_ = bar.Add(1)
	}

	fmt.Println("✓ Template files are up to date")
	return nil
}
