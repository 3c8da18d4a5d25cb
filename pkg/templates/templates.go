// Package templates holds the default page assets committed to the pages
// branch on create and synchronized on upgrade.
package templates

import (
	"embed"
	"fmt"

	"gopkg.in/ini.v1"
)

//go:embed assets
var assets embed.FS

// Files returns the default template filenames in commit order.
func Files() []string {
	return []string{
		"template.html",
		"style.css",
		"statuspage.js",
		"translations.ini",
	}
}

// Content returns the embedded content of one template file.
func Content(name string) ([]byte, error) {
	data, err := assets.ReadFile("assets/" + name)
	if err != nil {
		return nil, fmt.Errorf("unknown template file %q: %w", name, err)
	}
	return data, nil
}

// Languages lists the language sections of a translations file.
func Languages(data []byte) ([]string, error) {
	f, err := ini.Load(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse translations: %w", err)
	}

	var langs []string
	for _, section := range f.Sections() {
		if section.Name() == ini.DefaultSection {
			continue
		}
		langs = append(langs, section.Name())
	}
	return langs, nil
}

// ValidateTranslations checks that a translations payload is well-formed INI
// with at least one language section. Run before committing the file so a
// broken translation set never reaches the pages branch.
func ValidateTranslations(data []byte) error {
	langs, err := Languages(data)
	if err != nil {
		return err
	}
	if len(langs) == 0 {
		return fmt.Errorf("translations file defines no languages")
	}
	return nil
}
