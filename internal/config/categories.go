package config

import "strings"

// OtherCategory is always offered last.
const OtherCategory = "Other"

// DefaultCategories are the expense types offered by the setup wizard.
var DefaultCategories = []string{
	"Rent/Mortgage",
	"Utilities",
	"Groceries",
	"Car Payment",
	"Insurance",
	"Phone/Internet",
	"Credit Card Payment",
	"Streaming Services",
	"Student Loans",
	OtherCategory,
}

// CategoryConfig lets users replace the wizard's category list.
type CategoryConfig struct {
	Presets []string `toml:"presets,omitempty"`
}

// CategoryList returns the wizard's category list: the configured presets, or
// the defaults, deduplicated and always ending in "Other".
func (c Config) CategoryList() []string {
	src := c.Categories.Presets
	if len(src) == 0 {
		src = DefaultCategories
	}

	seen := make(map[string]bool, len(src)+1)
	out := make([]string, 0, len(src)+1)
	for _, name := range src {
		name = strings.TrimSpace(name)
		key := strings.ToLower(name)
		if name == "" || seen[key] || key == strings.ToLower(OtherCategory) {
			continue
		}
		seen[key] = true
		out = append(out, name)
	}
	return append(out, OtherCategory)
}
