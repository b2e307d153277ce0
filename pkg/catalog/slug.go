package catalog

import (
	"regexp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

var lowercaser = cases.Lower(language.Und)

// Slugify derives a deterministic storefront slug from a product name:
// Unicode-aware lowercasing with whitespace runs replaced by hyphens.
// Partner names are frequently Cyrillic, so plain ASCII folding is not enough.
func Slugify(name string) string {
	lowered := lowercaser.String(name)
	return whitespaceRun.ReplaceAllString(lowered, "-")
}
