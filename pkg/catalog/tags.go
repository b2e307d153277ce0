package catalog

import (
	"regexp"
	"strings"

	"github.com/amby-app/feedsync/pkg/constants"
)

// SizeTemplates maps raw storefront category names to gender/size-class
// template strings. A template either carries a numeric placeholder
// (instantiated with numeric sizes), a string placeholder (letter sizes),
// or a "*" marker for one-size categories.
func SizeTemplates() map[string]string {
	num := constants.NumericSizePlaceholder
	str := constants.StringSizePlaceholder

	return map[string]string{
		"Для женщин":   num + "F",
		"Ж_аксессуары": "*F",
		"Ж_обувь":      "BOT" + str + "F",
		"Ж_плечевая":   "TOP" + str + "F",
		"Ж_поясная":    "BOT" + str + "F",
		"Для мужчин":   num + "M",
		"М_аксессуары": "*M",
		"М_обувь":      "BOT" + str + "M",
		"М_плечевая":   "TOP" + str + "M",
		"М_поясная":    "BOT" + str + "M",
	}
}

var (
	genderSuffix = regexp.MustCompile(`(F|M)$`)
	starTemplate = regexp.MustCompile(`\*[FMМ]`)
	oneSize      = regexp.MustCompile(`(?i)one size`)
	anyDigit     = regexp.MustCompile(`\d+`)
	anyWord      = regexp.MustCompile(`\w+`)
)

// TranslateCategories maps a product's category names through the template
// dictionary, keeping category order. Unrecognized categories yield nothing;
// a product whose categories produce zero templates is excluded from export.
func TranslateCategories(categories []string, dict map[string]string) []string {
	var templates []string
	for _, category := range categories {
		if template, ok := dict[category]; ok {
			templates = append(templates, template)
		}
	}
	return templates
}

// GenerateTags instantiates filter tags from matched templates and the raw
// size choice strings. Exactly one tag family fires, by precedence:
//
//  1. any "one size" choice or any "*" template emits a single *{gender} tag
//  2. numeric sizes substitute into the numeric-class template
//  3. letter sizes substitute into the string-class template
//
// When none match the result is empty and the caller filters the product out.
func GenerateTags(templates []string, sizes []string) []string {
	if len(templates) == 0 {
		return nil
	}

	gender := genderSuffix.FindString(templates[0])

	// Storefront sizes occasionally use the Cyrillic М for medium.
	normalized := make([]string, 0, len(sizes))
	for _, size := range sizes {
		normalized = append(normalized, strings.ReplaceAll(size, "М", "M"))
	}
	sizesString := strings.Join(normalized, " ")

	switch {
	case oneSize.MatchString(sizesString) || starTemplate.MatchString(strings.Join(templates, " ")):
		return []string{"*" + gender}
	case anyDigit.MatchString(sizesString):
		return substituteSizes(templates, normalized, constants.NumericSizePlaceholder)
	case anyWord.MatchString(sizesString):
		return substituteSizes(templates, normalized, constants.StringSizePlaceholder)
	default:
		return nil
	}
}

// substituteSizes instantiates the first template carrying the placeholder
// with every size value. No matching template means no tags.
func substituteSizes(templates []string, sizes []string, placeholder string) []string {
	var matching string
	for _, template := range templates {
		if strings.Contains(template, placeholder) {
			matching = template
			break
		}
	}
	if matching == "" {
		return nil
	}

	tags := make([]string, 0, len(sizes))
	for _, size := range sizes {
		tags = append(tags, strings.Replace(matching, placeholder, size, 1))
	}
	return tags
}

// SplitSizeChoices flattens size choice descriptions into individual size
// values: composite choices like "36/38" contribute each part once,
// deduplicated in insertion order.
func SplitSizeChoices(choices []string) []string {
	seen := make(map[string]struct{})
	var sizes []string
	for _, choice := range choices {
		for _, part := range strings.Split(choice, "/") {
			if _, ok := seen[part]; ok {
				continue
			}
			seen[part] = struct{}{}
			sizes = append(sizes, part)
		}
	}
	return sizes
}
