package rules

import (
	"regexp"
	"strconv"
	"strings"
)

var placeholderRegex = regexp.MustCompile(`\{\{([A-Z0-9_]+)\}\}`)

// renderTemplate substitutes {{NAME}} placeholders from values. Placeholders
// without a value are left intact rather than erroring or being stripped.
func renderTemplate(template string, values map[string]string) string {
	if template == "" || len(values) == 0 {
		return template
	}

	return placeholderRegex.ReplaceAllStringFunc(template, func(match string) string {
		key := match[2 : len(match)-2]
		if value, ok := values[key]; ok {
			return value
		}
		return match
	})
}

// ordinal renders a day of month with its English suffix: 1st, 2nd, 3rd,
// 4th... with 11-13 always taking "th".
func ordinal(day int) string {
	suffix := "th"
	if day < 11 || day > 13 {
		switch day % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(day) + suffix
}

// titleCase capitalizes the first letter of each space-separated word,
// matching how bin categories are presented in messages.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}
