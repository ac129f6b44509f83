package parser

import (
	"regexp"
	"strings"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// NormalizeColumnName trims, lowercases and collapses inner whitespace
// (line breaks from wrapped header cells included) to a single space.
func NormalizeColumnName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	name = whitespaceRe.ReplaceAllString(name, " ")
	return strings.ToLower(name)
}

// NormalizeValue lowercases a cell value and strips surrounding whitespace.
func NormalizeValue(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}

// ContainsAny reports whether text contains any of the keywords
func ContainsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// EqualsAny reports whether text equals any of the values
func EqualsAny(text string, values []string) bool {
	for _, v := range values {
		if text == v {
			return true
		}
	}
	return false
}

// IsPlaceholder reports whether a cell is empty or the literal "-".
func IsPlaceholder(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || v == "-"
}

func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}
