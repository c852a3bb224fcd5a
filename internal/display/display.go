// Package display provides human-readable names for diagnostic codes.
//
// Rule: code is for machines, words are for humans.
// Use these functions in CLI output and markdown reports.
// Keep raw codes for JSON fields, map keys, and equality comparisons.
package display

import "sort"

// classNames maps a code's leading class letter to the word operators
// use for it.
var classNames = map[byte]string{
	'W': "Warning",
	'N': "Note",
	'E': "Error",
}

// Describe returns the catalogue text for a diagnostic code, or ""
// when the code is not catalogued.
func Describe(code string) string {
	return descriptions[code]
}

// DescribeWithCode returns "Poor model convergence (W2000)" format.
// Uncatalogued codes are returned as-is.
func DescribeWithCode(code string) string {
	if text, ok := descriptions[code]; ok {
		return text + " (" + code + ")"
	}
	return code
}

// ClassName returns the display name of the code's class letter
// (Warning, Note, Error), or "" for codes outside those classes.
func ClassName(code string) string {
	if code == "" {
		return ""
	}
	return classNames[code[0]]
}

// Known reports whether code is in the catalogue.
func Known(code string) bool {
	_, ok := descriptions[code]
	return ok
}

// Codes returns every catalogued code in ascending order.
func Codes() []string {
	out := make([]string, 0, len(descriptions))
	for code := range descriptions {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}
