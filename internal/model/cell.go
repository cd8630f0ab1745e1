package model

import (
	"regexp"
	"strings"
)

var innerWhitespace = regexp.MustCompile(`\s+`)

// NormalizeCell trims surrounding whitespace and collapses internal
// runs of whitespace to a single space.
func NormalizeCell(s string) string {
	return innerWhitespace.ReplaceAllString(strings.TrimSpace(s), " ")
}

// IsBlank reports whether a cell carries no usable value. Spreadsheet
// exports render empty cells as "nan", so that token counts as blank too.
func IsBlank(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || strings.EqualFold(s, "nan")
}

// IsYes reports whether a boolean-like cell is affirmative. Only the
// literal token YES (any case) is true; everything else is treated as no.
func IsYes(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "YES")
}

// IsNo reports whether a boolean-like cell is the explicit token NO.
func IsNo(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "NO")
}

// placeholderSerials are sentinel values that mark a non-data inventory
// row: a repeated column header, a comment marker, or an empty export cell.
var placeholderSerials = map[string]bool{
	"":              true,
	"nan":           true,
	"serial number": true,
	"#":             true,
}

// IsPlaceholderSerial reports whether a serial cell is a placeholder
// row rather than a real device.
func IsPlaceholderSerial(s string) bool {
	return placeholderSerials[strings.ToLower(strings.TrimSpace(s))]
}

// SplitUnit splits a logical interface name like "irb.100" into its
// base interface and unit number. A name without a dot keeps the whole
// value as the base and falls back to unit 0.
func SplitUnit(iface string) (base, unit string) {
	idx := strings.LastIndex(iface, ".")
	if idx == -1 {
		return iface, "0"
	}
	return iface[:idx], iface[idx+1:]
}
