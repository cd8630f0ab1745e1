package util

import (
	"regexp"
	"strings"
)

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// SanitizeFilename converts a device serial into a safe file name
// component. Path separators and any other unsafe characters become
// underscores; leading/trailing dots and spaces are stripped so the
// result can never escape the output directory or hide itself.
// An empty result means the serial is unusable as a file name and the
// caller must reject the device.
func SanitizeFilename(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, `\`, "_")
	s = unsafeFilenameChars.ReplaceAllString(s, "_")
	s = strings.Trim(s, ". ")
	return s
}
