package confluence

import (
	"html"
	"regexp"
	"strings"
)

var (
	tagPattern        = regexp.MustCompile(`<[^>]+>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
	emojiPattern      = regexp.MustCompile(`[` +
		`\x{1F600}-\x{1F64F}` +
		`\x{1F300}-\x{1F5FF}` +
		`\x{1F680}-\x{1F6FF}` +
		`\x{1F700}-\x{1F77F}` +
		`\x{1F780}-\x{1F7FF}` +
		`\x{1F800}-\x{1F8FF}` +
		`\x{1F900}-\x{1F9FF}` +
		`\x{1FA00}-\x{1FA6F}` +
		`\x{1FA70}-\x{1FAFF}` +
		`\x{2702}-\x{27B0}` +
		`\x{24C2}-\x{1F251}` +
		`]+`)
)

// Clean strips Confluence storage-format markup down to plain text:
// HTML entities are unescaped, tags removed, whitespace collapsed, and
// emoji stripped. The result is what gets mirrored and indexed.
func Clean(text string) string {
	text = html.UnescapeString(text)
	text = tagPattern.ReplaceAllString(text, "")
	text = strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " "))
	return emojiPattern.ReplaceAllString(text, "")
}
