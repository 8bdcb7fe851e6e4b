package style

import (
	"regexp"
)

// tagPattern matches [Name]text[/Name]. Tags do not nest.
var tagPattern = regexp.MustCompile(`\[([A-Za-z]+)\](.*?)\[/([A-Za-z]+)\]`)

// Render replaces registered style tags with styled text. Unknown or
// mismatched tags are left as they are.
func Render(text string) string {
	return replaceTags(text, func(name, content string) string {
		return GetStyle(name).Render(content)
	})
}

// Strip removes registered style tags and keeps their content.
func Strip(text string) string {
	return replaceTags(text, func(_, content string) string {
		return content
	})
}

func replaceTags(text string, fn func(name, content string) string) string {
	return tagPattern.ReplaceAllStringFunc(text, func(match string) string {
		sub := tagPattern.FindStringSubmatch(match)
		if len(sub) != 4 || sub[1] != sub[3] || !HasStyle(sub[1]) {
			return match
		}
		return fn(sub[1], sub[2])
	})
}

// Tag wraps text in the named style tag.
func Tag(name, text string) string {
	return "[" + name + "]" + text + "[/" + name + "]"
}
