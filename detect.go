package clawdoc

import (
	"regexp"
	"strings"
)

// sniffWindow bounds how much of a source is examined for type hints.
const sniffWindow = 2000

var allCapsHeadingRe = regexp.MustCompile(`(?m)^[A-Z][A-Z ]+[A-Z]$`)

// DetectType selects the parsing strategy for a source. A source whose
// head contains both a NAME-like and a SYNOPSIS-like all-caps heading
// is a reference page. Everything else defaults to markdown, which
// degrades gracefully on plain text.
func DetectType(name, content string) DocumentType {
	head := content
	if len(head) > sniffWindow {
		head = truncate(head, sniffWindow)
	}

	headings := allCapsHeadingRe.FindAllString(head, -1)
	var hasName, hasSynopsis bool
	for _, h := range headings {
		switch {
		case strings.HasPrefix(h, "NAME"):
			hasName = true
		case strings.HasPrefix(h, "SYNOPSIS"):
			hasSynopsis = true
		}
	}
	if hasName && hasSynopsis {
		return TypeReferencePage
	}

	// Everything else, markdown extension or not, goes through the
	// markdown parser. It demotes structureless content to plain.
	return TypeMarkdown
}
