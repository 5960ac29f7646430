// Package manpage fetches and parses man-style reference pages. The
// fetcher shells out to man(1); the parser understands the all-caps
// section layout (NAME, SYNOPSIS, DESCRIPTION, OPTIONS, EXAMPLES)
// produced by troff formatting.
package manpage

import (
	"regexp"
	"strings"

	"github.com/juniperonsteam67-glitch/clawdoc"
)

// Ensure Parser implements clawdoc.Parser at compile time.
var _ clawdoc.Parser = (*Parser)(nil)

// Parser parses reference-page text into a structured document.
type Parser struct{}

// NewParser creates a new reference-page parser.
func NewParser() *Parser {
	return &Parser{}
}

var (
	headingRe = regexp.MustCompile(`^[A-Z][A-Z ]+[A-Z]$`)
	nameRe    = regexp.MustCompile(`^([\w.+-]+)\s+-+\s+(.+)$`)
)

// Parse scans the content line by line. A line matching the all-caps
// heading pattern opens a new section; everything until the next
// heading accumulates into it. Recognized sections are additionally
// routed into the structured fields of the document.
func (p *Parser) Parse(name, content string) (*clawdoc.Document, error) {
	doc := &clawdoc.Document{
		Name: name,
		Type: clawdoc.TypeReferencePage,
	}

	var current string
	var buf []string

	closeSection := func() {
		if current == "" {
			return
		}
		text := dedent(buf)
		if text != "" {
			doc.Sections = append(doc.Sections, clawdoc.Section{Name: current, Text: text})
			p.routeSection(doc, current, text)
		}
		buf = buf[:0]
	}

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimRight(line, " \t\r")
		if headingRe.MatchString(trimmed) {
			closeSection()
			current = trimmed
			continue
		}
		if current != "" {
			buf = append(buf, trimmed)
		}
	}
	closeSection()

	if doc.Name == "" {
		doc.Name = name
	}
	if doc.Title == "" {
		doc.Title = doc.Name
	}
	return doc, nil
}

// routeSection copies recognized section content into structured fields.
func (p *Parser) routeSection(doc *clawdoc.Document, heading, text string) {
	switch heading {
	case "NAME":
		name, desc := parseNameSection(text)
		if name != "" {
			doc.Name = name
			doc.Title = name
		}
		if doc.Description == "" {
			doc.Description = desc
		}
	case "DESCRIPTION":
		doc.Description = text
	case "OPTIONS":
		doc.Options = parseOptions(text)
	case "EXAMPLES", "EXAMPLE":
		doc.Examples = parseExamples(text)
	}
}

// parseNameSection extracts "word - description" from a NAME section,
// falling back to the first token when the dash form is absent.
func parseNameSection(text string) (name, desc string) {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if m := nameRe.FindStringSubmatch(line); m != nil {
			return m[1], strings.TrimSpace(m[2])
		}
		fields := strings.Fields(line)
		return fields[0], ""
	}
	return "", ""
}

var (
	flagRe = regexp.MustCompile(`^-{1,2}[A-Za-z0-9][A-Za-z0-9-]*$`)
	argRe  = regexp.MustCompile(`^(<[^>]+>|\[[^\]]+\]|[A-Z][A-Z0-9_-]*)$`)
)

// parseOptions parses an OPTIONS section line by line. A line starting
// with a flag token opens a new option record; indented non-flag lines
// continue the previous option's description.
func parseOptions(text string) []clawdoc.Option {
	var options []clawdoc.Option

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if !strings.HasPrefix(trimmed, "-") {
			// Continuation of the previous option's description.
			if len(options) > 0 {
				last := &options[len(options)-1]
				if last.Description != "" {
					last.Description += " "
				}
				last.Description += trimmed
			}
			continue
		}

		if opt, ok := parseOptionLine(trimmed); ok {
			options = append(options, opt)
		}
	}

	return options
}

// parseOptionLine splits one option line into flag, optional argument,
// and description. Comma-separated flag aliases collapse onto the
// first flag; "--name=ARG" yields the flag and its argument.
func parseOptionLine(line string) (clawdoc.Option, bool) {
	var opt clawdoc.Option

	tokens := strings.Fields(line)
	i := 0
	for ; i < len(tokens); i++ {
		tok := strings.TrimSuffix(tokens[i], ",")
		if flag, arg, found := strings.Cut(tok, "="); found && flagRe.MatchString(flag) {
			if opt.Flag == "" {
				opt.Flag = flag
			}
			if opt.Argument == "" {
				opt.Argument = arg
			}
			continue
		}
		if !flagRe.MatchString(tok) {
			break
		}
		if opt.Flag == "" {
			opt.Flag = tok
		}
	}
	if opt.Flag == "" {
		return opt, false
	}

	if i < len(tokens) && opt.Argument == "" && argRe.MatchString(tokens[i]) {
		opt.Argument = tokens[i]
		i++
	}

	opt.Description = strings.Join(tokens[i:], " ")
	return opt, true
}

// exampleIndent is the minimum indentation that marks the start of an
// example block in troff output.
const exampleIndent = 7

// promptMarkers start an example block regardless of indentation.
var promptMarkers = []string{"$ ", "# ", "> "}

// parseExamples splits an EXAMPLES section into example blocks. A line
// beginning with a shell prompt marker or indented at least seven
// spaces beyond the section's baseline starts a new block; further
// non-empty lines append to it until a blank line or the next block
// marker.
func parseExamples(text string) []string {
	var examples []string
	var block []string

	threshold := baselineIndent(text) + exampleIndent

	closeBlock := func() {
		if len(block) == 0 {
			return
		}
		examples = append(examples, strings.Join(block, "\n"))
		block = nil
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			closeBlock()
			continue
		}

		if marker, ok := stripPrompt(trimmed); ok {
			closeBlock()
			block = append(block, marker)
			continue
		}
		if leadingSpaces(line) >= threshold {
			closeBlock()
			block = append(block, trimmed)
			continue
		}

		if len(block) > 0 {
			block = append(block, trimmed)
		}
	}
	closeBlock()

	return examples
}

// stripPrompt removes a leading shell prompt marker if present.
func stripPrompt(s string) (string, bool) {
	for _, marker := range promptMarkers {
		if strings.HasPrefix(s, marker) {
			return strings.TrimSpace(strings.TrimPrefix(s, marker)), true
		}
	}
	return s, false
}

// baselineIndent is the minimum indentation across non-empty lines,
// i.e. the indentation of ordinary body text within the section.
func baselineIndent(text string) int {
	base := -1
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if n := leadingSpaces(line); base < 0 || n < base {
			base = n
		}
	}
	if base < 0 {
		return 0
	}
	return base
}

// dedent strips the common body indentation from section lines and
// drops surrounding blank lines, preserving relative indentation of
// deeper-indented content such as example blocks.
func dedent(lines []string) string {
	text := strings.Join(lines, "\n")
	base := baselineIndent(text)

	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if n := leadingSpaces(line); n >= base {
			line = line[base:]
		} else {
			line = strings.TrimLeft(line, " ")
		}
		out = append(out, line)
	}
	for len(out) > 0 && strings.TrimSpace(out[0]) == "" {
		out = out[1:]
	}
	for len(out) > 0 && strings.TrimSpace(out[len(out)-1]) == "" {
		out = out[:len(out)-1]
	}
	return strings.Join(out, "\n")
}

func leadingSpaces(s string) int {
	n := 0
	for _, r := range s {
		if r != ' ' {
			break
		}
		n++
	}
	return n
}
