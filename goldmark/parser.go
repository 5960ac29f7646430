// Package goldmark parses markdown documentation into structured
// documents by walking the goldmark AST.
package goldmark

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/juniperonsteam67-glitch/clawdoc"
)

// maxDerivedDescription caps a description derived from body text when
// no dedicated description section exists.
const maxDerivedDescription = 500

// sectionMaxLevel is the deepest heading level that opens a new
// section; deeper headings fold into the surrounding section text.
const sectionMaxLevel = 4

// Ensure Parser implements clawdoc.Parser at compile time.
var _ clawdoc.Parser = (*Parser)(nil)

// Parser parses markdown content into a structured document.
type Parser struct {
	md goldmark.Markdown
}

// NewParser creates a new markdown parser.
func NewParser() *Parser {
	return &Parser{md: goldmark.New()}
}

// Parse walks the markdown AST. The first level-1 heading becomes the
// title; headings up to level 4 open sections; fenced code blocks are
// collected separately and shell-like blocks are scanned for commands.
// Content with no heading structure at all yields a plain document.
func (p *Parser) Parse(name, content string) (*clawdoc.Document, error) {
	src := []byte(content)
	root := p.md.Parser().Parse(text.NewReader(src))

	doc := &clawdoc.Document{
		Name: name,
		Type: clawdoc.TypeMarkdown,
	}

	var (
		section  string // current section name, "" means preamble
		buf      bytes.Buffer
		preamble string
	)

	flush := func() {
		t := strings.TrimSpace(buf.String())
		buf.Reset()
		if t == "" {
			return
		}
		if section == "" {
			preamble = t
			return
		}
		doc.Sections = append(doc.Sections, clawdoc.Section{Name: section, Text: t})
	}

	appendText := func(t string) {
		if t == "" {
			return
		}
		if buf.Len() > 0 {
			buf.WriteString("\n\n")
		}
		buf.WriteString(t)
	}

	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			title := string(node.Text(src))
			switch {
			case node.Level == 1 && doc.Title == "":
				flush()
				doc.Title = title
			case node.Level <= sectionMaxLevel:
				flush()
				section = title
			default:
				// Deep headings stay inline in the surrounding section.
				appendText(title)
			}

		case *ast.FencedCodeBlock:
			lang := string(node.Language(src))
			code := blockLines(node, src)
			p.collectCode(doc, section, lang, code)

		case *ast.CodeBlock:
			p.collectCode(doc, section, "", blockLines(node, src))

		default:
			appendText(extractText(n, src))
		}
	}
	flush()

	doc.Description = deriveDescription(doc, preamble)

	if doc.Title == "" && len(doc.Sections) == 0 {
		doc.Type = clawdoc.TypePlain
		doc.Title = name
	}
	return doc, nil
}

// collectCode records a code block and, for shell-like blocks, scans
// it for runnable commands.
func (p *Parser) collectCode(doc *clawdoc.Document, section, lang, code string) {
	code = strings.TrimRight(code, "\n")
	if code == "" {
		return
	}
	doc.CodeBlocks = append(doc.CodeBlocks, clawdoc.CodeBlock{Language: lang, Content: code})

	if !shellLike(lang) {
		return
	}
	context := section
	if context == "" {
		context = doc.Title
	}
	for _, line := range strings.Split(code, "\n") {
		if cmd, ok := commandLine(line); ok {
			doc.Commands = append(doc.Commands, clawdoc.Command{Command: cmd, Context: context})
		}
	}
}

// deriveDescription prefers a section named Description or
// Introduction, then preamble text before the first section, then the
// head of the first section.
func deriveDescription(doc *clawdoc.Document, preamble string) string {
	for _, sec := range doc.Sections {
		if strings.EqualFold(sec.Name, "description") || strings.EqualFold(sec.Name, "introduction") {
			return sec.Text
		}
	}
	if preamble != "" {
		return truncateRunes(preamble, maxDerivedDescription)
	}
	if len(doc.Sections) > 0 {
		return truncateRunes(doc.Sections[0].Text, maxDerivedDescription)
	}
	return ""
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// shellLike reports whether a code fence language suggests shell
// content worth scanning for commands.
func shellLike(lang string) bool {
	switch strings.ToLower(lang) {
	case "", "sh", "bash", "shell", "zsh", "console", "shell-session", "terminal":
		return true
	}
	return false
}

// knownTools are first tokens that mark a line as a command even
// without flags: package managers, VCS, interpreters, common infra.
var knownTools = map[string]bool{
	"git": true, "go": true, "npm": true, "npx": true, "yarn": true, "pnpm": true,
	"pip": true, "pip3": true, "python": true, "python3": true, "node": true,
	"cargo": true, "make": true, "docker": true, "kubectl": true, "helm": true,
	"apt": true, "apt-get": true, "brew": true, "curl": true, "wget": true,
	"sh": true, "bash": true, "cd": true, "mkdir": true, "export": true,
}

var toolTokenRe = regexp.MustCompile(`^[a-z][a-z0-9_.-]*$`)

// commandLine reports whether a line inside a shell block looks like a
// runnable command, returning it with any prompt marker stripped.
func commandLine(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", false
	}
	for _, marker := range []string{"$ ", "> "} {
		if strings.HasPrefix(trimmed, marker) {
			return strings.TrimSpace(strings.TrimPrefix(trimmed, marker)), true
		}
	}

	fields := strings.Fields(trimmed)
	if !toolTokenRe.MatchString(fields[0]) {
		return "", false
	}
	if knownTools[fields[0]] {
		return trimmed, true
	}
	for _, f := range fields[1:] {
		if strings.HasPrefix(f, "-") {
			return trimmed, true
		}
	}
	return "", false
}

// blockLines concatenates the source lines of a block node.
func blockLines(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(src))
	}
	return buf.String()
}

// extractText gets the plain text content of an AST node.
func extractText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock && n.FirstChild() == nil {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			buf.Write(seg.Value(src))
		}
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		case *ast.ListItem, *ast.TextBlock, *ast.Paragraph:
			if s := extractText(c, src); s != "" {
				if buf.Len() > 0 {
					buf.WriteByte('\n')
				}
				buf.WriteString(s)
			}
		default:
			buf.WriteString(extractText(c, src))
		}
	}
	return strings.TrimSpace(buf.String())
}
