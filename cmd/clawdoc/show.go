package main

import (
	"encoding/json"
	"fmt"

	"github.com/juniperonsteam67-glitch/clawdoc"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	doc, err := deps.Documents.FindDocumentByName(deps.Ctx, c.Name)
	if err != nil {
		if clawdoc.ErrorCode(err) == clawdoc.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: document %q not found. Use 'clawdoc list' to see learned documents.\n", c.Name)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", clawdoc.ErrorMessage(err))
		}
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	}

	fmt.Fprintf(deps.Stdout, "%s (%s)\n", doc.Name, doc.Type)
	if doc.Title != "" && doc.Title != doc.Name {
		fmt.Fprintf(deps.Stdout, "Title: %s\n", doc.Title)
	}
	fmt.Fprintf(deps.Stdout, "Source: %s\n", doc.Source)
	if !doc.LearnedAt.IsZero() {
		fmt.Fprintf(deps.Stdout, "Learned: %s\n", doc.LearnedAt.Format("2006-01-02 15:04"))
	}

	if doc.Description != "" {
		fmt.Fprintf(deps.Stdout, "\n%s\n", doc.Description)
	}

	if len(doc.Sections) > 0 {
		fmt.Fprintln(deps.Stdout, "\nSections:")
		for _, sec := range doc.Sections {
			fmt.Fprintf(deps.Stdout, "  %s\n", sec.Name)
		}
	}

	if len(doc.Options) > 0 {
		fmt.Fprintln(deps.Stdout, "\nOptions:")
		for _, opt := range doc.Options {
			flag := opt.Flag
			if opt.Argument != "" {
				flag += " " + opt.Argument
			}
			fmt.Fprintf(deps.Stdout, "  %-24s %s\n", flag, opt.Description)
		}
	}

	if len(doc.Examples) > 0 {
		fmt.Fprintln(deps.Stdout, "\nExamples:")
		for _, example := range doc.Examples {
			fmt.Fprintf(deps.Stdout, "  %s\n", example)
		}
	}

	if len(doc.Commands) > 0 {
		fmt.Fprintln(deps.Stdout, "\nCommands:")
		for _, cmd := range doc.Commands {
			fmt.Fprintf(deps.Stdout, "  %s\n", cmd.Command)
		}
	}

	if len(doc.CodeBlocks) > 0 {
		fmt.Fprintf(deps.Stdout, "\n%d code example(s). Use --json for full content.\n", len(doc.CodeBlocks))
	}

	return nil
}
