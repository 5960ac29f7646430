package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/juniperonsteam67-glitch/clawdoc"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := clawdoc.DocumentFilter{}
	if c.Type != "" {
		docType := clawdoc.DocumentType(c.Type)
		filter.Type = &docType
	}

	docs, err := deps.Documents.FindDocuments(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", clawdoc.ErrorMessage(err))
		return err
	}

	if len(docs) == 0 {
		fmt.Fprintln(deps.Stdout, "No documents learned yet. Use 'clawdoc learn' to add one.")
		return nil
	}

	w := tabwriter.NewWriter(deps.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTYPE\tSOURCE\tTITLE")
	for _, doc := range docs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", doc.Name, doc.Type, doc.Source, doc.Title)
	}
	return w.Flush()
}
