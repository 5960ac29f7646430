package main

import (
	"fmt"

	"github.com/juniperonsteam67-glitch/clawdoc"
)

// Run executes the learn command.
func (c *LearnCmd) Run(deps *Dependencies) error {
	if c.Name != "" && len(c.Sources) > 1 {
		fmt.Fprintf(deps.Stderr, "error: --name can only be used with a single source\n")
		return clawdoc.Errorf(clawdoc.EINVALID, "--name can only be used with a single source")
	}

	if len(c.Sources) == 1 {
		doc, err := deps.Learner.Learn(deps.Ctx, clawdoc.SourceRequest{
			Source: c.Sources[0],
			Name:   c.Name,
			Type:   clawdoc.DocumentType(c.Type),
		})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", clawdoc.ErrorMessage(err))
			return err
		}
		printLearned(deps, doc)
		return nil
	}

	reqs := make([]clawdoc.SourceRequest, 0, len(c.Sources))
	for _, source := range c.Sources {
		reqs = append(reqs, clawdoc.SourceRequest{
			Source: source,
			Type:   clawdoc.DocumentType(c.Type),
		})
	}

	report, err := deps.BatchLearner.LearnAll(deps.Ctx, reqs)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", clawdoc.ErrorMessage(err))
		return err
	}

	for _, doc := range report.Learned {
		printLearned(deps, doc)
	}
	for _, failure := range report.Failed {
		fmt.Fprintf(deps.Stderr, "failed: %s: %s\n", failure.Source, clawdoc.ErrorMessage(failure.Err))
	}
	if report.Skipped > 0 {
		fmt.Fprintf(deps.Stdout, "Skipped %d duplicate source(s)\n", report.Skipped)
	}

	fmt.Fprintf(deps.Stdout, "Learned %d document(s), %d failed\n", len(report.Learned), len(report.Failed))
	if len(report.Failed) > 0 {
		return clawdoc.Errorf(clawdoc.EINTERNAL, "%d source(s) failed", len(report.Failed))
	}
	return nil
}

func printLearned(deps *Dependencies, doc *clawdoc.Document) {
	fmt.Fprintf(deps.Stdout, "Learned %q (%s) from %s: %d section(s), %d code block(s)\n",
		doc.Name, doc.Type, doc.Source, len(doc.Sections), len(doc.CodeBlocks))
}
