package main

import (
	"fmt"
	"strings"

	"github.com/juniperonsteam67-glitch/clawdoc"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	question := strings.TrimSpace(strings.Join(c.Question, " "))
	if question == "" {
		fmt.Fprintf(deps.Stderr, "error: question required\n")
		return clawdoc.Errorf(clawdoc.EINVALID, "question required")
	}

	answer, err := deps.Asker.Ask(deps.Ctx, question, c.TopK)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", clawdoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, answer)
	return nil
}
