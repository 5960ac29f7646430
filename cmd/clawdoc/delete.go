package main

import (
	"fmt"

	"github.com/juniperonsteam67-glitch/clawdoc"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return clawdoc.Errorf(clawdoc.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Documents.DeleteDocument(deps.Ctx, c.Name); err != nil {
		if clawdoc.ErrorCode(err) == clawdoc.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: document %q not found. Use 'clawdoc list' to see learned documents.\n", c.Name)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", clawdoc.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted document %q\n", c.Name)
	return nil
}
