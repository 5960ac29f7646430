package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/juniperonsteam67-glitch/clawdoc"
	"github.com/juniperonsteam67-glitch/clawdoc/learn"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx          context.Context
	Stdout       io.Writer
	Stderr       io.Writer
	Logger       *slog.Logger
	Documents    clawdoc.DocumentService
	Learner      clawdoc.Learner
	BatchLearner *learn.Learner
	Asker        clawdoc.Asker
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Learn  LearnCmd  `cmd:"" help:"Learn documentation from man pages, URLs, or files"`
	List   ListCmd   `cmd:"" help:"List learned documents"`
	Show   ShowCmd   `cmd:"" help:"Show a learned document"`
	Ask    AskCmd    `cmd:"" help:"Ask a question about learned documentation"`
	Delete DeleteCmd `cmd:"" help:"Delete a learned document"`
}

// LearnCmd is the "learn" subcommand.
type LearnCmd struct {
	Sources     []string `arg:"" help:"Sources to learn: man:page, http(s) URL, or file path"`
	Name        string   `short:"n" help:"Document name (single source only)"`
	Type        string   `short:"t" enum:",reference-page,markdown,plain" default:"" help:"Force document type"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent fetch limit for multiple sources"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Type string `short:"t" enum:",reference-page,markdown,plain" default:"" help:"Filter by document type"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Name string `arg:"" help:"Document name"`
	JSON bool   `help:"Output the raw document as JSON"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Question []string `arg:"" help:"Question to ask about the learned documentation"`
	TopK     int      `short:"k" default:"5" help:"Number of results to consider"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Name  string `arg:"" help:"Document name"`
	Force bool   `help:"Confirm deletion"`
}
