package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/juniperonsteam67-glitch/clawdoc"
	"github.com/juniperonsteam67-glitch/clawdoc/fs"
	"github.com/juniperonsteam67-glitch/clawdoc/goldmark"
	"github.com/juniperonsteam67-glitch/clawdoc/goquery"
	"github.com/juniperonsteam67-glitch/clawdoc/htmltomarkdown"
	clawhttp "github.com/juniperonsteam67-glitch/clawdoc/http"
	"github.com/juniperonsteam67-glitch/clawdoc/index"
	"github.com/juniperonsteam67-glitch/clawdoc/learn"
	"github.com/juniperonsteam67-glitch/clawdoc/manpage"
	clawslog "github.com/juniperonsteam67-glitch/clawdoc/slog"
	"github.com/juniperonsteam67-glitch/clawdoc/sqlite"
	"github.com/juniperonsteam67-glitch/clawdoc/trafilatura"
)

// webFetchRPS throttles fetches per host during learning.
const webFetchRPS = 1.0

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// DBPath is the SQLite database path, used unless Dir is set.
	DBPath string

	// Dir, when non-empty, selects the JSON-file store instead of
	// SQLite. Populated from CLAWDOC_DIR.
	Dir string

	// SQLite database, open only when the SQLite store is in use.
	DB *sqlite.DB

	// DocumentService for end-to-end testing.
	DocumentService clawdoc.DocumentService
}

// NewMain returns a new instance of Main with defaults from the
// environment.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
		Dir:    os.Getenv("CLAWDOC_DIR"),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("clawdoc"),
		kong.Description("Learn documentation locally and ask questions about it."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'clawdoc --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Selected command, independent of global flag position. Command()
	// includes positional placeholders, e.g. "learn <sources>".
	cmd, _, _ := strings.Cut(kongCtx.Command(), " ")

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	// Select document store: CLAWDOC_DIR picks the JSON-file store,
	// otherwise documents live in the SQLite database.
	if m.Dir != "" {
		store, err := fs.NewDocumentService(m.Dir, logger)
		if err != nil {
			return err
		}
		m.DocumentService = store
	} else {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set CLAWDOC_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()
		m.DocumentService = sqlite.NewDocumentService(m.DB, logger)
	}
	deps.Documents = m.DocumentService

	if cmd == "learn" {
		learner := &learn.Learner{
			Documents:   m.DocumentService,
			Web:         clawhttp.NewFetcher(),
			Man:         manpage.NewFetcher(),
			Extractor:   trafilatura.NewExtractor(),
			Fallback:    goquery.NewExtractor(),
			Converter:   htmltomarkdown.NewConverter(),
			Markdown:    goldmark.NewParser(),
			Refpage:     manpage.NewParser(),
			Limiter:     learn.NewHostLimiter(webFetchRPS),
			Concurrency: cli.Learn.Concurrency,
			Logger:      logger,
		}
		deps.BatchLearner = learner
		deps.Learner = clawslog.NewLoggingLearner(learner, logger)
	}

	if cmd == "ask" {
		deps.Asker = index.NewAsker(m.DocumentService, logger)
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("CLAWDOC_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "clawdoc.db"
	}
	dir := filepath.Join(home, ".clawdoc")
	_ = os.MkdirAll(dir, 0o755)
	return filepath.Join(dir, "clawdoc.db")
}
