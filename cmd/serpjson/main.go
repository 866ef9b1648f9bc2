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
	"github.com/fwojciec/serpjson"
	"github.com/fwojciec/serpjson/fs"
	"github.com/fwojciec/serpjson/goquery"
	"github.com/fwojciec/serpjson/htmltomarkdown"
	serpslog "github.com/fwojciec/serpjson/slog"
	"github.com/fwojciec/serpjson/sqlite"
	"github.com/fwojciec/serpjson/yaml"
)

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
	// Database path used when neither --db nor SERPJSON_DB is set.
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	SnapshotService serpjson.SnapshotService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
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
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("serpjson"),
		kong.Description("Convert saved search result pages to structured JSON"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'serpjson --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	cfg, err := yaml.LoadConfig(cli.Config)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", serpjson.ErrorMessage(err))
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	extractor, err := goquery.NewExtractor(goquery.WithConfig(cfg))
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", serpjson.ErrorMessage(err))
		return err
	}

	// Wire core services into dependencies
	deps.Logger = logger
	deps.Read = fs.ReadFile
	deps.Extractor = serpslog.NewLoggingExtractor(extractor, logger)
	deps.Cleaner = serpslog.NewLoggingCleaner(goquery.NewCleaner(), logger)
	deps.Converter = htmltomarkdown.NewConverter(cfg.Origin)
	deps.NewOutputStore = newOutputStore

	// Open the archive only for commands that use it
	if needsDB(cmd, cli) {
		dbPath := cli.DB
		if dbPath == "" {
			dbPath = m.DBPath
		}
		m.DB = sqlite.NewDB(dbPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set SERPJSON_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", dbPath, err)
		}
		defer m.Close()

		m.SnapshotService = sqlite.NewSnapshotService(m.DB)
		deps.Snapshots = m.SnapshotService
	}

	return kongCtx.Run(deps)
}

func needsDB(cmd string, cli *CLI) bool {
	switch cmd {
	case "history", "show", "delete":
		return true
	case "convert":
		return cli.Convert.Archive
	}
	return false
}

// newOutputStore stages outputs next to dir and moves them into it on commit.
func newOutputStore(dir string) serpjson.OutputStore {
	dir = filepath.Clean(dir)
	return fs.NewFileStore(filepath.Dir(dir), filepath.Base(dir))
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "serpjson.db"
	}
	dir := filepath.Join(home, ".serpjson")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "serpjson.db")
}
