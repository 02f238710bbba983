package main

import (
	"context"
	"fmt"
	"io"
	stdslog "log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/vidmeta"
	"github.com/fwojciec/vidmeta/extract"
	vidhttp "github.com/fwojciec/vidmeta/http"
	"github.com/fwojciec/vidmeta/ndtv"
	vidslog "github.com/fwojciec/vidmeta/slog"
	"github.com/fwojciec/vidmeta/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// requestsPerSecond is the per-domain fetch rate. The supported sites are
// shared infrastructure, so requests within one domain are serialized.
const requestsPerSecond = 1.0

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	RecordService vidmeta.RecordService
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
		kong.Name("vidmeta"),
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
		return fmt.Errorf("no command specified. Run 'vidmeta --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set VIDMETA_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.RecordService = sqlite.NewRecordService(m.DB)
	deps.DB = m.DB
	deps.Records = m.RecordService

	// Wire command-specific dependencies based on command
	if cmd == "extract" {
		fetcher := vidhttp.NewFetcher()
		defer fetcher.Close()

		logWriter := io.Discard
		if cli.Extract.Verbose {
			logWriter = stderr
		}
		logger := stdslog.New(stdslog.NewTextHandler(logWriter, nil))

		deps.Fetcher = fetcher
		deps.Limiter = vidhttp.NewDomainLimiter(requestsPerSecond)
		deps.Extractor = vidslog.NewLoggingExtractor(
			extract.NewEngine(extract.NewRouter(ndtv.Variants())),
			logger,
		)
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("VIDMETA_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "vidmeta.db"
	}
	dir := filepath.Join(home, ".vidmeta")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "vidmeta.db")
}
