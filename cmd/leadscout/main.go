package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/leadscout"
	"github.com/fwojciec/leadscout/extract"
	"github.com/fwojciec/leadscout/gemini"
	"github.com/fwojciec/leadscout/goquery"
	leadhttp "github.com/fwojciec/leadscout/http"
	"github.com/fwojciec/leadscout/rod"
	"github.com/fwojciec/leadscout/sqlite"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
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
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	BusinessService leadscout.BusinessService
	RunService      leadscout.RunService
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
	// Credentials can live in a .env file alongside the binary.
	_ = godotenv.Load()

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("leadscout"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'leadscout --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set LEADSCOUT_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.BusinessService = sqlite.NewBusinessService(m.DB)
	m.RunService = sqlite.NewRunService(m.DB)
	deps.DB = m.DB
	deps.Businesses = m.BusinessService
	deps.Runs = m.RunService

	// The scout command needs search, fetch, and inference backends.
	if cmd == "scout" {
		username := os.Getenv("OXYLABS_USERNAME")
		password := os.Getenv("OXYLABS_PASSWORD")
		if username == "" || password == "" {
			fmt.Fprintln(stderr, "OXYLABS_USERNAME and OXYLABS_PASSWORD environment variables not set. Sign up at https://oxylabs.io")
			return fmt.Errorf("Oxylabs credentials not set")
		}
		deps.Searcher = leadhttp.NewSERPClient(username, password)

		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		inferencer := gemini.NewInferencer(client, gemini.DefaultModel)
		deps.Extractor = extract.NewExtractor(inferencer, goquery.NewParser())
		deps.Qualifier = extract.NewClassifier(inferencer)

		if cli.Scout.Static {
			deps.Fetcher = leadhttp.NewFetcher()
		} else {
			fetcher, err := rod.NewFetcher()
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed, or use --static for plain HTTP fetching")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			deps.Fetcher = fetcher
		}
		defer deps.Fetcher.Close()
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("LEADSCOUT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "leadscout.db"
	}
	dir := filepath.Join(home, ".leadscout")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "leadscout.db")
}
