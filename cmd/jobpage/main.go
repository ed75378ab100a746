package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/jobpage"
	"github.com/fwojciec/jobpage/etree"
	"github.com/fwojciec/jobpage/fs"
	"github.com/fwojciec/jobpage/github"
	"github.com/fwojciec/jobpage/goquery"
	"github.com/fwojciec/jobpage/html"
	"github.com/fwojciec/jobpage/htmltomarkdown"
	jobhttp "github.com/fwojciec/jobpage/http"
	"github.com/fwojciec/jobpage/publish"
	jobslog "github.com/fwojciec/jobpage/slog"
	"github.com/fwojciec/jobpage/sqlite"
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
	// Database path. Set before calling Run(); --db overrides it.
	DBPath string

	// Stdin is read by commands given "-" as input.
	Stdin io.Reader

	// SQLite database, opened only by commands that store jobs.
	DB *sqlite.DB

	// Now returns the publishing time. Defaults to time.Now.
	Now func() time.Time
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
		Stdin:  os.Stdin,
		Now:    time.Now,
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
	if m.Now == nil {
		m.Now = time.Now
	}
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
		Now:    m.Now,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("jobpage"),
		kong.Description("Turn job listing snapshots into published static pages."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'jobpage --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	config := cli.Config()
	if err := config.Validate(); err != nil {
		return err
	}
	deps.Config = config

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var extractor jobpage.Extractor = goquery.NewExtractor()
	var fetcher jobpage.Fetcher = jobhttp.NewFetcher()
	if cli.Debug {
		extractor = jobslog.NewLoggingExtractor(extractor, logger)
		fetcher = jobslog.NewLoggingFetcher(fetcher, logger)
	}
	renderer := html.NewRenderer()
	deps.Extractor = extractor
	deps.Fetcher = fetcher
	deps.Builder = jobpage.NewBuilder(config, html.NewSanitizer())
	deps.Renderer = renderer
	deps.Converter = htmltomarkdown.NewConverter()

	if cmd == "list" || cmd == "delete" || (cmd == "publish" && cli.Publish.Save) {
		path := m.DBPath
		if cli.DB != "" {
			path = cli.DB
		}
		m.DB = sqlite.NewDB(path)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set JOBPAGE_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", path, err)
		}
		defer m.Close()

		var jobs jobpage.JobService = sqlite.NewJobService(m.DB)
		if cli.Debug {
			jobs = jobslog.NewLoggingJobService(jobs, logger)
		}
		deps.Jobs = jobs
	}

	if cmd == "publish" || cmd == "index" {
		local := cli.Publish.Local
		if cmd == "index" {
			local = cli.Index.Local
		}

		var repo jobpage.Repository
		if local != "" {
			repo = fs.NewRepository(local)
		} else {
			if cli.Token == "" {
				fmt.Fprintln(stderr, "Hint: Set GITHUB_TOKEN, or use --local to publish into a directory")
				return jobpage.Errorf(jobpage.EINVALID, "GITHUB_TOKEN not set")
			}
			repo = github.NewRepository(cli.Token)
		}
		if cli.Debug {
			repo = jobslog.NewLoggingRepository(repo, logger)
		}

		svc := publish.NewService(repo, renderer, goquery.NewEntryScanner(), config)
		svc.Sitemap = etree.NewSitemapBuilder()
		svc.Now = m.Now
		deps.Publisher = svc
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("JOBPAGE_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "jobpage.db"
	}
	dir := filepath.Join(home, ".jobpage")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "jobpage.db")
}
