package app

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"minigrep/internal/model"
	"minigrep/internal/output"
	"minigrep/internal/search"
)

// App represents a single configured run
type App struct {
	cfg     model.Config
	out     io.Writer
	printer output.Printer
	log     *log.Logger
}

// Option customizes an App
type Option func(*App)

// WithOutput sets where matches are written (default os.Stdout)
func WithOutput(w io.Writer) Option {
	return func(a *App) { a.out = w }
}

// WithPrinter sets how matches are rendered (default output.Plain{})
func WithPrinter(p output.Printer) Option {
	return func(a *App) { a.printer = p }
}

// WithLogger sets the diagnostics logger (default discards everything)
func WithLogger(l *log.Logger) Option {
	return func(a *App) { a.log = l }
}

// New creates a new App instance
func New(cfg model.Config, opts ...Option) *App {
	a := &App{
		cfg:     cfg,
		out:     os.Stdout,
		printer: output.Plain{},
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.log == nil {
		a.log = log.New()
		a.log.SetOutput(io.Discard)
	}
	return a
}

// Run searches the configured file and prints every matching line.
func (a *App) Run() error {
	res, err := a.Search()
	if err != nil {
		return err
	}

	if err := a.printer.Print(a.out, res); err != nil {
		return fmt.Errorf("writing results: %w", err)
	}
	return nil
}

// Search loads the configured file and returns the matching lines.
func (a *App) Search() (model.Result, error) {
	fields := log.Fields{
		"query":       a.cfg.Query,
		"file":        a.cfg.FilePath,
		"ignore_case": a.cfg.IgnoreCase,
	}
	a.log.WithFields(fields).Debug("Searching")

	contents, err := model.ReadContents(a.cfg.FilePath)
	if err != nil {
		a.log.WithFields(fields).WithError(err).Debug("Failed to read file")
		return model.Result{}, err
	}

	res := Match(a.cfg, contents)
	a.log.WithFields(fields).WithField("matches", len(res.Matches)).Debug("Search complete")
	return res, nil
}

// Match runs the query of cfg against contents already in memory.
func Match(cfg model.Config, contents string) model.Result {
	return model.Result{
		Query:      cfg.Query,
		File:       cfg.FilePath,
		IgnoreCase: cfg.IgnoreCase,
		Matches:    search.Locate(contents, Lines(cfg, contents)),
	}
}

// Lines dispatches to the case-sensitive or case-insensitive search.
func Lines(cfg model.Config, contents string) []string {
	if cfg.IgnoreCase {
		return search.SearchCaseInsensitive(cfg.Query, contents)
	}
	return search.Search(cfg.Query, contents)
}
