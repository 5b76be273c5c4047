package application

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/eugenenazirov/minigrep/internal/config"
	"github.com/eugenenazirov/minigrep/internal/output"
	"github.com/eugenenazirov/minigrep/internal/search"
)

// App holds everything needed for one search run.
type App struct {
	cfg       config.Config
	logger    *zap.Logger
	out       io.Writer
	highlight bool
	readFile  func(name string) ([]byte, error)
}

// Option configures App behaviour.
type Option func(*App)

// WithOutput sets where matching lines are written. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(a *App) {
		a.out = w
	}
}

// WithHighlight enables colouring of matches in printed lines.
func WithHighlight(enabled bool) Option {
	return func(a *App) {
		a.highlight = enabled
	}
}

// New wires the application from the provided configuration.
func New(cfg config.Config, logger *zap.Logger, opts ...Option) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &App{
		cfg:      cfg,
		logger:   logger,
		out:      os.Stdout,
		readFile: os.ReadFile,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Run searches cfg.Filename for cfg.Query and prints matches to stdout.
func Run(cfg config.Config) error {
	return New(cfg, nil).Run()
}

// Run loads the whole file, searches it and prints the matching lines. When
// the file cannot be loaded nothing is printed. No matches is not an error.
func (a *App) Run() error {
	contents, err := a.load()
	if err != nil {
		return err
	}
	a.logger.Debug("file loaded",
		zap.String("path", a.cfg.Filename),
		zap.Int("bytes", len(contents)),
	)

	results := search.For(a.cfg.CaseSensitive)(a.cfg.Query, contents)
	a.logger.Debug("search completed",
		zap.Bool("case_sensitive", a.cfg.CaseSensitive),
		zap.Int("matches", len(results)),
	)

	var opts []output.PrinterOption
	if a.highlight {
		opts = append(opts, output.WithHighlight(a.cfg.Query, a.cfg.CaseSensitive))
	}
	if err := output.NewPrinter(a.out, opts...).Print(results); err != nil {
		return &IOError{Path: StdoutPath, Err: err}
	}
	return nil
}

func (a *App) load() (string, error) {
	data, err := a.readFile(a.cfg.Filename)
	if err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			err = pathErr.Err
		}
		return "", &IOError{Path: a.cfg.Filename, Err: err}
	}
	if !utf8.Valid(data) {
		return "", &IOError{Path: a.cfg.Filename, Err: ErrInvalidUTF8}
	}
	return string(data), nil
}
