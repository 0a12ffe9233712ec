package app

import (
	"context"
	"errors"
	"flag"
	"io"

	"github.com/rs/zerolog"

	"github.com/agbru/paracc/internal/config"
	"github.com/agbru/paracc/internal/logging"
	"github.com/agbru/paracc/internal/metrics"
	"github.com/agbru/paracc/internal/orchestration"
	"github.com/agbru/paracc/internal/ui"
)

// Application represents the paracc application instance.
type Application struct {
	Config    config.AppConfig
	Registry  *orchestration.Registry
	Metrics   *metrics.Collector
	Logger    logging.Logger
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithRegistry sets a custom runner registry for the application.
func WithRegistry(r *orchestration.Registry) AppOption {
	return func(a *Application) { a.Registry = r }
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
// args[0] is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	availableAlgos := []string{orchestration.ParallelName, orchestration.SequentialName}
	if app.Registry != nil {
		availableAlgos = app.Registry.List()
	}

	programName := "paracc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, availableAlgos)
	if err != nil {
		return nil, err
	}
	app.Config = config.ApplyAdaptiveDefaults(cfg)

	app.Metrics = metrics.NewCollector()
	if app.Logger == nil {
		app.Logger = newLogger(app.Config, errWriter)
	}
	if app.Registry == nil {
		app.Registry = orchestration.NewDefaultRegistry(orchestration.Dependencies{
			Logger:  app.Logger,
			Metrics: app.Metrics,
		})
	}
	return app, nil
}

// newLogger picks JSON output when a metrics endpoint is served or errWriter
// is not a terminal, and console output otherwise.
func newLogger(cfg config.AppConfig, errWriter io.Writer) logging.Logger {
	if cfg.MetricsAddr != "" {
		return logging.NewLogger(errWriter, "paracc")
	}
	return logging.NewAutoLogger(errWriter, "paracc", cfg.NoColor)
}

// Run executes the benchmark and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	level := zerolog.InfoLevel
	if a.Config.Verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	ui.InitTheme(a.Config.NoColor)

	if a.Config.MetricsAddr != "" {
		stop := a.startMetricsServer(ctx)
		defer stop()
	}
	return a.runReduce(ctx, out)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
