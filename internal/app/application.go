package app

import (
	"log/slog"

	"github.com/leoconst/number-string/internal/appconf"
	"github.com/leoconst/number-string/internal/randnum"
	"github.com/leoconst/number-string/internal/words"
)

// Application holds the dependencies shared by the CLI and the HTTP
// handlers: configuration, a logger, the speller, and the random
// numeric-string generator.
type Application struct {
	Config  appconf.Config
	Logger  *slog.Logger
	Speller *words.Speller
	Random  *randnum.Generator
}

// New wires an Application from its configuration.
func New(cfg appconf.Config, logger *slog.Logger) *Application {
	return &Application{
		Config:  cfg,
		Logger:  logger,
		Speller: &words.Speller{UseAnd: cfg.UseAnd},
		Random:  randnum.New(nil),
	}
}
