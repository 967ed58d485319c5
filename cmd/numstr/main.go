// numstr spells numbers in plain English.
//
// Usage:
//
//	numstr [flags] [number]
//
//	numstr 1234               Spell the given number
//	numstr 12.34              Decimals work too
//	numstr -max               Spell the largest supported value
//	numstr                    Spell a random numeric string
//	numstr -serve -port 4000  Serve the speller as a JSON API
//
// The number may be an integer with optional underscores ("1_000") or a
// decimal ("12.34"). Output is "<number>: <words>" on stdout.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/leoconst/number-string/internal/app"
	"github.com/leoconst/number-string/internal/appconf"
	"github.com/leoconst/number-string/internal/logging"
	"github.com/leoconst/number-string/internal/words"
)

func main() {
	var (
		configPath string
		useMax     bool
		noAnd      bool
		serve      bool
	)
	cfg := appconf.Default()

	port := flag.Int("port", cfg.Port, "API server port")
	env := flag.String("env", cfg.Env, "Environment (development|staging|production)")
	apiKeys := flag.String("api-keys", "", "Comma separated API keys")
	flag.StringVar(&configPath, "config", "", "Path to a YAML config file")
	flag.BoolVar(&useMax, "max", false, "Spell the maximum representable value")
	flag.BoolVar(&noAnd, "no-and", false, `Omit "and" between hundreds and tens`)
	flag.BoolVar(&serve, "serve", false, "Run the HTTP API instead of spelling once")
	flag.Parse()

	logger := logging.NewTextLogger(os.Stderr, slog.LevelInfo)

	if configPath != "" {
		loaded, err := appconf.Load(configPath)
		if err != nil {
			logger.Error("failed to load config", "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	// Explicitly set flags win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "port":
			cfg.Port = *port
		case "env":
			cfg.Env = *env
		case "api-keys":
			cfg.APIKeys = splitKeys(*apiKeys)
		case "no-and":
			cfg.UseAnd = !noAnd
		}
	})

	application := app.New(cfg, logger)

	if serve {
		serveAPI(application)
		return
	}

	input := flag.Arg(0)
	switch {
	case useMax:
		input = words.MaxValue().String()
	case input == "":
		input = application.Random.NumberString(cfg.MaxIntegerDigits, cfg.MaxDecimalDigits)
	}

	phrase, err := application.Speller.Number(input)
	if err != nil {
		logging.LogError(logger, "cannot spell number", err, slog.String("input", input))
		os.Exit(1)
	}

	fmt.Printf("%s: %s\n", input, phrase)
}

func splitKeys(flagValue string) []string {
	if flagValue == "" {
		return nil
	}
	keys := strings.Split(flagValue, ",")
	for i := range keys {
		keys[i] = strings.TrimSpace(keys[i])
	}
	return keys
}
