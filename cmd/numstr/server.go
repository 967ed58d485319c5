package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/leoconst/number-string/internal/app"
	"github.com/leoconst/number-string/internal/logging"
	"github.com/leoconst/number-string/internal/restapi"
)

// serveAPI runs the JSON API until the listener fails.
func serveAPI(application *app.Application) {
	// The server logs as JSON; the CLI's text logger stays for startup
	// failures only.
	logger := logging.NewStructuredLogger(os.Stdout, slog.LevelInfo)
	application.Logger = logger

	api := restapi.New(application)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", application.Config.Port),
		Handler:      api.Router(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	logger.Info("starting server", "addr", srv.Addr, "env", application.Config.Env)
	err := srv.ListenAndServe()
	logger.Error(err.Error())
	os.Exit(1)
}
