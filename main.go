package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielhkuo/casino-install/cliparse"
	"github.com/danielhkuo/casino-install/db"
	"github.com/danielhkuo/casino-install/installer"
	"github.com/danielhkuo/casino-install/logger"
	"github.com/danielhkuo/casino-install/metrics"
	"github.com/danielhkuo/casino-install/router"
	"github.com/danielhkuo/casino-install/views"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogMode)
	slog.SetDefault(log)

	dialect, err := db.ParseDialect(cfg.DatabaseType)
	if err != nil {
		slog.Error("invalid database type", "error", err)
		os.Exit(1)
	}

	rec := metrics.New()

	inst, err := installer.New(installer.Options{
		Root:           cfg.Root,
		Dialect:        dialect,
		ConnectTimeout: cfg.ConnectTimeout,
		HashAdminPass:  cfg.HashAdminPass,
		Metrics:        rec,
		Logger:         log,
	})
	if err != nil {
		slog.Error("installer setup failed", "error", err)
		os.Exit(1)
	}

	renderer, err := views.New(nil)
	if err != nil {
		slog.Error("template parsing failed", "error", err)
		os.Exit(1)
	}

	if inst.IsInstalled() {
		slog.Warn("installation already completed; the wizard only shows the complete page", "root", inst.Root())
	}

	// Create router
	mux := router.NewRouter(inst, renderer, rec)

	// Create server
	server := http.Server{
		Handler:           mux,
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
		// Long enough for schema creation against a slow database
		WriteTimeout: 2*cfg.ConnectTimeout + time.Minute,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening",
		"port", cfg.Port,
		"root", inst.Root(),
		"dialect", dialect,
	)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
