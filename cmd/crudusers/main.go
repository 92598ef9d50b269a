package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"crudusers/internal/config"
	"crudusers/internal/http/handlers"
	applog "crudusers/internal/log"
	"crudusers/internal/repos"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		closer, err := applog.TeeFile(cfg.LogFile)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			defer closer.Close()
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}
	applog.Info(nil, "db.ready", applog.Fields{"dsn": cfg.DBDSN})

	app := handlers.NewApp(cfg, handlers.NewDeps(db, cfg))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	listenErr := make(chan error, 1)
	go func() {
		listenErr <- app.Listen(":" + cfg.Port)
	}()

	exit := 0
	select {
	case err := <-listenErr:
		log.Printf("[server] listen: %v", err)
		exit = 1
	case <-ctx.Done():
		applog.Info(nil, "server.shutdown", nil)
		if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
			log.Printf("[server] shutdown: %v", err)
		}
	}

	if err := db.Close(); err != nil {
		log.Printf("[db] close: %v", err)
	}
	if exit != 0 {
		os.Exit(exit)
	}
}
