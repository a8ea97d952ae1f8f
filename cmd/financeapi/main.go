/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Command financeapi serves the account API over HTTP.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/suparena/financeapi"
	"github.com/suparena/financeapi/accounts"
	"github.com/suparena/financeapi/auth"
	"github.com/suparena/financeapi/config"
	"github.com/suparena/financeapi/datastore/ddb"
	"github.com/suparena/financeapi/httpd"
	"github.com/suparena/financeapi/storagemodels"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")
)

func main() {
	flag.Parse()

	if *versionFlag || *vFlag {
		info := financeapi.GetVersionInfo()
		fmt.Printf("financeapi version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "financeapi: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logrus.New()
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	log.SetLevel(level)
	log.SetFormatter(&logrus.JSONFormatter{})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := ddb.NewClient(ctx, cfg.AccessKey, cfg.SecretAccessKey, cfg.Region, cfg.Endpoint)
	if err != nil {
		return fmt.Errorf("failed to create store client: %w", err)
	}

	storagemodels.RegisterKeyMaps()

	accountStore, err := ddb.New[storagemodels.Account](client, cfg.TableName(cfg.AccountsContainerID))
	if err != nil {
		return err
	}
	userStore, err := ddb.New[storagemodels.User](client, cfg.TableName(cfg.UsersContainerID))
	if err != nil {
		return err
	}

	tokens, err := auth.NewTokenHelper(cfg.SecretKey, cfg.Algorithm, cfg.AccessTokenExpireMinutes)
	if err != nil {
		return err
	}

	svc := accounts.NewService(accountStore, cfg, log)
	gate := auth.NewGate(tokens, userStore, log)
	server := httpd.New(svc, gate, cfg, log)

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
