// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/danielhkuo/election-desk/auth"
	"github.com/danielhkuo/election-desk/cliparse"
	"github.com/danielhkuo/election-desk/console"
	"github.com/danielhkuo/election-desk/election"
	"github.com/danielhkuo/election-desk/registry"
	"github.com/danielhkuo/election-desk/storage"
	"github.com/danielhkuo/election-desk/workflow"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		return 2
	}

	logger, err := console.NewLogger(os.Stderr, cfg.LogLevel)
	if err != nil {
		slog.Error("Error creating logger", "error", err)
		return 2
	}
	slog.SetDefault(logger)

	ctx := context.Background()

	store, err := storage.Open(ctx, cfg)
	if err != nil {
		slog.Error("store open failed, records will not be loaded or saved", "store", cfg.StoreType, "error", err)
		store = storage.Unavailable(err)
	}

	gate, err := auth.LoadCredentialsFile(cfg.AdminFile)
	if err != nil {
		slog.Warn("admin credentials unavailable, only the built-in login works", "error", err)
	}
	slog.Info("admin credentials loaded", "admins", gate.Admins())

	policy := registry.SymbolRelease
	if cfg.RetainStaleSymbols {
		policy = registry.SymbolRetain
	}
	sys := election.New(registry.New(registry.WithSymbolPolicy(policy)), store)
	sys.Load(ctx)
	defer sys.Close(ctx)

	prompter := console.NewPrompter(os.Stdin, os.Stdout)

	// Ctrl-C only interrupts the prompter; the deferred Close still runs
	// here on the main goroutine
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(ctrlc)
	go func() {
		<-ctrlc
		prompter.Interrupt()
	}()

	err = console.New(prompter, sys.Registry(), gate).Run()
	if errors.Is(err, workflow.ErrInterrupted) {
		slog.Info("interrupted, saving records")
		return 130
	}
	if errors.Is(err, workflow.ErrEndOfInput) {
		slog.Info("input closed, saving records")
		return 0
	}
	if err != nil {
		slog.Error("session ended", "error", err)
		return 1
	}
	return 0
}
