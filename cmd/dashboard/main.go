// Package main is the entry point of the study dashboard, an interactive
// console for tracking a degree program: modules per semester, recorded
// examinations, credit progress and the weighted grade average.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/studyhub/study-dashboard/config"
	"github.com/studyhub/study-dashboard/internal/application/command"
	"github.com/studyhub/study-dashboard/internal/application/seed"
	"github.com/studyhub/study-dashboard/internal/domain/curriculum"
	"github.com/studyhub/study-dashboard/internal/infrastructure/export"
	"github.com/studyhub/study-dashboard/internal/infrastructure/persistence/snapshot"
	"github.com/studyhub/study-dashboard/internal/infrastructure/persistence/sqlite"
	"github.com/studyhub/study-dashboard/internal/interface/console"
	"github.com/studyhub/study-dashboard/internal/interface/console/presenter"
	"github.com/studyhub/study-dashboard/pkg/logger"
	"github.com/studyhub/study-dashboard/pkg/timeutil"
)

func main() {
	configPath := flag.String("config", "", "path to a config file (default: ./config/config.yaml or ./config.yaml)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *configPath); err != nil {
		fmt.Fprintf(os.Stderr, "fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath string) error {
	// ─────────────────────────────────────────────────────────────────────────
	// 1. Configuration
	// ─────────────────────────────────────────────────────────────────────────
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 2. Logging
	// ─────────────────────────────────────────────────────────────────────────
	logOpts := logger.DefaultOptions()
	logOpts.Level = logger.ParseLevel(cfg.Log.Level)
	logOpts.Format = cfg.Log.Format
	logOpts.AddCaller = cfg.IsDevelopment()
	log := logger.New(logOpts)
	defer func() { _ = log.Sync() }()

	log.Info("starting study dashboard",
		logger.String("env", string(cfg.App.Environment)),
		logger.String("storage", cfg.Storage.Driver),
		logger.Path(cfg.DataPath()),
	)

	// ─────────────────────────────────────────────────────────────────────────
	// 3. Storage
	// ─────────────────────────────────────────────────────────────────────────
	store, closeStore, err := openStore(cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	prompt := console.NewPrompter(os.Stdin, os.Stdout)
	prompt.Printf("\n%s", presenter.Banner("WELCOME TO THE STUDY DASHBOARD"))

	// ─────────────────────────────────────────────────────────────────────────
	// 4. Program
	// ─────────────────────────────────────────────────────────────────────────
	program, err := loadOrCreate(ctx, store, prompt)
	if errors.Is(err, console.ErrInputClosed) {
		return nil
	}
	if err != nil {
		return err
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 5. Menu
	// ─────────────────────────────────────────────────────────────────────────
	menu := console.NewMenu(console.Deps{
		Program: program,
		Store:   store,
		CSV:     export.NewCSVExporter(cfg.CSVExportPath(), cfg.Delimiter(), log),
		XLSX:    export.NewXLSXExporter(cfg.XLSXExportPath(), log),
		Log:     log,
	}, prompt)

	done := make(chan error, 1)
	go func() { done <- menu.Run(ctx) }()

	select {
	case <-ctx.Done():
		// Reads on stdin cannot be interrupted; leave without the save prompt.
		prompt.Printf("\n\n👋 Program terminated.\n")
		log.Info("interrupted")
		return nil
	case err := <-done:
		if err != nil {
			return err
		}
	}

	save, err := prompt.Confirm("Save changes before leaving? (y/n): ")
	if err != nil && !errors.Is(err, console.ErrInputClosed) {
		return err
	}
	if save {
		if err := command.NewSaveProgramHandler(program, store, log).Handle(ctx); err != nil {
			return err
		}
		prompt.Printf("✓ Data saved to: %s\n", cfg.DataPath())
	}
	return nil
}

func openStore(cfg *config.Config, log *logger.Logger) (curriculum.Store, func(), error) {
	switch cfg.Storage.Driver {
	case config.DriverSQLite:
		db, err := sqlite.Open(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open database: %w", err)
		}
		store := sqlite.NewStore(db, log)
		return store, func() {
			if err := store.Close(); err != nil {
				log.Warn("failed to close database", logger.Err(err))
			}
		}, nil
	default:
		return snapshot.NewStore(cfg.Storage.SnapshotPath, log), func() {}, nil
	}
}

func loadOrCreate(ctx context.Context, store curriculum.Store, prompt *console.Prompter) (*curriculum.Program, error) {
	program, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load saved data: %w", err)
	}
	if program != nil {
		prompt.Printf("\n✓ Loaded saved program: %s\n", program.Name())
		return program, nil
	}

	prompt.Printf("\nNo saved data found.\n")
	sample, err := prompt.Confirm("Create a sample program? (y/n): ")
	if err != nil {
		return nil, err
	}

	start := timeutil.Today()
	if sample {
		program, err = seed.SampleProgram(start)
		if err != nil {
			return nil, err
		}
		prompt.Printf("\n✓ Sample program created!\n")
		prompt.Printf("  → Based on a B.Sc. Cybersecurity curriculum\n")
		return program, nil
	}

	prompt.Printf("\nCreating an empty program...\n")
	program, err = seed.EmptyProgram(start)
	if err != nil {
		return nil, err
	}
	prompt.Printf("✓ Empty program created!\n")
	return program, nil
}
