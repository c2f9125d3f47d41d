package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"debt-planner/config"
	"debt-planner/logger"
	"debt-planner/money"
	"debt-planner/repository"
	"debt-planner/service"
	"debt-planner/tui"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file (yaml, toml or json)")
	flag.Parse()

	if err := run(configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	_ = godotenv.Load()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// The terminal belongs to the UI, so logs only go to a file.
	log := logger.Nop()
	if cfg.Log.File != "" {
		if log, err = logger.New(logger.Config{Level: cfg.Log.Level, File: cfg.Log.File}); err != nil {
			return err
		}
	}
	defer func() { _ = log.Sync() }()

	cache := repository.NewMemoryCache()
	defer cache.Stop()
	formatter := money.NewFormatter(cfg.Planner.Currency)

	projection := service.NewProjectionService(cache, cfg.Cache.TTL, cfg.Planner.MaxMonths, formatter, logger.Component(log, "projection"))
	strategy := service.NewStrategyService(cache, service.StrategySettings{
		Mode:      cfg.Mode(),
		MinBudget: cfg.Planner.MinBudget,
		MaxLoans:  cfg.Planner.MaxLoans,
		MaxMonths: cfg.Planner.MaxMonths,
		CacheTTL:  cfg.Cache.TTL,
	}, formatter, logger.Component(log, "strategy"))

	model := tui.New(projection, strategy, formatter, logger.Component(log, "tui"))

	log.Info("starting terminal UI", zap.String("allocation_mode", string(cfg.Mode())))
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run terminal UI: %w", err)
	}
	return nil
}
