// roomsense is a terminal monitor for a simulated humidity/temperature
// sensor: take readings on demand or in timed batches, keep them in a
// local sqlite database, and watch alarm thresholds live.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/luki/roomsense/internal/app"
	"github.com/luki/roomsense/internal/config"
	"github.com/luki/roomsense/internal/logging"
	"github.com/luki/roomsense/internal/sensor"
	"github.com/luki/roomsense/internal/store"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "roomsense: %v\n", err)
		os.Exit(1)
	}

	logger, logFile, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "roomsense: open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	logger.Info("starting", "db", cfg.DBPath, "logLevel", cfg.LogLevel.String())

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		logger.Error("store open", "error", err)
		fmt.Fprintf(os.Stderr, "roomsense: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(
		app.New(st, sensor.NewGenerator(), logger),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "roomsense: %v\n", err)
		os.Exit(1)
	}

	if m, ok := final.(app.Model); ok {
		if ferr := m.Fatal(); ferr != nil {
			fmt.Fprintf(os.Stderr, "roomsense: %v\n", ferr)
			os.Exit(1)
		}
	}

	logger.Info("exited")
}
