package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/rileylov/dockbar/internal/kv"
	"github.com/rileylov/dockbar/internal/logging"
	"github.com/rileylov/dockbar/internal/toolbar"
	"github.com/rileylov/dockbar/internal/ui"
)

func defaultStatePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "dockbar-state.json"
	}
	return filepath.Join(dir, "dockbar", "state.json")
}

func main() {
	cfg := toolbar.CellConfig()

	fs := flag.NewFlagSet("dockbar", flag.ExitOnError)
	statePath := fs.String("state", defaultStatePath(), "File the toolbar position is saved to")
	prefix := fs.String("prefix", "toolbar", "Key prefix for the saved slots")
	logPath := fs.String("log-file", "", "Append logs to file (created if missing)")
	debug := fs.Bool("debug", false, "Debug logs")
	breakpoint := fs.Int("breakpoint", ui.DefaultBreakpoint, "Terminal width below which the toolbar docks to edges")
	fs.Float64Var(&cfg.MoveThreshold, "move-threshold", cfg.MoveThreshold, "Cells the pointer must travel before a press becomes a drag")
	fs.DurationVar(&cfg.TapSuppressWindow, "tap-window", cfg.TapSuppressWindow, "How long a click on the pill is ignored after a drag")
	_ = fs.Parse(os.Args[1:])

	if err := cfg.Validate(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(2)
	}

	log, closeLog, err := logging.New(*logPath, *debug)
	if err != nil {
		fmt.Println("Error opening log:", err)
		os.Exit(1)
	}
	defer closeLog()

	slots, err := kv.OpenFile(*statePath)
	if err != nil {
		fmt.Println("Error opening state:", err)
		os.Exit(1)
	}
	log.Info("starting", zap.String("state", slots.Path()), zap.Int("breakpoint", *breakpoint))

	m := ui.New(ui.Options{
		Config:     cfg,
		Breakpoint: *breakpoint,
		Slots:      slots,
		Prefix:     *prefix,
		Logger:     log,
		Clock:      time.Now,
	})
	defer m.Close()

	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run(); err != nil {
		fmt.Println("Error running program:", err)
		os.Exit(1)
	}
}
