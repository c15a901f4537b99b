package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"snake-powerups/config"
	"snake-powerups/game/entity"
	"snake-powerups/game/manager"
	"snake-powerups/game/session"
	"snake-powerups/game/types"
	"snake-powerups/ui"
	"snake-powerups/ui/hud"
	"snake-powerups/ui/terminal"

	"github.com/fatih/color"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "Path to the INI configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		color.Red("Configuration error: %v", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		color.Red("Logging setup failed: %v", err)
		os.Exit(1)
	}
	defer closeLog()

	printBanner()

	board := manager.NewLeaderboardManager(cfg.Leaderboard.Path, logger)
	spawner := manager.NewFoodManager(types.DefaultGrid, manager.NewRandom(uint64(time.Now().UnixNano())))
	sess := session.New(board, spawner, logger)

	logger.Info("starting", "frontend", cfg.Display.Frontend, "leaderboard", board.Path())

	switch cfg.Display.Frontend {
	case config.FrontendTerminal:
		if err := terminal.Run(sess); err != nil {
			logger.Error("terminal front end failed", "err", err)
			closeLog()
			color.Red("%v", err)
			os.Exit(1)
		}
	default:
		ui.Run(sess, cfg.Display.CellSize)
	}

	logger.Info("bye")
}

func newLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, nil, err
	}

	var out io.Writer = os.Stderr
	closeLog := func() {}
	if path := cfg.LogFile(); path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, nil, err
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, err
		}
		out = f
		closeLog = func() { f.Close() }
	}

	handler := slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})
	return slog.New(handler), closeLog, nil
}

func printBanner() {
	color.New(color.FgGreen, color.Bold).Printf("Welcome to %s!\n", hud.Title)
	fmt.Println("Controls:")
	for _, line := range hud.Controls {
		fmt.Printf("- %s\n", line)
	}

	fmt.Println("\nFruit Types:")
	legend := map[entity.FruitKind]string{
		entity.Normal:       "Red: Normal fruit (+%d points)",
		entity.ExtraLife:    "Cyan: Extra life (+1 life, +%d points)",
		entity.DoublePoints: "Purple: Double points (2x points for a while, +%d points)",
	}
	for _, kind := range entity.Kinds() {
		info := kind.Info()
		c := color.RGB(int(info.Color.R), int(info.Color.G), int(info.Color.B))
		c.Printf("- "+legend[kind]+"\n", info.Points)
	}
	fmt.Println("\nStarting game...")
}
