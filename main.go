package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"LocalDoodle/internal/config"
	"LocalDoodle/internal/state"
	"LocalDoodle/internal/ui"
)

func main() {
	configPath := flag.String("config", config.ConfigPath(), "path to config.toml")
	writeConfig := flag.Bool("write-config", false, "write the effective config to -config and exit")
	flag.Parse()

	loader := config.NewLoader(*configPath)
	cfg, err := loader.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *writeConfig {
		if err := config.Save(*configPath, cfg); err != nil {
			log.Fatalf("Failed to write config: %v", err)
		}
		log.Printf("Wrote config to %s", *configPath)
		return
	}

	level := new(slog.LevelVar)
	level.Set(cfg.LogLevel())
	state.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	brush, err := cfg.InitialBrush()
	if err != nil {
		log.Fatalf("Invalid brush in config: %v", err)
	}
	board, err := state.NewBoard(
		state.WithBrush(brush),
		state.WithHistory(state.WithMaxDepth(cfg.History.MaxDepth)),
	)
	if err != nil {
		log.Fatalf("Failed to create board: %v", err)
	}

	loader.OnChange(func(c *config.Config) {
		log.Println("[CONFIG] Reloaded")
		level.Set(c.LogLevel())
		board.SetMaxDepth(c.History.MaxDepth)
	})
	if err := loader.Watch(); err != nil {
		log.Printf("[CONFIG] Not watching %s: %v", *configPath, err)
	} else {
		go func() {
			for err := range loader.Errors() {
				log.Printf("[CONFIG] %v", err)
			}
		}()
	}
	defer loader.Close()

	log.Println("Starting Local Doodle")
	ui.RunApp(board, cfg)
}
