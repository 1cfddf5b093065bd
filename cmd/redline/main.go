package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/davevdl/redline/internal/app"
	"github.com/davevdl/redline/internal/boot"
	"github.com/davevdl/redline/internal/config"
	"github.com/davevdl/redline/internal/dlog"
	"github.com/davevdl/redline/internal/scene"
	"github.com/davevdl/redline/internal/ui"
)

var version = "0.1.0-alpha"

func main() {
	// Load .env file if it exists (ignore error if file doesn't exist)
	_ = godotenv.Load()

	configPath := flag.String("config", envOr("REDLINE_CONFIG", "assets/game.yaml"), "Path to the game configuration asset")
	logPath := flag.String("log", "", "Diagnostic log file (stderr if empty; the TUI owns the terminal)")
	quiet := flag.Bool("quiet", false, "Suppress info/warning diagnostics")
	theme := flag.String("theme", "catppuccin", "Color theme")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "redline [--config path] [--log path] [--quiet] [--theme name] | asset init|validate <path> | version\n")
	}
	flag.Parse()

	args := flag.Args()
	if len(args) > 0 {
		switch args[0] {
		case "version":
			fmt.Println("redline", version)
			return
		case "asset":
			if len(args) < 3 {
				log.Fatal("asset requires 'init <path>' or 'validate <path>'")
			}
			switch args[1] {
			case "init":
				if err := writeDefaultAsset(args[2]); err != nil {
					log.Fatal(err)
				}
				fmt.Println("Asset written:", args[2])
			case "validate":
				draft, err := config.ReadDraftFile(args[2])
				if err != nil {
					log.Fatal(err)
				}
				if err := draft.Validate(); err != nil {
					fmt.Fprintln(os.Stderr, err)
					os.Exit(1)
				}
				fmt.Println("Asset valid:", args[2])
			default:
				log.Fatal("unknown asset action; use init|validate")
			}
			return
		}
	}

	if *quiet {
		dlog.SetEnabled(false)
	}
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("failed to open log file: %v", err)
		}
		defer f.Close()
		dlog.SetOutput(f)
	}

	// A missing or unreadable asset is an expected state: the bootstrapper
	// detects it, logs, and halts the hand-off while the shell keeps running.
	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		dlog.Warn("configuration asset unavailable: " + err.Error())
		cfg = nil
	}

	registry := scene.NewRegistry()
	director := scene.NewDirector(registry)
	if err := ui.RegisterScenes(registry, director, cfg, version); err != nil {
		log.Fatalf("scene registration failed: %v", err)
	}

	host := app.NewHost(boot.New(cfg, director))

	ctx := context.Background()
	if err := ui.Run(ctx, director, host, *theme, version); err != nil {
		log.Fatal(err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func writeDefaultAsset(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	return config.DefaultDraft().Encode(f)
}
