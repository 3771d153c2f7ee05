package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/alpha-strike/config"
	"github.com/lixenwraith/alpha-strike/core"
)

var (
	configFlag = flag.String("config", config.DefaultPath, "Path to the TOML config file")
	debugFlag  = flag.Bool("debug", false, "Write debug log to logs/alpha-strike.log")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	cfg, generated, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if f := setupLogging(*debugFlag || cfg.Log.Debug); f != nil {
		defer f.Close()
	}

	// First run: persist the generated player id so the ledger stays keyed to it
	if generated {
		if err := cfg.Save(*configFlag); err != nil {
			log.Printf("Config: failed to persist player id: %v", err)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.SetCrashTerminal(screen)
	// Normal exit terminal cleanup
	defer screen.Fini()

	screen.HideCursor()
	screen.Clear()

	a := newApp(cfg, screen)
	a.resize()
	if err := a.start(); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}
	defer a.stop()

	log.Printf("Alpha Strike started: player %s (%s)", cfg.Player.Name, cfg.Player.ID)
	a.run()
}
