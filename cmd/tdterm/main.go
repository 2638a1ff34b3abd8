package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go-grid-defense/internal/app"
	"go-grid-defense/internal/config"
	"go-grid-defense/internal/sound"
	"go-grid-defense/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	opts := app.RegisterFlags(flag.CommandLine)
	logFile := flag.String("log", "tdterm.log", "file for log output; the terminal is busy drawing")
	mute := flag.Bool("mute", false, "disable sound cues")
	flag.Parse()

	if f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
		log.SetOutput(f)
		defer f.Close()
	}

	game, err := app.NewSession(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	cues := sound.NewCues()
	if !*mute {
		if err := cues.Initialize(); err != nil {
			// Non-fatal, game can run without sound
			log.Printf("Audio initialization failed: %v", err)
		}
		defer cues.Cleanup()
	}
	cues.Subscribe(game.EventDispatcher)

	run(screen, game)
}

func run(screen tcell.Screen, game *app.Game) {
	view := term.NewView(screen, game)

	ticker := time.NewTicker(config.TerminalTickMs * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- screen.PollEvent()
		}
	}()

	last := time.Now()
	var gameOverFor float64
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !view.HandleKey(ev) {
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			case nil:
				// Screen finalized
				return
			}

		case now := <-ticker.C:
			deltaTime := min(now.Sub(last).Seconds(), config.MaxDeltaTime)
			last = now

			if game.Outcome() != app.Playing {
				gameOverFor += deltaTime
				if gameOverFor >= config.GameOverDelay {
					gameOverFor = 0
					if err := game.BeginNewGame(); err != nil {
						log.Printf("Не удалось начать новую игру: %v", err)
					}
				}
			} else {
				game.Update(deltaTime)
			}
			view.Draw()
		}
	}
}
