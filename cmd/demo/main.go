package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.design/x/clipboard"

	"github.com/milk9111/inputkit/event"
	"github.com/milk9111/inputkit/input"
	"github.com/milk9111/inputkit/script"
)

func main() {
	settingsPath := flag.String("settings", "settings.yaml", "path to the settings yaml")
	scriptPath := flag.String("script", "", "run a tengo input script headless and exit")
	flag.Parse()

	if *scriptPath != "" {
		runScript(*scriptPath)
		return
	}

	game := NewGame(*settingsPath)

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(game.settings.WindowWidth, game.settings.WindowHeight)
	ebiten.SetWindowTitle("inputkit demo")

	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable, console paste disabled: %v", err)
	} else {
		clipboardReady = true
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// runScript drives a fresh tracker from a tengo input script and dumps
// the dispatched events, useful for replaying recorded sequences
// without a window.
func runScript(path string) {
	src, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("read script %s: %v", path, err)
	}

	state := input.NewState()
	queue := &event.Queue{}
	if err := script.NewDriver(state, queue).Run(src); err != nil {
		log.Fatalf("script %s: %v", path, err)
	}

	for _, evt := range queue.Drain() {
		fmt.Printf("%-12s %+v\n", evt.Type, evt.Data)
	}
	fmt.Printf("ticks: %d  sprint: %v (double tap: %v)\n",
		state.TickCount(), state.IsActive(input.ActionSprint), state.SprintFromDoubleTap())
}
