package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/milk9111/inputkit/capture"
	"github.com/milk9111/inputkit/event"
	"github.com/milk9111/inputkit/input"
	"github.com/milk9111/inputkit/settings"
)

type Game struct {
	state   *input.State
	poller  *capture.Poller
	queue   *event.Queue
	player  *Player
	console *Console

	settings     settings.Settings
	settingsPath string
	watcher      *settings.Watcher

	wasFocused bool
}

func NewGame(settingsPath string) *Game {
	cfg, err := settings.Load(settingsPath)
	if err != nil {
		log.Printf("using default settings: %v", err)
	}

	state := input.NewState()
	poller := capture.NewPoller(state)
	poller.SetStickDeadzone(cfg.StickDeadzone)
	poller.SetMouseSensitivity(cfg.MouseSensitivity)

	watcher, err := settings.Watch(settingsPath)
	if err != nil {
		log.Printf("settings hot-reload disabled: %v", err)
		watcher = nil
	}

	return &Game{
		state:        state,
		poller:       poller,
		queue:        &event.Queue{},
		player:       NewPlayer(cfg),
		console:      NewConsole(),
		settings:     cfg,
		settingsPath: settingsPath,
		watcher:      watcher,
		wasFocused:   true,
	}
}

func (g *Game) Update() error {
	g.reloadSettingsIfChanged()

	// Drop anything queued while the window had no focus, and forget
	// the cursor so regaining focus doesn't spike the mouse delta.
	focused := ebiten.IsFocused()
	if !focused && g.wasFocused {
		g.state.FlushInputs()
		g.poller.DropCursorTracking()
	}
	g.wasFocused = focused

	g.poller.Update()

	// While the console is open every press except the console toggle
	// is suppressed: the physical key is still tracked, the bound
	// action is not.
	pending := g.state.Pending()
	suppressed := make([]bool, len(pending))
	if g.console.IsOpen() {
		for i, pe := range pending {
			suppressed[i] = pe.Action == nil || *pe.Action != input.ActionToggleConsole
		}
	}
	g.state.Tick(suppressed, g.queue)

	for _, evt := range g.queue.Drain() {
		g.console.HandleEvent(evt)
	}
	g.console.Update()

	g.player.Update(g.state, g.settings)
	g.state.ResetMouseDelta()
	return nil
}

func (g *Game) reloadSettingsIfChanged() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case <-g.watcher.Events:
			cfg, err := settings.Load(g.settingsPath)
			if err != nil {
				log.Printf("settings reload failed: %v", err)
				continue
			}
			g.settings = cfg
			g.poller.SetStickDeadzone(cfg.StickDeadzone)
			g.poller.SetMouseSensitivity(cfg.MouseSensitivity)
			log.Printf("settings reloaded from %s", g.settingsPath)
		case err := <-g.watcher.Errors:
			log.Printf("settings watcher: %v", err)
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.player.Draw(screen)
	g.console.Draw(screen)

	var active []string
	for _, a := range []input.Action{
		input.ActionMoveForward, input.ActionMoveBack,
		input.ActionStrafeLeft, input.ActionStrafeRight,
		input.ActionSprint, input.ActionJump, input.ActionInteract,
	} {
		if g.state.IsActive(a) {
			active = append(active, a.String())
		}
	}

	sprintSource := "-"
	if g.state.IsActive(input.ActionSprint) {
		sprintSource = "explicit"
		if g.state.SprintFromDoubleTap() {
			sprintSource = "double tap"
		}
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"FPS: %.0f  tick: %d\nactive: %s\nsprint: %s\nleft stick: %+v\n\nWASD move, double-tap W or hold Shift to sprint, ` for console",
		ebiten.ActualFPS(), g.state.TickCount(), strings.Join(active, " "), sprintSource, g.state.LeftThumbstick()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.settings.WindowWidth, g.settings.WindowHeight
}
