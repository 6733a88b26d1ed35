package main

import (
	"fmt"
	"log"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.design/x/clipboard"
	"golang.org/x/image/colornames"

	"github.com/milk9111/inputkit/event"
	"github.com/milk9111/inputkit/input"
)

// set at startup once clipboard.Init succeeds
var clipboardReady bool

// Console is a toggleable text line fed from the tracker's dispatched
// press events. While it is open the game suppresses all other bound
// actions, which is the suppression path this demo exists to show.
type Console struct {
	open bool
	buf  []rune
	bg   *ebiten.Image
}

func NewConsole() *Console {
	return &Console{}
}

func (c *Console) IsOpen() bool {
	return c.open
}

// HandleEvent consumes a drained tracker event. Only press events
// matter to the console; releases pass through untouched.
func (c *Console) HandleEvent(evt event.Event) {
	if evt.Type != event.TypeKeyPressed {
		return
	}
	pe, ok := evt.Data.(input.PressEvent)
	if !ok {
		return
	}

	if pe.Action != nil && *pe.Action == input.ActionToggleConsole {
		c.open = !c.open
		return
	}
	if !c.open {
		return
	}

	if pe.Key != nil {
		switch *pe.Key {
		case input.KeyBackspace:
			if len(c.buf) > 0 {
				c.buf = c.buf[:len(c.buf)-1]
			}
			return
		case input.KeyEscape:
			c.open = false
			return
		case input.KeyEnter:
			if len(c.buf) > 0 {
				log.Printf("console: %s", string(c.buf))
				c.buf = c.buf[:0]
			}
			return
		}
	}

	for _, r := range pe.Chars {
		if unicode.IsPrint(r) {
			c.buf = append(c.buf, r)
		}
	}
}

// Update handles the one console input that bypasses the tracker:
// Ctrl+V paste, which needs the OS clipboard rather than key events.
func (c *Console) Update() {
	if !c.open || !clipboardReady {
		return
	}
	if ebiten.IsKeyPressed(ebiten.KeyControlLeft) && inpututil.IsKeyJustPressed(ebiten.KeyV) {
		for _, r := range string(clipboard.Read(clipboard.FmtText)) {
			if unicode.IsPrint(r) {
				c.buf = append(c.buf, r)
			}
		}
	}
}

func (c *Console) Draw(screen *ebiten.Image) {
	if !c.open {
		return
	}

	w := screen.Bounds().Dx()
	if c.bg == nil || c.bg.Bounds().Dx() != w {
		c.bg = ebiten.NewImage(w, 20)
		c.bg.Fill(colornames.Darkslategray)
	}

	h := screen.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(h-20))
	screen.DrawImage(c.bg, op)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("> %s_", string(c.buf)), 4, h-18)
}
