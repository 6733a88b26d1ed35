package capture

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/inputkit/input"
)

const (
	defaultStickDeadzone    = 0.2
	defaultMouseSensitivity = 1.0
)

// Poller reads ebiten's keyboard, mouse, and gamepad state once per
// frame and queues the resulting presses, releases, and analog updates
// on an input.State. It performs edge detection only; all held-state
// bookkeeping lives in the tracker.
type Poller struct {
	state    *input.State
	bindings map[input.Key]input.Action

	deadzone    float64
	sensitivity float64

	keyBuf  []ebiten.Key
	charBuf []rune

	prevCursorX int
	prevCursorY int
	cursorKnown bool
}

func NewPoller(state *input.State) *Poller {
	return NewPollerWithBindings(state, DefaultBindings())
}

func NewPollerWithBindings(state *input.State, bindings map[input.Key]input.Action) *Poller {
	return &Poller{
		state:       state,
		bindings:    bindings,
		deadzone:    defaultStickDeadzone,
		sensitivity: defaultMouseSensitivity,
	}
}

// SetStickDeadzone adjusts the gamepad stick deadzone, e.g. after a
// settings reload.
func (p *Poller) SetStickDeadzone(deadzone float64) {
	p.deadzone = deadzone
}

// SetMouseSensitivity scales the cursor delta fed into the tracker.
func (p *Poller) SetMouseSensitivity(sensitivity float64) {
	p.sensitivity = sensitivity
}

// Update polls ebiten and queues this frame's input on the tracker.
// Call once per Game.Update, before the simulation ticks the state.
func (p *Poller) Update() {
	p.pollKeyboard()
	p.pollMouse()
	p.pollGamepad()
}

// DropCursorTracking forgets the last cursor position so the next frame
// produces no delta spike. Call when the window regains focus.
func (p *Poller) DropCursorTracking() {
	p.cursorKnown = false
}

func (p *Poller) pollKeyboard() {
	// Input chars are attached to the first translated press of the
	// frame; a frame that types characters without any translatable
	// press queues a key-less press instead.
	p.charBuf = ebiten.AppendInputChars(p.charBuf[:0])
	var chars []rune
	if len(p.charBuf) > 0 {
		chars = append([]rune(nil), p.charBuf...)
	}

	p.keyBuf = inpututil.AppendJustPressedKeys(p.keyBuf[:0])
	for _, ek := range p.keyBuf {
		k, ok := translateKey(ek)
		if !ok {
			continue
		}
		p.state.Press(&k, p.actionFor(k), chars)
		chars = nil
	}
	if chars != nil {
		p.state.Press(nil, nil, chars)
	}

	p.keyBuf = inpututil.AppendJustReleasedKeys(p.keyBuf[:0])
	for _, ek := range p.keyBuf {
		k, ok := translateKey(ek)
		if !ok {
			continue
		}
		p.state.Release(&k, p.actionFor(k))
	}
}

func (p *Poller) actionFor(k input.Key) *input.Action {
	action, ok := p.bindings[k]
	if !ok {
		return nil
	}
	return &action
}

func (p *Poller) pollMouse() {
	x, y := ebiten.CursorPosition()
	if p.cursorKnown {
		dx := float64(x-p.prevCursorX) * p.sensitivity
		dy := float64(y-p.prevCursorY) * p.sensitivity
		if dx != 0 || dy != 0 {
			p.state.MoveMouse(dx, dy)
		}
	}
	p.prevCursorX, p.prevCursorY = x, y
	p.cursorKnown = true
}

func (p *Poller) pollGamepad() {
	ids := ebiten.GamepadIDs()
	if len(ids) == 0 {
		return
	}
	id := ids[0]

	lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
	ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
	p.state.MoveLeftThumbstick(applyDeadzone(lx, ly, p.deadzone))

	rx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
	ry := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical)
	p.state.MoveRightThumbstick(applyDeadzone(rx, ry, p.deadzone))

	for _, gb := range gamepadButtons {
		if inpututil.IsStandardGamepadButtonJustPressed(id, gb.button) {
			k := gb.key
			p.state.Press(&k, p.actionFor(k), nil)
		}
		if inpututil.IsStandardGamepadButtonJustReleased(id, gb.button) {
			k := gb.key
			p.state.Release(&k, p.actionFor(k))
		}
	}
}
