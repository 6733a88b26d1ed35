package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"

	"github.com/milk9111/inputkit/input"
	"github.com/milk9111/inputkit/settings"
)

const (
	playerRadius     = 12
	turnPerPixel     = 0.004 // radians of heading per pixel of mouse delta
	simStep          = 1.0 / 60.0
	rightStickNudge  = 2.5
	playerSpaceDamp  = 0.85
	headingLineScale = 2.0
)

// Player is a top-down body driven entirely by the tracker: WASD or
// the left stick to move, mouse delta to turn, sprint raises max speed.
type Player struct {
	space *cp.Space
	body  *cp.Body

	heading float64
	img     *ebiten.Image
	dot     *ebiten.Image
}

func NewPlayer(cfg settings.Settings) *Player {
	space := cp.NewSpace()
	space.SetDamping(playerSpaceDamp)

	body := space.AddBody(cp.NewBody(1, cp.MomentForCircle(1, 0, playerRadius, cp.Vector{})))
	body.SetPosition(cp.Vector{X: float64(cfg.WindowWidth) / 2, Y: float64(cfg.WindowHeight) / 2})

	shape := space.AddShape(cp.NewCircle(body, playerRadius, cp.Vector{}))
	shape.SetElasticity(0)
	shape.SetFriction(0.7)

	img := ebiten.NewImage(playerRadius*2, playerRadius*2)
	img.Fill(colornames.Crimson)
	dot := ebiten.NewImage(4, 4)
	dot.Fill(colornames.White)

	return &Player{space: space, body: body, img: img, dot: dot}
}

func (p *Player) Update(st *input.State, cfg settings.Settings) {
	p.heading += st.MouseDelta().X * turnPerPixel
	p.heading += st.RightThumbstick().X * rightStickNudge * simStep

	// keyboard gives a digital direction, left stick an analog one;
	// the stick wins when deflected
	dir := cp.Vector{}
	if st.IsActive(input.ActionMoveForward) {
		dir.Y -= 1
	}
	if st.IsActive(input.ActionMoveBack) {
		dir.Y += 1
	}
	if st.IsActive(input.ActionStrafeLeft) {
		dir.X -= 1
	}
	if st.IsActive(input.ActionStrafeRight) {
		dir.X += 1
	}
	if stick := st.LeftThumbstick(); stick.X != 0 || stick.Y != 0 {
		dir = stick
	}

	if dir.Length() > 1 {
		dir = dir.Normalize()
	}

	speed := cfg.WalkSpeed
	if st.IsActive(input.ActionSprint) {
		speed = cfg.SprintSpeed
	}
	p.body.SetVelocityVector(dir.Rotate(cp.ForAngle(p.heading)).Mult(speed))

	p.space.Step(simStep)
}

func (p *Player) Draw(screen *ebiten.Image) {
	pos := p.body.Position()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(pos.X-playerRadius, pos.Y-playerRadius)
	screen.DrawImage(p.img, op)

	// heading marker
	hx := pos.X + math.Sin(p.heading)*playerRadius*headingLineScale
	hy := pos.Y - math.Cos(p.heading)*playerRadius*headingLineScale
	dop := &ebiten.DrawImageOptions{}
	dop.GeoM.Translate(hx-2, hy-2)
	screen.DrawImage(p.dot, dop)
}
