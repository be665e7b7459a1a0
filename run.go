package pagebreak

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at draw submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default box color.
var ColorWhite = Color{1, 1, 1, 1}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// RunConfig configures the window Run opens. Zero values take defaults.
type RunConfig struct {
	Title      string
	Width      int   // default 1280
	Height     int   // default 720
	ClearColor Color // default near-black
}

const (
	defaultWidth  = 1280
	defaultHeight = 720
)

var defaultClearColor = Color{R: 0.06, G: 0.06, B: 0.09, A: 1}

func (cfg RunConfig) withDefaults() RunConfig {
	if cfg.Width == 0 {
		cfg.Width = defaultWidth
	}
	if cfg.Height == 0 {
		cfg.Height = defaultHeight
	}
	if cfg.ClearColor == (Color{}) {
		cfg.ClearColor = defaultClearColor
	}
	return cfg
}

// Game adapts a Page and its Sim to ebiten: Update delivers one host frame
// (optional user hook, pointer sampling, scheduler tick) and Draw renders
// every box as a rotated solid-color quad.
type Game struct {
	Sim  *Sim
	Page *Page

	// OnUpdate, when set, runs at the start of every frame, before pointer
	// sampling and the physics tick. Returning an error ends Run.
	OnUpdate func() error

	ClearColor Color

	ticker      *TickScheduler
	white       *ebiten.Image
	prevPressed bool
}

// NewGame builds a Game over the page, wiring a fresh TickScheduler and Sim.
// Call Sim.Start (directly or from OnUpdate) to begin simulating.
func NewGame(page *Page) *Game {
	ticker := NewTickScheduler()
	return &Game{
		Sim:        NewSim(page, ticker),
		Page:       page,
		ClearColor: defaultClearColor,
		ticker:     ticker,
	}
}

// Update implements ebiten.Game. Each call is one host frame callback.
func (g *Game) Update() error {
	if g.OnUpdate != nil {
		if err := g.OnUpdate(); err != nil {
			return err
		}
	}
	g.samplePointer()
	g.ticker.Tick()
	return nil
}

// samplePointer feeds the mouse state into the drag constraint: press grabs,
// hold drags, release lets go.
func (g *Game) samplePointer() {
	mouse := g.Sim.Mouse()
	if mouse == nil {
		return
	}
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx), float64(my)
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	switch {
	case pressed && !g.prevPressed:
		mouse.Grab(x, y)
	case pressed:
		mouse.Move(x, y)
	case g.prevPressed:
		mouse.Release()
	}
	g.prevPressed = pressed
}

// Draw implements ebiten.Game: clear, then one quad per attached box, rotated
// about its center.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.ClearColor.toRGBA())

	if g.white == nil {
		g.white = ebiten.NewImage(1, 1)
		g.white.Fill(color.White)
	}

	for _, b := range g.Page.Boxes() {
		if b.detached {
			continue
		}
		r := b.rect
		if math.IsNaN(r.Width) || math.IsNaN(r.Height) {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(r.Width, r.Height)
		op.GeoM.Translate(-r.Width/2, -r.Height/2)
		op.GeoM.Rotate(b.rotation)
		op.GeoM.Translate(r.Left+r.Width/2, r.Top+r.Height/2)
		c := b.Color
		op.ColorScale.Scale(
			float32(c.R*c.A), float32(c.G*c.A), float32(c.B*c.A), float32(c.A),
		)
		screen.DrawImage(g.white, op)
	}
}

// Layout implements ebiten.Game.
func (g *Game) Layout(w, h int) (int, int) { return w, h }

// Run opens a window and drives the game until it exits.
func Run(g *Game, cfg RunConfig) error {
	cfg = cfg.withDefaults()
	g.ClearColor = cfg.ClearColor
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	return ebiten.RunGame(g)
}
