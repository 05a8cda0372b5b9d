package game

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	logxi "github.com/mgutz/logxi/v1"

	"github.com/0x0caf/color-dancing/internal/config"
	"github.com/0x0caf/color-dancing/internal/orbit"
	"github.com/0x0caf/color-dancing/internal/sfx"
)

const (
	advanceKey = ebiten.KeySpace
	restartKey = ebiten.KeyC
)

var logger = logxi.New("color-dancing.game")

// Game drives an orbit.Controller from ebiten's frame loop.
type Game struct {
	ctrl    *orbit.Controller
	chime   *sfx.Chime
	canvas  *canvas
	// surface receives the draw commands; it is canvas outside of tests.
	surface orbit.Canvas

	phase    orbit.Phase
	// orbitNum counts orbits that have begun drawing.
	orbitNum int
	frames   int
}

// New returns a Game around ctrl. chime may be nil.
func New(ctrl *orbit.Controller, chime *sfx.Chime) *Game {
	cv := newCanvas(config.WindowWidth, config.WindowHeight)
	return &Game{
		ctrl:    ctrl,
		chime:   chime,
		canvas:  cv,
		surface: cv,
		phase:   ctrl.State().Phase,
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	// Keys are sampled as held, not just pressed: holding C keeps restarting.
	in := orbit.Input{
		Advance: ebiten.IsKeyPressed(advanceKey),
		Restart: ebiten.IsKeyPressed(restartKey),
	}

	g.step(in)
	return nil
}

// step advances the controller by one tick and draws that tick's commands,
// so every tick is rendered exactly once however often Draw runs.
func (g *Game) step(in orbit.Input) {
	prev := g.phase
	g.phase = g.ctrl.Advance(in)
	g.frames++
	orbit.Replay(g.surface, g.ctrl.Render())

	if g.phase != prev && logger.IsDebug() {
		logger.Debug("phase", "from", prev.String(), "to", g.phase.String())
	}

	if orbit.Begins(prev, g.phase) {
		st := g.ctrl.State()
		g.orbitNum++
		g.frames = 0
		logger.Info("new orbit", "orbit", g.orbitNum, "shape", st.Shape.String(), "base", st.BaseColor.Unit().Hex())
		g.chime.Play(st.BaseColor.Unit())
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.canvas.img, nil)

	elapsed := time.Duration(g.frames) * time.Second / time.Duration(ebiten.TPS())
	status := fmt.Sprintf("Orbit %d  %s  %s", g.orbitNum, g.phase, formatDuration(elapsed))
	if g.phase == orbit.Waiting {
		status += " - Space to start the next orbit"
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
