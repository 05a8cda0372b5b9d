package main

import (
	"math/rand/v2"
	"os"
	"time"

	"github.com/faiface/beep"
	"github.com/hajimehoshi/ebiten/v2"
	logxi "github.com/mgutz/logxi/v1"
	"github.com/ncruces/zenity"
	"github.com/pkg/errors"

	"github.com/0x0caf/color-dancing/internal/config"
	"github.com/0x0caf/color-dancing/internal/game"
	"github.com/0x0caf/color-dancing/internal/orbit"
	"github.com/0x0caf/color-dancing/internal/sfx"
)

var logger = logxi.New("color-dancing")

func main() {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)

	chime, err := sfx.NewChime(beep.SampleRate(config.ChimeSampleRate))
	if err != nil {
		logger.Warn("audio disabled", "error", err)
	}

	seed := uint64(time.Now().UnixNano())
	logger.Debug("seeding", "seed", seed)
	rng := rand.New(rand.NewPCG(seed, seed>>32|seed<<32))

	g := game.New(orbit.NewController(rng), chime)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		fatal(errors.Wrap(err, "running frame loop"))
	}
}

// fatal reports err on the console and in a dialog, then exits.
func fatal(err error) {
	logger.Error("fatal", "error", err)
	if errGo := zenity.Error(err.Error(), zenity.Title("Color Dancing"), zenity.ErrorIcon); errGo != nil {
		logger.Warn("could not show error dialog", "error", errGo)
	}
	os.Exit(1)
}
