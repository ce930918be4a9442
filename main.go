package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/constellations/internal/config"
	"github.com/iburimskiy/constellations/internal/game"
)

func main() {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Constellations - Esc/Q: Quit")

	g, err := game.New(time.Now().UnixNano())
	if err != nil {
		fail(err)
	}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		fail(err)
	}
}

// fail reports a fatal error on stderr and in a dialog, then exits. The
// dialog matters on desktops where the program was launched without a
// terminal; if the display itself is gone the dialog error is ignored.
func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	_ = zenity.Error(err.Error(), zenity.Title("Constellations"))
	os.Exit(1)
}
