// Package game adapts the constellation field to Ebitengine's run loop.
package game

import (
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/constellations/internal/config"
	"github.com/iburimskiy/constellations/internal/constellation"
	"github.com/iburimskiy/constellations/internal/render"
)

type Game struct {
	field  *constellation.Field
	canvas *render.Canvas

	prevKey map[ebiten.Key]bool
}

// New builds a field sized to the window using the top-level invocation
// parameters from config.
func New(seed int64) (*Game, error) {
	cfg := constellation.DefaultConfig(config.WindowWidth, config.WindowHeight)
	cfg.StarCount = config.StarCount
	cfg.LinkDistance = config.LinkDistance

	field, err := constellation.NewField(cfg, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}
	return &Game{
		field:   field,
		canvas:  render.NewCanvas(),
		prevKey: map[ebiten.Key]bool{},
	}, nil
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

// Draw runs the whole frame step here rather than in Update: Ebitengine calls
// Draw once per rendered frame, so a skipped or delayed frame skips the
// simulation too, exactly like a missed animation callback.
func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.SetTarget(screen)
	g.field.Step(g.canvas)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
