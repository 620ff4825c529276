//go:build ebiten

package window

import "github.com/hajimehoshi/ebiten/v2"

// The ebiten.Game methods are kept apart from the backend.Backend ones,
// both sets have an Update.
type game struct {
	w *Backend
}

func (g game) Update() error {
	return g.w.gameUpdate()
}

func (g game) Draw(screen *ebiten.Image) {
	g.w.draw(screen)
}

func (g game) Layout(_, _ int) (int, int) {
	return g.w.layout()
}
