//go:build !ebiten

package window

import (
	"errors"

	"github.com/mopp/fami-moni/famimoni/backend"
	"github.com/mopp/fami-moni/famimoni/video"
)

// ErrUnavailable is returned by the stub built without the ebiten tag.
var ErrUnavailable = errors.New("window backend not available - build with -tags ebiten to enable")

// Backend stub for builds without ebiten
type Backend struct{}

func New() *Backend {
	return &Backend{}
}

func (w *Backend) Init(config backend.BackendConfig) error {
	return ErrUnavailable
}

func (w *Backend) Update(frame *video.Frame) ([]backend.InputEvent, error) {
	return nil, ErrUnavailable
}

func (w *Backend) Cleanup() error {
	return nil
}
