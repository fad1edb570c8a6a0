// Package gui provides the desktop window host for the brick breaker.
// The window itself needs the ebiten build tag; other builds get a stub.
package gui

import (
	"errors"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickbreak/internal/config"
	"github.com/vovakirdan/brickbreak/internal/core"
	"github.com/vovakirdan/brickbreak/internal/storage"
)

// ErrNoGUI is returned by Run in builds without the ebiten tag.
var ErrNoGUI = errors.New("gui: desktop window requires building with the 'ebiten' tag")

// Options configures a desktop game window.
type Options struct {
	Config  config.Config // Preset already applied
	Preset  config.Preset
	Runtime core.RuntimeConfig
	Store   *storage.Store // Optional
	Logger  *log.Logger    // Optional
	Player  string
	Scale   float64 // Window size multiplier; 0 means 1
}

// windowSize returns the window size in screen pixels.
func (o Options) windowSize() (int, int) {
	scale := o.Scale
	if scale <= 0 {
		scale = 1
	}
	return int(float64(o.Runtime.ViewportW) * scale), int(float64(o.Runtime.ViewportH) * scale)
}

// keyRepeat reports whether a key held for d ticks should fire this tick:
// once on press, then steadily after a short delay.
func keyRepeat(d, delay, interval int) bool {
	if d == 1 {
		return true
	}
	return d > delay && interval > 0 && (d-delay)%interval == 0
}
