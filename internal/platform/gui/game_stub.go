//go:build !ebiten

package gui

// Run always reports that the GUI build tag is missing.
func Run(Options) error {
	return ErrNoGUI
}
