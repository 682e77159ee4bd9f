//go:build !fyne

package gui

// Run reports that the desktop window was not compiled in.
func Run(Options) error {
	return ErrUnavailable
}
