//go:build !fyne

package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunWithoutWindow(t *testing.T) {
	assert.ErrorIs(t, Run(Options{}), ErrUnavailable)
}
