//go:build !ebiten

package gui

import (
	"context"

	"github.com/san-kum/rule30life/internal/control"
	"github.com/san-kum/rule30life/internal/harness"
)

// Run always fails in builds without the ebiten tag.
func Run(context.Context, *harness.Harness, *control.Controller, Options) error {
	return ErrNoWindow
}
