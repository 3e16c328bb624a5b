// Package gui shows a running simulation in a window.
//
// The window needs the ebiten build tag:
//
//	go build -tags ebiten ./cmd/rule30life
//
// Without it [Run] returns [ErrNoWindow].
package gui
