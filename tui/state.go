// Package tui provides the primary terminal user interface implementation.
package tui

import "github.com/ava-vibe/ava/generation"

type state int

const (
	inputState state = iota
	pendingState
	readyState
)

func stateOf(s generation.State) state {
	switch s {
	case generation.Pending:
		return pendingState
	case generation.Ready:
		return readyState
	default:
		return inputState
	}
}
