// Package view decides what is on screen: which pass's results are shown, and
// the strokes that make up that picture.
package view

import (
	"strings"

	"github.com/pkg/errors"
)

// Which result set is displayed. The order is the order the viewer steps
// through them.
type State int

const (
	Initial State = iota
	Naive
	Sweep
)

var stateNames = [...]string{"initial", "naive", "sweep"}

func States() []State {
	return []State{Initial, Naive, Sweep}
}

// Step forward. Sweep is the last state and stays put.
func (s State) Next() State {
	if s >= Sweep {
		return Sweep
	}
	return s + 1
}

// Step back. Initial is the first state and stays put.
func (s State) Previous() State {
	if s <= Initial {
		return Initial
	}
	return s - 1
}

func (s State) String() string {
	if s < Initial || s > Sweep {
		return "invalid"
	}
	return stateNames[s]
}

func ParseState(name string) (State, error) {
	for i, stateName := range stateNames {
		if strings.EqualFold(name, stateName) {
			return State(i), nil
		}
	}
	return Initial, errors.Errorf("unknown view %q (want one of %s)", name, strings.Join(stateNames[:], ", "))
}

// Apply a navigation command, the way the arrow keys drive the viewer. Right
// (or next, n) steps forward, left (or prev, p) steps back. Unknown commands
// leave the state alone and report false.
func (s State) Apply(command string) (State, bool) {
	switch strings.ToLower(strings.TrimSpace(command)) {
	case "right", "next", "n":
		return s.Next(), true
	case "left", "prev", "previous", "p":
		return s.Previous(), true
	}
	return s, false
}
