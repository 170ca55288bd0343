package core

import "fmt"

// Action is a discrete command forwarded from the presentation layer
// into a game.
type Action int

const (
	ActionNone      Action = iota
	ActionTick             // Periodic gravity step, fired by the loop timer
	ActionMoveLeft         // Left, A
	ActionMoveRight        // Right, D
	ActionSoftDrop         // Down, S
	ActionHardDrop         // Space
	ActionRotate           // Up, W
	ActionReset            // R
	ActionPause            // P
	ActionQuit             // Q, Ctrl+C
)

var actionNames = map[Action]string{
	ActionNone:      "none",
	ActionTick:      "tick",
	ActionMoveLeft:  "move_left",
	ActionMoveRight: "move_right",
	ActionSoftDrop:  "soft_drop",
	ActionHardDrop:  "hard_drop",
	ActionRotate:    "rotate",
	ActionReset:     "reset",
	ActionPause:     "pause",
	ActionQuit:      "quit",
}

// String returns the wire name of the action (e.g. "move_left").
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ParseAction is the inverse of Action.String.
func ParseAction(name string) (Action, error) {
	for a, n := range actionNames {
		if n == name {
			return a, nil
		}
	}
	return ActionNone, fmt.Errorf("core: unknown action %q", name)
}

// InputFrame is an ordered batch of actions. Order matters: a rotate
// followed by a move can land differently than the reverse.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Push appends an action to the frame. ActionNone is dropped.
func (f *InputFrame) Push(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Has returns true if the given action is queued in this frame.
func (f InputFrame) Has(a Action) bool {
	for _, queued := range f.Actions {
		if queued == a {
			return true
		}
	}
	return false
}

// Len returns the number of queued actions.
func (f InputFrame) Len() int {
	return len(f.Actions)
}

// Clear empties the frame, keeping its capacity.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}
