package provision

import (
	"fmt"
	"strings"
)

// Action selects what happens to the remote resources when a Group is closed.
type Action string

const (
	CreateIfMissing     Action = "create_if_missing"
	CreateWithOverwrite Action = "create_with_overwrite"
	Delete              Action = "delete"
	Nothing             Action = "nothing"
)

// Actions lists every recognized action
var Actions = []Action{CreateIfMissing, CreateWithOverwrite, Delete, Nothing}

// Valid reports whether a is a recognized action
func (a Action) Valid() bool {
	for _, known := range Actions {
		if a == known {
			return true
		}
	}
	return false
}

// ParseAction converts a user-supplied string to an Action.
// Dashes are accepted in place of underscores.
func ParseAction(s string) (Action, error) {
	a := Action(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	if !a.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidAction, s)
	}
	return a, nil
}
