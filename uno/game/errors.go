package game

import (
	"errors"
	"fmt"
)

// ErrEmptyDeck is returned when a card is drawn from an empty deck.
var ErrEmptyDeck = errors.New("deck is empty")

// InvariantViolation is a fatal engine error. Snapshot holds the match as it was when the
// violation was detected.
type InvariantViolation struct {
	Reason   string
	Snapshot *Snapshot
}

func (v *InvariantViolation) Error() string {
	return fmt.Sprintf("invariant violated: %s", v.Reason)
}
