package consts

import (
	"errors"
	"time"
)

type StateID int

const (
	_ StateID = iota
	StateWelcome
	StateHome
	StateSettings
	StateGame
	StateScores
	StateExit
)

const (
	MinPlayers = 2
	MaxPlayers = 4

	HandSize    = 7
	DeckSize    = 108
	MaxNameSize = 11

	// MaxRejectedDecisions bounds how many invalid decisions a computer player may return in
	// one turn before the match is considered broken.
	MaxRejectedDecisions = 16

	ComputerDelay = 600 * time.Millisecond
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsInputInvalid    = NewErr(2, false, "Input invalid. ")
	ErrorsCardNotInHand   = NewErr(2, false, "No card at that position. ")
	ErrorsCardNotPlayable = NewErr(2, false, "That card cannot be played now. ")
	ErrorsCannotPass      = NewErr(2, false, "You can only pass when the deck is empty and nothing is playable. ")
	ErrorsDeckEmpty       = NewErr(2, false, "The deck is empty. ")
	ErrorsNotPaused       = NewErr(2, false, "The game is not paused. ")
	ErrorsPaused          = NewErr(2, false, "The game is paused, type r to resume or q to quit. ")
	ErrorsColorExpected   = NewErr(2, false, "Choose a color: red, yellow, green or blue. ")
	ErrorsNameInvalid     = NewErr(3, false, "Names must be 1 to 11 characters. ")
	ErrorsNameTaken       = NewErr(3, false, "That name is already taken. ")
	ErrorsNameReserved    = NewErr(3, false, "That name is reserved for a computer player. ")
	ErrorsRosterFull      = NewErr(3, false, "The roster is full. ")
	ErrorsRosterTooSmall  = NewErr(3, false, "At least two players are needed. ")
	ErrorsSeatInvalid     = NewErr(3, false, "No player at that position. ")
	ErrorsPlayersInvalid  = NewErr(4, true, "A match needs 2 to 4 players. ")
	ErrorsSnapshotState   = NewErr(4, true, "Snapshot is not resumable. ")
	ErrorsSnapshotPlayer  = NewErr(4, true, "Snapshot players do not match. ")
	ErrorsSimulateHuman   = NewErr(4, true, "Only computer players can be simulated. ")
)

// IsInputError reports whether err is a recoverable input error worth re-prompting for.
func IsInputError(err error) bool {
	var e Error
	return errors.As(err, &e) && !e.Exit
}
