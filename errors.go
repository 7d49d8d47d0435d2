package chess

import (
	"errors"
	"fmt"
)

// FENError reports a malformed or inconsistent FEN string. Each
// violation class carries its own diagnostic message.
type FENError struct {
	msg string
}

func (e *FENError) Error() string {
	return e.msg
}

func (e *FENError) Is(target error) bool {
	var t *FENError
	if !errors.As(target, &t) {
		return false
	}
	return e.msg == t.msg
}

func fenErrorf(format string, args ...interface{}) error {
	return &FENError{msg: "chess: fen " + fmt.Sprintf(format, args...)}
}

// IllegalMoveError reports a move outside the current legal move set.
// The failed call leaves the game state unchanged.
type IllegalMoveError struct {
	// Move is the rejected move as given by the caller.
	Move string
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("chess: illegal move %s", e.Move)
}

// PGNParseError reports malformed PGN input. A failed LoadPGN discards
// the partial parse and leaves the game unchanged.
type PGNParseError struct {
	// Message describes the failure.
	Message string
	// Token is the offending movetext token, if any.
	Token string
}

func (e *PGNParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("chess: pgn: %s", e.Message)
	}
	return fmt.Sprintf("chess: pgn: %s (token %q)", e.Message, e.Token)
}
