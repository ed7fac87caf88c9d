package services

import "errors"

// Operation failures the HTTP layer maps to status codes. Anything not in
// this list is an internal error.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrAuthorNotFound   = errors.New("author not found")
	ErrOpponentNotFound = errors.New("opponent not found")
	ErrDebateNotFound   = errors.New("debate not found")

	// ErrNotYourTurn rejects a private-debate submission by anyone other
	// than the current turn holder.
	ErrNotYourTurn = errors.New("not this user's turn")

	// ErrTurnConflict rejects the loser of two concurrent submissions that
	// both passed the turn check before either advanced the holder.
	ErrTurnConflict = errors.New("turn advanced concurrently")

	ErrUserExists = errors.New("user already exists")

	// ErrInvalidParticipants rejects a private debate whose participant set
	// is not exactly two distinct users.
	ErrInvalidParticipants = errors.New("private debate requires exactly two distinct participants")
)
