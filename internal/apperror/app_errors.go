package apperror

import "errors"

var (
	ErrNotDrawer         = errors.New("only the drawer can do that")
	ErrInvalidUsername   = errors.New("username is invalid")
	ErrUsernameTaken     = errors.New("username is already taken")
	ErrAlreadyJoined     = errors.New("connection already joined")
	ErrUnknownConnection = errors.New("unknown connection")
	ErrWrongPhase        = errors.New("not allowed in the current phase")
	ErrInvalidStroke     = errors.New("stroke is invalid")
	ErrStrokeLimit       = errors.New("stroke limit reached")
	ErrRoomFull          = errors.New("room is full")
	ErrEmptyMessage      = errors.New("message is empty")
	ErrNoPlayers         = errors.New("no players in rotation")
	ErrEmptyWordBank     = errors.New("word bank is empty")
	ErrRoomClosed        = errors.New("room is closed")
	ErrInvalidRoomCode   = errors.New("room code is invalid")
)
