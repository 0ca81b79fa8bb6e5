package roomsync

import (
	"errors"
	"fmt"
)

var (
	// ErrRoomNotFound is returned when the store has no room with the code.
	// It is a distinguished outcome of JoinRoom, not a transport failure.
	ErrRoomNotFound = errors.New("roomsync: room not found")
	// ErrNoRoom is returned by PushState before a room was created or joined.
	ErrNoRoom = errors.New("roomsync: no room")
	// ErrEmptyCode is returned by JoinRoom for a blank code.
	ErrEmptyCode = errors.New("roomsync: empty room code")
)

// StatusError is an unexpected HTTP status from the room store.
type StatusError struct {
	Op     string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("roomsync: %s: status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("roomsync: %s: status %d: %s", e.Op, e.Status, e.Body)
}
