package multiplayer

// SessionEvent is an event delivered from room sync to the shell.
type SessionEvent interface {
	sessionEvent()
}

// RoomCreatedEvent is sent when a hosted room exists on the store.
type RoomCreatedEvent struct {
	Code string
}

func (RoomCreatedEvent) sessionEvent() {}

// RoomJoinedEvent is sent when a room was joined by code.
type RoomJoinedEvent struct {
	Code string
}

func (RoomJoinedEvent) sessionEvent() {}

// StateSyncedEvent carries a polled remote state that differs from the
// last one seen.
type StateSyncedEvent[S any] struct {
	State S
}

func (StateSyncedEvent[S]) sessionEvent() {}

// PushCompletedEvent reports the end of an asynchronous push. On success
// State is the store's echo; on failure Err is set.
type PushCompletedEvent[S any] struct {
	State S
	Err   error
}

func (PushCompletedEvent[S]) sessionEvent() {}

// SyncErrorEvent is a recoverable room failure the shell shows as a
// retryable notice.
type SyncErrorEvent struct {
	Message string
}

func (SyncErrorEvent) sessionEvent() {}
