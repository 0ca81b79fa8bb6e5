package multiplayer

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-portal/internal/roomsync"
	"github.com/vovakirdan/tui-portal/internal/roomsync/roomtest"
)

type seats struct {
	Players []Participant `json:"players"`
	Turn    int           `json:"turn"`
}

func newSession(t *testing.T, srv *roomtest.Server, id string, poll time.Duration) *RoomSession[seats] {
	t.Helper()
	quiet := log.New(io.Discard)
	client := roomsync.New[seats](roomsync.Options{
		BaseURL:      srv.BaseURL(),
		PollInterval: poll,
		Logger:       quiet,
	})
	s := NewRoomSession(SessionID(id), client, quiet)
	t.Cleanup(s.Close)
	return s
}

// waitFor handles events until one of type T arrives.
func waitFor[T SessionEvent](t *testing.T, s *RoomSession[seats]) T {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-s.Events():
			s.Handle(evt)
			if e, ok := evt.(T); ok {
				return e
			}
		case <-deadline:
			var zero T
			t.Fatalf("timed out waiting for %T", zero)
			return zero
		}
	}
}

func admit(p Participant) func(seats) (seats, bool) {
	return func(s seats) (seats, bool) {
		if IndexOf(s.Players, p.ID) >= 0 {
			return s, false
		}
		s.Players = append(append([]Participant(nil), s.Players...), p)
		return s, true
	}
}

func TestCreateJoinAndSync(t *testing.T) {
	srv := roomtest.NewServer()
	t.Cleanup(srv.Close)
	ctx := context.Background()

	host := newSession(t, srv, "host", 10*time.Millisecond)
	guest := newSession(t, srv, "guest", 10*time.Millisecond)

	code, err := host.Create(ctx, seats{Players: []Participant{{ID: "h", Name: "Host"}}})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	waitFor[RoomCreatedEvent](t, host)
	if host.Role() != RoleHost || host.Code() != code {
		t.Errorf("host role %v code %q", host.Role(), host.Code())
	}

	joined, err := guest.Join(ctx, code, admit(Participant{ID: "g", Name: "Guest"}))
	if err != nil {
		t.Fatalf("Join() failed: %v", err)
	}
	if len(joined.Players) != 2 {
		t.Fatalf("joined state players = %v, want host and guest", joined.Players)
	}

	// The host sees the guest through polling.
	synced := waitFor[StateSyncedEvent[seats]](t, host)
	if len(synced.State.Players) != 2 || len(host.Current().Players) != 2 {
		t.Errorf("host did not converge: %+v", host.Current())
	}
}

func TestProposeRejectsWhilePushInFlight(t *testing.T) {
	srv := roomtest.NewServer()
	t.Cleanup(srv.Close)
	host := newSession(t, srv, "host", time.Hour)

	if host.Propose(func(s seats) (seats, bool) { return s, true }) {
		t.Fatal("Propose outside a room should be rejected")
	}

	if _, err := host.Create(context.Background(), seats{}); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	bump := func(s seats) (seats, bool) {
		s.Turn++
		return s, true
	}
	if !host.Propose(bump) {
		t.Fatal("first Propose should be accepted")
	}
	if host.Current().Turn != 1 || !host.Mirror().Diverged() {
		t.Errorf("optimistic state not shown: %+v", host.Mirror())
	}
	if host.Propose(bump) {
		t.Error("second Propose while pushing should be rejected")
	}

	done := waitFor[PushCompletedEvent[seats]](t, host)
	if done.Err != nil {
		t.Fatalf("push failed: %v", done.Err)
	}
	if host.Pending() || host.Mirror().Diverged() {
		t.Error("push completion should clear the in-flight flag and the optimistic slot")
	}
	if !host.Propose(bump) {
		t.Error("Propose after completion should be accepted")
	}
}

func TestFailedPushDiscardsOptimisticState(t *testing.T) {
	srv := roomtest.NewServer()
	t.Cleanup(srv.Close)
	host := newSession(t, srv, "host", time.Hour)

	if _, err := host.Create(context.Background(), seats{Turn: 7}); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	srv.FailNext(1)
	host.Propose(func(s seats) (seats, bool) {
		s.Turn = 8
		return s, true
	})

	done := waitFor[PushCompletedEvent[seats]](t, host)
	if done.Err == nil {
		t.Fatal("expected push error")
	}
	if host.Current().Turn != 7 {
		t.Errorf("Current() = %+v, want the last confirmed state", host.Current())
	}
	if host.Err() == "" {
		t.Error("Err() should describe the failed push")
	}
}

func TestJoinUnknownRoom(t *testing.T) {
	srv := roomtest.NewServer()
	t.Cleanup(srv.Close)
	guest := newSession(t, srv, "guest", time.Hour)

	_, err := guest.Join(context.Background(), "ZZZZZZ", nil)
	if !errors.Is(err, roomsync.ErrRoomNotFound) {
		t.Fatalf("Join() error = %v, want ErrRoomNotFound", err)
	}
	if guest.Code() != "" || guest.Role() != RoleNone {
		t.Error("failed join must leave the session outside any room")
	}
}

func TestAttachedHandleCarriesEventsAcrossRooms(t *testing.T) {
	srv := roomtest.NewServer()
	t.Cleanup(srv.Close)
	quiet := log.New(io.Discard)
	ctx := context.Background()

	handle := NewChannelSession("conn", 16)
	attach := func() *RoomSession[seats] {
		client := roomsync.New[seats](roomsync.Options{
			BaseURL:      srv.BaseURL(),
			PollInterval: time.Hour,
			Logger:       quiet,
		})
		return AttachRoomSession(handle, client, quiet)
	}

	first := attach()
	if _, err := first.Create(ctx, seats{Turn: 1}); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	select {
	case evt := <-handle.Events():
		if _, ok := evt.(RoomCreatedEvent); !ok {
			t.Errorf("first event = %T, want RoomCreatedEvent", evt)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("room event was not delivered on the attached handle")
	}

	first.Close()
	select {
	case <-handle.Done():
		t.Fatal("closing a room session closed the connection's handle")
	default:
	}

	second := attach()
	t.Cleanup(second.Close)
	if _, err := second.Create(ctx, seats{Turn: 2}); err != nil {
		t.Fatalf("second Create() failed: %v", err)
	}
	waitFor[RoomCreatedEvent](t, second)

	handle.Close()
	select {
	case <-second.Done():
	default:
		t.Fatal("Done() still open after the handle was closed")
	}

	second.Propose(func(s seats) (seats, bool) {
		s.Turn = 3
		return s, true
	})
	select {
	case evt := <-second.Events():
		t.Errorf("event %T delivered after the handle was closed", evt)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestLeftRoomDropsLatePushResult(t *testing.T) {
	srv := roomtest.NewServer()
	t.Cleanup(srv.Close)
	host := newSession(t, srv, "host", time.Hour)
	ctx := context.Background()

	if _, err := host.Create(ctx, seats{Turn: 1}); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	waitFor[RoomCreatedEvent](t, host)

	host.Propose(func(s seats) (seats, bool) {
		s.Turn = 2
		return s, true
	})
	host.Leave()

	code, err := host.Create(ctx, seats{Turn: 10})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	waitFor[RoomCreatedEvent](t, host)

	select {
	case evt := <-host.Events():
		if done, ok := evt.(PushCompletedEvent[seats]); ok {
			t.Errorf("push for the left room reached room %s: %+v", code, done)
		}
	case <-time.After(100 * time.Millisecond):
	}
	if host.Current().Turn != 10 {
		t.Errorf("Current() = %+v, want the new room's state", host.Current())
	}
}
