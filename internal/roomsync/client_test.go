package roomsync

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/tui-portal/internal/roomsync/roomtest"
)

type board struct {
	Cells   []string `json:"cells"`
	XIsNext bool     `json:"xIsNext"`
}

func newTestClient(t *testing.T, srv *roomtest.Server, interval time.Duration) *Client[board] {
	t.Helper()
	c := New[board](Options{
		BaseURL:        srv.BaseURL(),
		PollInterval:   interval,
		RequestTimeout: 2 * time.Second,
		Logger:         log.New(io.Discard),
	})
	t.Cleanup(c.Close)
	return c
}

func startServer(t *testing.T) *roomtest.Server {
	t.Helper()
	srv := roomtest.NewServer()
	t.Cleanup(srv.Close)
	return srv
}

func TestCreateRoomAdoptsCanonicalState(t *testing.T) {
	srv := startServer(t)
	c := newTestClient(t, srv, time.Hour)

	initial := board{Cells: []string{"", "", ""}, XIsNext: true}
	id, err := c.CreateRoom(context.Background(), initial)
	if err != nil {
		t.Fatalf("CreateRoom() failed: %v", err)
	}
	if len(id) != 6 {
		t.Errorf("room id %q, want 6 characters", id)
	}
	if c.RoomID() != id {
		t.Errorf("RoomID() = %q, want %q", c.RoomID(), id)
	}
	got, ok := c.State()
	if !ok {
		t.Fatal("State() reports no room after create")
	}
	if diff := cmp.Diff(initial, got); diff != "" {
		t.Errorf("adopted state mismatch (-want +got):\n%s", diff)
	}
}

func TestCreateRoomFailureLeavesNoRoom(t *testing.T) {
	srv := startServer(t)
	c := newTestClient(t, srv, time.Hour)

	srv.FailNext(1)
	if _, err := c.CreateRoom(context.Background(), board{}); err == nil {
		t.Fatal("CreateRoom() should fail on 503")
	}
	if c.RoomID() != "" {
		t.Errorf("RoomID() = %q after failed create", c.RoomID())
	}
	if c.Err() == "" {
		t.Error("Err() should record the failure")
	}
	if err := c.PushState(context.Background(), board{}); !errors.Is(err, ErrNoRoom) {
		t.Errorf("PushState() without room = %v, want ErrNoRoom", err)
	}
}

func TestJoinRoomNotFound(t *testing.T) {
	srv := startServer(t)
	c := newTestClient(t, srv, time.Hour)

	_, err := c.JoinRoom(context.Background(), "NOPE42")
	if !errors.Is(err, ErrRoomNotFound) {
		t.Fatalf("JoinRoom() error = %v, want ErrRoomNotFound", err)
	}
	if _, ok := c.State(); ok {
		t.Error("failed join must not create local room state")
	}
	if _, err := c.JoinRoom(context.Background(), "   "); !errors.Is(err, ErrEmptyCode) {
		t.Errorf("JoinRoom(blank) error = %v, want ErrEmptyCode", err)
	}
}

func TestJoinAndPushReplaceWholeState(t *testing.T) {
	srv := startServer(t)
	host := newTestClient(t, srv, time.Hour)
	guest := newTestClient(t, srv, time.Hour)
	ctx := context.Background()

	id, err := host.CreateRoom(ctx, board{Cells: []string{"", ""}, XIsNext: true})
	if err != nil {
		t.Fatalf("CreateRoom() failed: %v", err)
	}
	if _, err := guest.JoinRoom(ctx, id); err != nil {
		t.Fatalf("JoinRoom() failed: %v", err)
	}

	// Both push within one poll interval: the store keeps the last one.
	if err := host.PushState(ctx, board{Cells: []string{"X", ""}, XIsNext: false}); err != nil {
		t.Fatalf("host PushState() failed: %v", err)
	}
	if err := guest.PushState(ctx, board{Cells: []string{"", "O"}, XIsNext: true}); err != nil {
		t.Fatalf("guest PushState() failed: %v", err)
	}

	var stored board
	if !srv.Get(id, &stored) {
		t.Fatal("room missing from store")
	}
	want := board{Cells: []string{"", "O"}, XIsNext: true}
	if diff := cmp.Diff(want, stored); diff != "" {
		t.Errorf("last write should win (-want +got):\n%s", diff)
	}
}

func TestRefreshSuppressesUnchangedStates(t *testing.T) {
	srv := startServer(t)
	c := newTestClient(t, srv, time.Hour)
	ctx := context.Background()

	id, err := c.CreateRoom(ctx, board{Cells: []string{}})
	if err != nil {
		t.Fatalf("CreateRoom() failed: %v", err)
	}

	if _, changed, err := c.Refresh(ctx); err != nil || changed {
		t.Fatalf("Refresh() of unchanged room = changed %v, err %v", changed, err)
	}

	srv.Put(id, board{Cells: []string{"X"}})
	s, changed, err := c.Refresh(ctx)
	if err != nil || !changed {
		t.Fatalf("Refresh() after remote change = changed %v, err %v", changed, err)
	}
	if len(s.Cells) != 1 || s.Cells[0] != "X" {
		t.Errorf("Refresh() state = %+v", s)
	}

	select {
	case u := <-c.Updates():
		if diff := cmp.Diff(s, u); diff != "" {
			t.Errorf("update mismatch (-want +got):\n%s", diff)
		}
	default:
		t.Error("changed state was not published")
	}

	if _, changed, _ := c.Refresh(ctx); changed {
		t.Error("second Refresh() of the same state reported a change")
	}
	select {
	case u := <-c.Updates():
		t.Errorf("redundant update published: %+v", u)
	default:
	}
}

func TestRefreshOverlappingPushKeepsPushedState(t *testing.T) {
	srv := startServer(t)
	c := newTestClient(t, srv, time.Hour)
	ctx := context.Background()

	if _, err := c.CreateRoom(ctx, board{Cells: []string{""}, XIsNext: true}); err != nil {
		t.Fatalf("CreateRoom() failed: %v", err)
	}

	read, release := srv.HoldNextFetch()
	defer release()

	type result struct {
		changed bool
		err     error
	}
	done := make(chan result, 1)
	go func() {
		_, changed, err := c.Refresh(ctx)
		done <- result{changed, err}
	}()

	select {
	case <-read:
	case <-time.After(2 * time.Second):
		t.Fatal("Refresh() never reached the store")
	}

	// The held fetch has already read the pre-move state.
	moved := board{Cells: []string{"X"}, XIsNext: false}
	if err := c.PushState(ctx, moved); err != nil {
		t.Fatalf("PushState() failed: %v", err)
	}
	release()

	var r result
	select {
	case r = <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Refresh() did not return")
	}
	if r.err != nil {
		t.Fatalf("Refresh() failed: %v", r.err)
	}
	if r.changed {
		t.Error("Refresh() adopted a state fetched before the push")
	}

	got, _ := c.State()
	if diff := cmp.Diff(moved, got); diff != "" {
		t.Errorf("State() rolled back (-want +got):\n%s", diff)
	}
	select {
	case u := <-c.Updates():
		t.Errorf("stale state published: %+v", u)
	default:
	}

	// The following poll agrees with the push.
	if _, changed, err := c.Refresh(ctx); err != nil || changed {
		t.Errorf("Refresh() after push = changed %v, err %v", changed, err)
	}
}

func TestPollConvergesOnLatestState(t *testing.T) {
	srv := startServer(t)
	c := newTestClient(t, srv, 10*time.Millisecond)

	id, err := c.CreateRoom(context.Background(), board{Cells: []string{""}})
	if err != nil {
		t.Fatalf("CreateRoom() failed: %v", err)
	}

	// Another client pushes a sequence of states.
	for _, cell := range []string{"A", "B", "C"} {
		srv.Put(id, board{Cells: []string{cell}})
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case u := <-c.Updates():
			if len(u.Cells) == 1 && u.Cells[0] == "C" {
				return
			}
		case <-deadline:
			t.Fatal("poll loop never observed the latest state")
		}
	}
}

func TestPollErrorIsRecordedAndRecovers(t *testing.T) {
	srv := startServer(t)
	c := newTestClient(t, srv, time.Hour)
	ctx := context.Background()

	if _, err := c.CreateRoom(ctx, board{}); err != nil {
		t.Fatalf("CreateRoom() failed: %v", err)
	}

	srv.FailNext(1)
	_, _, err := c.Refresh(ctx)
	var se *StatusError
	if !errors.As(err, &se) || se.Status != 503 {
		t.Fatalf("Refresh() error = %v, want 503 StatusError", err)
	}
	if c.Err() == "" {
		t.Error("poll failure not recorded")
	}
	if _, ok := c.State(); !ok {
		t.Error("poll failure must keep the local room state")
	}

	if _, _, err := c.Refresh(ctx); err != nil {
		t.Fatalf("Refresh() after recovery failed: %v", err)
	}
	if c.Err() != "" {
		t.Errorf("Err() = %q after a successful poll", c.Err())
	}
}

func TestResetStopsPolling(t *testing.T) {
	srv := startServer(t)
	c := newTestClient(t, srv, 5*time.Millisecond)

	if _, err := c.CreateRoom(context.Background(), board{}); err != nil {
		t.Fatalf("CreateRoom() failed: %v", err)
	}
	time.Sleep(30 * time.Millisecond)
	c.Reset()

	if c.RoomID() != "" {
		t.Error("Reset() kept the room id")
	}
	before := srv.Gets()
	time.Sleep(30 * time.Millisecond)
	if after := srv.Gets(); after != before {
		t.Errorf("poll continued after Reset(): %d -> %d fetches", before, after)
	}
}

func TestEqualTreatsNilAndEmptyAlike(t *testing.T) {
	if !Equal(board{Cells: nil}, board{Cells: []string{}}) {
		t.Error("nil and empty slices should compare equal")
	}
	if Equal(board{XIsNext: true}, board{}) {
		t.Error("different states compared equal")
	}
}
