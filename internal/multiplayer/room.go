package multiplayer

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-portal/internal/roomsync"
)

// DefaultPushTimeout bounds one asynchronous push.
const DefaultPushTimeout = 10 * time.Second

// RoomSession is one client's view of a shared room. All state changes
// flow through the shell's event loop: Propose starts a push, and Handle
// applies the events that the push and the poll loop deliver.
type RoomSession[S any] struct {
	client      *roomsync.Client[S]
	events      *ChannelSession
	owned       bool // events was created here and is closed by Close
	logger      *log.Logger
	PushTimeout time.Duration

	mu      sync.Mutex
	mirror  Mirror[S]
	role    Role
	code    string
	epoch   uint64 // bumped on every enter and leave
	pushing bool
	stop    context.CancelFunc
	fwd     sync.WaitGroup
}

// NewRoomSession wraps client for the session id with its own event
// channel.
func NewRoomSession[S any](id SessionID, client *roomsync.Client[S], logger *log.Logger) *RoomSession[S] {
	r := AttachRoomSession(NewChannelSession(id, 16), client, logger)
	r.owned = true
	return r
}

// AttachRoomSession wraps client and delivers room events on handle, which
// belongs to the caller. Close leaves the room but keeps handle open;
// closing handle ends delivery for every room session attached to it.
func AttachRoomSession[S any](handle *ChannelSession, client *roomsync.Client[S], logger *log.Logger) *RoomSession[S] {
	if logger == nil {
		logger = log.Default()
	}
	return &RoomSession[S]{
		client:      client,
		events:      handle,
		logger:      logger.With("session", string(handle.ID())),
		PushTimeout: DefaultPushTimeout,
	}
}

// Create hosts a new room seeded with initial.
func (r *RoomSession[S]) Create(ctx context.Context, initial S) (string, error) {
	code, err := r.client.CreateRoom(ctx, initial)
	if err != nil {
		return "", err
	}
	state, _ := r.client.State()
	r.enter(code, RoleHost, state)
	r.events.Send(RoomCreatedEvent{Code: code})
	return code, nil
}

// Join enters the room with code. admit may add this player to the fetched
// state; when it reports a change the result is pushed before the join
// completes. A failed admission push leaves the room again.
func (r *RoomSession[S]) Join(ctx context.Context, code string, admit func(S) (S, bool)) (S, error) {
	state, err := r.client.JoinRoom(ctx, code)
	if err != nil {
		return state, err
	}
	if admit != nil {
		if next, changed := admit(state); changed {
			if err := r.client.PushState(ctx, next); err != nil {
				r.client.Reset()
				var zero S
				return zero, err
			}
			state, _ = r.client.State()
		}
	}
	r.enter(code, RoleGuest, state)
	r.events.Send(RoomJoinedEvent{Code: code})
	return state, nil
}

func (r *RoomSession[S]) enter(code string, role Role, state S) {
	r.stopForwarding()

	// Events of an earlier room may still sit on a shared handle.
	r.events.Drain()

	ctx, cancel := context.WithCancel(context.Background())
	r.mu.Lock()
	r.code = code
	r.role = role
	r.mirror = Mirror[S]{Remote: state}
	r.epoch++
	r.pushing = false
	r.stop = cancel
	r.mu.Unlock()

	r.fwd.Add(1)
	go r.forward(ctx)
}

// forward turns client updates into session events.
func (r *RoomSession[S]) forward(ctx context.Context) {
	defer r.fwd.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case s := <-r.client.Updates():
			r.events.Send(StateSyncedEvent[S]{State: s})
		}
	}
}

func (r *RoomSession[S]) stopForwarding() {
	r.mu.Lock()
	stop := r.stop
	r.stop = nil
	r.mu.Unlock()
	if stop != nil {
		stop()
	}
	r.fwd.Wait()
}

// Propose applies mutate to the current state. It is rejected (false)
// outside a room, while an earlier push is still in flight, or when mutate
// declines. Otherwise the result shows immediately as the optimistic state
// and is pushed in the background.
func (r *RoomSession[S]) Propose(mutate func(S) (S, bool)) bool {
	r.mu.Lock()
	if r.code == "" || r.pushing {
		r.mu.Unlock()
		return false
	}
	next, ok := mutate(r.mirror.Current())
	if !ok {
		r.mu.Unlock()
		return false
	}
	r.mirror = r.mirror.Propose(next)
	r.pushing = true
	timeout, epoch := r.PushTimeout, r.epoch
	r.mu.Unlock()

	go r.push(next, timeout, epoch)
	return true
}

func (r *RoomSession[S]) push(next S, timeout time.Duration, epoch uint64) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	err := r.client.PushState(ctx, next)
	echo, _ := r.client.State()

	r.mu.Lock()
	current := r.epoch == epoch
	r.mu.Unlock()
	if !current {
		// The room was left while the push ran.
		return
	}
	r.events.Send(PushCompletedEvent[S]{State: echo, Err: err})
	if err != nil {
		r.logger.Warn("push failed", "err", err)
		r.events.Send(SyncErrorEvent{Message: err.Error()})
	}
}

// Handle applies a room event to the mirror and reports whether the
// visible state may have changed.
func (r *RoomSession[S]) Handle(evt SessionEvent) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch e := evt.(type) {
	case PushCompletedEvent[S]:
		if r.code == "" {
			return false
		}
		r.pushing = false
		if e.Err != nil {
			r.mirror = r.mirror.Discard()
		} else {
			r.mirror = r.mirror.Confirm(e.State)
		}
		return true
	case StateSyncedEvent[S]:
		if r.code == "" {
			return false
		}
		r.mirror = Reconcile(r.mirror, e.State)
		return true
	case RoomCreatedEvent, RoomJoinedEvent, SyncErrorEvent:
		return true
	}
	return false
}

// Current returns the state the player should see.
func (r *RoomSession[S]) Current() S {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mirror.Current()
}

// Mirror returns both state slots.
func (r *RoomSession[S]) Mirror() Mirror[S] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mirror
}

// Pending reports whether a push is in flight.
func (r *RoomSession[S]) Pending() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pushing
}

// Code returns the room code, or "" outside a room.
func (r *RoomSession[S]) Code() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.code
}

// Role returns this client's role in the room.
func (r *RoomSession[S]) Role() Role {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.role
}

// Err returns the room client's last failure message.
func (r *RoomSession[S]) Err() string {
	return r.client.Err()
}

// Events delivers room events for Handle.
func (r *RoomSession[S]) Events() <-chan SessionEvent {
	return r.events.Events()
}

// Done closes when the session is closed.
func (r *RoomSession[S]) Done() <-chan struct{} {
	return r.events.Done()
}

// Leave abandons the room and stops polling. The session can create or
// join again afterwards.
func (r *RoomSession[S]) Leave() {
	r.stopForwarding()
	r.client.Reset()

	r.mu.Lock()
	var zero S
	r.mirror = Mirror[S]{Remote: zero}
	r.code = ""
	r.role = RoleNone
	r.epoch++
	r.pushing = false
	r.mu.Unlock()
}

// Close leaves the room. It ends event delivery unless the event handle
// was attached by the caller.
func (r *RoomSession[S]) Close() {
	r.Leave()
	if r.owned {
		r.events.Close()
	}
}
