// Package roomsync is the client side of the shared room store: a remote
// key-value HTTP service holding one JSON game state per six-character
// room code.
//
// The store offers whole-state replacement only. Concurrent pushes are not
// detected; whichever PUT the store receives last is kept, and every client
// converges on it through polling.
package roomsync

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// DefaultPollInterval is used when Options.PollInterval is zero.
const DefaultPollInterval = 2 * time.Second

// Options configures a Client.
type Options struct {
	BaseURL        string // e.g. https://host/api; "/rooms" is appended
	PollInterval   time.Duration
	RequestTimeout time.Duration
	HTTPClient     *http.Client
	Logger         *log.Logger
}

// Client synchronizes one room's state of type S. S must be a plain JSON
// document type made of exported fields. A Client is safe for concurrent use.
type Client[S any] struct {
	base     string
	interval time.Duration
	http     *http.Client
	logger   *log.Logger

	mu      sync.Mutex
	roomID  string
	state   S
	gen     uint64 // bumped whenever the room association changes
	pushes  uint64 // bumped by every successful push
	lastErr string
	stop    context.CancelFunc
	polling sync.WaitGroup

	updates chan S
}

// New creates a client. No network traffic happens until a room is created
// or joined.
func New[S any](opts Options) *Client[S] {
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: opts.RequestTimeout}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Client[S]{
		base:     strings.TrimRight(opts.BaseURL, "/"),
		interval: opts.PollInterval,
		http:     hc,
		logger:   logger.WithPrefix("roomsync"),
		updates:  make(chan S, 1),
	}
}

// RoomID returns the current room code, or "" when not in a room.
func (c *Client[S]) RoomID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.roomID
}

// State returns the last known room state. ok is false when not in a room.
func (c *Client[S]) State() (s S, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state, c.roomID != ""
}

// Err returns the last recorded failure as a message, or "" after a
// success. The shell renders it as a retryable notice.
func (c *Client[S]) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Updates delivers remote states that differ from the last known state.
// Only the newest undelivered state is kept.
func (c *Client[S]) Updates() <-chan S {
	return c.updates
}

// CreateRoom posts initial and adopts the returned room code and canonical
// state. On failure no room is created and any current room is kept.
func (c *Client[S]) CreateRoom(ctx context.Context, initial S) (string, error) {
	var resp createResponse[S]
	err := c.do(ctx, "create room", http.MethodPost, c.roomsURL(""), createRequest[S]{InitialState: initial}, &resp)
	if err == nil && resp.RoomID == "" {
		err = errors.New("roomsync: create room: response has no roomId")
	}
	if err != nil {
		c.recordErr(err)
		return "", err
	}

	c.adopt(resp.RoomID, resp.GameState)
	c.logger.Info("room created", "room", resp.RoomID)
	return resp.RoomID, nil
}

// JoinRoom fetches the room with code and adopts its state. A missing room
// yields ErrRoomNotFound and leaves the client as it was.
func (c *Client[S]) JoinRoom(ctx context.Context, code string) (S, error) {
	var zero S
	code = strings.TrimSpace(code)
	if code == "" {
		c.recordErr(ErrEmptyCode)
		return zero, ErrEmptyCode
	}

	var resp fetchResponse[S]
	if err := c.do(ctx, "join room", http.MethodGet, c.roomsURL(code), nil, &resp); err != nil {
		c.recordErr(err)
		return zero, err
	}

	roomID := code
	if resp.ID != "" {
		roomID = resp.ID
	}
	c.adopt(roomID, resp.GameState)
	c.logger.Info("room joined", "room", roomID)
	return resp.GameState, nil
}

// PushState replaces the whole remote state with s. Fields other writers
// changed since the last poll are lost unless the caller merged them into
// s first. The echoed state becomes the last known state.
func (c *Client[S]) PushState(ctx context.Context, s S) error {
	c.mu.Lock()
	roomID, gen := c.roomID, c.gen
	c.mu.Unlock()
	if roomID == "" {
		return ErrNoRoom
	}

	var resp replaceResponse[S]
	if err := c.do(ctx, "push state", http.MethodPut, c.roomsURL(roomID), replaceRequest[S]{GameState: s}, &resp); err != nil {
		c.recordErr(err)
		return err
	}

	c.mu.Lock()
	if c.gen == gen {
		c.state = resp.GameState
		c.lastErr = ""
		c.pushes++
	}
	c.mu.Unlock()
	c.logger.Debug("state pushed", "room", roomID)
	return nil
}

// Refresh fetches the room once. changed reports whether the fetched state
// differs structurally from the last known one; only then is it adopted
// and published on Updates. A fetch that overlapped a successful push is
// discarded, since its answer may predate the pushed state.
func (c *Client[S]) Refresh(ctx context.Context) (s S, changed bool, err error) {
	c.mu.Lock()
	roomID, gen, pushes := c.roomID, c.gen, c.pushes
	c.mu.Unlock()
	if roomID == "" {
		return s, false, ErrNoRoom
	}

	var resp fetchResponse[S]
	if err := c.do(ctx, "poll room", http.MethodGet, c.roomsURL(roomID), nil, &resp); err != nil {
		c.mu.Lock()
		if c.gen == gen {
			c.lastErr = err.Error()
		}
		c.mu.Unlock()
		return s, false, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != gen {
		// Room abandoned while the request was in flight.
		return resp.GameState, false, nil
	}
	if c.pushes != pushes {
		// The next poll sees the pushed state or a newer one.
		return c.state, false, nil
	}
	c.lastErr = ""
	if Equal(c.state, resp.GameState) {
		return resp.GameState, false, nil
	}
	c.state = resp.GameState
	c.publish(resp.GameState)
	return resp.GameState, true, nil
}

// Reset abandons the current room: the poll loop is cancelled and the room
// code, state and error are cleared. The remote room is left untouched.
func (c *Client[S]) Reset() {
	c.mu.Lock()
	stop := c.stop
	c.stop = nil
	c.gen++
	c.roomID = ""
	var zero S
	c.state = zero
	c.lastErr = ""
	c.mu.Unlock()

	if stop != nil {
		stop()
	}
	c.polling.Wait()
	c.drain()
}

// Close stops polling. The client can still be reused after Close.
func (c *Client[S]) Close() {
	c.Reset()
}

// Equal is the structural comparison used to suppress redundant updates.
// Nil and empty slices and maps compare equal, as they do once encoded.
func Equal[S any](a, b S) bool {
	return cmp.Equal(a, b, cmpopts.EquateEmpty())
}

// adopt switches to roomID with state and restarts the poll loop.
func (c *Client[S]) adopt(roomID string, state S) {
	c.mu.Lock()
	prev := c.stop
	c.gen++
	c.roomID = roomID
	c.state = state
	c.lastErr = ""
	ctx, cancel := context.WithCancel(context.Background())
	c.stop = cancel
	c.mu.Unlock()

	if prev != nil {
		prev()
	}
	c.polling.Wait()
	c.drain()

	c.polling.Add(1)
	go c.pollLoop(ctx)
}

func (c *Client[S]) pollLoop(ctx context.Context) {
	defer c.polling.Done()

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, changed, err := c.Refresh(ctx); err != nil {
				if ctx.Err() != nil {
					return
				}
				c.logger.Warn("poll failed", "err", err)
			} else if changed {
				c.logger.Debug("remote state changed", "room", c.RoomID())
			}
		}
	}
}

// publish hands s to Updates, replacing an unread older state.
// Caller holds c.mu.
func (c *Client[S]) publish(s S) {
	select {
	case c.updates <- s:
		return
	default:
	}
	select {
	case <-c.updates:
	default:
	}
	select {
	case c.updates <- s:
	default:
	}
}

func (c *Client[S]) drain() {
	select {
	case <-c.updates:
	default:
	}
}

func (c *Client[S]) recordErr(err error) {
	c.mu.Lock()
	c.lastErr = err.Error()
	c.mu.Unlock()
	c.logger.Warn("request failed", "err", err)
}

func (c *Client[S]) roomsURL(id string) string {
	if id == "" {
		return c.base + "/rooms"
	}
	return c.base + "/rooms/" + url.PathEscape(id)
}

func (c *Client[S]) do(ctx context.Context, op, method, target string, body, out any) error {
	var rd io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("roomsync: %s: encode: %w", op, err)
		}
		rd = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, rd)
	if err != nil {
		return fmt.Errorf("roomsync: %s: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("roomsync: %s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound && method != http.MethodPost {
		return ErrRoomNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{Op: op, Status: resp.StatusCode, Body: strings.TrimSpace(string(msg))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("roomsync: %s: decode: %w", op, err)
	}
	return nil
}
