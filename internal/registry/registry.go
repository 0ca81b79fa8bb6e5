// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-portal/internal/core"
	"github.com/vovakirdan/tui-portal/internal/multiplayer"
	"github.com/vovakirdan/tui-portal/internal/roomsync"
)

// Game is the interface every portal game implements.
// Games contain pure logic with no terminal or network dependencies of their
// own. The platform maps keys to inputs, runs wake timers and renders frames.
type Game interface {
	// ID returns a unique identifier (e.g. "wordle"), used by the CLI and
	// for score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a fresh session for cfg.Player. A zero player leaves the
	// game awaiting one.
	Reset(cfg core.RuntimeConfig)

	// Apply feeds one input to the game. Rejected inputs change nothing.
	Apply(in core.Input) core.StepResult

	// Controls describes the input the game currently accepts.
	Controls() core.Controls

	// Wake returns the wake the game wants delivered, if any.
	Wake() (core.Wake, bool)

	// Render draws the current state into dst. dst is cleared first.
	Render(dst *core.Frame)

	// State returns the render-ready summary.
	State() core.GameState
}

// OnlineGame is a game that can also be played in a shared room.
type OnlineGame interface {
	Game

	// Host creates a room seeded with the current game and returns its code.
	Host(ctx context.Context) (string, error)

	// Join enters an existing room by code.
	Join(ctx context.Context, code string) error

	// Events delivers room events; each one must be passed to Handle on the
	// platform's update loop.
	Events() <-chan multiplayer.SessionEvent

	// Done closes when event delivery has ended for good.
	Done() <-chan struct{}

	// Handle applies a room event and reports whether the game changed.
	Handle(evt multiplayer.SessionEvent) bool

	// RoomCode returns the room code, or "" when not in a room.
	RoomCode() string

	// RoomErr returns the last room failure, or "".
	RoomErr() string

	// Close leaves the room and stops event delivery.
	Close()
}

// Endless is implemented by games that never reach a terminal phase.
// The platform saves their score when the player leaves instead.
type Endless interface {
	Endless() bool
}

// OnlineEnv is what an online game needs to reach the room store.
type OnlineEnv struct {
	Rooms   roomsync.Options
	Session multiplayer.SessionID
	// Events is the connection's event handle. When set, room events are
	// delivered on it and closing it ends delivery; when nil each game
	// gets its own channel.
	Events  *multiplayer.ChannelSession
	Logger  *log.Logger
}

// NewRoomSession builds the room session an online game with room state S
// plays through.
func NewRoomSession[S any](env OnlineEnv) *multiplayer.RoomSession[S] {
	client := roomsync.New[S](env.Rooms)
	if env.Events != nil {
		return multiplayer.AttachRoomSession(env.Events, client, env.Logger)
	}
	return multiplayer.NewRoomSession(env.Session, client, env.Logger)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID     string
	Title  string
	Online bool
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

// OnlineFactory creates a game bound to a room session.
type OnlineFactory func(env OnlineEnv) OnlineGame

var (
	factories = make(map[string]Factory)
	online    = make(map[string]OnlineFactory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	g := f()
	titles[id] = g.Title()
}

// RegisterOnline adds the room variant of an already registered game.
func RegisterOnline(id string, f OnlineFactory) {
	mu.Lock()
	defer mu.Unlock()

	if _, ok := factories[id]; !ok {
		panic(fmt.Sprintf("registry: online variant for unknown game %q", id))
	}
	if _, exists := online[id]; exists {
		panic(fmt.Sprintf("registry: online game %q already registered", id))
	}
	online[id] = f
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		_, hasOnline := online[id]
		result = append(result, GameInfo{
			ID:     id,
			Title:  titles[id],
			Online: hasOnline,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// CreateOnline instantiates the room variant of a game.
func CreateOnline(id string, env OnlineEnv) (OnlineGame, error) {
	mu.RLock()
	defer mu.RUnlock()

	if _, ok := factories[id]; !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	f, ok := online[id]
	if !ok {
		return nil, fmt.Errorf("registry: game %q has no online mode", id)
	}
	return f(env), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// SupportsOnline reports whether the game has a room variant.
func SupportsOnline(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := online[id]
	return ok
}
