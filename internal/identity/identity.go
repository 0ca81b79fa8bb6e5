package identity

import (
	"errors"
	"fmt"
	"sync"
)

// ErrAlreadyLoggedIn is returned by Login while another player is active.
var ErrAlreadyLoggedIn = errors.New("identity: a player is already logged in")

// Store persists the current player for one profile (a device, or an SSH user).
type Store interface {
	// LoadPlayer returns the saved player; ok is false when nothing is saved.
	LoadPlayer() (p Player, ok bool, err error)
	SavePlayer(p Player) error
	ClearPlayer() error
}

// Identity is the login state for one profile. Safe for concurrent use.
type Identity struct {
	mu     sync.Mutex
	store  Store
	loaded bool
	player Player
}

// New creates an Identity backed by store.
func New(store Store) *Identity {
	return &Identity{store: store}
}

func (id *Identity) load() error {
	if id.loaded {
		return nil
	}
	p, ok, err := id.store.LoadPlayer()
	if err != nil {
		return fmt.Errorf("identity: load player: %w", err)
	}
	if ok {
		id.player = p
	}
	id.loaded = true
	return nil
}

// CurrentPlayer returns the logged-in player, if any.
func (id *Identity) CurrentPlayer() (Player, bool, error) {
	id.mu.Lock()
	defer id.mu.Unlock()

	if err := id.load(); err != nil {
		return Player{}, false, err
	}
	return id.player, !id.player.IsZero(), nil
}

// Login makes p the current player. A missing id is generated; the id is
// then fixed until Logout.
func (id *Identity) Login(p Player) (Player, error) {
	id.mu.Lock()
	defer id.mu.Unlock()

	if err := id.load(); err != nil {
		return Player{}, err
	}
	if !id.player.IsZero() {
		return id.player, ErrAlreadyLoggedIn
	}

	name, err := NormalizeName(p.Name)
	if err != nil {
		return Player{}, err
	}
	avatar, ok := LookupAvatar(p.Avatar.ID)
	if !ok {
		return Player{}, fmt.Errorf("%w: %q", ErrUnknownAvatar, p.Avatar.ID)
	}
	if p.ID == "" {
		fresh, err := NewPlayer(name, avatar.ID)
		if err != nil {
			return Player{}, err
		}
		p = fresh
	} else {
		p.Name = name
		p.Avatar = avatar
	}

	if err := id.store.SavePlayer(p); err != nil {
		return Player{}, fmt.Errorf("identity: save player: %w", err)
	}
	id.player = p
	return p, nil
}

// Rename patches the current player's name; id and avatar are kept.
func (id *Identity) Rename(name string) (Player, error) {
	id.mu.Lock()
	defer id.mu.Unlock()

	if err := id.load(); err != nil {
		return Player{}, err
	}
	if id.player.IsZero() {
		return Player{}, ErrNotLoggedIn
	}
	name, err := NormalizeName(name)
	if err != nil {
		return Player{}, err
	}

	next := id.player
	next.Name = name
	if err := id.store.SavePlayer(next); err != nil {
		return Player{}, fmt.Errorf("identity: save player: %w", err)
	}
	id.player = next
	return next, nil
}

// Logout clears the current player.
func (id *Identity) Logout() error {
	id.mu.Lock()
	defer id.mu.Unlock()

	if err := id.store.ClearPlayer(); err != nil {
		return fmt.Errorf("identity: clear player: %w", err)
	}
	id.player = Player{}
	id.loaded = true
	return nil
}

// MemoryStore keeps the player in memory. Used by tests and by SSH
// sessions running without a database.
type MemoryStore struct {
	mu     sync.Mutex
	player Player
	saved  bool
}

// LoadPlayer implements Store.
func (m *MemoryStore) LoadPlayer() (Player, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.player, m.saved, nil
}

// SavePlayer implements Store.
func (m *MemoryStore) SavePlayer(p Player) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.player = p
	m.saved = true
	return nil
}

// ClearPlayer implements Store.
func (m *MemoryStore) ClearPlayer() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.player = Player{}
	m.saved = false
	return nil
}
