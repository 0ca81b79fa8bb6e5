package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-portal/internal/identity"
)

// LocalProfile is the profile key used by the local terminal.
const LocalProfile = "local"

// Profile returns an identity.Store that keeps one player under key.
// The local terminal uses LocalProfile; SSH sessions use the SSH user name.
func (s *Store) Profile(key string) identity.Store {
	return &profileStore{db: s.db, key: key}
}

type profileStore struct {
	db  *sql.DB
	key string
}

func (p *profileStore) LoadPlayer() (identity.Player, bool, error) {
	var raw string
	err := p.db.QueryRow(
		"SELECT player_json FROM profiles WHERE profile_key = ?", p.key,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return identity.Player{}, false, nil
	}
	if err != nil {
		return identity.Player{}, false, fmt.Errorf("storage: cannot load profile: %w", err)
	}

	var player identity.Player
	if err := json.Unmarshal([]byte(raw), &player); err != nil {
		return identity.Player{}, false, fmt.Errorf("storage: corrupt profile %q: %w", p.key, err)
	}
	return player, !player.IsZero(), nil
}

func (p *profileStore) SavePlayer(player identity.Player) error {
	raw, err := json.Marshal(player)
	if err != nil {
		return fmt.Errorf("storage: cannot encode profile: %w", err)
	}
	_, err = p.db.Exec(
		`INSERT INTO profiles (profile_key, player_json) VALUES (?, ?)
		 ON CONFLICT(profile_key) DO UPDATE SET player_json = excluded.player_json, updated_at = CURRENT_TIMESTAMP`,
		p.key, string(raw),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save profile: %w", err)
	}
	return nil
}

func (p *profileStore) ClearPlayer() error {
	if _, err := p.db.Exec("DELETE FROM profiles WHERE profile_key = ?", p.key); err != nil {
		return fmt.Errorf("storage: cannot clear profile: %w", err)
	}
	return nil
}
