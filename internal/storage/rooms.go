package storage

import (
	"fmt"
	"time"
)

// RoomEntry is a room this device created or joined.
type RoomEntry struct {
	RoomID    string
	GameID    string
	PlayerID  string
	Host      bool
	CreatedAt time.Time
}

// RecordRoom remembers a created or joined room so it can be rejoined.
func (s *Store) RecordRoom(e RoomEntry) error {
	host := 0
	if e.Host {
		host = 1
	}
	_, err := s.db.Exec(
		"INSERT INTO rooms (room_id, game_id, player_id, host) VALUES (?, ?, ?, ?)",
		e.RoomID, e.GameID, e.PlayerID, host,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record room: %w", err)
	}
	return nil
}

// RecentRooms returns the most recently used rooms, newest first.
func (s *Store) RecentRooms(limit int) ([]RoomEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		`SELECT room_id, game_id, player_id, host, created_at
		 FROM rooms
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rooms: %w", err)
	}
	defer rows.Close()

	var out []RoomEntry
	for rows.Next() {
		var e RoomEntry
		var host int
		var createdAt any
		if err := rows.Scan(&e.RoomID, &e.GameID, &e.PlayerID, &host, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Host = host != 0
		e.CreatedAt = parseTime(createdAt)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}
