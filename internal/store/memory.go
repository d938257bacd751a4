package store

import (
	"crypto/rand"
	"fmt"
	"log"
	"sync"
	"time"

	"clueconspiracy/internal/game"
)

// MemoryStore holds every active room in memory. Room codes are unique for
// the lifetime of the room; codes free up once the room is reclaimed.
type MemoryStore struct {
	mu    sync.RWMutex
	rooms map[string]*game.Room

	codeLength       int
	maxPlayers       int
	accusationWindow time.Duration
	roomTimeout      time.Duration
	traps            *game.TrapService
}

// Options carries the store's tunables.
type Options struct {
	CodeLength       int
	MaxPlayers       int
	AccusationWindow time.Duration
	RoomTimeout      time.Duration
	Traps            *game.TrapService
}

// NewMemoryStore creates a new in-memory store
func NewMemoryStore(opts Options) *MemoryStore {
	return &MemoryStore{
		rooms:            make(map[string]*game.Room),
		codeLength:       opts.CodeLength,
		maxPlayers:       opts.MaxPlayers,
		accusationWindow: opts.AccusationWindow,
		roomTimeout:      opts.RoomTimeout,
		traps:            opts.Traps,
	}
}

// CreateRoom creates a new game room with a fresh code.
func (s *MemoryStore) CreateRoom() (*game.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var code string
	for i := 0; i < 10; i++ { // Try up to 10 times
		code = s.generateRoomCode()
		if _, exists := s.rooms[code]; !exists {
			break
		}
	}
	if _, exists := s.rooms[code]; exists {
		return nil, fmt.Errorf("could not allocate a unique room code")
	}

	room := game.NewRoom(code, s.maxPlayers, s.accusationWindow, s.traps)
	s.rooms[code] = room
	log.Printf("store: created room %s", code)
	return room, nil
}

// GetRoom retrieves a room by code
func (s *MemoryStore) GetRoom(code string) (*game.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	room, exists := s.rooms[code]
	if !exists {
		return nil, fmt.Errorf("room %s not found", code)
	}

	return room, nil
}

// DestroyRoom removes a room immediately, freeing its code.
func (s *MemoryStore) DestroyRoom(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.rooms[code]; exists {
		delete(s.rooms, code)
		log.Printf("store: destroyed room %s", code)
	}
}

// RoomCount returns the number of live rooms.
func (s *MemoryStore) RoomCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rooms)
}

// reapGrace keeps freshly created rooms alive long enough for the creator
// to join.
const reapGrace = time.Minute

// Reap removes rooms with no connected players and rooms older than the
// configured timeout. Returns how many rooms were reclaimed.
func (s *MemoryStore) Reap() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	reaped := 0
	now := time.Now()
	for code, room := range s.rooms {
		age := now.Sub(room.CreatedAt)
		if (room.Empty() && age > reapGrace) || (s.roomTimeout > 0 && age > s.roomTimeout) {
			delete(s.rooms, code)
			reaped++
			log.Printf("store: reaped room %s", code)
		}
	}
	return reaped
}

// StartJanitor sweeps for dead rooms on the given interval until stop is
// closed.
func (s *MemoryStore) StartJanitor(interval time.Duration, stop <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.Reap()
			case <-stop:
				return
			}
		}
	}()
}

// generateRoomCode generates an alphanumeric code of the configured length.
func (s *MemoryStore) generateRoomCode() string {
	const chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, s.codeLength)
	rand.Read(b)

	for i := range b {
		b[i] = chars[b[i]%byte(len(chars))]
	}

	return string(b)
}
