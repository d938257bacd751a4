package store

import (
	"strings"
	"testing"
	"time"
)

func newTestStore() *MemoryStore {
	return NewMemoryStore(Options{
		CodeLength:       5,
		MaxPlayers:       10,
		AccusationWindow: 5 * time.Minute,
		RoomTimeout:      24 * time.Hour,
	})
}

func TestCreateRoom(t *testing.T) {
	s := newTestStore()

	room, err := s.CreateRoom()
	if err != nil {
		t.Fatalf("failed to create room: %v", err)
	}
	if len(room.Code) != 5 {
		t.Errorf("expected code of length 5, got %q", room.Code)
	}
	for _, c := range room.Code {
		if !strings.ContainsRune("ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789", c) {
			t.Errorf("unexpected character %q in room code", c)
		}
	}
	if s.RoomCount() != 1 {
		t.Errorf("expected 1 room, got %d", s.RoomCount())
	}

	// Codes are unique across rooms.
	seen := map[string]bool{room.Code: true}
	for i := 0; i < 50; i++ {
		r, err := s.CreateRoom()
		if err != nil {
			t.Fatalf("failed to create room %d: %v", i, err)
		}
		if seen[r.Code] {
			t.Fatalf("duplicate room code %s", r.Code)
		}
		seen[r.Code] = true
	}
}

func TestGetRoom(t *testing.T) {
	s := newTestStore()

	room, err := s.CreateRoom()
	if err != nil {
		t.Fatalf("failed to create room: %v", err)
	}

	got, err := s.GetRoom(room.Code)
	if err != nil {
		t.Fatalf("failed to get room: %v", err)
	}
	if got != room {
		t.Error("expected the same room instance back")
	}

	if _, err := s.GetRoom("ZZZZZ"); err == nil {
		t.Error("expected error for unknown room code")
	}
}

func TestDestroyRoom(t *testing.T) {
	s := newTestStore()

	room, err := s.CreateRoom()
	if err != nil {
		t.Fatalf("failed to create room: %v", err)
	}

	s.DestroyRoom(room.Code)
	if _, err := s.GetRoom(room.Code); err == nil {
		t.Error("destroyed room should be gone")
	}
	if s.RoomCount() != 0 {
		t.Errorf("expected 0 rooms, got %d", s.RoomCount())
	}

	// Destroying an unknown code is a no-op.
	s.DestroyRoom("ZZZZZ")
}

func TestReap(t *testing.T) {
	t.Run("FreshEmptyRoomSurvives", func(t *testing.T) {
		s := newTestStore()
		if _, err := s.CreateRoom(); err != nil {
			t.Fatalf("failed to create room: %v", err)
		}

		if reaped := s.Reap(); reaped != 0 {
			t.Errorf("fresh room should survive the grace period, reaped %d", reaped)
		}
	})

	t.Run("StaleEmptyRoomIsReaped", func(t *testing.T) {
		s := newTestStore()
		room, err := s.CreateRoom()
		if err != nil {
			t.Fatalf("failed to create room: %v", err)
		}
		room.CreatedAt = time.Now().Add(-2 * reapGrace)

		if reaped := s.Reap(); reaped != 1 {
			t.Errorf("expected 1 room reaped, got %d", reaped)
		}
		if _, err := s.GetRoom(room.Code); err == nil {
			t.Error("reaped room should be gone")
		}
	})

	t.Run("OccupiedRoomSurvivesGracePeriod", func(t *testing.T) {
		s := newTestStore()
		room, err := s.CreateRoom()
		if err != nil {
			t.Fatalf("failed to create room: %v", err)
		}
		if _, err := room.AddPlayer("alice"); err != nil {
			t.Fatalf("failed to add player: %v", err)
		}
		room.CreatedAt = time.Now().Add(-2 * reapGrace)

		if reaped := s.Reap(); reaped != 0 {
			t.Errorf("occupied room should survive, reaped %d", reaped)
		}
	})

	t.Run("TimeoutReapsEvenOccupiedRooms", func(t *testing.T) {
		s := newTestStore()
		room, err := s.CreateRoom()
		if err != nil {
			t.Fatalf("failed to create room: %v", err)
		}
		if _, err := room.AddPlayer("alice"); err != nil {
			t.Fatalf("failed to add player: %v", err)
		}
		room.CreatedAt = time.Now().Add(-25 * time.Hour)

		if reaped := s.Reap(); reaped != 1 {
			t.Errorf("expected timed-out room reaped, got %d", reaped)
		}
	})
}
