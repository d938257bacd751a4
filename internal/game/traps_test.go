package game

import "testing"

func TestNewTrapService(t *testing.T) {
	t.Run("valid banks", func(t *testing.T) {
		traps, err := NewTrapService([]byte(testTrapYAML))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(traps.banks) != 2 {
			t.Errorf("expected 2 banks, got %d", len(traps.banks))
		}
	})

	t.Run("rejects empty file", func(t *testing.T) {
		if _, err := NewTrapService([]byte("banks: []")); err == nil {
			t.Error("expected error for empty banks")
		}
	})

	t.Run("rejects unknown suit", func(t *testing.T) {
		raw := "banks:\n  - minPlayers: 4\n    maxPlayers: 10\n    tiles:\n      - value: 3\n        suit: Square\n"
		if _, err := NewTrapService([]byte(raw)); err == nil {
			t.Error("expected error for unknown suit")
		}
	})

	t.Run("rejects non-positive value", func(t *testing.T) {
		raw := "banks:\n  - minPlayers: 4\n    maxPlayers: 10\n    tiles:\n      - value: 0\n        suit: Circle\n"
		if _, err := NewTrapService([]byte(raw)); err == nil {
			t.Error("expected error for zero value")
		}
	})
}

func TestTrapService_TileFor(t *testing.T) {
	traps := mustTrapService(t)

	small := traps.TileFor(5)
	if small.Value != 5 || small.Suit != SuitTriangle {
		t.Errorf("5 players: expected 5/Triangle tile, got %d/%s", small.Value, small.Suit)
	}

	large := traps.TileFor(9)
	if large.Value != 7 || large.Suit != SuitCircle {
		t.Errorf("9 players: expected 7/Circle tile, got %d/%s", large.Value, large.Suit)
	}

	// Each draw is a fresh tile instance.
	a, b := traps.TileFor(5), traps.TileFor(5)
	if a.ID == b.ID {
		t.Error("expected distinct tile ids per draw")
	}
}

func TestTrapTile_AcceptsSuit(t *testing.T) {
	triangle := TrapTile{Value: 3, Suit: SuitTriangle}
	if !triangle.AcceptsSuit(SuitTriangle) {
		t.Error("triangle trap should accept triangle")
	}
	if triangle.AcceptsSuit(SuitCircle) {
		t.Error("triangle trap should not accept circle")
	}

	tripWire := TrapTile{Value: 3, Suit: SuitTripWire}
	if !tripWire.AcceptsSuit(SuitTriangle) || !tripWire.AcceptsSuit(SuitCircle) {
		t.Error("trip wire trap should accept both suits")
	}
}
