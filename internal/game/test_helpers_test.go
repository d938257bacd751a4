package game

import (
	"fmt"
	"testing"
	"time"
)

// Every trap drawn in tests is deterministic: one tile per bank.
const testTrapYAML = `banks:
  - minPlayers: 4
    maxPlayers: 7
    tiles:
      - value: 5
        suit: Triangle
  - minPlayers: 8
    maxPlayers: 10
    tiles:
      - value: 7
        suit: Circle
`

func mustTrapService(t *testing.T) *TrapService {
	t.Helper()
	traps, err := NewTrapService([]byte(testTrapYAML))
	if err != nil {
		t.Fatalf("failed to build trap service: %v", err)
	}
	return traps
}

// newTestRoom builds a lobby room seating n players named player1..playerN.
func newTestRoom(t *testing.T, n int) *Room {
	t.Helper()
	room := NewRoom("TEST1", 10, time.Minute, mustTrapService(t))
	for i := 0; i < n; i++ {
		if _, err := room.AddPlayer(fmt.Sprintf("player%d", i+1)); err != nil {
			t.Fatalf("failed to seat player%d: %v", i+1, err)
		}
	}
	return room
}

// startedRoom starts an n-player game, closes the briefing if there is one,
// and pins the scout to the first seat so tests are deterministic.
func startedRoom(t *testing.T, n int) *Room {
	t.Helper()
	room := newTestRoom(t, n)
	if err := room.Start(); err != nil {
		t.Fatalf("failed to start game: %v", err)
	}
	if room.Phase == PhaseConspiracyBriefing {
		if err := room.FinishConspiracyBriefing(); err != nil {
			t.Fatalf("failed to finish briefing: %v", err)
		}
	}
	room.currentScout = room.order[0]
	return room
}

// missionDestination picks a location that is neither safe nor the plot,
// so a mission there neither skips the trap nor risks activation.
func missionDestination(r *Room) string {
	for _, name := range Locations {
		if name != r.safeLocation && name != r.plotLocation {
			return name
		}
	}
	return ""
}

// approveAll casts an approve ballot for every seat.
func approveAll(t *testing.T, r *Room) {
	t.Helper()
	for _, id := range r.order {
		if _, err := r.CastVote(id, true); err != nil {
			t.Fatalf("vote by %s failed: %v", id, err)
		}
	}
}

func totalSupplyCards(r *Room) int {
	total := len(r.deck) + len(r.discard)
	for _, p := range r.players {
		total += len(p.Supplies)
	}
	for _, cards := range r.contributions {
		total += len(cards)
	}
	return total
}
