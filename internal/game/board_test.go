package game

import "testing"

func TestSetupBoard(t *testing.T) {
	room := startedRoom(t, 6)

	if len(room.locations) != len(Locations) {
		t.Fatalf("expected %d locations, got %d", len(Locations), len(room.locations))
	}
	if room.plotLocation == "" || room.plotWeapon == "" || room.safeLocation == "" {
		t.Fatal("plot location, plot weapon, and safe location must all be drawn")
	}
	if room.plotLocation == room.safeLocation {
		t.Error("plot location must differ from the safe location")
	}

	traps := 0
	for name, loc := range room.locations {
		if len(loc.Clues) != 2 {
			t.Errorf("location %s: expected 2 clue cards, got %d", name, len(loc.Clues))
		}
		if loc.Visited {
			t.Errorf("location %s: should start unvisited", name)
		}
		if name == room.safeLocation {
			if loc.Trap != nil {
				t.Error("safe location must not carry a trap")
			}
			continue
		}
		if loc.Trap == nil {
			t.Errorf("location %s: expected a trap tile", name)
			continue
		}
		traps++
	}
	if traps != len(Locations)-1 {
		t.Errorf("expected %d traps, got %d", len(Locations)-1, traps)
	}
	if room.TrapsRemaining != len(Locations)-1 {
		t.Errorf("expected TrapsRemaining %d, got %d", len(Locations)-1, room.TrapsRemaining)
	}
}

func TestSetupBoard_PlotNeverAppearsAsClue(t *testing.T) {
	// The plot is only discoverable by elimination; run a few boards since
	// the draw is randomized.
	for i := 0; i < 20; i++ {
		room := startedRoom(t, 6)
		for name, loc := range room.locations {
			for _, clue := range loc.Clues {
				switch clue.Type {
				case ClueLocation:
					if clue.Content == room.plotLocation {
						t.Fatalf("plot location leaked as a clue at %s", name)
					}
					if clue.Content == room.safeLocation {
						t.Fatalf("safe location dealt as a clue at %s", name)
					}
				case ClueWeapon:
					if clue.Content == room.plotWeapon {
						t.Fatalf("plot weapon leaked as a clue at %s", name)
					}
				}
			}
		}
	}
}

func TestClearOccupancy(t *testing.T) {
	room := startedRoom(t, 5)
	dest := missionDestination(room)

	loc := room.locations[dest]
	loc.Occupants = []string{room.order[0], CoralToken}
	room.players[room.order[0]].Location = dest

	room.clearOccupancy()

	if len(loc.Occupants) != 0 {
		t.Error("occupancy should be cleared")
	}
	if room.players[room.order[0]].Location != "" {
		t.Error("player position should be reset")
	}
}
