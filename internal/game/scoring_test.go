package game

import "testing"

func TestScoreCards(t *testing.T) {
	tests := []struct {
		name  string
		trap  TrapTile
		cards []SupplyCard
		want  int
	}{
		{
			name: "mismatched suit subtracts",
			trap: TrapTile{Value: 5, Suit: SuitTriangle},
			cards: []SupplyCard{
				{Value: 1},
				{Value: 2, Suit: SuitTriangle},
				{Value: 2, Suit: SuitCircle},
			},
			want: 1,
		},
		{
			name: "trip wire accepts both suits",
			trap: TrapTile{Value: 4, Suit: SuitTripWire},
			cards: []SupplyCard{
				{Value: 2, Suit: SuitTriangle},
				{Value: 2, Suit: SuitCircle},
			},
			want: 4,
		},
		{
			name:  "empty pool scores zero",
			trap:  TrapTile{Value: 3, Suit: SuitCircle},
			cards: nil,
			want:  0,
		},
		{
			name: "all mismatches go negative",
			trap: TrapTile{Value: 3, Suit: SuitCircle},
			cards: []SupplyCard{
				{Value: 2, Suit: SuitTriangle},
				{Value: 2, Suit: SuitTriangle},
			},
			want: -4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := scoreCards(tt.trap, tt.cards); got != tt.want {
				t.Errorf("scoreCards() = %d, want %d", got, tt.want)
			}
		})
	}
}

// advanceToDisarm walks a five-player room to the disarm phase with a known
// destination and returns the destination name.
func advanceToDisarm(t *testing.T, room *Room) string {
	t.Helper()
	scout := room.order[0]
	bodyguard := room.order[1]
	dest := missionDestination(room)

	if err := room.ProposeTeam(scout, bodyguard, nil, dest); err != nil {
		t.Fatalf("propose failed: %v", err)
	}
	approveAll(t, room)

	if room.Phase != PhasePlotCheck {
		t.Fatalf("expected plot check after approval, got %s", room.Phase)
	}
	activated, err := room.CheckPlot()
	if err != nil {
		t.Fatalf("plot check failed: %v", err)
	}
	if activated {
		t.Fatal("plot should not activate at full health")
	}
	if room.Phase != PhaseDisarmTraps {
		t.Fatalf("expected disarm phase, got %s", room.Phase)
	}
	return dest
}

func TestResolveDisarm_Success(t *testing.T) {
	room := startedRoom(t, 5)
	scout, bodyguard := room.order[0], room.order[1]
	dest := advanceToDisarm(t, room)

	// Test bank trap is 5/Triangle; three matched twos clear it.
	room.players[scout].Supplies = []SupplyCard{
		newSupplyCard(2, SuitTriangle),
		newSupplyCard(2, SuitTriangle),
	}
	room.players[bodyguard].Supplies = []SupplyCard{
		newSupplyCard(2, SuitTriangle),
	}

	res, err := room.SubmitSupplyCards(scout, []string{
		room.players[scout].Supplies[0].ID,
		room.players[scout].Supplies[1].ID,
	})
	if err != nil {
		t.Fatalf("scout submission failed: %v", err)
	}
	if res.AllSubmitted {
		t.Fatal("disarm should wait for the whole team")
	}

	res, err = room.SubmitSupplyCards(bodyguard, []string{room.players[bodyguard].Supplies[0].ID})
	if err != nil {
		t.Fatalf("bodyguard submission failed: %v", err)
	}
	if !res.AllSubmitted || res.Disarm == nil {
		t.Fatal("expected resolution after final submission")
	}
	if !res.Disarm.Success {
		t.Errorf("expected success, total %d vs required %d", res.Disarm.Total, res.Disarm.Required)
	}
	if res.Disarm.Total != 6 {
		t.Errorf("expected total 6, got %d", res.Disarm.Total)
	}

	loc := room.locations[dest]
	if loc.Trap != nil || !loc.Visited {
		t.Error("trap should be consumed and location marked visited")
	}
	if room.TrapsRemaining != 7 {
		t.Errorf("expected 7 traps remaining, got %d", room.TrapsRemaining)
	}
	if room.Health != startingHealth {
		t.Errorf("health should be untouched on success, got %d", room.Health)
	}
	if room.Phase != PhaseCollectClues {
		t.Errorf("expected collect clues, got %s", room.Phase)
	}
}

func TestResolveDisarm_Failure(t *testing.T) {
	room := startedRoom(t, 5)
	scout, bodyguard := room.order[0], room.order[1]
	dest := advanceToDisarm(t, room)

	// 1 + 2 - 2 = 1 against a value-5 trap.
	room.players[scout].Supplies = []SupplyCard{
		newSupplyCard(1, ""),
		newSupplyCard(2, SuitTriangle),
	}
	room.players[bodyguard].Supplies = []SupplyCard{
		newSupplyCard(2, SuitCircle),
	}

	if _, err := room.SubmitSupplyCards(scout, []string{
		room.players[scout].Supplies[0].ID,
		room.players[scout].Supplies[1].ID,
	}); err != nil {
		t.Fatalf("scout submission failed: %v", err)
	}
	res, err := room.SubmitSupplyCards(bodyguard, []string{room.players[bodyguard].Supplies[0].ID})
	if err != nil {
		t.Fatalf("bodyguard submission failed: %v", err)
	}

	if res.Disarm.Success {
		t.Error("expected failure")
	}
	if res.Disarm.Total != 1 {
		t.Errorf("expected total 1, got %d", res.Disarm.Total)
	}
	if room.Health != startingHealth-1 {
		t.Errorf("expected health %d after failure, got %d", startingHealth-1, room.Health)
	}

	// The trap is consumed even on failure.
	loc := room.locations[dest]
	if loc.Trap != nil || !loc.Visited {
		t.Error("failed disarm should still consume the trap")
	}
	if room.TrapsRemaining != 7 {
		t.Errorf("expected 7 traps remaining, got %d", room.TrapsRemaining)
	}
	if room.Phase != PhaseCollectClues {
		t.Errorf("expected collect clues, got %s", room.Phase)
	}
}

func TestResolveDisarm_FourPlayerBonusCard(t *testing.T) {
	room := startedRoom(t, 4)
	scout, bodyguard := room.order[0], room.order[1]
	advanceToDisarm(t, room)

	// Rig the deck so the blind bonus card is a matched two; team submits
	// one triangle two and one ace for 2+1+2 = 5 against the 5/Triangle trap.
	room.deck = []SupplyCard{newSupplyCard(2, SuitTriangle)}
	room.discard = nil

	room.players[scout].Supplies = []SupplyCard{newSupplyCard(2, SuitTriangle)}
	room.players[bodyguard].Supplies = []SupplyCard{newSupplyCard(1, "")}

	if _, err := room.SubmitSupplyCards(scout, []string{room.players[scout].Supplies[0].ID}); err != nil {
		t.Fatalf("scout submission failed: %v", err)
	}
	res, err := room.SubmitSupplyCards(bodyguard, []string{room.players[bodyguard].Supplies[0].ID})
	if err != nil {
		t.Fatalf("bodyguard submission failed: %v", err)
	}

	if res.Disarm.Total != 5 {
		t.Errorf("expected bonus card in the pool for total 5, got %d", res.Disarm.Total)
	}
	if !res.Disarm.Success {
		t.Error("expected success with the bonus card")
	}
	if len(room.deck) != 0 {
		t.Error("bonus card should come off the deck")
	}
}

func TestSubmitSupplyCards_Validation(t *testing.T) {
	room := startedRoom(t, 5)
	scout := room.order[0]
	outsider := room.order[4]
	advanceToDisarm(t, room)

	if _, err := room.SubmitSupplyCards(outsider, nil); err != ErrUnauthorizedActor {
		t.Errorf("expected ErrUnauthorizedActor for non-team member, got %v", err)
	}

	handBefore := len(room.players[scout].Supplies)
	if _, err := room.SubmitSupplyCards(scout, []string{"no-such-card"}); err != ErrInvalidTarget {
		t.Errorf("expected ErrInvalidTarget for unknown card, got %v", err)
	}
	if len(room.players[scout].Supplies) != handBefore {
		t.Error("rejected submission must not remove cards")
	}

	// Listing the same card twice rejects with the hand intact.
	first := room.players[scout].Supplies[0]
	if _, err := room.SubmitSupplyCards(scout, []string{first.ID, first.ID}); err != ErrInvalidTarget {
		t.Errorf("expected ErrInvalidTarget for a doubled card, got %v", err)
	}
	if len(room.players[scout].Supplies) != handBefore {
		t.Error("rejected duplicate submission must not remove cards")
	}

	// Holding everything back is not a contribution.
	if _, err := room.SubmitSupplyCards(scout, nil); err != ErrInvalidTarget {
		t.Errorf("expected ErrInvalidTarget for an empty submission, got %v", err)
	}

	if _, err := room.SubmitSupplyCards(scout, []string{first.ID}); err != nil {
		t.Fatalf("submission failed: %v", err)
	}
	if _, err := room.SubmitSupplyCards(scout, []string{first.ID}); err != ErrDuplicateSubmission {
		t.Errorf("expected ErrDuplicateSubmission, got %v", err)
	}

	// A player whose hand ran dry may pass, so the phase cannot stall.
	bodyguard := room.order[1]
	room.players[bodyguard].Supplies = nil
	if _, err := room.SubmitSupplyCards(bodyguard, nil); err != nil {
		t.Fatalf("empty-handed pass failed: %v", err)
	}
}
