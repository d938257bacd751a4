package game

import "log"

// DisarmResult reports a resolved trap disarm attempt.
type DisarmResult struct {
	Success        bool   `json:"success"`
	Total          int    `json:"total"`
	Required       int    `json:"required"`
	Location       string `json:"location"`
	TrapsRemaining int    `json:"trapsRemaining"`
	InstantDisarm  bool   `json:"instantDisarm,omitempty"`
	GameEnded      bool   `json:"gameEnded,omitempty"`
}

// scoreCards sums the signed contribution of the submitted cards against a
// trap: value-1 cards always add one, value-2 cards add two on a suit match
// (or Trip Wire) and subtract two otherwise.
func scoreCards(trap TrapTile, cards []SupplyCard) int {
	total := 0
	for _, c := range cards {
		switch c.Value {
		case 1:
			total++
		case 2:
			if trap.AcceptsSuit(c.Suit) {
				total += 2
			} else {
				total -= 2
			}
		}
	}
	return total
}

// resolveDisarm scores the pooled contributions once every team member has
// submitted. Four-player games draw one bonus card from the deck into the
// pool before scoring. The trap is consumed whether or not the disarm
// succeeds. Assumes the room lock is held.
func (r *Room) resolveDisarm() *DisarmResult {
	loc := r.locations[r.proposal.Location]
	trap := *loc.Trap

	pool := make([]SupplyCard, 0)
	for _, cards := range r.contributions {
		pool = append(pool, cards...)
	}

	// Small-team compensation: the deck contributes one blind card.
	if len(r.order) == 4 {
		if bonus, ok := r.draw(); ok {
			pool = append(pool, bonus)
		}
	}

	total := scoreCards(trap, pool)
	r.discard = append(r.discard, pool...)
	r.contributions = make(map[string][]SupplyCard)

	success := total >= trap.Value
	r.consumeTrap(loc)

	result := &DisarmResult{
		Success:        success,
		Total:          total,
		Required:       trap.Value,
		Location:       loc.Name,
		TrapsRemaining: r.TrapsRemaining,
	}

	if success {
		log.Printf("room %s: trap disarmed at %s (%d/%d)", r.Code, loc.Name, total, trap.Value)
		if r.TrapsRemaining == 0 {
			r.endGame(WinnerFriends, "all traps disarmed")
			result.GameEnded = true
			return result
		}
	} else {
		log.Printf("room %s: trap triggered at %s (%d/%d)", r.Code, loc.Name, total, trap.Value)
		if r.damageCoral() {
			return result
		}
	}

	r.Phase = PhaseCollectClues
	return result
}

// consumeTrap removes the trap and marks the location visited. The
// traps-remaining counter moves exactly once per visited location,
// regardless of the disarm outcome.
func (r *Room) consumeTrap(loc *Location) {
	loc.Trap = nil
	loc.Visited = true
	if r.TrapsRemaining > 0 {
		r.TrapsRemaining--
	}
}
