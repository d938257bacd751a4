package game

import (
	"time"
)

// Role is a player's secret allegiance.
type Role string

const (
	RoleRingleader Role = "ringleader"
	RoleAccomplice Role = "accomplice"
	RoleFriend     Role = "friend"
)

// Conspiracy reports whether the role is part of the hidden conspiracy.
func (r Role) Conspiracy() bool {
	return r == RoleRingleader || r == RoleAccomplice
}

// ClaimedClues are the bodyguard's public announcements about collected
// clues. Claims are talk, not truth: nothing verifies them against the
// cards actually picked up.
type ClaimedClues struct {
	Weapons   []string `json:"weapons"`
	Locations []string `json:"locations"`
}

// Player represents a player in the game
type Player struct {
	ID        string
	Name      string
	Character string
	Role      Role

	Supplies []SupplyCard
	Clues    []ClueCard
	Claimed  ClaimedClues

	// Location is where the player currently stands; reset every round.
	Location  string
	Alive     bool
	Connected bool
	JoinedAt  time.Time

	// streams counts open event streams for this player, guarded by the
	// room lock. A refresh opens the new stream before the old one closes,
	// so presence only drops when the count reaches zero.
	streams int
}

// NewPlayer creates a new player
func NewPlayer(id, name, character string) *Player {
	return &Player{
		ID:        id,
		Name:      name,
		Character: character,
		Alive:     true,
		Connected: true,
		JoinedAt:  time.Now(),
	}
}

// removeSupply takes the card with the given id out of the player's hand.
// The second return is false if the player does not hold it.
func (p *Player) removeSupply(cardID string) (SupplyCard, bool) {
	for i, c := range p.Supplies {
		if c.ID == cardID {
			p.Supplies = append(p.Supplies[:i], p.Supplies[i+1:]...)
			return c, true
		}
	}
	return SupplyCard{}, false
}

// removeClue takes the clue card with the given id and type out of the
// player's clue hand.
func (p *Player) removeClue(cardID string, t ClueType) (ClueCard, bool) {
	for i, c := range p.Clues {
		if c.ID == cardID && c.Type == t {
			p.Clues = append(p.Clues[:i], p.Clues[i+1:]...)
			return c, true
		}
	}
	return ClueCard{}, false
}
