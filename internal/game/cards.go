package game

import (
	"math/rand"

	"github.com/google/uuid"
)

// Locations is the fixed set of nine board locations.
var Locations = []string{
	"Palm Lounge", "Infinity Pool", "Concierge Station", "Lifeguard Post", "Utility Room",
	"Hidden Cove", "Botanical Spa", "Observation Deck", "Royal Villa",
}

// Weapons is the fixed set of nine plot weapons.
var Weapons = []string{
	"Poison", "Knife", "Rope", "Wrench", "Candlestick",
	"Revolver", "Lead Pipe", "Dumbbell", "Trophy",
}

// Characters are dealt to players in join order.
var Characters = []string{
	"Miss Scarlett", "Colonel Mustard", "Mayor Green", "Solicitor Peacock",
	"Professor Plum", "Chef White", "Director Rosewood", "Dean Celadon",
	"Analyst Hyacinth", "Agent Gray",
}

// Suit is the suit of a value-2 supply card or a trap tile.
type Suit string

const (
	SuitTriangle Suit = "Triangle"
	SuitCircle   Suit = "Circle"
	// SuitTripWire appears only on trap tiles and accepts either card suit.
	SuitTripWire Suit = "Trip Wire"
)

// SupplyCard is a value/suit token used to disarm traps.
// Value-1 cards carry no suit.
type SupplyCard struct {
	ID    string `json:"id"`
	Value int    `json:"value"`
	Suit  Suit   `json:"suit,omitempty"`
}

// ClueType identifies what a clue card reveals.
type ClueType string

const (
	ClueLocation      ClueType = "location"
	ClueWeapon        ClueType = "weapon"
	ClueInstantDisarm ClueType = "instant_disarm"
	ClueNone          ClueType = "no_clue"
)

// ClueCard is an information token collected by the bodyguard.
// Content is empty for instant-disarm and no-clue cards.
type ClueCard struct {
	ID      string   `json:"id"`
	Type    ClueType `json:"type"`
	Content string   `json:"content,omitempty"`
}

func newSupplyCard(value int, suit Suit) SupplyCard {
	return SupplyCard{ID: uuid.NewString(), Value: value, Suit: suit}
}

func newClueCard(t ClueType, content string) ClueCard {
	return ClueCard{ID: uuid.NewString(), Type: t, Content: content}
}

// newSupplyDeck builds the fixed 35-card supply deck, shuffled:
// 15 unsuited value-1 cards plus 10 of each suited value-2 card.
func newSupplyDeck() []SupplyCard {
	deck := make([]SupplyCard, 0, 35)
	for i := 0; i < 15; i++ {
		deck = append(deck, newSupplyCard(1, ""))
	}
	for i := 0; i < 10; i++ {
		deck = append(deck, newSupplyCard(2, SuitTriangle))
		deck = append(deck, newSupplyCard(2, SuitCircle))
	}
	rand.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	return deck
}

func shuffleStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

func shuffleClues(in []ClueCard) []ClueCard {
	out := make([]ClueCard, len(in))
	copy(out, in)
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
