package game

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// TrapTile is a per-location difficulty: the team's submitted supply cards
// must total at least Value. A Trip Wire tile accepts either suit.
type TrapTile struct {
	ID    string `json:"id"`
	Value int    `json:"value" yaml:"value"`
	Suit  Suit   `json:"suit" yaml:"suit"`
}

// AcceptsSuit reports whether a suited value-2 card counts positively
// against this trap.
func (t TrapTile) AcceptsSuit(s Suit) bool {
	return t.Suit == SuitTripWire || t.Suit == s
}

type trapBank struct {
	MinPlayers int        `yaml:"minPlayers"`
	MaxPlayers int        `yaml:"maxPlayers"`
	Tiles      []TrapTile `yaml:"tiles"`
}

type trapTileFile struct {
	Banks []trapBank `yaml:"banks"`
}

// TrapService holds the trap tile banks loaded from the embedded
// trap-tiles.yaml asset.
type TrapService struct {
	banks []trapBank
}

// NewTrapService parses the embedded trap tile definitions, failing fast on
// malformed data.
func NewTrapService(raw []byte) (*TrapService, error) {
	var file trapTileFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse trap tiles: %w", err)
	}
	if len(file.Banks) == 0 {
		return nil, fmt.Errorf("trap tile file contains no banks")
	}
	for _, bank := range file.Banks {
		if len(bank.Tiles) == 0 {
			return nil, fmt.Errorf("trap bank %d-%d players has no tiles", bank.MinPlayers, bank.MaxPlayers)
		}
		for _, tile := range bank.Tiles {
			if tile.Value <= 0 {
				return nil, fmt.Errorf("trap bank %d-%d players has tile with value %d", bank.MinPlayers, bank.MaxPlayers, tile.Value)
			}
			switch tile.Suit {
			case SuitTriangle, SuitCircle, SuitTripWire:
			default:
				return nil, fmt.Errorf("trap bank %d-%d players has unknown suit %q", bank.MinPlayers, bank.MaxPlayers, tile.Suit)
			}
		}
	}
	return &TrapService{banks: file.Banks}, nil
}

// TileFor draws a random trap tile from the bank matching the player count.
func (s *TrapService) TileFor(playerCount int) TrapTile {
	bank := s.banks[0]
	for _, b := range s.banks {
		if playerCount >= b.MinPlayers && playerCount <= b.MaxPlayers {
			bank = b
			break
		}
	}
	tile := bank.Tiles[rand.Intn(len(bank.Tiles))]
	tile.ID = uuid.NewString()
	return tile
}
