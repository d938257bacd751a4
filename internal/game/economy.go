package game

import (
	"log"
	"math/rand"
)

// handCap is 4 in four-player games and 3 otherwise.
func (r *Room) handCap() int {
	if len(r.order) == 4 {
		return 4
	}
	return 3
}

// draw takes the top card of the supply deck, reshuffling the discard pile
// back in first if the deck is empty. Returns false only when both piles
// are empty.
func (r *Room) draw() (SupplyCard, bool) {
	if len(r.deck) == 0 && len(r.discard) > 0 {
		log.Printf("room %s: supply deck empty, reshuffling %d discarded cards", r.Code, len(r.discard))
		r.deck = r.discard
		r.discard = nil
		rand.Shuffle(len(r.deck), func(i, j int) {
			r.deck[i], r.deck[j] = r.deck[j], r.deck[i]
		})
	}
	if len(r.deck) == 0 {
		return SupplyCard{}, false
	}
	card := r.deck[len(r.deck)-1]
	r.deck = r.deck[:len(r.deck)-1]
	return card, true
}

// giveSupply puts a card in a player's hand unless that would push the hand
// over its cap, in which case the card goes to the discard pile.
func (r *Room) giveSupply(p *Player, card SupplyCard) {
	if len(p.Supplies) >= r.handCap() {
		r.discard = append(r.discard, card)
		return
	}
	p.Supplies = append(p.Supplies, card)
}

// dealInitialSupplies fills every hand to the cap at game start.
func (r *Room) dealInitialSupplies() {
	limit := r.handCap()
	for _, id := range r.order {
		p := r.players[id]
		p.Supplies = nil
		for i := 0; i < limit; i++ {
			card, ok := r.draw()
			if !ok {
				return
			}
			p.Supplies = append(p.Supplies, card)
		}
	}
}

// distributeRoundSupplies draws one card per occupant of the visited
// location (team plus Mr. Coral), deals them round-robin to the team, and
// gives every non-team player one replenishment card. Concludes the round.
// Assumes the room lock is held and validation is done.
func (r *Room) distributeRoundSupplies() {
	team := r.proposal.Team
	for i := 0; i < len(team)+1; i++ {
		card, ok := r.draw()
		if !ok {
			break
		}
		r.giveSupply(r.players[team[i%len(team)]], card)
	}

	for _, id := range r.order {
		if r.proposal.OnTeam(id) || !r.players[id].Connected {
			continue
		}
		card, ok := r.draw()
		if !ok {
			break
		}
		r.giveSupply(r.players[id], card)
	}

	r.endRound()
}

// endRound clears mission state, rotates the scout, and opens the next
// round's team selection.
func (r *Room) endRound() {
	r.clearOccupancy()

	r.prevScout = r.currentScout
	r.prevBodyguard = r.currentBodyguard

	r.rotateScout()

	r.currentBodyguard = ""
	r.proposal = nil
	r.votes = make(map[string]Ballot)
	r.contributions = make(map[string][]SupplyCard)

	r.Round++
	r.Phase = PhaseChooseTeam
	log.Printf("room %s: round %d begins, scout %s", r.Code, r.Round, r.players[r.currentScout].Name)
}
