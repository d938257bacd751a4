package game

import "time"

// The projections below are the only state that ever leaves the engine.
// Both are computed on demand from the canonical room state; nothing is
// mutated and no secret (plot, hands, roles) may appear in PublicState.

// PublicPlayer is the roster entry everyone sees: card counts, never card
// contents.
type PublicPlayer struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Character   string       `json:"character"`
	SupplyCount int          `json:"supplyCount"`
	ClueCount   int          `json:"clueCount"`
	Claimed     ClaimedClues `json:"claimed"`
	Location    string       `json:"location,omitempty"`
	Alive       bool         `json:"alive"`
	Connected   bool         `json:"connected"`
}

// PublicLocation exposes trap presence, value, and suit, but not the
// face-down clue contents.
type PublicLocation struct {
	Name      string   `json:"name"`
	HasTrap   bool     `json:"hasTrap"`
	TrapValue int      `json:"trapValue,omitempty"`
	TrapSuit  Suit     `json:"trapSuit,omitempty"`
	ClueCount int      `json:"clueCount"`
	Occupants []string `json:"occupants,omitempty"`
	Visited   bool     `json:"visited"`
}

// Activity summarizes who the room is waiting on.
type Activity struct {
	Primary string   `json:"primary"`
	Waiting []string `json:"waiting,omitempty"`
}

// PublicState is the projection broadcast to every player.
type PublicState struct {
	Code               string           `json:"code"`
	Phase              Phase            `json:"phase"`
	Round              int              `json:"round"`
	Health             int              `json:"health"`
	StormTracker       int              `json:"stormTracker"`
	TrapsRemaining     int              `json:"trapsRemaining"`
	SafeLocation       string           `json:"safeLocation,omitempty"`
	CurrentScout       string           `json:"currentScout,omitempty"`
	CurrentBodyguard   string           `json:"currentBodyguard,omitempty"`
	Players            []PublicPlayer   `json:"players"`
	Locations          []PublicLocation `json:"locations"`
	Mission            *Mission         `json:"mission,omitempty"`
	VotesCast          []string         `json:"votesCast,omitempty"`
	FailedFinalVotes   int              `json:"failedFinalVotes,omitempty"`
	AccusationDeadline *time.Time       `json:"accusationDeadline,omitempty"`
	Winner             Winner           `json:"winner,omitempty"`
	EndReason          string           `json:"endReason,omitempty"`
	Activity           Activity         `json:"activity"`
	Log                []LogEntry       `json:"log,omitempty"`
}

// PlotInfo is the conspiracy's shared secret.
type PlotInfo struct {
	Location      string   `json:"location"`
	Weapon        string   `json:"weapon"`
	RingleaderID  string   `json:"ringleaderId,omitempty"`
	AccompliceIDs []string `json:"accompliceIds,omitempty"`
}

// PrivateState is the per-player projection: own hands, own role, and plot
// knowledge for conspiracy members only.
type PrivateState struct {
	PlayerID    string       `json:"playerId"`
	Role        Role         `json:"role,omitempty"`
	Supplies    []SupplyCard `json:"supplies"`
	Clues       []ClueCard   `json:"clues"`
	IsScout     bool         `json:"isScout"`
	IsBodyguard bool         `json:"isBodyguard"`
	Plot        *PlotInfo    `json:"plot,omitempty"`
}

// PublicView computes the public projection.
func (r *Room) PublicView() *PublicState {
	r.mu.Lock()
	defer r.mu.Unlock()

	state := &PublicState{
		Code:             r.Code,
		Phase:            r.Phase,
		Round:            r.Round,
		Health:           r.Health,
		StormTracker:     r.StormTracker,
		TrapsRemaining:   r.TrapsRemaining,
		SafeLocation:     r.safeLocation,
		CurrentScout:     r.currentScout,
		CurrentBodyguard: r.currentBodyguard,
		Mission:          r.proposal,
		FailedFinalVotes: r.failedFinalVotes,
		Winner:           r.Winner,
		EndReason:        r.EndReason,
		Activity:         r.activity(),
	}

	for _, id := range r.order {
		p := r.players[id]
		state.Players = append(state.Players, PublicPlayer{
			ID:          p.ID,
			Name:        p.Name,
			Character:   p.Character,
			SupplyCount: len(p.Supplies),
			ClueCount:   len(p.Clues),
			Claimed:     p.Claimed,
			Location:    p.Location,
			Alive:       p.Alive,
			Connected:   p.Connected,
		})
	}

	for _, name := range Locations {
		loc, ok := r.locations[name]
		if !ok {
			continue
		}
		pub := PublicLocation{
			Name:      loc.Name,
			HasTrap:   loc.Trap != nil,
			ClueCount: len(loc.Clues),
			Occupants: loc.Occupants,
			Visited:   loc.Visited,
		}
		if loc.Trap != nil {
			pub.TrapValue = loc.Trap.Value
			pub.TrapSuit = loc.Trap.Suit
		}
		state.Locations = append(state.Locations, pub)
	}

	for id := range r.votes {
		state.VotesCast = append(state.VotesCast, id)
	}

	if r.Phase == PhaseFinalAccusation && !r.accusationDeadline.IsZero() {
		deadline := r.accusationDeadline
		state.AccusationDeadline = &deadline
	}

	if len(r.gameLog) > 0 {
		state.Log = append(state.Log, r.gameLog...)
	}
	return state
}

// PrivateView computes the projection for one player. Plot knowledge goes
// to conspiracy members only; in four-player games the accomplice gets the
// plot but not the ringleader's identity, since the briefing is skipped.
func (r *Room) PrivateView(playerID string) *PrivateState {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.players[playerID]
	if !ok {
		return nil
	}

	state := &PrivateState{
		PlayerID:    p.ID,
		Role:        p.Role,
		Supplies:    append([]SupplyCard(nil), p.Supplies...),
		Clues:       append([]ClueCard(nil), p.Clues...),
		IsScout:     r.currentScout == p.ID,
		IsBodyguard: r.currentBodyguard == p.ID,
	}

	// Every conspiracy member knows the full conspiracy, whether or not
	// the game was large enough to hold a briefing.
	if p.Role.Conspiracy() {
		state.Plot = &PlotInfo{
			Location:      r.plotLocation,
			Weapon:        r.plotWeapon,
			RingleaderID:  r.ringleaderID,
			AccompliceIDs: append([]string(nil), r.accompliceIDs...),
		}
	}
	return state
}

// activity names who the room is waiting on. Assumes the room lock is held.
func (r *Room) activity() Activity {
	switch r.Phase {
	case PhaseLobby:
		return Activity{Primary: "Waiting for players"}
	case PhaseConspiracyBriefing:
		return Activity{Primary: "Conspiracy briefing", Waiting: append([]string{r.ringleaderID}, r.accompliceIDs...)}
	case PhaseChooseTeam, PhaseFinalSetup:
		return Activity{Primary: "Scout choosing a team", Waiting: []string{r.currentScout}}
	case PhaseVoting, PhaseFinalVoting:
		var waiting []string
		for _, id := range r.order {
			if _, voted := r.votes[id]; !voted && r.players[id].Connected {
				waiting = append(waiting, id)
			}
		}
		return Activity{Primary: "Voting on the mission", Waiting: waiting}
	case PhaseDisarmTraps:
		var waiting []string
		if r.proposal != nil {
			for _, id := range r.proposal.Team {
				if _, done := r.contributions[id]; !done && r.players[id].Connected {
					waiting = append(waiting, id)
				}
			}
		}
		return Activity{Primary: "Team disarming the trap", Waiting: waiting}
	case PhaseCollectClues:
		return Activity{Primary: "Bodyguard collecting clues", Waiting: []string{r.currentBodyguard}}
	case PhaseSupplyDistribution:
		return Activity{Primary: "Scout distributing supplies", Waiting: []string{r.currentScout}}
	case PhaseFinalAccusation:
		return Activity{Primary: "Final accusation in progress"}
	case PhaseGameOver:
		return Activity{Primary: "Game over"}
	default:
		return Activity{Primary: string(r.Phase)}
	}
}
