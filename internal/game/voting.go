package game

import "log"

// Ballot is a single approve/reject vote.
type Ballot bool

const (
	BallotApprove Ballot = true
	BallotReject  Ballot = false
)

// Mission is the scout's current proposal. Team always contains the scout
// and, outside the final accusation, the bodyguard; duplicates are removed.
type Mission struct {
	Scout     string   `json:"scout"`
	Bodyguard string   `json:"bodyguard,omitempty"`
	Team      []string `json:"team"`
	Location  string   `json:"location,omitempty"`
}

// OnTeam reports whether the player is part of the proposed team.
func (m *Mission) OnTeam(playerID string) bool {
	for _, id := range m.Team {
		if id == playerID {
			return true
		}
	}
	return false
}

// VoteResult reports a resolved vote.
type VoteResult struct {
	Resolved bool `json:"resolved"`
	Approved bool `json:"approved"`
	Approve  int  `json:"approve"`
	Reject   int  `json:"reject"`
}

// recordVote stores a ballot, overwriting any prior ballot from the same
// player, then checks for resolution. Assumes the room lock is held and
// the phase was already validated.
func (r *Room) recordVote(playerID string, ballot Ballot) *VoteResult {
	r.votes[playerID] = ballot
	return r.maybeResolveVote()
}

// maybeResolveVote resolves the vote once the tally covers every connected
// player. There is no separate "close vote" action.
func (r *Room) maybeResolveVote() *VoteResult {
	if len(r.votes) == 0 || len(r.votes) < r.liveCount() {
		return &VoteResult{}
	}

	approve, reject := 0, 0
	for _, b := range r.votes {
		if b == BallotApprove {
			approve++
		} else {
			reject++
		}
	}
	r.votes = make(map[string]Ballot)

	// A tie is a rejection.
	approved := approve > reject
	log.Printf("room %s: vote resolved %d approve / %d reject", r.Code, approve, reject)

	if r.Phase == PhaseFinalVoting {
		r.resolveFinalVote(approved)
	} else if approved {
		r.executeApprovedMission()
	} else {
		r.handleRejectedVote()
	}
	return &VoteResult{Resolved: true, Approved: approved, Approve: approve, Reject: reject}
}

// executeApprovedMission moves the team and Mr. Coral to the destination,
// seats the bodyguard, resets the storm tracker, and advances to the plot
// check.
func (r *Room) executeApprovedMission() {
	dest := r.locations[r.proposal.Location]
	for _, id := range r.proposal.Team {
		r.players[id].Location = r.proposal.Location
		dest.Occupants = append(dest.Occupants, id)
	}
	dest.Occupants = append(dest.Occupants, CoralToken)

	r.currentBodyguard = r.proposal.Bodyguard
	r.StormTracker = 0
	r.Phase = PhasePlotCheck
	r.logEvent("mission_approved", "", dest.Name)
}

// handleRejectedVote advances the storm tracker; three consecutive
// rejections cost one health point. The proposal is discarded and the
// scout rotates.
func (r *Room) handleRejectedVote() {
	r.StormTracker++
	r.logEvent("mission_rejected", "", "")
	if r.StormTracker >= 3 {
		r.StormTracker = 0
		if r.damageCoral() {
			return
		}
	}

	r.proposal = nil
	r.currentBodyguard = ""
	r.rotateScout()
	r.Phase = PhaseChooseTeam
}

// resolveFinalVote applies the final-accusation voting rule: rejection
// feeds a dedicated failure counter instead of the storm tracker, and a
// third failure hands the game to the conspiracy.
func (r *Room) resolveFinalVote(approved bool) {
	if !approved {
		r.failedFinalVotes++
		r.logEvent("final_team_rejected", "", "")
		if r.failedFinalVotes >= 3 {
			r.endGame(WinnerConspiracy, "three failed final votes")
			return
		}
		r.proposal = nil
		r.rotateScout()
		r.Phase = PhaseFinalSetup
		return
	}
	r.dealFinalClues()
	r.Phase = PhaseFinalAccusation
	r.startAccusationTimer()
}
