package game

import (
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Winner identifies the winning faction once the game ends.
type Winner string

const (
	WinnerFriends    Winner = "friends"
	WinnerConspiracy Winner = "conspiracy"
)

const startingHealth = 3

// Room is one independent game instance. All mutating calls are serialized
// behind mu: every action is applied and fully resolved before the next is
// accepted, including the final-accusation timer expiry.
type Room struct {
	Code       string
	MaxPlayers int
	CreatedAt  time.Time
	StartedAt  time.Time

	mu sync.Mutex

	Phase          Phase
	Round          int
	Health         int
	StormTracker   int
	TrapsRemaining int

	players map[string]*Player
	order   []string // join order, seeds the scout rotation

	locations    map[string]*Location
	plotLocation string
	plotWeapon   string
	safeLocation string

	ringleaderID  string
	accompliceIDs []string

	deck    []SupplyCard
	discard []SupplyCard

	currentScout     string
	currentBodyguard string
	prevScout        string
	prevBodyguard    string

	proposal      *Mission
	votes         map[string]Ballot
	contributions map[string][]SupplyCard

	failedFinalVotes   int
	accusationWindow   time.Duration
	accusationDeadline time.Time
	accusationTimer    *time.Timer
	timerGen           int

	Winner    Winner
	EndReason string

	gameLog []LogEntry

	traps  *TrapService
	notify func() // invoked after asynchronous transitions (timer expiry)
}

// NewRoom creates an empty room in the lobby phase.
func NewRoom(code string, maxPlayers int, accusationWindow time.Duration, traps *TrapService) *Room {
	return &Room{
		Code:             code,
		MaxPlayers:       maxPlayers,
		CreatedAt:        time.Now(),
		Phase:            PhaseLobby,
		Health:           startingHealth,
		players:          make(map[string]*Player),
		locations:        make(map[string]*Location),
		votes:            make(map[string]Ballot),
		contributions:    make(map[string][]SupplyCard),
		accusationWindow: accusationWindow,
		traps:            traps,
	}
}

// SetNotify registers a callback fired after asynchronous state changes
// that no handler call can observe, currently only the accusation timer.
func (r *Room) SetNotify(fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notify = fn
}

// AddPlayer seats a new player, or reconnects a previous player with the
// same display name if the game is already running. Characters are dealt
// from the fixed roster in join order.
func (r *Room) AddPlayer(name string) (*Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Phase != PhaseLobby {
		for _, p := range r.players {
			if p.Name == name && !p.Connected {
				p.Connected = true
				r.logEvent("player_rejoined", p.Name, "")
				log.Printf("room %s: player %s rejoined", r.Code, p.Name)
				return p, nil
			}
		}
		return nil, ErrGameAlreadyStarted
	}

	if len(r.order) >= r.MaxPlayers {
		return nil, ErrRoomFull
	}
	for _, p := range r.players {
		if p.Name == name {
			return nil, ErrDuplicateName
		}
	}

	player := NewPlayer(uuid.NewString(), name, r.freeCharacter())
	r.players[player.ID] = player
	r.order = append(r.order, player.ID)
	log.Printf("room %s: player %s joined (%d/%d)", r.Code, name, len(r.order), r.MaxPlayers)
	return player, nil
}

// freeCharacter returns the first roster character not already dealt.
// Lobby departures free their character for the next joiner.
func (r *Room) freeCharacter() string {
	taken := make(map[string]bool, len(r.players))
	for _, p := range r.players {
		taken[p.Character] = true
	}
	for _, c := range Characters {
		if !taken[c] {
			return c
		}
	}
	return ""
}

// StreamOpened records a new event stream for a seated player and restores
// their presence.
func (r *Room) StreamOpened(playerID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.players[playerID]
	if !ok {
		return
	}
	p.streams++
	if p.Connected {
		return
	}
	p.Connected = true
	r.logEvent("player_reconnected", p.Name, "")
	log.Printf("room %s: player %s reconnected", r.Code, p.Name)
}

// StreamClosed records a stream going away. Only the last stream marks the
// player disconnected; a page refresh opens its replacement stream first,
// so the seat never flickers. A transient drop keeps the seat and role
// bindings so the player can rejoin; it never ends the game.
func (r *Room) StreamClosed(playerID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.players[playerID]
	if !ok {
		return
	}
	if p.streams > 0 {
		p.streams--
	}
	if p.streams > 0 || !p.Connected {
		return
	}

	p.Connected = false
	r.logEvent("player_disconnected", p.Name, "")
	log.Printf("room %s: player %s disconnected during %s", r.Code, p.Name, r.Phase)

	if r.Phase.InProgress() {
		r.resolveStuckPhase(playerID)
	}
}

// GetPlayer retrieves a player by ID
func (r *Room) GetPlayer(playerID string) *Player {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.players[playerID]
}

// PlayerCount returns the number of seated players.
func (r *Room) PlayerCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.order)
}

// Empty reports whether no connected players remain.
func (r *Room) Empty() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.players {
		if p.Connected {
			return false
		}
	}
	return true
}

// Start deals roles, board, and supplies, and opens the first round.
// Four-player games skip the conspiracy briefing and go straight to team
// selection.
func (r *Room) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Phase != PhaseLobby {
		return ErrGameAlreadyStarted
	}
	if len(r.order) < 4 {
		return ErrNotEnoughPlayers
	}

	r.Phase = PhaseSetup
	r.StartedAt = time.Now()
	r.Health = startingHealth
	r.StormTracker = 0
	r.Round = 1

	r.assignRoles()
	r.setupBoard()
	r.deck = newSupplyDeck()
	r.discard = nil
	r.dealInitialSupplies()

	r.currentScout = r.order[rand.Intn(len(r.order))]

	if len(r.order) == 4 {
		r.Phase = PhaseChooseTeam
	} else {
		r.Phase = PhaseConspiracyBriefing
	}

	r.logEvent("game_started", "", fmt.Sprintf("%d players", len(r.order)))
	log.Printf("room %s: game started with %d players, first scout %s",
		r.Code, len(r.order), r.players[r.currentScout].Name)
	return nil
}

// FinishConspiracyBriefing closes the conspiracy briefing and opens the
// first round's team selection.
func (r *Room) FinishConspiracyBriefing() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Phase != PhaseConspiracyBriefing {
		return ErrPhaseViolation
	}
	r.Phase = PhaseChooseTeam
	r.logEvent("briefing_finished", "", "")
	return nil
}

// ProposeTeam creates this round's mission proposal and opens the vote.
// Only the current scout may propose; duplicate team members are removed.
func (r *Room) ProposeTeam(actorID, bodyguardID string, extraMembers []string, destination string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Phase != PhaseChooseTeam {
		return ErrPhaseViolation
	}
	if actorID != r.currentScout {
		return ErrUnauthorizedActor
	}
	if _, ok := r.players[bodyguardID]; !ok {
		return ErrInvalidTarget
	}
	if _, ok := r.locations[destination]; !ok {
		return ErrInvalidTarget
	}
	for _, id := range extraMembers {
		if _, ok := r.players[id]; !ok {
			return ErrInvalidTarget
		}
	}

	team := []string{actorID}
	for _, id := range append([]string{bodyguardID}, extraMembers...) {
		seen := false
		for _, t := range team {
			if t == id {
				seen = true
				break
			}
		}
		if !seen {
			team = append(team, id)
		}
	}

	r.proposal = &Mission{
		Scout:     actorID,
		Bodyguard: bodyguardID,
		Team:      team,
		Location:  destination,
	}
	r.votes = make(map[string]Ballot)
	r.Phase = PhaseVoting

	r.logEvent("team_proposed", r.players[actorID].Name,
		fmt.Sprintf("%d members to %s", len(team), destination))
	return nil
}

// CastVote records an approve/reject ballot. Re-voting overwrites the prior
// ballot; the vote resolves itself once every connected player has voted.
func (r *Room) CastVote(actorID string, approve bool) (*VoteResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Phase != PhaseVoting && r.Phase != PhaseFinalVoting {
		return nil, ErrPhaseViolation
	}
	if _, ok := r.players[actorID]; !ok {
		return nil, ErrInvalidTarget
	}

	r.logEvent("vote_cast", r.players[actorID].Name, "")
	return r.recordVote(actorID, Ballot(approve)), nil
}

// CheckPlot evaluates the conspiracy's activation condition: Mr. Coral has
// already been hurt, the mission destination is the plot location, and the
// bodyguard is the ringleader. Activation ends the game for the conspiracy.
func (r *Room) CheckPlot() (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Phase != PhasePlotCheck {
		return false, ErrPhaseViolation
	}

	activated := r.Health < startingHealth &&
		r.proposal.Location == r.plotLocation &&
		r.currentBodyguard == r.ringleaderID

	if activated {
		r.endGame(WinnerConspiracy, "plot activated")
		return true, nil
	}

	// The safe location and already-visited locations hold no trap, so
	// there is nothing to disarm: the team goes straight to clue
	// collection.
	loc := r.locations[r.proposal.Location]
	if loc.Trap == nil {
		loc.Visited = true
		r.Phase = PhaseCollectClues
		return false, nil
	}
	r.Phase = PhaseDisarmTraps
	return false, nil
}

// SubmitResult reports a supply card submission; DisarmResult is set only
// when this submission completed the team and triggered resolution.
type SubmitResult struct {
	AllSubmitted bool          `json:"allSubmitted"`
	Disarm       *DisarmResult `json:"disarm,omitempty"`
}

// SubmitSupplyCards stages a team member's contribution to the disarm
// attempt. Each member submits exactly once; resubmission and cards the
// player does not hold are rejected without mutation.
func (r *Room) SubmitSupplyCards(actorID string, cardIDs []string) (*SubmitResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Phase != PhaseDisarmTraps {
		return nil, ErrPhaseViolation
	}
	if r.proposal == nil || !r.proposal.OnTeam(actorID) {
		return nil, ErrUnauthorizedActor
	}
	if _, done := r.contributions[actorID]; done {
		return nil, ErrDuplicateSubmission
	}

	player := r.players[actorID]

	// A contribution spends at least one card. Only a player whose hand
	// has run dry may pass, so the phase cannot stall on them.
	if len(cardIDs) == 0 && len(player.Supplies) > 0 {
		return nil, ErrInvalidTarget
	}

	// Removing as we validate catches ids the player does not hold and
	// the same id listed twice; a rejection puts everything back.
	cards := make([]SupplyCard, 0, len(cardIDs))
	for _, id := range cardIDs {
		card, ok := player.removeSupply(id)
		if !ok {
			player.Supplies = append(player.Supplies, cards...)
			return nil, ErrInvalidTarget
		}
		cards = append(cards, card)
	}
	r.contributions[actorID] = cards
	r.logEvent("supplies_submitted", player.Name, fmt.Sprintf("%d cards", len(cards)))

	if !r.allContributed() {
		return &SubmitResult{}, nil
	}
	return &SubmitResult{AllSubmitted: true, Disarm: r.resolveDisarm()}, nil
}

// allContributed reports whether every connected team member has submitted.
// Disconnected members are skipped so the phase cannot stall.
func (r *Room) allContributed() bool {
	for _, id := range r.proposal.Team {
		if _, done := r.contributions[id]; done {
			continue
		}
		if r.players[id].Connected {
			return false
		}
	}
	return true
}

// UseInstantDisarm plays an instant-disarm clue card, consuming the trap
// without scoring. Any already-staged contributions return to the discard
// pile.
func (r *Room) UseInstantDisarm(actorID, cardID string) (*DisarmResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Phase != PhaseDisarmTraps {
		return nil, ErrPhaseViolation
	}
	if r.proposal == nil || !r.proposal.OnTeam(actorID) {
		return nil, ErrUnauthorizedActor
	}
	player := r.players[actorID]
	if _, ok := player.removeClue(cardID, ClueInstantDisarm); !ok {
		return nil, ErrInvalidTarget
	}

	for _, cards := range r.contributions {
		r.discard = append(r.discard, cards...)
	}
	r.contributions = make(map[string][]SupplyCard)

	loc := r.locations[r.proposal.Location]
	r.consumeTrap(loc)
	r.logEvent("instant_disarm", player.Name, loc.Name)

	result := &DisarmResult{
		Success:        true,
		Required:       0,
		Location:       loc.Name,
		TrapsRemaining: r.TrapsRemaining,
		InstantDisarm:  true,
	}
	if r.TrapsRemaining == 0 {
		r.endGame(WinnerFriends, "all traps disarmed")
		result.GameEnded = true
		return result, nil
	}
	r.Phase = PhaseCollectClues
	return result, nil
}

// ClueClaims are the bodyguard's announcements about what was found.
type ClueClaims struct {
	Weapons   []string `json:"weapons"`
	Locations []string `json:"locations"`
}

// ClueReport reports a completed clue collection.
type ClueReport struct {
	Location       string   `json:"location"`
	CardsCollected int      `json:"cardsCollected"`
	InstantDisarms int      `json:"instantDisarms"`
	NoClues        int      `json:"noClues"`
	WeaponClaims   []string `json:"weaponClaims"`
	LocationClaims []string `json:"locationClaims"`
}

// CollectClues moves the visited location's clue cards into the
// bodyguard's hand and records whatever the bodyguard chooses to claim.
func (r *Room) CollectClues(actorID string, claims *ClueClaims) (*ClueReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.collectCluesLocked(actorID, claims)
}

func (r *Room) collectCluesLocked(actorID string, claims *ClueClaims) (*ClueReport, error) {
	if r.Phase != PhaseCollectClues {
		return nil, ErrPhaseViolation
	}
	if actorID != r.currentBodyguard {
		return nil, ErrUnauthorizedActor
	}

	player := r.players[actorID]
	loc := r.locations[r.proposal.Location]

	report := &ClueReport{Location: loc.Name, CardsCollected: len(loc.Clues)}
	for _, clue := range loc.Clues {
		switch clue.Type {
		case ClueInstantDisarm:
			report.InstantDisarms++
		case ClueNone:
			report.NoClues++
		}
	}

	player.Clues = append(player.Clues, loc.Clues...)
	loc.Clues = nil

	if claims != nil {
		player.Claimed.Weapons = append(player.Claimed.Weapons, claims.Weapons...)
		player.Claimed.Locations = append(player.Claimed.Locations, claims.Locations...)
		report.WeaponClaims = claims.Weapons
		report.LocationClaims = claims.Locations
	}

	r.Phase = PhaseSupplyDistribution
	r.logEvent("clues_collected", player.Name, loc.Name)
	return report, nil
}

// DistributeSupplies draws one card per occupant of the visited location,
// deals them round-robin to the team, replenishes everyone else by one
// card, and ends the round.
func (r *Room) DistributeSupplies(actorID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.distributeSuppliesLocked(actorID)
}

func (r *Room) distributeSuppliesLocked(actorID string) error {
	if r.Phase != PhaseSupplyDistribution {
		return ErrPhaseViolation
	}
	if actorID != r.currentScout {
		return ErrUnauthorizedActor
	}
	r.logEvent("supplies_distributed", r.players[actorID].Name, "")
	r.distributeRoundSupplies()
	return nil
}

// damageCoral applies one point of damage. Reaching zero health starts the
// final accusation; the return value tells callers the phase has moved.
// Health never goes below zero.
func (r *Room) damageCoral() bool {
	r.Health--
	if r.Health < 0 {
		log.Printf("room %s: health underflow, clamping to 0", r.Code)
		r.Health = 0
	}
	r.logEvent("coral_hurt", "", fmt.Sprintf("health %d/%d", r.Health, startingHealth))
	log.Printf("room %s: Mr. Coral takes damage (%d/%d)", r.Code, r.Health, startingHealth)

	if r.Health == 0 {
		r.beginFinalAccusation()
		return true
	}
	return false
}

// beginFinalAccusation rotates the scout once and opens final team
// selection.
func (r *Room) beginFinalAccusation() {
	r.rotateScout()

	r.proposal = nil
	r.currentBodyguard = ""
	r.votes = make(map[string]Ballot)
	r.contributions = make(map[string][]SupplyCard)
	r.failedFinalVotes = 0
	r.Phase = PhaseFinalSetup

	r.logEvent("final_accusation_started", "", "")
	log.Printf("room %s: Mr. Coral is down, final round scout %s", r.Code, r.players[r.currentScout].Name)
}

// ProposeFinalTeam proposes the team that will receive the remaining clues
// and make the accusation. No bodyguard and no destination.
func (r *Room) ProposeFinalTeam(actorID string, members []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Phase != PhaseFinalSetup {
		return ErrPhaseViolation
	}
	if actorID != r.currentScout {
		return ErrUnauthorizedActor
	}
	if len(members) == 0 {
		return ErrInvalidTarget
	}

	team := make([]string, 0, len(members))
	for _, id := range members {
		if _, ok := r.players[id]; !ok {
			return ErrInvalidTarget
		}
		seen := false
		for _, t := range team {
			if t == id {
				seen = true
				break
			}
		}
		if !seen {
			team = append(team, id)
		}
	}

	r.proposal = &Mission{Scout: actorID, Team: team}
	r.votes = make(map[string]Ballot)
	r.Phase = PhaseFinalVoting

	r.logEvent("final_team_proposed", r.players[actorID].Name, fmt.Sprintf("%d members", len(team)))
	return nil
}

// dealFinalClues gathers every undealt clue card from the board, strips the
// now-irrelevant traps, and deals the clues round-robin to the final team.
func (r *Room) dealFinalClues() {
	var remaining []ClueCard
	for _, loc := range r.locations {
		remaining = append(remaining, loc.Clues...)
		loc.Clues = nil
		loc.Trap = nil
	}

	remaining = shuffleClues(remaining)
	team := r.proposal.Team
	for i, clue := range remaining {
		p := r.players[team[i%len(team)]]
		p.Clues = append(p.Clues, clue)
	}
	r.logEvent("final_clues_dealt", "", fmt.Sprintf("%d clues", len(remaining)))
}

// startAccusationTimer arms the engine-owned discussion window. Expiry is
// serialized through the room lock and ignored if the room left the
// final-accusation phase first.
func (r *Room) startAccusationTimer() {
	r.timerGen++
	gen := r.timerGen
	r.accusationDeadline = time.Now().Add(r.accusationWindow)
	r.accusationTimer = time.AfterFunc(r.accusationWindow, func() {
		r.expireAccusation(gen)
	})
	log.Printf("room %s: final accusation window open for %s", r.Code, r.accusationWindow)
}

func (r *Room) expireAccusation(gen int) {
	r.mu.Lock()
	if gen != r.timerGen || r.Phase != PhaseFinalAccusation {
		r.mu.Unlock()
		return
	}
	r.endGame(WinnerConspiracy, "accusation window expired")
	notify := r.notify
	r.mu.Unlock()

	if notify != nil {
		notify()
	}
}

// AccusationResult reveals the truth alongside the verdict.
type AccusationResult struct {
	Correct     bool   `json:"correct"`
	ActualWho   string `json:"actualWho"`
	ActualWhere string `json:"actualWhere"`
	ActualWhat  string `json:"actualWhat"`
}

// MakeFinalAccusation evaluates the single (character, location, weapon)
// guess. Correct on an exact match of all three; any mismatch is a
// conspiracy win.
func (r *Room) MakeFinalAccusation(who, where, what string) (*AccusationResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.Phase != PhaseFinalAccusation {
		return nil, ErrPhaseViolation
	}
	if !r.validCharacter(who) {
		return nil, ErrInvalidTarget
	}
	if _, ok := r.locations[where]; !ok {
		return nil, ErrInvalidTarget
	}
	if !validWeapon(what) {
		return nil, ErrInvalidTarget
	}

	ringleaderCharacter := r.players[r.ringleaderID].Character
	correct := who == ringleaderCharacter && where == r.plotLocation && what == r.plotWeapon

	r.logEvent("final_accusation", "", fmt.Sprintf("%s / %s / %s", who, where, what))
	if correct {
		r.endGame(WinnerFriends, "correct accusation")
	} else {
		r.endGame(WinnerConspiracy, "wrong accusation")
	}

	return &AccusationResult{
		Correct:     correct,
		ActualWho:   ringleaderCharacter,
		ActualWhere: r.plotLocation,
		ActualWhat:  r.plotWeapon,
	}, nil
}

func (r *Room) validCharacter(name string) bool {
	for _, p := range r.players {
		if p.Character == name {
			return true
		}
	}
	return false
}

func validWeapon(name string) bool {
	for _, w := range Weapons {
		if w == name {
			return true
		}
	}
	return false
}

// endGame moves the room to game_over and disarms the accusation timer.
// Assumes the room lock is held.
func (r *Room) endGame(winner Winner, reason string) {
	r.Phase = PhaseGameOver
	r.Winner = winner
	r.EndReason = reason
	r.timerGen++
	if r.accusationTimer != nil {
		r.accusationTimer.Stop()
		r.accusationTimer = nil
	}
	r.logEvent("game_over", "", fmt.Sprintf("%s: %s", winner, reason))
	log.Printf("room %s: game over, %s win (%s)", r.Code, winner, reason)
}

// Leave handles an explicit departure. In the lobby the seat is released
// entirely; mid-game the player is marked gone and any responsibility they
// were holding resolves deterministically. Unlike a dropped stream, walking
// out of a room that cannot continue ends the game.
func (r *Room) Leave(playerID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	player, ok := r.players[playerID]
	if !ok {
		return
	}

	if r.Phase == PhaseLobby {
		delete(r.players, playerID)
		for i, id := range r.order {
			if id == playerID {
				r.order = append(r.order[:i], r.order[i+1:]...)
				break
			}
		}
		log.Printf("room %s: player %s left the lobby", r.Code, player.Name)
		return
	}

	player.Connected = false
	player.streams = 0
	r.logEvent("player_left", player.Name, "")
	log.Printf("room %s: player %s left during %s", r.Code, player.Name, r.Phase)

	if r.Phase == PhaseGameOver {
		return
	}

	connected := r.liveCount()
	if connected == 0 {
		r.endGame(WinnerConspiracy, "room abandoned")
		return
	}
	if connected < 4 {
		r.endGame(WinnerConspiracy, "too few players remaining")
		return
	}

	r.resolveStuckPhase(playerID)
}

// resolveStuckPhase auto-advances any phase blocked on the disconnected
// player. Assumes the room lock is held.
func (r *Room) resolveStuckPhase(playerID string) {
	switch r.Phase {
	case PhaseChooseTeam:
		if r.currentScout == playerID {
			r.proposal = nil
			r.votes = make(map[string]Ballot)
			r.rotateScout()
			log.Printf("room %s: scout disconnected, rotated to %s", r.Code, r.players[r.currentScout].Name)
		}
	case PhaseVoting, PhaseFinalVoting:
		// Drop their ballot and re-check resolution against the smaller
		// live count.
		delete(r.votes, playerID)
		r.maybeResolveVote()
	case PhaseDisarmTraps:
		if r.proposal != nil && r.proposal.OnTeam(playerID) {
			if _, done := r.contributions[playerID]; !done && r.allContributed() {
				r.resolveDisarm()
				// Resolution may land in a phase waiting on the same
				// player. Each step advances the phase, so this bottoms
				// out.
				r.resolveStuckPhase(playerID)
			}
		}
	case PhaseCollectClues:
		if r.currentBodyguard == playerID {
			log.Printf("room %s: bodyguard disconnected, auto-collecting clues", r.Code)
			r.collectCluesLocked(playerID, nil)
			r.resolveStuckPhase(playerID)
		}
	case PhaseSupplyDistribution:
		if r.currentScout == playerID {
			log.Printf("room %s: scout disconnected, auto-distributing supplies", r.Code)
			r.distributeSuppliesLocked(playerID)
		}
	case PhaseFinalSetup:
		if r.currentScout == playerID {
			r.rotateScout()
			log.Printf("room %s: final scout disconnected, rotated to %s", r.Code, r.players[r.currentScout].Name)
		}
	}
}

// liveCount is the number of connected players; vote resolution and stall
// detection use it rather than the seat count.
func (r *Room) liveCount() int {
	n := 0
	for _, p := range r.players {
		if p.Connected {
			n++
		}
	}
	return n
}
