package game

// Phase represents the current phase of a game
type Phase string

const (
	PhaseLobby              Phase = "lobby"
	PhaseSetup              Phase = "setup"
	PhaseConspiracyBriefing Phase = "conspiracy_briefing"
	PhaseChooseTeam         Phase = "choose_team"
	PhaseVoting             Phase = "voting"
	PhasePlotCheck          Phase = "plot_check"
	PhaseDisarmTraps        Phase = "disarm_traps"
	PhaseCollectClues       Phase = "collect_clues"
	PhaseSupplyDistribution Phase = "supply_distribution"
	PhaseFinalSetup         Phase = "final_accusation_setup"
	PhaseFinalVoting        Phase = "final_accusation_voting"
	PhaseFinalAccusation    Phase = "final_accusation"
	PhaseGameOver           Phase = "game_over"
)

// InProgress reports whether the game has started and not yet ended.
func (p Phase) InProgress() bool {
	return p != PhaseLobby && p != PhaseGameOver
}
