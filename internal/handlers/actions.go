package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"clueconspiracy/internal/game"
)

// CreateRoom allocates a new room and returns its code.
func (h *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	room, err := h.store.CreateRoom()
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
		return
	}

	// Asynchronous transitions (the accusation timer) must reach SSE
	// subscribers without an action to piggyback on.
	code := room.Code
	room.SetNotify(func() { h.broadcast(code) })

	writeJSON(w, http.StatusCreated, map[string]string{"code": room.Code})
}

// JoinRoom seats the caller in a room, or reconnects them mid-game.
func (h *Handler) JoinRoom(w http.ResponseWriter, r *http.Request) {
	room, err := h.store.GetRoom(chi.URLParam(r, "code"))
	if err != nil {
		http.Error(w, "Room not found", http.StatusNotFound)
		return
	}

	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		http.Error(w, "A display name is required", http.StatusBadRequest)
		return
	}

	player, err := room.AddPlayer(req.Name)
	if err != nil {
		writeError(w, err)
		return
	}

	setPlayerCookie(w, room.Code, player.ID)
	h.broadcast(room.Code)
	writeJSON(w, http.StatusOK, map[string]string{
		"playerId":  player.ID,
		"character": player.Character,
	})
}

// LeaveRoom releases the caller's seat (lobby) or marks them disconnected.
func (h *Handler) LeaveRoom(w http.ResponseWriter, r *http.Request) {
	room, err := h.store.GetRoom(chi.URLParam(r, "code"))
	if err != nil {
		http.Error(w, "Room not found", http.StatusNotFound)
		return
	}

	player := h.playerFromRequest(r, room)
	if player == nil {
		http.Error(w, "Not in room", http.StatusUnauthorized)
		return
	}

	room.Leave(player.ID)

	http.SetCookie(w, &http.Cookie{
		Name:   "player_" + room.Code,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})

	h.broadcast(room.Code)
	writeJSON(w, http.StatusOK, map[string]bool{"left": true})
}

// StartGame deals roles and opens the first round.
func (h *Handler) StartGame(w http.ResponseWriter, r *http.Request) {
	room, player, ok := h.roomAndPlayer(w, r)
	if !ok {
		return
	}

	if err := room.Start(); err != nil {
		writeError(w, err)
		return
	}

	log.Printf("handlers: %s started the game in room %s", player.Name, room.Code)
	h.broadcast(room.Code)
	writeJSON(w, http.StatusOK, map[string]bool{"started": true})
}

// FinishBriefing closes the conspiracy briefing.
func (h *Handler) FinishBriefing(w http.ResponseWriter, r *http.Request) {
	room, _, ok := h.roomAndPlayer(w, r)
	if !ok {
		return
	}

	if err := room.FinishConspiracyBriefing(); err != nil {
		writeError(w, err)
		return
	}

	h.broadcast(room.Code)
	writeJSON(w, http.StatusOK, map[string]bool{"done": true})
}

// ProposeTeam submits the scout's mission proposal.
func (h *Handler) ProposeTeam(w http.ResponseWriter, r *http.Request) {
	room, player, ok := h.roomAndPlayer(w, r)
	if !ok {
		return
	}

	var req struct {
		Bodyguard   string   `json:"bodyguard"`
		Team        []string `json:"team"`
		Destination string   `json:"destination"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := room.ProposeTeam(player.ID, req.Bodyguard, req.Team, req.Destination); err != nil {
		writeError(w, err)
		return
	}

	h.broadcast(room.Code)
	writeJSON(w, http.StatusOK, map[string]bool{"proposed": true})
}

// CastVote records an approve/reject ballot on the open proposal.
func (h *Handler) CastVote(w http.ResponseWriter, r *http.Request) {
	room, player, ok := h.roomAndPlayer(w, r)
	if !ok {
		return
	}

	var req struct {
		Approve bool `json:"approve"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := room.CastVote(player.ID, req.Approve)
	if err != nil {
		writeError(w, err)
		return
	}

	h.broadcast(room.Code)
	writeJSON(w, http.StatusOK, result)
}

// CheckPlot runs the conspiracy activation check after an approved mission.
func (h *Handler) CheckPlot(w http.ResponseWriter, r *http.Request) {
	room, _, ok := h.roomAndPlayer(w, r)
	if !ok {
		return
	}

	activated, err := room.CheckPlot()
	if err != nil {
		writeError(w, err)
		return
	}

	h.broadcast(room.Code)
	writeJSON(w, http.StatusOK, map[string]bool{"activated": activated})
}

// SubmitSupplies stages the caller's face-down contribution to the disarm.
func (h *Handler) SubmitSupplies(w http.ResponseWriter, r *http.Request) {
	room, player, ok := h.roomAndPlayer(w, r)
	if !ok {
		return
	}

	var req struct {
		CardIDs []string `json:"cardIds"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := room.SubmitSupplyCards(player.ID, req.CardIDs)
	if err != nil {
		writeError(w, err)
		return
	}

	h.broadcast(room.Code)
	writeJSON(w, http.StatusOK, result)
}

// InstantDisarm plays an instant-disarm clue card on the current trap.
func (h *Handler) InstantDisarm(w http.ResponseWriter, r *http.Request) {
	room, player, ok := h.roomAndPlayer(w, r)
	if !ok {
		return
	}

	var req struct {
		CardID string `json:"cardId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := room.UseInstantDisarm(player.ID, req.CardID)
	if err != nil {
		writeError(w, err)
		return
	}

	h.broadcast(room.Code)
	writeJSON(w, http.StatusOK, result)
}

// CollectClues moves the visited location's clues into the bodyguard's hand.
func (h *Handler) CollectClues(w http.ResponseWriter, r *http.Request) {
	room, player, ok := h.roomAndPlayer(w, r)
	if !ok {
		return
	}

	var req struct {
		Claims *game.ClueClaims `json:"claims"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	report, err := room.CollectClues(player.ID, req.Claims)
	if err != nil {
		writeError(w, err)
		return
	}

	h.broadcast(room.Code)
	writeJSON(w, http.StatusOK, report)
}

// DistributeSupplies runs the end-of-round supply distribution.
func (h *Handler) DistributeSupplies(w http.ResponseWriter, r *http.Request) {
	room, player, ok := h.roomAndPlayer(w, r)
	if !ok {
		return
	}

	if err := room.DistributeSupplies(player.ID); err != nil {
		writeError(w, err)
		return
	}

	h.broadcast(room.Code)
	writeJSON(w, http.StatusOK, map[string]bool{"distributed": true})
}

// ProposeFinalTeam submits the final accusation team.
func (h *Handler) ProposeFinalTeam(w http.ResponseWriter, r *http.Request) {
	room, player, ok := h.roomAndPlayer(w, r)
	if !ok {
		return
	}

	var req struct {
		Team []string `json:"team"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := room.ProposeFinalTeam(player.ID, req.Team); err != nil {
		writeError(w, err)
		return
	}

	h.broadcast(room.Code)
	writeJSON(w, http.StatusOK, map[string]bool{"proposed": true})
}

// FinalAccusation evaluates the single (who, where, what) guess.
func (h *Handler) FinalAccusation(w http.ResponseWriter, r *http.Request) {
	room, _, ok := h.roomAndPlayer(w, r)
	if !ok {
		return
	}

	var req struct {
		Who   string `json:"who"`
		Where string `json:"where"`
		What  string `json:"what"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := room.MakeFinalAccusation(req.Who, req.Where, req.What)
	if err != nil {
		writeError(w, err)
		return
	}

	h.broadcast(room.Code)
	writeJSON(w, http.StatusOK, result)
}

// RoomState returns the public projection as plain JSON, for clients that
// poll instead of streaming.
func (h *Handler) RoomState(w http.ResponseWriter, r *http.Request) {
	room, err := h.store.GetRoom(chi.URLParam(r, "code"))
	if err != nil {
		http.Error(w, "Room not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, room.PublicView())
}

// PlayerState returns the caller's private projection.
func (h *Handler) PlayerState(w http.ResponseWriter, r *http.Request) {
	room, player, ok := h.roomAndPlayer(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, room.PrivateView(player.ID))
}

// roomAndPlayer resolves the room from the URL and the acting player from
// the cookie, writing the error response itself on failure.
func (h *Handler) roomAndPlayer(w http.ResponseWriter, r *http.Request) (*game.Room, *game.Player, bool) {
	room, err := h.store.GetRoom(chi.URLParam(r, "code"))
	if err != nil {
		http.Error(w, "Room not found", http.StatusNotFound)
		return nil, nil, false
	}

	player := h.playerFromRequest(r, room)
	if player == nil {
		http.Error(w, "Not in room", http.StatusUnauthorized)
		return nil, nil, false
	}
	return room, player, true
}
