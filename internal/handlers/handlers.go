package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"

	"clueconspiracy/internal/game"
	"clueconspiracy/internal/store"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	store    *store.MemoryStore
	eventBus *EventBus
}

// New creates a new handler
func New(store *store.MemoryStore) *Handler {
	return &Handler{
		store:    store,
		eventBus: NewEventBus(),
	}
}

// Store returns the handler's store (for testing)
func (h *Handler) Store() *store.MemoryStore {
	return h.store
}

// Event represents a game event
type Event struct {
	Type     string
	RoomCode string
}

// EventBus manages event subscriptions
type EventBus struct {
	mu          sync.RWMutex
	subscribers map[string][]chan Event
}

// NewEventBus creates a new event bus
func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make(map[string][]chan Event),
	}
}

// Subscribe subscribes to events for a room
func (eb *EventBus) Subscribe(roomCode string) chan Event {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	ch := make(chan Event, 10)
	eb.subscribers[roomCode] = append(eb.subscribers[roomCode], ch)
	return ch
}

// Unsubscribe removes a subscription
func (eb *EventBus) Unsubscribe(roomCode string, ch chan Event) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	subs := eb.subscribers[roomCode]
	for i, sub := range subs {
		if sub == ch {
			eb.subscribers[roomCode] = append(subs[:i], subs[i+1:]...)
			close(ch)
			break
		}
	}
}

// Publish publishes an event to all subscribers
func (eb *EventBus) Publish(event Event) {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	for _, ch := range eb.subscribers[event.RoomCode] {
		select {
		case ch <- event:
		default:
			// Channel full, skip
		}
	}
}

// broadcast tells every subscriber of a room to re-project state.
func (h *Handler) broadcast(roomCode string) {
	h.eventBus.Publish(Event{Type: "state_changed", RoomCode: roomCode})
}

// playerFromRequest resolves the acting player from the per-room cookie.
func (h *Handler) playerFromRequest(r *http.Request, room *game.Room) *game.Player {
	cookie, err := r.Cookie("player_" + room.Code)
	if err != nil {
		return nil
	}
	return room.GetPlayer(cookie.Value)
}

// setPlayerCookie binds a seat to the browser for one room.
func setPlayerCookie(w http.ResponseWriter, roomCode, playerID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "player_" + roomCode,
		Value:    playerID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   86400, // 1 day
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("handlers: failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), map[string]string{"error": err.Error()})
}

// statusFor maps engine errors onto HTTP statuses. Phase violations and
// room-state conflicts are 409s so clients can distinguish a stale view
// from a malformed request.
func statusFor(err error) int {
	switch {
	case errors.Is(err, game.ErrPhaseViolation),
		errors.Is(err, game.ErrGameAlreadyStarted),
		errors.Is(err, game.ErrGameEnded),
		errors.Is(err, game.ErrDuplicateSubmission),
		errors.Is(err, game.ErrDuplicateName),
		errors.Is(err, game.ErrRoomFull):
		return http.StatusConflict
	case errors.Is(err, game.ErrUnauthorizedActor):
		return http.StatusForbidden
	case errors.Is(err, game.ErrInvalidTarget),
		errors.Is(err, game.ErrNotEnoughPlayers),
		errors.Is(err, game.ErrCapacityExceeded):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
