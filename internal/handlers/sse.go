package handlers

import (
	"encoding/base64"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	datastar "github.com/starfederation/datastar-go/datastar"
	"github.com/yeqown/go-qrcode/v2"
	"github.com/yeqown/go-qrcode/writer/standard"
)

// StreamRoom streams the caller's view of one room: the public projection
// plus their private hand and role. The connection doubles as presence;
// when it drops the engine treats the player as disconnected.
func (h *Handler) StreamRoom(w http.ResponseWriter, r *http.Request) {
	roomCode := chi.URLParam(r, "code")

	room, err := h.store.GetRoom(roomCode)
	if err != nil {
		log.Printf("handlers: SSE requested for non-existent room %s", roomCode)
		http.Error(w, "Room not found", http.StatusNotFound)
		return
	}

	player := h.playerFromRequest(r, room)
	if player == nil {
		http.Error(w, "Not in room", http.StatusUnauthorized)
		return
	}

	sse := datastar.NewSSE(w, r)

	events := h.eventBus.Subscribe(roomCode)
	defer h.eventBus.Unsubscribe(roomCode, events)

	playerID := player.ID
	room.StreamOpened(playerID)
	h.broadcast(roomCode)
	log.Printf("handlers: SSE open for player %s in room %s", player.Name, roomCode)

	defer func() {
		room.StreamClosed(playerID)
		h.broadcast(roomCode)
		log.Printf("handlers: SSE closed for player %s in room %s", playerID, roomCode)
	}()

	// Initial projection so the client never renders from a stale poll.
	if err := h.pushState(sse, roomCode, playerID); err != nil {
		return
	}

	// Keepalive to stop browsers closing an idle stream.
	heartbeat := time.NewTicker(30 * time.Second)
	defer heartbeat.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-heartbeat.C:
			if _, err := h.store.GetRoom(roomCode); err != nil {
				log.Printf("handlers: room %s reclaimed, closing SSE", roomCode)
				return
			}
			if err := sse.Send("keepalive", []string{fmt.Sprintf(`{"time":"%s"}`, time.Now().Format(time.RFC3339))}); err != nil {
				return
			}
		case <-events:
			if err := h.pushState(sse, roomCode, playerID); err != nil {
				return
			}
		}
	}
}

// pushState re-projects and sends both views. Rooms are re-fetched so a
// reclaimed room closes the stream instead of serving ghosts.
func (h *Handler) pushState(sse *datastar.ServerSentEventGenerator, roomCode, playerID string) error {
	room, err := h.store.GetRoom(roomCode)
	if err != nil {
		return err
	}

	signals := map[string]interface{}{
		"public":  room.PublicView(),
		"private": room.PrivateView(playerID),
	}
	if err := sse.MarshalAndPatchSignals(signals); err != nil {
		log.Printf("handlers: failed to push state for room %s: %v", roomCode, err)
		return err
	}
	return nil
}

// JoinQR returns a QR code for the room's join URL as a data URI.
func (h *Handler) JoinQR(w http.ResponseWriter, r *http.Request) {
	roomCode := chi.URLParam(r, "code")

	if _, err := h.store.GetRoom(roomCode); err != nil {
		http.Error(w, "Room not found", http.StatusNotFound)
		return
	}

	joinURL := fmt.Sprintf("%s/room/%s", getBaseURL(r), roomCode)
	encoded, err := generateQRCode(joinURL)
	if err != nil {
		log.Printf("handlers: failed to generate QR code for room %s: %v", roomCode, err)
		http.Error(w, "Could not generate QR code", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"url":    joinURL,
		"qrCode": "data:image/png;base64," + encoded,
	})
}

// generateQRCode generates a QR code for the given URL and returns it as base64 encoded PNG
func generateQRCode(url string) (string, error) {
	qrc, err := qrcode.NewWith(url,
		qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionMedium),
		qrcode.WithEncodingMode(qrcode.EncModeByte),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create QR code: %w", err)
	}

	// The standard writer only writes to files.
	tmpFile := fmt.Sprintf("%s/qr_%d.png", os.TempDir(), time.Now().UnixNano())

	qw, err := standard.New(tmpFile,
		standard.WithBuiltinImageEncoder(standard.PNG_FORMAT),
		standard.WithQRWidth(8), // 8 pixels per module
	)
	if err != nil {
		return "", fmt.Errorf("failed to create writer: %w", err)
	}

	if err := qrc.Save(qw); err != nil {
		return "", fmt.Errorf("failed to save QR code: %w", err)
	}

	data, err := os.ReadFile(tmpFile)
	if err != nil {
		return "", fmt.Errorf("failed to read QR code file: %w", err)
	}
	os.Remove(tmpFile)

	return base64.StdEncoding.EncodeToString(data), nil
}

// getBaseURL constructs the base URL from the request
func getBaseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	host := r.Host
	if forwardedHost := r.Header.Get("X-Forwarded-Host"); forwardedHost != "" {
		host = forwardedHost
	}

	return fmt.Sprintf("%s://%s", scheme, host)
}
