package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"clueconspiracy"
	"clueconspiracy/internal/config"
	"clueconspiracy/internal/game"
	"clueconspiracy/internal/store"
)

// newTestServer wires a handler onto the real router with the logging and
// rate-limiting middleware turned off.
func newTestServer(t *testing.T) (*Handler, *chi.Mux) {
	t.Helper()

	traps, err := game.NewTrapService(clueconspiracy.TrapTilesYAML)
	if err != nil {
		t.Fatalf("failed to load trap tiles: %v", err)
	}

	memStore := store.NewMemoryStore(store.Options{
		CodeLength:       5,
		MaxPlayers:       10,
		AccusationWindow: 5 * time.Minute,
		RoomTimeout:      24 * time.Hour,
		Traps:            traps,
	})
	h := New(memStore)

	cfg := config.DefaultConfig()
	cfg.Server.Port = "8080"
	cfg.Server.Host = "localhost"
	cfg.Server.RequestTimeout = 60 * time.Second

	router := SetupRouter(h, cfg, &RouterOptions{
		DisableRateLimiting:  true,
		DisableRequestLogger: true,
	})
	return h, router
}

// doJSON performs a request against the router, optionally authenticated
// with a player cookie, and returns the recorder.
func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// decodeBody unmarshals a recorder's JSON body into out.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(out); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
}

// createRoom creates a room through the API and returns its code.
func createRoom(t *testing.T, router http.Handler) string {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/room/new", nil, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create room: expected 201, got %d", rec.Code)
	}

	var resp map[string]string
	decodeBody(t, rec, &resp)
	if resp["code"] == "" {
		t.Fatal("create room: no code in response")
	}
	return resp["code"]
}

// joinRoom seats a named player and returns their id and session cookie.
func joinRoom(t *testing.T, router http.Handler, code, name string) (string, *http.Cookie) {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/room/"+code+"/join", map[string]string{"name": name}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("join room: expected 200 for %s, got %d: %s", name, rec.Code, rec.Body.String())
	}

	var resp map[string]string
	decodeBody(t, rec, &resp)

	for _, c := range rec.Result().Cookies() {
		if c.Name == "player_"+code {
			return resp["playerId"], c
		}
	}
	t.Fatalf("join room: no player cookie set for %s", name)
	return "", nil
}

// roomState fetches the public projection for a room.
func roomState(t *testing.T, router http.Handler, code string) *game.PublicState {
	t.Helper()

	rec := doJSON(t, router, http.MethodGet, "/room/"+code+"/state", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("room state: expected 200, got %d", rec.Code)
	}

	var state game.PublicState
	decodeBody(t, rec, &state)
	return &state
}
