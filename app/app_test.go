package app

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	gamedto "github.com/Black-And-White-Club/bowling-bot/app/modules/game/dto"
	"github.com/Black-And-White-Club/bowling-bot/config"
	"github.com/Black-And-White-Club/bowling-bot/pkg/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg := config.Default()
	cfg.HTTP.Address = "127.0.0.1:0"
	cfg.HTTP.ShutdownTimeout = time.Second

	obs, err := observability.Init(observability.Config{
		LogFormat:        "text",
		MetricsEnabled:   true,
		MetricsNamespace: "bowling",
	}, io.Discard)
	require.NoError(t, err)

	a, err := NewApp(context.Background(), cfg, obs)
	require.NoError(t, err)
	return a
}

func TestApp_HTTP(t *testing.T) {
	a := newTestApp(t)
	t.Cleanup(func() { _ = a.Close() })
	srv := httptest.NewServer(a.HTTPRouter)
	t.Cleanup(srv.Close)

	resp, err := http.Post(srv.URL+"/api/games", "application/json", strings.NewReader(`{"players":["Ann","Bo"]}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var view gamedto.GameView
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&view))
	assert.Equal(t, "Ann", view.CurrentPlayer)

	health, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	health.Body.Close()
	assert.Equal(t, http.StatusOK, health.StatusCode)

	metrics, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	body, err := io.ReadAll(metrics.Body)
	metrics.Body.Close()
	require.NoError(t, err)
	assert.Contains(t, string(body), "bowling_game_started_total")
}

func TestApp_CORSPreflight(t *testing.T) {
	a := newTestApp(t)
	t.Cleanup(func() { _ = a.Close() })

	req := httptest.NewRequest(http.MethodOptions, "/api/games", nil)
	req.Header.Set("Origin", "https://lanes.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	a.HTTPRouter.ServeHTTP(rr, req)

	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestApp_StartAndShutdown(t *testing.T) {
	a := newTestApp(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Start(ctx) }()

	select {
	case <-a.Router.Running():
	case <-time.After(5 * time.Second):
		t.Fatal("message router did not start")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("app did not shut down")
	}
}
