//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jacwu/toy-store/internal/app"
	"github.com/jacwu/toy-store/internal/config"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL     string
	Client  *http.Client
	Storage *app.Storage
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

type serverOption func(*config.Config)

func withRateLimit(requests int) serverOption {
	return func(c *config.Config) {
		c.RateLimit = config.RateLimitConfig{Enabled: true, Requests: requests, Window: time.Minute}
	}
}

func withoutSeed() serverOption {
	return func(c *config.Config) { c.Storage.Seed = false }
}

func withBodyLimit(n int64) serverOption {
	return func(c *config.Config) { c.Server.BodyLimit = n }
}

// setupTestServer bootstraps the full application stack on the storage
// driver named by E2E_STORAGE (memory by default, or sqlite in memory).
// The demo catalogue is seeded unless withoutSeed is given.
func setupTestServer(t *testing.T, opts ...serverOption) *testServer {
	t.Helper()

	cfg := &config.Config{
		App:     config.AppConfig{Env: config.EnvDevelopment},
		Server:  config.ServerConfig{BodyLimit: 10 << 20},
		Storage: config.StorageConfig{Driver: config.DriverMemory, Seed: true},
		SQLite:  config.SQLiteConfig{Path: ":memory:"},
		Auth:    config.AuthConfig{PasswordHashCost: 4},
		CORS: config.CORSConfig{
			AllowedOrigins:   "http://localhost:3001,http://localhost:5173",
			AllowedMethods:   "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders:   "Content-Type,Authorization,X-Request-Id",
			AllowCredentials: true,
			MaxAge:           86400,
		},
		RateLimit: config.RateLimitConfig{Enabled: false},
		Metrics:   config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
	if driver := os.Getenv("E2E_STORAGE"); driver != "" {
		cfg.Storage.Driver = driver
	}
	for _, opt := range opts {
		opt(cfg)
	}

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, &slog.HandlerOptions{Level: slog.LevelWarn}))
	ctx := context.Background()

	store, err := app.OpenStorage(ctx, cfg, logger)
	require.NoError(t, err)
	t.Cleanup(store.Close)

	if cfg.Storage.Seed {
		_, err := app.Seed(ctx, logger, store, cfg.Auth.PasswordHashCost)
		require.NoError(t, err)
	}

	api, err := app.NewAPI(app.APIDeps{
		Config:   cfg,
		Log:      logger,
		Storage:  store,
		Registry: app.NewRegistry(),
		Started:  time.Now(),
	})
	require.NoError(t, err)
	t.Cleanup(api.Close)

	srv := httptest.NewServer(api.Handler)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client(), Storage: store}
}

// envelope is the decoded API response.
type envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	Count     *int            `json:"count"`
	ToyTypeID *int64          `json:"toyTypeId"`
	Errors    []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
}

// do sends a JSON request and returns the status code and decoded envelope.
func (ts *testServer) do(t *testing.T, method, path string, body any) (*http.Response, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, ok := body.(string)
		if !ok {
			b, err := json.Marshal(body)
			require.NoError(t, err)
			raw = string(b)
		}
		reader = bytes.NewBufferString(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &env), "body: %s", raw)
	}
	return resp, env
}

// decodeData unmarshals the envelope data into dst.
func decodeData(t *testing.T, env envelope, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, dst), "data: %s", env.Data)
}

type toyType struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Icon        *string `json:"icon"`
}

type toy struct {
	ID                int64    `json:"id"`
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	DetailDescription string   `json:"detailDescription"`
	Price             float64  `json:"price"`
	ToyTypeID         int64    `json:"toyTypeId"`
	ToyType           *toyType `json:"toyType"`
}

type comment struct {
	ID        int64     `json:"id"`
	ToyID     int64     `json:"toyId"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
}

type user struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}
