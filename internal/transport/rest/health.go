package rest

import (
	"context"
	"net/http"
	"time"
)

const (
	statusOK   = "OK"
	statusDown = "DOWN"
)

// storagePinger defines the minimal interface for storage health checks.
type storagePinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves health check endpoints.
type HealthHandler struct {
	storage storagePinger
	version string
	started time.Time
}

// NewHealthHandler creates a HealthHandler. started is the process start
// time used to report uptime.
func NewHealthHandler(storage storagePinger, version string, started time.Time) *HealthHandler {
	return &HealthHandler{storage: storage, version: version, started: started}
}

// HealthResponse is the JSON response for /health, /live and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Timestamp  time.Time             `json:"timestamp"`
	Uptime     float64               `json:"uptime,omitempty"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    statusOK,
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe. Pings storage: 200 if OK, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.storage.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:    statusDown,
			Timestamp: time.Now(),
		})
		return
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    statusOK,
		Timestamp: time.Now(),
	})
}

// Health is the full health check. Pings storage with latency measurement
// and includes version and uptime in seconds.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	components := make(map[string]CompStatus)
	overallStatus := statusOK

	start := time.Now()
	err := h.storage.Ping(ctx)
	latency := time.Since(start)

	if err != nil {
		components["storage"] = CompStatus{Status: statusDown}
		overallStatus = statusDown
	} else {
		components["storage"] = CompStatus{
			Status:  statusOK,
			Latency: latency.String(),
		}
	}

	status := http.StatusOK
	if overallStatus != statusOK {
		status = http.StatusServiceUnavailable
	}

	now := time.Now()
	writeJSON(w, status, HealthResponse{
		Status:     overallStatus,
		Timestamp:  now,
		Uptime:     now.Sub(h.started).Seconds(),
		Version:    h.version,
		Components: components,
	})
}
