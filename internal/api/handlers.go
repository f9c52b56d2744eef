package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/pitchsignals/pitchsignals/internal/ledger"
	"github.com/pitchsignals/pitchsignals/internal/models"
	"github.com/pitchsignals/pitchsignals/internal/pipeline"
	"github.com/pitchsignals/pitchsignals/internal/scheduler"
)

// Handlers holds the API handlers.
type Handlers struct {
	repo   ledger.Repository
	runner *pipeline.Runner
	sched  *scheduler.Scheduler
}

// NewHandlers creates new API handlers.
func NewHandlers(repo ledger.Repository, runner *pipeline.Runner, sched *scheduler.Scheduler) *Handlers {
	return &Handlers{repo: repo, runner: runner, sched: sched}
}

// Response helpers

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// HealthCheck reports process liveness.
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// GetTodayPicks returns the selection from the most recent run.
func (h *Handlers) GetTodayPicks(w http.ResponseWriter, r *http.Request) {
	report := h.runner.LastReport()
	if report == nil {
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"picks": []models.Match{},
			"count": 0,
		})
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"picks":      report.Selected,
		"count":      len(report.Selected),
		"started_at": report.StartedAt,
	})
}

// GetLedger returns all pending ledger entries.
func (h *Handlers) GetLedger(w http.ResponseWriter, r *http.Request) {
	entries, err := h.repo.All(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to read ledger")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"entries": entries,
		"count":   len(entries),
	})
}

// GetStats returns run-level statistics.
func (h *Handlers) GetStats(w http.ResponseWriter, r *http.Request) {
	entries, err := h.repo.All(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to read ledger")
		return
	}

	stats := map[string]interface{}{
		"pending_picks": len(entries),
		"jobs":          h.sched.GetJobStatus(),
	}

	if report := h.runner.LastReport(); report != nil {
		stats["last_run"] = report.StartedAt
		stats["last_fetched"] = report.Fetched
		stats["last_upcoming"] = report.Upcoming
		stats["last_wins"] = len(report.Wins)
		stats["last_recorded"] = report.Recorded
		stats["requests_used"] = report.RequestsUsed
	}

	respondJSON(w, http.StatusOK, stats)
}

// AdminRunNow triggers a scheduled job immediately, defaulting to the
// daily digest. The job runs detached with the scheduler's own timeout,
// so it outlives this response.
func (h *Handlers) AdminRunNow(w http.ResponseWriter, r *http.Request) {
	job := r.URL.Query().Get("job")
	if job == "" {
		job = scheduler.JobDailyDigest
	}

	if err := h.sched.RunJobNow(job); err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	respondJSON(w, http.StatusAccepted, map[string]string{
		"status": "ok",
		"job":    job,
	})
}
