package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Sri-Krishna-R-Hebbar/Travel-Agent/internal/planner"
	"github.com/Sri-Krishna-R-Hebbar/Travel-Agent/internal/trip"
)

// Handlers holds the dependencies for all HTTP handlers.
type Handlers struct {
	repo     PlanRepo
	cache    PlanCache
	composer PlanComposer
	log      *slog.Logger
}

// NewHandlers constructs Handlers with all required dependencies.
func NewHandlers(repo PlanRepo, cache PlanCache, composer PlanComposer, log *slog.Logger) *Handlers {
	return &Handlers{
		repo:     repo,
		cache:    cache,
		composer: composer,
		log:      log,
	}
}

// writeJSON encodes v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// CreatePlan handles POST /api/v1/plans.
// Invalid input is rejected with 400 before any component runs; a valid
// request always yields a complete plan (adapters degrade internally).
func (h *Handlers) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var req trip.PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if err := planner.ValidateRequest(req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	plan, err := h.composer.CreatePlan(r.Context(), req)
	if err != nil {
		h.log.Error("plan composition failed", "destination", req.Destination, "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to create travel plan"})
		return
	}

	if err := h.repo.UpsertPlan(r.Context(), plan); err != nil {
		h.log.Error("plan upsert failed", "destination", req.Destination, "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to store travel plan"})
		return
	}

	if err := h.cache.Delete(r.Context(), plan.Destination); err != nil {
		h.log.Warn("cache delete failed", "destination", plan.Destination, "err", err)
	}
	if err := h.cache.Set(r.Context(), plan.Destination, plan); err != nil {
		h.log.Warn("cache set failed after create", "destination", plan.Destination, "err", err)
	}

	writeJSON(w, http.StatusOK, plan)
}

// GetPlan handles GET /api/v1/plans/{destination}.
// Cache hit → return. DB hit → cache + return. Neither → 404.
func (h *Handlers) GetPlan(w http.ResponseWriter, r *http.Request) {
	destination := chi.URLParam(r, "destination")

	cached, err := h.cache.Get(r.Context(), destination)
	if err != nil {
		h.log.Error("cache get failed", "destination", destination, "err", err)
	}
	if cached != nil {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	stored, err := h.repo.GetPlan(r.Context(), destination)
	if err != nil {
		h.log.Error("db get failed", "destination", destination, "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	if stored == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no plan for this destination — POST /api/v1/plans first"})
		return
	}

	if err := h.cache.Set(r.Context(), destination, &stored.Plan); err != nil {
		h.log.Warn("cache set failed after db hit", "destination", destination, "err", err)
	}

	writeJSON(w, http.StatusOK, stored.Plan)
}

// ExportPlan handles GET /api/v1/plans/{destination}/markdown.
// Renders the stored plan as a downloadable markdown document.
func (h *Handlers) ExportPlan(w http.ResponseWriter, r *http.Request) {
	destination := chi.URLParam(r, "destination")

	plan, err := h.cache.Get(r.Context(), destination)
	if err != nil {
		h.log.Error("cache get failed", "destination", destination, "err", err)
	}
	if plan == nil {
		stored, err := h.repo.GetPlan(r.Context(), destination)
		if err != nil {
			h.log.Error("db get failed", "destination", destination, "err", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
			return
		}
		if stored == nil {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "no plan for this destination — POST /api/v1/plans first"})
			return
		}
		plan = &stored.Plan
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="travel-plan.md"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(planner.ExportMarkdown(plan)))
}

type dbPinger interface {
	Ping(ctx context.Context) error
}

type redisPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandlerFunc returns an http.HandlerFunc that checks db and redis
// connectivity. Returns 200 if both ok, 503 otherwise.
func HealthHandlerFunc(db dbPinger, redis redisPinger, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		status := http.StatusOK
		dbStatus := "ok"
		redisStatus := "ok"

		if err := db.Ping(ctx); err != nil {
			log.Error("health check: db ping failed", "err", err)
			dbStatus = "error"
			status = http.StatusServiceUnavailable
		}

		if err := redis.Ping(ctx); err != nil {
			log.Error("health check: redis ping failed", "err", err)
			redisStatus = "error"
			status = http.StatusServiceUnavailable
		}

		overall := "ok"
		if status != http.StatusOK {
			overall = "degraded"
		}

		writeJSON(w, status, map[string]string{
			"status": overall,
			"db":     dbStatus,
			"redis":  redisStatus,
		})
	}
}
