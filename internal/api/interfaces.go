package api

import (
	"context"

	"github.com/Sri-Krishna-R-Hebbar/Travel-Agent/internal/storage"
	"github.com/Sri-Krishna-R-Hebbar/Travel-Agent/internal/trip"
)

// PlanRepo defines the storage operations needed by handlers.
type PlanRepo interface {
	GetPlan(ctx context.Context, destination string) (*storage.StoredPlan, error)
	UpsertPlan(ctx context.Context, plan *trip.TravelPlan) error
}

// PlanCache defines the cache operations needed by handlers.
type PlanCache interface {
	Get(ctx context.Context, destination string) (*trip.TravelPlan, error)
	Set(ctx context.Context, destination string, plan *trip.TravelPlan) error
	Delete(ctx context.Context, destination string) error
}

// PlanComposer defines the plan generation needed by handlers.
type PlanComposer interface {
	CreatePlan(ctx context.Context, req trip.PlanRequest) (*trip.TravelPlan, error)
}
