package usecase

import (
	"context"

	"atlas/internal/domain/entity"
)

// StatsUsecase derives the dashboard summary from the live stores.
// Nothing is cached; every call recomputes from current state.
type StatsUsecase interface {
	ComputeStats(ctx context.Context) (*entity.DashboardStats, error)
}
