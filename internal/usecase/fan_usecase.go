package usecase

import (
	"context"

	"atlas/internal/domain/entity"
)

// CreateFanInput carries the fields a caller supplies when adding a fan.
// Counters start at zero; the store assigns the ID and timestamps.
type CreateFanInput struct {
	Name   string `json:"name" validate:"required"`
	Avatar string `json:"avatar"`
	Status string `json:"status" validate:"omitempty,oneof=active inactive offline"`
}

// UpdateFanInput carries partial updates. Nil fields are left untouched.
type UpdateFanInput struct {
	Name         *string `json:"name"`
	Avatar       *string `json:"avatar"`
	MessageCount *int    `json:"messageCount"`
	PaidMessages *int    `json:"paidMessages"`
	TotalAmount  *string `json:"totalAmount"`
	Status       *string `json:"status" validate:"omitempty,oneof=active inactive offline"`
}

// RegisterHandleInput binds a chat handle to an existing fan so the
// answer resolver can find them by @mention.
type RegisterHandleInput struct {
	Handle string `json:"handle" validate:"required"`
	FanID  string `json:"fanId" validate:"required"`
}

// FanUsecase manages the fan directory.
type FanUsecase interface {
	ListFans(ctx context.Context) ([]*entity.Fan, error)
	GetFan(ctx context.Context, id string) (*entity.Fan, error)
	CreateFan(ctx context.Context, input *CreateFanInput) (*entity.Fan, error)
	UpdateFan(ctx context.Context, id string, input *UpdateFanInput) (*entity.Fan, error)
	SearchFans(ctx context.Context, query string) ([]*entity.Fan, error)
	RegisterHandle(ctx context.Context, input *RegisterHandleInput) error
}
