// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"atlas/internal/domain/entity"
	domainerrors "atlas/internal/domain/errors"
	"atlas/internal/domain/repository"
	"atlas/internal/usecase"

	"github.com/pkg/errors"
)

// fanService implements the FanUsecase interface.
type fanService struct {
	fans   repository.FanRepository
	logger *slog.Logger
}

// NewFanService is the constructor for fanService.
func NewFanService(
	fans repository.FanRepository,
	logger *slog.Logger,
) usecase.FanUsecase {
	return &fanService{
		fans:   fans,
		logger: logger,
	}
}

// ListFans returns the full fan directory in insertion order.
func (srv *fanService) ListFans(ctx context.Context) ([]*entity.Fan, error) {
	fans, err := srv.fans.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list fans")
	}

	return fans, nil
}

// GetFan retrieves a single fan by ID.
func (srv *fanService) GetFan(ctx context.Context, id string) (*entity.Fan, error) {
	fan, err := srv.fans.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrFanNotFound) {
			return nil, errors.Wrap(domainerrors.ErrFanNotFound, "fan not found")
		}

		return nil, errors.Wrap(err, "failed to find fan")
	}

	return fan, nil
}

// CreateFan adds a fan to the directory with zeroed counters.
func (srv *fanService) CreateFan(ctx context.Context, input *usecase.CreateFanInput) (*entity.Fan, error) {
	srv.logger.Info("Creating fan", "name", input.Name)

	fan := &entity.Fan{
		Name:   input.Name,
		Avatar: input.Avatar,
		Status: entity.FanStatus(input.Status),
	}

	created, err := srv.fans.Create(ctx, fan)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fan")
	}

	return created, nil
}

// UpdateFan applies a partial update to an existing fan. Nil input
// fields leave the stored values untouched.
func (srv *fanService) UpdateFan(ctx context.Context, id string, input *usecase.UpdateFanInput) (*entity.Fan, error) {
	srv.logger.Info("Updating fan", "fanID", id)

	fan, err := srv.fans.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrFanNotFound) {
			return nil, errors.Wrap(domainerrors.ErrFanNotFound, "fan not found")
		}

		return nil, errors.Wrap(err, "failed to find fan")
	}

	if input.Name != nil {
		fan.Name = *input.Name
	}
	if input.Avatar != nil {
		fan.Avatar = *input.Avatar
	}
	if input.MessageCount != nil {
		fan.MessageCount = *input.MessageCount
	}
	if input.PaidMessages != nil {
		fan.PaidMessages = *input.PaidMessages
	}
	if input.TotalAmount != nil {
		fan.TotalAmount = *input.TotalAmount
	}
	if input.Status != nil {
		fan.Status = entity.FanStatus(*input.Status)
	}

	updated, err := srv.fans.Update(ctx, fan)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update fan")
	}

	return updated, nil
}

// SearchFans filters the directory by a case-insensitive name substring.
func (srv *fanService) SearchFans(ctx context.Context, query string) ([]*entity.Fan, error) {
	fans, err := srv.fans.Search(ctx, strings.TrimSpace(query))
	if err != nil {
		return nil, errors.Wrap(err, "failed to search fans")
	}

	return fans, nil
}

// RegisterHandle binds a chat handle to an existing fan.
func (srv *fanService) RegisterHandle(ctx context.Context, input *usecase.RegisterHandleInput) error {
	srv.logger.Info("Registering handle", "handle", input.Handle, "fanID", input.FanID)

	if err := srv.fans.RegisterHandle(ctx, input.Handle, input.FanID); err != nil {
		if errors.Is(err, repository.ErrFanNotFound) {
			return errors.Wrap(domainerrors.ErrFanNotFound, "fan not found")
		}

		return errors.Wrap(err, "failed to register handle")
	}

	return nil
}
