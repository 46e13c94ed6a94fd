package profile

import (
	"context"

	"go.uber.org/zap"

	"github.com/faisalthe1/AI-Study-Planner/domain"
	"github.com/faisalthe1/AI-Study-Planner/repository"
	"github.com/faisalthe1/AI-Study-Planner/usecase"
)

type UseCase struct {
	profiles repository.ProfileRepository
	buffer   usecase.OperationBuffer
	logger   *zap.Logger
}

func New(profiles repository.ProfileRepository, buffer usecase.OperationBuffer, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		profiles: profiles,
		buffer:   buffer,
		logger:   logger,
	}
}

func (uc *UseCase) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	return uc.profiles.GetByUserID(ctx, userID)
}

func (uc *UseCase) UpdateProfile(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	if err := uc.profiles.Upsert(ctx, profile); err != nil {
		if uc.buffer != nil {
			if bufErr := uc.buffer.BufferProfile(ctx, usecase.OperationUpdate, profile); bufErr != nil {
				uc.logger.Error("failed to buffer profile update", zap.Error(bufErr))
				return nil, err
			}
			uc.logger.Warn("profile update buffered due to repository error", zap.Error(err))
			return profile, nil
		}
		return nil, err
	}
	return profile, nil
}
