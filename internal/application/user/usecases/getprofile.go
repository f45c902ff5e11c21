package usecases

import (
	"context"
	"time"

	"github.com/helpdesk-inc/helpdesk/internal/domain/user"
	"github.com/helpdesk-inc/helpdesk/internal/shared/logger"
)

type GetProfileQuery struct {
	UserID uint
}

type GetProfileResult struct {
	ID              uint      `json:"id"`
	Username        string    `json:"username"`
	Email           string    `json:"email"`
	Division        *string   `json:"division"`
	ProfileImageURL *string   `json:"profileImageUrl"`
	CreatedAt       time.Time `json:"createdAt"`
}

type GetProfileUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewGetProfileUseCase(userRepo user.Repository, logger logger.Interface) *GetProfileUseCase {
	return &GetProfileUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, query GetProfileQuery) (*GetProfileResult, error) {
	u, err := uc.userRepo.FindByID(ctx, query.UserID)
	if err != nil {
		return nil, err
	}

	return &GetProfileResult{
		ID:              u.ID(),
		Username:        u.Name(),
		Email:           u.Email(),
		Division:        u.Division(),
		ProfileImageURL: u.ProfileImageURL(),
		CreatedAt:       u.CreatedAt(),
	}, nil
}
