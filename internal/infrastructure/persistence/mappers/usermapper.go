package mappers

import (
	"time"

	"github.com/helpdesk-inc/helpdesk/internal/domain/user"
	"github.com/helpdesk-inc/helpdesk/internal/infrastructure/persistence/models"
	"github.com/helpdesk-inc/helpdesk/internal/shared/authorization"
)

type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:              u.ID(),
		Name:            u.Name(),
		Email:           u.Email(),
		Password:        u.PasswordHash(),
		Role:            u.Role().String(),
		Division:        u.Division(),
		ProfileImageURL: u.ProfileImageURL(),
		CreatedAt:       u.CreatedAt().UnixMilli(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	return user.ReconstructUser(
		model.ID,
		model.Name,
		model.Email,
		model.Password,
		authorization.ParseUserRole(model.Role),
		model.Division,
		model.ProfileImageURL,
		time.UnixMilli(model.CreatedAt),
	)
}
