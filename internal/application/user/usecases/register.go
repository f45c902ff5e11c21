package usecases

import (
	"context"

	"github.com/helpdesk-inc/helpdesk/internal/domain/user"
	"github.com/helpdesk-inc/helpdesk/internal/shared/authorization"
	"github.com/helpdesk-inc/helpdesk/internal/shared/errors"
	"github.com/helpdesk-inc/helpdesk/internal/shared/logger"
)

// TokenIssuer signs an access token for an authenticated principal.
type TokenIssuer interface {
	Generate(userID uint, role authorization.UserRole) (string, error)
}

type RegisterCommand struct {
	Name     string
	Email    string
	Password string
}

type RegisterResult struct {
	UserID uint
	Token  string
}

type RegisterUseCase struct {
	userRepo user.Repository
	hasher   user.PasswordHasher
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewRegisterUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	tokens TokenIssuer,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error) {
	if cmd.Name == "" || cmd.Email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("name, email and password are required")
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to check email existence", "error", err)
		return nil, err
	}
	if exists {
		return nil, errors.NewValidationError("email already registered")
	}

	// Self-registration always produces a regular user; admin accounts are
	// provisioned out of band.
	newUser, err := user.NewUser(cmd.Name, cmd.Email, authorization.RoleUser, nil)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := newUser.SetPassword(cmd.Password, uc.hasher); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Save(ctx, newUser); err != nil {
		uc.logger.Errorw("failed to save user", "error", err)
		return nil, err
	}

	token, err := uc.tokens.Generate(newUser.ID(), newUser.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate token", "user_id", newUser.ID(), "error", err)
		return nil, errors.NewInternalError("failed to generate token")
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID())

	return &RegisterResult{
		UserID: newUser.ID(),
		Token:  token,
	}, nil
}
