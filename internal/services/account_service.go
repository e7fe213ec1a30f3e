package services

import (
	"context"

	"seacatering/internal/config"
	"seacatering/internal/models/db_models"
	"seacatering/internal/models/request_models"
	"seacatering/internal/repositories"
	"seacatering/pkg/utils"
)

type AccountServiceInterface interface {
	CreateAccount(ctx context.Context, request request_models.SignUpRequest) error
	Login(ctx context.Context, request request_models.LoginRequest) (string, error)
}

type AccountService struct {
	userRepo repositories.UserRepository
	cfg      *config.Config
}

func NewAccountService(userRepo repositories.UserRepository, cfg *config.Config) AccountServiceInterface {
	return &AccountService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

func (a *AccountService) CreateAccount(ctx context.Context, request request_models.SignUpRequest) error {
	existing, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil {
		return utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return utils.ErrDatabaseError
	}

	role := db_models.RoleUser
	if a.cfg.IsAdminEmail(request.Email) {
		role = db_models.RoleAdmin
	}

	user := &db_models.User{
		Email:        request.Email,
		FullName:     request.FullName,
		PasswordHash: hashedPassword,
		Role:         role,
	}
	if err := a.userRepo.Insert(ctx, user); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (string, error) {
	user, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if user == nil {
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(user.ID, user.Email, user.FullName, string(user.Role))
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}
	return token, nil
}
