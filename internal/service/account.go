package service

import (
	"context"
	"fmt"

	"github.com/muhammadhamzagova666/tourism-management-system/internal/domain"
	"github.com/muhammadhamzagova666/tourism-management-system/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type AccountService struct {
	repo   ports.AccountRepo
	logger logger.Logger
}

func NewAccountService(repo ports.AccountRepo, logger logger.Logger) *AccountService {
	return &AccountService{repo: repo, logger: logger}
}

func (s *AccountService) Register(ctx context.Context, input domain.CreateAccountInput) (*domain.Account, error) {
	if input.Username == "" {
		return nil, fmt.Errorf("%w: username is required", domain.ErrValidation)
	}
	if input.Password == "" {
		return nil, fmt.Errorf("%w: password is required", domain.ErrValidation)
	}
	// the record file is whitespace-delimited
	if containsSpace(input.Username) || containsSpace(input.Password) {
		return nil, fmt.Errorf("%w: username and password must not contain spaces", domain.ErrValidation)
	}

	account := &domain.Account{
		Username: input.Username,
		Password: input.Password,
	}

	if err := s.repo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}

	s.logger.Info("account registered",
		logger.String("username", account.Username),
	)

	return account, nil
}

func (s *AccountService) Authenticate(ctx context.Context, username, password string) (*domain.Account, error) {
	account, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}

	if account.Password != password {
		return nil, domain.ErrWrongPassword
	}

	s.logger.Info("login successful",
		logger.String("username", username),
	)

	return account, nil
}

func (s *AccountService) ChangePassword(ctx context.Context, username, currentPassword, newPassword string) error {
	if newPassword == "" || containsSpace(newPassword) {
		return fmt.Errorf("%w: new password must be non-empty without spaces", domain.ErrValidation)
	}

	account, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("get account: %w", err)
	}

	if account.Password != currentPassword {
		return domain.ErrWrongPassword
	}

	if err = s.repo.SetPassword(ctx, username, newPassword); err != nil {
		return fmt.Errorf("set password: %w", err)
	}

	s.logger.Info("password changed",
		logger.String("username", username),
	)

	return nil
}

func (s *AccountService) List(ctx context.Context) ([]*domain.Account, error) {
	return s.repo.List(ctx)
}

func containsSpace(s string) bool {
	for _, r := range s {
		if r == ' ' || r == '\t' {
			return true
		}
	}
	return false
}
