package service

import (
	"context"

	"github.com/de0k/mobcard-server/internal/model"
	appErr "github.com/de0k/mobcard-server/internal/pkg/errors"
)

// AccountStore is the slice of the account repo the services rely on.
type AccountStore interface {
	Get(ctx context.Context, email string) (*model.Account, error)
	GetByCredentials(ctx context.Context, email, password string) (*model.Account, error)
	Create(ctx context.Context, acc *model.Account) error
	DeleteCascade(ctx context.Context, email string) error
}

type AccountService struct {
	accounts AccountStore
}

func NewAccountService(accounts AccountStore) *AccountService {
	return &AccountService{accounts: accounts}
}

// SignUp creates the membership row. An already-registered email yields
// ErrConflict, whether caught by the pre-check or by the unique key.
func (s *AccountService) SignUp(ctx context.Context, email, password string) error {
	_, err := s.accounts.Get(ctx, email)
	if err == nil {
		return appErr.ErrConflict
	}
	if !appErr.IsNotFound(err) {
		return err
	}
	return s.accounts.Create(ctx, &model.Account{Email: email, Password: password})
}

// Login succeeds only on an exact email+password match. A missing account and
// a wrong password both come back as ErrUnauthorized.
func (s *AccountService) Login(ctx context.Context, email, password string) error {
	if _, err := s.accounts.GetByCredentials(ctx, email, password); err != nil {
		if appErr.IsNotFound(err) {
			return appErr.ErrUnauthorized
		}
		return err
	}
	return nil
}

// Delete verifies the password against the stored value and then removes the
// account together with its skin and contact rows.
func (s *AccountService) Delete(ctx context.Context, email, password string) error {
	acc, err := s.accounts.Get(ctx, email)
	if err != nil {
		if appErr.IsNotFound(err) {
			return appErr.ErrUnauthorized
		}
		return err
	}
	if acc.Password != password {
		return appErr.ErrUnauthorized
	}
	return s.accounts.DeleteCascade(ctx, email)
}
