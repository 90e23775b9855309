package service

import (
	"context"

	"github.com/de0k/mobcard-server/internal/model"
)

type SkinStore interface {
	Get(ctx context.Context, email string) (*model.SkinSelection, error)
	Upsert(ctx context.Context, email, skin string) error
}

type SkinService struct {
	accounts AccountStore
	skins    SkinStore
}

func NewSkinService(accounts AccountStore, skins SkinStore) *SkinService {
	return &SkinService{accounts: accounts, skins: skins}
}

// Save stores the selection for a known account. ErrNotFound propagates when
// the email has no membership row.
func (s *SkinService) Save(ctx context.Context, email, skin string) error {
	if _, err := s.accounts.Get(ctx, email); err != nil {
		return err
	}
	return s.skins.Upsert(ctx, email, skin)
}

func (s *SkinService) Get(ctx context.Context, email string) (*model.SkinSelection, error) {
	return s.skins.Get(ctx, email)
}
