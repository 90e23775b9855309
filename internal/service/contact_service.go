package service

import (
	"context"

	"github.com/de0k/mobcard-server/internal/model"
)

type ContactStore interface {
	Get(ctx context.Context, email string) (*model.ContactRecord, error)
	Upsert(ctx context.Context, email string, fields map[string]interface{}) error
}

type ContactService struct {
	contacts ContactStore
}

func NewContactService(contacts ContactStore) *ContactService {
	return &ContactService{contacts: contacts}
}

// Upsert merges the supplied fields into the record for email. Unlike the
// skin flow there is no membership existence check here; the table's foreign
// key is what rejects rows for unknown accounts.
func (s *ContactService) Upsert(ctx context.Context, email string, fields map[string]interface{}) error {
	return s.contacts.Upsert(ctx, email, fields)
}

func (s *ContactService) Get(ctx context.Context, email string) (*model.ContactRecord, error) {
	return s.contacts.Get(ctx, email)
}
