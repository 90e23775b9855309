package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/de0k/mobcard-server/internal/geocode"
	"github.com/de0k/mobcard-server/internal/handler"
	"github.com/de0k/mobcard-server/internal/model"
	appErr "github.com/de0k/mobcard-server/internal/pkg/errors"
	"github.com/de0k/mobcard-server/internal/service"
)

// memStore implements the account, skin and contact store interfaces backed
// by maps, with the same keyed get/upsert/delete behavior the repos provide.
type memStore struct {
	accounts map[string]string
	skins    map[string]string
	contacts map[string]map[string]interface{}
}

func newMemStore() *memStore {
	return &memStore{
		accounts: make(map[string]string),
		skins:    make(map[string]string),
		contacts: make(map[string]map[string]interface{}),
	}
}

func (m *memStore) Get(ctx context.Context, email string) (*model.Account, error) {
	pw, ok := m.accounts[email]
	if !ok {
		return nil, appErr.ErrNotFound
	}
	return &model.Account{Email: email, Password: pw}, nil
}

func (m *memStore) GetByCredentials(ctx context.Context, email, password string) (*model.Account, error) {
	pw, ok := m.accounts[email]
	if !ok || pw != password {
		return nil, appErr.ErrNotFound
	}
	return &model.Account{Email: email, Password: pw}, nil
}

func (m *memStore) Create(ctx context.Context, acc *model.Account) error {
	if _, ok := m.accounts[acc.Email]; ok {
		return appErr.ErrConflict
	}
	m.accounts[acc.Email] = acc.Password
	return nil
}

func (m *memStore) DeleteCascade(ctx context.Context, email string) error {
	delete(m.skins, email)
	delete(m.contacts, email)
	delete(m.accounts, email)
	return nil
}

func (m *memStore) GetSkin(ctx context.Context, email string) (*model.SkinSelection, error) {
	skin, ok := m.skins[email]
	if !ok {
		return nil, appErr.ErrNotFound
	}
	return &model.SkinSelection{Email: email, Skin: skin}, nil
}

func (m *memStore) UpsertSkin(ctx context.Context, email, skin string) error {
	m.skins[email] = skin
	return nil
}

func (m *memStore) GetContact(ctx context.Context, email string) (*model.ContactRecord, error) {
	fields, ok := m.contacts[email]
	if !ok {
		return nil, appErr.ErrNotFound
	}
	rec := &model.ContactRecord{Email: email}
	targets := map[string]**string{
		"name": &rec.Name, "hp": &rec.HP, "address": &rec.Address,
		"fax": &rec.Fax, "url": &rec.URL, "produc": &rec.Produc,
		"rank": &rec.Rank, "cname": &rec.CName, "imgurl": &rec.ImgURL,
	}
	for column, value := range fields {
		s := value.(string)
		*targets[column] = &s
	}
	return rec, nil
}

func (m *memStore) UpsertContact(ctx context.Context, email string, fields map[string]interface{}) error {
	existing, ok := m.contacts[email]
	if !ok {
		existing = make(map[string]interface{})
		m.contacts[email] = existing
	}
	for k, v := range fields {
		existing[k] = v
	}
	return nil
}

// skinStore and contactStore adapt memStore's method names to the service
// interfaces.
type skinStore struct{ m *memStore }

func (s skinStore) Get(ctx context.Context, email string) (*model.SkinSelection, error) {
	return s.m.GetSkin(ctx, email)
}

func (s skinStore) Upsert(ctx context.Context, email, skin string) error {
	return s.m.UpsertSkin(ctx, email, skin)
}

type contactStore struct{ m *memStore }

func (s contactStore) Get(ctx context.Context, email string) (*model.ContactRecord, error) {
	return s.m.GetContact(ctx, email)
}

func (s contactStore) Upsert(ctx context.Context, email string, fields map[string]interface{}) error {
	return s.m.UpsertContact(ctx, email, fields)
}

type fakeGeocoder struct {
	coords *geocode.Coordinates
	err    error
}

func (f *fakeGeocoder) Lookup(ctx context.Context, address string) (*geocode.Coordinates, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.coords, nil
}

func setupRouter(t *testing.T, geocoder handler.Geocoder) (*gin.Engine, *memStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := newMemStore()
	accountService := service.NewAccountService(store)
	skinService := service.NewSkinService(store, skinStore{m: store})
	contactService := service.NewContactService(contactStore{m: store})

	router := handler.NewRouter(handler.RouterDeps{
		Auth:     handler.NewAuthHandler(accountService),
		Skins:    handler.NewSkinHandler(skinService),
		Contacts: handler.NewContactHandler(contactService),
		Geo:      handler.NewGeoHandler(geocoder),
	})
	return router, store
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
