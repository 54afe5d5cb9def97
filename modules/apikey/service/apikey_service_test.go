package service

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"meetbrief-api/core/errors"
	"meetbrief-api/modules/apikey/dto"
	"meetbrief-api/modules/apikey/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memKeyRepo struct {
	mu   sync.Mutex
	keys map[uuid.UUID]*entity.APIKey
}

func newMemKeyRepo() *memKeyRepo {
	return &memKeyRepo{keys: make(map[uuid.UUID]*entity.APIKey)}
}

func (r *memKeyRepo) Create(_ context.Context, key *entity.APIKey) (*entity.APIKey, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key.ID = uuid.New()
	key.CreatedAt = time.Now()
	key.UpdatedAt = key.CreatedAt
	r.keys[key.ID] = key
	return key, nil
}

func (r *memKeyRepo) ListByUserID(_ context.Context, userID uuid.UUID) ([]entity.APIKey, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.APIKey
	for _, k := range r.keys {
		if k.UserID == userID {
			out = append(out, *k)
		}
	}
	return out, nil
}

func (r *memKeyRepo) GetByID(_ context.Context, userID, id uuid.UUID) (*entity.APIKey, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if k, ok := r.keys[id]; ok && k.UserID == userID {
		return k, nil
	}
	return nil, nil
}

func (r *memKeyRepo) GetActiveByUserID(_ context.Context, userID uuid.UUID) (*entity.APIKey, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var newest *entity.APIKey
	for _, k := range r.keys {
		if k.UserID == userID && k.Active {
			if newest == nil || k.CreatedAt.After(newest.CreatedAt) {
				newest = k
			}
		}
	}
	return newest, nil
}

func (r *memKeyRepo) Update(_ context.Context, key *entity.APIKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.keys[key.ID] = key
	return nil
}

func (r *memKeyRepo) Delete(_ context.Context, userID, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if k, ok := r.keys[id]; ok && k.UserID == userID {
		delete(r.keys, id)
		return true, nil
	}
	return false, nil
}

func (r *memKeyRepo) TouchLastUsed(_ context.Context, id uuid.UUID) error { return nil }

func TestCreateKey_FullKeyShownOnce(t *testing.T) {
	svc := NewAPIKeyService(newMemKeyRepo())
	userID := uuid.New()

	created, appErr := svc.Create(context.Background(), userID, &dto.CreateKeyRequest{Name: "bridge"})
	require.Nil(t, appErr)

	assert.True(t, strings.HasPrefix(created.Key, "mbk_"), "key %q", created.Key)
	assert.True(t, strings.HasPrefix(created.Key, created.Prefix))
	assert.Greater(t, len(created.Key), len(created.Prefix))
	assert.True(t, created.Active)

	// Listing never exposes more than the prefix.
	list, appErr := svc.List(context.Background(), userID)
	require.Nil(t, appErr)
	require.Len(t, list.Keys, 1)
	assert.Equal(t, created.Prefix, list.Keys[0].Prefix)
}

func TestCreateKey_RequiresName(t *testing.T) {
	svc := NewAPIKeyService(newMemKeyRepo())

	_, appErr := svc.Create(context.Background(), uuid.New(), &dto.CreateKeyRequest{})
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
}

func TestActiveKey_NoneIsSpecificError(t *testing.T) {
	svc := NewAPIKeyService(newMemKeyRepo())

	_, appErr := svc.ActiveKey(context.Background(), uuid.New())
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNoActiveAPIKey, appErr.Code)
	assert.Contains(t, appErr.Message, "No active API key found")
}

func TestActiveKey_IgnoresDeactivatedKeys(t *testing.T) {
	repo := newMemKeyRepo()
	svc := NewAPIKeyService(repo)
	userID := uuid.New()

	created, appErr := svc.Create(context.Background(), userID, &dto.CreateKeyRequest{Name: "bridge"})
	require.Nil(t, appErr)

	inactive := false
	_, appErr = svc.Update(context.Background(), userID, created.ID, &dto.UpdateKeyRequest{Active: &inactive})
	require.Nil(t, appErr)

	_, appErr = svc.ActiveKey(context.Background(), userID)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNoActiveAPIKey, appErr.Code)
}

func TestDeleteKey(t *testing.T) {
	svc := NewAPIKeyService(newMemKeyRepo())
	userID := uuid.New()

	created, appErr := svc.Create(context.Background(), userID, &dto.CreateKeyRequest{Name: "bridge"})
	require.Nil(t, appErr)

	require.Nil(t, svc.Delete(context.Background(), userID, created.ID))

	appErr = svc.Delete(context.Background(), userID, created.ID)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)

	// Other users cannot delete the key.
	created2, _ := svc.Create(context.Background(), userID, &dto.CreateKeyRequest{Name: "other"})
	appErr = svc.Delete(context.Background(), uuid.New(), created2.ID)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrNotFound, appErr.Code)
}
