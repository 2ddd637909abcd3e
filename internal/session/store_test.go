package session

import (
	"testing"

	"github.com/crickhub-dev/crickhub/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestStoreCreateAndGet(t *testing.T) {
	store := NewStore()

	user := types.SessionUser{ID: "u1", Email: "admin@crickhub.test", Role: types.RoleAdmin}
	token := store.Create(user)

	assert.NotEmpty(t, token)

	got, ok := store.Get(token)
	assert.True(t, ok)
	assert.Equal(t, user, got)
}

func TestStoreTokensAreUnique(t *testing.T) {
	store := NewStore()

	user := types.SessionUser{ID: "u1", Email: "admin@crickhub.test", Role: types.RoleAdmin}

	first := store.Create(user)
	second := store.Create(user)

	assert.NotEqual(t, first, second)
}

func TestStoreDestroy(t *testing.T) {
	store := NewStore()

	token := store.Create(types.SessionUser{ID: "u1", Email: "viewer@crickhub.test", Role: types.RoleViewer})

	store.Destroy(token)

	_, ok := store.Get(token)
	assert.False(t, ok)
}

func TestStoreGetUnknownToken(t *testing.T) {
	store := NewStore()

	_, ok := store.Get("no-such-token")
	assert.False(t, ok)
}
