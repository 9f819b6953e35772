package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCreateAndUpdate(t *testing.T) {
	store := newFakeStore()
	svc := NewUserService(store)

	user, err := svc.Create(context.Background(), CreateUserInput{
		Email:     "jane@example.com",
		FirstName: "Jane",
		LastName:  "Doe",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)

	updated, err := svc.Update(context.Background(), user.ID, UpdateUserInput{
		Email:     "jane.doe@example.com",
		FirstName: "Jane",
		LastName:  "Doe",
	})
	require.NoError(t, err)
	assert.Equal(t, "jane.doe@example.com", updated.Email)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt) || updated.UpdatedAt.Equal(updated.CreatedAt))
}

func TestUserUpdateMissing(t *testing.T) {
	store := newFakeStore()
	svc := NewUserService(store)

	_, err := svc.Update(context.Background(), uuid.New(), UpdateUserInput{Email: "x@example.com"})
	require.Error(t, err)
}

func TestUserDelete(t *testing.T) {
	store := newFakeStore()
	user := store.seedUser("jane@example.com")
	svc := NewUserService(store)

	require.NoError(t, svc.Delete(context.Background(), user.ID))
	assert.Error(t, svc.Delete(context.Background(), user.ID))
}
