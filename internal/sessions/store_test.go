package sessions

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homeseek/backend/internal/models"
)

func testUser() models.UserData {
	return models.UserData{
		ID:       uuid.New(),
		FullName: "Ayu Lestari",
		Email:    "ayu@example.com",
		Address:  "Jl. Merdeka 1",
	}
}

func TestCreateAndResolve(t *testing.T) {
	store := NewStore(DefaultTTL)
	user := testUser()

	created := store.Create(user)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, user, created.UserData)

	resolved, err := store.Resolve(created.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, resolved.UserData.ID)
}

func TestResolveUnknownToken(t *testing.T) {
	store := NewStore(DefaultTTL)

	_, err := store.Resolve("nonexistent-token")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolveRefreshesLastActive(t *testing.T) {
	store := NewStore(DefaultTTL)
	now := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	session := store.Create(testUser())

	// 47h idle: still valid, and the resolve slides the window.
	now = now.Add(47 * time.Hour)
	resolved, err := store.Resolve(session.ID)
	require.NoError(t, err)
	assert.Equal(t, now, resolved.LastActive)

	// Another 47h from the refreshed timestamp is still within TTL.
	now = now.Add(47 * time.Hour)
	_, err = store.Resolve(session.ID)
	assert.NoError(t, err)
}

func TestResolveExpiredEvictsEntry(t *testing.T) {
	store := NewStore(DefaultTTL)
	now := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	session := store.Create(testUser())

	now = now.Add(49 * time.Hour)
	_, err := store.Resolve(session.ID)
	assert.ErrorIs(t, err, ErrExpired)

	// The entry is gone: the same token now fails as unknown.
	_, err = store.Resolve(session.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExpiryBoundaryIsInclusive(t *testing.T) {
	store := NewStore(DefaultTTL)
	now := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	session := store.Create(testUser())

	// Exactly 48h idle counts as expired.
	now = now.Add(48 * time.Hour)
	_, err := store.Resolve(session.ID)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestDeleteIsIdempotent(t *testing.T) {
	store := NewStore(DefaultTTL)
	session := store.Create(testUser())

	store.Delete(session.ID)
	_, err := store.Resolve(session.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting again (or deleting garbage) never fails.
	store.Delete(session.ID)
	store.Delete("never-existed")
	assert.Equal(t, 0, store.Len())
}

func TestSessionsAreCopies(t *testing.T) {
	store := NewStore(DefaultTTL)
	session := store.Create(testUser())

	resolved, err := store.Resolve(session.ID)
	require.NoError(t, err)

	// Mutating the returned value must not leak into the store.
	resolved.UserData.FullName = "Someone Else"

	again, err := store.Resolve(session.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "Someone Else", again.UserData.FullName)
}

func TestConcurrentAccess(t *testing.T) {
	store := NewStore(DefaultTTL)
	session := store.Create(testUser())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = store.Resolve(session.ID)
		}()
		go func() {
			defer wg.Done()
			store.Create(testUser())
		}()
	}
	wg.Wait()

	assert.Equal(t, 51, store.Len())
}
