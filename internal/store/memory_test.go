package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SubhashKumar14/LearnPath/internal/models"
)

func TestMemoryUsers(t *testing.T) {
	st := NewMemory()

	u := &models.User{Name: "Alice", Email: "alice@example.com", PasswordHash: "h", Role: models.RoleUser}
	require.NoError(t, st.Users.Create(u))
	assert.Equal(t, uint(1), u.ID)

	dup := &models.User{Name: "Clone", Email: "alice@example.com", PasswordHash: "h", Role: models.RoleUser}
	assert.ErrorIs(t, st.Users.Create(dup), ErrDuplicateEmail)

	byEmail, err := st.Users.FindByEmail("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)

	byID, err := st.Users.FindByID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", byID.Name)

	_, err = st.Users.FindByEmail("nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = st.Users.FindByID(99)
	assert.ErrorIs(t, err, ErrNotFound)

	users, err := st.Users.CountByRole(models.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, int64(1), users)
	admins, err := st.Users.CountByRole(models.RoleAdmin)
	require.NoError(t, err)
	assert.Zero(t, admins)
}

func TestMemoryRoadmaps(t *testing.T) {
	st := NewMemory()

	first := &models.Roadmap{Title: "Go"}
	second := &models.Roadmap{Title: "Rust"}
	require.NoError(t, st.Roadmaps.Create(first))
	require.NoError(t, st.Roadmaps.Create(second))
	assert.Equal(t, uint(1), first.ID)
	assert.Equal(t, uint(2), second.ID)

	list, err := st.Roadmaps.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Go", list[0].Title)
	assert.Equal(t, "Rust", list[1].Title)

	got, err := st.Roadmaps.GetByID(2)
	require.NoError(t, err)
	assert.Equal(t, "Rust", got.Title)

	_, err = st.Roadmaps.GetByID(999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryProgressToggle(t *testing.T) {
	st := NewMemory()

	got, err := st.Progress.GetCompleted(1, 1)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NotNil(t, got)

	require.NoError(t, st.Progress.SetCompletion(1, 1, 3, true))
	require.NoError(t, st.Progress.SetCompletion(1, 1, 2, true))

	got, err = st.Progress.GetCompleted(1, 1)
	require.NoError(t, err)
	assert.Equal(t, []uint{2, 3}, got)

	require.NoError(t, st.Progress.SetCompletion(1, 1, 3, false))
	got, err = st.Progress.GetCompleted(1, 1)
	require.NoError(t, err)
	assert.Equal(t, []uint{2}, got)
}

func TestMemoryProgressIdempotent(t *testing.T) {
	st := NewMemory()

	require.NoError(t, st.Progress.SetCompletion(1, 1, 5, true))
	require.NoError(t, st.Progress.SetCompletion(1, 1, 5, true))

	got, err := st.Progress.GetCompleted(1, 1)
	require.NoError(t, err)
	assert.Equal(t, []uint{5}, got)

	// unmarking an absent task is a no-op
	require.NoError(t, st.Progress.SetCompletion(1, 1, 5, false))
	require.NoError(t, st.Progress.SetCompletion(1, 1, 5, false))
	got, err = st.Progress.GetCompleted(1, 1)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemoryProgressConcurrentAccess(t *testing.T) {
	st := NewMemory()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(taskID uint) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_ = st.Progress.SetCompletion(1, 1, taskID, true)
				_, _ = st.Progress.GetCompleted(1, 1)
			}
		}(uint(i + 1))
	}
	wg.Wait()

	got, err := st.Progress.GetCompleted(1, 1)
	require.NoError(t, err)
	assert.Equal(t, []uint{1, 2, 3, 4, 5, 6, 7, 8}, got)
}

func TestMemoryProgressIsScoped(t *testing.T) {
	st := NewMemory()

	require.NoError(t, st.Progress.SetCompletion(1, 1, 1, true))
	require.NoError(t, st.Progress.SetCompletion(2, 1, 2, true))
	require.NoError(t, st.Progress.SetCompletion(1, 2, 3, true))

	got, err := st.Progress.GetCompleted(1, 1)
	require.NoError(t, err)
	assert.Equal(t, []uint{1}, got)
}
