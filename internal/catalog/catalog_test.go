package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/SubhashKumar14/LearnPath/internal/models"
	"github.com/SubhashKumar14/LearnPath/internal/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(store.NewMemory().Roadmaps, zap.NewNop())
}

func TestCreateDefaultsAndNumbering(t *testing.T) {
	svc := newTestService(t)

	roadmap, err := svc.Create(7, "Go Basics", "Beginner", "4 weeks", []ModuleInput{
		{Title: "M1", Tasks: []TaskInput{{Title: "T1"}}},
	})
	require.NoError(t, err)

	assert.Equal(t, uint(1), roadmap.ID)
	assert.Equal(t, uint(7), roadmap.CreatedBy)
	require.Len(t, roadmap.Modules, 1)
	assert.Equal(t, uint(1), roadmap.Modules[0].ID)
	require.Len(t, roadmap.Modules[0].Tasks, 1)

	task := roadmap.Modules[0].Tasks[0]
	assert.Equal(t, uint(1), task.ID)
	assert.Equal(t, models.TaskProblem, task.Type)
	assert.Equal(t, "#", task.Link)
}

func TestCreateNumbersTasksAcrossModules(t *testing.T) {
	svc := newTestService(t)

	roadmap, err := svc.Create(1, "DSA", "Medium", "8 weeks", []ModuleInput{
		{Title: "Arrays", Tasks: []TaskInput{
			{Title: "Two Sum", Type: "Theory", Link: "https://example.com/two-sum"},
			{Title: "Rotate Array"},
		}},
		{Title: "Strings", Tasks: []TaskInput{
			{Title: "Anagrams"},
		}},
	})
	require.NoError(t, err)

	require.Len(t, roadmap.Modules, 2)
	assert.Equal(t, uint(1), roadmap.Modules[0].ID)
	assert.Equal(t, uint(2), roadmap.Modules[1].ID)

	// task ids are scoped to the roadmap, continuing across modules
	assert.Equal(t, uint(1), roadmap.Modules[0].Tasks[0].ID)
	assert.Equal(t, uint(2), roadmap.Modules[0].Tasks[1].ID)
	assert.Equal(t, uint(3), roadmap.Modules[1].Tasks[0].ID)

	assert.Equal(t, models.TaskTheory, roadmap.Modules[0].Tasks[0].Type)
	assert.Equal(t, "https://example.com/two-sum", roadmap.Modules[0].Tasks[0].Link)
}

func TestCreateAssignsSequentialRoadmapIDs(t *testing.T) {
	svc := newTestService(t)

	first, err := svc.Create(1, "One", "", "", nil)
	require.NoError(t, err)
	second, err := svc.Create(1, "Two", "", "", nil)
	require.NoError(t, err)

	assert.Equal(t, uint(1), first.ID)
	assert.Equal(t, uint(2), second.ID)

	list, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
