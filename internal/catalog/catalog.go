// Package catalog owns the roadmap collection: listing, lookup and
// admin-side creation with id renumbering and field defaulting.
package catalog

import (
	"go.uber.org/zap"

	"github.com/SubhashKumar14/LearnPath/internal/models"
	"github.com/SubhashKumar14/LearnPath/internal/store"
)

// ModuleInput and TaskInput are the client-facing shapes for create.
// Any ids the client sends are ignored; the catalog assigns its own.
type TaskInput struct {
	Title string `json:"title" binding:"required"`
	Type  string `json:"type"`
	Link  string `json:"link"`
}

type ModuleInput struct {
	Title string      `json:"title" binding:"required"`
	Tasks []TaskInput `json:"tasks"`
}

type Service struct {
	roadmaps store.RoadmapRepository
	log      *zap.Logger
}

func NewService(roadmaps store.RoadmapRepository, log *zap.Logger) *Service {
	return &Service{roadmaps: roadmaps, log: log}
}

func (s *Service) List() ([]models.Roadmap, error) {
	return s.roadmaps.List()
}

func (s *Service) GetByID(id uint) (*models.Roadmap, error) {
	return s.roadmaps.GetByID(id)
}

// Create stores a new roadmap authored by userID. Modules and tasks get
// sequential 1-based ids scoped to the roadmap (task numbering continues
// across modules). Missing task type defaults to Problem, missing link
// to "#".
func (s *Service) Create(userID uint, title, difficulty, duration string, modules []ModuleInput) (*models.Roadmap, error) {
	normalized := make([]models.Module, 0, len(modules))
	taskID := uint(0)
	for i, m := range modules {
		mod := models.Module{
			ID:    uint(i + 1),
			Title: m.Title,
			Tasks: make([]models.Task, 0, len(m.Tasks)),
		}
		for _, t := range m.Tasks {
			taskID++
			task := models.Task{
				ID:    taskID,
				Title: t.Title,
				Type:  models.TaskType(t.Type),
				Link:  t.Link,
			}
			if task.Type == "" {
				task.Type = models.TaskProblem
			}
			if task.Link == "" {
				task.Link = "#"
			}
			mod.Tasks = append(mod.Tasks, task)
		}
		normalized = append(normalized, mod)
	}

	roadmap := &models.Roadmap{
		Title:      title,
		Difficulty: difficulty,
		Duration:   duration,
		Modules:    normalized,
		CreatedBy:  userID,
	}
	if err := s.roadmaps.Create(roadmap); err != nil {
		return nil, err
	}

	s.log.Info("roadmap created",
		zap.Uint("roadmap_id", roadmap.ID),
		zap.Uint("created_by", userID),
		zap.Int("modules", len(normalized)),
	)
	return roadmap, nil
}
