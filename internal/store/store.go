// Package store holds the repositories behind the credential store, the
// roadmap catalog and the progress ledger. Two implementations exist: a
// GORM-backed one for Postgres and an in-memory one used as a fallback
// when the database is unreachable.
package store

import (
	"errors"

	"github.com/SubhashKumar14/LearnPath/internal/models"
)

var (
	ErrDuplicateEmail = errors.New("user already exists")
	ErrNotFound       = errors.New("not found")
)

type UserRepository interface {
	// Create persists a new user. Fails with ErrDuplicateEmail if a user
	// with the same email already exists (exact, case-sensitive match).
	Create(u *models.User) error
	FindByEmail(email string) (*models.User, error)
	FindByID(id uint) (*models.User, error)
	// CountByRole reports how many users hold the given role; startup
	// uses it to decide whether an admin still needs seeding.
	CountByRole(role models.UserRole) (int64, error)
}

type RoadmapRepository interface {
	Create(r *models.Roadmap) error
	// List returns all roadmaps ordered by id.
	List() ([]models.Roadmap, error)
	GetByID(id uint) (*models.Roadmap, error)
}

type ProgressRepository interface {
	// SetCompletion is idempotent in both directions: marking an already
	// completed task completed, or an absent one incomplete, is a no-op.
	SetCompletion(userID, roadmapID, taskID uint, completed bool) error
	// GetCompleted returns the completed task ids for one user and roadmap,
	// ordered ascending. Never nil.
	GetCompleted(userID, roadmapID uint) ([]uint, error)
}

type Store struct {
	Users    UserRepository
	Roadmaps RoadmapRepository
	Progress ProgressRepository
}
