package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/SubhashKumar14/LearnPath/internal/models"
)

// NewGorm builds a Store backed by an already connected GORM database.
func NewGorm(db *gorm.DB) *Store {
	return &Store{
		Users:    &gormUsers{db: db},
		Roadmaps: &gormRoadmaps{db: db},
		Progress: &gormProgress{db: db},
	}
}

type gormUsers struct {
	db *gorm.DB
}

func (g *gormUsers) Create(u *models.User) error {
	var count int64
	if err := g.db.Model(&models.User{}).Where("email = ?", u.Email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateEmail
	}
	if err := g.db.Create(u).Error; err != nil {
		// the unique index can still fire under a concurrent register
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (g *gormUsers) FindByEmail(email string) (*models.User, error) {
	var u models.User
	if err := g.db.Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (g *gormUsers) CountByRole(role models.UserRole) (int64, error) {
	var count int64
	err := g.db.Model(&models.User{}).Where("role = ?", role).Count(&count).Error
	return count, err
}

func (g *gormUsers) FindByID(id uint) (*models.User, error) {
	var u models.User
	if err := g.db.First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

type gormRoadmaps struct {
	db *gorm.DB
}

func (g *gormRoadmaps) Create(r *models.Roadmap) error {
	return g.db.Create(r).Error
}

func (g *gormRoadmaps) List() ([]models.Roadmap, error) {
	roadmaps := []models.Roadmap{}
	if err := g.db.Order("id").Find(&roadmaps).Error; err != nil {
		return nil, err
	}
	return roadmaps, nil
}

func (g *gormRoadmaps) GetByID(id uint) (*models.Roadmap, error) {
	var r models.Roadmap
	if err := g.db.First(&r, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &r, nil
}

type gormProgress struct {
	db *gorm.DB
}

func (g *gormProgress) SetCompletion(userID, roadmapID, taskID uint, completed bool) error {
	filter := map[string]interface{}{
		"user_id":    userID,
		"roadmap_id": roadmapID,
		"task_id":    taskID,
	}
	if !completed {
		return g.db.Where(filter).Delete(&models.ProgressEntry{}).Error
	}

	var count int64
	if err := g.db.Model(&models.ProgressEntry{}).Where(filter).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	entry := models.ProgressEntry{UserID: userID, RoadmapID: roadmapID, TaskID: taskID}
	if err := g.db.Create(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return err
	}
	return nil
}

func (g *gormProgress) GetCompleted(userID, roadmapID uint) ([]uint, error) {
	taskIDs := []uint{}
	err := g.db.Model(&models.ProgressEntry{}).
		Where("user_id = ? AND roadmap_id = ?", userID, roadmapID).
		Order("task_id").
		Pluck("task_id", &taskIDs).Error
	if err != nil {
		return nil, err
	}
	return taskIDs, nil
}
