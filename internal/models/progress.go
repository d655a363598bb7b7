package models

import "time"

// ProgressEntry marks a single task as completed by a user. Absence of a
// row means not completed, so unmarking deletes the row.
type ProgressEntry struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"uniqueIndex:idx_user_roadmap_task;not null"`
	RoadmapID uint `gorm:"uniqueIndex:idx_user_roadmap_task;not null"`
	TaskID    uint `gorm:"uniqueIndex:idx_user_roadmap_task;not null"`
	UpdatedAt time.Time
}
