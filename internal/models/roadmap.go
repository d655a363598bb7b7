package models

import "time"

type TaskType string

const (
	TaskTheory  TaskType = "Theory"
	TaskProblem TaskType = "Problem"
)

// Task and Module IDs are sequential and scoped to their roadmap;
// they are assigned by the catalog on create, never by the client.
type Task struct {
	ID    uint     `json:"id"`
	Title string   `json:"title"`
	Type  TaskType `json:"type"`
	Link  string   `json:"link"`
}

type Module struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
	Tasks []Task `json:"tasks"`
}

type Roadmap struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Title      string    `gorm:"size:255;not null" json:"title"`
	Difficulty string    `gorm:"size:50" json:"difficulty"`
	Duration   string    `gorm:"size:50" json:"duration"`
	Modules    []Module  `gorm:"serializer:json;type:text" json:"modules"`
	CreatedBy  uint      `json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
}
