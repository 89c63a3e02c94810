package model

import (
	"time"
)

const (
	MaxTaskItemNameLength = 200
	MaxTaskItemDescLength = 5000
	MinTaskItemPriority   = 0
	MaxTaskItemPriority   = 3
)

type TaskItem struct {
	ID          int       `gorm:"column:id;primaryKey;autoIncrement"`
	Name        string    `gorm:"column:name;type:varchar(200);not null"`
	Description string    `gorm:"column:description;type:text;not null"`
	DueDate     time.Time `gorm:"column:due_date;not null"`
	Priority    int       `gorm:"column:priority;not null;default:0"`
	IsCompleted bool      `gorm:"column:is_completed;not null;default:false"`
	ChecklistID int       `gorm:"column:checklist_id;not null;index"`
}

func (TaskItem) TableName() string {
	return "task_items"
}
