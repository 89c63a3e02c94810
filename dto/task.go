package dto

import (
	"time"
)

type TaskItemDto struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"dueDate"`
	Priority    int       `json:"priority"`
	IsCompleted bool      `json:"isCompleted"`
}

type TaskItemForCreation struct {
	Name        string    `json:"name" validate:"required,notblank,max=200"`
	Description string    `json:"description" validate:"max=5000"`
	DueDate     time.Time `json:"dueDate"`
	Priority    int       `json:"priority" validate:"min=0,max=3"`
	IsCompleted bool      `json:"isCompleted"`
}

type TaskItemForUpdate struct {
	Name        string    `json:"name" validate:"required,notblank,max=200"`
	Description string    `json:"description" validate:"max=5000"`
	DueDate     time.Time `json:"dueDate"`
	Priority    int       `json:"priority" validate:"min=0,max=3"`
	IsCompleted bool      `json:"isCompleted"`
}

func (d *TaskItemForUpdate) PatchFields() map[string]PatchField {
	return map[string]PatchField{
		"name":        StringField(&d.Name, ""),
		"description": StringField(&d.Description, ""),
		"duedate":     TimeField(&d.DueDate),
		"priority":    IntField(&d.Priority),
		"iscompleted": BoolField(&d.IsCompleted),
	}
}
