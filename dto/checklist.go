package dto

import (
	"smarttasks/model"
)

type ChecklistDto struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type ChecklistWithTasksDto struct {
	ID    int           `json:"id"`
	Name  string        `json:"name"`
	Color string        `json:"color"`
	Items []TaskItemDto `json:"items"`
}

type ChecklistForCreation struct {
	Name  string `json:"name" validate:"required,notblank,max=50"`
	Color string `json:"color" validate:"checklistcolor"`
}

// ChecklistForUpdate is both the PUT body and the draft a patch document is
// applied to.
type ChecklistForUpdate struct {
	Name  string `json:"name" validate:"required,notblank,max=50"`
	Color string `json:"color" validate:"checklistcolor"`
}

// NewChecklistForCreation returns a body with defaults for omitted fields.
func NewChecklistForCreation() ChecklistForCreation {
	return ChecklistForCreation{Color: model.DefaultChecklistColor}
}

func NewChecklistForUpdate() ChecklistForUpdate {
	return ChecklistForUpdate{Color: model.DefaultChecklistColor}
}

func (d *ChecklistForUpdate) PatchFields() map[string]PatchField {
	return map[string]PatchField{
		"name":  StringField(&d.Name, ""),
		"color": StringField(&d.Color, model.DefaultChecklistColor),
	}
}
