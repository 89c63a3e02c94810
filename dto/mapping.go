package dto

import (
	"smarttasks/model"
)

func ToChecklistDto(c model.Checklist) ChecklistDto {
	return ChecklistDto{ID: c.ID, Name: c.Name, Color: c.Color}
}

func ToChecklistDtos(checklists []model.Checklist) []ChecklistDto {
	out := make([]ChecklistDto, 0, len(checklists))
	for _, c := range checklists {
		out = append(out, ToChecklistDto(c))
	}
	return out
}

func ToChecklistWithTasksDto(c model.Checklist) ChecklistWithTasksDto {
	return ChecklistWithTasksDto{
		ID:    c.ID,
		Name:  c.Name,
		Color: c.Color,
		Items: ToTaskItemDtos(c.Items),
	}
}

// ChecklistFromCreation builds an unsaved entity; the owner is set by the store.
func ChecklistFromCreation(d ChecklistForCreation) model.Checklist {
	return model.Checklist{Name: d.Name, Color: d.Color}
}

// ChecklistToUpdate materializes the draft a patch is applied to.
func ChecklistToUpdate(c model.Checklist) ChecklistForUpdate {
	return ChecklistForUpdate{Name: c.Name, Color: c.Color}
}

// ApplyChecklistUpdate copies every draft field onto the entity.
func ApplyChecklistUpdate(d ChecklistForUpdate, c *model.Checklist) {
	c.Name = d.Name
	c.Color = d.Color
}

func ToTaskItemDto(t model.TaskItem) TaskItemDto {
	return TaskItemDto{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		DueDate:     t.DueDate,
		Priority:    t.Priority,
		IsCompleted: t.IsCompleted,
	}
}

func ToTaskItemDtos(tasks []model.TaskItem) []TaskItemDto {
	out := make([]TaskItemDto, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, ToTaskItemDto(t))
	}
	return out
}

func TaskItemFromCreation(d TaskItemForCreation) model.TaskItem {
	return model.TaskItem{
		Name:        d.Name,
		Description: d.Description,
		DueDate:     d.DueDate,
		Priority:    d.Priority,
		IsCompleted: d.IsCompleted,
	}
}

func TaskItemToUpdate(t model.TaskItem) TaskItemForUpdate {
	return TaskItemForUpdate{
		Name:        t.Name,
		Description: t.Description,
		DueDate:     t.DueDate,
		Priority:    t.Priority,
		IsCompleted: t.IsCompleted,
	}
}

func ApplyTaskItemUpdate(d TaskItemForUpdate, t *model.TaskItem) {
	t.Name = d.Name
	t.Description = d.Description
	t.DueDate = d.DueDate
	t.Priority = d.Priority
	t.IsCompleted = d.IsCompleted
}
