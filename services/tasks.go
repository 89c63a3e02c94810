package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"smarttasks/dto"
	"smarttasks/model"
)

// ListTasks returns the items of a checklist ordered by name.
func (s *Store) ListTasks(ctx context.Context, checklistID int) ([]model.TaskItem, error) {
	tasks := []model.TaskItem{}
	err := s.db.WithContext(ctx).
		Where("checklist_id = ?", checklistID).
		Order("name ASC").Order("id ASC").
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("listing tasks of checklist %d: %w", checklistID, err)
	}
	return tasks, nil
}

// GetTask finds a task only through its parent checklist.
func (s *Store) GetTask(ctx context.Context, checklistID, taskID int) (*model.TaskItem, error) {
	return getTask(s.db.WithContext(ctx), checklistID, taskID)
}

func getTask(db *gorm.DB, checklistID, taskID int) (*model.TaskItem, error) {
	var task model.TaskItem
	if err := db.Where("id = ? AND checklist_id = ?", taskID, checklistID).First(&task).Error; err != nil {
		return nil, notFound(err)
	}
	return &task, nil
}

func (s *Store) CreateTask(ctx context.Context, checklistID int, body dto.TaskItemForCreation) (*model.TaskItem, error) {
	if err := Validate(body); err != nil {
		return nil, err
	}
	task := dto.TaskItemFromCreation(body)
	task.ChecklistID = checklistID
	if err := s.db.WithContext(ctx).Create(&task).Error; err != nil {
		return nil, fmt.Errorf("creating task in checklist %d: %w", checklistID, err)
	}

	s.mirrorAfterCommit(ctx, "task", task.ID, func(ctx context.Context) error {
		return s.mirror.SyncTask(ctx, task)
	})
	return &task, nil
}

func (s *Store) DeleteTask(ctx context.Context, checklistID, taskID int) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		task, err := getTask(tx, checklistID, taskID)
		if err != nil {
			return err
		}
		return tx.Delete(task).Error
	})
	if err != nil {
		return err
	}

	s.mirrorAfterCommit(ctx, "task", taskID, func(ctx context.Context) error {
		return s.mirror.RemoveTask(ctx, taskID)
	})
	return nil
}

// UpdateTask replaces every updatable field with the body; omitted fields
// arrive as zero values and are stored as such.
func (s *Store) UpdateTask(ctx context.Context, checklistID, taskID int, body dto.TaskItemForUpdate) error {
	return s.commitTask(ctx, checklistID, taskID, func(dto.TaskItemForUpdate) (dto.TaskItemForUpdate, error) {
		return body, nil
	})
}

func (s *Store) PatchTask(ctx context.Context, checklistID, taskID int, ops []dto.PatchOperation) error {
	return s.commitTask(ctx, checklistID, taskID, func(draft dto.TaskItemForUpdate) (dto.TaskItemForUpdate, error) {
		err := ApplyPatch(&draft, ops)
		return draft, err
	})
}

func (s *Store) commitTask(ctx context.Context, checklistID, taskID int, build func(dto.TaskItemForUpdate) (dto.TaskItemForUpdate, error)) error {
	var saved model.TaskItem
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		task, err := getTask(tx, checklistID, taskID)
		if err != nil {
			return err
		}

		draft, err := build(dto.TaskItemToUpdate(*task))
		if err != nil {
			return err
		}
		if err := Validate(draft); err != nil {
			return err
		}

		dto.ApplyTaskItemUpdate(draft, task)
		if err := tx.Model(&model.TaskItem{}).Where("id = ?", taskID).Updates(map[string]any{
			"name":         task.Name,
			"description":  task.Description,
			"due_date":     task.DueDate,
			"priority":     task.Priority,
			"is_completed": task.IsCompleted,
		}).Error; err != nil {
			return fmt.Errorf("saving task %d: %w", taskID, err)
		}
		saved = *task
		return nil
	})
	if err != nil {
		return err
	}

	s.mirrorAfterCommit(ctx, "task", taskID, func(ctx context.Context) error {
		return s.mirror.SyncTask(ctx, saved)
	})
	return nil
}
