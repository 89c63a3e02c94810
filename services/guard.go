package services

import (
	"context"
	"fmt"

	"smarttasks/model"
)

// ChecklistExistsAndByUser reports whether checklistID exists and belongs to
// userID.
func (s *Store) ChecklistExistsAndByUser(ctx context.Context, checklistID int, userID string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&model.Checklist{}).
		Where("id = ? AND user_id = ?", checklistID, userID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("checking checklist %d ownership: %w", checklistID, err)
	}
	return count > 0, nil
}

// RequireOwnedChecklist is the capability check every checklist or task
// operation passes first. A checklist owned by someone else yields
// ErrNotFound, same as a missing one.
func (s *Store) RequireOwnedChecklist(ctx context.Context, checklistID int, userID string) error {
	ok, err := s.ChecklistExistsAndByUser(ctx, checklistID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
