package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"smarttasks/dto"
	"smarttasks/model"
)

// nameContains is a case-sensitive substring predicate for the dialect.
func nameContains(db *gorm.DB) string {
	if db.Dialector.Name() == "mysql" {
		return "INSTR(BINARY name, ?) > 0"
	}
	return "instr(name, ?) > 0"
}

// ListChecklistsForUser returns one page of userID's checklists ordered by
// name. A non-blank searchQuery keeps only names containing it.
func (s *Store) ListChecklistsForUser(ctx context.Context, userID, searchQuery string, pageNumber, pageSize int) ([]model.Checklist, PaginationMetadata, error) {
	pageSize = ClampPageSize(pageSize)
	if err := CheckPage(pageNumber, pageSize); err != nil {
		return nil, PaginationMetadata{}, err
	}

	search := strings.TrimSpace(searchQuery)
	query := func() *gorm.DB {
		q := s.db.WithContext(ctx).Model(&model.Checklist{}).Where("user_id = ?", userID)
		if search != "" {
			q = q.Where(nameContains(s.db), search)
		}
		return q
	}

	var total int64
	if err := query().Count(&total).Error; err != nil {
		return nil, PaginationMetadata{}, fmt.Errorf("counting checklists: %w", err)
	}
	meta := NewPaginationMetadata(int(total), pageSize, pageNumber)

	checklists := []model.Checklist{}
	// Past the last page; also keeps pageOffset from overflowing.
	if pageNumber > meta.TotalPageCount {
		return checklists, meta, nil
	}
	err := query().
		Order("name ASC").Order("id ASC").
		Offset(pageOffset(pageNumber, pageSize)).
		Limit(pageSize).
		Find(&checklists).Error
	if err != nil {
		return nil, PaginationMetadata{}, fmt.Errorf("listing checklists: %w", err)
	}
	return checklists, meta, nil
}

// GetChecklist loads one checklist, with its items ordered by name when
// includeTasks is set.
func (s *Store) GetChecklist(ctx context.Context, checklistID int, includeTasks bool) (*model.Checklist, error) {
	q := s.db.WithContext(ctx)
	if includeTasks {
		q = q.Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("name ASC").Order("id ASC")
		})
	}
	var checklist model.Checklist
	if err := q.First(&checklist, checklistID).Error; err != nil {
		return nil, notFound(err)
	}
	return &checklist, nil
}

func (s *Store) CreateChecklist(ctx context.Context, userID string, body dto.ChecklistForCreation) (*model.Checklist, error) {
	if err := Validate(body); err != nil {
		return nil, err
	}
	checklist := dto.ChecklistFromCreation(body)
	checklist.UserID = userID
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(&checklist).Error; err != nil {
		return nil, fmt.Errorf("creating checklist: %w", err)
	}

	s.mirrorAfterCommit(ctx, "checklist", checklist.ID, func(ctx context.Context) error {
		return s.mirror.SyncChecklist(ctx, checklist)
	})
	return &checklist, nil
}

// DeleteChecklist removes the checklist and every item in it. The caller
// must have passed RequireOwnedChecklist; a missing checklist here is
// ErrChecklistVanished.
func (s *Store) DeleteChecklist(ctx context.Context, checklistID int) error {
	var taskIDs []int
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var checklist model.Checklist
		if err := tx.Select("id").First(&checklist, checklistID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrChecklistVanished
			}
			return err
		}

		if err := tx.Model(&model.TaskItem{}).Where("checklist_id = ?", checklistID).Pluck("id", &taskIDs).Error; err != nil {
			return err
		}
		if err := tx.Where("checklist_id = ?", checklistID).Delete(&model.TaskItem{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&model.Checklist{}, checklistID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrChecklistVanished
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("deleting checklist %d: %w", checklistID, err)
	}

	s.mirrorAfterCommit(ctx, "checklist", checklistID, func(ctx context.Context) error {
		return s.mirror.RemoveChecklist(ctx, checklistID, taskIDs)
	})
	return nil
}

// UpdateChecklist replaces every updatable field with the body.
func (s *Store) UpdateChecklist(ctx context.Context, checklistID int, body dto.ChecklistForUpdate) error {
	return s.commitChecklist(ctx, checklistID, func(dto.ChecklistForUpdate) (dto.ChecklistForUpdate, error) {
		return body, nil
	})
}

// PatchChecklist applies ops to a draft of the stored checklist and commits
// the draft only when every op applies and the result validates.
func (s *Store) PatchChecklist(ctx context.Context, checklistID int, ops []dto.PatchOperation) error {
	return s.commitChecklist(ctx, checklistID, func(draft dto.ChecklistForUpdate) (dto.ChecklistForUpdate, error) {
		err := ApplyPatch(&draft, ops)
		return draft, err
	})
}

// commitChecklist loads the checklist, hands its draft to build, validates
// the result and writes it back, all in one transaction.
func (s *Store) commitChecklist(ctx context.Context, checklistID int, build func(dto.ChecklistForUpdate) (dto.ChecklistForUpdate, error)) error {
	var saved model.Checklist
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var checklist model.Checklist
		if err := tx.First(&checklist, checklistID).Error; err != nil {
			return notFound(err)
		}

		draft, err := build(dto.ChecklistToUpdate(checklist))
		if err != nil {
			return err
		}
		if err := Validate(draft); err != nil {
			return err
		}

		dto.ApplyChecklistUpdate(draft, &checklist)
		if err := tx.Model(&model.Checklist{}).Where("id = ?", checklistID).Updates(map[string]any{
			"name":  checklist.Name,
			"color": checklist.Color,
		}).Error; err != nil {
			return fmt.Errorf("saving checklist %d: %w", checklistID, err)
		}
		saved = checklist
		return nil
	})
	if err != nil {
		return err
	}

	s.mirrorAfterCommit(ctx, "checklist", checklistID, func(ctx context.Context) error {
		return s.mirror.SyncChecklist(ctx, saved)
	})
	return nil
}
