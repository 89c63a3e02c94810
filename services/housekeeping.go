package services

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"smarttasks/model"
)

// StoreStats is a point-in-time summary of the store.
type StoreStats struct {
	Users        int64
	Checklists   int64
	Tasks        int64
	OpenTasks    int64
	OverdueTasks int64
}

// Stats counts rows; a task is overdue when it is open and its due date is
// set and before now.
func (s *Store) Stats(ctx context.Context, now time.Time) (StoreStats, error) {
	var stats StoreStats
	db := s.db.WithContext(ctx)
	counts := []struct {
		dst   *int64
		query *gorm.DB
	}{
		{&stats.Users, db.Model(&model.User{})},
		{&stats.Checklists, db.Model(&model.Checklist{})},
		{&stats.Tasks, db.Model(&model.TaskItem{})},
		{&stats.OpenTasks, db.Model(&model.TaskItem{}).Where("is_completed = ?", false)},
		{&stats.OverdueTasks, db.Model(&model.TaskItem{}).
			Where("is_completed = ? AND due_date > ? AND due_date < ?", false, time.Time{}, now)},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dst).Error; err != nil {
			return StoreStats{}, fmt.Errorf("counting store rows: %w", err)
		}
	}
	return stats, nil
}

const resyncBatchSize = 100

// ResyncMirror pushes every checklist and task to the mirror and returns the
// number of checklists written.
func (s *Store) ResyncMirror(ctx context.Context) (int, error) {
	synced := 0
	var checklists []model.Checklist
	result := s.db.WithContext(ctx).
		Preload("Items").
		FindInBatches(&checklists, resyncBatchSize, func(tx *gorm.DB, batch int) error {
			for _, checklist := range checklists {
				if err := s.mirror.SyncChecklist(ctx, checklist); err != nil {
					return fmt.Errorf("syncing checklist %d: %w", checklist.ID, err)
				}
				for _, task := range checklist.Items {
					if err := s.mirror.SyncTask(ctx, task); err != nil {
						return fmt.Errorf("syncing task %d: %w", task.ID, err)
					}
				}
				synced++
			}
			return nil
		})
	return synced, result.Error
}
