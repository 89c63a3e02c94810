package services_test

import (
	"context"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"smarttasks/model"
	"smarttasks/services"
	"smarttasks/testutil"
)

// recordingMirror remembers what the store replayed on it.
type recordingMirror struct {
	mu                sync.Mutex
	checklists        map[int]model.Checklist
	tasks             map[int]model.TaskItem
	removedChecklists []int
	removedTasks      []int
	fail              error
}

func newRecordingMirror() *recordingMirror {
	return &recordingMirror{
		checklists: map[int]model.Checklist{},
		tasks:      map[int]model.TaskItem{},
	}
}

func (m *recordingMirror) SyncChecklist(_ context.Context, checklist model.Checklist) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	m.checklists[checklist.ID] = checklist
	return nil
}

func (m *recordingMirror) RemoveChecklist(_ context.Context, checklistID int, taskIDs []int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	delete(m.checklists, checklistID)
	for _, id := range taskIDs {
		delete(m.tasks, id)
	}
	m.removedChecklists = append(m.removedChecklists, checklistID)
	m.removedTasks = append(m.removedTasks, taskIDs...)
	return nil
}

func (m *recordingMirror) SyncTask(_ context.Context, task model.TaskItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	m.tasks[task.ID] = task
	return nil
}

func (m *recordingMirror) RemoveTask(_ context.Context, taskID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return m.fail
	}
	delete(m.tasks, taskID)
	m.removedTasks = append(m.removedTasks, taskID)
	return nil
}

type fixture struct {
	db     *gorm.DB
	store  *services.Store
	mirror *recordingMirror
	alice  string
	bob    string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewDB(t)
	mirror := newRecordingMirror()
	return &fixture{
		db:     db,
		store:  services.NewStore(db, mirror, zerolog.Nop()),
		mirror: mirror,
		alice:  testutil.CreateUser(t, db, "alice"),
		bob:    testutil.CreateUser(t, db, "bob"),
	}
}

func countRows(t *testing.T, db *gorm.DB, value any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(value).Count(&n).Error)
	return n
}
