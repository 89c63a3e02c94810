package services

import (
	"context"
	"strconv"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"smarttasks/model"
)

// Mirror receives every committed checklist and task change.
type Mirror interface {
	SyncChecklist(ctx context.Context, checklist model.Checklist) error
	RemoveChecklist(ctx context.Context, checklistID int, taskIDs []int) error
	SyncTask(ctx context.Context, task model.TaskItem) error
	RemoveTask(ctx context.Context, taskID int) error
}

type NopMirror struct{}

func (NopMirror) SyncChecklist(context.Context, model.Checklist) error { return nil }
func (NopMirror) RemoveChecklist(context.Context, int, []int) error    { return nil }
func (NopMirror) SyncTask(context.Context, model.TaskItem) error       { return nil }
func (NopMirror) RemoveTask(context.Context, int) error                { return nil }

const (
	checklistCollection = "Checklists"
	taskCollection      = "Tasks"
)

// FirestoreMirror keeps one document per checklist and per task.
type FirestoreMirror struct {
	client *firestore.Client
}

func NewFirestoreMirror(client *firestore.Client) *FirestoreMirror {
	return &FirestoreMirror{client: client}
}

func (m *FirestoreMirror) SyncChecklist(ctx context.Context, checklist model.Checklist) error {
	_, err := m.client.Collection(checklistCollection).Doc(strconv.Itoa(checklist.ID)).Set(ctx, map[string]interface{}{
		"ChecklistID": checklist.ID,
		"Name":        checklist.Name,
		"Color":       checklist.Color,
		"UserID":      checklist.UserID,
		"UpdatedAt":   firestore.ServerTimestamp,
	}, firestore.MergeAll)
	return err
}

func (m *FirestoreMirror) RemoveChecklist(ctx context.Context, checklistID int, taskIDs []int) error {
	for _, taskID := range taskIDs {
		if err := m.RemoveTask(ctx, taskID); err != nil {
			return err
		}
	}
	if err := m.sweepTasks(ctx, checklistID); err != nil {
		return err
	}
	return ignoreNotFound(m.client.Collection(checklistCollection).Doc(strconv.Itoa(checklistID)).Delete(ctx))
}

// sweepTasks deletes task documents still pointing at checklistID, such as
// ones written after the checklist's task ids were read.
func (m *FirestoreMirror) sweepTasks(ctx context.Context, checklistID int) error {
	iter := m.client.Collection(taskCollection).Where("ChecklistID", "==", checklistID).Documents(ctx)
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			return nil
		}
		if err != nil {
			return err
		}
		if err := ignoreNotFound(doc.Ref.Delete(ctx)); err != nil {
			return err
		}
	}
}

func (m *FirestoreMirror) SyncTask(ctx context.Context, task model.TaskItem) error {
	_, err := m.client.Collection(taskCollection).Doc(strconv.Itoa(task.ID)).Set(ctx, map[string]interface{}{
		"TaskID":      task.ID,
		"ChecklistID": task.ChecklistID,
		"Name":        task.Name,
		"Description": task.Description,
		"DueDate":     task.DueDate,
		"Priority":    task.Priority,
		"IsCompleted": task.IsCompleted,
		"UpdatedAt":   firestore.ServerTimestamp,
	})
	return err
}

func (m *FirestoreMirror) RemoveTask(ctx context.Context, taskID int) error {
	return ignoreNotFound(m.client.Collection(taskCollection).Doc(strconv.Itoa(taskID)).Delete(ctx))
}

func ignoreNotFound(_ *firestore.WriteResult, err error) error {
	if err != nil && status.Code(err) != codes.NotFound {
		return err
	}
	return nil
}
