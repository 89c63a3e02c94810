package scheduler_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smarttasks/dto"
	"smarttasks/scheduler"
	"smarttasks/testutil"
)

func TestRunHousekeeping_LogsStats(t *testing.T) {
	store := testutil.NewStore(t, nil)
	alice := testutil.CreateUser(t, store.DB(), "alice")
	checklist, err := store.CreateChecklist(context.Background(), alice, dto.ChecklistForCreation{Name: "c", Color: "#fff"})
	require.NoError(t, err)
	_, err = store.CreateTask(context.Background(), checklist.ID, dto.TaskItemForCreation{Name: "t"})
	require.NoError(t, err)

	var buf bytes.Buffer
	scheduler.RunHousekeeping(context.Background(), store, true, zerolog.New(&buf))

	out := buf.String()
	assert.Contains(t, out, `"message":"store statistics"`)
	assert.Contains(t, out, `"checklists":1`)
	assert.Contains(t, out, `"tasks":1`)
	assert.Contains(t, out, `"message":"mirror resync finished"`)
	assert.Contains(t, out, `"synced":1`)
}

func TestStart(t *testing.T) {
	store := testutil.NewStore(t, nil)

	c, err := scheduler.Start("@every 1h", store, false, zerolog.Nop())
	require.NoError(t, err)
	assert.Len(t, c.Entries(), 1)
	c.Stop()

	_, err = scheduler.Start("not a spec", store, false, zerolog.Nop())
	assert.Error(t, err)
}
