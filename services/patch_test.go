package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smarttasks/dto"
)

func TestParsePatchDocument(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		ops, err := ParsePatchDocument([]byte(`[{"op":"replace","path":"/name","value":"x"},{"op":"remove","path":"/color"}]`))
		require.NoError(t, err)
		require.Len(t, ops, 2)
		assert.Equal(t, dto.OpReplace, ops[0].Op)
		assert.JSONEq(t, `"x"`, string(ops[0].Value))
		assert.Equal(t, "/color", ops[1].Path)
	})

	bad := map[string]string{
		"NotJSON":     `[{"op":`,
		"NotArray":    `{"op":"replace","path":"/name"}`,
		"UnknownOp":   `[{"op":"rename","path":"/name"}]`,
		"MissingPath": `[{"op":"replace","value":"x"}]`,
		"PathNumber":  `[{"op":"replace","path":1}]`,
	}
	for name, body := range bad {
		t.Run(name, func(t *testing.T) {
			_, err := ParsePatchDocument([]byte(body))
			var patchErr *PatchError
			require.ErrorAs(t, err, &patchErr)
			assert.Equal(t, -1, patchErr.Index)
		})
	}
}

func TestApplyPatch_Checklist(t *testing.T) {
	draft := dto.ChecklistForUpdate{Name: "Groceries", Color: "#000000"}
	err := ApplyPatch(&draft, []dto.PatchOperation{
		{Op: dto.OpReplace, Path: "/Name", Value: []byte(`"Errands"`)},
		{Op: dto.OpRemove, Path: "/color"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Errands", draft.Name)
	assert.Equal(t, "#ffffff", draft.Color)
}

func TestApplyPatch_Task(t *testing.T) {
	due := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)
	draft := dto.TaskItemForUpdate{Name: "a", Priority: 2, IsCompleted: true, DueDate: due}
	err := ApplyPatch(&draft, []dto.PatchOperation{
		{Op: dto.OpAdd, Path: "/description", Value: []byte(`"details"`)},
		{Op: dto.OpReplace, Path: "/isCompleted", Value: []byte(`false`)},
		{Op: dto.OpRemove, Path: "/priority"},
		{Op: dto.OpReplace, Path: "/dueDate", Value: []byte(`"2031-06-07T08:09:10Z"`)},
	})
	require.NoError(t, err)
	assert.Equal(t, "details", draft.Description)
	assert.False(t, draft.IsCompleted)
	assert.Equal(t, 0, draft.Priority)
	assert.True(t, draft.DueDate.Equal(time.Date(2031, 6, 7, 8, 9, 10, 0, time.UTC)))
}

func TestApplyPatch_Failures(t *testing.T) {
	tests := []struct {
		name    string
		op      dto.PatchOperation
		wantErr error
	}{
		{"UnknownPath", dto.PatchOperation{Op: dto.OpReplace, Path: "/owner", Value: []byte(`"x"`)}, errUnknownPath},
		{"NestedPath", dto.PatchOperation{Op: dto.OpReplace, Path: "/name/first", Value: []byte(`"x"`)}, errUnknownPath},
		{"NoLeadingSlash", dto.PatchOperation{Op: dto.OpReplace, Path: "name", Value: []byte(`"x"`)}, errUnknownPath},
		{"MissingValue", dto.PatchOperation{Op: dto.OpReplace, Path: "/name"}, errMissingValue},
		{"Move", dto.PatchOperation{Op: "move", Path: "/name", From: "/description"}, errUnsupportedOp},
		{"Test", dto.PatchOperation{Op: "test", Path: "/name", Value: []byte(`"x"`)}, errUnsupportedOp},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := dto.TaskItemForUpdate{Name: "a"}
			err := ApplyPatch(&draft, []dto.PatchOperation{
				{Op: dto.OpReplace, Path: "/priority", Value: []byte(`1`)},
				tt.op,
			})
			var patchErr *PatchError
			require.ErrorAs(t, err, &patchErr)
			assert.Equal(t, 1, patchErr.Index)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}

	t.Run("TypeMismatch", func(t *testing.T) {
		draft := dto.TaskItemForUpdate{Name: "a"}
		err := ApplyPatch(&draft, []dto.PatchOperation{{Op: dto.OpReplace, Path: "/priority", Value: []byte(`"high"`)}})
		var patchErr *PatchError
		assert.ErrorAs(t, err, &patchErr)
	})

	t.Run("NullBool", func(t *testing.T) {
		draft := dto.TaskItemForUpdate{Name: "a"}
		err := ApplyPatch(&draft, []dto.PatchOperation{{Op: dto.OpReplace, Path: "/isCompleted", Value: []byte(`null`)}})
		assert.Error(t, err)
	})
}

func TestResolvePath_EscapedPointer(t *testing.T) {
	draft := dto.ChecklistForUpdate{}
	_, err := resolvePath(draft.PatchFields(), "/na~1me")
	assert.ErrorIs(t, err, errUnknownPath)
}
