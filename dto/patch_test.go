package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smarttasks/model"
)

func TestStringField(t *testing.T) {
	value := "start"
	field := StringField(&value, "fallback")

	require.NoError(t, field.Set(json.RawMessage(`"next"`)))
	assert.Equal(t, "next", value)

	require.NoError(t, field.Set(json.RawMessage(` null `)))
	assert.Empty(t, value)

	assert.Error(t, field.Set(json.RawMessage(`12`)))

	field.Reset()
	assert.Equal(t, "fallback", value)
}

func TestTypedFieldsRejectNull(t *testing.T) {
	var n int
	var b bool
	var ts time.Time
	for name, field := range map[string]PatchField{
		"int":  IntField(&n),
		"bool": BoolField(&b),
		"time": TimeField(&ts),
	} {
		assert.ErrorIs(t, field.Set(json.RawMessage(`null`)), errNullValue, name)
	}
}

func TestTimeField(t *testing.T) {
	var ts time.Time
	field := TimeField(&ts)
	require.NoError(t, field.Set(json.RawMessage(`"2030-03-04T05:06:07Z"`)))
	assert.True(t, ts.Equal(time.Date(2030, 3, 4, 5, 6, 7, 0, time.UTC)))
	assert.Error(t, field.Set(json.RawMessage(`"tomorrow"`)))
	field.Reset()
	assert.True(t, ts.IsZero())
}

func TestChecklistDraftRoundTrip(t *testing.T) {
	checklist := model.Checklist{ID: 7, Name: "Home", Color: "#123", UserID: "u"}
	draft := ChecklistToUpdate(checklist)
	draft.PatchFields()["color"].Reset()
	ApplyChecklistUpdate(draft, &checklist)

	assert.Equal(t, model.DefaultChecklistColor, checklist.Color)
	assert.Equal(t, "Home", checklist.Name)
	assert.Equal(t, "u", checklist.UserID)
}

func TestToChecklistWithTasksDto_EmptyItems(t *testing.T) {
	out := ToChecklistWithTasksDto(model.Checklist{ID: 1, Name: "n", Color: "#fff"})
	data, err := json.Marshal(out)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"name":"n","color":"#fff","items":[]}`, string(data))
}
