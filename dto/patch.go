package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"
)

// Patch operation names.
const (
	OpAdd     = "add"
	OpRemove  = "remove"
	OpReplace = "replace"
)

// PatchOperation is one entry of a JSON Patch document.
type PatchOperation struct {
	Op    string          `json:"op"`
	Path  string          `json:"path"`
	Value json.RawMessage `json:"value,omitempty"`
	From  string          `json:"from,omitempty"`
}

// PatchField knows how to assign and reset one draft field.
type PatchField struct {
	Set   func(raw json.RawMessage) error
	Reset func()
}

// Patchable drafts expose their fields keyed by lower-cased JSON name.
type Patchable interface {
	PatchFields() map[string]PatchField
}

var errNullValue = errors.New("null is not allowed for this field")

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// StringField accepts JSON strings; null clears the field.
func StringField(dst *string, def string) PatchField {
	return PatchField{
		Set: func(raw json.RawMessage) error {
			if isNull(raw) {
				*dst = ""
				return nil
			}
			var v string
			if err := json.Unmarshal(raw, &v); err != nil {
				return err
			}
			*dst = v
			return nil
		},
		Reset: func() { *dst = def },
	}
}

func IntField(dst *int) PatchField {
	return PatchField{
		Set: func(raw json.RawMessage) error {
			if isNull(raw) {
				return errNullValue
			}
			var v int
			if err := json.Unmarshal(raw, &v); err != nil {
				return err
			}
			*dst = v
			return nil
		},
		Reset: func() { *dst = 0 },
	}
}

func BoolField(dst *bool) PatchField {
	return PatchField{
		Set: func(raw json.RawMessage) error {
			if isNull(raw) {
				return errNullValue
			}
			var v bool
			if err := json.Unmarshal(raw, &v); err != nil {
				return err
			}
			*dst = v
			return nil
		},
		Reset: func() { *dst = false },
	}
}

// TimeField accepts RFC 3339 strings.
func TimeField(dst *time.Time) PatchField {
	return PatchField{
		Set: func(raw json.RawMessage) error {
			if isNull(raw) {
				return errNullValue
			}
			var v time.Time
			if err := json.Unmarshal(raw, &v); err != nil {
				return err
			}
			*dst = v
			return nil
		},
		Reset: func() { *dst = time.Time{} },
	}
}
