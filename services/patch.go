package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"smarttasks/dto"
)

const patchSchemaURL = "https://smarttasks.local/schemas/json-patch.json"

const patchSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "array",
	"items": {
		"type": "object",
		"required": ["op", "path"],
		"properties": {
			"op": {"enum": ["add", "remove", "replace", "move", "copy", "test"]},
			"path": {"type": "string"},
			"from": {"type": "string"},
			"value": true
		}
	}
}`

var patchDocumentSchema = jsonschema.MustCompileString(patchSchemaURL, patchSchema)

var (
	errUnsupportedOp = errors.New("unsupported operation")
	errUnknownPath   = errors.New("unknown path")
	errMissingValue  = errors.New("value is required")
)

// ParsePatchDocument checks the shape of a JSON Patch body and decodes it.
func ParsePatchDocument(body []byte) ([]dto.PatchOperation, error) {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, &PatchError{Index: -1, Err: err}
	}
	if err := patchDocumentSchema.Validate(doc); err != nil {
		return nil, &PatchError{Index: -1, Err: schemaErrorMessage(err)}
	}
	var ops []dto.PatchOperation
	if err := json.Unmarshal(body, &ops); err != nil {
		return nil, &PatchError{Index: -1, Err: err}
	}
	return ops, nil
}

func schemaErrorMessage(err error) error {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return err
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	if ve.InstanceLocation == "" {
		return errors.New(ve.Message)
	}
	return fmt.Errorf("%s: %s", ve.InstanceLocation, ve.Message)
}

// ApplyPatch runs ops in order against draft. It stops at the first failing
// operation; draft is then in an undefined state and must be discarded.
func ApplyPatch(draft dto.Patchable, ops []dto.PatchOperation) error {
	fields := draft.PatchFields()
	for i, op := range ops {
		field, err := resolvePath(fields, op.Path)
		if err != nil {
			return &PatchError{Index: i, Op: op.Op, Path: op.Path, Err: err}
		}
		switch op.Op {
		case dto.OpAdd, dto.OpReplace:
			if len(op.Value) == 0 {
				return &PatchError{Index: i, Op: op.Op, Path: op.Path, Err: errMissingValue}
			}
			if err := field.Set(op.Value); err != nil {
				return &PatchError{Index: i, Op: op.Op, Path: op.Path, Err: err}
			}
		case dto.OpRemove:
			field.Reset()
		default:
			return &PatchError{Index: i, Op: op.Op, Path: op.Path, Err: errUnsupportedOp}
		}
	}
	return nil
}

// resolvePath accepts a JSON pointer naming one top-level field. Field
// names match case-insensitively.
func resolvePath(fields map[string]dto.PatchField, path string) (dto.PatchField, error) {
	if !strings.HasPrefix(path, "/") {
		return dto.PatchField{}, errUnknownPath
	}
	name := path[1:]
	if strings.Contains(name, "/") {
		return dto.PatchField{}, errUnknownPath
	}
	name = strings.NewReplacer("~1", "/", "~0", "~").Replace(name)
	field, ok := fields[strings.ToLower(name)]
	if !ok {
		return dto.PatchField{}, errUnknownPath
	}
	return field, nil
}
