package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound covers both missing records and records owned by another
	// user; callers must not tell the two apart.
	ErrNotFound = errors.New("resource not found")

	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrInvalidPage = errors.New("page size and page number must be greater than 0")

	// ErrChecklistVanished means a checklist that passed the ownership
	// check was gone by the time it was deleted.
	ErrChecklistVanished = errors.New("checklist to delete was not found")
)

// Violation is one failed field constraint.
type Violation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// PatchError rejects a patch document as a whole.
type PatchError struct {
	Index int
	Op    string
	Path  string
	Err   error
}

func (e *PatchError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid patch document: %v", e.Err)
	}
	return fmt.Sprintf("patch operation %d (%s %s): %v", e.Index, e.Op, e.Path, e.Err)
}

func (e *PatchError) Unwrap() error {
	return e.Err
}

// AccountIssue mirrors one reason an account could not be created.
type AccountIssue struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type AccountError struct {
	Issues []AccountIssue
}

func (e *AccountError) Error() string {
	descs := make([]string, 0, len(e.Issues))
	for _, i := range e.Issues {
		descs = append(descs, i.Description)
	}
	return "account rejected: " + strings.Join(descs, "; ")
}
