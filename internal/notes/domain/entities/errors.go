package entities

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ErrNoteNotFound возвращается, когда заметки с указанным id нет.
var ErrNoteNotFound = errors.New("not found")

// ValidationError описывает отклоненные поля входных данных.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError создает ValidationError по карте field -> message.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	keys := slices.Sorted(maps.Keys(e.Fields))
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Операции, которые записываются в StorageError.Op.
const (
	OpCreate = "create note"
	OpGet    = "get note"
	OpList   = "list notes"
	OpScan   = "scan note"
	OpUpdate = "update note"
	OpDelete = "delete note"
)

// StorageError - сбой хранилища при выполнении операции Op над заметкой NoteID.
type StorageError struct {
	Op     string
	NoteID string
	Err    error
}

func (e *StorageError) Error() string {
	if e.NoteID == "" {
		return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("failed to %s (note_id=%s): %v", e.Op, e.NoteID, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
