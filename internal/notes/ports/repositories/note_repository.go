// Package repositories определяет порты хранилища сервиса заметок.
package repositories

import (
	"context"

	"notepad/internal/notes/domain/entities"
)

// NoteRepository - хранилище заметок. Каждый метод выполняет одну SQL-команду.
//
// Отсутствие строки сообщается через entities.ErrNoteNotFound,
// сбои хранилища - через *entities.StorageError.
type NoteRepository interface {
	Create(ctx context.Context, input entities.CreateNoteInput) (*entities.Note, error)
	GetByID(ctx context.Context, noteID string) (*entities.Note, error)
	List(ctx context.Context) ([]*entities.Note, error)
	Update(ctx context.Context, noteID string, input entities.UpdateNoteInput) (*entities.Note, error)
	Delete(ctx context.Context, noteID string) error
}
