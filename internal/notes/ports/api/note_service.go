// Package api определяет порт бизнес-логики, который используют транспортные адаптеры.
package api

import (
	"context"

	"notepad/internal/notes/domain/entities"
)

// NoteService описывает операции над заметками.
type NoteService interface {
	CreateNote(ctx context.Context, input entities.CreateNoteInput) (*entities.Note, error)
	GetNote(ctx context.Context, noteID string) (*entities.Note, error)
	ListNotes(ctx context.Context) ([]*entities.Note, error)
	UpdateNote(ctx context.Context, noteID string, input entities.UpdateNoteInput) (*entities.Note, error)
	DeleteNote(ctx context.Context, noteID string) error
}

// HealthChecker проверяет доступность хранилища.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
