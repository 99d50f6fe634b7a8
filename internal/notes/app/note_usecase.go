// Package app реализует бизнес-логику сервиса заметок.
package app

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"notepad/internal/notes/domain/entities"
	"notepad/internal/notes/ports/api"
	"notepad/internal/notes/ports/repositories"
	"notepad/pkg/logger"
	"notepad/pkg/validation"
)

// NoteUseCase представляет собой бизнес-логику работы с заметками.
type NoteUseCase struct {
	noteRepo  repositories.NoteRepository
	validator validation.Validator
}

var _ api.NoteService = (*NoteUseCase)(nil)

// NewNoteUseCase создает новый экземпляр NoteUseCase.
func NewNoteUseCase(noteRepo repositories.NoteRepository, validator validation.Validator) *NoteUseCase {
	return &NoteUseCase{
		noteRepo:  noteRepo,
		validator: validator,
	}
}

// CreateNote проверяет входные данные и сохраняет новую заметку.
func (uc *NoteUseCase) CreateNote(ctx context.Context, input entities.CreateNoteInput) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("usecase", "NoteUseCase.CreateNote"))

	if fields := uc.validator.ValidateStruct(input); fields != nil {
		log.Debug(ctx, "create input rejected", zap.Any("fields", fields))
		return nil, entities.NewValidationError(fields)
	}

	note, err := uc.noteRepo.Create(ctx, input)
	if err != nil {
		return nil, classify(entities.OpCreate, "", err)
	}

	log.Info(ctx, "note created", zap.String("noteID", note.ID))
	return note, nil
}

// GetNote возвращает заметку по id.
func (uc *NoteUseCase) GetNote(ctx context.Context, noteID string) (*entities.Note, error) {
	if !isNoteID(noteID) {
		return nil, entities.ErrNoteNotFound
	}

	note, err := uc.noteRepo.GetByID(ctx, noteID)
	if err != nil {
		return nil, classify(entities.OpGet, noteID, err)
	}

	return note, nil
}

// ListNotes возвращает все заметки, новые первыми.
func (uc *NoteUseCase) ListNotes(ctx context.Context) ([]*entities.Note, error) {
	notes, err := uc.noteRepo.List(ctx)
	if err != nil {
		return nil, classify(entities.OpList, "", err)
	}

	return notes, nil
}

// UpdateNote меняет только переданные поля. Поля проверяются до обращения к хранилищу.
func (uc *NoteUseCase) UpdateNote(ctx context.Context, noteID string, input entities.UpdateNoteInput) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("usecase", "NoteUseCase.UpdateNote"), zap.String("noteID", noteID))

	if fields := uc.validator.ValidateStruct(input); fields != nil {
		log.Debug(ctx, "update input rejected", zap.Any("fields", fields))
		return nil, entities.NewValidationError(fields)
	}

	if !isNoteID(noteID) {
		return nil, entities.ErrNoteNotFound
	}

	note, err := uc.noteRepo.Update(ctx, noteID, input)
	if err != nil {
		return nil, classify(entities.OpUpdate, noteID, err)
	}

	log.Info(ctx, "note updated")
	return note, nil
}

// DeleteNote удаляет заметку.
func (uc *NoteUseCase) DeleteNote(ctx context.Context, noteID string) error {
	if !isNoteID(noteID) {
		return entities.ErrNoteNotFound
	}

	if err := uc.noteRepo.Delete(ctx, noteID); err != nil {
		return classify(entities.OpDelete, noteID, err)
	}

	logger.Log(ctx).Info(ctx, "note deleted", zap.String("noteID", noteID))
	return nil
}

// isNoteID отсекает id, которые не могут совпасть ни с одной строкой.
func isNoteID(noteID string) bool {
	return uuid.Validate(noteID) == nil
}

// classify оставляет ошибки таксономии как есть, остальные оборачивает в StorageError.
func classify(op, noteID string, err error) error {
	var storageErr *entities.StorageError
	if errors.Is(err, entities.ErrNoteNotFound) || errors.As(err, &storageErr) {
		return err
	}
	return &entities.StorageError{Op: op, NoteID: noteID, Err: err}
}
