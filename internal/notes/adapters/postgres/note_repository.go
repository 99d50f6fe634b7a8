// Package postgres содержит реализации репозиториев сервиса заметок на Postgres.
package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"notepad/internal/notes/domain/entities"
	"notepad/internal/notes/ports/repositories"
	"notepad/pkg/logger"
)

// PgxPoolInterface - подмножество методов pgxpool.Pool, которое использует репозиторий.
type PgxPoolInterface interface {
	QueryRow(ctx context.Context, query string, args ...any) pgx.Row
	Query(ctx context.Context, query string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error)
}

// invalid_text_representation: id не является UUID.
const pgCodeInvalidTextRepresentation = "22P02"

const noteColumns = `id, title, content, created_at, updated_at`

const (
	queryCreate = `INSERT INTO notes (title, content) VALUES ($1, $2) RETURNING ` + noteColumns
	queryGet    = `SELECT ` + noteColumns + ` FROM notes WHERE id = $1`
	queryList   = `SELECT ` + noteColumns + ` FROM notes ORDER BY created_at DESC, id DESC`
	// updated_at строго растет, даже если часы базы отстали.
	queryUpdate = `UPDATE notes
SET title = COALESCE($1, title),
    content = COALESCE($2, content),
    updated_at = GREATEST(NOW(), updated_at + INTERVAL '1 microsecond')
WHERE id = $3
RETURNING ` + noteColumns
	queryDelete = `DELETE FROM notes WHERE id = $1`
)

// NoteRepository реализует repositories.NoteRepository.
type NoteRepository struct {
	pool PgxPoolInterface
}

// NewNoteRepository создает новый репозиторий заметок.
func NewNoteRepository(pool PgxPoolInterface) repositories.NoteRepository {
	return &NoteRepository{pool: pool}
}

// Create вставляет заметку; id и метки времени назначает база.
func (r *NoteRepository) Create(ctx context.Context, input entities.CreateNoteInput) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Create"))
	log.Debug(ctx, "creating new note")

	note, err := scanNote(r.pool.QueryRow(ctx, queryCreate, input.Title, input.Content))
	if err != nil {
		log.Error(ctx, "failed to create note", zap.Error(err))
		return nil, &entities.StorageError{Op: entities.OpCreate, Err: err}
	}

	log.Debug(ctx, "note created", zap.String("noteID", note.ID))
	return note, nil
}

// GetByID получает заметку по id.
func (r *NoteRepository) GetByID(ctx context.Context, noteID string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.GetByID"), zap.String("noteID", noteID))
	log.Debug(ctx, "getting note")

	note, err := scanNote(r.pool.QueryRow(ctx, queryGet, noteID))
	if err != nil {
		if isNotFound(err) {
			log.Debug(ctx, "note not found")
			return nil, entities.ErrNoteNotFound
		}
		log.Error(ctx, "failed to get note", zap.Error(err))
		return nil, &entities.StorageError{Op: entities.OpGet, NoteID: noteID, Err: err}
	}

	return note, nil
}

// List возвращает все заметки, новые первыми.
func (r *NoteRepository) List(ctx context.Context) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.List"))
	log.Debug(ctx, "listing notes")

	rows, err := r.pool.Query(ctx, queryList)
	if err != nil {
		log.Error(ctx, "failed to list notes", zap.Error(err))
		return nil, &entities.StorageError{Op: entities.OpList, Err: err}
	}
	defer rows.Close()

	notes := make([]*entities.Note, 0)
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			log.Error(ctx, "failed to scan note", zap.Error(err))
			return nil, &entities.StorageError{Op: entities.OpScan, Err: err}
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating rows", zap.Error(err))
		return nil, &entities.StorageError{Op: entities.OpList, Err: err}
	}

	log.Debug(ctx, "notes listed", zap.Int("count", len(notes)))
	return notes, nil
}

// Update меняет переданные поля и обновляет updated_at одной командой.
func (r *NoteRepository) Update(ctx context.Context, noteID string, input entities.UpdateNoteInput) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Update"), zap.String("noteID", noteID))
	log.Debug(ctx, "updating note",
		zap.Bool("title_set", input.Title != nil),
		zap.Bool("content_set", input.Content != nil))

	note, err := scanNote(r.pool.QueryRow(ctx, queryUpdate, input.Title, input.Content, noteID))
	if err != nil {
		if isNotFound(err) {
			log.Debug(ctx, "note not found")
			return nil, entities.ErrNoteNotFound
		}
		log.Error(ctx, "failed to update note", zap.Error(err))
		return nil, &entities.StorageError{Op: entities.OpUpdate, NoteID: noteID, Err: err}
	}

	return note, nil
}

// Delete удаляет заметку.
func (r *NoteRepository) Delete(ctx context.Context, noteID string) error {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Delete"), zap.String("noteID", noteID))
	log.Debug(ctx, "deleting note")

	result, err := r.pool.Exec(ctx, queryDelete, noteID)
	if err != nil {
		if isNotFound(err) {
			return entities.ErrNoteNotFound
		}
		log.Error(ctx, "failed to delete note", zap.Error(err))
		return &entities.StorageError{Op: entities.OpDelete, NoteID: noteID, Err: err}
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "note not found")
		return entities.ErrNoteNotFound
	}

	return nil
}

func scanNote(row pgx.Row) (*entities.Note, error) {
	var note entities.Note
	if err := row.Scan(&note.ID, &note.Title, &note.Content, &note.CreatedAt, &note.UpdatedAt); err != nil {
		return nil, err
	}
	return &note, nil
}

func isNotFound(err error) bool {
	if errors.Is(err, pgx.ErrNoRows) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgCodeInvalidTextRepresentation
}
