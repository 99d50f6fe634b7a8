// Package notes содержит HTTP-обработчики для управления заметками.
package notes

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notepad/internal/notes/adapters/http/middleware"
	"notepad/internal/notes/domain/entities"
	"notepad/internal/notes/ports/api"
	"notepad/pkg/logger"
)

// Константы ошибок и сообщений для логирования.
const (
	LogHandlerCreateNote = "handling create note request"
	LogHandlerGetNote    = "handling get note request"
	LogHandlerListNotes  = "handling list notes request"
	LogHandlerUpdateNote = "handling update note request"
	LogHandlerDeleteNote = "handling delete note request"

	ErrMsgInvalidRequestBody = "invalid request body"
	ErrMsgValidationFailed   = "validation failed"
	ErrMsgNotFound           = "not found"
)

// ParamNoteID - имя параметра маршрута с id заметки.
const ParamNoteID = "note_id"

// Handler обработчик HTTP-запросов для работы с заметками.
type Handler struct {
	noteService api.NoteService
}

// NewHandler создает новый экземпляр обработчика заметок.
func NewHandler(noteService api.NoteService) *Handler {
	return &Handler{
		noteService: noteService,
	}
}

// CreateNote обрабатывает запрос на создание новой заметки.
func (h *Handler) CreateNote(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.CreateNote"))
	log.Debug(requestCtx, LogHandlerCreateNote)

	var req entities.CreateNoteInput
	if err := ctx.Bind().Body(&req); err != nil {
		log.Warn(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return sendBadRequest(ctx)
	}

	note, err := h.noteService.CreateNote(requestCtx, req)
	if err != nil {
		return handleError(ctx, err)
	}

	if err := ctx.Status(fiber.StatusCreated).JSON(note); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// GetNote обрабатывает запрос на получение заметки по ID.
func (h *Handler) GetNote(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	noteID := ctx.Params(ParamNoteID)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.GetNote"), zap.String("noteID", noteID))
	log.Debug(requestCtx, LogHandlerGetNote)

	note, err := h.noteService.GetNote(requestCtx, noteID)
	if err != nil {
		return handleError(ctx, err)
	}

	if err := ctx.JSON(note); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// ListNotes обрабатывает запрос на получение всех заметок.
func (h *Handler) ListNotes(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	logger.Log(requestCtx).Debug(requestCtx, LogHandlerListNotes, zap.String("handler", "Handler.ListNotes"))

	notes, err := h.noteService.ListNotes(requestCtx)
	if err != nil {
		return handleError(ctx, err)
	}
	if notes == nil {
		notes = []*entities.Note{}
	}

	if err := ctx.JSON(notes); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// UpdateNote обрабатывает запрос на обновление заметки. PUT и PATCH работают одинаково:
// меняются только переданные поля.
func (h *Handler) UpdateNote(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	noteID := ctx.Params(ParamNoteID)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.UpdateNote"), zap.String("noteID", noteID))
	log.Debug(requestCtx, LogHandlerUpdateNote)

	var req entities.UpdateNoteInput
	if err := ctx.Bind().Body(&req); err != nil {
		log.Warn(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return sendBadRequest(ctx)
	}

	note, err := h.noteService.UpdateNote(requestCtx, noteID, req)
	if err != nil {
		return handleError(ctx, err)
	}

	if err := ctx.JSON(note); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// DeleteNote обрабатывает запрос на удаление заметки.
func (h *Handler) DeleteNote(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	noteID := ctx.Params(ParamNoteID)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.DeleteNote"), zap.String("noteID", noteID))
	log.Debug(requestCtx, LogHandlerDeleteNote)

	if err := h.noteService.DeleteNote(requestCtx, noteID); err != nil {
		return handleError(ctx, err)
	}

	if err := ctx.SendStatus(fiber.StatusNoContent); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

func sendBadRequest(ctx fiber.Ctx) error {
	if err := ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": ErrMsgInvalidRequestBody,
	}); err != nil {
		return fmt.Errorf("failed to send bad request response: %w", err)
	}
	return nil
}

// handleError переводит ошибку бизнес-логики в HTTP-ответ. Текст StorageError
// остается в логах и клиенту не отдается.
func handleError(ctx fiber.Ctx, err error) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)

	var (
		status int
		body   fiber.Map
	)

	var validationErr *entities.ValidationError
	switch {
	case errors.As(err, &validationErr):
		log.Debug(requestCtx, ErrMsgValidationFailed, zap.Any("fields", validationErr.Fields))
		status = fiber.StatusBadRequest
		body = fiber.Map{"error": ErrMsgValidationFailed, "fields": validationErr.Fields}
	case errors.Is(err, entities.ErrNoteNotFound):
		status = fiber.StatusNotFound
		body = fiber.Map{"error": ErrMsgNotFound}
	default:
		log.Error(requestCtx, "note operation failed", zap.Error(err))
		status = fiber.StatusInternalServerError
		body = fiber.Map{"error": middleware.ErrMsgInternal}
	}

	if err := ctx.Status(status).JSON(body); err != nil {
		return fmt.Errorf("error sending %d response: %w", status, err)
	}
	return nil
}
