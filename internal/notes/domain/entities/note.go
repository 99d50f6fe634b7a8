// Package entities содержит доменные сущности сервиса заметок.
package entities

import "time"

// MaxTitleLength - максимальная длина заголовка в символах.
// Должна совпадать с max= в тегах validate ниже и с VARCHAR(255) в миграции.
const MaxTitleLength = 255

// Note представляет собой заметку.
type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateNoteInput содержит поля новой заметки.
type CreateNoteInput struct {
	Title   string `json:"title" validate:"required,max=255,nonul"`
	Content string `json:"content" validate:"required,nonul"`
}

// UpdateNoteInput содержит изменяемые поля заметки. nil означает "не менять".
type UpdateNoteInput struct {
	Title   *string `json:"title,omitempty" validate:"omitnil,min=1,max=255,nonul"`
	Content *string `json:"content,omitempty" validate:"omitnil,min=1,nonul"`
}

// IsEmpty сообщает, что ни одно поле не передано.
func (in UpdateNoteInput) IsEmpty() bool {
	return in.Title == nil && in.Content == nil
}
