package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"notepad/pkg/validation"
)

type sample struct {
	Title   string  `json:"title" validate:"required,max=5,nonul"`
	Summary *string `json:"summary,omitempty" validate:"omitnil,min=1,nonul"`
	Hidden  string  `json:"-" validate:"max=1"`
}

func ptr(s string) *string { return &s }

func TestGoPlaygroundValidator_ValidateStruct(t *testing.T) {
	v := validation.New()

	tests := []struct {
		name     string
		input    sample
		expected map[string]string
	}{
		{
			name:     "valid struct",
			input:    sample{Title: "ok"},
			expected: nil,
		},
		{
			name:     "required field missing",
			input:    sample{},
			expected: map[string]string{"title": "title is required"},
		},
		{
			name:     "max length counts characters",
			input:    sample{Title: "ёёёёё"},
			expected: nil,
		},
		{
			name:     "too long",
			input:    sample{Title: strings.Repeat("a", 6)},
			expected: map[string]string{"title": "title must be at most 5 characters long"},
		},
		{
			name:     "empty optional pointer",
			input:    sample{Title: "ok", Summary: ptr("")},
			expected: map[string]string{"summary": "summary must not be empty"},
		},
		{
			name:     "nul character",
			input:    sample{Title: "a\x00b"},
			expected: map[string]string{"title": "title must not contain NUL characters"},
		},
		{
			name:     "nul character behind pointer",
			input:    sample{Title: "ok", Summary: ptr("x\x00")},
			expected: map[string]string{"summary": "summary must not contain NUL characters"},
		},
		{
			name:     "nil optional pointer",
			input:    sample{Title: "ok", Summary: nil},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, v.ValidateStruct(tt.input))
		})
	}
}

func TestGoPlaygroundValidator_IgnoredJSONName(t *testing.T) {
	v := validation.New()

	errs := v.ValidateStruct(sample{Title: "ok", Hidden: "toolong"})

	assert.Len(t, errs, 1)
	for _, msg := range errs {
		assert.Contains(t, msg, "must be at most 1 characters long")
	}
}
