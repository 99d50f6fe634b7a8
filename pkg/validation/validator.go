// Package validation проверяет структуры по тегам validate и возвращает ошибки по полям.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator проверяет структуру и возвращает сообщения об ошибках по именам полей.
// nil означает, что структура корректна.
type Validator interface {
	ValidateStruct(s any) map[string]string
}

// GoPlaygroundValidator реализует Validator поверх go-playground/validator.
type GoPlaygroundValidator struct {
	v *validator.Validate
}

// New создает валидатор, использующий имена полей из json тегов.
func New() *GoPlaygroundValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Postgres text не хранит 0x00.
	if err := v.RegisterValidation(TagNoNUL, noNUL); err != nil {
		panic(err)
	}

	return &GoPlaygroundValidator{v: v}
}

// TagNoNUL запрещает символ NUL в строке.
const TagNoNUL = "nonul"

func noNUL(fl validator.FieldLevel) bool {
	return !strings.ContainsRune(fl.Field().String(), 0)
}

// ValidateStruct проверяет s.
func (va *GoPlaygroundValidator) ValidateStruct(s any) map[string]string {
	err := va.v.Struct(s)
	if err == nil {
		return nil
	}

	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return map[string]string{"_": err.Error()}
	}

	errMap := make(map[string]string, len(valErrs))
	for _, e := range valErrs {
		errMap[e.Field()] = message(e)
	}

	return errMap
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "min":
		if e.Param() == "1" {
			return fmt.Sprintf("%s must not be empty", e.Field())
		}
		return fmt.Sprintf("%s must be at least %s characters long", e.Field(), e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", e.Field(), e.Param())
	case TagNoNUL:
		return fmt.Sprintf("%s must not contain NUL characters", e.Field())
	case "uuid", "uuid4":
		return fmt.Sprintf("%s must be a valid UUID", e.Field())
	default:
		return fmt.Sprintf("%s is invalid", e.Field())
	}
}
