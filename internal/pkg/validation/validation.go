// Package validation проверяет формы создания до обращения к бэкенду.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var ErrInvalidForm = errors.New("invalid form")

type enum interface {
	Valid() bool
}

type FieldError struct {
	Field string
	Rule  string
}

// Error перечисляет поля формы, не прошедшие проверку.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s (%s)", f.Field, f.Rule))
	}
	return fmt.Sprintf("%s: %s", ErrInvalidForm, strings.Join(parts, ", "))
}

func (e *Error) Is(target error) bool {
	return target == ErrInvalidForm
}

// Message - текст для пользователя дашборда.
func (e *Error) Message() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return "Проверьте заполнение полей: " + strings.Join(names, ", ")
}

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// в ошибках имена полей как в API
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		if name := field.Tag.Get("name"); name != "" {
			return name
		}
		return field.Name
	})

	// enum: значение из канонического перечня сущности
	err := v.RegisterValidation("enum", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(enum)
		return ok && value.Valid()
	})
	if err != nil {
		panic(fmt.Sprintf("register enum validation: %v", err))
	}

	return &Validator{validate: v}
}

func (v *Validator) Struct(form any) error {
	err := v.validate.Struct(form)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate form: %w", err)
	}

	result := &Error{Fields: make([]FieldError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		result.Fields = append(result.Fields, FieldError{
			Field: fe.Field(),
			Rule:  fe.Tag(),
		})
	}
	return result
}
