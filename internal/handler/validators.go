package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"fyyur/internal/model"
	apperrors "fyyur/pkg/app_errors"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterValidators adds the "state" and "genre" tags to gin's validator and reports
// field errors under their form names.
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("unexpected validator engine")
			return
		}
		v.RegisterTagNameFunc(formTagName)
		if err := v.RegisterValidation("state", func(fl validator.FieldLevel) bool {
			return model.IsState(fl.Field().String())
		}); err != nil {
			registerErr = err
			return
		}
		registerErr = v.RegisterValidation("genre", func(fl validator.FieldLevel) bool {
			return model.IsGenre(fl.Field().String())
		})
	})
	return registerErr
}

func formTagName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("form"), ",")
	if name == "" || name == "-" {
		return fld.Name
	}
	return name
}

// bindError turns a binding failure into a ValidationError keyed by form field.
func bindError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			name, _, _ := strings.Cut(fe.Field(), "[")
			fields[name] = fieldMessage(fe)
		}
		return &apperrors.ValidationError{Fields: fields}
	}

	var timeErr *time.ParseError
	if errors.As(err, &timeErr) {
		return apperrors.NewValidationError("start_time", "must look like "+showTimeLayout)
	}
	return apperrors.NewValidationError("form", "malformed input")
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "min":
		return "is required"
	case "gt":
		return "must be a positive id"
	case "state":
		return "must be a US state code"
	case "genre":
		return fmt.Sprintf("unknown genre %v", fe.Value())
	case "url":
		return "must be a URL"
	case "max":
		return "is too long"
	default:
		return "is invalid"
	}
}
