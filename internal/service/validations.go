package service

import (
	"errors"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/hydration/internal/error_values"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

const userKeyRule = "required,user_key,max=100"

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("user_key", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			for i, char := range value {
				// Cannot be started with a digit, underscore or dash
				if i == 0 && (unicode.IsDigit(char) || char == '_' || char == '-') {
					return false
				}
				// Digits, letters, underscore or dash
				if !unicode.IsLetter(char) && !unicode.IsDigit(char) && char != '_' && char != '-' {
					return false
				}
			}
			return true
		})
	})
}

func validationError(err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		err = errorvalues.ErrInvalidRequest
		for _, fieldErr := range validationErrors {
			err = errors.Join(err, fieldErr)
		}
		return err
	}
	return errors.New("validation unexpected error: " + err.Error())
}

func validateStruct(s any) error {
	InitValidator()
	if err := validate.Struct(s); err != nil {
		return validationError(err)
	}
	return nil
}

func validateUserKey(userID string) error {
	InitValidator()
	if err := validate.Var(userID, userKeyRule); err != nil {
		return validationError(err)
	}
	return nil
}
