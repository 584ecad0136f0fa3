package config

import (
	"CompetitionHub/pkg/validation"

	"github.com/go-playground/validator/v10"
)

func NewValidator() *validator.Validate {
	return validation.New()
}
