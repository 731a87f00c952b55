package main

import (
	"github.com/Laisky/errors/v2"
	"github.com/go-playground/validator/v10"
)

// config captures the runner configuration derived from flags and environment variables.
type config struct {
	ScenariosDir string `validate:"required"`
	ReportsDir   string `validate:"required"`
}

var configValidator = validator.New()

func (c config) validate() error {
	if err := configValidator.Struct(c); err != nil {
		return errors.Wrap(err, "invalid runner configuration")
	}
	return nil
}
