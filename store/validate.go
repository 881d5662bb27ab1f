package store

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// checkInput runs struct-tag validation and folds failures into the
// ErrValidation taxonomy so handlers can map them to a 400.
func checkInput(in interface{}) error {
	if err := validate.Struct(in); err != nil {
		return validationErr("%v", err)
	}
	return nil
}
