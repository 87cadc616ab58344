package database

import (
	"errors"

	"gorm.io/gorm"
)

// Domain-level persistence errors. Repositories translate gorm errors into
// these so controllers never import gorm.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

// Translate maps gorm sentinel errors onto the domain errors. Repository
// packages run every gorm result through it.
func Translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}
