package database

import (
	"errors"

	"site-cms/core/response"

	"gorm.io/gorm"
)

// Classify converts a persistence error into the response taxonomy.
// Errors that already carry a kind pass through untouched; unique violations
// become conflicts, missing rows become not-found, and everything else becomes
// an internal error labelled with message.
func Classify(err error, message string) error {
	if err == nil {
		return nil
	}
	var appErr *response.Error
	if errors.As(err, &appErr) {
		return err
	}
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return response.Conflict(message, err)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return &response.Error{Kind: response.KindNotFound, Message: message, Err: err}
	default:
		return response.Internal(message, err)
	}
}
