// Package validation wraps go-playground/validator for request payloads.
//
// Struct runs tag validation once at the boundary, before any transaction is
// opened, and reports failures as a response.KindValidation error whose message
// names fields by their JSON names.
package validation
