// Package model holds the rows, request payloads and response envelopes
// exchanged between the BizTime layers. Each resource lives in its own
// subpackage.
package model

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate is shared by every payload's Validate method. Field errors carry
// the JSON key (or the path parameter name) rather than the Go field name.
var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "param"} {
			name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
			if name != "" && name != "-" {
				return name
			}
		}
		return field.Name
	})
	return v
}

// CustomValidationError is a validation issue that cannot be expressed with
// validator tags.
type CustomValidationError struct {
	Field   string
	Message string
}

type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// DeletedResponse is the body returned by every successful DELETE.
type DeletedResponse struct {
	Status string `json:"status"`
}

// Deleted is the canonical DeletedResponse.
var Deleted = DeletedResponse{Status: "deleted"}
