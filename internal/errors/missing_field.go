package errors

import (
	"fmt"
	"net/http"
)

func NewMissingField(field string) *Exception {
	return &Exception{
		Message:    fmt.Sprintf("Missing field: %s", field),
		StatusCode: http.StatusBadRequest,
	}
}

func NewInvalidField(field string) *Exception {
	return &Exception{
		Message:    fmt.Sprintf("Invalid field: %s", field),
		StatusCode: http.StatusBadRequest,
	}
}
