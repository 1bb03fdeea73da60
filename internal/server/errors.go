package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/career-coach/internal/coach"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var inputErr *coach.InputError
	if errors.As(err, &inputErr) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
