package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/smoretta/books-api/models"
)

var (
	ErrUnauthorized = errors.New("client unauthorized")
	ErrNotFound     = errors.New("book not found")
)

// ValidationFailedError carries the rule violations a 400 response reported.
type ValidationFailedError struct {
	Violations []models.ValidationError
}

func (e *ValidationFailedError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.PropertyName+": "+v.ErrorMessage)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func mapResponseError(resp *resty.Response) error {
	switch resp.StatusCode() {
	case http.StatusOK, http.StatusCreated, http.StatusNoContent:
		return nil
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusBadRequest:
		var violations []models.ValidationError
		if err := json.Unmarshal(resp.Body(), &violations); err == nil && len(violations) > 0 {
			return &ValidationFailedError{Violations: violations}
		}
		return fmt.Errorf("bad request: %s", strings.TrimSpace(string(resp.Body())))
	default:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode(), strings.TrimSpace(string(resp.Body())))
	}
}
