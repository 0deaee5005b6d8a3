package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ValidationError - черновик не прошёл локальную проверку, сеть не вызывалась
type ValidationError struct {
	MissingFields []string `json:"missing_fields,omitempty"`
	InvalidFields []string `json:"invalid_fields,omitempty"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, 2)
	if len(e.MissingFields) > 0 {
		parts = append(parts, "missing required fields: "+strings.Join(e.MissingFields, ", "))
	}
	if len(e.InvalidFields) > 0 {
		parts = append(parts, "invalid fields: "+strings.Join(e.InvalidFields, ", "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// SubmitFailedError - бэкенд не принял ocorrência. Черновик сохранён.
type SubmitFailedError struct {
	DraftID uuid.UUID
	Err     error
}

func (e *SubmitFailedError) Error() string {
	return fmt.Sprintf("submit draft %s: %v", e.DraftID, e.Err)
}

func (e *SubmitFailedError) Unwrap() error { return e.Err }

// OfflineAvailable - можно предложить офлайн-документ
func (e *SubmitFailedError) OfflineAvailable() bool { return true }
