package gateway

import (
	"errors"
	"fmt"
)

// ErrUnauthenticated - не удалось определить текущего пользователя, нужен повторный вход
var ErrUnauthenticated = errors.New("user not identified, please log in again")

// Причины ошибки FetchError
const (
	ReasonUnauthenticated = "unauthenticated"
	ReasonNetwork         = "network"
	ReasonBackend         = "backend"
	ReasonDecode          = "decode"
)

// SubmissionError - ошибка регистрации ocorrência
type SubmissionError struct {
	StatusCode    int
	ServerMessage string
	Err           error
}

func (e *SubmissionError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("submission failed with status %d: %s", e.StatusCode, e.ServerMessage)
	}
	return fmt.Sprintf("submission failed: %v", e.Err)
}

func (e *SubmissionError) Unwrap() error { return e.Err }

// FetchError - ошибка получения списка ocorrências
type FetchError struct {
	Reason        string
	StatusCode    int
	ServerMessage string
	Err           error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch failed (%s) with status %d: %s", e.Reason, e.StatusCode, e.ServerMessage)
	}
	return fmt.Sprintf("fetch failed (%s): %v", e.Reason, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// UpdateError - ошибка смены статуса или редактирования
type UpdateError struct {
	ID            string
	StatusCode    int
	ServerMessage string
	Err           error
}

func (e *UpdateError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("update of occurrence %s failed with status %d: %s", e.ID, e.StatusCode, e.ServerMessage)
	}
	return fmt.Sprintf("update of occurrence %s failed: %v", e.ID, e.Err)
}

func (e *UpdateError) Unwrap() error { return e.Err }

// DeleteError - ошибка удаления
type DeleteError struct {
	ID            string
	StatusCode    int
	ServerMessage string
	Err           error
}

func (e *DeleteError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("delete of occurrence %s failed with status %d: %s", e.ID, e.StatusCode, e.ServerMessage)
	}
	return fmt.Sprintf("delete of occurrence %s failed: %v", e.ID, e.Err)
}

func (e *DeleteError) Unwrap() error { return e.Err }

// LoginError - сервер отклонил учётные данные
type LoginError struct {
	StatusCode    int
	ServerMessage string
	Err           error
}

func (e *LoginError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("login failed with status %d: %s", e.StatusCode, e.ServerMessage)
	}
	return fmt.Sprintf("login failed: %v", e.Err)
}

func (e *LoginError) Unwrap() error { return e.Err }
