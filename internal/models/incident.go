package models

import (
	"time"
)

// Status - статус ocorrência на сервере
type Status string

const (
	StatusOpen       Status = "Aberta"
	StatusInProgress Status = "Em Andamento"
	StatusFinished   Status = "Finalizada"
)

// Valid проверяет, что статус входит в жизненный цикл
func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusFinished:
		return true
	}
	return false
}

// Active - инцидент ещё не завершён и учитывается в счётчике
func (s Status) Active() bool {
	return s != StatusFinished
}

// Priority - приоритет ocorrência
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Coordinates - точка GPS
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Incident - проекция ocorrência, хранящейся на сервере
type Incident struct {
	ID             string       `json:"id"`
	Protocol       string       `json:"protocol,omitempty"`
	Category       Category     `json:"category"`
	Subcategory    string       `json:"subcategory"`
	Priority       Priority     `json:"priority"`
	Description    string       `json:"description"`
	Address        string       `json:"address"`
	ReferencePoint string       `json:"reference_point"`
	VehicleCode    string       `json:"vehicle_code"`
	Coordinates    *Coordinates `json:"coordinates,omitempty"`
	Status         Status       `json:"status"`
	CreatedAt      time.Time    `json:"created_at"`
}

// IncidentPatch - набор изменяемых в режиме редактирования полей.
// nil означает "не менять".
type IncidentPatch struct {
	Description    *string   `json:"description,omitempty"`
	Address        *string   `json:"address,omitempty"`
	ReferencePoint *string   `json:"reference_point,omitempty"`
	Priority       *Priority `json:"priority,omitempty"`
}

// Empty - в патче нет ни одного поля
func (p IncidentPatch) Empty() bool {
	return p.Description == nil && p.Address == nil && p.ReferencePoint == nil && p.Priority == nil
}
