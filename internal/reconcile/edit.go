package reconcile

import (
	"github.com/shenikar/sigo_companion/internal/models"
)

// EditSession - режим редактирования ocorrência.
// Изменяемые поля: описание, адрес, ориентир, приоритет.
type EditSession struct {
	IncidentID     string          `json:"incident_id"`
	Description    string          `json:"description"`
	Address        string          `json:"address"`
	ReferencePoint string          `json:"reference_point"`
	Priority       models.Priority `json:"priority"`

	original  models.Incident
	cancelled bool
}

// BeginEdit открывает редактирование с текущими значениями
func BeginEdit(inc models.Incident) *EditSession {
	return &EditSession{
		IncidentID:     inc.ID,
		Description:    inc.Description,
		Address:        inc.Address,
		ReferencePoint: inc.ReferencePoint,
		Priority:       inc.Priority,
		original:       inc,
	}
}

// Cancel отбрасывает правки без обращения к сети
func (e *EditSession) Cancel() {
	e.Description = e.original.Description
	e.Address = e.original.Address
	e.ReferencePoint = e.original.ReferencePoint
	e.Priority = e.original.Priority
	e.cancelled = true
}

func (e *EditSession) Cancelled() bool { return e.cancelled }

// Patch содержит только изменённые поля
func (e *EditSession) Patch() models.IncidentPatch {
	var p models.IncidentPatch
	if e.Description != e.original.Description {
		v := e.Description
		p.Description = &v
	}
	if e.Address != e.original.Address {
		v := e.Address
		p.Address = &v
	}
	if e.ReferencePoint != e.original.ReferencePoint {
		v := e.ReferencePoint
		p.ReferencePoint = &v
	}
	if e.Priority != e.original.Priority {
		v := e.Priority
		p.Priority = &v
	}
	return p
}
