package reconcile

import (
	"github.com/google/uuid"
	"github.com/shenikar/sigo_companion/internal/models"
)

// MutationState - стадия оптимистичного изменения
type MutationState string

const (
	Pending    MutationState = "pending"
	Committed  MutationState = "committed"
	RolledBack MutationState = "rolled_back"
)

// Mutation - оптимистичная смена статуса одной ocorrência
type Mutation struct {
	ID         uuid.UUID     `json:"id"`
	IncidentID string        `json:"incident_id"`
	Previous   models.Status `json:"previous"`
	Next       models.Status `json:"next"`
	State      MutationState `json:"state"`
}

// State - локальная теневая копия списка ocorrências
type State struct {
	Incidents []models.Incident
	Mutations map[uuid.UUID]Mutation
	Loaded    bool
}

// Effect - побочный результат применения действия.
// ActiveDelta меняется только при подтверждённых переходах.
// Blocked - по ocorrência уже идёт неподтверждённая смена статуса.
type Effect struct {
	ActiveDelta int
	Mutation    *Mutation
	Blocked     bool
}

// Action - событие, меняющее State
type Action interface {
	isAction()
}

// Loaded - полная перезагрузка с сервера
type Loaded struct {
	Incidents []models.Incident
}

// StatusRequested - пользователь выбрал новый статус, запрос ещё не отправлен
type StatusRequested struct {
	MutationID uuid.UUID
	IncidentID string
	Next       models.Status
}

// StatusConfirmed - сервер принял смену статуса
type StatusConfirmed struct {
	MutationID uuid.UUID
	Incident   *models.Incident
}

// StatusFailed - сервер отклонил смену статуса
type StatusFailed struct {
	MutationID uuid.UUID
}

// Removed - ocorrência удалена на сервере
type Removed struct {
	IncidentID string
}

func (Loaded) isAction()          {}
func (StatusRequested) isAction() {}
func (StatusConfirmed) isAction() {}
func (StatusFailed) isAction()    {}
func (Removed) isAction()         {}

// Apply - чистая функция перехода. Исходное состояние не изменяется.
func Apply(s State, a Action) (State, Effect) {
	next := s.clone()

	switch act := a.(type) {
	case Loaded:
		next.Incidents = append([]models.Incident(nil), act.Incidents...)
		next.Loaded = true
		for id, m := range next.Mutations {
			if m.State != Pending {
				delete(next.Mutations, id)
			}
		}
		return next, Effect{}

	case StatusRequested:
		idx := next.index(act.IncidentID)
		if idx < 0 {
			return s, Effect{}
		}
		if next.pending(act.IncidentID) {
			return s, Effect{Blocked: true}
		}
		m := Mutation{
			ID:         act.MutationID,
			IncidentID: act.IncidentID,
			Previous:   next.Incidents[idx].Status,
			Next:       act.Next,
			State:      Pending,
		}
		next.Incidents[idx].Status = act.Next
		next.Mutations[m.ID] = m
		return next, Effect{Mutation: &m}

	case StatusConfirmed:
		m, ok := next.Mutations[act.MutationID]
		if !ok || m.State != Pending {
			return s, Effect{}
		}
		if act.Incident != nil && act.Incident.Status.Valid() {
			m.Next = act.Incident.Status
		}
		m.State = Committed
		next.Mutations[m.ID] = m
		if idx := next.index(m.IncidentID); idx >= 0 {
			next.Incidents[idx] = merge(next.Incidents[idx], act.Incident)
			next.Incidents[idx].Status = m.Next
		}
		return next, Effect{ActiveDelta: transitionDelta(m.Previous, m.Next), Mutation: &m}

	case StatusFailed:
		m, ok := next.Mutations[act.MutationID]
		if !ok || m.State != Pending {
			return s, Effect{}
		}
		m.State = RolledBack
		next.Mutations[m.ID] = m
		if idx := next.index(m.IncidentID); idx >= 0 && next.Incidents[idx].Status == m.Next {
			next.Incidents[idx].Status = m.Previous
		}
		return next, Effect{Mutation: &m}

	case Removed:
		idx := next.index(act.IncidentID)
		if idx < 0 {
			return s, Effect{}
		}
		removed := next.Incidents[idx]
		next.Incidents = append(next.Incidents[:idx], next.Incidents[idx+1:]...)
		eff := Effect{}
		if removed.Status.Active() {
			eff.ActiveDelta = -1
		}
		return next, eff
	}

	return s, Effect{}
}

// ActiveCount - число незавершённых ocorrências
func ActiveCount(incidents []models.Incident) int {
	n := 0
	for _, inc := range incidents {
		if inc.Status.Active() {
			n++
		}
	}
	return n
}

// Find возвращает ocorrência из локального списка
func (s State) Find(id string) (models.Incident, bool) {
	if idx := s.index(id); idx >= 0 {
		return s.Incidents[idx], true
	}
	return models.Incident{}, false
}

// merge переносит в локальную копию только заполненные поля ответа сервера.
// Ответ-подтверждение без данных ocorrência ничего не затирает.
func merge(cached models.Incident, server *models.Incident) models.Incident {
	if server == nil {
		return cached
	}
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&cached.Protocol, server.Protocol)
	set(&cached.Subcategory, server.Subcategory)
	set(&cached.Description, server.Description)
	set(&cached.Address, server.Address)
	set(&cached.ReferencePoint, server.ReferencePoint)
	set(&cached.VehicleCode, server.VehicleCode)
	if server.Category != "" {
		cached.Category = server.Category
	}
	if server.Priority != "" {
		cached.Priority = server.Priority
	}
	if server.Coordinates != nil {
		c := *server.Coordinates
		cached.Coordinates = &c
	}
	if !server.CreatedAt.IsZero() {
		cached.CreatedAt = server.CreatedAt
	}
	return cached
}

func transitionDelta(prev, next models.Status) int {
	switch {
	case prev.Active() && !next.Active():
		return -1
	case !prev.Active() && next.Active():
		return 1
	}
	return 0
}

func (s State) pending(incidentID string) bool {
	for _, m := range s.Mutations {
		if m.IncidentID == incidentID && m.State == Pending {
			return true
		}
	}
	return false
}

func (s State) index(id string) int {
	for i, inc := range s.Incidents {
		if inc.ID == id {
			return i
		}
	}
	return -1
}

func (s State) clone() State {
	c := State{
		Incidents: append([]models.Incident(nil), s.Incidents...),
		Mutations: make(map[uuid.UUID]Mutation, len(s.Mutations)),
		Loaded:    s.Loaded,
	}
	for k, v := range s.Mutations {
		c.Mutations[k] = v
	}
	return c
}
