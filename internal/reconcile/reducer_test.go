package reconcile

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/sigo_companion/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedState(t *testing.T) State {
	t.Helper()
	s, eff := Apply(State{}, Loaded{Incidents: []models.Incident{
		{ID: "1", Status: models.StatusOpen},
		{ID: "2", Status: models.StatusInProgress},
		{ID: "3", Status: models.StatusFinished},
	}})
	require.True(t, s.Loaded)
	require.Zero(t, eff.ActiveDelta)
	return s
}

func TestApply_StatusRequested_IsOptimistic(t *testing.T) {
	s := loadedState(t)
	mid := uuid.New()

	next, eff := Apply(s, StatusRequested{MutationID: mid, IncidentID: "1", Next: models.StatusFinished})

	inc, ok := next.Find("1")
	require.True(t, ok)
	assert.Equal(t, models.StatusFinished, inc.Status)
	require.NotNil(t, eff.Mutation)
	assert.Equal(t, Pending, eff.Mutation.State)
	assert.Equal(t, models.StatusOpen, eff.Mutation.Previous)
	// счётчик меняется только после подтверждения
	assert.Zero(t, eff.ActiveDelta)

	// исходное состояние не тронуто
	orig, _ := s.Find("1")
	assert.Equal(t, models.StatusOpen, orig.Status)
	assert.Empty(t, s.Mutations)
}

func TestApply_StatusConfirmed_Delta(t *testing.T) {
	tests := []struct {
		name  string
		id    string
		next  models.Status
		delta int
	}{
		{"open to finished", "1", models.StatusFinished, -1},
		{"finished to open", "3", models.StatusOpen, 1},
		{"open to in progress", "1", models.StatusInProgress, 0},
		{"finished to finished", "3", models.StatusFinished, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mid := uuid.New()
			s, _ := Apply(loadedState(t), StatusRequested{MutationID: mid, IncidentID: tt.id, Next: tt.next})

			s, eff := Apply(s, StatusConfirmed{MutationID: mid})

			assert.Equal(t, tt.delta, eff.ActiveDelta)
			require.NotNil(t, eff.Mutation)
			assert.Equal(t, Committed, eff.Mutation.State)
			inc, _ := s.Find(tt.id)
			assert.Equal(t, tt.next, inc.Status)
		})
	}
}

func detailedState(t *testing.T) State {
	t.Helper()
	s, _ := Apply(State{}, Loaded{Incidents: []models.Incident{{
		ID:          "2",
		Category:    models.CategoryFire,
		Priority:    models.PriorityHigh,
		Description: "incêndio residencial",
		Address:     "Rua A, 10",
		VehicleCode: "ABT-12",
		Coordinates: &models.Coordinates{Latitude: -8.05, Longitude: -34.9},
		Status:      models.StatusInProgress,
	}}})
	return s
}

func TestApply_StatusConfirmed_AckKeepsCachedFields(t *testing.T) {
	mid := uuid.New()
	s, _ := Apply(detailedState(t), StatusRequested{MutationID: mid, IncidentID: "2", Next: models.StatusFinished})

	// подтверждение без тела ocorrência: известны только id и статус
	s, eff := Apply(s, StatusConfirmed{MutationID: mid, Incident: &models.Incident{
		ID:     "2",
		Status: models.StatusFinished,
	}})

	assert.Equal(t, -1, eff.ActiveDelta)
	inc, ok := s.Find("2")
	require.True(t, ok)
	assert.Equal(t, models.StatusFinished, inc.Status)
	assert.Equal(t, "Rua A, 10", inc.Address)
	assert.Equal(t, "ABT-12", inc.VehicleCode)
	assert.Equal(t, "incêndio residencial", inc.Description)
	assert.Equal(t, models.CategoryFire, inc.Category)
	assert.Equal(t, models.PriorityHigh, inc.Priority)
	require.NotNil(t, inc.Coordinates)
}

func TestApply_StatusConfirmed_MergesServerFields(t *testing.T) {
	mid := uuid.New()
	s, _ := Apply(detailedState(t), StatusRequested{MutationID: mid, IncidentID: "2", Next: models.StatusFinished})

	s, _ = Apply(s, StatusConfirmed{MutationID: mid, Incident: &models.Incident{
		ID:          "2",
		Protocol:    "2025-0042",
		Description: "atualizada",
		Status:      models.StatusFinished,
	}})

	inc, _ := s.Find("2")
	assert.Equal(t, "2025-0042", inc.Protocol)
	assert.Equal(t, "atualizada", inc.Description)
	assert.Equal(t, "Rua A, 10", inc.Address)
}

func TestApply_StatusConfirmed_NilIncident(t *testing.T) {
	mid := uuid.New()
	s, _ := Apply(detailedState(t), StatusRequested{MutationID: mid, IncidentID: "2", Next: models.StatusOpen})

	s, _ = Apply(s, StatusConfirmed{MutationID: mid})

	inc, _ := s.Find("2")
	assert.Equal(t, models.StatusOpen, inc.Status)
	assert.Equal(t, "ABT-12", inc.VehicleCode)
}

func TestApply_StatusRequested_BlockedWhilePending(t *testing.T) {
	first := uuid.New()
	s, _ := Apply(loadedState(t), StatusRequested{MutationID: first, IncidentID: "1", Next: models.StatusFinished})

	next, eff := Apply(s, StatusRequested{MutationID: uuid.New(), IncidentID: "1", Next: models.StatusInProgress})

	assert.True(t, eff.Blocked)
	assert.Nil(t, eff.Mutation)
	inc, _ := next.Find("1")
	assert.Equal(t, models.StatusFinished, inc.Status)
	assert.Len(t, next.Mutations, 1)

	// после подтверждения первой смены следующая считается от подтверждённого статуса
	s, eff = Apply(next, StatusConfirmed{MutationID: first})
	assert.Equal(t, -1, eff.ActiveDelta)

	second := uuid.New()
	s, eff = Apply(s, StatusRequested{MutationID: second, IncidentID: "1", Next: models.StatusInProgress})
	require.NotNil(t, eff.Mutation)
	assert.Equal(t, models.StatusFinished, eff.Mutation.Previous)
	_, eff = Apply(s, StatusConfirmed{MutationID: second})
	assert.Equal(t, 1, eff.ActiveDelta)

	// другие ocorrências не блокируются
	_, eff = Apply(next, StatusRequested{MutationID: uuid.New(), IncidentID: "2", Next: models.StatusOpen})
	assert.False(t, eff.Blocked)
	assert.NotNil(t, eff.Mutation)
}

func TestApply_StatusFailed_RollsBack(t *testing.T) {
	mid := uuid.New()
	s, _ := Apply(loadedState(t), StatusRequested{MutationID: mid, IncidentID: "2", Next: models.StatusFinished})

	s, eff := Apply(s, StatusFailed{MutationID: mid})

	inc, _ := s.Find("2")
	assert.Equal(t, models.StatusInProgress, inc.Status)
	assert.Zero(t, eff.ActiveDelta)
	require.NotNil(t, eff.Mutation)
	assert.Equal(t, RolledBack, eff.Mutation.State)

	// повторное завершение игнорируется
	_, eff = Apply(s, StatusConfirmed{MutationID: mid})
	assert.Nil(t, eff.Mutation)
	assert.Zero(t, eff.ActiveDelta)
}

func TestApply_UnknownIncident(t *testing.T) {
	s := loadedState(t)

	next, eff := Apply(s, StatusRequested{MutationID: uuid.New(), IncidentID: "404", Next: models.StatusOpen})
	assert.Nil(t, eff.Mutation)
	assert.Len(t, next.Incidents, 3)

	_, eff = Apply(s, Removed{IncidentID: "404"})
	assert.Zero(t, eff.ActiveDelta)
}

func TestApply_Removed(t *testing.T) {
	s := loadedState(t)

	s, eff := Apply(s, Removed{IncidentID: "1"})
	assert.Equal(t, -1, eff.ActiveDelta)
	_, ok := s.Find("1")
	assert.False(t, ok)

	s, eff = Apply(s, Removed{IncidentID: "3"})
	assert.Zero(t, eff.ActiveDelta)
	assert.Len(t, s.Incidents, 1)
}

func TestApply_LoadedDropsSettledMutations(t *testing.T) {
	settled, pending := uuid.New(), uuid.New()
	s, _ := Apply(loadedState(t), StatusRequested{MutationID: settled, IncidentID: "1", Next: models.StatusFinished})
	s, _ = Apply(s, StatusConfirmed{MutationID: settled})
	s, _ = Apply(s, StatusRequested{MutationID: pending, IncidentID: "2", Next: models.StatusFinished})

	s, _ = Apply(s, Loaded{Incidents: []models.Incident{{ID: "9", Status: models.StatusOpen}}})

	assert.Len(t, s.Incidents, 1)
	assert.NotContains(t, s.Mutations, settled)
	assert.Contains(t, s.Mutations, pending)
}

func TestActiveCount(t *testing.T) {
	assert.Equal(t, 2, ActiveCount(loadedState(t).Incidents))
	assert.Zero(t, ActiveCount(nil))
}

func TestEditSession_Patch(t *testing.T) {
	inc := models.Incident{
		ID:             "7",
		Description:    "fumaça",
		Address:        "Rua A, 10",
		ReferencePoint: "praça",
		Priority:       models.PriorityMedium,
	}

	e := BeginEdit(inc)
	assert.True(t, e.Patch().Empty())

	e.Description = "fumaça intensa"
	e.Priority = models.PriorityHigh
	p := e.Patch()
	require.NotNil(t, p.Description)
	assert.Equal(t, "fumaça intensa", *p.Description)
	require.NotNil(t, p.Priority)
	assert.Equal(t, models.PriorityHigh, *p.Priority)
	assert.Nil(t, p.Address)
	assert.Nil(t, p.ReferencePoint)

	e.Cancel()
	assert.True(t, e.Cancelled())
	assert.True(t, e.Patch().Empty())
	assert.Equal(t, "fumaça", e.Description)
}
