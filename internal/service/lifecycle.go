package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/shenikar/sigo_companion/internal/models"
	"github.com/shenikar/sigo_companion/internal/reconcile"
	"github.com/shenikar/sigo_companion/internal/webhook"
	"github.com/sirupsen/logrus"
)

var (
	// ErrEditCancelled - сессия редактирования уже отменена
	ErrEditCancelled = errors.New("edit session cancelled")
	// ErrStatusChangeInProgress - предыдущая смена статуса ещё не подтверждена сервером
	ErrStatusChangeInProgress = errors.New("status change already in progress")
)

type lifecycleService struct {
	gateway   Gateway
	stats     StatsStore
	publisher webhook.Publisher
	logger    *logrus.Logger

	mu    sync.Mutex
	state reconcile.State
}

func NewLifecycleService(gw Gateway, stats StatsStore, publisher webhook.Publisher, logger *logrus.Logger) LifecycleService {
	return &lifecycleService{
		gateway:   gw,
		stats:     stats,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *lifecycleService) apply(a reconcile.Action) (reconcile.State, reconcile.Effect) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var eff reconcile.Effect
	s.state, eff = reconcile.Apply(s.state, a)
	return s.state, eff
}

func (s *lifecycleService) snapshot() reconcile.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Reload загружает список с сервера и пересчитывает счётчик
func (s *lifecycleService) Reload(ctx context.Context) ([]models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "lifecycle",
		"method":  "Reload",
	})

	incidents, err := s.gateway.ListForCurrentUser(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to load incidents")
		return nil, fmt.Errorf("service: could not load incidents: %w", err)
	}
	state, _ := s.apply(reconcile.Loaded{Incidents: incidents})

	active := reconcile.ActiveCount(state.Incidents)
	if err := s.stats.ResetActive(ctx, active); err != nil {
		log.WithError(err).Warn("Failed to reset active incidents counter")
	}
	log.WithFields(logrus.Fields{"count": len(state.Incidents), "active": active}).Info("Incidents loaded")
	return copyIncidents(state.Incidents), nil
}

// Incidents возвращает локальный список, при первом обращении загружает его
func (s *lifecycleService) Incidents(ctx context.Context) ([]models.Incident, error) {
	state, err := s.loaded(ctx)
	if err != nil {
		return nil, err
	}
	return copyIncidents(state.Incidents), nil
}

func (s *lifecycleService) loaded(ctx context.Context) (reconcile.State, error) {
	if state := s.snapshot(); state.Loaded {
		return state, nil
	}
	if _, err := s.Reload(ctx); err != nil {
		return reconcile.State{}, err
	}
	return s.snapshot(), nil
}

func (s *lifecycleService) find(ctx context.Context, id string) (models.Incident, error) {
	state, err := s.loaded(ctx)
	if err != nil {
		return models.Incident{}, err
	}
	inc, ok := state.Find(id)
	if !ok {
		return models.Incident{}, fmt.Errorf("incident %s: %w", id, ErrIncidentNotFound)
	}
	return inc, nil
}

// ChangeStatus меняет статус оптимистично: сначала локально, затем на сервере.
// При ошибке изменение откатывается и список перезагружается.
func (s *lifecycleService) ChangeStatus(ctx context.Context, id string, status models.Status) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "lifecycle",
		"method":      "ChangeStatus",
		"incident_id": id,
		"status":      status,
	})

	if !status.Valid() {
		return nil, &ValidationError{InvalidFields: []string{"status"}}
	}
	if _, err := s.find(ctx, id); err != nil {
		return nil, err
	}

	mutationID := uuid.New()
	_, eff := s.apply(reconcile.StatusRequested{MutationID: mutationID, IncidentID: id, Next: status})
	if eff.Blocked {
		log.Warn("Status change already in flight")
		return nil, fmt.Errorf("incident %s: %w", id, ErrStatusChangeInProgress)
	}
	if eff.Mutation == nil {
		return nil, fmt.Errorf("incident %s: %w", id, ErrIncidentNotFound)
	}
	previous := eff.Mutation.Previous

	confirmed, err := s.gateway.SetStatus(ctx, id, status)
	if err != nil {
		log.WithError(err).Warn("Status change rejected, rolling back")
		s.apply(reconcile.StatusFailed{MutationID: mutationID})
		if _, rerr := s.Reload(ctx); rerr != nil {
			log.WithError(rerr).Error("Failed to reload incidents after rollback")
		}
		return nil, fmt.Errorf("service: could not change status: %w", err)
	}

	state, eff := s.apply(reconcile.StatusConfirmed{MutationID: mutationID, Incident: confirmed})
	s.addActive(ctx, log, eff.ActiveDelta)

	event := webhook.NewEvent(webhook.EventIncidentStatusChanged)
	event.IncidentID = id
	event.Status = status
	event.PreviousStatus = previous
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish incident.status_changed event")
	}

	log.WithField("previous", previous).Info("Incident status changed")
	inc, ok := state.Find(id)
	if !ok {
		// список перезагрузили, пока запрос был в пути
		return confirmed, nil
	}
	return &inc, nil
}

// Delete удаляет ocorrência на сервере и затем из локального списка
func (s *lifecycleService) Delete(ctx context.Context, id string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "lifecycle",
		"method":      "Delete",
		"incident_id": id,
	})

	if _, err := s.find(ctx, id); err != nil {
		return err
	}
	if err := s.gateway.Delete(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to delete incident")
		return fmt.Errorf("service: could not delete incident: %w", err)
	}

	_, eff := s.apply(reconcile.Removed{IncidentID: id})
	s.addActive(ctx, log, eff.ActiveDelta)

	event := webhook.NewEvent(webhook.EventIncidentDeleted)
	event.IncidentID = id
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish incident.deleted event")
	}
	log.Info("Incident deleted")
	return nil
}

// BeginEdit открывает редактирование по локальной копии
func (s *lifecycleService) BeginEdit(ctx context.Context, id string) (*reconcile.EditSession, error) {
	inc, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return reconcile.BeginEdit(inc), nil
}

// SaveEdit отправляет изменённые поля и перезагружает список
func (s *lifecycleService) SaveEdit(ctx context.Context, session *reconcile.EditSession) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "lifecycle",
		"method":      "SaveEdit",
		"incident_id": session.IncidentID,
	})

	if session.Cancelled() {
		return nil, ErrEditCancelled
	}
	patch := session.Patch()
	if patch.Priority != nil && !patch.Priority.Valid() {
		return nil, &ValidationError{InvalidFields: []string{"priority"}}
	}
	if patch.Empty() {
		inc, err := s.find(ctx, session.IncidentID)
		if err != nil {
			return nil, err
		}
		log.Debug("Nothing changed, skipping update")
		return &inc, nil
	}

	updated, err := s.gateway.Update(ctx, session.IncidentID, patch)
	if err != nil {
		log.WithError(err).Warn("Failed to update incident")
		return nil, fmt.Errorf("service: could not update incident: %w", err)
	}

	event := webhook.NewEvent(webhook.EventIncidentUpdated)
	event.IncidentID = session.IncidentID
	event.Incident = updated
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish incident.updated event")
	}

	incidents, err := s.Reload(ctx)
	if err != nil {
		log.WithError(err).Warn("Incident updated but reload failed")
		return updated, nil
	}
	for i := range incidents {
		if incidents[i].ID == session.IncidentID {
			return &incidents[i], nil
		}
	}
	return updated, nil
}

// ActiveCount - значение счётчика незавершённых ocorrências
func (s *lifecycleService) ActiveCount(ctx context.Context) (int, error) {
	n, err := s.stats.ActiveCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("service: could not get active count: %w", err)
	}
	return n, nil
}

func (s *lifecycleService) addActive(ctx context.Context, log *logrus.Entry, delta int) {
	if delta == 0 {
		return
	}
	if _, err := s.stats.AddActive(ctx, delta); err != nil {
		log.WithError(err).Warn("Failed to adjust active incidents counter")
	}
}

func copyIncidents(in []models.Incident) []models.Incident {
	return append(make([]models.Incident, 0, len(in)), in...)
}
