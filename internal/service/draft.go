package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/sigo_companion/internal/gateway"
	"github.com/shenikar/sigo_companion/internal/models"
	"github.com/shenikar/sigo_companion/internal/webhook"
	"github.com/sirupsen/logrus"
)

// DraftFields - частичное изменение полей черновика. nil - поле не трогаем.
type DraftFields struct {
	Address        *string          `json:"address,omitempty"`
	ReferencePoint *string          `json:"reference_point,omitempty"`
	Priority       *models.Priority `json:"priority,omitempty"`
	Description    *string          `json:"description,omitempty"`
	VehicleCode    *string          `json:"vehicle_code,omitempty"`
	Subcategory    *string          `json:"subcategory,omitempty"`
}

// Receipt - итог успешной регистрации
type Receipt struct {
	Protocol           string           `json:"protocol"`
	ProtocolFromServer bool             `json:"protocol_from_server"`
	RegisteredAt       time.Time        `json:"registered_at"`
	Incident           *models.Incident `json:"incident"`
}

type draftService struct {
	store     *DraftStore
	gateway   Gateway
	stats     StatsStore
	publisher webhook.Publisher
	validate  *validator.Validate
	logger    *logrus.Logger
	now       Clock
}

func NewDraftService(store *DraftStore, gw Gateway, stats StatsStore, publisher webhook.Publisher, logger *logrus.Logger, now Clock) DraftService {
	if now == nil {
		now = time.Now
	}
	return &draftService{
		store:     store,
		gateway:   gw,
		stats:     stats,
		publisher: publisher,
		validate:  newDraftValidator(),
		logger:    logger,
		now:       now,
	}
}

func newDraftValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterStructValidation(draftStructLevel, models.Draft{})
	return v
}

// draftStructLevel - правила, зависящие от нескольких полей
func draftStructLevel(sl validator.StructLevel) {
	d := sl.Current().Interface().(models.Draft)

	if d.Category != "" && !d.Category.Valid() {
		sl.ReportError(d.Category, "category", "Category", "category", "")
	}
	if d.Priority != "" && !d.Priority.Valid() {
		sl.ReportError(d.Priority, "priority", "Priority", "priority", "")
	}
	if !d.Category.Valid() {
		return
	}
	switch {
	case d.Subcategory == "" && models.RequiresSubcategory(d.Category):
		sl.ReportError(d.Subcategory, "subcategory", "Subcategory", "required", "")
	case d.Subcategory != "" && !models.HasSubcategory(d.Category, d.Subcategory):
		sl.ReportError(d.Subcategory, "subcategory", "Subcategory", "subcategory", "")
	}
}

// NewDraft создает пустой черновик
func (s *draftService) NewDraft(ctx context.Context) (*models.Draft, error) {
	draft := &models.Draft{ID: uuid.New(), Photos: []models.Photo{}}
	log := s.logger.WithFields(logrus.Fields{
		"service":  "draft",
		"method":   "NewDraft",
		"draft_id": draft.ID,
	})

	if err := s.store.repo.Create(ctx, draft); err != nil {
		log.WithError(err).Error("Failed to create draft in repository")
		return nil, fmt.Errorf("service: could not create draft: %w", err)
	}
	log.Info("Draft created")
	return draft, nil
}

// GetDraft возвращает черновик
func (s *draftService) GetDraft(ctx context.Context, id uuid.UUID) (*models.Draft, error) {
	draft, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get draft: %w", err)
	}
	return draft, nil
}

// UpdateFields применяет ввод пользователя
func (s *draftService) UpdateFields(ctx context.Context, id uuid.UUID, fields DraftFields) (*models.Draft, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "draft",
		"method":   "UpdateFields",
		"draft_id": id,
	})

	draft, err := s.store.Mutate(ctx, id, func(d *models.Draft) error {
		if fields.Priority != nil && *fields.Priority != "" && !fields.Priority.Valid() {
			return &ValidationError{InvalidFields: []string{"priority"}}
		}
		if fields.Subcategory != nil && *fields.Subcategory != "" && !models.HasSubcategory(d.Category, *fields.Subcategory) {
			return &ValidationError{InvalidFields: []string{"subcategory"}}
		}
		applyFields(d, fields)
		return nil
	})
	if err != nil {
		log.WithError(err).Warn("Failed to update draft fields")
		return nil, fmt.Errorf("service: could not update draft: %w", err)
	}
	return draft, nil
}

func applyFields(d *models.Draft, f DraftFields) {
	if f.Address != nil {
		d.Address = *f.Address
	}
	if f.ReferencePoint != nil {
		d.ReferencePoint = *f.ReferencePoint
	}
	if f.Priority != nil {
		d.Priority = *f.Priority
	}
	if f.Description != nil {
		d.Description = *f.Description
	}
	if f.VehicleCode != nil {
		d.VehicleCode = *f.VehicleCode
	}
	if f.Subcategory != nil {
		d.Subcategory = *f.Subcategory
	}
}

// SelectCategory меняет категорию и сбрасывает подкатегорию
func (s *draftService) SelectCategory(ctx context.Context, id uuid.UUID, category models.Category) (*models.Draft, error) {
	if category != "" && !category.Valid() {
		return nil, &ValidationError{InvalidFields: []string{"category"}}
	}
	draft, err := s.store.Mutate(ctx, id, func(d *models.Draft) error {
		d.Category = category
		d.Subcategory = ""
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("service: could not select category: %w", err)
	}
	return draft, nil
}

// SubcategoryOptions - варианты подкатегории для категории
func (s *draftService) SubcategoryOptions(category models.Category) ([]models.Option, error) {
	if !category.Valid() {
		return nil, &ValidationError{InvalidFields: []string{"category"}}
	}
	return models.SubcategoryOptions(category), nil
}

// RemovePhoto удаляет фотографию по индексу
func (s *draftService) RemovePhoto(ctx context.Context, id uuid.UUID, index int) (*models.Draft, error) {
	draft, err := s.store.Mutate(ctx, id, func(d *models.Draft) error {
		if index < 0 || index >= len(d.Photos) {
			return &ValidationError{InvalidFields: []string{"photo_index"}}
		}
		d.Photos = append(d.Photos[:index:index], d.Photos[index+1:]...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("service: could not remove photo: %w", err)
	}
	return draft, nil
}

// ClearSignature убирает подпись
func (s *draftService) ClearSignature(ctx context.Context, id uuid.UUID) (*models.Draft, error) {
	draft, err := s.store.Mutate(ctx, id, func(d *models.Draft) error {
		d.SignatureImage = ""
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("service: could not clear signature: %w", err)
	}
	return draft, nil
}

// Validate проверяет обязательные поля
func (s *draftService) Validate(draft *models.Draft) error {
	err := s.validate.Struct(draft)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("service: could not validate draft: %w", err)
	}
	out := &ValidationError{}
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			out.MissingFields = append(out.MissingFields, fe.Field())
		} else {
			out.InvalidFields = append(out.InvalidFields, fe.Field())
		}
	}
	return out
}

// Submit отправляет черновик на бэкенд
func (s *draftService) Submit(ctx context.Context, id uuid.UUID) (*Receipt, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "draft",
		"method":   "Submit",
		"draft_id": id,
	})

	unlock := s.store.lock(id)
	defer unlock()

	draft, err := s.store.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get draft: %w", err)
	}
	if err := s.Validate(draft); err != nil {
		log.WithError(err).Info("Draft rejected by local validation")
		return nil, err
	}

	submittedAt := s.now()
	log.Info("Submitting draft to backend")
	incident, err := s.gateway.Create(ctx, gateway.PayloadFromDraft(draft))
	if err != nil {
		log.WithError(err).Warn("Backend rejected draft, offline export available")
		return nil, &SubmitFailedError{DraftID: id, Err: err}
	}

	receipt := s.receipt(incident, submittedAt)
	log = log.WithFields(logrus.Fields{"protocol": receipt.Protocol, "incident_id": incident.ID})

	if err := s.store.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Incident registered but draft could not be discarded")
	}
	if incident.Status.Active() {
		if _, err := s.stats.AddActive(ctx, 1); err != nil {
			log.WithError(err).Warn("Failed to increment active incidents counter")
		}
	}

	event := webhook.NewEvent(webhook.EventIncidentCreated)
	event.IncidentID = incident.ID
	event.DraftID = id.String()
	event.Protocol = receipt.Protocol
	event.Status = incident.Status
	event.Incident = incident
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish incident.created event")
	}

	log.Info("Incident registered")
	return receipt, nil
}

func (s *draftService) receipt(incident *models.Incident, submittedAt time.Time) *Receipt {
	registeredAt := s.now()
	if registeredAt.Before(submittedAt) {
		registeredAt = submittedAt
	}
	r := &Receipt{
		Protocol:           incident.Protocol,
		ProtocolFromServer: incident.Protocol != "",
		RegisteredAt:       registeredAt,
		Incident:           incident,
	}
	if !r.ProtocolFromServer {
		r.Protocol = clientProtocol(registeredAt)
	}
	return r
}

// clientProtocol - локальный номер вида 2025-1A2B3C4D, не подтверждённый сервером
func clientProtocol(t time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%d-%s", t.Year(), strings.ToUpper(suffix))
}

// Discard удаляет черновик
func (s *draftService) Discard(ctx context.Context, id uuid.UUID) error {
	unlock := s.store.lock(id)
	defer unlock()

	if err := s.store.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service: could not discard draft: %w", err)
	}
	s.logger.WithFields(logrus.Fields{
		"service":  "draft",
		"method":   "Discard",
		"draft_id": id,
	}).Info("Draft discarded")
	return nil
}
