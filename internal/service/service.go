package service

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/sigo_companion/internal/capture"
	"github.com/shenikar/sigo_companion/internal/gateway"
	"github.com/shenikar/sigo_companion/internal/models"
	"github.com/shenikar/sigo_companion/internal/offline"
	"github.com/shenikar/sigo_companion/internal/reconcile"
	"github.com/shenikar/sigo_companion/internal/share"
)

// ErrDraftNotFound - черновика с таким id нет
var ErrDraftNotFound = errors.New("draft not found")

// ErrIncidentNotFound - ocorrência нет в локальном списке
var ErrIncidentNotFound = errors.New("incident not found")

// Gateway определяет контракт внешнего бэкенда SIGO
type Gateway interface {
	Login(ctx context.Context, matricula, password string) error
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)
	ListForCurrentUser(ctx context.Context) ([]models.Incident, error)
	Create(ctx context.Context, payload gateway.CreatePayload) (*models.Incident, error)
	SetStatus(ctx context.Context, id string, status models.Status) (*models.Incident, error)
	Update(ctx context.Context, id string, patch models.IncidentPatch) (*models.Incident, error)
	Delete(ctx context.Context, id string) error
}

// DraftRepository определяет контракт хранения черновиков
type DraftRepository interface {
	Create(ctx context.Context, draft *models.Draft) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Draft, error)
	Update(ctx context.Context, draft *models.Draft) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// StatsStore - счётчик незавершённых ocorrências
type StatsStore interface {
	ActiveCount(ctx context.Context) (int, error)
	AddActive(ctx context.Context, delta int) (int, error)
	ResetActive(ctx context.Context, n int) error
}

// Geocoder - обратное геокодирование
type Geocoder interface {
	ReverseGeocode(ctx context.Context, coords models.Coordinates) (string, error)
}

// PDFPrinter печатает HTML в PDF
type PDFPrinter interface {
	Print(ctx context.Context, html string) ([]byte, error)
}

// Sharer передаёт готовый документ платформенному механизму экспорта
type Sharer interface {
	Share(ctx context.Context, req *share.Request) (*share.Result, error)
}

// DraftService - контроллер формы регистрации
type DraftService interface {
	NewDraft(ctx context.Context) (*models.Draft, error)
	GetDraft(ctx context.Context, id uuid.UUID) (*models.Draft, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields DraftFields) (*models.Draft, error)
	SelectCategory(ctx context.Context, id uuid.UUID, category models.Category) (*models.Draft, error)
	SubcategoryOptions(category models.Category) ([]models.Option, error)
	RemovePhoto(ctx context.Context, id uuid.UUID, index int) (*models.Draft, error)
	ClearSignature(ctx context.Context, id uuid.UUID) (*models.Draft, error)
	Validate(draft *models.Draft) error
	Submit(ctx context.Context, id uuid.UUID) (*Receipt, error)
	Discard(ctx context.Context, id uuid.UUID) error
}

// CaptureService - сбор геопозиции, фотографий и подписи
type CaptureService interface {
	CaptureLocation(ctx context.Context, id uuid.UUID, device capture.Device) (*models.Draft, error)
	CapturePhoto(ctx context.Context, id uuid.UUID, device capture.Device, source capture.ImageSource) (*models.Draft, error)
	CaptureSignature(ctx context.Context, id uuid.UUID, pad *capture.SignaturePad) (*models.Draft, error)
}

// OfflineService - офлайн-документ для черновика
type OfflineService interface {
	Export(ctx context.Context, id uuid.UUID) (*share.Result, error)
}

// LifecycleService - список ocorrências и оптимистичная смена статуса
type LifecycleService interface {
	Reload(ctx context.Context) ([]models.Incident, error)
	Incidents(ctx context.Context) ([]models.Incident, error)
	ChangeStatus(ctx context.Context, id string, status models.Status) (*models.Incident, error)
	Delete(ctx context.Context, id string) error
	BeginEdit(ctx context.Context, id string) (*reconcile.EditSession, error)
	SaveEdit(ctx context.Context, session *reconcile.EditSession) (*models.Incident, error)
	ActiveCount(ctx context.Context) (int, error)
}

// SessionService - сессия сотрудника на бэкенде
type SessionService interface {
	Login(ctx context.Context, matricula, password string) (*models.User, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*models.User, error)
	LastKnownUser() *models.User
}

// DocumentRenderer рендерит офлайн-документ в HTML
type DocumentRenderer interface {
	Render(doc offline.Document) (string, error)
}

// PhotoEncoder готовит фотографию к встраиванию
type PhotoEncoder interface {
	Encode(raw capture.RawImage) (models.Photo, error)
}

// Clock - источник времени, подменяется в тестах
type Clock func() time.Time
