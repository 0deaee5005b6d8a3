package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/sigo_companion/internal/capture"
)

// LoginRequest DTO для входа
// @Description Учётные данные сотрудника на бэкенде SIGO
type LoginRequest struct {
	Matricula string `json:"matricula" validate:"required"`
	Password  string `json:"password" validate:"required"`
}

// UserResponse DTO профиля
// @Description Профиль текущего сотрудника
type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Matricula string `json:"matricula"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// UpdateDraftRequest DTO для частичного изменения черновика
// @Description Поля, отсутствующие в запросе, не меняются
type UpdateDraftRequest struct {
	Address        *string `json:"address,omitempty" validate:"omitempty,max=500"`
	ReferencePoint *string `json:"reference_point,omitempty" validate:"omitempty,max=500"`
	Priority       *string `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
	Description    *string `json:"description,omitempty" validate:"omitempty,max=4000"`
	VehicleCode    *string `json:"vehicle_code,omitempty" validate:"omitempty,max=32"`
	Subcategory    *string `json:"subcategory,omitempty"`
}

// SelectCategoryRequest DTO выбора категории
type SelectCategoryRequest struct {
	Category string `json:"category" validate:"required,oneof=fire traffic_accident medical_emergency rescue other"`
}

// LocationReportRequest DTO результата запроса геопозиции на устройстве
// @Description Разрешение и координаты, полученные интерфейсом
type LocationReportRequest struct {
	PermissionGranted bool     `json:"permission_granted"`
	Latitude          *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude         *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
}

// PhotoReportRequest DTO фотографии с камеры или из галереи
// @Description Data - исходное изображение в base64
type PhotoReportRequest struct {
	Source            string `json:"source" validate:"required,oneof=camera gallery"`
	PermissionGranted bool   `json:"permission_granted"`
	URI               string `json:"uri,omitempty"`
	Data              string `json:"data,omitempty" validate:"omitempty,base64"`
}

// SignatureRequest DTO штрихов подписи
type SignatureRequest struct {
	Width   int              `json:"width" validate:"gte=0,lte=4096"`
	Height  int              `json:"height" validate:"gte=0,lte=4096"`
	Strokes []capture.Stroke `json:"strokes" validate:"max=200,dive,max=5000"`
}

// PhotoResponse DTO фотографии черновика
type PhotoResponse struct {
	URI      string `json:"uri"`
	DataURI  string `json:"data_uri"`
	MimeType string `json:"mime_type"`
}

// CoordinatesDTO DTO координат
type CoordinatesDTO struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// DraftResponse DTO черновика
// @Description Текущее состояние формы регистрации
type DraftResponse struct {
	ID             uuid.UUID       `json:"id"`
	Address        string          `json:"address"`
	ReferencePoint string          `json:"reference_point"`
	Category       string          `json:"category"`
	Subcategory    string          `json:"subcategory"`
	Priority       string          `json:"priority"`
	Description    string          `json:"description"`
	VehicleCode    string          `json:"vehicle_code"`
	Coordinates    *CoordinatesDTO `json:"coordinates,omitempty"`
	Photos         []PhotoResponse `json:"photos"`
	SignatureImage string          `json:"signature_image,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// IncidentResponse DTO ocorrência
// @Description Ocorrência в том виде, в каком её вернул бэкенд
type IncidentResponse struct {
	ID             string          `json:"id"`
	Protocol       string          `json:"protocol,omitempty"`
	Category       string          `json:"category"`
	Subcategory    string          `json:"subcategory"`
	Priority       string          `json:"priority"`
	Description    string          `json:"description"`
	Address        string          `json:"address"`
	ReferencePoint string          `json:"reference_point"`
	VehicleCode    string          `json:"vehicle_code"`
	Coordinates    *CoordinatesDTO `json:"coordinates,omitempty"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
}

// ReceiptResponse DTO успешной регистрации
// @Description protocol_from_server=false - номер сгенерирован локально
type ReceiptResponse struct {
	Protocol           string            `json:"protocol"`
	ProtocolFromServer bool              `json:"protocol_from_server"`
	RegisteredAt       time.Time         `json:"registered_at"`
	Incident           *IncidentResponse `json:"incident"`
}

// ChangeStatusRequest DTO смены статуса
type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// UpdateIncidentRequest DTO редактирования ocorrência
// @Description Можно менять описание, адрес, ориентир и приоритет
type UpdateIncidentRequest struct {
	Description    *string `json:"description,omitempty"`
	Address        *string `json:"address,omitempty"`
	ReferencePoint *string `json:"reference_point,omitempty"`
	Priority       *string `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
}

// StatsResponse DTO для ответа со статистикой
// @Description Число незавершённых ocorrências
type StatsResponse struct {
	ActiveIncidents int `json:"active_incidents"`
}

// ThemeQuery параметры темы
type ThemeQuery struct {
	DarkMode     bool    `form:"dark_mode"`
	HighContrast bool    `form:"high_contrast"`
	FontScale    float64 `form:"font_scale"`
}
