package v1

import (
	"github.com/shenikar/sigo_companion/internal/capture"
	"github.com/shenikar/sigo_companion/internal/models"
	"github.com/shenikar/sigo_companion/internal/reconcile"
	"github.com/shenikar/sigo_companion/internal/service"
)

// DTOToDraftFields преобразует запрос в частичное изменение черновика
func DTOToDraftFields(dto UpdateDraftRequest) service.DraftFields {
	fields := service.DraftFields{
		Address:        dto.Address,
		ReferencePoint: dto.ReferencePoint,
		Description:    dto.Description,
		VehicleCode:    dto.VehicleCode,
		Subcategory:    dto.Subcategory,
	}
	if dto.Priority != nil {
		p := models.Priority(*dto.Priority)
		fields.Priority = &p
	}
	return fields
}

func coordinatesDTO(c *models.Coordinates) *CoordinatesDTO {
	if c == nil {
		return nil
	}
	return &CoordinatesDTO{Latitude: c.Latitude, Longitude: c.Longitude}
}

// ModelToDraftResponse преобразует черновик в DTO для ответа
func ModelToDraftResponse(d *models.Draft) *DraftResponse {
	photos := make([]PhotoResponse, len(d.Photos))
	for i, p := range d.Photos {
		photos[i] = PhotoResponse{URI: p.URI, DataURI: capture.DataURI(p), MimeType: p.MimeType}
	}
	return &DraftResponse{
		ID:             d.ID,
		Address:        d.Address,
		ReferencePoint: d.ReferencePoint,
		Category:       string(d.Category),
		Subcategory:    d.Subcategory,
		Priority:       string(d.Priority),
		Description:    d.Description,
		VehicleCode:    d.VehicleCode,
		Coordinates:    coordinatesDTO(d.Coordinates),
		Photos:         photos,
		SignatureImage: d.SignatureImage,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(m *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:             m.ID,
		Protocol:       m.Protocol,
		Category:       string(m.Category),
		Subcategory:    m.Subcategory,
		Priority:       string(m.Priority),
		Description:    m.Description,
		Address:        m.Address,
		ReferencePoint: m.ReferencePoint,
		VehicleCode:    m.VehicleCode,
		Coordinates:    coordinatesDTO(m.Coordinates),
		Status:         string(m.Status),
		CreatedAt:      m.CreatedAt,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(items []models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(items))
	for i := range items {
		responses[i] = ModelToIncidentResponse(&items[i])
	}
	return responses
}

// ReceiptToResponse преобразует итог регистрации
func ReceiptToResponse(r *service.Receipt) *ReceiptResponse {
	return &ReceiptResponse{
		Protocol:           r.Protocol,
		ProtocolFromServer: r.ProtocolFromServer,
		RegisteredAt:       r.RegisteredAt,
		Incident:           ModelToIncidentResponse(r.Incident),
	}
}

// ModelToUserResponse преобразует профиль
func ModelToUserResponse(u *models.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Role:      u.Role,
		Matricula: u.Matricula,
		Email:     u.Email,
		Phone:     u.Phone,
	}
}

// ApplyIncidentEdit переносит поля запроса в сессию редактирования
func ApplyIncidentEdit(dto UpdateIncidentRequest, session *reconcile.EditSession) {
	if dto.Description != nil {
		session.Description = *dto.Description
	}
	if dto.Address != nil {
		session.Address = *dto.Address
	}
	if dto.ReferencePoint != nil {
		session.ReferencePoint = *dto.ReferencePoint
	}
	if dto.Priority != nil {
		session.Priority = models.Priority(*dto.Priority)
	}
}
