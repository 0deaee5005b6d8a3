package gateway

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/shenikar/sigo_companion/internal/models"
)

// CreatePayload - тело POST /occurrence/new в формате бэкенда
type CreatePayload struct {
	Category       string     `json:"categoria"`
	Subcategory    string     `json:"subcategoria"`
	Priority       string     `json:"prioridade"`
	Description    string     `json:"descricao"`
	Address        string     `json:"endereco"`
	ReferencePoint string     `json:"ponto_referencia"`
	VehicleCode    string     `json:"codigo_viatura"`
	GPS            [2]float64 `json:"gps"`
	TeamIDs        []string   `json:"id_equipes"`
	UserID         string     `json:"userId"`
}

// PayloadFromDraft собирает тело запроса из черновика.
// Без координат бэкенд ожидает [0, 0].
func PayloadFromDraft(d *models.Draft) CreatePayload {
	p := CreatePayload{
		Category:       string(d.Category),
		Subcategory:    d.Subcategory,
		Priority:       string(d.Priority),
		Description:    d.Description,
		Address:        d.Address,
		ReferencePoint: d.ReferencePoint,
		VehicleCode:    d.VehicleCode,
		TeamIDs:        []string{},
	}
	if d.Coordinates != nil {
		p.GPS = [2]float64{d.Coordinates.Latitude, d.Coordinates.Longitude}
	}
	return p
}

type incidentDTO struct {
	ID             json.RawMessage `json:"id"`
	Protocol       string          `json:"protocolo"`
	Category       string          `json:"categoria"`
	Subcategory    string          `json:"subcategoria"`
	Priority       string          `json:"prioridade"`
	Description    string          `json:"descricao"`
	Address        string          `json:"endereco"`
	ReferencePoint string          `json:"ponto_referencia"`
	VehicleCode    string          `json:"codigo_viatura"`
	GPS            []float64       `json:"gps"`
	Status         string          `json:"status"`
	CreatedAt      string          `json:"createdAt"`
}

type userDTO struct {
	ID        json.RawMessage `json:"id"`
	Name      string          `json:"name"`
	Role      string          `json:"role"`
	Matricula string          `json:"matricula"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone"`
}

type statusRequest struct {
	Status string `json:"status"`
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// decodeID принимает идентификатор строкой или числом
func decodeID(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.Trim(string(raw), `"`)
}

func parseTime(s string) time.Time {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func (d incidentDTO) toModel() models.Incident {
	inc := models.Incident{
		ID:             decodeID(d.ID),
		Protocol:       d.Protocol,
		Category:       models.Category(d.Category),
		Subcategory:    d.Subcategory,
		Priority:       models.Priority(d.Priority),
		Description:    d.Description,
		Address:        d.Address,
		ReferencePoint: d.ReferencePoint,
		VehicleCode:    d.VehicleCode,
		Status:         models.Status(d.Status),
		CreatedAt:      parseTime(d.CreatedAt),
	}
	if inc.Status == "" {
		inc.Status = models.StatusOpen
	}
	if len(d.GPS) == 2 && (d.GPS[0] != 0 || d.GPS[1] != 0) {
		inc.Coordinates = &models.Coordinates{Latitude: d.GPS[0], Longitude: d.GPS[1]}
	}
	return inc
}

// described - тело похоже на ocorrência, а не на подтверждение
func (d incidentDTO) described() bool {
	return decodeID(d.ID) != "" || d.Category != ""
}

func (d userDTO) toModel() *models.User {
	return &models.User{
		ID:        decodeID(d.ID),
		Name:      d.Name,
		Role:      d.Role,
		Matricula: d.Matricula,
		Email:     d.Email,
		Phone:     d.Phone,
	}
}

// incidentFromPayload - ответ на создание без тела: возвращаем то, что отправили
func incidentFromPayload(p CreatePayload) *models.Incident {
	inc := incidentDTO{
		Category:       p.Category,
		Subcategory:    p.Subcategory,
		Priority:       p.Priority,
		Description:    p.Description,
		Address:        p.Address,
		ReferencePoint: p.ReferencePoint,
		VehicleCode:    p.VehicleCode,
		GPS:            p.GPS[:],
	}.toModel()
	return &inc
}

func patchBody(p models.IncidentPatch) map[string]any {
	body := make(map[string]any)
	if p.Description != nil {
		body["descricao"] = *p.Description
	}
	if p.Address != nil {
		body["endereco"] = *p.Address
	}
	if p.ReferencePoint != nil {
		body["ponto_referencia"] = *p.ReferencePoint
	}
	if p.Priority != nil {
		body["prioridade"] = string(*p.Priority)
	}
	return body
}
