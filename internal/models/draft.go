package models

import (
	"time"

	"github.com/google/uuid"
)

// Photo - фотография, прикреплённая к черновику.
// Data хранится в base64, чтобы её можно было встроить в офлайн-документ.
type Photo struct {
	URI        string `json:"uri"`
	Base64Data string `json:"base64_data"`
	MimeType   string `json:"mime_type"`
}

// Draft - незавершённая регистрация ocorrência
type Draft struct {
	ID             uuid.UUID    `json:"id"`
	Address        string       `json:"address" validate:"required"`
	ReferencePoint string       `json:"reference_point"`
	Category       Category     `json:"category" validate:"required"`
	Subcategory    string       `json:"subcategory"`
	Priority       Priority     `json:"priority" validate:"required"`
	Description    string       `json:"description"`
	VehicleCode    string       `json:"vehicle_code" validate:"required"`
	Coordinates    *Coordinates `json:"coordinates,omitempty"`
	Photos         []Photo      `json:"photos"`
	SignatureImage string       `json:"signature_image,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// Clone возвращает независимую копию черновика
func (d *Draft) Clone() *Draft {
	c := *d
	if d.Coordinates != nil {
		coords := *d.Coordinates
		c.Coordinates = &coords
	}
	if d.Photos != nil {
		c.Photos = append(make([]Photo, 0, len(d.Photos)), d.Photos...)
	}
	return &c
}
