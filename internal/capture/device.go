package capture

import (
	"context"
	"errors"
	"fmt"

	"github.com/shenikar/sigo_companion/internal/models"
)

// Capability - возможность устройства, требующая разрешения
type Capability string

const (
	CapabilityLocation Capability = "location"
	CapabilityCamera   Capability = "camera"
	CapabilityGallery  Capability = "gallery"
)

// ImageSource - откуда брать фотографию
type ImageSource string

const (
	SourceCamera  ImageSource = "camera"
	SourceGallery ImageSource = "gallery"
)

// Capability возвращает разрешение, нужное для источника
func (s ImageSource) Capability() Capability {
	if s == SourceGallery {
		return CapabilityGallery
	}
	return CapabilityCamera
}

// ErrPermissionDenied - пользователь отказал в доступе
var ErrPermissionDenied = errors.New("permission denied")

// PermissionError - отказ в конкретном разрешении
type PermissionError struct {
	Capability Capability
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("%s permission denied", e.Capability)
}

func (e *PermissionError) Is(target error) bool { return target == ErrPermissionDenied }

// RawImage - изображение в том виде, в каком его вернуло устройство
type RawImage struct {
	URI  string
	Data []byte
}

// Device - асинхронные возможности устройства. Каждый вызов - отдельная точка ожидания.
type Device interface {
	RequestPermission(ctx context.Context, capability Capability) (bool, error)
	CurrentPosition(ctx context.Context) (models.Coordinates, error)
	AcquireImage(ctx context.Context, source ImageSource) (RawImage, error)
}

// Require запрашивает разрешение и превращает отказ в PermissionError
func Require(ctx context.Context, d Device, capability Capability) error {
	granted, err := d.RequestPermission(ctx, capability)
	if err != nil {
		return fmt.Errorf("request %s permission: %w", capability, err)
	}
	if !granted {
		return &PermissionError{Capability: capability}
	}
	return nil
}
