package v1

import (
	"context"
	"encoding/base64"
	"errors"

	"github.com/shenikar/sigo_companion/internal/capture"
	"github.com/shenikar/sigo_companion/internal/models"
)

var errNoReading = errors.New("device reported no reading")

// reportedDevice - capture.Device поверх того, что интерфейс уже получил от устройства
type reportedDevice struct {
	granted  map[capture.Capability]bool
	position *models.Coordinates
	image    *capture.RawImage
}

func (d *reportedDevice) RequestPermission(_ context.Context, c capture.Capability) (bool, error) {
	return d.granted[c], nil
}

func (d *reportedDevice) CurrentPosition(context.Context) (models.Coordinates, error) {
	if d.position == nil {
		return models.Coordinates{}, errNoReading
	}
	return *d.position, nil
}

func (d *reportedDevice) AcquireImage(context.Context, capture.ImageSource) (capture.RawImage, error) {
	if d.image == nil {
		return capture.RawImage{}, errNoReading
	}
	return *d.image, nil
}

func deviceFromLocation(r LocationReportRequest) *reportedDevice {
	d := &reportedDevice{granted: map[capture.Capability]bool{capture.CapabilityLocation: r.PermissionGranted}}
	if r.Latitude != nil && r.Longitude != nil {
		d.position = &models.Coordinates{Latitude: *r.Latitude, Longitude: *r.Longitude}
	}
	return d
}

func deviceFromPhoto(r PhotoReportRequest) (*reportedDevice, error) {
	source := capture.ImageSource(r.Source)
	d := &reportedDevice{granted: map[capture.Capability]bool{source.Capability(): r.PermissionGranted}}
	if r.Data != "" {
		data, err := base64.StdEncoding.DecodeString(r.Data)
		if err != nil {
			return nil, err
		}
		d.image = &capture.RawImage{URI: r.URI, Data: data}
	}
	return d, nil
}
