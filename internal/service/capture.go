package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shenikar/sigo_companion/internal/capture"
	"github.com/shenikar/sigo_companion/internal/models"
	"github.com/sirupsen/logrus"
)

type captureService struct {
	store    *DraftStore
	geocoder Geocoder
	encoder  PhotoEncoder
	logger   *logrus.Logger
}

func NewCaptureService(store *DraftStore, geocoder Geocoder, encoder PhotoEncoder, logger *logrus.Logger) CaptureService {
	return &captureService{
		store:    store,
		geocoder: geocoder,
		encoder:  encoder,
		logger:   logger,
	}
}

// CaptureLocation получает координаты и, если адрес пуст, подставляет адрес из геокодера.
// Ожидание GPS и геокодера идёт вне блокировки черновика.
func (s *captureService) CaptureLocation(ctx context.Context, id uuid.UUID, device capture.Device) (*models.Draft, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "capture",
		"method":   "CaptureLocation",
		"draft_id": id,
	})

	if _, err := s.store.Get(ctx, id); err != nil {
		return nil, fmt.Errorf("service: could not get draft: %w", err)
	}
	if err := capture.Require(ctx, device, capture.CapabilityLocation); err != nil {
		log.WithError(err).Info("Location capture aborted")
		return nil, err
	}
	coords, err := device.CurrentPosition(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to acquire current position")
		return nil, fmt.Errorf("service: could not acquire position: %w", err)
	}

	address := ""
	if s.geocoder != nil {
		address, err = s.geocoder.ReverseGeocode(ctx, coords)
		if err != nil {
			log.WithError(err).Warn("Reverse geocoding failed, keeping coordinates only")
			address = ""
		}
	}

	draft, err := s.store.Mutate(ctx, id, func(d *models.Draft) error {
		c := coords
		d.Coordinates = &c
		// адрес, введённый пользователем, не перезаписываем
		if d.Address == "" && address != "" {
			d.Address = address
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("service: could not store location: %w", err)
	}
	log.WithFields(logrus.Fields{"lat": coords.Latitude, "lon": coords.Longitude}).Info("Location captured")
	return draft, nil
}

// CapturePhoto добавляет фотографию с камеры или из галереи
func (s *captureService) CapturePhoto(ctx context.Context, id uuid.UUID, device capture.Device, source capture.ImageSource) (*models.Draft, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "capture",
		"method":   "CapturePhoto",
		"draft_id": id,
		"source":   source,
	})

	if _, err := s.store.Get(ctx, id); err != nil {
		return nil, fmt.Errorf("service: could not get draft: %w", err)
	}
	if err := capture.Require(ctx, device, source.Capability()); err != nil {
		log.WithError(err).Info("Photo capture aborted")
		return nil, err
	}
	raw, err := device.AcquireImage(ctx, source)
	if err != nil {
		log.WithError(err).Warn("Failed to acquire image")
		return nil, fmt.Errorf("service: could not acquire image: %w", err)
	}
	photo, err := s.encoder.Encode(raw)
	if err != nil {
		log.WithError(err).Warn("Failed to encode image")
		return nil, fmt.Errorf("service: could not encode image: %w", err)
	}

	draft, err := s.store.Mutate(ctx, id, func(d *models.Draft) error {
		d.Photos = append(d.Photos, photo)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("service: could not store photo: %w", err)
	}
	log.WithField("photos", len(draft.Photos)).Info("Photo captured")
	return draft, nil
}

// CaptureSignature подтверждает подпись и сохраняет её в черновик
func (s *captureService) CaptureSignature(ctx context.Context, id uuid.UUID, pad *capture.SignaturePad) (*models.Draft, error) {
	if _, err := s.store.Get(ctx, id); err != nil {
		return nil, fmt.Errorf("service: could not get draft: %w", err)
	}
	uri, err := pad.Confirm()
	if err != nil {
		return nil, err
	}
	draft, err := s.store.Mutate(ctx, id, func(d *models.Draft) error {
		d.SignatureImage = uri
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("service: could not store signature: %w", err)
	}
	s.logger.WithFields(logrus.Fields{
		"service":  "capture",
		"method":   "CaptureSignature",
		"draft_id": id,
	}).Info("Signature captured")
	return draft, nil
}
