package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shenikar/sigo_companion/internal/capture"
	"github.com/shenikar/sigo_companion/internal/models"
	"github.com/shenikar/sigo_companion/internal/service"
	"github.com/shenikar/sigo_companion/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeDevice struct {
	granted  map[capture.Capability]bool
	position models.Coordinates
	image    capture.RawImage
	err      error
}

func (f *fakeDevice) RequestPermission(_ context.Context, c capture.Capability) (bool, error) {
	return f.granted[c], nil
}

func (f *fakeDevice) CurrentPosition(context.Context) (models.Coordinates, error) {
	return f.position, f.err
}

func (f *fakeDevice) AcquireImage(context.Context, capture.ImageSource) (capture.RawImage, error) {
	return f.image, f.err
}

func newCaptureService(t *testing.T, deps *draftDeps) (service.CaptureService, *mocks.MockGeocoder, *mocks.MockPhotoEncoder) {
	ctrl := gomock.NewController(t)
	geocoder := mocks.NewMockGeocoder(ctrl)
	encoder := mocks.NewMockPhotoEncoder(ctrl)
	return service.NewCaptureService(deps.store, geocoder, encoder, deps.logger), geocoder, encoder
}

var recife = models.Coordinates{Latitude: -8.0476, Longitude: -34.877}

func TestCaptureLocation_FillsEmptyAddress(t *testing.T) {
	deps := newDraftDeps(t)
	svc, geocoder, _ := newCaptureService(t, deps)
	draft := completeDraft()
	draft.Address = ""

	deps.expectLoad(draft).Times(2)
	geocoder.EXPECT().ReverseGeocode(gomock.Any(), recife).Return("Rua da Aurora, 100, Boa Vista, Recife", nil)
	deps.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	device := &fakeDevice{granted: map[capture.Capability]bool{capture.CapabilityLocation: true}, position: recife}
	updated, err := svc.CaptureLocation(context.Background(), draft.ID, device)

	require.NoError(t, err)
	require.NotNil(t, updated.Coordinates)
	assert.Equal(t, recife, *updated.Coordinates)
	assert.Equal(t, "Rua da Aurora, 100, Boa Vista, Recife", updated.Address)
}

func TestCaptureLocation_NeverOverwritesAddress(t *testing.T) {
	deps := newDraftDeps(t)
	svc, geocoder, _ := newCaptureService(t, deps)
	draft := completeDraft()

	deps.expectLoad(draft).Times(2)
	geocoder.EXPECT().ReverseGeocode(gomock.Any(), recife).Return("Outro endereço", nil)
	deps.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	device := &fakeDevice{granted: map[capture.Capability]bool{capture.CapabilityLocation: true}, position: recife}
	updated, err := svc.CaptureLocation(context.Background(), draft.ID, device)

	require.NoError(t, err)
	assert.Equal(t, "Rua A, 10", updated.Address)
	assert.NotNil(t, updated.Coordinates)
}

func TestCaptureLocation_GeocodeFailureIsNotFatal(t *testing.T) {
	deps := newDraftDeps(t)
	svc, geocoder, _ := newCaptureService(t, deps)
	draft := completeDraft()
	draft.Address = ""

	deps.expectLoad(draft).Times(2)
	geocoder.EXPECT().ReverseGeocode(gomock.Any(), recife).Return("", errors.New("quota exceeded"))
	deps.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	device := &fakeDevice{granted: map[capture.Capability]bool{capture.CapabilityLocation: true}, position: recife}
	updated, err := svc.CaptureLocation(context.Background(), draft.ID, device)

	require.NoError(t, err)
	assert.Empty(t, updated.Address)
	assert.Equal(t, recife, *updated.Coordinates)
}

func TestCaptureLocation_PermissionDenied(t *testing.T) {
	deps := newDraftDeps(t)
	svc, _, _ := newCaptureService(t, deps)
	draft := completeDraft()

	deps.expectLoad(draft)
	// без Update: черновик не меняется

	_, err := svc.CaptureLocation(context.Background(), draft.ID, &fakeDevice{})

	assert.ErrorIs(t, err, capture.ErrPermissionDenied)
	var perr *capture.PermissionError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, capture.CapabilityLocation, perr.Capability)
}

func TestCapturePhoto_AppendsInOrder(t *testing.T) {
	deps := newDraftDeps(t)
	svc, _, encoder := newCaptureService(t, deps)
	draft := completeDraft()
	draft.Photos = []models.Photo{{URI: "first"}}

	raw := capture.RawImage{URI: "content://gallery/2", Data: []byte{0xFF}}
	deps.expectLoad(draft).Times(2)
	encoder.EXPECT().Encode(raw).Return(models.Photo{URI: raw.URI, Base64Data: "AAA", MimeType: "image/jpeg"}, nil)
	deps.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	device := &fakeDevice{granted: map[capture.Capability]bool{capture.CapabilityGallery: true}, image: raw}
	updated, err := svc.CapturePhoto(context.Background(), draft.ID, device, capture.SourceGallery)

	require.NoError(t, err)
	require.Len(t, updated.Photos, 2)
	assert.Equal(t, "first", updated.Photos[0].URI)
	assert.Equal(t, raw.URI, updated.Photos[1].URI)
}

func TestCapturePhoto_CameraDenied(t *testing.T) {
	deps := newDraftDeps(t)
	svc, _, _ := newCaptureService(t, deps)
	draft := completeDraft()

	deps.expectLoad(draft)

	// разрешение на галерею не даёт доступа к камере
	device := &fakeDevice{granted: map[capture.Capability]bool{capture.CapabilityGallery: true}}
	_, err := svc.CapturePhoto(context.Background(), draft.ID, device, capture.SourceCamera)

	var perr *capture.PermissionError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, capture.CapabilityCamera, perr.Capability)
}

func TestCapturePhoto_AcquireFailure(t *testing.T) {
	deps := newDraftDeps(t)
	svc, _, _ := newCaptureService(t, deps)
	draft := completeDraft()

	deps.expectLoad(draft)

	device := &fakeDevice{granted: map[capture.Capability]bool{capture.CapabilityCamera: true}, err: errors.New("camera busy")}
	_, err := svc.CapturePhoto(context.Background(), draft.ID, device, capture.SourceCamera)
	assert.ErrorContains(t, err, "camera busy")
}

func TestCaptureSignature(t *testing.T) {
	deps := newDraftDeps(t)
	svc, _, _ := newCaptureService(t, deps)
	draft := completeDraft()

	deps.expectLoad(draft).Times(2)
	deps.repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)

	pad := capture.NewSignaturePad(0, 0)
	require.NoError(t, pad.AddStroke(capture.Stroke{{X: 10, Y: 10}, {X: 120, Y: 60}}))

	updated, err := svc.CaptureSignature(context.Background(), draft.ID, pad)
	require.NoError(t, err)
	assert.Contains(t, updated.SignatureImage, "data:image/png;base64,")
	assert.False(t, pad.IsOpen())
}

func TestCaptureSignature_Empty(t *testing.T) {
	deps := newDraftDeps(t)
	svc, _, _ := newCaptureService(t, deps)
	draft := completeDraft()

	deps.expectLoad(draft)

	_, err := svc.CaptureSignature(context.Background(), draft.ID, capture.NewSignaturePad(0, 0))
	assert.ErrorIs(t, err, capture.ErrEmptySignature)
}
