package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/shenikar/sigo_companion/internal/gateway"
	"github.com/shenikar/sigo_companion/internal/models"
	"github.com/shenikar/sigo_companion/internal/service"
	"github.com/shenikar/sigo_companion/internal/service/mocks"
	webhook_mocks "github.com/shenikar/sigo_companion/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestLifecycleService(t *testing.T) (service.LifecycleService, *mocks.MockGateway, *mocks.MockStatsStore, *webhook_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)
	stats := mocks.NewMockStatsStore(ctrl)
	publisher := webhook_mocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	return service.NewLifecycleService(gw, stats, publisher, logger), gw, stats, publisher
}

func serverIncidents() []models.Incident {
	return []models.Incident{
		{ID: "1", Status: models.StatusOpen, Description: "fumaça"},
		{ID: "2", Status: models.StatusInProgress},
		{ID: "3", Status: models.StatusFinished},
	}
}

func statusOf(t *testing.T, incidents []models.Incident, id string) models.Status {
	t.Helper()
	for _, inc := range incidents {
		if inc.ID == id {
			return inc.Status
		}
	}
	t.Fatalf("incident %s not in list", id)
	return ""
}

func TestReload_ResetsActiveCounter(t *testing.T) {
	svc, gw, stats, _ := newTestLifecycleService(t)
	ctx := context.Background()

	gw.EXPECT().ListForCurrentUser(gomock.Any()).Return(serverIncidents(), nil).Times(1)
	stats.EXPECT().ResetActive(gomock.Any(), 2).Return(nil).Times(1)

	incidents, err := svc.Reload(ctx)
	require.NoError(t, err)
	assert.Len(t, incidents, 3)

	// второй вызов берёт локальный список
	cached, err := svc.Incidents(ctx)
	require.NoError(t, err)
	assert.Equal(t, incidents, cached)
}

func TestReload_Unauthenticated(t *testing.T) {
	svc, gw, _, _ := newTestLifecycleService(t)

	gw.EXPECT().ListForCurrentUser(gomock.Any()).
		Return(nil, &gateway.FetchError{Reason: gateway.ReasonUnauthenticated, Err: gateway.ErrUnauthenticated})

	_, err := svc.Incidents(context.Background())
	assert.True(t, gateway.IsUnauthenticated(err))
}

func TestChangeStatus_OptimisticThenConfirmed(t *testing.T) {
	svc, gw, stats, publisher := newTestLifecycleService(t)
	ctx := context.Background()

	gw.EXPECT().ListForCurrentUser(gomock.Any()).Return(serverIncidents(), nil)
	stats.EXPECT().ResetActive(gomock.Any(), 2).Return(nil)
	gw.EXPECT().SetStatus(gomock.Any(), "1", models.StatusInProgress).
		DoAndReturn(func(ctx context.Context, id string, s models.Status) (*models.Incident, error) {
			// пока запрос в пути, локальный список уже показывает новый статус
			local, err := svc.Incidents(ctx)
			require.NoError(t, err)
			assert.Equal(t, models.StatusInProgress, statusOf(t, local, "1"))
			return &models.Incident{ID: id, Status: s, Description: "fumaça"}, nil
		})
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
	// Aberta -> Em Andamento не меняет счётчик

	inc, err := svc.ChangeStatus(ctx, "1", models.StatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, inc.Status)
}

func TestChangeStatus_AckResponseKeepsCachedFields(t *testing.T) {
	svc, gw, stats, publisher := newTestLifecycleService(t)
	ctx := context.Background()

	gw.EXPECT().ListForCurrentUser(gomock.Any()).Return(serverIncidents(), nil)
	stats.EXPECT().ResetActive(gomock.Any(), 2).Return(nil)
	// сервер ответил только подтверждением без полей ocorrência
	gw.EXPECT().SetStatus(gomock.Any(), "1", models.StatusInProgress).
		Return(&models.Incident{ID: "1", Status: models.StatusInProgress}, nil)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	inc, err := svc.ChangeStatus(ctx, "1", models.StatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, "fumaça", inc.Description)

	local, err := svc.Incidents(ctx)
	require.NoError(t, err)
	for _, i := range local {
		if i.ID == "1" {
			assert.Equal(t, "fumaça", i.Description)
			assert.Equal(t, models.StatusInProgress, i.Status)
		}
	}
}

func TestChangeStatus_RejectsOverlappingChange(t *testing.T) {
	svc, gw, stats, publisher := newTestLifecycleService(t)
	ctx := context.Background()

	gw.EXPECT().ListForCurrentUser(gomock.Any()).Return(serverIncidents(), nil)
	stats.EXPECT().ResetActive(gomock.Any(), 2).Return(nil)
	gw.EXPECT().SetStatus(gomock.Any(), "2", models.StatusFinished).
		DoAndReturn(func(ctx context.Context, id string, s models.Status) (*models.Incident, error) {
			// вторая смена статуса, пока первая не подтверждена
			_, err := svc.ChangeStatus(ctx, "2", models.StatusOpen)
			assert.ErrorIs(t, err, service.ErrStatusChangeInProgress)
			return &models.Incident{ID: id, Status: s}, nil
		}).Times(1)
	stats.EXPECT().AddActive(gomock.Any(), -1).Return(1, nil).Times(1)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	inc, err := svc.ChangeStatus(ctx, "2", models.StatusFinished)
	require.NoError(t, err)
	assert.Equal(t, models.StatusFinished, inc.Status)
}

func TestChangeStatus_FinishingDecrementsOnConfirmation(t *testing.T) {
	svc, gw, stats, publisher := newTestLifecycleService(t)
	ctx := context.Background()

	gw.EXPECT().ListForCurrentUser(gomock.Any()).Return(serverIncidents(), nil)
	stats.EXPECT().ResetActive(gomock.Any(), 2).Return(nil)
	gw.EXPECT().SetStatus(gomock.Any(), "2", models.StatusFinished).Return(&models.Incident{ID: "2"}, nil)
	stats.EXPECT().AddActive(gomock.Any(), -1).Return(1, nil).Times(1)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	inc, err := svc.ChangeStatus(ctx, "2", models.StatusFinished)
	require.NoError(t, err)
	assert.Equal(t, models.StatusFinished, inc.Status)
}

func TestChangeStatus_ReopenIncrements(t *testing.T) {
	svc, gw, stats, publisher := newTestLifecycleService(t)
	ctx := context.Background()

	gw.EXPECT().ListForCurrentUser(gomock.Any()).Return(serverIncidents(), nil)
	stats.EXPECT().ResetActive(gomock.Any(), 2).Return(nil)
	gw.EXPECT().SetStatus(gomock.Any(), "3", models.StatusOpen).Return(&models.Incident{ID: "3", Status: models.StatusOpen}, nil)
	stats.EXPECT().AddActive(gomock.Any(), 1).Return(3, nil).Times(1)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.ChangeStatus(ctx, "3", models.StatusOpen)
	require.NoError(t, err)
}

func TestChangeStatus_FailureRollsBackAndReloads(t *testing.T) {
	svc, gw, stats, _ := newTestLifecycleService(t)
	ctx := context.Background()

	gomock.InOrder(
		gw.EXPECT().ListForCurrentUser(gomock.Any()).Return(serverIncidents(), nil),
		gw.EXPECT().SetStatus(gomock.Any(), "1", models.StatusInProgress).
			Return(nil, &gateway.UpdateError{ID: "1", StatusCode: 500, ServerMessage: "erro"}),
		gw.EXPECT().ListForCurrentUser(gomock.Any()).Return(serverIncidents(), nil),
	)
	stats.EXPECT().ResetActive(gomock.Any(), 2).Return(nil).Times(2)
	// AddActive не вызывается: переход не подтверждён

	_, err := svc.ChangeStatus(ctx, "1", models.StatusInProgress)
	var ue *gateway.UpdateError
	require.ErrorAs(t, err, &ue)

	local, err := svc.Incidents(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.StatusOpen, statusOf(t, local, "1"))
}

func TestChangeStatus_UnknownIncident(t *testing.T) {
	svc, gw, stats, _ := newTestLifecycleService(t)

	gw.EXPECT().ListForCurrentUser(gomock.Any()).Return(serverIncidents(), nil)
	stats.EXPECT().ResetActive(gomock.Any(), 2).Return(nil)

	_, err := svc.ChangeStatus(context.Background(), "404", models.StatusFinished)
	assert.ErrorIs(t, err, service.ErrIncidentNotFound)
}

func TestChangeStatus_InvalidStatus(t *testing.T) {
	svc, _, _, _ := newTestLifecycleService(t)

	_, err := svc.ChangeStatus(context.Background(), "1", "Cancelada")
	var verr *service.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestDelete_ActiveIncidentDecrementsOnce(t *testing.T) {
	svc, gw, stats, publisher := newTestLifecycleService(t)
	ctx := context.Background()

	gw.EXPECT().ListForCurrentUser(gomock.Any()).Return(serverIncidents(), nil)
	stats.EXPECT().ResetActive(gomock.Any(), 2).Return(nil)
	gw.EXPECT().Delete(gomock.Any(), "2").Return(nil)
	stats.EXPECT().AddActive(gomock.Any(), -1).Return(1, nil).Times(1)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, svc.Delete(ctx, "2"))

	local, err := svc.Incidents(ctx)
	require.NoError(t, err)
	assert.Len(t, local, 2)
}

func TestDelete_FinishedIncidentKeepsCounter(t *testing.T) {
	svc, gw, stats, publisher := newTestLifecycleService(t)

	gw.EXPECT().ListForCurrentUser(gomock.Any()).Return(serverIncidents(), nil)
	stats.EXPECT().ResetActive(gomock.Any(), 2).Return(nil)
	gw.EXPECT().Delete(gomock.Any(), "3").Return(nil)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
	// AddActive не ожидается

	require.NoError(t, svc.Delete(context.Background(), "3"))
}

func TestDelete_FailureLeavesCache(t *testing.T) {
	svc, gw, stats, _ := newTestLifecycleService(t)
	ctx := context.Background()

	gw.EXPECT().ListForCurrentUser(gomock.Any()).Return(serverIncidents(), nil)
	stats.EXPECT().ResetActive(gomock.Any(), 2).Return(nil)
	gw.EXPECT().Delete(gomock.Any(), "1").Return(&gateway.DeleteError{ID: "1", StatusCode: 403})

	err := svc.Delete(ctx, "1")
	var de *gateway.DeleteError
	require.ErrorAs(t, err, &de)

	local, err := svc.Incidents(ctx)
	require.NoError(t, err)
	assert.Len(t, local, 3)
}

func TestSaveEdit_RoundTrip(t *testing.T) {
	svc, gw, stats, publisher := newTestLifecycleService(t)
	ctx := context.Background()

	updated := serverIncidents()
	updated[0].Description = "X"

	gomock.InOrder(
		gw.EXPECT().ListForCurrentUser(gomock.Any()).Return(serverIncidents(), nil),
		gw.EXPECT().Update(gomock.Any(), "1", gomock.Any()).
			DoAndReturn(func(_ context.Context, id string, p models.IncidentPatch) (*models.Incident, error) {
				require.NotNil(t, p.Description)
				assert.Equal(t, "X", *p.Description)
				assert.Nil(t, p.Address)
				assert.Nil(t, p.Priority)
				return &updated[0], nil
			}),
		gw.EXPECT().ListForCurrentUser(gomock.Any()).Return(updated, nil),
	)
	stats.EXPECT().ResetActive(gomock.Any(), 2).Return(nil).Times(2)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	session, err := svc.BeginEdit(ctx, "1")
	require.NoError(t, err)
	session.Description = "X"

	inc, err := svc.SaveEdit(ctx, session)
	require.NoError(t, err)
	assert.Equal(t, "X", inc.Description)

	local, err := svc.Incidents(ctx)
	require.NoError(t, err)
	assert.Equal(t, "X", local[0].Description)
}

func TestSaveEdit_NoChangesSkipsNetwork(t *testing.T) {
	svc, gw, stats, _ := newTestLifecycleService(t)
	ctx := context.Background()

	gw.EXPECT().ListForCurrentUser(gomock.Any()).Return(serverIncidents(), nil).Times(1)
	stats.EXPECT().ResetActive(gomock.Any(), 2).Return(nil)

	session, err := svc.BeginEdit(ctx, "1")
	require.NoError(t, err)

	inc, err := svc.SaveEdit(ctx, session)
	require.NoError(t, err)
	assert.Equal(t, "fumaça", inc.Description)
}

func TestSaveEdit_Cancelled(t *testing.T) {
	svc, gw, stats, _ := newTestLifecycleService(t)
	ctx := context.Background()

	gw.EXPECT().ListForCurrentUser(gomock.Any()).Return(serverIncidents(), nil)
	stats.EXPECT().ResetActive(gomock.Any(), 2).Return(nil)

	session, err := svc.BeginEdit(ctx, "1")
	require.NoError(t, err)
	session.Description = "rascunho"
	session.Cancel()

	_, err = svc.SaveEdit(ctx, session)
	assert.ErrorIs(t, err, service.ErrEditCancelled)
}

func TestActiveCount(t *testing.T) {
	svc, _, stats, _ := newTestLifecycleService(t)

	stats.EXPECT().ActiveCount(gomock.Any()).Return(4, nil)
	n, err := svc.ActiveCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	stats.EXPECT().ActiveCount(gomock.Any()).Return(0, errors.New("redis down"))
	_, err = svc.ActiveCount(context.Background())
	assert.Error(t, err)
}
