package service_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/shenikar/sigo_companion/internal/gateway"
	"github.com/shenikar/sigo_companion/internal/models"
	"github.com/shenikar/sigo_companion/internal/service"
	"github.com/shenikar/sigo_companion/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSession_LoginRemembersUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	svc := service.NewSessionService(gw, logger)
	ctx := context.Background()

	user := &models.User{ID: "42", Name: "Ana Souza", Matricula: "2023.1.0045"}
	gw.EXPECT().Login(gomock.Any(), "2023.1.0045", "secret").Return(nil)
	gw.EXPECT().CurrentUser(gomock.Any()).Return(user, nil)

	assert.Nil(t, svc.LastKnownUser())
	got, err := svc.Login(ctx, "2023.1.0045", "secret")
	require.NoError(t, err)
	assert.Equal(t, user, got)
	assert.Equal(t, user, svc.LastKnownUser())

	// профиль недоступен - последний известный пользователь остаётся
	gw.EXPECT().CurrentUser(gomock.Any()).Return(nil, gateway.ErrUnauthenticated)
	_, err = svc.Me(ctx)
	assert.ErrorIs(t, err, gateway.ErrUnauthenticated)
	assert.Equal(t, "Ana Souza", svc.LastKnownUser().Name)

	gw.EXPECT().Logout(gomock.Any()).Return(nil)
	require.NoError(t, svc.Logout(ctx))
	assert.Nil(t, svc.LastKnownUser())
}

func TestSession_LoginRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	svc := service.NewSessionService(gw, logger)

	gw.EXPECT().Login(gomock.Any(), "x", "y").Return(&gateway.LoginError{StatusCode: 401})

	_, err := svc.Login(context.Background(), "x", "y")
	var le *gateway.LoginError
	assert.ErrorAs(t, err, &le)
}
