package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/shenikar/sigo_companion/internal/models"
	"github.com/sirupsen/logrus"
)

type sessionService struct {
	gateway Gateway
	logger  *logrus.Logger

	mu       sync.RWMutex
	lastUser *models.User
}

func NewSessionService(gw Gateway, logger *logrus.Logger) SessionService {
	return &sessionService{gateway: gw, logger: logger}
}

// Login открывает сессию и сразу читает профиль
func (s *sessionService) Login(ctx context.Context, matricula, password string) (*models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "session",
		"method":    "Login",
		"matricula": matricula,
	})

	if err := s.gateway.Login(ctx, matricula, password); err != nil {
		log.WithError(err).Warn("Login rejected")
		return nil, fmt.Errorf("service: could not login: %w", err)
	}
	user, err := s.Me(ctx)
	if err != nil {
		return nil, err
	}
	log.WithField("user_id", user.ID).Info("User logged in")
	return user, nil
}

// Logout закрывает сессию
func (s *sessionService) Logout(ctx context.Context) error {
	if err := s.gateway.Logout(ctx); err != nil {
		return fmt.Errorf("service: could not logout: %w", err)
	}
	s.mu.Lock()
	s.lastUser = nil
	s.mu.Unlock()
	return nil
}

// Me читает профиль и запоминает его для офлайн-документа
func (s *sessionService) Me(ctx context.Context) (*models.User, error) {
	user, err := s.gateway.CurrentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not resolve current user: %w", err)
	}
	s.mu.Lock()
	u := *user
	s.lastUser = &u
	s.mu.Unlock()
	return user, nil
}

// LastKnownUser - последний прочитанный профиль, доступен без сети
func (s *sessionService) LastKnownUser() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.lastUser == nil {
		return nil
	}
	u := *s.lastUser
	return &u
}
