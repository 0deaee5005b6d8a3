package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/sigo_companion/internal/offline"
	"github.com/shenikar/sigo_companion/internal/share"
	"github.com/shenikar/sigo_companion/internal/webhook"
	"github.com/sirupsen/logrus"
)

type offlineService struct {
	store     *DraftStore
	session   SessionService
	renderer  DocumentRenderer
	printer   PDFPrinter
	sharer    Sharer
	publisher webhook.Publisher
	logger    *logrus.Logger
	now       Clock
}

func NewOfflineService(store *DraftStore, session SessionService, renderer DocumentRenderer, printer PDFPrinter,
	sharer Sharer, publisher webhook.Publisher, logger *logrus.Logger, now Clock) OfflineService {
	if now == nil {
		now = time.Now
	}
	return &offlineService{
		store:     store,
		session:   session,
		renderer:  renderer,
		printer:   printer,
		sharer:    sharer,
		publisher: publisher,
		logger:    logger,
		now:       now,
	}
}

// Export формирует PDF по черновику и отдаёт его механизму экспорта.
// Черновик только читается, повторной отправки на бэкенд нет.
func (s *offlineService) Export(ctx context.Context, id uuid.UUID) (*share.Result, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "offline",
		"method":   "Export",
		"draft_id": id,
	})

	draft, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get draft: %w", err)
	}

	doc := offline.Document{
		Draft:       draft.Clone(),
		Responsible: s.session.LastKnownUser(),
		GeneratedAt: s.now(),
	}
	html, err := s.renderer.Render(doc)
	if err != nil {
		log.WithError(err).Error("Failed to render offline document")
		return nil, fmt.Errorf("service: could not render document: %w", err)
	}
	pdf, err := s.printer.Print(ctx, html)
	if err != nil {
		log.WithError(err).Error("Failed to print offline document")
		return nil, fmt.Errorf("service: could not print document: %w", err)
	}

	result, err := s.sharer.Share(ctx, &share.Request{
		Filename:    fmt.Sprintf("ocorrencia-%s.pdf", doc.Reference()),
		ContentType: "application/pdf",
		Body:        bytes.NewReader(pdf),
		Size:        int64(len(pdf)),
		Metadata:    map[string]string{"draft-id": id.String()},
	})
	if err != nil {
		log.WithError(err).Error("Failed to share offline document")
		return nil, fmt.Errorf("service: could not share document: %w", err)
	}

	event := webhook.NewEvent(webhook.EventDraftExportedOffline)
	event.DraftID = id.String()
	event.ShareURL = result.URL
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish draft.exported_offline event")
	}

	log.WithField("location", result.Location).Info("Offline document exported")
	return result, nil
}
