package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shenikar/sigo_companion/internal/config"
	"github.com/shenikar/sigo_companion/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorker(url string) *Worker {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	cfg := &config.Config{
		WebhookURL:        url,
		WebhookSecret:     "s3cret",
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	}
	return NewWorker(nil, logger, cfg)
}

func TestWorker_Process_SignsPayload(t *testing.T) {
	event := NewEvent(EventIncidentStatusChanged)
	event.IncidentID = "17"
	event.Status = models.StatusFinished
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	var gotSig string
	var gotBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSig = r.Header.Get("X-Webhook-Signature")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	newTestWorker(srv.URL).process(context.Background(), event, payload)

	assert.Equal(t, generateHMACSHA256(payload, "s3cret"), gotSig)
	assert.JSONEq(t, string(payload), string(gotBody))
}

func TestWorker_Process_RetriesWithBackoff(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	newTestWorker(srv.URL).process(context.Background(), NewEvent(EventIncidentDeleted), []byte(`{}`))

	assert.Equal(t, int32(3), atomic.LoadInt32(&hits))
}

func TestWorker_Process_GivesUp(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	newTestWorker(srv.URL).process(context.Background(), NewEvent(EventIncidentCreated), []byte(`{}`))

	assert.Equal(t, int32(3), atomic.LoadInt32(&hits))
}

func TestWorker_Process_NoURL(t *testing.T) {
	// без WEBHOOK_URL доставка пропускается без паники
	newTestWorker("").process(context.Background(), NewEvent(EventIncidentCreated), []byte(`{}`))
}
