package share

import (
	"context"
	"fmt"
	"io"
	"time"
)

// Request - документ, передаваемый механизму "поделиться"
type Request struct {
	Filename    string
	ContentType string
	Body        io.Reader
	Size        int64
	Metadata    map[string]string
}

// Result - куда попал документ
type Result struct {
	Filename string    `json:"filename"`
	Location string    `json:"location"`
	URL      string    `json:"url,omitempty"`
	Expires  time.Time `json:"expires,omitempty"`
	Size     int64     `json:"size"`
}

// Sharer - платформенный механизм экспорта документа
type Sharer interface {
	Share(ctx context.Context, req *Request) (*Result, error)
}

// Провайдеры экспорта
const (
	ProviderLocal = "local"
	ProviderS3    = "s3"
)

// Config - параметры выбора провайдера
type Config struct {
	Provider  string
	LocalPath string
	Region    string
	Bucket    string
	URLTTL    time.Duration
}

// New создает Sharer по конфигурации
func New(ctx context.Context, cfg Config) (Sharer, error) {
	switch cfg.Provider {
	case ProviderLocal, "":
		return NewLocalSharer(cfg.LocalPath)
	case ProviderS3:
		return NewS3Sharer(ctx, cfg.Region, cfg.Bucket, cfg.URLTTL)
	default:
		return nil, fmt.Errorf("unknown share provider %q", cfg.Provider)
	}
}
