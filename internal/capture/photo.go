package capture

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"

	"github.com/nfnt/resize"
	"github.com/shenikar/sigo_companion/internal/models"
)

// PhotoEncoder уменьшает фотографию и кодирует её в JPEG/base64 для встраивания в документ
type PhotoEncoder struct {
	MaxDimension uint
	Quality      int
}

// NewPhotoEncoder создает энкодер с ограничениями по размеру и качеству
func NewPhotoEncoder(maxDimension uint, quality int) *PhotoEncoder {
	if quality <= 0 || quality > 100 {
		quality = jpeg.DefaultQuality
	}
	return &PhotoEncoder{MaxDimension: maxDimension, Quality: quality}
}

// Encode декодирует исходное изображение, при необходимости уменьшает и возвращает Photo
func (e *PhotoEncoder) Encode(raw RawImage) (models.Photo, error) {
	img, _, err := image.Decode(bytes.NewReader(raw.Data))
	if err != nil {
		return models.Photo{}, fmt.Errorf("decode image: %w", err)
	}

	if e.MaxDimension > 0 {
		img = resize.Thumbnail(e.MaxDimension, e.MaxDimension, img, resize.Lanczos3)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: e.Quality}); err != nil {
		return models.Photo{}, fmt.Errorf("encode jpeg: %w", err)
	}

	return models.Photo{
		URI:        raw.URI,
		Base64Data: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:   "image/jpeg",
	}, nil
}

// DataURI возвращает фотографию как data URI
func DataURI(p models.Photo) string {
	mime := p.MimeType
	if mime == "" {
		mime = "image/jpeg"
	}
	return "data:" + mime + ";base64," + p.Base64Data
}
