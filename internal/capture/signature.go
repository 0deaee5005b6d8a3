package capture

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
)

var (
	ErrPadClosed         = errors.New("signature pad is closed")
	ErrEmptySignature    = errors.New("signature is empty")
	ErrSignatureTooLarge = errors.New("signature has too many points")
)

const (
	defaultPadWidth  = 600
	defaultPadHeight = 240
	penRadius        = 2
	maxPadPoints     = 20000
)

// Point - точка штриха в координатах холста
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Stroke - непрерывный штрих пера
type Stroke []Point

// SignaturePad - модальная поверхность для подписи.
// Clear очищает холст, не закрывая его; Confirm растеризует подпись и закрывает.
type SignaturePad struct {
	width   int
	height  int
	strokes []Stroke
	open    bool
}

// NewSignaturePad открывает холст заданного размера
func NewSignaturePad(width, height int) *SignaturePad {
	if width <= 0 {
		width = defaultPadWidth
	}
	if height <= 0 {
		height = defaultPadHeight
	}
	return &SignaturePad{width: width, height: height, open: true}
}

func (p *SignaturePad) IsOpen() bool { return p.open }

func (p *SignaturePad) Empty() bool {
	for _, s := range p.strokes {
		if len(s) > 0 {
			return false
		}
	}
	return true
}

// AddStroke добавляет штрих на открытый холст
func (p *SignaturePad) AddStroke(s Stroke) error {
	if !p.open {
		return ErrPadClosed
	}
	if p.points()+len(s) > maxPadPoints {
		return ErrSignatureTooLarge
	}
	p.strokes = append(p.strokes, append(Stroke(nil), s...))
	return nil
}

// Clear стирает все штрихи
func (p *SignaturePad) Clear() {
	p.strokes = nil
}

// Confirm возвращает подпись как PNG data URI и закрывает холст
func (p *SignaturePad) Confirm() (string, error) {
	if !p.open {
		return "", ErrPadClosed
	}
	if p.Empty() {
		return "", ErrEmptySignature
	}

	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	for _, s := range p.strokes {
		p.drawStroke(img, s)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode signature: %w", err)
	}
	p.open = false
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func (p *SignaturePad) points() int {
	n := 0
	for _, s := range p.strokes {
		n += len(s)
	}
	return n
}

// clamp прижимает точку к холсту, чтобы число шагов интерполяции
// не превышало размеров изображения
func (p *SignaturePad) clamp(pt Point) Point {
	limit := func(v float64, hi int) float64 {
		if math.IsNaN(v) {
			return 0
		}
		return math.Min(math.Max(v, -penRadius), float64(hi+penRadius))
	}
	return Point{X: limit(pt.X, p.width), Y: limit(pt.Y, p.height)}
}

func (p *SignaturePad) drawStroke(img *image.RGBA, s Stroke) {
	if len(s) == 1 {
		pt := p.clamp(s[0])
		dot(img, pt.X, pt.Y)
		return
	}
	for i := 1; i < len(s); i++ {
		a, b := p.clamp(s[i-1]), p.clamp(s[i])
		steps := int(math.Ceil(math.Max(math.Abs(b.X-a.X), math.Abs(b.Y-a.Y))))
		if steps == 0 {
			dot(img, a.X, a.Y)
			continue
		}
		for k := 0; k <= steps; k++ {
			t := float64(k) / float64(steps)
			dot(img, a.X+(b.X-a.X)*t, a.Y+(b.Y-a.Y)*t)
		}
	}
}

func dot(img *image.RGBA, x, y float64) {
	cx, cy := int(math.Round(x)), int(math.Round(y))
	for dx := -penRadius; dx <= penRadius; dx++ {
		for dy := -penRadius; dy <= penRadius; dy++ {
			if dx*dx+dy*dy > penRadius*penRadius {
				continue
			}
			pt := image.Pt(cx+dx, cy+dy)
			if pt.In(img.Bounds()) {
				img.Set(pt.X, pt.Y, color.Black)
			}
		}
	}
}
