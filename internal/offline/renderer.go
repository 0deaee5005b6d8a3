package offline

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/shenikar/sigo_companion/internal/capture"
	"github.com/shenikar/sigo_companion/internal/models"
)

//go:embed templates/report.html
var templatesFS embed.FS

var priorityLabels = map[models.Priority]string{
	models.PriorityLow:    "Baixa",
	models.PriorityMedium: "Média",
	models.PriorityHigh:   "Alta",
}

// Document - данные для рендеринга офлайн-документа
type Document struct {
	Draft       *models.Draft
	Responsible *models.User
	GeneratedAt time.Time
}

// Reference - локальная ссылка на черновик (первые символы UUID)
func (d Document) Reference() string {
	return strings.ToUpper(strings.SplitN(d.Draft.ID.String(), "-", 2)[0])
}

type view struct {
	Draft                *models.Draft
	Reference            string
	GeneratedAt          string
	CategoryLabel        string
	PriorityLabel        string
	ResponsibleName      string
	ResponsibleMatricula string
	Photos               []template.URL
	Signature            template.URL
}

// HTMLRenderer рендерит черновик в HTML со встроенными изображениями
type HTMLRenderer struct {
	tmpl *template.Template
}

func NewHTMLRenderer() (*HTMLRenderer, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/report.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse report template: %w", err)
	}
	return &HTMLRenderer{tmpl: tmpl}, nil
}

// Render возвращает HTML документа. Черновик не изменяется.
func (r *HTMLRenderer) Render(doc Document) (string, error) {
	v := view{
		Draft:         doc.Draft,
		Reference:     doc.Reference(),
		GeneratedAt:   doc.GeneratedAt.Format("02/01/2006 15:04"),
		CategoryLabel: doc.Draft.Category.Label(),
		PriorityLabel: priorityLabels[doc.Draft.Priority],
	}
	if doc.Responsible != nil {
		v.ResponsibleName = doc.Responsible.Name
		v.ResponsibleMatricula = doc.Responsible.Matricula
	}
	for _, p := range doc.Draft.Photos {
		// data URI собраны нами из base64, поэтому помечаются как безопасные
		v.Photos = append(v.Photos, template.URL(capture.DataURI(p)))
	}
	if strings.HasPrefix(doc.Draft.SignatureImage, "data:image/") {
		v.Signature = template.URL(doc.Draft.SignatureImage)
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, v); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return buf.String(), nil
}
