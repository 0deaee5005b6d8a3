package theme

// Preferences - настройки доступности интерфейса
type Preferences struct {
	DarkMode     bool    `json:"dark_mode"`
	HighContrast bool    `json:"high_contrast"`
	FontScale    float64 `json:"font_scale"`
}

// Tokens - цвета и масштаб шрифта для текущих настроек
type Tokens struct {
	Background       string  `json:"background"`
	Text             string  `json:"text"`
	TextSecondary    string  `json:"textSecondary"`
	Primary          string  `json:"primary"`
	CardBackground   string  `json:"cardBackground"`
	InputBackground  string  `json:"inputBackground"`
	Border           string  `json:"border"`
	HeaderBackground string  `json:"headerBackground"`
	Highlight        string  `json:"highlight"`
	StatusBarStyle   string  `json:"statusBarStyle"`
	FontScale        float64 `json:"fontScale"`
}

const (
	minFontScale = 0.8
	maxFontScale = 2.0
)

var (
	highContrast = Tokens{
		Background:       "#000000",
		Text:             "#FFFF00",
		TextSecondary:    "#FFFF00",
		Primary:          "#FFD700",
		CardBackground:   "#000000",
		InputBackground:  "#000000",
		Border:           "#FFFF00",
		HeaderBackground: "#000000",
		Highlight:        "#FFFF00",
		StatusBarStyle:   "light",
	}
	dark = Tokens{
		Background:       "#121212",
		Text:             "#FFFFFF",
		TextSecondary:    "#BBBBBB",
		Primary:          "#5c7cfa",
		CardBackground:   "#1E1E1E",
		InputBackground:  "#2C2C2C",
		Border:           "#333333",
		HeaderBackground: "#1E1E1E",
		Highlight:        "#5c7cfa",
		StatusBarStyle:   "light",
	}
	light = Tokens{
		Background:       "#FFFFFF",
		Text:             "#333333",
		TextSecondary:    "#666666",
		Primary:          "#314697",
		CardBackground:   "#F1F4FF",
		InputBackground:  "#F1F4FF",
		Border:           "#E0E0E0",
		HeaderBackground: "#FFFFFF",
		Highlight:        "#314697",
		StatusBarStyle:   "dark",
	}
)

// Resolve вычисляет токены. Высокий контраст важнее тёмной темы.
func Resolve(p Preferences) Tokens {
	var t Tokens
	switch {
	case p.HighContrast:
		t = highContrast
	case p.DarkMode:
		t = dark
	default:
		t = light
	}
	t.FontScale = clampScale(p.FontScale)
	return t
}

func clampScale(s float64) float64 {
	switch {
	case s <= 0:
		return 1
	case s < minFontScale:
		return minFontScale
	case s > maxFontScale:
		return maxFontScale
	}
	return s
}
