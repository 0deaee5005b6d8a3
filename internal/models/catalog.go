package models

// Category - тип ocorrência
type Category string

const (
	CategoryFire             Category = "fire"
	CategoryTrafficAccident  Category = "traffic_accident"
	CategoryMedicalEmergency Category = "medical_emergency"
	CategoryRescue           Category = "rescue"
	CategoryOther            Category = "other"
)

// Option - пара значение/подпись для выбора в интерфейсе
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var categoryLabels = []struct {
	category Category
	label    string
}{
	{CategoryFire, "Incêndio"},
	{CategoryTrafficAccident, "Acidente de Trânsito"},
	{CategoryMedicalEmergency, "Emergência Médica"},
	{CategoryRescue, "Salvamento"},
	{CategoryOther, "Outros"},
}

var subcategories = map[Category][]Option{
	CategoryFire: {
		{Value: "residential", Label: "Residencial"},
		{Value: "commercial", Label: "Comercial"},
		{Value: "vehicle", Label: "Veicular"},
		{Value: "vegetation", Label: "Vegetação"},
	},
	CategoryTrafficAccident: {
		{Value: "collision", Label: "Colisão"},
		{Value: "run_over", Label: "Atropelamento"},
		{Value: "rollover", Label: "Capotamento"},
	},
	CategoryMedicalEmergency: {
		{Value: "cardiac", Label: "Cardíaca"},
		{Value: "trauma", Label: "Trauma"},
		{Value: "respiratory", Label: "Respiratória"},
	},
	CategoryRescue: {
		{Value: "water", Label: "Aquático"},
		{Value: "height", Label: "Altura"},
		{Value: "confined_space", Label: "Espaço Confinado"},
	},
	CategoryOther: nil,
}

// Valid проверяет, что категория известна справочнику
func (c Category) Valid() bool {
	_, ok := subcategories[c]
	return ok
}

// Label возвращает подпись категории для документов
func (c Category) Label() string {
	for _, cl := range categoryLabels {
		if cl.category == c {
			return cl.label
		}
	}
	return string(c)
}

// Categories возвращает все категории в порядке отображения
func Categories() []Option {
	opts := make([]Option, 0, len(categoryLabels))
	for _, cl := range categoryLabels {
		opts = append(opts, Option{Value: string(cl.category), Label: cl.label})
	}
	return opts
}

// SubcategoryOptions возвращает варианты подкатегорий для категории.
// Пустой результат означает, что подкатегория не требуется.
func SubcategoryOptions(c Category) []Option {
	return append([]Option(nil), subcategories[c]...)
}

// RequiresSubcategory - у категории есть хотя бы одна подкатегория
func RequiresSubcategory(c Category) bool {
	return len(subcategories[c]) > 0
}

// HasSubcategory проверяет принадлежность подкатегории категории
func HasSubcategory(c Category, sub string) bool {
	for _, o := range subcategories[c] {
		if o.Value == sub {
			return true
		}
	}
	return false
}
