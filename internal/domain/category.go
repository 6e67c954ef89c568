package domain

// Category identifies a fixed topical grouping of flashcards.
// The set of categories is a small enumeration agreed with the
// flashcard catalog; it does not grow at runtime.
type Category string

// Recognized category keys.
const (
	CategoryEmotions    Category = "emociones"
	CategoryConcepts    Category = "conceptos"
	CategoryEnvironment Category = "entorno"
)

// CategoryInfo carries the display metadata shown for a category
// on dashboard and progress views.
type CategoryInfo struct {
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

var categoryInfo = map[Category]CategoryInfo{
	CategoryEmotions: {
		Name:        "Desarrollo Emocional",
		Icon:        "😊",
		Color:       "#FF9800",
		Description: "Aprende sobre emociones y expresiones faciales",
	},
	CategoryConcepts: {
		Name:        "Conceptos Básicos",
		Icon:        "📚",
		Color:       "#4CAF50",
		Description: "Aprende formas, colores y números",
	},
	CategoryEnvironment: {
		Name:        "Conocimiento del Entorno",
		Icon:        "🌍",
		Color:       "#2196F3",
		Description: "Aprende sobre animales, clima y naturaleza",
	},
}

// Categories returns every recognized category in display order.
func Categories() []Category {
	return []Category{CategoryEmotions, CategoryConcepts, CategoryEnvironment}
}

// Valid reports whether c is one of the recognized category keys.
func (c Category) Valid() bool {
	_, ok := categoryInfo[c]
	return ok
}

// Info returns the display metadata for the category.
// It returns the zero CategoryInfo for unrecognized categories.
func (c Category) Info() CategoryInfo {
	return categoryInfo[c]
}

// String returns the category key.
func (c Category) String() string {
	return string(c)
}
