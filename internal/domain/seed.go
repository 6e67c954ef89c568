package domain

import (
	"time"

	"github.com/google/uuid"
)

// seedCard is the static shape of one default catalog entry.
type seedCard struct {
	question      string
	imageURL      string
	options       []string
	correctOption int
	feedback      string
}

const emojiAssets = "https://raw.githubusercontent.com/microsoft/fluentui-emoji/main/assets"

var defaultCards = map[Category][]seedCard{
	CategoryEmotions: {
		{
			question:      "¿Cómo te sientes cuando ves esta cara?",
			imageURL:      emojiAssets + "/Grinning%20face/3D/grinning_face_3d.png",
			options:       []string{"Feliz", "Triste", "Enojado", "Asustado"},
			correctOption: 0,
			feedback:      "¡Muy bien! Cuando alguien sonríe así, está feliz y contento.",
		},
		{
			question:      "¿Qué emoción muestra esta cara?",
			imageURL:      emojiAssets + "/Crying%20face/3D/crying_face_3d.png",
			options:       []string{"Triste", "Feliz", "Sorprendido", "Enojado"},
			correctOption: 0,
			feedback:      "¡Correcto! Es importante reconocer cuando alguien está triste para poder ayudar.",
		},
		{
			question:      "¿Qué emoción expresa esta cara?",
			imageURL:      emojiAssets + "/Angry%20face/3D/angry_face_3d.png",
			options:       []string{"Enojado", "Feliz", "Triste", "Asustado"},
			correctOption: 0,
			feedback:      "¡Excelente! Reconocer cuando alguien está enojado nos ayuda a entender sus sentimientos.",
		},
	},
	CategoryConcepts: {
		{
			question:      "¿Qué número viene después del 2?",
			imageURL:      emojiAssets + "/Keycap%203/3D/keycap_3_3d.png",
			options:       []string{"3", "4", "2", "1"},
			correctOption: 0,
			feedback:      "¡Excelente! El número 3 viene después del 2. ¡Estás aprendiendo a contar muy bien!",
		},
		{
			question:      "¿Cuál es el primer número?",
			imageURL:      emojiAssets + "/Keycap%201/3D/keycap_1_3d.png",
			options:       []string{"1", "2", "3", "4"},
			correctOption: 0,
			feedback:      "¡Correcto! El número 1 es el primero que usamos para contar. ¡Muy bien hecho!",
		},
		{
			question:      "¿Qué número está entre el 1 y el 3?",
			imageURL:      emojiAssets + "/Keycap%202/3D/keycap_2_3d.png",
			options:       []string{"2", "4", "1", "3"},
			correctOption: 0,
			feedback:      "¡Perfecto! El número 2 está entre el 1 y el 3. ¡Eres muy inteligente!",
		},
	},
	CategoryEnvironment: {
		{
			question:      "¿Qué animal es este?",
			imageURL:      emojiAssets + "/Dog%20face/3D/dog_face_3d.png",
			options:       []string{"Perro", "Gato", "Conejo", "Pájaro"},
			correctOption: 0,
			feedback:      "¡Correcto! Es un perro, un animal doméstico muy común.",
		},
		{
			question:      "¿Qué clima representa esta imagen?",
			imageURL:      emojiAssets + "/Sun/3D/sun_3d.png",
			options:       []string{"Soleado", "Lluvioso", "Nublado", "Nevado"},
			correctOption: 0,
			feedback:      "¡Muy bien! Es un día soleado.",
		},
		{
			question:      "¿Qué fruta es esta?",
			imageURL:      emojiAssets + "/Red%20apple/3D/red_apple_3d.png",
			options:       []string{"Manzana", "Naranja", "Plátano", "Pera"},
			correctOption: 0,
			feedback:      "¡Excelente! Es una manzana roja.",
		},
	},
}

// DefaultFlashcards builds the seed catalog: the fixed card set for every
// recognized category, in display order. Positions restart at 1 per
// category and carry the play order into storage. Each call generates
// fresh IDs; the store-level insert-if-absent keyed on (category,
// question) keeps re-seeding idempotent.
func DefaultFlashcards() []Flashcard {
	now := time.Now().UTC()
	var cards []Flashcard
	for _, category := range Categories() {
		for i, seed := range defaultCards[category] {
			cards = append(cards, Flashcard{
				ID:            uuid.New(),
				Category:      category,
				Question:      seed.question,
				ImageURL:      seed.imageURL,
				Options:       seed.options,
				CorrectOption: seed.correctOption,
				Feedback:      seed.feedback,
				Position:      i + 1,
				CreatedAt:     now,
			})
		}
	}
	return cards
}
