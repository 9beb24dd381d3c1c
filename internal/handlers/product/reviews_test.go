package product

import (
	"testing"

	"velora_back_end/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestAverageRating(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		stars []int
		want  int
	}{
		{"aucune note", nil, 0},
		{"note unique", []int{4}, 4},
		{"moyenne exacte", []int{3, 5}, 4},
		{"arrondi demi-sup: 3.5 → 4", []int{3, 4}, 4},
		{"arrondi inférieur: 4.33 → 4", []int{4, 4, 5}, 4},
		{"arrondi supérieur: 4.67 → 5", []int{4, 5, 5}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ratings := make([]models.Rating, 0, len(tt.stars))
			for _, s := range tt.stars {
				ratings = append(ratings, models.Rating{Star: s})
			}
			assert.Equal(t, tt.want, AverageRating(ratings))
		})
	}
}
