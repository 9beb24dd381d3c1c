package user

import (
	"testing"

	"velora_back_end/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestComputeCartTotal(t *testing.T) {
	t.Parallel()

	assert.Equal(t, models.Cents(0), ComputeCartTotal(nil))

	// 2 × 25.00 + 1 × 50.00 = 100.00
	products := []models.CartProduct{
		{Count: 2, Color: "rouge", Price: 2500},
		{Count: 1, Color: "bleu", Price: 5000},
	}
	assert.Equal(t, models.Cents(10000), ComputeCartTotal(products))
}

func TestComputeCartTotalSnapshotPrices(t *testing.T) {
	t.Parallel()

	// Le total repose uniquement sur les prix figés dans le panier,
	// pas sur le catalogue.
	products := []models.CartProduct{
		{Count: 3, Price: 999},
	}
	assert.Equal(t, models.Cents(2997), ComputeCartTotal(products))
}

func TestFinalAmount(t *testing.T) {
	t.Parallel()

	discounted := models.Cents(9000)
	withDiscount := models.Cart{CartTotal: 10000, TotalAfterDiscount: &discounted}
	withoutDiscount := models.Cart{CartTotal: 10000}

	// Coupon appliqué: le montant remisé l'emporte.
	assert.Equal(t, models.Cents(9000), FinalAmount(withDiscount, true))

	// Pas de coupon: total brut, même si un ancien montant remisé traîne.
	assert.Equal(t, models.Cents(10000), FinalAmount(withDiscount, false))

	// couponApplied sans montant remisé persisté: retombe sur le total brut.
	assert.Equal(t, models.Cents(10000), FinalAmount(withoutDiscount, true))
}
