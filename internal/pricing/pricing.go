package pricing

import (
	"math"

	"dental-tourism-server/internal/models"
)

// Quote is the savings breakdown for a treatment at a given quantity.
type Quote struct {
	TreatmentID string  `json:"treatmentId"`
	Treatment   string  `json:"treatment"`
	Quantity    int     `json:"quantity"`
	USTotal     float64 `json:"usTotal"`
	MexicoTotal float64 `json:"mexicoTotal"`
	Savings     float64 `json:"savings"`
	Percentage  int     `json:"percentage"`
}

// Calculate derives the savings quote. Percentage is rounded to the nearest
// whole percent; a zero US total yields zero percent rather than a division
// by zero.
func Calculate(t *models.Treatment, quantity int) Quote {
	usTotal := t.USPrice * float64(quantity)
	mexicoTotal := t.MexicoPrice * float64(quantity)
	savings := usTotal - mexicoTotal

	percentage := 0
	if usTotal > 0 {
		percentage = int(math.Round(savings / usTotal * 100))
	}

	return Quote{
		TreatmentID: t.ID,
		Treatment:   t.Name,
		Quantity:    quantity,
		USTotal:     usTotal,
		MexicoTotal: mexicoTotal,
		Savings:     savings,
		Percentage:  percentage,
	}
}
