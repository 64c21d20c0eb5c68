package pricing

import (
	"testing"

	"dental-tourism-server/internal/models"
)

func TestCalculate(t *testing.T) {
	treatment := &models.Treatment{
		Name:        "Dental Implant (Single)",
		USPrice:     1000,
		MexicoPrice: 400,
	}

	quote := Calculate(treatment, 2)

	if quote.USTotal != 2000 {
		t.Errorf("expected usTotal 2000, got %v", quote.USTotal)
	}
	if quote.MexicoTotal != 800 {
		t.Errorf("expected mexicoTotal 800, got %v", quote.MexicoTotal)
	}
	if quote.Savings != 1200 {
		t.Errorf("expected savings 1200, got %v", quote.Savings)
	}
	if quote.Percentage != 60 {
		t.Errorf("expected percentage 60, got %v", quote.Percentage)
	}
}

func TestCalculateRoundsPercentage(t *testing.T) {
	treatment := &models.Treatment{USPrice: 1400, MexicoPrice: 350}

	// savings 1050 / 1400 = 75%
	if got := Calculate(treatment, 1).Percentage; got != 75 {
		t.Errorf("expected 75, got %d", got)
	}

	// 2/3 savings rounds to 67
	treatment = &models.Treatment{USPrice: 300, MexicoPrice: 100}
	if got := Calculate(treatment, 1).Percentage; got != 67 {
		t.Errorf("expected 67, got %d", got)
	}
}

func TestCalculateZeroUSPrice(t *testing.T) {
	treatment := &models.Treatment{USPrice: 0, MexicoPrice: 0}
	if got := Calculate(treatment, 3).Percentage; got != 0 {
		t.Errorf("expected 0 percent for zero US total, got %d", got)
	}
}
