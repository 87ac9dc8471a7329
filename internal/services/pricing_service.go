package services

import (
	"errors"
	"fmt"
	"strings"

	"cab-booking/internal/apperror"
	"cab-booking/internal/models"
)

// Тарифы за километр
const (
	NormalRatePerKm = 10.0
	SurgeRatePerKm  = 25.0
)

// ErrInvalidPricingType возвращается фабрикой для неизвестного ключа тарифа.
var ErrInvalidPricingType = errors.New("invalid pricing type")

// PricingStrategy рассчитывает стоимость поездки по расстоянию.
// Набор реализаций закрыт: NormalPricing и SurgePricing.
type PricingStrategy interface {
	CalculateFare(distanceKm float64) float64
	Type() models.PricingType
	pricingStrategy()
}

// NormalPricing реализует обычный тариф.
type NormalPricing struct{}

// CalculateFare возвращает distanceKm * 10.
func (NormalPricing) CalculateFare(distanceKm float64) float64 {
	return distanceKm * NormalRatePerKm
}

// Type возвращает тип тарифа.
func (NormalPricing) Type() models.PricingType { return models.PricingTypeNormal }

func (NormalPricing) pricingStrategy() {}

// SurgePricing реализует повышенный тариф.
type SurgePricing struct{}

// CalculateFare возвращает distanceKm * 25.
func (SurgePricing) CalculateFare(distanceKm float64) float64 {
	return distanceKm * SurgeRatePerKm
}

// Type возвращает тип тарифа.
func (SurgePricing) Type() models.PricingType { return models.PricingTypeSurge }

func (SurgePricing) pricingStrategy() {}

// GetPricing возвращает тариф по ключу без учета регистра.
func GetPricing(pricingType string) (PricingStrategy, error) {
	switch models.PricingType(strings.ToUpper(pricingType)) {
	case models.PricingTypeNormal:
		return NormalPricing{}, nil
	case models.PricingTypeSurge:
		return SurgePricing{}, nil
	default:
		return nil, apperror.InvalidPricingType(fmt.Sprintf("invalid pricing type %q", pricingType), ErrInvalidPricingType)
	}
}
