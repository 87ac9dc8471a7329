package models

import (
	"time"

	"github.com/google/uuid"
)

// PricingType представляет тариф поездки
type PricingType string

const (
	PricingTypeNormal PricingType = "NORMAL"
	PricingTypeSurge  PricingType = "SURGE"
)

// PaymentMethod представляет способ оплаты. Значение совпадает с названием канала в сообщениях.
type PaymentMethod string

const (
	PaymentMethodUPI    PaymentMethod = "UPI"
	PaymentMethodCard   PaymentMethod = "Card"
	PaymentMethodWallet PaymentMethod = "Wallet"
)

// PaymentReceipt описывает результат оплаты
type PaymentReceipt struct {
	Method   PaymentMethod `json:"method"`
	Amount   float64       `json:"amount"`
	Currency string        `json:"currency"`
	Message  string        `json:"message"`
}

// Booking представляет выполненное бронирование поездки
type Booking struct {
	ID            uuid.UUID       `json:"id"`
	DistanceKm    float64         `json:"distance_km"`
	Fare          float64         `json:"fare"`
	PricingType   PricingType     `json:"pricing_type"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	Currency      string          `json:"currency"`
	Receipt       *PaymentReceipt `json:"receipt"`
	CreatedAt     time.Time       `json:"created_at"`
}

// RideRequest представляет запрос на бронирование с ключами тарифа и оплаты в виде строк
type RideRequest struct {
	PricingType   string  `json:"pricing_type"`
	PaymentMethod string  `json:"payment_method"`
	DistanceKm    float64 `json:"distance_km"`
}
