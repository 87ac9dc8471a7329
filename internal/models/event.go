package models

import (
	"time"

	"github.com/google/uuid"
)

// EventType представляет тип события
type EventType string

const (
	EventTypeRideBooked EventType = "ride.booked"
)

// Event представляет событие для публикации в Kafka
type Event struct {
	ID        uuid.UUID              `json:"id"`
	Type      EventType              `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Data      map[string]interface{} `json:"data"`
}

// NewRideBookedEvent создает событие о бронировании поездки
func NewRideBookedEvent(booking *Booking) Event {
	return Event{
		ID:        uuid.New(),
		Type:      EventTypeRideBooked,
		Timestamp: time.Now(),
		Data: map[string]interface{}{
			"booking_id":     booking.ID,
			"distance_km":    booking.DistanceKm,
			"fare":           booking.Fare,
			"pricing_type":   booking.PricingType,
			"payment_method": booking.PaymentMethod,
			"currency":       booking.Currency,
		},
	}
}
