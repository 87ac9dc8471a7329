package services

import (
	"io"
	"time"

	"cab-booking/internal/logger"
	"cab-booking/internal/models"

	"github.com/google/uuid"
)

// EventPublisher публикует события о бронированиях
type EventPublisher interface {
	PublishRideBooked(booking *models.Booking) error
}

// BookingOptions содержит зависимости сервиса бронирования
type BookingOptions struct {
	Out       io.Writer
	Log       *logger.Logger
	Publisher EventPublisher
}

func (o BookingOptions) withDefaults() BookingOptions {
	if o.Out == nil {
		o.Out = io.Discard
	}
	if o.Log == nil {
		o.Log = logger.NewDiscard()
	}
	return o
}

// RideBookingService бронирует поездку с заданными тарифом и способом оплаты
type RideBookingService struct {
	pricing   PricingStrategy
	payment   PaymentStrategy
	log       *logger.Logger
	publisher EventPublisher
	book      BookingFunc
}

// NewRideBookingService создает сервис бронирования. Каждый вызов BookRide
// проходит через аутентификацию и логирование.
func NewRideBookingService(pricing PricingStrategy, payment PaymentStrategy, opts BookingOptions) *RideBookingService {
	opts = opts.withDefaults()
	s := &RideBookingService{
		pricing:   pricing,
		payment:   payment,
		log:       opts.Log,
		publisher: opts.Publisher,
	}
	s.book = bookingPipeline(s.bookRide, opts.Out, opts.Log)
	return s
}

// BookRide рассчитывает стоимость поездки и проводит оплату
func (s *RideBookingService) BookRide(distanceKm float64) (*models.Booking, error) {
	return s.book(distanceKm)
}

func (s *RideBookingService) bookRide(distanceKm float64) (*models.Booking, error) {
	fare := s.pricing.CalculateFare(distanceKm)
	receipt := s.payment.Pay(fare)

	booking := &models.Booking{
		ID:            uuid.New(),
		DistanceKm:    distanceKm,
		Fare:          fare,
		PricingType:   s.pricing.Type(),
		PaymentMethod: s.payment.Method(),
		Currency:      receipt.Currency,
		Receipt:       receipt,
		CreatedAt:     time.Now(),
	}

	// Оплата уже проведена, поэтому ошибка публикации не отменяет бронирование
	if s.publisher != nil {
		if err := s.publisher.PublishRideBooked(booking); err != nil {
			s.log.WithError(err).WithField("booking_id", booking.ID).Warn("Failed to publish ride booked event")
		}
	}

	return booking, nil
}
