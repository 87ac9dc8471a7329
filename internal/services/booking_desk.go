package services

import (
	"io"

	"cab-booking/internal/logger"
	"cab-booking/internal/models"
)

// BookingDesk принимает запросы с ключами тарифа и оплаты в виде строк.
// Ключи разбираются внутри того же конвейера, что и BookRide, поэтому ошибки
// разбора проходят через аутентификацию и логирование.
type BookingDesk struct {
	currency  string
	out       io.Writer
	log       *logger.Logger
	publisher EventPublisher
}

// NewBookingDesk создает стойку бронирования
func NewBookingDesk(currency string, opts BookingOptions) *BookingDesk {
	opts = opts.withDefaults()
	return &BookingDesk{
		currency:  currency,
		out:       opts.Out,
		log:       opts.Log,
		publisher: opts.Publisher,
	}
}

// Book разбирает запрос и бронирует поездку
func (d *BookingDesk) Book(req *models.RideRequest) (*models.Booking, error) {
	core := func(distanceKm float64) (*models.Booking, error) {
		pricing, err := GetPricing(req.PricingType)
		if err != nil {
			return nil, err
		}
		payment, err := NewPaymentStrategy(req.PaymentMethod, d.currency, d.out)
		if err != nil {
			return nil, err
		}

		s := &RideBookingService{
			pricing:   pricing,
			payment:   payment,
			log:       d.log,
			publisher: d.publisher,
		}
		return s.bookRide(distanceKm)
	}

	return bookingPipeline(core, d.out, d.log)(req.DistanceKm)
}
