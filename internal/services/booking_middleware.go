package services

import (
	"fmt"
	"io"
	"time"

	"cab-booking/internal/logger"
	"cab-booking/internal/models"
)

// BookingFunc выполняет одно бронирование поездки
type BookingFunc func(distanceKm float64) (*models.Booking, error)

// BookingMiddleware дополняет BookingFunc сквозной логикой
type BookingMiddleware func(next BookingFunc) BookingFunc

// chain оборачивает core так, что первый middleware выполняется первым
func chain(core BookingFunc, middlewares ...BookingMiddleware) BookingFunc {
	for i := len(middlewares) - 1; i >= 0; i-- {
		core = middlewares[i](core)
	}
	return core
}

// withAuthentication пишет строку аутентификации до любого другого вывода
func withAuthentication(out io.Writer, log *logger.Logger) BookingMiddleware {
	return func(next BookingFunc) BookingFunc {
		return func(distanceKm float64) (*models.Booking, error) {
			fmt.Fprintln(out, "[AUTH] User authenticated")
			log.Debug("User authenticated")
			return next(distanceKm)
		}
	}
}

// withLogging пишет строки начала и завершения. Завершение пишется только при успехе.
func withLogging(out io.Writer, log *logger.Logger) BookingMiddleware {
	return func(next BookingFunc) BookingFunc {
		return func(distanceKm float64) (*models.Booking, error) {
			fmt.Fprintln(out, "[LOG] Ride booking started")
			log.WithField("distance_km", distanceKm).Debug("Ride booking started")

			start := time.Now()
			booking, err := next(distanceKm)
			if err != nil {
				log.WithError(err).WithField("distance_km", distanceKm).Error("Ride booking failed")
				return booking, err
			}

			fmt.Fprintln(out, "[LOG] Ride booking completed")
			entry := log.WithField("duration", time.Since(start).String())
			if booking != nil {
				entry = entry.WithField("booking_id", booking.ID).WithField("fare", booking.Fare)
			}
			entry.Debug("Ride booking completed")
			return booking, nil
		}
	}
}

// bookingPipeline применяет аутентификацию и логирование к core
func bookingPipeline(core BookingFunc, out io.Writer, log *logger.Logger) BookingFunc {
	return chain(core,
		withAuthentication(out, log),
		withLogging(out, log),
	)
}
