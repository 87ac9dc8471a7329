package main

import (
	"fmt"
	"io"
	"os"

	"cab-booking/internal/config"
	"cab-booking/internal/kafka"
	"cab-booking/internal/logger"
	"cab-booking/internal/services"
)

// Параметры демонстрационного бронирования.
const (
	demoPricingType = "SURGE"
	demoDistanceKm  = 10
)

// Фабричные функции для подключения внешних сервисов (подменяемые в тестах).
var (
	loadConfig       = config.Get
	newLogger        = logger.New
	newKafkaProducer = kafka.NewProducer
)

// application агрегирует собранные зависимости.
type application struct {
	cfg       *config.Config
	log       *logger.Logger
	out       io.Writer
	producer  *kafka.Producer
	publisher services.EventPublisher
}

func main() {
	app, err := buildApplication(os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build app: %v\n", err)
		os.Exit(1)
	}

	err = app.run()
	app.close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ride booking failed: %v\n", err)
		os.Exit(1)
	}
}

// buildApplication создает все зависимости (подменяемые в тестах).
func buildApplication(out io.Writer) (*application, error) {
	cfg := loadConfig()
	log := newLogger(&cfg.Logger)

	app := &application{
		cfg: cfg,
		log: log,
		out: out,
	}

	if cfg.Kafka.Enabled {
		producer, err := newKafkaProducer(&cfg.Kafka, log)
		if err != nil {
			return nil, fmt.Errorf("kafka producer: %w", err)
		}
		app.producer = producer
		app.publisher = producer
	}

	return app, nil
}

// run печатает заголовок и выполняет демонстрационное бронирование.
func (a *application) run() error {
	fmt.Fprintf(a.out, "%s App Started (%s)\n", a.cfg.App.Name, a.cfg.App.Currency)

	pricing, err := services.GetPricing(demoPricingType)
	if err != nil {
		return fmt.Errorf("resolve pricing: %w", err)
	}
	payment := services.NewCardPayment(a.cfg.App.Currency, a.out)

	bookingService := services.NewRideBookingService(pricing, payment, services.BookingOptions{
		Out:       a.out,
		Log:       a.log,
		Publisher: a.publisher,
	})

	booking, err := bookingService.BookRide(demoDistanceKm)
	if err != nil {
		return err
	}

	a.log.WithField("booking_id", booking.ID).Info("Ride booked")
	return nil
}

func (a *application) close() {
	if err := a.producer.Close(); err != nil {
		a.log.WithError(err).Warn("Failed to close Kafka producer")
	}
}
