package main

import (
	"bytes"
	"errors"
	"testing"

	"cab-booking/internal/config"
	"cab-booking/internal/kafka"
	"cab-booking/internal/logger"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
)

func stubFactories(t *testing.T, cfg *config.Config) {
	t.Helper()
	origLoad, origLogger, origProducer := loadConfig, newLogger, newKafkaProducer
	t.Cleanup(func() {
		loadConfig, newLogger, newKafkaProducer = origLoad, origLogger, origProducer
	})

	loadConfig = func() *config.Config { return cfg }
	newLogger = func(*config.LoggerConfig) *logger.Logger { return logger.NewDiscard() }
}

func defaultConfig() *config.Config {
	return &config.Config{
		App:    config.AppConfig{Name: "CabsForYou", Currency: "₹"},
		Logger: config.LoggerConfig{Level: "error", Format: "json"},
		Kafka:  config.KafkaConfig{Topics: config.Topics{Rides: "rides"}},
	}
}

func TestRun_PrintsBookingTranscript(t *testing.T) {
	stubFactories(t, defaultConfig())

	var out bytes.Buffer
	app, err := buildApplication(&out)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if err := app.run(); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	app.close()

	expected := "CabsForYou App Started (₹)\n" +
		"[AUTH] User authenticated\n" +
		"[LOG] Ride booking started\n" +
		"Paid ₹250.0 via Card\n" +
		"[LOG] Ride booking completed\n"
	if out.String() != expected {
		t.Fatalf("unexpected output:\n%s\nexpected:\n%s", out.String(), expected)
	}
}

func TestBuildApplication_KafkaDisabledSkipsProducer(t *testing.T) {
	stubFactories(t, defaultConfig())
	newKafkaProducer = func(*config.KafkaConfig, *logger.Logger) (*kafka.Producer, error) {
		t.Fatalf("producer must not be created when kafka is disabled")
		return nil, nil
	}

	app, err := buildApplication(&bytes.Buffer{})
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if app.publisher != nil || app.producer != nil {
		t.Fatalf("expected no publisher")
	}
}

func TestBuildApplication_KafkaError(t *testing.T) {
	cfg := defaultConfig()
	cfg.Kafka.Enabled = true
	stubFactories(t, cfg)
	newKafkaProducer = func(*config.KafkaConfig, *logger.Logger) (*kafka.Producer, error) {
		return nil, errors.New("no brokers")
	}

	if _, err := buildApplication(&bytes.Buffer{}); err == nil {
		t.Fatalf("expected build error")
	}
}

func TestRun_PublishesRideBookedEvent(t *testing.T) {
	cfg := defaultConfig()
	cfg.Kafka.Enabled = true
	stubFactories(t, cfg)

	mp := mocks.NewSyncProducer(t, sarama.NewConfig())
	mp.ExpectSendMessageAndSucceed()
	newKafkaProducer = func(kc *config.KafkaConfig, log *logger.Logger) (*kafka.Producer, error) {
		return kafka.NewTestProducer(mp, log, &kc.Topics), nil
	}

	var out bytes.Buffer
	app, err := buildApplication(&out)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if err := app.run(); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	// Close проверяет, что ожидаемое сообщение было отправлено.
	app.close()
}
