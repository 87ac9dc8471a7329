package config

import (
	"os"
	"strconv"
	"strings"
	"sync"
)

// Config представляет конфигурацию приложения
type Config struct {
	App    AppConfig    `json:"app"`
	Logger LoggerConfig `json:"logger"`
	Kafka  KafkaConfig  `json:"kafka"`
}

// AppConfig хранит отображаемые параметры приложения
type AppConfig struct {
	Name     string `json:"name"`
	Currency string `json:"currency"`
}

// LoggerConfig представляет конфигурацию логгера
type LoggerConfig struct {
	Level  string `json:"level"`
	Format string `json:"format"`
	File   string `json:"file"`
}

// KafkaConfig представляет конфигурацию публикации событий в Kafka
type KafkaConfig struct {
	Enabled  bool     `json:"enabled"`
	Brokers  []string `json:"brokers"`
	ClientID string   `json:"client_id"`
	Topics   Topics   `json:"topics"`
}

// Topics представляет список топиков Kafka
type Topics struct {
	Rides string `json:"rides"`
}

var (
	shared     *Config
	sharedOnce sync.Once
)

// Get возвращает конфигурацию процесса. Первый вызов загружает её через Load,
// последующие возвращают тот же указатель.
func Get() *Config {
	sharedOnce.Do(func() {
		shared = Load()
	})
	return shared
}

// Load загружает конфигурацию из переменных окружения
func Load() *Config {
	return &Config{
		App: AppConfig{
			Name:     getEnv("APP_NAME", "CabsForYou"),
			Currency: getEnv("APP_CURRENCY", "₹"),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "warn"),
			Format: getEnv("LOG_FORMAT", "json"),
			File:   getEnv("LOG_FILE", ""),
		},
		Kafka: KafkaConfig{
			Enabled:  getEnvAsBool("KAFKA_ENABLED", false),
			Brokers:  getEnvAsSlice("KAFKA_BROKERS", []string{"localhost:9092"}),
			ClientID: getEnv("KAFKA_CLIENT_ID", "cabs-for-you"),
			Topics: Topics{
				Rides: getEnv("KAFKA_TOPIC_RIDES", "rides"),
			},
		},
	}
}

// getEnv получает значение переменной окружения с значением по умолчанию
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsBool получает значение переменной окружения как bool с значением по умолчанию
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := strings.ToLower(getEnv(key, ""))
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	if valueStr == "yes" {
		return true
	}
	if valueStr == "no" {
		return false
	}
	return defaultValue
}

// getEnvAsSlice разбивает значение по запятым, пустые элементы отбрасываются
func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if strings.TrimSpace(valueStr) == "" {
		return defaultValue
	}

	var result []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	if len(result) == 0 {
		return defaultValue
	}
	return result
}
