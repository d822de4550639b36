package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config хранит все конфигурационные параметры приложения.
// Загружается один раз на старте и передается компонентам явно,
// никакого чтения окружения по месту вызова.
type Config struct {
	DatabaseURL string `env:"DATABASE_URL,required"`

	UserServicePort    string `env:"USER_SERVICE_PORT"`
	BookingServicePort string `env:"BOOKING_SERVICE_PORT"`

	// Базовый URL внешнего Event Service, например http://localhost:5000
	EventServiceURL string `env:"EVENT_SERVICE_URL,required"`

	// Секрет и срок жизни JWT. Токены подписываются HS256.
	JWTSecret string        `env:"JWT_SECRET,required"`
	JWTExpiry time.Duration `env:"JWT_EXPIRY" envDefault:"24h"`

	RabbitMQ struct {
		RabbitMQURL       string `env:"RABBITMQ_URL,required"`
		RabbitMQQueueName string `env:"RABBITMQ_QUEUE_NAME" envDefault:"booking_queue"`
	}

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
}

// LoadConfig загружает конфигурацию из переменных окружения.
// В режиме разработки пытается загрузить .env файл.
func LoadConfig() (*Config, error) {
	if _, err := os.Stat(".env"); !os.IsNotExist(err) {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("ошибка загрузки .env файла: %w", err)
		}
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("ошибка парсинга конфигурации из окружения: %w", err)
	}

	// Порты по умолчанию как в исходной расстановке сервисов:
	// user service на 8001, booking service на 8002.
	if cfg.UserServicePort == "" {
		cfg.UserServicePort = "8001"
	}
	if cfg.BookingServicePort == "" {
		cfg.BookingServicePort = "8002"
	}

	return &cfg, nil
}
