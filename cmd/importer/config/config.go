package config

import "time"

// Config holds application configuration.
type Config struct {
	DatabaseURL   string        `env:"DATABASE_URL"`
	HTTPTimeout   time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
	RegionWorkers int           `env:"REGION_WORKERS" envDefault:"4"`

	RabbitMQ RabbitMQ
}

// RabbitMQ holds RabbitMQ configuration.
type RabbitMQ struct {
	URL      string `env:"RABBITMQ_URL"`
	Exchange string `env:"RABBITMQ_EXCHANGE" envDefault:"partner-import-ex"`
	Queue    string `env:"RABBITMQ_QUEUE" envDefault:"partner-import.commands"`
}
