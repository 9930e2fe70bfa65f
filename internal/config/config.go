package config

import "os"

type Config struct {
	DatabaseURL      string
	RedisURL         string
	KafkaBrokers     string
	NatsURL          string
	JaegerEndpoint   string
	Port             string
	ProcessorBaseURL string
	MerchantKey      string
	MerchantID       string
	ProcessorLogin   string
	ProcessorPass    string
}

func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8084"
	}

	processorBaseURL := os.Getenv("PROCESSOR_BASE_URL")
	if processorBaseURL == "" {
		processorBaseURL = "https://checkout.usiopay.com/2.0"
	}

	natsURL := os.Getenv("NATS_URL")
	if natsURL == "" {
		natsURL = "nats://localhost:4222"
	}

	return &Config{
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		RedisURL:         os.Getenv("REDIS_URL"),
		KafkaBrokers:     os.Getenv("KAFKA_BROKERS"),
		NatsURL:          natsURL,
		JaegerEndpoint:   os.Getenv("JAEGER_ENDPOINT"),
		Port:             port,
		ProcessorBaseURL: processorBaseURL,
		MerchantKey:      os.Getenv("MERCHANT_KEY"),
		MerchantID:       os.Getenv("MERCHANT_ID"),
		ProcessorLogin:   os.Getenv("PROCESSOR_LOGIN"),
		ProcessorPass:    os.Getenv("PROCESSOR_PASSWORD"),
	}
}
