package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServicePort         string
	MetricsPort         string
	Environment         string
	LogLevel            string
	LogFormat           string
	MongoDBConfig       MongoDBConfig
	PostgreSQLConfig    PostgreSQLConfig
	RedisConfig         RedisConfig
	KafkaConfig         KafkaConfig
	ElasticsearchConfig ElasticsearchConfig
	TracingConfig       TracingConfig
	PaymentConfig       PaymentConfig
	MediaConfig         MediaConfig
	SMTPConfig          SMTPConfig
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		ServicePort: getEnv("SERVICE_PORT", "8080"),
		MetricsPort: getEnv("METRICS_PORT", "8081"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   os.Getenv("LOG_FORMAT"),
		MongoDBConfig: MongoDBConfig{
			DBHost: getEnv("DB_HOST", "localhost"),
			DBPort: getEnv("DB_PORT", "27017"),
			DBName: getEnv("DB_NAME", "marketplace"),
		},
		PostgreSQLConfig: PostgreSQLConfig{
			DBHost:     getEnv("PG_HOST", "localhost"),
			DBPort:     getEnv("PG_PORT", "5432"),
			DBName:     getEnv("PG_NAME", "marketplace"),
			DBUsername: os.Getenv("PG_USERNAME"),
			DBPassword: os.Getenv("PG_PASSWORD"),
		},
		RedisConfig: RedisConfig{
			Addr:       os.Getenv("REDIS_ADDR"),
			Password:   os.Getenv("REDIS_PASSWORD"),
			TTLSeconds: getEnvInt("CACHE_TTL_SECONDS", 300),
		},
		KafkaConfig: KafkaConfig{
			BrokerAddress:   os.Getenv("BROKER_ADDRESS"),
			BrokerTopic:     getEnv("BROKER_TOPIC", "marketplace"),
			BrokerPartition: getEnvInt("BROKER_PARTITION", 0),
		},
		ElasticsearchConfig: ElasticsearchConfig{
			DBHost: os.Getenv("ELASTIC_SEARCH_HOST"),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
		PaymentConfig: PaymentConfig{
			Gateway:             getEnv("PAYMENT_GATEWAY", "stripe"),
			StripeSecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
			MidtransServerKey:   os.Getenv("MIDTRANS_SERVER_KEY"),
			Currency:            getEnv("CHECKOUT_CURRENCY", "usd"),
			SuccessURL:          getEnv("CHECKOUT_SUCCESS_URL", "http://localhost:3000/paymentSuccess"),
			CancelURL:           getEnv("CHECKOUT_CANCEL_URL", "http://localhost:3000/paymentCancel"),
			ShippingChargeMinor: int64(getEnvInt("SHIPPING_CHARGE_MINOR", 75)),
		},
		MediaConfig: MediaConfig{
			CloudinaryURL:        os.Getenv("CLOUDINARY_URL"),
			UploadDir:            getEnv("UPLOAD_DIR", "uploads"),
			SweepIntervalSeconds: getEnvInt("UPLOAD_SWEEP_INTERVAL_SECONDS", 600),
		},
		SMTPConfig: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     getEnvInt("SMTP_PORT", 587),
			Sender:   os.Getenv("SMTP_SENDER"),
			Password: os.Getenv("SMTP_PASSWORD"),
		},
	}

	return &conf
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}

	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}

	return v
}
