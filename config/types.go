package config

type MongoDBConfig struct {
	DBHost string
	DBPort string
	DBName string
}

type PostgreSQLConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUsername string
	DBPassword string
}

type RedisConfig struct {
	Addr       string
	Password   string
	TTLSeconds int
}

type KafkaConfig struct {
	BrokerAddress   string
	BrokerTopic     string
	BrokerPartition int
}

type ElasticsearchConfig struct {
	DBHost string
}

type TracingConfig struct {
	CollectorHost string
}

// PaymentConfig selects the checkout gateway. Gateway is "stripe" or "midtrans".
type PaymentConfig struct {
	Gateway             string
	StripeSecretKey     string
	MidtransServerKey   string
	Currency            string
	SuccessURL          string
	CancelURL           string
	ShippingChargeMinor int64
}

type MediaConfig struct {
	CloudinaryURL        string
	UploadDir            string
	SweepIntervalSeconds int
}

type SMTPConfig struct {
	Host     string
	Port     int
	Sender   string
	Password string
}

func (c SMTPConfig) Enabled() bool {
	return c.Host != "" && c.Sender != ""
}
