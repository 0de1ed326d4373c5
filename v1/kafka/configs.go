package kafka

import "time"

// Default tuning values applied by NewClient when the corresponding Config
// field is left at its zero value.
const (
	DefaultMinBytes      = 10e3 // 10KB
	DefaultMaxBytes      = 10e6 // 10MB
	DefaultMaxWait       = 500 * time.Millisecond
	DefaultCommitInterval = time.Second
	DefaultStartOffset   = -2 // kafka.FirstOffset
	DefaultPartition     = -1 // no fixed partition
	DefaultRequiredAcks  = 1  // kafka.RequireOne
	DefaultBatchSize     = 100
	DefaultBatchTimeout  = time.Second
	DefaultMaxAttempts   = 3
	DefaultWriteTimeout  = 10 * time.Second
)

// DataType identifies the wire format used to encode message values,
// selecting the default Serializer/Deserializer pair installed by
// SetDefaultSerializers.
type DataType string

const (
	// DataTypeJSON encodes values as JSON documents.
	DataTypeJSON DataType = "json"

	// DataTypeAvro encodes values using the Confluent wire format: a leading
	// magic byte, a 4-byte big-endian schema ID, then Avro binary payload.
	DataTypeAvro DataType = "avro"

	// DataTypeRaw passes values through unmodified.
	DataTypeRaw DataType = "raw"
)

// TLSConfig configures TLS when dialing Kafka brokers.
type TLSConfig struct {
	Enabled            bool   `yaml:"enabled" envconfig:"KAFKA_TLS_ENABLED"`
	InsecureSkipVerify bool   `yaml:"insecure_skip_verify" envconfig:"KAFKA_TLS_INSECURE_SKIP_VERIFY"`
	CACertPath         string `yaml:"ca_cert_path" envconfig:"KAFKA_TLS_CA_CERT_PATH"`
	ClientCertPath     string `yaml:"client_cert_path" envconfig:"KAFKA_TLS_CLIENT_CERT_PATH"`
	ClientKeyPath      string `yaml:"client_key_path" envconfig:"KAFKA_TLS_CLIENT_KEY_PATH"`
}

// SASLConfig configures SASL authentication when dialing Kafka brokers.
type SASLConfig struct {
	Enabled   bool   `yaml:"enabled" envconfig:"KAFKA_SASL_ENABLED"`
	Mechanism string `yaml:"mechanism" envconfig:"KAFKA_SASL_MECHANISM"` // PLAIN, SCRAM-SHA-256, SCRAM-SHA-512
	Username  string `yaml:"username" envconfig:"KAFKA_SASL_USERNAME"`
	Password  string `yaml:"password" envconfig:"KAFKA_SASL_PASSWORD"`
}

// Logger is the subset of the std logger contract the kafka package depends
// on for reporting internal driver errors. github.com/Aleph-Alpha/std/v1/logger.LoggerClient
// satisfies it.
type Logger interface {
	Error(msg string, err error, fields map[string]interface{})
}

// Config configures a KafkaClient.
type Config struct {
	Brokers []string `yaml:"brokers" envconfig:"KAFKA_BROKERS"`
	Topic   string   `yaml:"topic" envconfig:"KAFKA_TOPIC"`

	// IsConsumer selects whether NewClient sets up a reader (true) or a writer (false).
	IsConsumer bool   `yaml:"is_consumer" envconfig:"KAFKA_IS_CONSUMER"`
	GroupID    string `yaml:"group_id" envconfig:"KAFKA_GROUP_ID"`

	// Reader tuning.
	MinBytes         int           `yaml:"min_bytes" envconfig:"KAFKA_MIN_BYTES"`
	MaxBytes         int           `yaml:"max_bytes" envconfig:"KAFKA_MAX_BYTES"`
	MaxWait          time.Duration `yaml:"max_wait" envconfig:"KAFKA_MAX_WAIT"`
	StartOffset      int64         `yaml:"start_offset" envconfig:"KAFKA_START_OFFSET"`
	Partition        int           `yaml:"partition" envconfig:"KAFKA_PARTITION"`
	CommitInterval   time.Duration `yaml:"commit_interval" envconfig:"KAFKA_COMMIT_INTERVAL"`
	EnableAutoCommit bool          `yaml:"enable_auto_commit" envconfig:"KAFKA_ENABLE_AUTO_COMMIT"`

	// Writer tuning.
	RequiredAcks     int           `yaml:"required_acks" envconfig:"KAFKA_REQUIRED_ACKS"`
	Async            bool          `yaml:"async" envconfig:"KAFKA_ASYNC"`
	BatchSize        int           `yaml:"batch_size" envconfig:"KAFKA_BATCH_SIZE"`
	BatchTimeout     time.Duration `yaml:"batch_timeout" envconfig:"KAFKA_BATCH_TIMEOUT"`
	MaxAttempts      int           `yaml:"max_attempts" envconfig:"KAFKA_MAX_ATTEMPTS"`
	WriteTimeout     time.Duration `yaml:"write_timeout" envconfig:"KAFKA_WRITE_TIMEOUT"`
	CompressionCodec string        `yaml:"compression_codec" envconfig:"KAFKA_COMPRESSION_CODEC"` // gzip, snappy, lz4, zstd

	// DataType selects the default Serializer/Deserializer installed by
	// SetDefaultSerializers when no explicit one has been set.
	DataType DataType `yaml:"data_type" envconfig:"KAFKA_DATA_TYPE"`

	TLS  TLSConfig  `yaml:"tls"`
	SASL SASLConfig `yaml:"sasl"`

	// Logger receives internal driver errors reported by the underlying
	// segmentio/kafka-go Writer/Reader. Takes priority over ErrorLogger.
	Logger Logger `yaml:"-"`

	// ErrorLogger is an alternative sink for internal driver errors, used
	// when Logger is nil.
	ErrorLogger func(msg string, args ...interface{}) `yaml:"-"`
}
