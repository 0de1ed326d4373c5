package tracer

// Config configures a Tracer.
type Config struct {
	// ServiceName is attached as the otel "service.name" resource attribute.
	ServiceName string `yaml:"service_name" envconfig:"TRACER_SERVICE_NAME"`

	// AppEnv is attached as the deployment environment resource attribute
	// (e.g. "production", "staging").
	AppEnv string `yaml:"app_env" envconfig:"TRACER_APP_ENV"`

	// EnableExport turns on the OTLP/HTTP batch exporter. When false, spans
	// are still created but never leave the process.
	EnableExport bool `yaml:"enable_export" envconfig:"TRACER_ENABLE_EXPORT"`

	// Endpoint is the OTLP/HTTP collector endpoint, e.g. "otel-collector:4318".
	Endpoint string `yaml:"endpoint" envconfig:"TRACER_ENDPOINT"`

	// Insecure disables TLS when dialing Endpoint.
	Insecure bool `yaml:"insecure" envconfig:"TRACER_INSECURE"`

	// SampleRatio is the fraction of traces to sample, in [0,1]. Zero defaults to 1.0.
	SampleRatio float64 `yaml:"sample_ratio" envconfig:"TRACER_SAMPLE_RATIO"`
}
