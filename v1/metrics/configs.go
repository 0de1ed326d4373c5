package metrics

// Config configures a Metrics server.
type Config struct {
	// Address is the listen address for the /metrics HTTP endpoint, e.g. ":9090".
	Address string `yaml:"address" envconfig:"METRICS_ADDRESS"`

	// Namespace is carried in the configuration but NewMetrics does not apply
	// it: metric names registered through this package carry no prefix.
	Namespace string `yaml:"namespace" envconfig:"METRICS_NAMESPACE"`

	// ServiceName is applied as a constant "service" label on the built-in
	// metrics and the default collectors. Metrics made with CreateCounter,
	// CreateHistogram or CreateGauge do not carry it.
	ServiceName string `yaml:"service_name" envconfig:"METRICS_SERVICE_NAME"`

	// EnableDefaultCollectors registers the Go runtime and process collectors.
	EnableDefaultCollectors bool `yaml:"enable_default_collectors" envconfig:"METRICS_ENABLE_DEFAULT_COLLECTORS"`
}
