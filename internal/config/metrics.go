package config

type MetricsConfig struct {
	ListenAddr string `yaml:"addr"`
}

// Addr is empty when the metrics endpoint is disabled.
func (s *MetricsConfig) Addr() string {
	return s.ListenAddr
}
