package config

type MetricsConfig struct {
	TextfilePath string `yaml:"textfile"`
}

// Textfile is where metrics are written on exit; empty disables them.
func (m *MetricsConfig) Textfile() string {
	return m.TextfilePath
}

type TracingConfig struct {
	Service   string `yaml:"service-name"`
	AgentAddr string `yaml:"jaeger-agent"`
}

func (t *TracingConfig) ServiceName() string {
	return t.Service
}

func (t *TracingConfig) AgentHostPort() string {
	return t.AgentAddr
}

func (t *TracingConfig) Enabled() bool {
	return t.AgentAddr != ""
}
