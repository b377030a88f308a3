package tracing

import (
	"io"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/logger"
)

type config interface {
	ServiceName() string
	AgentHostPort() string
	Enabled() bool
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Init installs a global Jaeger tracer when an agent is configured. Otherwise
// the opentracing no-op tracer stays in place.
func Init(cfg config) (io.Closer, error) {
	if !cfg.Enabled() {
		logger.Info("tracing disabled")
		return nopCloser{}, nil
	}

	jcfg := jaegercfg.Configuration{
		ServiceName: cfg.ServiceName(),
		Sampler: &jaegercfg.SamplerConfig{
			Type:  jaeger.SamplerTypeConst,
			Param: 1,
		},
		Reporter: &jaegercfg.ReporterConfig{
			LocalAgentHostPort: cfg.AgentHostPort(),
		},
	}
	tracer, closer, err := jcfg.NewTracer()
	if err != nil {
		return nil, errors.Wrap(err, "init jaeger tracer")
	}
	opentracing.SetGlobalTracer(tracer)

	logger.Info("tracing enabled", zap.String("agent", cfg.AgentHostPort()))
	return closer, nil
}
