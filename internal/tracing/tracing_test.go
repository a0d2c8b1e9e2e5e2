package tracing

import (
	"testing"

	"github.com/opentracing/opentracing-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tracingConfig struct{}

func (tracingConfig) Enabled() bool {
	return false
}

func (tracingConfig) ServiceName() string {
	return "expense-tracker"
}

func Test_OnDisabled_ShouldKeepNoopTracer(t *testing.T) {
	closer, err := Init(tracingConfig{})
	require.NoError(t, err)

	assert.IsType(t, opentracing.NoopTracer{}, opentracing.GlobalTracer())
	assert.NoError(t, closer.Close())
}
