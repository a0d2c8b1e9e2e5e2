package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type addrConfig string

func (c addrConfig) Addr() string {
	return string(c)
}

func Test_OnEmptyAddr_ShouldNotCreateServer(t *testing.T) {
	assert.Nil(t, NewServer(addrConfig("")))
}

func Test_OnAddr_ShouldExposeMetricsPath(t *testing.T) {
	s := NewServer(addrConfig("127.0.0.1:0"))

	if assert.NotNil(t, s) {
		assert.Equal(t, "127.0.0.1:0", s.server.Addr)
		assert.NotNil(t, s.server.Handler)
	}
}
