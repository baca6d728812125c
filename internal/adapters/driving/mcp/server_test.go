package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("nil match service returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{})
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingMatchService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		server, err := NewServer(&Ports{Match: &mockMatchService{}})
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("nil match service returns error", func(t *testing.T) {
		ports := &Ports{Settings: &mockSettingsService{}}
		assert.ErrorIs(t, ports.Validate(), ErrMissingMatchService)
	})

	t.Run("match only is valid", func(t *testing.T) {
		ports := &Ports{Match: &mockMatchService{}}
		assert.NoError(t, ports.Validate())
	})

	t.Run("all ports is valid", func(t *testing.T) {
		ports := &Ports{Match: &mockMatchService{}, Settings: &mockSettingsService{}}
		assert.NoError(t, ports.Validate())
	})
}

func TestServer_SetRateLimit(t *testing.T) {
	server, err := NewServer(&Ports{Match: &mockMatchService{}})
	require.NoError(t, err)
	assert.Equal(t, DefaultRateLimit, server.rateLimit)

	server.SetRateLimit(RateLimitConfig{})

	assert.False(t, server.rateLimit.Enabled())
}
