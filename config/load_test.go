package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Load(t *testing.T) {
	t.Run("default load", func(t *testing.T) {
		expectedConfig := getDefaultEngineConfig()

		actualConfig, err := Load()
		require.NoError(t, err)

		assert.Equal(t, expectedConfig, actualConfig)
	})

	t.Run("partial file override", func(t *testing.T) {
		actualConfig, err := Load("./test_files/")
		require.NoError(t, err)

		// verify not-overridden default example value
		assert.Equal(t, 5432, actualConfig.SocialDB.Postgres.Port)

		// verify correct overrides
		assert.Equal(t, "DEBUG", actualConfig.LogLevel)
		assert.Equal(t, "json", actualConfig.LogFormat)
		assert.Equal(t, "testnet", actualConfig.Network)
		assert.NotNil(t, actualConfig.Tracing)
		assert.Equal(t, "http://tracing:4317", actualConfig.Tracing.DialAddr)
	})
}
