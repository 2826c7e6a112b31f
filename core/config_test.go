package core

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setenv(t *testing.T, kv map[string]string) {
	for k, v := range kv {
		prev, had := os.LookupEnv(k)
		require.NoError(t, os.Setenv(k, v))
		k := k
		t.Cleanup(func() {
			if had {
				_ = os.Setenv(k, prev)
			} else {
				_ = os.Unsetenv(k)
			}
		})
	}
}

func TestNewConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		setenv(t, map[string]string{"ENV": ""})
		conf, err := NewConfig()
		require.NoError(t, err)
		assert.Equal(t, "DEV", conf.Env)
		assert.Equal(t, "Masomo", conf.AppName)
		assert.Equal(t, "en", conf.Locale)
		assert.Equal(t, "Local", conf.Timezone)
		assert.True(t, conf.Debug)
		assert.False(t, conf.TestMode)
	})

	t.Run("env overrides", func(t *testing.T) {
		setenv(t, map[string]string{
			"ENV":           "test",
			"TEST_LOCALE":   "fr_CD",
			"TEST_TIMEZONE": "UTC",
			"TEST_DEBUG":    "false",
		})
		conf, err := NewConfig()
		require.NoError(t, err)
		assert.Equal(t, "TEST", conf.Env)
		assert.True(t, conf.TestMode)
		assert.False(t, conf.Debug)
		assert.Equal(t, "fr_CD", conf.Locale)

		loc, err := conf.Location()
		require.NoError(t, err)
		assert.Equal(t, time.UTC, loc)
	})
}

func TestConfig_Location(t *testing.T) {
	_, err := (&Config{Timezone: "Mars/Olympus_Mons"}).Location()
	assert.Error(t, err)

	loc, err := (&Config{Timezone: "Local"}).Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)
}

func TestCleanString(t *testing.T) {
	assert.Equal(t, "Hello", CleanString("  Hello \n"))
	assert.Equal(t, "hello", CleanString("  Hello \n", true /* lower */))
}
