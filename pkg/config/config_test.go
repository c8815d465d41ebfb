package config_test

import (
	"testing"
	"time"

	"github.com/limbo/fittrack/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestGetters(t *testing.T) {
	t.Setenv("FITTRACK_ENV_FILE", "./does-not-exist.env")
	cfg := config.New()

	t.Run("string with default", func(t *testing.T) {
		t.Setenv("TEST_STR", "")
		assert.Equal(t, "fallback", cfg.GetStringOr("TEST_STR", "fallback"))
		t.Setenv("TEST_STR", "value")
		assert.Equal(t, "value", cfg.GetStringOr("TEST_STR", "fallback"))
	})
	t.Run("int", func(t *testing.T) {
		t.Setenv("TEST_INT", "42")
		assert.Equal(t, 42, cfg.GetInt("TEST_INT", 1))
		t.Setenv("TEST_INT", "nan")
		assert.Equal(t, 1, cfg.GetInt("TEST_INT", 1))
	})
	t.Run("bool", func(t *testing.T) {
		t.Setenv("TEST_BOOL", "true")
		assert.True(t, cfg.GetBool("TEST_BOOL", false))
		t.Setenv("TEST_BOOL", "")
		assert.False(t, cfg.GetBool("TEST_BOOL", false))
	})
	t.Run("duration", func(t *testing.T) {
		t.Setenv("TEST_DUR", "7d")
		assert.Equal(t, 7*24*time.Hour, cfg.GetDuration("TEST_DUR", time.Hour))
		t.Setenv("TEST_DUR", "90m")
		assert.Equal(t, 90*time.Minute, cfg.GetDuration("TEST_DUR", time.Hour))
		t.Setenv("TEST_DUR", "-3d")
		assert.Equal(t, time.Hour, cfg.GetDuration("TEST_DUR", time.Hour))
		t.Setenv("TEST_DUR", "soon")
		assert.Equal(t, time.Hour, cfg.GetDuration("TEST_DUR", time.Hour))
	})
	t.Run("list", func(t *testing.T) {
		t.Setenv("TEST_LIST", " a, b ,,c")
		assert.Equal(t, []string{"a", "b", "c"}, cfg.GetList("TEST_LIST"))
		t.Setenv("TEST_LIST", "")
		assert.Nil(t, cfg.GetList("TEST_LIST"))
	})
}
