package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// unsetenv clears keys for the duration of the test while keeping their
// original values restorable.
func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		if v, ok := os.LookupEnv(k); ok {
			t.Setenv(k, v)
			os.Unsetenv(k)
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	unsetenv(t, "PORT", "DATA_DIR", "FIELD_IMAGE", "DB_PATH", "JITTER_SEED",
		"ANGLE_JITTER", "DISTANCE_JITTER", "AUTH_SECRET", "RATE_LIMIT", "RATE_BURST")

	cfg := Load()

	assert.Equal(t, ":8080", cfg.Port)
	assert.Equal(t, "試合データ", cfg.DataDir)
	assert.Equal(t, "打球分析.png", cfg.FieldImage)
	assert.Equal(t, "", cfg.DBPath)
	assert.Equal(t, int64(42), cfg.JitterSeed)
	assert.Equal(t, 0.05, cfg.AngleJitter)
	assert.Equal(t, 0.1, cfg.DistanceJitter)
	assert.Equal(t, "", cfg.AuthSecret)
	assert.Equal(t, 20.0, cfg.RateLimit)
	assert.Equal(t, 40, cfg.RateBurst)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", ":9000")
	t.Setenv("DATA_DIR", "/data/games")
	t.Setenv("FIELD_IMAGE", "/data/field.png")
	t.Setenv("JITTER_SEED", "7")
	t.Setenv("ANGLE_JITTER", "0.2")
	t.Setenv("DISTANCE_JITTER", "0.25")
	t.Setenv("AUTH_SECRET", "s3cret")
	t.Setenv("RATE_LIMIT", "5")
	t.Setenv("RATE_BURST", "10")

	cfg := Load()

	assert.Equal(t, ":9000", cfg.Port)
	assert.Equal(t, "/data/games", cfg.DataDir)
	assert.Equal(t, "/data/field.png", cfg.FieldImage)
	assert.Equal(t, int64(7), cfg.JitterSeed)
	assert.Equal(t, 0.2, cfg.AngleJitter)
	assert.Equal(t, 0.25, cfg.DistanceJitter)
	assert.Equal(t, "s3cret", cfg.AuthSecret)
	assert.Equal(t, 5.0, cfg.RateLimit)
	assert.Equal(t, 10, cfg.RateBurst)
}

func TestLoadIgnoresInvalidNumbers(t *testing.T) {
	t.Setenv("JITTER_SEED", "not-a-number")
	t.Setenv("RATE_BURST", "1.5")
	t.Setenv("ANGLE_JITTER", "wide")

	cfg := Load()

	assert.Equal(t, int64(42), cfg.JitterSeed)
	assert.Equal(t, 40, cfg.RateBurst)
	assert.Equal(t, 0.05, cfg.AngleJitter)
}
