package config

import (
	"os"
	"strconv"
)

// DefaultMaxAudioBytes caps the canonical WAV payload at 10 MiB.
const DefaultMaxAudioBytes = 10 << 20

type Config struct {
	Port          string
	DatabaseURL   string
	MaxAudioBytes int
}

func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		MaxAudioBytes: getEnvInt("MAX_AUDIO_BYTES", DefaultMaxAudioBytes),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
