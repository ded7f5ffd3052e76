package config

import "os"

// GetEnvOrDefault returns the value of an environment variable or a fallback.
func GetEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
