// Package config provides shared configuration utilities.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the settings for all three entry points. The only game
// configuration on this side of the API boundary is where the backend
// lives; everything else is listener plumbing.
type Config struct {
	// APIBaseURL is the backend base path the client talks to, e.g.
	// http://localhost:8000/api.
	APIBaseURL string

	SSHHost    string
	SSHPort    string
	SSHHostKey string

	WebHost string
	WebPort string
	// UpstreamURL is the backend base the web gateway proxies
	// /_/backend requests to.
	UpstreamURL string
}

// Load reads a .env file when one is present and resolves all settings
// from the environment.
func Load() Config {
	_ = godotenv.Load()
	return Config{
		APIBaseURL:  GetEnv("STARLINE_API_URL", "http://localhost:8000/api"),
		SSHHost:     GetEnv("SSH_HOST", "::"),
		SSHPort:     GetEnv("SSH_PORT", "2222"),
		SSHHostKey:  GetEnv("SSH_HOST_KEY", ".ssh/starline_host_key"),
		WebHost:     GetEnv("WEB_HOST", "0.0.0.0"),
		WebPort:     GetEnv("WEB_PORT", "8080"),
		UpstreamURL: GetEnv("STARLINE_UPSTREAM_URL", "http://localhost:8000/api"),
	}
}

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
