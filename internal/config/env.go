// Package config provides shared configuration utilities.
//
// All binaries configure themselves from environment variables:
//
//	SSH_HOST, SSH_PORT, SSH_HOST_KEY  - cmd/ssh listen address and host key
//	WEB_HOST, WEB_PORT                - cmd/web listen address
//	SSH_DISPLAY_HOST                  - hostname shown on the landing page
//	SNAKE_SCORES                      - leaderboard file path
package config

import "os"

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
