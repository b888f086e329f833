package config

import (
	"os"
	"strings"
)

// applyEnv lets the process environment win over config.yaml.
func applyEnv(c *AppConfig) {
	if v := env("APP_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := env("GIN_MODE"); v != "" {
		c.Server.GinMode = v
	}
	if v := env("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := env("DB_DSN"); v != "" {
		c.Database.DSN = v
	}
	if v := env("JWT_SECRET"); v != "" {
		c.Auth.JWTSecret = v
	}
	if v := env("CORS_ALLOWED_ORIGINS"); v != "" {
		origins := []string{}
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		c.CORS.AllowedOrigins = origins
	}
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
