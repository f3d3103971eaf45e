package conf

import (
	"os"
)

// Config holds process configuration read once at startup. It is
// constructed in main and passed down; components never read the
// environment themselves.
type Config struct {
	HTTPPort  string
	PgConnStr string
	APISecret string // empty disables the X-API-Secret check
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return Config{
		HTTPPort:  port,
		PgConnStr: GetPgConnStrFromEnv(),
		APISecret: os.Getenv("API_SECRET"),
	}
}
