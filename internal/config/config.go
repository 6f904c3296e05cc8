package config

import "os"

type Config struct {
	Server   ServerConfig
	Auth     AuthConfig
	Postgres PostgresConfig
	CORS     CORSConfig
}

type ServerConfig struct {
	Port string
}

type AuthConfig struct {
	JWTSecret     string
	AccessTTL     string
	AllowSignup   string
	AdminEmail    string
	AdminPassword string
}

type PostgresConfig struct {
	DatabaseURL string
	Host        string
	Port        string
	User        string
	Password    string
	Database    string
	SSLMode     string
}

type CORSConfig struct {
	AllowedOrigins string
}

func Load() Config {
	return Config{
		Server: ServerConfig{
			Port: getenv("PORT", "8080"),
		},
		Auth: AuthConfig{
			JWTSecret:     os.Getenv("JWT_SECRET"),
			AccessTTL:     getenv("JWT_ACCESS_TTL", "24h"),
			AllowSignup:   os.Getenv("ALLOW_SIGNUP"),
			AdminEmail:    os.Getenv("ADMIN_EMAIL"),
			AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		},
		Postgres: PostgresConfig{
			DatabaseURL: os.Getenv("DATABASE_URL"),
			Host:        getenv("PGHOST", "localhost"),
			Port:        getenv("PGPORT", "5432"),
			User:        os.Getenv("PGUSER"),
			Password:    os.Getenv("PGPASSWORD"),
			Database:    os.Getenv("PGDATABASE"),
			SSLMode:     getenv("PGSSLMODE", "disable"),
		},
		CORS: CORSConfig{
			AllowedOrigins: getenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
		},
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
