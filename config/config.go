package config

import "os"

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	JWTSecret  string

	// Nominatim-compatible geocoding service used by the DMA resolver's
	// fallback strategies.
	NominatimBaseURL   string
	NominatimUserAgent string
}

func LoadConfig() Config {
	return Config{
		DBHost:             os.Getenv("DB_HOST"),
		DBPort:             os.Getenv("DB_PORT"),
		DBUser:             os.Getenv("DB_USER"),
		DBPassword:         os.Getenv("DB_PASSWORD"),
		DBName:             os.Getenv("DB_NAME"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		NominatimBaseURL:   os.Getenv("NOMINATIM_BASE_URL"),
		NominatimUserAgent: os.Getenv("NOMINATIM_USER_AGENT"),
	}
}
