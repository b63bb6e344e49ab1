package config

import (
	"os"
	"strconv"
)

// Config 应用配置
type Config struct {
	Port      string
	DBPath    string
	JWTSecret string

	// Hotspot test defaults
	Neighbours   int     // KNN k for the spatial weights
	Permutations int     // conditional permutations
	Seed         int64   // RNG seed for reproducible runs
	Alpha        float64 // significance level

	// Desired-area defaults
	RangeOfArea float64 // DBSCAN eps in projected units

	GeohashPrecision int
}

// Load 加载配置
func Load() *Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./data/coverage/coverage.db"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-secret-key-change-in-production"
	}

	return &Config{
		Port:             port,
		DBPath:           dbPath,
		JWTSecret:        jwtSecret,
		Neighbours:       getEnvInt("HOTSPOT_NEIGHBOURS", 100),
		Permutations:     getEnvInt("HOTSPOT_PERMUTATIONS", 999),
		Seed:             int64(getEnvInt("HOTSPOT_SEED", 12345)),
		Alpha:            getEnvFloat("HOTSPOT_ALPHA", 0.05),
		RangeOfArea:      getEnvFloat("RANGE_OF_AREA", 0.02),
		GeohashPrecision: getEnvInt("GEOHASH_PRECISION", 7),
	}
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
