package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type HTTPServer struct {
	Host string
	Port string
}

type RedisCache struct {
	Host     string
	Port     string
	Password string
}

type Postgres struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type Catalog struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

type Auth struct {
	Secret     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

type Matching struct {
	Region           string
	DefaultProviders []int64
	StackCacheTTL    time.Duration
}

type Config struct {
	HTTP     HTTPServer
	Redis    RedisCache
	Postgres Postgres
	Catalog  Catalog
	Auth     Auth
	Matching Matching
}

const logtag = "[config]"

func Load() *Config {
	configPath := flag.String("config", "", "path env file")
	flag.Parse()

	if *configPath != "" {
		if err := godotenv.Load(*configPath); err != nil {
			log.Fatalf("%s err loading env from file : %v", logtag, err)
		}
		log.Printf("%s using env from : %s", logtag, *configPath)
	} else {
		log.Printf("%s using env from .env", logtag)
		_ = godotenv.Load()
	}

	cfg := &Config{
		HTTP:     *newHTTP(),
		Redis:    *newRedis(),
		Postgres: *newPostgres(),
		Catalog:  *newCatalog(),
		Auth:     *newAuth(),
		Matching: *newMatching(),
	}

	return cfg
}

func newHTTP() *HTTPServer {
	return &HTTPServer{
		Port: getenv("HTTP_PORT", "8080"),
		Host: getenv("HTTP_HOST", "localhost"),
	}
}

func newRedis() *RedisCache {
	return &RedisCache{
		Port:     getenv("REDIS_PORT", "6379"),
		Host:     getenv("REDIS_HOST", "redis"),
		Password: getenv("REDIS_PASSWORD", ""),
	}
}

func newPostgres() *Postgres {
	return &Postgres{
		Host:     getenv("DB_HOST", "localhost"),
		Port:     getenv("DB_PORT", "5432"),
		User:     getenv("DB_USER", "admin"),
		Password: getenv("DB_PASSWORD", "shared"),
		DBName:   getenv("DB_NAME", "streamsync"),
		SSLMode:  getenv("DB_SSLMODE", "disable"),
	}
}

func newCatalog() *Catalog {
	return &Catalog{
		BaseURL: getenv("TMDB_BASE_URL", "https://api.themoviedb.org/3"),
		APIKey:  getenv("TMDB_API_KEY", ""),
		Timeout: getdur("TMDB_TIMEOUT", 10*time.Second),
	}
}

func newAuth() *Auth {
	return &Auth{
		Secret:     getenv("JWT_SECRET", "dev-secret"),
		AccessTTL:  getdur("JWT_ACCESS_TTL", 15*time.Minute),
		RefreshTTL: getdur("JWT_REFRESH_TTL", 30*24*time.Hour),
	}
}

func newMatching() *Matching {
	return &Matching{
		Region:           getenv("DEFAULT_REGION", "US"),
		DefaultProviders: getproviders("DEFAULT_PROVIDERS", []int64{8, 337}),
		StackCacheTTL:    getdur("STACK_CACHE_TTL", 12*time.Hour),
	}
}

func getenv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value %s\n", logtag, key, defaultValue)
		return defaultValue
	}
	return val
}

func getdur(key string, defaultValue time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		log.Printf("%s bad duration in %s : %v. Using default %s", logtag, key, err, defaultValue)
		return defaultValue
	}
	return d
}

// Comma-separated provider ids, e.g. "8,337".
func getproviders(key string, defaultValue []int64) []int64 {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	parts := strings.Split(val, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil || id <= 0 {
			log.Printf("%s bad provider id %q in %s. Using default %v", logtag, p, key, defaultValue)
			return defaultValue
		}
		ids = append(ids, id)
	}
	return ids
}
