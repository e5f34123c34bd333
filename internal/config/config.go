package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	Env            string
	BackendURL     string
	BackendTimeout time.Duration
	SessionSecret  string
	CookieSecure   bool
	RedisHost      string
	RedisPassword  string
	DefaultLocale  string
	CORSOrigins    []string
	// AdminRole est le rôle exigé pour /admin ; vide = tout utilisateur connecté.
	AdminRole   string
	CartIdleTTL time.Duration
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load charge le fichier .env s'il existe.
func Load() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}
}

// FromEnv lit la configuration depuis l'environnement.
func FromEnv() (Config, error) {
	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("APP_ENV", "production"),
		BackendURL:    strings.TrimRight(getEnv("BACKEND_URL", "http://localhost:8000"), "/"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		RedisHost:     os.Getenv("REDIS_HOST"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		DefaultLocale: getEnv("DEFAULT_LOCALE", "pt-BR"),
		AdminRole:     getEnv("ADMIN_ROLE", "admin"),
	}

	if cfg.SessionSecret == "" {
		return cfg, fmt.Errorf("SESSION_SECRET manquant")
	}

	var err error
	if cfg.BackendTimeout, err = getDuration("BACKEND_TIMEOUT", 10*time.Second); err != nil {
		return cfg, err
	}
	if cfg.CartIdleTTL, err = getDuration("CART_IDLE_TTL", 30*time.Minute); err != nil {
		return cfg, err
	}
	if v := os.Getenv("COOKIE_SECURE"); v != "" {
		if cfg.CookieSecure, err = strconv.ParseBool(v); err != nil {
			return cfg, fmt.Errorf("COOKIE_SECURE invalide: %w", err)
		}
	}
	for _, o := range strings.Split(os.Getenv("CORS_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s invalide: %w", key, err)
	}
	return d, nil
}
