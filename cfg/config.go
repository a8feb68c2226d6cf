package cfg

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

type AmadeusConfig struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
}

type Config struct {
	AppEnv          string
	AppPort         string
	RedisConfig     RedisConfig
	AmadeusConfig   AmadeusConfig
	CacheTTLMinutes int
}

func Load() (*Config, error) {
	var errs []error

	err := godotenv.Load()
	if err != nil {
		return nil, errors.New("failed load cfg: " + err.Error())
	}

	appEnv := mustEnv("APP_ENV", &errs)
	appPort := mustEnv("APP_PORT", &errs)
	redisHost := mustEnv("REDIS_HOST", &errs)
	redisPort := mustEnv("REDIS_PORT", &errs)
	redisPassword := mustEnv("REDIS_PASSWORD", &errs)

	amadeusBaseUrl := mustEnv("AMADEUS_BASE_URL", &errs)
	amadeusClientID := mustEnv("AMADEUS_CLIENT_ID", &errs)
	amadeusClientSecret := mustEnv("AMADEUS_CLIENT_SECRET", &errs)

	cacheTTLMinutes := mustEnv("CACHE_TTL_MINUTES", &errs)
	cacheTTLMinutesInt, err := strconv.Atoi(cacheTTLMinutes)

	if err != nil {
		errs = append(errs, errors.New("conversion failed env: "+"CACHE_TTL_MINUTES"))
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &Config{
		AppEnv:  appEnv,
		AppPort: appPort,
		RedisConfig: RedisConfig{
			Host:     redisHost,
			Port:     redisPort,
			Password: redisPassword,
		},
		AmadeusConfig: AmadeusConfig{
			BaseURL:      amadeusBaseUrl,
			ClientID:     amadeusClientID,
			ClientSecret: amadeusClientSecret,
		},
		CacheTTLMinutes: cacheTTLMinutesInt,
	}, nil
}

func mustEnv(key string, errs *[]error) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		*errs = append(*errs, errors.New("missing env: "+key))
	}
	return value
}
