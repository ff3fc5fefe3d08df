package db

import (
	"fmt"
	"os"
	"strconv"
)

type PostgresConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	DBName       string
	SSLMode      string
	MaxOpenConns int
	LookupBatch  int
}

func LoadPostgresConfig() (PostgresConfig, error) {
	port, err := intEnv("DB_PORT", 5432)
	if err != nil {
		return PostgresConfig{}, err
	}
	maxOpen, err := intEnv("DB_MAX_OPEN_CONNS", 20)
	if err != nil {
		return PostgresConfig{}, err
	}
	batch, err := intEnv("DB_LOOKUP_BATCH", 500)
	if err != nil {
		return PostgresConfig{}, err
	}

	return PostgresConfig{
		Host:         GetEnv("DB_HOST", "localhost"),
		Port:         port,
		User:         os.Getenv("DB_USER"),
		Password:     os.Getenv("DB_PASSWORD"),
		DBName:       os.Getenv("DB_NAME"),
		SSLMode:      GetEnv("DB_SSLMODE", "disable"),
		MaxOpenConns: maxOpen,
		LookupBatch:  batch,
	}, nil
}

// GetEnv returns the value of key, or fallback when it is unset or empty.
func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be a positive integer", key, v)
	}
	return n, nil
}
