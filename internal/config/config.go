package config

import (
	"log"
	"os"
)

type Config struct {
	Port        string
	DBDSN       string
	TokenSecret string
	LogFile     string
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "resellx.db"
	} // sqlite file in project root
	secret := os.Getenv("TOKEN_SECRET")
	if secret == "" {
		secret = "dev-only-secret"
		log.Println("[config] TOKEN_SECRET not set, using dev default")
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./resellx.log"
	}

	cfg := Config{Port: port, DBDSN: dsn, TokenSecret: secret, LogFile: logFile}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s", cfg.Port, cfg.DBDSN, cfg.LogFile)
	return cfg
}
