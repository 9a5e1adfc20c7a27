package config

import "time"

func loadTestConfig(cfg *Config) {
	cfg.DatabaseConnectRetryCount = 1
	cfg.DatabaseConnectRetryDelay = 10 * time.Millisecond
	cfg.DatabaseDriver = DriverSQLite
	cfg.DatabaseFilePath = ":memory:"
	cfg.ServerHost = "127.0.0.1"
	cfg.ServerPort = 0
}

func loadProductionConfig(cfg *Config) {
	cfg.DatabaseDebug = false
	cfg.ServerHost = "0.0.0.0"
}
