package config

import "time"

const (
	defaultDotEnvPath       = ".env"
	defaultHTTPAddress      = ":3001"
	defaultTokenIssuer      = "go-shop-keeper"
	defaultTokenDuration    = 72 * time.Hour
	defaultPasswordHashCost = 10
	defaultLogLevel         = "debug"
	defaultRequestTimeout   = 30 * time.Second
	defaultShutdownTimeout  = 5 * time.Second
	defaultMaxOpenConns     = 10
	defaultMaxIdleConns     = 4
)

// defaultConfig returns the lowest-priority config layer. Secrets and the
// DSN have no defaults and must be provided explicitly.
func defaultConfig() *StructuredConfig {
	migrate := true

	return &StructuredConfig{
		App: App{
			TokenIssuer:      defaultTokenIssuer,
			TokenDuration:    defaultTokenDuration,
			PasswordHashCost: defaultPasswordHashCost,
			LogLevel:         defaultLogLevel,
		},
		Storage: Storage{
			DB: DB{
				Driver:       DriverPostgres,
				Migrate:      &migrate,
				MaxOpenConns: defaultMaxOpenConns,
				MaxIdleConns: defaultMaxIdleConns,
			},
		},
		Server: Server{
			HTTPAddress:     defaultHTTPAddress,
			RequestTimeout:  defaultRequestTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
		},
		DotEnvPath: defaultDotEnvPath,
	}
}
