package config

// Config holds all configuration for the application.
type Config struct {
	DBName   string `envconfig:"DB_NAME" default:"courtchart.db"`
	Port     string `envconfig:"PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	Turso    TursoConfig
}

type TursoConfig struct {
	PrimaryURL string `envconfig:"TURSO_PRIMARY_URL"`
	AuthToken  string `envconfig:"TURSO_AUTH_TOKEN"`
}
