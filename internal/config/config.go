package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	AppHost     string `envconfig:"APP_HOST" default:":8080"`
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`
	JWTSecret   string `envconfig:"JWT_SECRET" required:"true"`

	MigrationsDir string `envconfig:"MIGRATIONS_DIR" default:"migrations"`

	Linnworks LinnworksConfig
	Transfer  TransferConfig
}

// LinnworksConfig is the external inventory API boundary configuration.
type LinnworksConfig struct {
	BaseURL string `envconfig:"LINNWORKS_BASE_URL" required:"true"`
	Token   string `envconfig:"LINNWORKS_API_TOKEN" required:"true"`
}

// TransferConfig holds the location ids the transfer flow depends on.
// Injected into the transfer service so tests can supply arbitrary values.
type TransferConfig struct {
	// DefaultLocationID is the destination used when a request does not
	// name one (the primary pick/display location).
	DefaultLocationID string `envconfig:"DEFAULT_LOCATION_ID" required:"true"`
	// FloorLocationID is the preferred source for bay refills.
	FloorLocationID string `envconfig:"FLOOR_LOCATION_ID"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
