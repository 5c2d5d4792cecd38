package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Default returns the production configuration for the Northwestern
// intercampus shuttle.
func Default() Config {
	return Config{
		Upstream: UpstreamConfig{
			BaseURL:   "https://northwestern.tripshot.com",
			TimeoutMS: 10000,
		},
		Routes: RoutesConfig{
			Outbound: RouteConfig{
				RouteID:     "23174203-507c-48fe-811a-5d13fcf7be65",
				TargetStop:  "Ward",
				DisplayName: "Ward",
			},
			Inbound: RouteConfig{
				RouteID:     "EBEE9228-C993-4279-B7CE-8FCA0A46CA65",
				TargetStop:  "Sheridan/Noyes (IB)",
				DisplayName: "Tech",
			},
		},
		Page: PageConfig{
			Path:     "web/index.html",
			TimeZone: "America/Chicago",
		},
		Server: ServerConfig{
			Port:      4000,
			RateLimit: 10,
		},
	}
}

// Load returns the default configuration, overlaid with the YAML file at
// path when one is given, and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration against its field constraints.
func (c Config) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
