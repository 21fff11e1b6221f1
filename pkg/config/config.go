// Package config holds the process-wide configuration for the scheduling
// service.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

const DefaultSchedulePath = "/schedule"

// Config carries the operator-supplied settings. PartnerKey, ExternalID and
// VEBaseURL are secrets required for every request; their absence is an
// operator misconfiguration, not a caller error.
type Config struct {
	PartnerKey        string `validate:"required"`
	ExternalID        string `validate:"required"`
	VEBaseURL         string `validate:"required"`
	DefaultInstanceID string
	DefaultFlowID     string
	CustomerDomain    string
	SchedulePath      string
	AssetsDir         string
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate reports whether the required secrets are present. The returned
// error names the missing fields and must only ever be logged, never sent to
// a caller.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return nil
}

// FromEnv builds a Config from the environment variables the original
// deployment uses. Used by the Lambda entrypoint, where there is no CLI.
func FromEnv() Config {
	cfg := Config{
		PartnerKey:        os.Getenv("PAK"),
		ExternalID:        os.Getenv("EXTERNAL_ID"),
		VEBaseURL:         os.Getenv("VE_BASE_URL"),
		DefaultInstanceID: os.Getenv("INSTANCE_ID"),
		DefaultFlowID:     os.Getenv("FLOW_ID"),
		CustomerDomain:    os.Getenv("DOMAIN"),
		SchedulePath:      os.Getenv("SCHEDULE_PATH"),
		AssetsDir:         os.Getenv("ASSETS_DIR"),
	}
	if cfg.SchedulePath == "" {
		cfg.SchedulePath = DefaultSchedulePath
	}

	return cfg
}
