package ports

import "go.trai.ch/stager/internal/core/domain"

// ConfigLoader defines the interface for loading stager configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path. A missing file yields the
	// default configuration; an unparsable file is an error.
	Load(path string) (*domain.Config, error)
}
