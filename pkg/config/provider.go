// Package config provides configuration loading for petrolog from YAML
// files or SQLite databases behind a common provider interface.
package config

import (
	"github.com/subsurfaceio/petrolog/internal/petro"
)

// ConfigProvider defines the interface for configuration data sources
type ConfigProvider interface {
	// LoadConfig loads the complete configuration
	LoadConfig() (*ConfigData, error)

	IsReadOnly() bool
	Close() error
}

// ConfigData represents the complete configuration structure
type ConfigData struct {
	Server       ServerData       `json:"server" yaml:"server"`
	Data         DataData         `json:"data" yaml:"data"`
	Analysis     AnalysisData     `json:"analysis,omitempty" yaml:"analysis,omitempty"`
	Availability AvailabilityData `json:"availability,omitempty" yaml:"availability,omitempty"`
}

// ServerData holds the REST server listen configuration
type ServerData struct {
	ListenAddr string `json:"listen_addr,omitempty" yaml:"listen_addr,omitempty"`
	Port       int    `json:"port,omitempty" yaml:"port,omitempty"`
}

// DataData holds the location of the well-log files served by this instance
type DataData struct {
	LASDir string `json:"las_dir" yaml:"las_dir"`
}

// AnalysisData holds analysis defaults: cutoffs, segmentation minimums,
// and the physical parameter set. Zero values mean "use documented
// defaults"; parameter ranges are validated when an analyzer is built.
type AnalysisData struct {
	ReservoirCutoff    float64 `json:"reservoir_cutoff,omitempty" yaml:"reservoir_cutoff,omitempty"`
	CleanSandCutoff    float64 `json:"clean_sand_cutoff,omitempty" yaml:"clean_sand_cutoff,omitempty"`
	HighPorosityCutoff float64 `json:"high_porosity_cutoff,omitempty" yaml:"high_porosity_cutoff,omitempty"`

	Parameters petro.Parameters `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}

// AvailabilityData configures the well-availability cache
type AvailabilityData struct {
	TTLSeconds int `json:"ttl_seconds,omitempty" yaml:"ttl_seconds,omitempty"`
}

// ListenPort returns the configured port or the default 8090
func (s ServerData) ListenPort() int {
	if s.Port == 0 {
		return 8090
	}
	return s.Port
}
