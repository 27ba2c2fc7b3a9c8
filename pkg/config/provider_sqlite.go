package config

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/subsurfaceio/petrolog/internal/petro"
)

// SQLiteProvider implements ConfigProvider for SQLite database
// configuration. The schema is a flat key/value settings table plus a
// parameters table mirroring petro.Parameters, which lets deployments
// adjust physical constants without shipping files.
type SQLiteProvider struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteProvider creates a new SQLite configuration provider
func NewSQLiteProvider(dbPath string) (*SQLiteProvider, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}
	return &SQLiteProvider{db: db, dbPath: dbPath}, nil
}

// LoadConfig loads the complete configuration from the SQLite database
func (s *SQLiteProvider) LoadConfig() (*ConfigData, error) {
	settings, err := s.loadSettings()
	if err != nil {
		return nil, err
	}

	config := &ConfigData{}
	config.Server.ListenAddr = settings["server.listen_addr"]
	config.Server.Port = intSetting(settings, "server.port")
	config.Data.LASDir = settings["data.las_dir"]
	config.Analysis.ReservoirCutoff = floatSetting(settings, "analysis.reservoir_cutoff")
	config.Analysis.CleanSandCutoff = floatSetting(settings, "analysis.clean_sand_cutoff")
	config.Analysis.HighPorosityCutoff = floatSetting(settings, "analysis.high_porosity_cutoff")
	config.Availability.TTLSeconds = intSetting(settings, "availability.ttl_seconds")

	params, err := s.loadParameters()
	if err != nil {
		return nil, err
	}
	config.Analysis.Parameters = params

	if config.Data.LASDir == "" {
		return nil, fmt.Errorf("config %s: data.las_dir setting is required", s.dbPath)
	}

	return config, nil
}

func (s *SQLiteProvider) loadSettings() (map[string]string, error) {
	rows, err := s.db.Query(`SELECT key, value FROM settings`)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	defer rows.Close()

	settings := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		settings[k] = v
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("settings iteration failed: %w", err)
	}
	return settings, nil
}

func (s *SQLiteProvider) loadParameters() (petro.Parameters, error) {
	var p petro.Parameters

	row := s.db.QueryRow(`
		SELECT matrix_density, fluid_density, gr_clean, gr_shale,
		       tortuosity_a, cementation_m, saturation_n, water_rw,
		       lithology, blend, vsh_method, shale_corr
		FROM parameters LIMIT 1
	`)

	var lith, blend, vsh string
	err := row.Scan(&p.MatrixDensity, &p.FluidDensity, &p.GRClean, &p.GRShale,
		&p.TortuosityA, &p.CementationM, &p.SaturationN, &p.WaterRw,
		&lith, &blend, &vsh, &p.ShaleCorr)
	if err == sql.ErrNoRows {
		// No stored parameters; defaults apply downstream.
		return petro.Parameters{}, nil
	}
	if err != nil {
		return petro.Parameters{}, fmt.Errorf("failed to load parameters: %w", err)
	}

	p.Lithology = petro.Lithology(lith)
	p.Blend = petro.BlendMethod(blend)
	p.VshMethod = petro.VshMethod(vsh)
	return p, nil
}

func intSetting(settings map[string]string, key string) int {
	var v int
	fmt.Sscanf(settings[key], "%d", &v)
	return v
}

func floatSetting(settings map[string]string, key string) float64 {
	var v float64
	fmt.Sscanf(settings[key], "%g", &v)
	return v
}

// IsReadOnly returns false; SQLite configs support updates
func (s *SQLiteProvider) IsReadOnly() bool { return false }

// Close closes the database handle
func (s *SQLiteProvider) Close() error { return s.db.Close() }
