package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config es la configuración completa del simulador.
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Output     OutputConfig     `yaml:"output"`
	Log        LogConfig        `yaml:"log"`
}

// SimulationConfig controla el tamaño de la corrida.
type SimulationConfig struct {
	Trials     int    `yaml:"trials"`
	FlipsTotal int    `yaml:"flips_total"`
	Seed       uint64 `yaml:"seed"` // 0 = entropía del sistema
}

// OutputConfig controla cómo se imprime el resumen.
type OutputConfig struct {
	Format string `yaml:"format"` // plain | table
}

// LogConfig controla el formato y nivel de logging.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// Load carga la configuración desde el archivo YAML y el archivo .env si existe.
// Si el YAML no existe se usan los valores por defecto: el simulador no
// requiere argumentos. Las variables de entorno pisan lo leído del YAML.
func Load(path string) (*Config, error) {
	// Cargar .env si existe (silencia error si no hay archivo)
	_ = godotenv.Load()

	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("config.Load: read %q: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config.Load: parse YAML: %w", err)
		}
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	setDefaults(&cfg)

	return &cfg, nil
}

// Default devuelve la configuración de referencia sin leer nada del disco.
func Default() *Config {
	var cfg Config
	setDefaults(&cfg)
	return &cfg
}

// TableOutput indica si el resumen se imprime como tabla.
func (c *Config) TableOutput() bool {
	return c.Output.Format == "table"
}

// applyEnvOverrides sobreescribe valores con variables de entorno si están presentes.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("FLIPSIM_TRIALS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("FLIPSIM_TRIALS=%q: %w", v, err)
		}
		cfg.Simulation.Trials = n
	}
	if v := os.Getenv("FLIPSIM_FLIPS_TOTAL"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("FLIPSIM_FLIPS_TOTAL=%q: %w", v, err)
		}
		cfg.Simulation.FlipsTotal = n
	}
	if v := os.Getenv("FLIPSIM_SEED"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("FLIPSIM_SEED=%q: %w", v, err)
		}
		cfg.Simulation.Seed = n
	}
	if v := os.Getenv("FLIPSIM_OUTPUT"); v != "" {
		cfg.Output.Format = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	return nil
}

// setDefaults asegura que los valores requeridos tengan valores sensatos.
func setDefaults(cfg *Config) {
	if cfg.Simulation.Trials <= 0 {
		cfg.Simulation.Trials = 100000
	}
	if cfg.Simulation.FlipsTotal <= 0 {
		cfg.Simulation.FlipsTotal = 201
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = "plain"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "warn" // stdout es solo para resultados
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
}
