// Package config loads the TOML configuration of the task engine and builds
// its logger.
//
//	[data]
//	directory = "snapshots"      # relative to the config file
//
//	[logging]
//	level = "info"               # logrus level name
//	format = "text"              # "text" or "json"
//	logfile = ""                 # empty: stderr; otherwise rotated with lumberjack
//	max_size_mb = 100
//	max_age_days = 28
//	max_backups = 3
//
//	[tasks]
//	num_threads = 1
//	random_seed = 0              # 0: fixed default stream
package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ErrInvalid wraps every validation failure of a loaded configuration.
var ErrInvalid = errors.New("config: invalid configuration")

// DataConfig locates graph snapshots.
type DataConfig struct {
	Directory string `toml:"directory"`
}

// LogConfig configures logging and log rotation.
type LogConfig struct {
	Level      string `toml:"level"`
	Format     string `toml:"format"`
	Logfile    string `toml:"logfile"`
	MaxSize    int    `toml:"max_size_mb"`
	MaxAge     int    `toml:"max_age_days"`
	MaxBackups int    `toml:"max_backups"`
}

// TaskConfig holds defaults applied to task parameters.
type TaskConfig struct {
	NumThreads int   `toml:"num_threads"`
	RandomSeed int64 `toml:"random_seed"`
}

// Config is the whole configuration file.
type Config struct {
	Data    DataConfig `toml:"data"`
	Logging LogConfig  `toml:"logging"`
	Tasks   TaskConfig `toml:"tasks"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Data: DataConfig{Directory: "."},
		Logging: LogConfig{
			Level:      "info",
			Format:     "text",
			MaxSize:    100,
			MaxAge:     28,
			MaxBackups: 3,
		},
		Tasks: TaskConfig{NumThreads: 1},
	}
}

// Load decodes filename over Default. Relative paths are resolved against
// the directory of filename. Unknown keys are an error.
func Load(filename string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(filename, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("could not decode TOML config %s: %w", filename, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w: unknown key %q in %s", ErrInvalid, undecoded[0].String(), filename)
	}

	base := filepath.Dir(filename)
	cfg.Data.Directory = resolve(base, cfg.Data.Directory)
	if cfg.Logging.Logfile != "" {
		cfg.Logging.Logfile = resolve(base, cfg.Logging.Logfile)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	switch {
	case c.Tasks.NumThreads < 1:
		return fmt.Errorf("%w: tasks.num_threads must be >= 1, got %d", ErrInvalid, c.Tasks.NumThreads)
	case c.Logging.Format != "text" && c.Logging.Format != "json":
		return fmt.Errorf("%w: logging.format must be \"text\" or \"json\", got %q", ErrInvalid, c.Logging.Format)
	case c.Logging.MaxSize < 0 || c.Logging.MaxAge < 0 || c.Logging.MaxBackups < 0:
		return fmt.Errorf("%w: log rotation limits must be >= 0", ErrInvalid)
	}

	return nil
}

func resolve(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}

	return filepath.Join(base, p)
}
