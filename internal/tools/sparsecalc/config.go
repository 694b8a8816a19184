package sparsecalc

import (
	"flag"
	"fmt"
	"time"

	"github.com/katalvlaran/sparsecalc/internal/platform/config"
)

// Config holds sparsecalc command configuration.
type Config struct {
	Op           string
	APath        string
	BPath        string
	OutPath      string
	DBPath       string
	Save         string
	SpyPath      string
	List         bool
	Delete       string
	Verbosity    int
	MaxDimension int
	Timeout      time.Duration
}

type envConfig struct {
	DBPath       string        `env:"DB_PATH"`
	MaxDimension int           `env:"MAX_DIMENSION" envDefault:"16777216"`
	Verbosity    int           `env:"VERBOSITY" envDefault:"0"`
	Timeout      time.Duration `env:"TIMEOUT" envDefault:"5m"`
}

// ParseConfig parses flags into a Config, taking defaults from the environment.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var envCfg envConfig
	if err := config.ParseEnv(&envCfg); err != nil {
		return Config{}, err
	}

	cfg := Config{
		DBPath:       envCfg.DBPath,
		MaxDimension: envCfg.MaxDimension,
		Verbosity:    envCfg.Verbosity,
		Timeout:      envCfg.Timeout,
	}

	fs.StringVar(&cfg.Op, "op", "", "operation: 1|add, 2|sub, 3|mul (prompted when empty)")
	fs.StringVar(&cfg.APath, "a", "", "first matrix file, or @name for a stored matrix (prompted when empty)")
	fs.StringVar(&cfg.BPath, "b", "", "second matrix file, or @name for a stored matrix (prompted when empty)")
	fs.StringVar(&cfg.OutPath, "out", "", "output matrix file (prompted when empty)")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "path to the matrix store sqlite database (default: SPARSECALC_DB_PATH)")
	fs.StringVar(&cfg.Save, "save", "", "also store the result under this name (requires -db)")
	fs.StringVar(&cfg.SpyPath, "spy", "", "also draw the result's nonzero pattern to this image file (.png, .svg, .pdf)")
	fs.BoolVar(&cfg.List, "list", false, "list stored matrices and exit (requires -db)")
	fs.StringVar(&cfg.Delete, "delete", "", "delete a stored matrix and exit (requires -db)")
	fs.IntVar(&cfg.Verbosity, "v", cfg.Verbosity, "log verbosity (default: SPARSECALC_VERBOSITY)")
	fs.IntVar(&cfg.MaxDimension, "max-dimension", cfg.MaxDimension, "reject input headers above this size (0 = no limit)")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "overall timeout")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if cfg.MaxDimension < 0 {
		return Config{}, fmt.Errorf("-max-dimension must be >= 0")
	}
	if cfg.Timeout <= 0 {
		return Config{}, fmt.Errorf("-timeout must be > 0")
	}
	return cfg, nil
}
