package logfather

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// envConfig mirrors the LOGFATHER_* environment variables.
type envConfig struct {
	Level    string   `env:"LOGFATHER_LEVEL"`
	Ignore   []string `env:"LOGFATHER_IGNORE" envSeparator:","`
	File     string   `env:"LOGFATHER_FILE"`
	Terminal bool     `env:"LOGFATHER_TERMINAL" envDefault:"true"`
	Format   string   `env:"LOGFATHER_FORMAT"`
	UTC      bool     `env:"LOGFATHER_UTC"`
}

// FromEnv builds a Logger from the environment:
//
//	LOGFATHER_LEVEL    minimum level name (e.g. "error")
//	LOGFATHER_IGNORE   comma-separated level names to suppress
//	LOGFATHER_FILE     log file path; enables the file sink when set
//	LOGFATHER_TERMINAL terminal sink toggle, default true
//	LOGFATHER_FORMAT   message template override
//	LOGFATHER_UTC      render timestamps in UTC
//
// Unset variables leave the defaults of New untouched. Unknown level names
// are an error.
func FromEnv() (*Logger, error) {
	var cfg envConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.Wrap(err, "parse logger environment")
	}

	l := New().Terminal(cfg.Terminal).UTC(cfg.UTC)
	if cfg.Level != "" {
		lvl, err := ParseLevel(cfg.Level)
		if err != nil {
			return nil, errors.Wrap(err, "LOGFATHER_LEVEL")
		}
		l.MinLevel(lvl)
	}
	for _, name := range cfg.Ignore {
		lvl, err := ParseLevel(name)
		if err != nil {
			return nil, errors.Wrap(err, "LOGFATHER_IGNORE")
		}
		l.Ignore(lvl)
	}
	if cfg.File != "" {
		l.File(true).Path(cfg.File)
	}
	if cfg.Format != "" {
		l.Format(cfg.Format)
	}
	return l, nil
}
