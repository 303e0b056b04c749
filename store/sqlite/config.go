package sqlite

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config locates and tunes the SQLite database.
type Config struct {
	// Path is the database file. It is created when missing unless ReadOnly
	// is set.
	Path string `env:"CONTACTSTORE_SQLITE_PATH" envDefault:"contacts.db"`
	// BusyTimeout bounds how long a statement waits on a locked database.
	BusyTimeout time.Duration `env:"CONTACTSTORE_SQLITE_BUSY_TIMEOUT" envDefault:"5s"`
	// ReadOnly opens the database without write access and skips schema
	// creation.
	ReadOnly bool `env:"CONTACTSTORE_SQLITE_READ_ONLY" envDefault:"false"`
}

// ConfigFromEnv loads a Config from CONTACTSTORE_SQLITE_* variables.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("sqlite: parse env: %w", err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if strings.TrimSpace(c.Path) == "" {
		return fmt.Errorf("sqlite: database path is required")
	}
	if c.BusyTimeout < 0 {
		return fmt.Errorf("sqlite: negative busy timeout %s", c.BusyTimeout)
	}
	return nil
}

// dsn builds the go-sqlite3 connection string. The path is escaped so
// that '?', '#' and '%' in file names survive URI parsing.
func (c Config) dsn() string {
	mode := "rwc"
	if c.ReadOnly {
		mode = "ro"
	}
	query := url.Values{}
	query.Set("mode", mode)
	query.Set("_busy_timeout", fmt.Sprint(c.BusyTimeout.Milliseconds()))
	query.Set("_foreign_keys", "1")
	path := (&url.URL{Path: c.Path}).EscapedPath()
	return "file:" + path + "?" + query.Encode()
}
