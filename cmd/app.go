// Package cmd implements the CLI application to manage personal finances.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/google/subcommands"
	"github.com/spendwise/spendwise"
	"github.com/spendwise/spendwise/kv"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&accountCmd{}, "accounts")
	c.Register(&categoryCmd{}, "accounts")

	c.Register(&addCmd{}, "transactions")
	c.Register(&txCmd{}, "transactions")
	c.Register(&bulkCmd{}, "transactions")
	c.Register(&csvCmd{}, "transactions")

	c.Register(&budgetCmd{}, "planning")
	c.Register(&recurringCmd{}, "planning")
	c.Register(&goalCmd{}, "planning")
	c.Register(&investmentCmd{}, "planning")
	c.Register(&debtCmd{}, "planning")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&monthlyCmd{}, "reports")

	c.Register(&exportCmd{}, "snapshots")
	c.Register(&importCmd{}, "snapshots")
	c.Register(&clearCmd{}, "snapshots")

	c.Register(&themeCmd{}, "")
	c.Register(&topicCmd{}, "")
}

// CommandNames lists every registered subcommand, for shell completion.
func CommandNames() []string {
	return []string{
		"account", "category",
		"add", "tx", "bulk", "csv",
		"budget", "recurring", "goal", "investment", "debt",
		"summary", "monthly",
		"export", "import", "clear",
		"theme", "topic",
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dbFile = flag.String("db", "", "Path to the data file (default ~/.spendwise/spendwise.db)")
var configFile = flag.String("config", "", "Path to the config file (default ~/.spendwise/config.toml)")

// Config is the optional TOML configuration file.
type Config struct {
	// Database overrides the default data file location.
	Database string `toml:"database"`
	// Currency is the ISO 4217 code used to format amounts.
	Currency string `toml:"currency"`
	// Upcoming caps the upcoming-obligations preview in 'sw summary'.
	Upcoming int `toml:"upcoming"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{Currency: "USD", Upcoming: spendwise.DefaultUpcomingLimit}
}

// LoadConfig reads the configuration file, returning defaults when the
// file does not exist.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	path := *configFile
	if path == "" {
		path = filepath.Join(homeDir(), ".spendwise", "config.toml")
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("cannot read config %q: %w", path, err)
	}
	return cfg, nil
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

// dataPath resolves the data file location: flag, then config, then default.
func dataPath(cfg Config) string {
	if *dbFile != "" {
		return *dbFile
	}
	if cfg.Database != "" {
		return cfg.Database
	}
	return filepath.Join(homeDir(), ".spendwise", "spendwise.db")
}

// OpenStore loads every collection from the data file. The caller owns the
// returned database handle and must Close it.
func OpenStore() (*spendwise.Store, *kv.DB, error) {
	cfg, err := LoadConfig()
	if err != nil {
		log.Println("warning:", err)
	}
	spendwise.SetDisplayCurrency(cfg.Currency)

	db, err := kv.Open(dataPath(cfg))
	if err != nil {
		return nil, nil, err
	}
	s := spendwise.LoadStore(db)
	markdownStyle = string(s.Theme())
	if cfg.Upcoming > 0 {
		upcomingLimit = cfg.Upcoming
	}
	return s, db, nil
}

// SaveStore flushes the store back to its data file.
func SaveStore(s *spendwise.Store, db *kv.DB) subcommands.ExitStatus {
	if err := s.Save(db); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving data: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
