package config

import (
	"fmt"
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	DefaultDataDir = "~/.offlinewins"
	envPrefix      = "OFFLINEWINS"

	DriverDiskv  = "diskv"
	DriverSQLite = "sqlite"
	DriverMemory = "memory"

	ConflictReject  = "reject"
	ConflictReplace = "replace"
)

type Config struct {
	DataDir           string
	StorageDriver     string
	DBPath            string
	HooksPath         string
	LogDir            string
	SessionMaxMinutes int
	OnConflict        string
	Debug             bool
}

// New resolves configuration for dataDir. An empty dataDir falls back to
// OFFLINEWINS_DATA_DIR and then DefaultDataDir. A config.yaml inside the data
// directory is optional; environment variables override it.
func New(dataDir string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("data_dir", DefaultDataDir)
	v.SetDefault("storage.driver", DriverDiskv)
	v.SetDefault("session.max_minutes", 480)
	v.SetDefault("session.on_conflict", ConflictReject)
	v.SetDefault("log.debug", false)

	if dataDir == "" {
		dataDir = v.GetString("data_dir")
	}
	expanded, err := homedir.Expand(dataDir)
	if err != nil {
		return Config{}, fmt.Errorf("expand data dir: %w", err)
	}
	if expanded == "" {
		return Config{}, fmt.Errorf("data dir is required")
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(expanded)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		DataDir:           expanded,
		StorageDriver:     strings.ToLower(strings.TrimSpace(v.GetString("storage.driver"))),
		DBPath:            filepath.Join(expanded, "offlinewins.db"),
		HooksPath:         filepath.Join(expanded, "hooks", "hooks.yaml"),
		LogDir:            filepath.Join(expanded, "logs"),
		SessionMaxMinutes: v.GetInt("session.max_minutes"),
		OnConflict:        strings.ToLower(strings.TrimSpace(v.GetString("session.on_conflict"))),
		Debug:             v.GetBool("log.debug"),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.StorageDriver {
	case DriverDiskv, DriverSQLite, DriverMemory:
	default:
		return fmt.Errorf("unsupported storage driver %q", c.StorageDriver)
	}
	switch c.OnConflict {
	case ConflictReject, ConflictReplace:
	default:
		return fmt.Errorf("unsupported session.on_conflict %q", c.OnConflict)
	}
	if c.SessionMaxMinutes <= 0 {
		return fmt.Errorf("session.max_minutes must be positive")
	}
	return nil
}
