package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ougirez/roadtrack/internal/pkg/constants"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Server ServerConfig
	Log    LogConfig
	Store  StoreConfig
	Seed   SeedConfig
	Actor  ActorConfig
}

type ServerConfig struct {
	Addr            string
	ShutdownTimeout time.Duration
	CORSOrigins     []string
}

type LogConfig struct {
	Level  string
	Format string
}

type StoreConfig struct {
	Driver         string
	DSN            string
	ConnectRetries uint64
}

type SeedConfig struct {
	Enabled bool
}

type ActorConfig struct {
	DefaultID   string
	DefaultName string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(constants.ViperServerAddr, ":8080")
	v.SetDefault(constants.ViperServerShutdownTimeout, 10*time.Second)
	v.SetDefault(constants.ViperServerCORSOrigins, []string{"http://localhost:3000"})
	v.SetDefault(constants.ViperLogLevel, "info")
	v.SetDefault(constants.ViperLogFormat, "json")
	v.SetDefault(constants.ViperStoreDriver, constants.StoreDriverMemory)
	v.SetDefault(constants.ViperStoreDSN, "")
	v.SetDefault(constants.ViperStoreConnectRetries, 5)
	v.SetDefault(constants.ViperSeedEnabled, true)
	v.SetDefault(constants.ViperActorDefaultID, "admin")
	v.SetDefault(constants.ViperActorDefaultName, "Admin Khan")
}

// Load reads defaults, then the optional file at path, then ROADTRACK_* environment overrides.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := Config{
		Server: ServerConfig{
			Addr:            v.GetString(constants.ViperServerAddr),
			ShutdownTimeout: v.GetDuration(constants.ViperServerShutdownTimeout),
			CORSOrigins:     v.GetStringSlice(constants.ViperServerCORSOrigins),
		},
		Log: LogConfig{
			Level:  v.GetString(constants.ViperLogLevel),
			Format: v.GetString(constants.ViperLogFormat),
		},
		Store: StoreConfig{
			Driver:         strings.ToLower(v.GetString(constants.ViperStoreDriver)),
			DSN:            v.GetString(constants.ViperStoreDSN),
			ConnectRetries: v.GetUint64(constants.ViperStoreConnectRetries),
		},
		Seed: SeedConfig{
			Enabled: v.GetBool(constants.ViperSeedEnabled),
		},
		Actor: ActorConfig{
			DefaultID:   v.GetString(constants.ViperActorDefaultID),
			DefaultName: v.GetString(constants.ViperActorDefaultName),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error

	switch c.Store.Driver {
	case constants.StoreDriverMemory:
	case constants.StoreDriverPostgres:
		if c.Store.DSN == "" {
			errs = append(errs, errors.New("store.dsn is required for the postgres driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown store.driver %q", c.Store.Driver))
	}

	if _, err := zapcore.ParseLevel(strings.ToLower(c.Log.Level)); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if c.Log.Format != "json" && c.Log.Format != "console" {
		errs = append(errs, fmt.Errorf("unknown log.format %q", c.Log.Format))
	}
	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server.addr is empty"))
	}

	return errors.Join(errs...)
}
