// Package config resuelve la configuración del proceso: defaults, archivo
// .env opcional (godotenv), variables de entorno y flags (viper).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Keys (coinciden con el nombre de la variable de entorno).
const (
	KeyPort            = "PORT"
	KeyDBDriver        = "DB_DRIVER"
	KeyDBDSN           = "DB_DSN"
	KeyLogLevel        = "LOG_LEVEL"
	KeyLogFormat       = "LOG_FORMAT"
	KeyAppName         = "APP_NAME"
	KeyStrictNotFound  = "STRICT_NOT_FOUND"
	KeyReadTimeout     = "READ_TIMEOUT"
	KeyWriteTimeout    = "WRITE_TIMEOUT"
	KeyShutdownTimeout = "SHUTDOWN_TIMEOUT"
)

type Config struct {
	Port int

	DBDriver string
	DBDSN    string

	LogLevel  string
	LogFormat string
	AppName   string

	StrictNotFound bool

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// Addr devuelve la dirección de escucha (":3000").
func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyPort, 3000)
	v.SetDefault(KeyDBDriver, DriverSQLite)
	v.SetDefault(KeyDBDSN, "zoo.db")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyAppName, "zoo-management")
	v.SetDefault(KeyStrictNotFound, false)
	v.SetDefault(KeyReadTimeout, 5*time.Second)
	v.SetDefault(KeyWriteTimeout, 10*time.Second)
	v.SetDefault(KeyShutdownTimeout, 10*time.Second)
}

// LoadEnvFile carga un .env al entorno. Si path está vacío prueba ".env";
// un archivo inexistente no es error. Las variables ya seteadas ganan.
func LoadEnvFile(path string) (bool, error) {
	explicit := path != ""
	if !explicit {
		path = ".env"
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return false, nil
		}
		return false, fmt.Errorf("env file %s: %w", path, err)
	}

	if err := godotenv.Load(path); err != nil {
		return false, fmt.Errorf("load env file %s: %w", path, err)
	}
	return true, nil
}

// BindFlags registra en fs los flags que pueden pisar la configuración.
func BindFlags(fs *pflag.FlagSet) {
	fs.Int("port", 0, "listening port (env PORT, default 3000)")
	fs.String("db-driver", "", "store driver: sqlite, postgres or memory (env DB_DRIVER)")
	fs.String("db-dsn", "", "store connection target: sqlite file path or postgres DSN (env DB_DSN)")
	fs.Bool("strict-not-found", false, "answer 404 for missing animals (env STRICT_NOT_FOUND)")
}

var flagKeys = map[string]string{
	KeyPort:           "port",
	KeyDBDriver:       "db-driver",
	KeyDBDSN:          "db-dsn",
	KeyStrictNotFound: "strict-not-found",
}

// newViper arma el viper con defaults, env y los flags de fs que cambiaron.
// fs puede ser nil y puede traer solo un subconjunto de los flags.
func newViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if fs == nil {
		return v, nil
	}
	for key, flag := range flagKeys {
		f := fs.Lookup(flag)
		if f != nil && f.Changed {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", flag, err)
			}
		}
	}
	return v, nil
}

// Load resuelve la configuración: flags (si cambiaron) > env > defaults.
// fs puede ser nil.
func Load(fs *pflag.FlagSet) (Config, error) {
	v, err := newViper(fs)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port:            v.GetInt(KeyPort),
		DBDriver:        strings.ToLower(strings.TrimSpace(v.GetString(KeyDBDriver))),
		DBDSN:           strings.TrimSpace(v.GetString(KeyDBDSN)),
		LogLevel:        v.GetString(KeyLogLevel),
		LogFormat:       v.GetString(KeyLogFormat),
		AppName:         v.GetString(KeyAppName),
		StrictNotFound:  v.GetBool(KeyStrictNotFound),
		ReadTimeout:     v.GetDuration(KeyReadTimeout),
		WriteTimeout:    v.GetDuration(KeyWriteTimeout),
		ShutdownTimeout: v.GetDuration(KeyShutdownTimeout),
	}

	return cfg, cfg.Validate()
}

// LoadPort resuelve solo el puerto, con la misma precedencia que Load. No
// valida el resto de la configuración.
func LoadPort(fs *pflag.FlagSet) (int, error) {
	v, err := newViper(fs)
	if err != nil {
		return 0, err
	}
	port := v.GetInt(KeyPort)
	return port, validatePort(port)
}

func validatePort(port int) error {
	if port <= 0 || port > 65535 {
		return fmt.Errorf("config: invalid %s %d", KeyPort, port)
	}
	return nil
}

func (c Config) Validate() error {
	if err := validatePort(c.Port); err != nil {
		return err
	}
	switch c.DBDriver {
	case DriverSQLite, DriverPostgres:
		if c.DBDSN == "" {
			return fmt.Errorf("config: %s is required for driver %s", KeyDBDSN, c.DBDriver)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("config: unknown %s %q", KeyDBDriver, c.DBDriver)
	}
	return nil
}
