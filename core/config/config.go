package config

import (
	"reflect"
	"strings"

	"venue-manager/core/database"
	"venue-manager/core/lock"
	"venue-manager/core/logger"
	"venue-manager/core/probe"
	"venue-manager/core/scanner"
	"venue-manager/core/server"
	"venue-manager/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the upload storage backend (local disk or S3/MinIO).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the database connection.
	Database database.Config `mapstructure:"database"`
	// Probe holds configuration for room liveness probing.
	Probe probe.Config `mapstructure:"probe"`
	// Scan holds configuration for room share scanning and matching.
	Scan scanner.Config `mapstructure:"scan"`
	// Lock holds configuration for per-room run exclusivity.
	Lock lock.Config `mapstructure:"lock"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Missing .env is expected in production
	_ = godotenv.Overload(envPath)

	v := viper.New()

	bindValues(v, Config{}, "")

	// SCAN_MOUNT_ROOT -> scan.mount_root
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues walks the struct recursively and registers every `mapstructure` key in Viper,
// using the `default` tag as its default value.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set the default (even if empty) so AutomaticEnv picks the key up
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
