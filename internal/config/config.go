package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "NOTES"

	DefaultServerURL    = "http://localhost:8080"
	DefaultDateFormat   = "Jan 2, 2006 3:04 PM"
	DefaultLogLevel     = "info"
	DefaultPreviewStyle = "dracula"
)

type Config struct {
	ServerURL    string `mapstructure:"server_url"    yaml:"server_url"    json:"server_url"    validate:"required,url"`
	Token        string `mapstructure:"token"         yaml:"token"         json:"-"`
	DateFormat   string `mapstructure:"date_format"   yaml:"date_format"   json:"date_format"   validate:"required"`
	LogFile      string `mapstructure:"log_file"      yaml:"log_file"      json:"log_file"      validate:"required"`
	LogLevel     string `mapstructure:"log_level"     yaml:"log_level"     json:"log_level"     validate:"oneof=debug info warn error"`
	PreviewStyle string `mapstructure:"preview_style" yaml:"preview_style" json:"preview_style" validate:"oneof=ascii dark dracula light notty pink"`

	path string
}

// Dir returns the directory holding the default config and log files.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".notes"), nil
}

func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads .env from the working directory and then resolves the
// configuration through the global viper instance, so bound cobra flags
// take precedence.
func Load(path string) (*Config, error) {
	if err := LoadDotEnv(".env"); err != nil {
		return nil, err
	}
	return LoadWith(viper.GetViper(), path)
}

// LoadDotEnv exports the variables in path. A missing file is not an error
// and variables already set in the environment are kept.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// LoadWith resolves the configuration from defaults, the YAML file at path
// (the default location when empty), NOTES_* environment variables and
// anything already bound on v.
func LoadWith(v *viper.Viper, path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	if err := setDefaults(v); err != nil {
		return nil, err
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if _, err := os.Stat(path); err == nil {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, &ConfigInitError{Path: path, Err: err}
		}
	} else if explicit || !errors.Is(err, fs.ErrNotExist) {
		return nil, &ConfigInitError{Path: path, Err: err}
	}

	cfg := &Config{path: path}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, &ConfigInitError{Path: path, Err: err}
	}
	cfg.ServerURL = strings.TrimRight(strings.TrimSpace(cfg.ServerURL), "/")
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	v.SetDefault("server_url", DefaultServerURL)
	v.SetDefault("token", "")
	v.SetDefault("date_format", DefaultDateFormat)
	v.SetDefault("log_file", filepath.Join(dir, "notes.log"))
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("preview_style", DefaultPreviewStyle)
	return nil
}

// GetConfigPath returns the file the configuration was resolved against.
func (cfg *Config) GetConfigPath() string {
	return cfg.path
}

var validate = func() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}()

// Validate reports the first invalid field as a *FieldError.
func (cfg *Config) Validate() error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &FieldError{
			Key:   fe.Field(),
			Rule:  fe.Tag(),
			Param: fe.Param(),
			Value: fmt.Sprint(fe.Value()),
		}
	}
	return err
}
