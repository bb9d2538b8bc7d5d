package config

import "fmt"

// ConfigInitError reports a config file that exists but could not be read.
type ConfigInitError struct {
	Path string
	Err  error
}

func (e *ConfigInitError) Error() string {
	return fmt.Sprintf("failed to read config %s: %v", e.Path, e.Err)
}

func (e *ConfigInitError) Unwrap() error {
	return e.Err
}

type FieldError struct {
	Key   string
	Rule  string
	Param string
	Value string
}

func (e *FieldError) Error() string {
	switch e.Rule {
	case "required":
		return fmt.Sprintf("invalid config: %s is required", e.Key)
	case "url":
		return fmt.Sprintf("invalid config: %s must be a URL, got %q", e.Key, e.Value)
	case "oneof":
		return fmt.Sprintf("invalid config: %s must be one of [%s], got %q", e.Key, e.Param, e.Value)
	default:
		return fmt.Sprintf("invalid config: %s failed %s", e.Key, e.Rule)
	}
}
