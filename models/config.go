package models

import (
	"net/url"
	"strings"
	"time"
)

// DefaultEndpoint is the analysis service the form posts to.
const DefaultEndpoint = "http://127.0.0.1:8000/analyze"

type Config struct {
	Endpoint string        `json:"endpoint" yaml:"endpoint"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`
	LogLevel string        `json:"log_level" yaml:"log_level"`
	LogFile  string        `json:"log_file" yaml:"log_file"`
	StartDir string        `json:"start_dir" yaml:"start_dir"`
	File     string        `json:"file,omitempty" yaml:"file,omitempty"`
}

// DefaultConfig has no request timeout: a submission waits until the
// service answers or the connection fails.
var DefaultConfig = Config{
	Endpoint: DefaultEndpoint,
	Timeout:  0,
	LogLevel: "info",
	StartDir: ".",
}

// Merge fills every zero field of c from other.
func (c *Config) Merge(other Config) {
	if c.Endpoint == "" {
		c.Endpoint = other.Endpoint
	}
	if c.Timeout == 0 {
		c.Timeout = other.Timeout
	}
	if c.LogLevel == "" {
		c.LogLevel = other.LogLevel
	}
	if c.LogFile == "" {
		c.LogFile = other.LogFile
	}
	if c.StartDir == "" {
		c.StartDir = other.StartDir
	}
	if c.File == "" {
		c.File = other.File
	}
}

func (c *Config) Validate() error {
	if c.Endpoint == "" {
		c.Endpoint = DefaultConfig.Endpoint
	}

	u, err := url.Parse(c.Endpoint)
	if err != nil || u.Host == "" {
		return &ConfigError{Field: "endpoint", Message: "endpoint must be an absolute URL"}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return &ConfigError{Field: "endpoint", Message: "endpoint scheme must be http or https"}
	}

	if c.Timeout < 0 {
		return &ConfigError{Field: "timeout", Message: "timeout cannot be negative"}
	}

	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "":
		c.LogLevel = DefaultConfig.LogLevel
	case "debug", "info", "warn", "error":
	default:
		return &ConfigError{Field: "log_level", Message: "log level must be one of debug, info, warn, error"}
	}

	if c.StartDir == "" {
		c.StartDir = DefaultConfig.StartDir
	}

	return nil
}

type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
