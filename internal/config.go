package internal

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	DefaultHost     = "localhost"
	DefaultPort     = 8000
	DefaultCompany  = "testcompany"
	DefaultUsername = "APIKEY"
	DefaultPassword = "x"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"http_server"`
	Mock    MockConfig    `mapstructure:"mock"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	ReadTimeout       time.Duration `mapstructure:"read_timeout"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
}

// MockConfig describes the upstream tenant being simulated.
type MockConfig struct {
	Company  string `mapstructure:"company"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DefaultConfig returns the configuration the mock runs with when nothing
// is overridden.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:              DefaultHost,
			Port:              DefaultPort,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       10 * time.Second,
			IdleTimeout:       60 * time.Second,
			WriteTimeout:      10 * time.Second,
			ShutdownTimeout:   10 * time.Second,
		},
		Mock: MockConfig{
			Company:  DefaultCompany,
			Username: DefaultUsername,
			Password: DefaultPassword,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// UsersPath is the route of the meta users listing for the configured company.
func (c *MockConfig) UsersPath() string {
	return "/" + c.Company + "/v1/meta/users/"
}

// ----------------- VALIDATION -----------------

func (c *Config) Validate() error {
	var errs []string

	if err := c.Server.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("server config: %v", err))
	}

	if err := c.Mock.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("mock config: %v", err))
	}

	if err := c.Logging.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("logging config: %v", err))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

func (c *ServerConfig) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.ReadTimeout < c.ReadHeaderTimeout {
		return errors.New("read_timeout must be >= read_header_timeout")
	}
	if c.ShutdownTimeout < 0 {
		return errors.New("shutdown_timeout cannot be negative")
	}
	return nil
}

func (c *MockConfig) Validate() error {
	if c.Company == "" {
		return errors.New("company is required")
	}
	if strings.Contains(c.Company, "/") {
		return fmt.Errorf("company %q must be a single path segment", c.Company)
	}
	// the upstream convention is an API key with a throwaway password, so
	// only the username is mandatory
	if c.Username == "" {
		return errors.New("username is required")
	}
	return nil
}

func (c *LoggingConfig) Validate() error {
	switch c.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unsupported level %q", c.Level)
	}
	switch c.Format {
	case "json", "text":
	default:
		return fmt.Errorf("unsupported format %q", c.Format)
	}
	return nil
}
