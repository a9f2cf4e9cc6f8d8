package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/frahmantamala/hr-mock/internal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "HRMOCK"

var (
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "hr-mock",
	Short: "HR API mock server",
	Long:  `Serves a static, Basic-auth protected copy of the HR provider's meta users listing for offline integration tests.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// loadConfig layers built-in defaults, an optional config.yml under path,
// HRMOCK_* environment variables and any changed flags bound by the command.
func loadConfig(path string, bindFlags func(v *viper.Viper) error) (*internal.Config, error) {
	v := viper.New()
	setDefaults(v, internal.DefaultConfig())

	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if bindFlags != nil {
		if err := bindFlags(v); err != nil {
			return nil, fmt.Errorf("error binding flags: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg internal.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("error validating config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper, cfg *internal.Config) {
	v.SetDefault("http_server.host", cfg.Server.Host)
	v.SetDefault("http_server.port", cfg.Server.Port)
	v.SetDefault("http_server.read_header_timeout", cfg.Server.ReadHeaderTimeout)
	v.SetDefault("http_server.read_timeout", cfg.Server.ReadTimeout)
	v.SetDefault("http_server.idle_timeout", cfg.Server.IdleTimeout)
	v.SetDefault("http_server.write_timeout", cfg.Server.WriteTimeout)
	v.SetDefault("http_server.shutdown_timeout", cfg.Server.ShutdownTimeout)

	v.SetDefault("mock.company", cfg.Mock.Company)
	v.SetDefault("mock.username", cfg.Mock.Username)
	v.SetDefault("mock.password", cfg.Mock.Password)

	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", ".", "Directory containing an optional config.yml")

	rootCmd.AddCommand(httpServerCmd)
	rootCmd.AddCommand(openapiCmd)
}
