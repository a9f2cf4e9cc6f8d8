package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/frahmantamala/hr-mock/internal"
	"github.com/frahmantamala/hr-mock/internal/transport/rest"
	"github.com/frahmantamala/hr-mock/pkg/logger"

	"github.com/go-chi/chi"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server serving the mocked meta users endpoint`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return startHTTPServer(cmd)
	},
}

type Dependencies struct {
	Config *internal.Config
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer(cmd *cobra.Command) error {
	deps, err := initializeDependencies(cmd)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	addr := deps.Config.Server.Addr()
	deps.Logger.Info("Starting HTTP server", "address", addr, "users_path", deps.Config.Mock.UsersPath())

	server := &http.Server{
		Addr:              addr,
		Handler:           deps.Router,
		ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
		ReadTimeout:       deps.Config.Server.ReadTimeout,
		WriteTimeout:      deps.Config.Server.WriteTimeout,
		IdleTimeout:       deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), deps.Config.Server.ShutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("Server shutdown error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	}

	deps.Logger.Info("Server stopped")
	return nil
}

func initializeDependencies(cmd *cobra.Command) (*Dependencies, error) {
	config, err := loadConfig(configPath, func(v *viper.Viper) error {
		if err := v.BindPFlag("http_server.host", cmd.Flags().Lookup("host")); err != nil {
			return err
		}
		return v.BindPFlag("http_server.port", cmd.Flags().Lookup("port"))
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Logging.Level, config.Logging.Format)
	lg := logger.LoggerWrapper()

	return &Dependencies{
		Config: config,
		Logger: lg,
		Router: rest.NewRouter(config.Mock, lg),
	}, nil
}

func init() {
	httpServerCmd.Flags().String("host", internal.DefaultHost, "Host to bind")
	httpServerCmd.Flags().Int("port", internal.DefaultPort, "Port to bind")
}
